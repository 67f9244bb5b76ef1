package risk

import "math"

// BufferZone maps distance-to-obstacle into static collision risk: 1
// within radius, a pow(1-(d-radius)/buffer, degree) ramp across the
// buffer band, 0 beyond it. Ported from BufferZone.cpp.
type BufferZone struct {
	Radius, Buffer, Degree float64
}

// NewBufferZone returns a BufferZone with the given parameters.
func NewBufferZone(radius, buffer, degree float64) *BufferZone {
	return &BufferZone{Radius: radius, Buffer: buffer, Degree: degree}
}

// DistanceToRisk converts a distance-to-obstacle sample into [0,1] risk.
func (b *BufferZone) DistanceToRisk(distance float64) float64 {
	if distance <= b.Radius {
		return 1
	}
	if distance > b.Radius+b.Buffer {
		return 0
	}
	return math.Pow(1-(distance-b.Radius)/b.Buffer, b.Degree)
}
