package risk

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownRiskMap is returned by NewRiskMap when name names none of
// "spike", "blunt" or "sigma".
var ErrUnknownRiskMap = errors.New("risk: unknown risk map name")

// RiskMap translates collision risk in [0,1] into a kernel meta value,
// and back. Ported from RiskMap.hpp's abstract base and
// PNFRiskMap.cpp's three families.
type RiskMap interface {
	// RiskToMeta maps risk (>=0) to a meta in [0,1]; above the map's
	// cutoff the result is exactly 0 (impassable).
	RiskToMeta(risk float64) float64
	// MetaToRisk is RiskToMeta's inverse, with meta<=0 resolving to
	// the map's cutoff.
	MetaToRisk(meta float64) float64
	// Name identifies which family this map belongs to.
	Name() string
}

// NewRiskMap constructs the named risk-mapping family. name must be
// one of "spike", "blunt" or "sigma".
func NewRiskMap(name string, cutoff, degree float64) (RiskMap, error) {
	switch name {
	case "spike":
		return &spike{cutoff: cutoff, degree: degree}, nil
	case "blunt":
		return &blunt{cutoff: cutoff, degree: degree}, nil
	case "sigma":
		return &sigma{cutoff: cutoff, degree: degree}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRiskMap, name)
	}
}

type spike struct{ cutoff, degree float64 }

func (s *spike) Name() string { return "spike" }

func (s *spike) RiskToMeta(risk float64) float64 {
	if risk >= s.cutoff {
		return 0
	}
	return math.Pow(1-risk/s.cutoff, s.degree)
}

func (s *spike) MetaToRisk(meta float64) float64 {
	if meta <= 0 {
		return s.cutoff
	}
	return s.cutoff * (1 - math.Pow(meta, 1/s.degree))
}

type blunt struct{ cutoff, degree float64 }

func (b *blunt) Name() string { return "blunt" }

func (b *blunt) RiskToMeta(risk float64) float64 {
	if risk >= b.cutoff {
		return 0
	}
	return 1 - math.Pow(risk/b.cutoff, b.degree)
}

func (b *blunt) MetaToRisk(meta float64) float64 {
	if meta <= 0 {
		return b.cutoff
	}
	return b.cutoff * math.Pow(1-meta, 1/b.degree)
}

type sigma struct{ cutoff, degree float64 }

func (s *sigma) Name() string { return "sigma" }

func (s *sigma) RiskToMeta(risk float64) float64 {
	if risk >= s.cutoff {
		return 0
	}
	if risk <= 1-s.cutoff {
		return 1
	}
	rhs := 0.5 * math.Pow(1-math.Abs(risk-0.5)/(s.cutoff-0.5), s.degree)
	if risk >= 0.5 {
		return rhs
	}
	return 1 - rhs
}

func (s *sigma) MetaToRisk(meta float64) float64 {
	if meta <= 0 {
		return s.cutoff
	}
	if meta >= 1 {
		return 1 - s.cutoff
	}
	if meta >= 0.5 {
		return 0.5 + (s.cutoff-0.5)*(math.Pow(2*(1-meta), 1/s.degree)-1)
	}
	return 0.5 + (s.cutoff-0.5)*(1-math.Pow(2*meta, 1/s.degree))
}
