package svgsort

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidStrategy is returned for unrecognized reorder strategies.
	ErrInvalidStrategy = errors.New("svgsort: unknown reorder strategy")
	// ErrNoFiniteCandidate is returned when no remaining path has a usable
	// distance, such as a set of empty paths under the centroid strategy.
	ErrNoFiniteCandidate = errors.New("svgsort: no path with a finite distance remains")
)

// Strategy selects how Reorder measures the distance to a candidate path
// and where the reference point moves after picking it.
type Strategy int

const (
	// Centroid measures to the vertex-average centroid of a path and
	// advances the reference point to that same centroid.
	Centroid Strategy = iota

	// StartEnd measures to the start point of a path and advances the
	// reference point to its end point, modeling a tool that travels to
	// where a path begins and then traces it to where it ends.
	StartEnd
)

// ParseStrategy parses "centroid" or "start-end".
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "centroid":
		return Centroid, nil
	case "start-end":
		return StartEnd, nil
	}
	return 0, ErrInvalidStrategy
}

func (s Strategy) String() string {
	switch s {
	case Centroid:
		return "centroid"
	case StartEnd:
		return "start-end"
	}
	return "unknown"
}

// Reorder returns the paths permuted into a low-travel visiting order by a
// greedy nearest-candidate walk starting at origin: it repeatedly picks
// the remaining path strictly closest to the reference point, then moves
// the reference point per the strategy. The first-seen path wins ties. A
// path without a usable distance is never picked while a usable candidate
// remains; once only unusable candidates are left the reordering fails as
// a whole and nothing is returned.
func Reorder(paths []*Path, strategy Strategy, origin Coord) ([]*Path, error) {
	if strategy != Centroid && strategy != StartEnd {
		return nil, ErrInvalidStrategy
	}

	remaining := make([]*Path, len(paths))
	copy(remaining, paths)
	ordered := make([]*Path, 0, len(paths))

	ref := origin
	for 0 < len(remaining) {
		best := -1
		var bestDist decimal.Decimal
		for i, p := range remaining {
			var target Coord
			switch strategy {
			case Centroid:
				c, ok := p.Centroid()
				if !ok {
					continue
				}
				target = c
			case StartEnd:
				target = p.Start()
			}
			if d := ref.Distance(target); best < 0 || d.LessThan(bestDist) {
				best, bestDist = i, d
			}
		}
		if best < 0 {
			return nil, ErrNoFiniteCandidate
		}

		pick := remaining[best]
		ordered = append(ordered, pick)
		remaining = append(remaining[:best], remaining[best+1:]...)

		switch strategy {
		case Centroid:
			c, _ := pick.Centroid()
			ref = c
		case StartEnd:
			if pick.Empty() {
				// no usable next point, return to the origin
				ref = origin
			} else {
				ref = pick.End()
			}
		}
	}
	return ordered, nil
}
