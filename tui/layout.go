package tui

import (
	"fmt"
	"math"
)

// ConstraintKind tags the sizing policy of one segment
type ConstraintKind uint8

const (
	ConstraintFixed ConstraintKind = iota
	ConstraintAtLeast
	ConstraintAtMost
	ConstraintPercent
	ConstraintRatio
	ConstraintFill
)

// Constraint describes one segment's desired size within a 1-D extent.
// Construct via Fixed, AtLeast, AtMost, Percent, Ratio, or Fill.
type Constraint struct {
	Kind  ConstraintKind
	Value int // Fixed/AtLeast/AtMost size, Percent value
	Num   int // Ratio numerator
	Den   int // Ratio denominator
}

// Fixed requests exactly n cells, clipped to what remains
func Fixed(n int) Constraint {
	return Constraint{Kind: ConstraintFixed, Value: n}
}

// AtLeast requests n cells as a floor. It never grows into available
// slack, and competing floors shrink proportionally when space runs out
func AtLeast(n int) Constraint {
	return Constraint{Kind: ConstraintAtLeast, Value: n}
}

// AtMost requests n cells as a ceiling with the same shrink behavior as AtLeast
func AtMost(n int) Constraint {
	return Constraint{Kind: ConstraintAtMost, Value: n}
}

// Percent requests p percent of the extent. Panics unless 0 <= p <= 100:
// an out-of-range percentage is a programmer error caught at configuration
// time, never deferred into the render path
func Percent(p int) Constraint {
	if p < 0 || p > 100 {
		panic(fmt.Sprintf("tui: Percent(%d) out of range [0, 100]", p))
	}
	return Constraint{Kind: ConstraintPercent, Value: p}
}

// Ratio requests num/den of the extent. A zero denominator yields zero
func Ratio(num, den int) Constraint {
	return Constraint{Kind: ConstraintRatio, Num: num, Den: den}
}

// Fill consumes whatever the other constraints leave behind.
// Multiple Fill constraints share the leftover equally
func Fill() Constraint {
	return Constraint{Kind: ConstraintFill}
}

// Distribution controls where slack goes once all constraints are satisfied
type Distribution uint8

const (
	Exact              Distribution = iota // Leftover space stays unused
	LastTakesRemainder                     // All slack goes to the final segment
	EvenDistribution                       // Slack divided equally, remainder biased to earliest segments
)

// Segment is one (offset, length) slice of a partitioned extent,
// offset relative to the extent's start
type Segment struct {
	Offset int
	Length int
}

// Split partitions an extent of the given length into consecutive segments,
// one per constraint, in order. The sum of segment lengths never exceeds
// length and no segment is negative.
//
// Cumulative boundary positions are carried as real numbers and each boundary
// is rounded to the nearest integer (half to even) independently; segment
// lengths are differences of consecutive rounded boundaries. Downstream
// layout depends on this exact numeric behavior: two Percent(30) columns over
// an extent of 7 both round to width 2, not 2 and 3.
func Split(length int, constraints []Constraint, policy Distribution) []Segment {
	segs := make([]Segment, len(constraints))
	if len(constraints) == 0 {
		return segs
	}
	if length < 0 {
		length = 0
	}
	extent := float64(length)

	demands := make([]float64, len(constraints))
	var total, boundedTotal float64
	for i, c := range constraints {
		d := c.demand(extent)
		demands[i] = d
		total += d
		if c.bounded() {
			boundedTotal += d
		}
	}

	// Floors and ceilings win over everything else when space runs out:
	// they shrink proportionally among themselves, the rest resolves
	// greedily in order over what remains.
	if total > extent && boundedTotal > 0 {
		avail := boundedTotal
		if avail > extent {
			avail = extent
		}
		scale := avail / boundedTotal
		rest := extent - avail
		for i, c := range constraints {
			if c.bounded() {
				demands[i] *= scale
				continue
			}
			if demands[i] > rest {
				demands[i] = rest
			}
			rest -= demands[i]
		}
	}

	// Fill constraints split the leftover equally among themselves
	if nFill := countFill(constraints); nFill > 0 {
		used := 0.0
		for i, c := range constraints {
			if c.Kind != ConstraintFill {
				used += demands[i]
			}
		}
		share := (extent - used) / float64(nFill)
		if share < 0 {
			share = 0
		}
		for i, c := range constraints {
			if c.Kind == ConstraintFill {
				demands[i] = share
			}
		}
	}

	lengths := make([]int, len(constraints))
	pos := 0.0
	prev := 0
	used := 0
	for i := range constraints {
		pos += demands[i]
		if pos > extent {
			pos = extent
		}
		boundary := int(math.RoundToEven(pos))
		lengths[i] = boundary - prev
		prev = boundary
		used += lengths[i]
	}

	distribute(lengths, length-used, policy)

	offset := 0
	for i, l := range lengths {
		segs[i] = Segment{Offset: offset, Length: l}
		offset += l
	}
	return segs
}

// demand returns the constraint's requested length as a real number
func (c Constraint) demand(extent float64) float64 {
	switch c.Kind {
	case ConstraintFixed, ConstraintAtLeast, ConstraintAtMost:
		if c.Value < 0 {
			return 0
		}
		return float64(c.Value)
	case ConstraintPercent:
		return extent * float64(c.Value) / 100
	case ConstraintRatio:
		if c.Den == 0 {
			return 0
		}
		return extent * float64(c.Num) / float64(c.Den)
	default: // ConstraintFill resolved separately
		return 0
	}
}

func (c Constraint) bounded() bool {
	return c.Kind == ConstraintAtLeast || c.Kind == ConstraintAtMost
}

func countFill(constraints []Constraint) int {
	n := 0
	for _, c := range constraints {
		if c.Kind == ConstraintFill {
			n++
		}
	}
	return n
}

// distribute applies the slack policy in place
func distribute(lengths []int, slack int, policy Distribution) {
	if slack <= 0 || len(lengths) == 0 {
		return
	}
	switch policy {
	case LastTakesRemainder:
		lengths[len(lengths)-1] += slack
	case EvenDistribution:
		share := slack / len(lengths)
		extra := slack % len(lengths)
		for i := range lengths {
			lengths[i] += share
			if i < extra {
				lengths[i]++
			}
		}
	}
}
