package bench

import (
	"time"

	"github.com/cwbudde/algo-fourier/dsp/transform"
)

// Record is the measurement for one size.
type Record struct {
	N             int
	DirectTime    time.Duration
	RecursiveTime time.Duration
	DirectOps     transform.OpCount
	RecursiveOps  transform.OpCount
}

// Series holds the results of one run as parallel slices indexed by the
// position of the size in the requested sequence.
type Series struct {
	Sizes          []int
	DirectTimes    []time.Duration
	RecursiveTimes []time.Duration
	DirectOps      []transform.OpCount
	RecursiveOps   []transform.OpCount
}

func newSeries(capacity int) Series {
	return Series{
		Sizes:          make([]int, 0, capacity),
		DirectTimes:    make([]time.Duration, 0, capacity),
		RecursiveTimes: make([]time.Duration, 0, capacity),
		DirectOps:      make([]transform.OpCount, 0, capacity),
		RecursiveOps:   make([]transform.OpCount, 0, capacity),
	}
}

func (s *Series) append(r Record) {
	s.Sizes = append(s.Sizes, r.N)
	s.DirectTimes = append(s.DirectTimes, r.DirectTime)
	s.RecursiveTimes = append(s.RecursiveTimes, r.RecursiveTime)
	s.DirectOps = append(s.DirectOps, r.DirectOps)
	s.RecursiveOps = append(s.RecursiveOps, r.RecursiveOps)
}

// Len returns the number of measured sizes.
func (s Series) Len() int { return len(s.Sizes) }

// Record returns the measurement at position i.
func (s Series) Record(i int) Record {
	return Record{
		N:             s.Sizes[i],
		DirectTime:    s.DirectTimes[i],
		RecursiveTime: s.RecursiveTimes[i],
		DirectOps:     s.DirectOps[i],
		RecursiveOps:  s.RecursiveOps[i],
	}
}

// Records returns every measurement in order.
func (s Series) Records() []Record {
	out := make([]Record, s.Len())
	for i := range out {
		out[i] = s.Record(i)
	}
	return out
}

// Speedup returns DirectTime/RecursiveTime, or 0 when the radix-2 time is zero.
func (r Record) Speedup() float64 {
	if r.RecursiveTime <= 0 {
		return 0
	}
	return float64(r.DirectTime) / float64(r.RecursiveTime)
}
