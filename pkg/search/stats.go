package search

import (
	"fmt"
	"time"
)

// Statistics reports diagnostic counters for the most recent search.
type Statistics struct {
	NodesSearched int
	Cutoffs       int
	TTHits        int
	TTMisses      int
	TTUsed        float64
	Elapsed       time.Duration
}

// NodesPerSecond returns the search rate, or zero if no time has elapsed.
func (s Statistics) NodesPerSecond() float64 {
	secs := s.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.NodesSearched) / secs
}

func (s Statistics) String() string {
	return fmt.Sprintf("nodes=%v cutoffs=%v tt_hits=%v tt_misses=%v tt_used=%.0f%% time=%v nps=%.0f",
		s.NodesSearched, s.Cutoffs, s.TTHits, s.TTMisses, 100*s.TTUsed, s.Elapsed, s.NodesPerSecond())
}
