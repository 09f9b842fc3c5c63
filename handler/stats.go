package handler

import "sync/atomic"

// Stats tracks handler statistics
type Stats struct {
	// FormattedTotal counts records written
	FormattedTotal uint64
	// EchoedTotal counts raw lines written
	EchoedTotal uint64
	// FailedTotal counts failed writes
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementFormatted atomically increments the formatted counter
func (s *Stats) IncrementFormatted() {
	atomic.AddUint64(&s.FormattedTotal, 1)
}

// IncrementEchoed atomically increments the echoed counter
func (s *Stats) IncrementEchoed() {
	atomic.AddUint64(&s.EchoedTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// GetFormatted returns the formatted count
func (s *Stats) GetFormatted() uint64 {
	return atomic.LoadUint64(&s.FormattedTotal)
}

// GetEchoed returns the echoed count
func (s *Stats) GetEchoed() uint64 {
	return atomic.LoadUint64(&s.EchoedTotal)
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	FormattedTotal uint64
	EchoedTotal    uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		FormattedTotal: s.GetFormatted(),
		EchoedTotal:    s.GetEchoed(),
		FailedTotal:    s.GetFailed(),
	}
}
