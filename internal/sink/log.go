// Package sink provides the concrete Sink implementations: a default
// stdlib-log sink, a durable SQLite sink, and a live-streaming websocket
// sink.
package sink

import (
	"log"

	"github.com/0x5844/physics2d/internal/collision"
)

// LogSink writes one line per tick (and one per collision) through the
// standard log package when Verbose is set, and writes nothing otherwise.
// It cannot fail in a way the engine can observe, so Record always returns
// nil.
type LogSink struct {
	Verbose bool
}

// NewLogSink builds the default sink.
func NewLogSink(verbose bool) *LogSink {
	return &LogSink{Verbose: verbose}
}

func (s *LogSink) Record(m collision.TickMetrics) error {
	if s.Verbose {
		log.Printf("tick=%d circles=%d elapsed=%.4fs collisions=%d",
			m.TickIndex, m.CircleCount, m.ElapsedSeconds, m.TotalCollisions)
	}
	return nil
}

func (s *LogSink) RecordCollision(e collision.CollisionEvent) error {
	if s.Verbose {
		log.Printf("collision: %s(hp=%d) vs %s(hp=%d)",
			e.MovingName, e.MovingHPAfter, e.StationaryName, e.StationaryHPAfter)
	}
	return nil
}
