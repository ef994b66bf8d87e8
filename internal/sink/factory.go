package sink

import (
	"fmt"
	"io"

	"github.com/0x5844/physics2d/internal/collision"
)

// Closer is implemented by sinks that hold a resource the caller must
// release at shutdown.
type Closer interface {
	io.Closer
}

// New builds the sink named by kind ("log", "sqlite", or "ws"). target is
// the sqlite file path or websocket URL, as appropriate; it is ignored for
// "log".
func New(kind, target string, recordCollisions bool) (collision.Sink, io.Closer, error) {
	switch kind {
	case "log":
		return NewLogSink(true), nopCloser{}, nil
	case "sqlite":
		s, err := NewSQLiteSink(target, recordCollisions)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case "ws":
		s, err := DialWebsocketSink(target)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("sink: unknown kind %q", kind)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
