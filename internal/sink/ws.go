package sink

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sugawarayuuta/sonnet"

	"github.com/0x5844/physics2d/internal/collision"
)

// wireTick and wireCollision are the JSON-shaped wire records sent to a
// live dashboard — the per-tick metrics record and the optional
// per-collision record, marshaled with sonnet (a drop-in, faster
// encoding/json-shaped marshaler also used by the scene loader in
// internal/boundary/scene.go) rather than pulling in a second JSON
// engine.
type wireTick struct {
	TickIndex       uint64  `json:"tick_index"`
	CircleCount     uint64  `json:"circle_count"`
	ElapsedSeconds  float32 `json:"elapsed_seconds"`
	TotalCollisions uint32  `json:"total_collisions"`
}

type wireCollision struct {
	MovingName        string `json:"moving_name"`
	MovingHPAfter     int32  `json:"moving_hp_after"`
	StationaryName    string `json:"stationary_name"`
	StationaryHPAfter int32  `json:"stationary_hp_after"`
}

// WebsocketSink streams every tick (and, optionally, every collision) as
// a JSON text frame to a caller-supplied dashboard endpoint. It only ever
// dials out — the sink is a client of the dashboard, not its server.
type WebsocketSink struct {
	conn *websocket.Conn
}

// DialWebsocketSink connects to url (e.g. "ws://localhost:8090/metrics").
func DialWebsocketSink(url string) (*WebsocketSink, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("sink: dialing websocket %s: %w", url, err)
	}
	return &WebsocketSink{conn: conn}, nil
}

func (s *WebsocketSink) Record(m collision.TickMetrics) error {
	payload, err := sonnet.Marshal(wireTick{
		TickIndex:       m.TickIndex,
		CircleCount:     m.CircleCount,
		ElapsedSeconds:  m.ElapsedSeconds,
		TotalCollisions: m.TotalCollisions,
	})
	if err != nil {
		return fmt.Errorf("sink: encoding tick: %w", err)
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("sink: websocket write: %w", err)
	}
	return nil
}

func (s *WebsocketSink) RecordCollision(e collision.CollisionEvent) error {
	payload, err := sonnet.Marshal(wireCollision{
		MovingName:        e.MovingName,
		MovingHPAfter:     e.MovingHPAfter,
		StationaryName:    e.StationaryName,
		StationaryHPAfter: e.StationaryHPAfter,
	})
	if err != nil {
		return fmt.Errorf("sink: encoding collision: %w", err)
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("sink: websocket write: %w", err)
	}
	return nil
}

// Close closes the underlying websocket connection.
func (s *WebsocketSink) Close() error {
	return s.conn.Close()
}
