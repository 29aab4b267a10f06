package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	actionStart  = "session:start"
	actionSelect = "session:select"
	actionReset  = "session:reset"
	actionState  = "session:state"
	actionRender = "session:render"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Session struct {
	ID string `json:"id"`
}

type Payload struct {
	Session *Session     `json:"session,omitempty"`
	Token   string       `json:"token,omitempty"`
	View    *entity.View `json:"view,omitempty"`
	Error   string       `json:"error,omitempty"`
}
