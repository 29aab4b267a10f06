package rest

import "github.com/rocketscienceinc/tictactoe-bot/internal/entity"

type SelectRequest struct {
	Token string `json:"token" validate:"required,cell"`
}

// SessionResponse lists the views rendered for one request, in order.
type SessionResponse struct {
	SessionID string         `json:"session_id"`
	Views     []*entity.View `json:"views"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
