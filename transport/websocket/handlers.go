package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/usecase"
)

// connection is one hijacked client connection bound to a chat session.
type connection struct {
	bufrw     *bufio.ReadWriter
	sessionID string
}

func (that *connection) send(action string, payload Payload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	responseBytes, err := json.Marshal(Message{Action: action, Payload: payloadBytes})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	return writeFrame(that.bufrw.Writer, textFrame(responseBytes))
}

func (that *connection) sendError(action, errorMsg string) error {
	return that.send(action, Payload{
		Session: &Session{ID: that.sessionID},
		Error:   errorMsg,
	})
}

// presenter pushes every view as its own render message, so the human move
// and the bot reply reach the client separately.
func (that *connection) presenter(sessionID string) usecase.Presenter {
	return usecase.PresenterFunc(func(_ context.Context, view *entity.View) error {
		return that.send(actionRender, Payload{
			Session: &Session{ID: sessionID},
			View:    view,
		})
	})
}

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}

// handleCommand plays a command on the connection's own session. A session
// id sent in the payload is ignored.
func (that *Server) handleCommand(command string) handlerFunc {
	return func(ctx context.Context, conn *connection, msg *Message) error {
		if _, err := decodePayload(msg); err != nil {
			return conn.sendError(msg.Action, "invalid payload")
		}

		return that.dispatch(ctx, conn, msg.Action, command)
	}
}

func (that *Server) handleSelect(ctx context.Context, conn *connection, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return conn.sendError(msg.Action, "invalid payload")
	}

	if !entity.IsToken(payload.Token) {
		return conn.sendError(msg.Action, fmt.Sprintf("invalid cell token %q", payload.Token))
	}

	return that.dispatch(ctx, conn, msg.Action, payload.Token)
}

func (that *Server) handleState(ctx context.Context, conn *connection, msg *Message) error {
	if _, err := decodePayload(msg); err != nil {
		return conn.sendError(msg.Action, "invalid payload")
	}

	sessionID := conn.sessionID

	view, err := that.gameUseCase.GetGame(ctx, sessionID)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return conn.sendError(msg.Action, "no game in this session, send session:start")
	}

	if err != nil {
		return errors.Join(err, conn.sendError(msg.Action, "failed to get the game"))
	}

	return conn.send(msg.Action, Payload{Session: &Session{ID: sessionID}, View: view})
}

func (that *Server) dispatch(ctx context.Context, conn *connection, action, token string) error {
	sessionID := conn.sessionID
	log := that.logger.With("method", "dispatch", "sessionID", sessionID, "token", token)

	err := that.gameUseCase.Handle(ctx, sessionID, token, conn.presenter(sessionID))
	if err == nil {
		return nil
	}

	log.Error("failed to handle event", "error", err)

	if errors.Is(err, apperror.ErrUnknownCommand) || errors.Is(err, apperror.ErrInvalidToken) {
		return conn.sendError(action, err.Error())
	}

	return errors.Join(err, conn.sendError(action, "failed to process the move"))
}
