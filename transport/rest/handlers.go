package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/usecase"
)

// collector buffers views so the whole exchange fits one HTTP response.
type collector struct {
	views []*entity.View
}

func (that *collector) Present(_ context.Context, view *entity.View) error {
	that.views = append(that.views, view)
	return nil
}

func (that *Server) startSession(w http.ResponseWriter, r *http.Request) {
	that.dispatch(w, r, usecase.CommandStart)
}

func (that *Server) resetSession(w http.ResponseWriter, r *http.Request) {
	that.dispatch(w, r, usecase.CommandReset)
}

func (that *Server) selectCell(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	if err := validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: validationDetails(err)})
		return
	}

	that.dispatch(w, r, req.Token)
}

func (that *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	view, err := that.gameUseCase.GetGame(r.Context(), sessionID)
	if err != nil {
		that.writeError(w, sessionID, err)
		return
	}

	writeJSON(w, http.StatusOK, SessionResponse{SessionID: sessionID, Views: []*entity.View{view}})
}

func (that *Server) dispatch(w http.ResponseWriter, r *http.Request, token string) {
	sessionID := chi.URLParam(r, "id")

	views := &collector{}
	if err := that.gameUseCase.Handle(r.Context(), sessionID, token, views); err != nil {
		that.writeError(w, sessionID, err)
		return
	}

	writeJSON(w, http.StatusOK, SessionResponse{SessionID: sessionID, Views: views.views})
}

func (that *Server) writeError(w http.ResponseWriter, sessionID string, err error) {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "session not found"})
	case errors.Is(err, apperror.ErrUnknownCommand), errors.Is(err, apperror.ErrInvalidToken):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		that.logger.Error("failed to handle request", "sessionID", sessionID, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
