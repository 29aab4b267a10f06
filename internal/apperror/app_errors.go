package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrInvalidToken    = errors.New("invalid cell token")
	ErrNoEmptyCell     = errors.New("no empty cell left")
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownCommand  = errors.New("unknown command")
)
