package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

// Position addresses a board square by row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) IsOnBoard() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// Token encodes the position as the two digit "{row}{col}" string used by keyboards.
func (that Position) Token() string {
	return fmt.Sprintf("%d%d", that.Row, that.Col)
}

// ParseToken decodes a "{row}{col}" keyboard token.
func ParseToken(token string) (Position, error) {
	if len(token) != 2 {
		return Position{}, fmt.Errorf("%w: %q", apperror.ErrInvalidToken, token)
	}

	pos := Position{
		Row: int(token[0]) - '0',
		Col: int(token[1]) - '0',
	}

	if !pos.IsOnBoard() {
		return Position{}, fmt.Errorf("%w: %q", apperror.ErrInvalidToken, token)
	}

	return pos, nil
}

// IsToken reports whether the string has the shape of a cell token.
func IsToken(token string) bool {
	_, err := ParseToken(token)
	return err == nil
}
