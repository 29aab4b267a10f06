package tictactoe

import "github.com/rocketscienceinc/tictactoe-bot/internal/entity"

// WinLines holds the 8 lines checked for a win: rows 0..2, columns 0..2,
// then the main and the secondary diagonal.
var WinLines = [8][3]entity.Position{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// Evaluate computes the outcome of the board: the first completed line wins,
// a full board without one is a tie, anything else continues.
func Evaluate(board entity.Board) entity.Outcome {
	for _, line := range WinLines {
		a := board.Get(line[0].Row, line[0].Col)
		b := board.Get(line[1].Row, line[1].Col)
		c := board.Get(line[2].Row, line[2].Col)

		if a != entity.Empty && a == b && b == c {
			return entity.WonBy(a)
		}
	}

	if board.IsFull() {
		return entity.Tied()
	}

	return entity.Continued()
}
