package entity

import (
	"errors"
	"fmt"
)

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Cross
	Circle
)

const (
	EmptySymbol  = "."
	CrossSymbol  = "X"
	CircleSymbol = "O"
)

var ErrUnknownSymbol = errors.New("unknown cell symbol")

// Symbol returns the display symbol of the cell.
func (that Cell) Symbol() string {
	switch that {
	case Cross:
		return CrossSymbol
	case Circle:
		return CircleSymbol
	default:
		return EmptySymbol
	}
}

func (that Cell) IsValid() bool {
	return that == Empty || that == Cross || that == Circle
}

func (that Cell) String() string {
	return that.Symbol()
}

// ParseSymbol converts a display symbol back to a cell.
func ParseSymbol(symbol string) (Cell, error) {
	switch symbol {
	case EmptySymbol:
		return Empty, nil
	case CrossSymbol:
		return Cross, nil
	case CircleSymbol:
		return Circle, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
}
