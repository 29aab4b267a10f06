package entity

// Button is one selectable keyboard cell.
type Button struct {
	Text string `json:"text"`
	Data string `json:"data"`
}

// View is a render instruction for the chat transport.
type View struct {
	Text     string             `json:"text"`
	Result   string             `json:"result,omitempty"`
	Phase    Phase              `json:"phase"`
	Keyboard [Size][Size]Button `json:"keyboard"`
}

// NewView builds a render of the given board. Rows are outer, columns inner,
// and every button carries its own "{row}{col}" token.
func NewView(board Board, phase Phase, text, result string) *View {
	view := &View{
		Text:   text,
		Result: result,
		Phase:  phase,
	}

	for r, row := range board.Symbols() {
		for c, symbol := range row {
			view.Keyboard[r][c] = Button{
				Text: symbol,
				Data: Position{Row: r, Col: c}.Token(),
			}
		}
	}

	return view
}

// Grid returns the keyboard symbols only.
func (that *View) Grid() [Size][Size]string {
	var grid [Size][Size]string
	for r, row := range that.Keyboard {
		for c, button := range row {
			grid[r][c] = button.Text
		}
	}

	return grid
}
