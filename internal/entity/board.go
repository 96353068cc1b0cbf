package entity

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	CenterCell = 4
)

var (
	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}

	CornerCells = [4]int{0, 2, 6, 8}
)

// Board is the 3x3 grid in row-major order.
type Board [9]string

// Winner returns the mark that filled a win combo, or EmptyCell.
func (that Board) Winner() string {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Result returns the winner mark, PlayerTie for a full board without a winner,
// or EmptyCell while the game continues.
func (that Board) Result() string {
	if winner := that.Winner(); winner != EmptyCell {
		return winner
	}

	if that.IsFull() {
		return PlayerTie
	}

	return EmptyCell
}

func (that Board) IsTerminal() bool {
	return that.Result() != EmptyCell
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// NextMark infers whose turn it is from the mark counts, X moves first.
func (that Board) NextMark() string {
	var x, o int
	for _, cell := range that {
		switch cell {
		case PlayerX:
			x++
		case PlayerO:
			o++
		}
	}

	if x > o {
		return PlayerO
	}

	return PlayerX
}

// Place returns a copy of the board with mark at cell.
func (that Board) Place(cell int, mark string) Board {
	that[cell] = mark
	return that
}

func IsValidMark(mark string) bool {
	return mark == PlayerX || mark == PlayerO
}

func Opponent(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
