package tictactoe

import (
	"errors"
	"fmt"
)

// Size is the side length of the board.
const Size = 3

const (
	Empty Mark = iota
	MarkX
	MarkO
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidState = errors.New("invalid board state")

	// winLines lists rows, then columns, then both diagonals.
	winLines = [8][3]Move{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
)

// Mark is the content of a single cell.
type Mark uint8

// Opponent returns the other player's mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// Move addresses a cell by row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) inRange() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Board is a 3x3 grid. It is a value type: assigning or passing a Board copies it,
// which is what keeps sibling branches of the search independent.
type Board [Size][Size]Mark

// InitialState returns the empty board.
func InitialState() Board {
	return Board{}
}

func (b Board) count(mark Mark) int {
	n := 0
	for _, row := range b {
		for _, cell := range row {
			if cell == mark {
				n++
			}
		}
	}
	return n
}

// At returns the mark stored at move.
func (b Board) At(move Move) Mark {
	return b[move.Row][move.Col]
}

// Player returns the mark due to move next. X moves when both sides have
// placed the same number of marks, O when X is one ahead. A full board still
// reports O by the same rule even though no legal move exists.
func Player(b Board) Mark {
	if b.count(MarkX) > b.count(MarkO) {
		return MarkO
	}
	return MarkX
}

// Actions returns every empty cell in row-major order.
func Actions(b Board) []Move {
	moves := make([]Move, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// Result returns the board after the player to move marks the given cell.
// The input board is never modified.
func Result(b Board, move Move) (Board, error) {
	if !move.inRange() {
		return b, fmt.Errorf("%w: cell %s is off the board", ErrInvalidMove, move)
	}

	if b.At(move) != Empty {
		return b, fmt.Errorf("%w: cell %s is already occupied", ErrInvalidMove, move)
	}

	return b.place(move, Player(b)), nil
}

// place writes mark into a copy of b. Callers guarantee that move is legal.
func (b Board) place(move Move, mark Mark) Board {
	b[move.Row][move.Col] = mark
	return b
}

// Winner returns the mark owning a complete line, if any.
func Winner(b Board) (Mark, bool) {
	for _, line := range winLines {
		first := b.At(line[0])
		if first != Empty && first == b.At(line[1]) && first == b.At(line[2]) {
			return first, true
		}
	}
	return Empty, false
}

// Terminal reports whether the game on b is over.
func Terminal(b Board) bool {
	if _, ok := Winner(b); ok {
		return true
	}
	return b.count(Empty) == 0
}

// Utility scores a finished board from X's point of view: 1 when X has won,
// -1 when O has won, 0 otherwise. The value is meaningless for boards that are
// not terminal.
func Utility(b Board) int {
	switch winner, _ := Winner(b); winner {
	case MarkX:
		return 1
	case MarkO:
		return -1
	default:
		return 0
	}
}

// Validate checks that b can arise from alternating play starting with X.
func Validate(b Board) error {
	x, o := b.count(MarkX), b.count(MarkO)
	if diff := x - o; diff != 0 && diff != 1 {
		return fmt.Errorf("%w: %d X marks against %d O marks", ErrInvalidState, x, o)
	}

	var xLine, oLine bool
	for _, line := range winLines {
		first := b.At(line[0])
		if first == Empty || first != b.At(line[1]) || first != b.At(line[2]) {
			continue
		}

		if first == MarkX {
			xLine = true
		} else {
			oLine = true
		}
	}

	if xLine && oLine {
		return fmt.Errorf("%w: both players own a line", ErrInvalidState)
	}

	return nil
}
