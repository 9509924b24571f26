package tictactoe

import (
	"encoding/json"
	"fmt"
	"strings"
)

const rowSeparator = "|"

func (m Mark) String() string {
	switch m {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

func (m Mark) MarshalText() ([]byte, error) {
	if m > MarkO {
		return nil, fmt.Errorf("unknown mark %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText accepts "X", "O" and, for an empty cell, "" or "_".
func (m *Mark) UnmarshalText(text []byte) error {
	mark, err := parseMark(string(text))
	if err != nil {
		return err
	}

	*m = mark
	return nil
}

func parseMark(s string) (Mark, error) {
	switch strings.ToUpper(s) {
	case "X":
		return MarkX, nil
	case "O":
		return MarkO, nil
	case "", "_":
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: unknown mark %q", ErrInvalidState, s)
	}
}

// String renders the board row-major, one character per cell and "|" between
// rows, e.g. "XOX|_O_|___".
func (b Board) String() string {
	var sb strings.Builder
	for r, row := range b {
		if r > 0 {
			sb.WriteString(rowSeparator)
		}

		for _, cell := range row {
			if cell == Empty {
				sb.WriteByte('_')
				continue
			}
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

// ParseBoard reads the notation produced by Board.String. Row separators and
// whitespace are optional; exactly nine cells are required.
func ParseBoard(s string) (Board, error) {
	var board Board

	cells := 0
	for _, ch := range s {
		switch ch {
		case '|', ' ', '\t', '\n':
			continue
		}

		if cells == Size*Size {
			return Board{}, fmt.Errorf("%w: more than %d cells in %q", ErrInvalidState, Size*Size, s)
		}

		mark, err := parseMark(string(ch))
		if err != nil {
			return Board{}, err
		}

		board[cells/Size][cells%Size] = mark
		cells++
	}

	if cells != Size*Size {
		return Board{}, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidState, Size*Size, cells)
	}

	return board, nil
}

// MustParseBoard is ParseBoard for fixed literals; it panics on malformed input.
func MustParseBoard(s string) Board {
	board, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return board
}

func (b Board) MarshalJSON() ([]byte, error) {
	rows := make([][]Mark, Size)
	for r := range b {
		rows[r] = b[r][:]
	}
	return json.Marshal(rows)
}

// UnmarshalJSON requires a 3x3 array of marks.
func (b *Board) UnmarshalJSON(data []byte) error {
	var rows [][]Mark
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	if len(rows) != Size {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidState, Size, len(rows))
	}

	var board Board
	for r, row := range rows {
		if len(row) != Size {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidState, r, len(row))
		}
		copy(board[r][:], row)
	}

	*b = board
	return nil
}
