package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachableBoards walks every position that alternating play from the empty
// board can produce, stopping at finished games.
func reachableBoards(t *testing.T) []Board {
	t.Helper()

	seen := map[Board]struct{}{}
	var walk func(b Board)
	walk = func(b Board) {
		if _, ok := seen[b]; ok {
			return
		}
		seen[b] = struct{}{}

		if Terminal(b) {
			return
		}

		for _, move := range Actions(b) {
			next, err := Result(b, move)
			require.NoError(t, err)
			walk(next)
		}
	}
	walk(InitialState())

	boards := make([]Board, 0, len(seen))
	for b := range seen {
		boards = append(boards, b)
	}
	return boards
}

func TestInitialState(t *testing.T) {
	// When: the initial board is created
	board := InitialState()

	// Then: every cell is empty and X is to move
	assert.Equal(t, Board{}, board)
	assert.Equal(t, MarkX, Player(board))
	assert.Len(t, Actions(board), 9)
	assert.False(t, Terminal(board))
}

func TestPlayer(t *testing.T) {
	t.Run("X moves when counts are equal", func(t *testing.T) {
		// Given: a board with two marks of each side
		board := MustParseBoard("XO_|OX_|___")

		// Then: X is to move
		assert.Equal(t, MarkX, Player(board))
	})

	t.Run("O moves when X leads by one", func(t *testing.T) {
		// Given: a board where X has one more mark
		board := MustParseBoard("XX_|O__|___")

		// Then: O is to move
		assert.Equal(t, MarkO, Player(board))
	})

	t.Run("Full board reports O", func(t *testing.T) {
		// Given: a drawn, full board
		board := MustParseBoard("XOX|XOO|OXX")

		// Then: the parity rule still names O even though no move exists
		assert.Equal(t, MarkO, Player(board))
		assert.Empty(t, Actions(board))
	})
}

func TestActions(t *testing.T) {
	t.Run("Row-major order", func(t *testing.T) {
		// Given: a board with four empty cells
		board := MustParseBoard("X_O|_XO|__X")

		// When: listing the legal moves
		moves := Actions(board)

		// Then: they are returned row by row, left to right
		assert.Equal(t, []Move{{0, 1}, {1, 0}, {2, 0}, {2, 1}}, moves)
	})

	t.Run("Full board has no moves", func(t *testing.T) {
		board := MustParseBoard("XOX|XOO|OXX")

		assert.Empty(t, Actions(board))
	})
}

func TestResult(t *testing.T) {
	t.Run("Places the active mark", func(t *testing.T) {
		// Given: a board with O to move
		board := MustParseBoard("X__|___|___")

		// When: O takes the centre
		next, err := Result(board, Move{Row: 1, Col: 1})

		// Then: only the centre changes and it holds O
		require.NoError(t, err)
		assert.Equal(t, MustParseBoard("X__|_O_|___"), next)
	})

	t.Run("Input board is not modified", func(t *testing.T) {
		// Given: a board and a snapshot of it
		board := MustParseBoard("X__|___|___")
		snapshot := board

		// When: a move is applied
		_, err := Result(board, Move{Row: 2, Col: 2})
		require.NoError(t, err)

		// Then: the original board is unchanged
		assert.Equal(t, snapshot, board)
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a board where (0,0) is taken
		board := MustParseBoard("X__|___|___")

		// When: O tries to play there
		_, err := Result(board, Move{Row: 0, Col: 0})

		// Then: ErrInvalidMove is returned
		require.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("Error on cell off the board", func(t *testing.T) {
		board := InitialState()

		for _, move := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			_, err := Result(board, move)
			assert.ErrorIs(t, err, ErrInvalidMove, "move %s", move)
		}
	})
}

func TestWinner(t *testing.T) {
	testCases := []struct {
		name   string
		board  string
		winner Mark
		ok     bool
	}{
		{name: "Row", board: "XXX|OO_|___", winner: MarkX, ok: true},
		{name: "Column", board: "OX_|OX_|O_X", winner: MarkO, ok: true},
		{name: "Diagonal", board: "XO_|OX_|__X", winner: MarkX, ok: true},
		{name: "Anti-diagonal", board: "XXO|XO_|O__", winner: MarkO, ok: true},
		{name: "Ongoing", board: "XO_|_X_|__O", winner: Empty, ok: false},
		{name: "Draw", board: "XOX|XOO|OXX", winner: Empty, ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			winner, ok := Winner(MustParseBoard(tc.board))

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.winner, winner)
		})
	}
}

func TestTerminalAndUtility(t *testing.T) {
	t.Run("X has won", func(t *testing.T) {
		// Given: X completed the top row
		board := MustParseBoard("XXX|OO_|___")

		// Then: the game is over and scores 1
		winner, ok := Winner(board)
		require.True(t, ok)
		assert.Equal(t, MarkX, winner)
		assert.True(t, Terminal(board))
		assert.Equal(t, 1, Utility(board))
		assert.Equal(t, WinsX, Evaluate(board))
	})

	t.Run("O has won", func(t *testing.T) {
		board := MustParseBoard("XX_|OOO|X__")

		assert.True(t, Terminal(board))
		assert.Equal(t, -1, Utility(board))
		assert.Equal(t, WinsO, Evaluate(board))
	})

	t.Run("Draw", func(t *testing.T) {
		board := MustParseBoard("XOX|XOO|OXX")

		assert.True(t, Terminal(board))
		assert.Equal(t, 0, Utility(board))
		assert.Equal(t, Draw, Evaluate(board))
	})

	t.Run("Ongoing", func(t *testing.T) {
		board := MustParseBoard("XO_|___|___")

		assert.False(t, Terminal(board))
		assert.Equal(t, 0, Utility(board))
		assert.Equal(t, NoWinnerYet, Evaluate(board))
	})
}

func TestValidate(t *testing.T) {
	t.Run("Reachable boards are valid", func(t *testing.T) {
		for _, board := range reachableBoards(t) {
			require.NoError(t, Validate(board), board.String())
		}
	})

	t.Run("O ahead of X", func(t *testing.T) {
		err := Validate(MustParseBoard("O__|___|___"))

		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("X two ahead", func(t *testing.T) {
		err := Validate(MustParseBoard("XX_|___|___"))

		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("Both players own a line", func(t *testing.T) {
		err := Validate(MustParseBoard("XXX|OOO|___"))

		require.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestReachableBoardProperties(t *testing.T) {
	boards := reachableBoards(t)

	// 5478 distinct positions are reachable in tic-tac-toe
	require.Len(t, boards, 5478)

	for _, board := range boards {
		filled := 9 - board.count(Empty)
		moves := Actions(board)

		assert.Len(t, moves, 9-filled, board.String())

		_, hasWinner := Winner(board)
		assert.Equal(t, hasWinner || len(moves) == 0, Terminal(board), board.String())

		if Terminal(board) {
			continue
		}

		for _, move := range moves {
			snapshot := board

			next, err := Result(board, move)
			require.NoError(t, err)

			assert.Equal(t, snapshot, board, "Result modified %s", board)
			assert.NotEqual(t, Player(board), Player(next), board.String())
			assert.Equal(t, filled+1, 9-next.count(Empty))
			assert.Equal(t, Player(board), next.At(move))
		}
	}
}
