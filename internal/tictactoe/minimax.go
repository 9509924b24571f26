package tictactoe

import (
	"golang.org/x/sync/errgroup"
)

// role tells the recursion which side it is scoring for. X maximizes the
// utility and O minimizes it.
type role uint8

const (
	maximizing role = iota
	minimizing
)

func roleOf(mark Mark) role {
	if mark == MarkO {
		return minimizing
	}
	return maximizing
}

func (r role) opponent() role {
	if r == maximizing {
		return minimizing
	}
	return maximizing
}

// worst is a bound every reachable utility improves on.
func (r role) worst() int {
	if r == maximizing {
		return -2
	}
	return 2
}

func (r role) improves(candidate, best int) bool {
	if r == maximizing {
		return candidate > best
	}
	return candidate < best
}

// value returns the utility that the side playing r can guarantee on b when
// both sides play perfectly from here.
func value(b Board, r role) int {
	if Terminal(b) {
		return Utility(b)
	}

	mark := Player(b)
	best := r.worst()
	for _, move := range Actions(b) {
		if v := value(b.place(move, mark), r.opponent()); r.improves(v, best) {
			best = v
		}
	}

	return best
}

// MaxValue is the utility X can guarantee on b.
func MaxValue(b Board) int {
	return value(b, maximizing)
}

// MinValue is the utility O can guarantee on b.
func MinValue(b Board) int {
	return value(b, minimizing)
}

// Minimax returns the optimal move for the player to move on b, or false when
// the game is already over. Among equally good moves the first one in
// row-major order wins.
func Minimax(b Board) (Move, bool) {
	if Terminal(b) {
		return Move{}, false
	}

	mark := Player(b)
	moves := Actions(b)
	scores := make([]int, len(moves))
	for i, move := range moves {
		scores[i] = value(b.place(move, mark), roleOf(mark).opponent())
	}

	return pick(moves, scores, roleOf(mark)), true
}

// MinimaxParallel is Minimax with every top-level subtree searched on its own
// goroutine. The result is identical to Minimax.
func MinimaxParallel(b Board) (Move, bool) {
	if Terminal(b) {
		return Move{}, false
	}

	mark := Player(b)
	moves := Actions(b)
	scores := make([]int, len(moves))

	var group errgroup.Group
	for i, move := range moves {
		i := i
		child := b.place(move, mark)
		group.Go(func() error {
			scores[i] = value(child, roleOf(mark).opponent())
			return nil
		})
	}

	// workers never fail
	_ = group.Wait()

	return pick(moves, scores, roleOf(mark)), true
}

// pick applies the tie-break: a later move replaces the running best only when
// it is strictly better for r.
func pick(moves []Move, scores []int, r role) Move {
	best, bestScore := moves[0], scores[0]
	for i := 1; i < len(moves); i++ {
		if r.improves(scores[i], bestScore) {
			best, bestScore = moves[i], scores[i]
		}
	}
	return best
}
