package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Analysis is everything the engine can say about a single position.
type Analysis struct {
	Board    tictactoe.Board   `json:"board"`
	Player   tictactoe.Mark    `json:"player"`
	Actions  []tictactoe.Move  `json:"actions"`
	Winner   tictactoe.Mark    `json:"winner"`
	Terminal bool              `json:"terminal"`
	Utility  int               `json:"utility"`
	Outcome  tictactoe.Outcome `json:"outcome"`
	Move     *tictactoe.Move   `json:"move"`
}

type AnalysisService interface {
	Analyze(board tictactoe.Board) (*Analysis, error)
}

type analysisService struct {
	search SearchFunc
}

func NewAnalysisService(parallel bool) AnalysisService {
	if parallel {
		return &analysisService{search: tictactoe.MinimaxParallel}
	}
	return &analysisService{search: tictactoe.Minimax}
}

// Analyze rejects boards that alternating play cannot produce, then reports
// the position and the optimal move, if the game is not over.
func (that *analysisService) Analyze(board tictactoe.Board) (*Analysis, error) {
	if err := tictactoe.Validate(board); err != nil {
		return nil, fmt.Errorf("failed to analyze board: %w", err)
	}

	winner, _ := tictactoe.Winner(board)

	analysis := &Analysis{
		Board:    board,
		Player:   tictactoe.Player(board),
		Actions:  tictactoe.Actions(board),
		Winner:   winner,
		Terminal: tictactoe.Terminal(board),
		Utility:  tictactoe.Utility(board),
		Outcome:  tictactoe.Evaluate(board),
	}

	if move, ok := that.search(board); ok {
		analysis.Move = &move
	}

	return analysis, nil
}
