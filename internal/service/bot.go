package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// SearchFunc picks the move for the player to act on a board.
type SearchFunc func(board tictactoe.Board) (tictactoe.Move, bool)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	logger *slog.Logger
	search SearchFunc
}

// NewBotService returns a bot that plays the engine's mark with perfect play.
// With parallel set, top-level candidates are searched concurrently.
func NewBotService(logger *slog.Logger, parallel bool) BotService {
	search := tictactoe.Minimax
	if parallel {
		search = tictactoe.MinimaxParallel
	}

	return &botService{
		logger: logger.With("component", "bot"),
		search: search,
	}
}

func (that *botService) MakeTurn(game *entity.Game) error {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if tictactoe.Terminal(game.Board) {
		return ErrNoAvailableMoves
	}

	if game.Turn != game.EngineMark {
		return apperror.ErrNotYourTurn
	}

	started := time.Now()

	move, ok := that.search(game.Board)
	if !ok {
		return ErrNoAvailableMoves
	}

	log.Debug("engine chose move", "board", game.Board.String(), "move", move.String(), "took", time.Since(started))

	if err := game.MakeTurn(game.EngineMark, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
