package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameService interface {
	CreateGame(ctx context.Context, humanMark tictactoe.Mark) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error
}

type botService interface {
	MakeTurn(game *entity.Game) error
}

type analysisService interface {
	Analyze(board tictactoe.Board) (*service.Analysis, error)
}

// GameManager runs games between a human and the engine. A game is stored
// while it is ongoing and removed once it finishes.
type GameManager struct {
	logger *slog.Logger

	gameService     gameService
	botService      botService
	analysisService analysisService
}

func NewGameManager(logger *slog.Logger, gameService gameService, botService botService, analysisService analysisService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameService:     gameService,
		botService:      botService,
		analysisService: analysisService,
	}
}

// StartGame creates a game for the human's mark. When the engine holds X it
// opens immediately.
func (that *GameManager) StartGame(ctx context.Context, humanMark tictactoe.Mark) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, humanMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if game.IsEngineTurn() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("game started", "gameID", game.ID, "humanMark", game.HumanMark.String())

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn plays the human's move and, if the game goes on, the engine's
// reply. The returned game reflects both moves.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, move tictactoe.Move) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err = game.MakeTurn(game.HumanMark, move); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsEngineTurn() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if game.IsFinished() {
		that.cleanupGame(ctx, game)

		return game, nil
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// Analyze reports on a board that is not tied to any stored game.
func (that *GameManager) Analyze(board tictactoe.Board) (*service.Analysis, error) {
	analysis, err := that.analysisService.Analyze(board)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze board: %w", err)
	}

	return analysis, nil
}

func (that *GameManager) cleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame", "gameID", game.ID)

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game finished", "outcome", game.Outcome.String())
}
