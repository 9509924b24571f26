package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a live match between a human and the engine.
type Game struct {
	ID         string            `json:"id"`
	Board      tictactoe.Board   `json:"board"`
	Turn       tictactoe.Mark    `json:"player_turn"`
	Outcome    tictactoe.Outcome `json:"outcome"`
	Status     string            `json:"status"`
	HumanMark  tictactoe.Mark    `json:"human_mark"`
	EngineMark tictactoe.Mark    `json:"engine_mark"`
}

func NewGame(id string, humanMark tictactoe.Mark) (*Game, error) {
	if humanMark != tictactoe.MarkX && humanMark != tictactoe.MarkO {
		return nil, fmt.Errorf("%w: got %q", apperror.ErrInvalidMark, humanMark)
	}

	board := tictactoe.InitialState()

	return &Game{
		ID:         id,
		Board:      board,
		Turn:       tictactoe.Player(board),
		Outcome:    tictactoe.NoWinnerYet,
		Status:     StatusOngoing,
		HumanMark:  humanMark,
		EngineMark: humanMark.Opponent(),
	}, nil
}

// UpdateGameState derives turn, outcome and status from the board.
func (that *Game) UpdateGameState() {
	that.Outcome = tictactoe.Evaluate(that.Board)

	if that.Outcome != tictactoe.NoWinnerYet {
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
		return
	}

	that.Status = StatusOngoing
	that.Turn = tictactoe.Player(that.Board)
}

func (that *Game) MakeTurn(mark tictactoe.Mark, move tictactoe.Move) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := tictactoe.Result(that.Board, move)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = board
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsEngineTurn() bool {
	return that.IsOngoing() && that.Turn == that.EngineMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
