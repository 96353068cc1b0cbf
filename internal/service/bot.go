package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

// Tiers maps a game difficulty tier to the way the bot selects moves.
type Tiers map[string]tictactoe.Difficulty

func DefaultTiers(hardOptimalRate float64) Tiers {
	return Tiers{
		entity.EasyDifficulty:       {Mode: tictactoe.ModeRandom},
		entity.MediumDifficulty:     {Mode: tictactoe.ModeHeuristic},
		entity.HardDifficulty:       {Mode: tictactoe.ModeWeighted, OptimalRate: hardOptimalRate},
		entity.ImpossibleDifficulty: {Mode: tictactoe.ModeOptimal},
	}
}

type BotService interface {
	MakeTurn(game *entity.Game) error
	IsKnownDifficulty(difficulty string) bool
	DefaultDifficulty() string
}

type moveSelector interface {
	SelectMove(board entity.Board, side string, difficulty tictactoe.Difficulty) int
}

type botService struct {
	logger *slog.Logger

	selector          moveSelector
	tiers             Tiers
	defaultDifficulty string
}

func NewBotService(logger *slog.Logger, selector moveSelector, tiers Tiers, defaultDifficulty string) BotService {
	return &botService{
		logger:            logger.With("component", "bot"),
		selector:          selector,
		tiers:             tiers,
		defaultDifficulty: defaultDifficulty,
	}
}

func (that *botService) MakeTurn(game *entity.Game) error {
	if game.Board.IsFull() {
		return ErrNoAvailableMoves
	}

	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	difficulty := that.difficultyFor(game.Difficulty)

	chosenCell := that.selector.SelectMove(game.Board, botPlayer.Mark, difficulty)
	if chosenCell == tictactoe.NoMove {
		return ErrNoAvailableMoves
	}

	if err := tictactoe.MakeTurn(game, botPlayer.Mark, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made a turn",
		"gameID", game.ID, "cell", chosenCell, "mode", difficulty.Mode, "tier", game.Difficulty)

	return nil
}

func (that *botService) IsKnownDifficulty(difficulty string) bool {
	_, ok := that.tiers[difficulty]
	return ok
}

func (that *botService) DefaultDifficulty() string {
	return that.defaultDifficulty
}

func (that *botService) difficultyFor(tier string) tictactoe.Difficulty {
	if difficulty, ok := that.tiers[tier]; ok {
		return difficulty
	}

	if difficulty, ok := that.tiers[that.defaultDifficulty]; ok {
		return difficulty
	}

	return tictactoe.Difficulty{Mode: tictactoe.ModeHeuristic}
}
