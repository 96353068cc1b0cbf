package service

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBotService() BotService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	selector := tictactoe.NewMoveSelector(rand.New(rand.NewSource(1))) //nolint: gosec // deterministic test source

	return NewBotService(logger, selector, DefaultTiers(0.8), entity.MediumDifficulty)
}

func newBotGame(difficulty string, board entity.Board, botMark string) *entity.Game {
	game := entity.NewGame("g1", entity.WithBotType)
	game.Status = entity.StatusOngoing
	game.Difficulty = difficulty
	game.Board = board
	game.Turn = botMark
	game.Players = []*entity.Player{
		{ID: "human", Mark: entity.Opponent(botMark), GameID: "g1"},
		entity.NewBotPlayer("g1", botMark),
	}

	return game
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Blocks the human on medium", func(t *testing.T) {
		// Given: the human threatens the top row and the bot plays O on medium
		board := entity.Board{entity.PlayerX, entity.PlayerX, "", "", entity.PlayerO, "", "", "", ""}
		game := newBotGame(entity.MediumDifficulty, board, entity.PlayerO)

		// When: the bot makes a turn
		err := newTestBotService().MakeTurn(game)

		// Then: it blocks at cell 2 and hands the turn back
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.Board[2])
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("Wins when it can on impossible", func(t *testing.T) {
		// Given: the bot (O) has two in the middle row while X threatens two lines
		board := entity.Board{entity.PlayerX, entity.PlayerX, entity.PlayerO, "", entity.PlayerO, entity.PlayerO, entity.PlayerX, "", entity.PlayerX}
		game := newBotGame(entity.ImpossibleDifficulty, board, entity.PlayerO)

		// When: the bot makes a turn
		err := newTestBotService().MakeTurn(game)

		// Then: the game ends with the bot as the winner
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.Winner)
		assert.True(t, game.IsFinished())
	})

	t.Run("Unknown tier falls back to the default", func(t *testing.T) {
		// Given: a game with a tier nobody configured
		board := entity.Board{entity.PlayerX, entity.PlayerX, "", "", entity.PlayerO, "", "", "", ""}
		game := newBotGame("legendary", board, entity.PlayerO)

		// When: the bot makes a turn
		err := newTestBotService().MakeTurn(game)

		// Then: it plays like medium and blocks
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.Board[2])
	})

	t.Run("Random play stays on empty cells", func(t *testing.T) {
		// Given: an easy bot game with X in the corner
		board := entity.Board{entity.PlayerX, "", "", "", "", "", "", "", ""}
		game := newBotGame(entity.EasyDifficulty, board, entity.PlayerO)

		// When: the bot makes a turn
		err := newTestBotService().MakeTurn(game)

		// Then: exactly one O was placed and cell 0 is untouched
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board[0])
		assert.Len(t, game.Board.EmptyCells(), 7)
	})

	t.Run("Error when the board is full", func(t *testing.T) {
		board := entity.Board{entity.PlayerO, entity.PlayerX, entity.PlayerO, entity.PlayerO, entity.PlayerX, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerX}
		game := newBotGame(entity.HardDifficulty, board, entity.PlayerO)

		err := newTestBotService().MakeTurn(game)

		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})

	t.Run("Error when the game has no bot", func(t *testing.T) {
		game := newBotGame(entity.HardDifficulty, entity.Board{}, entity.PlayerO)
		game.Players = game.Players[:1]

		err := newTestBotService().MakeTurn(game)

		require.ErrorIs(t, err, ErrBotNotFound)
	})
}

func TestBotService_Difficulties(t *testing.T) {
	bot := newTestBotService()

	assert.True(t, bot.IsKnownDifficulty(entity.EasyDifficulty))
	assert.True(t, bot.IsKnownDifficulty(entity.ImpossibleDifficulty))
	assert.False(t, bot.IsKnownDifficulty("legendary"))
	assert.Equal(t, entity.MediumDifficulty, bot.DefaultDifficulty())
}
