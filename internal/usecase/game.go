package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

var ErrUnknownGameType = errors.New("unknown game type")

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	GetOrCreateGame(ctx context.Context, playerID, gameType, difficulty string) (*entity.Game, error)
	CreateOrJoinToPublicGame(ctx context.Context, playerID string) (*entity.Game, error)
	JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	EndGame(ctx context.Context, game *entity.Game) error
}

type playerRepoDep interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error

	EnqueuePublicGame(ctx context.Context, id string) error
	DequeuePublicGame(ctx context.Context, id string) error
	GetWaitingPublicGame(ctx context.Context) (*entity.Game, error)
}

type resultRepoDep interface {
	Save(ctx context.Context, result *entity.Result) error
}

type botDep interface {
	MakeTurn(game *entity.Game) error
	IsKnownDifficulty(difficulty string) bool
	DefaultDifficulty() string
}

type gameUseCase struct {
	logger *slog.Logger

	playerRepo playerRepoDep
	gameRepo   gameRepoDep
	resultRepo resultRepoDep
	bot        botDep

	now         func() time.Time
	randomMarks func(game *entity.Game) (string, string)
}

func NewGameUseCase(logger *slog.Logger, playerRepo playerRepoDep, gameRepo gameRepoDep, resultRepo resultRepoDep, bot botDep) GameUseCase {
	return &gameUseCase{
		logger: logger.With("component", "gameUseCase"),

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		resultRepo: resultRepo,
		bot:        bot,

		now: time.Now,
		randomMarks: func(game *entity.Game) (string, string) {
			return game.GetRandomMarks()
		},
	}
}

func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player := &entity.Player{ID: pkg.GenerateNewSessionID()}
		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return nil, fmt.Errorf("could not create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *gameUseCase) GetOrCreateGame(ctx context.Context, playerID, gameType, difficulty string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	game, err := that.currentGame(ctx, player)
	if err != nil {
		return nil, err
	}

	if game != nil {
		return game, nil
	}

	switch gameType {
	case entity.PrivateType, entity.WithBotType:
	case entity.PublicType:
		return that.createPublicGame(ctx, player)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGameType, gameType)
	}

	game, err = that.createGame(ctx, player, gameType, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) CreateOrJoinToPublicGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	game, err := that.currentGame(ctx, player)
	if err != nil {
		return nil, err
	}

	if game != nil {
		return game, nil
	}

	for {
		waiting, err := that.gameRepo.GetWaitingPublicGame(ctx)
		if errors.Is(err, apperror.ErrNoActiveGames) {
			return that.createPublicGame(ctx, player)
		}

		if err != nil {
			return nil, fmt.Errorf("failed to get waiting public game: %w", err)
		}

		// joined by id after it was queued
		if waiting.IsFull() || !waiting.IsWaiting() {
			that.logger.Warn("skipping started public game", "gameID", waiting.ID)
			continue
		}

		return that.join(ctx, waiting, player)
	}
}

func (that *gameUseCase) JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == game.ID {
		return game, nil
	}

	current, err := that.currentGame(ctx, player)
	if err != nil {
		return nil, err
	}

	if current != nil {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrAlreadyInGame, current.ID)
	}

	if game.IsFull() || !game.IsWaiting() {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameIsFull, gameID)
	}

	if game.IsPublic() {
		if err = that.gameRepo.DequeuePublicGame(ctx, game.ID); err != nil {
			return nil, fmt.Errorf("failed to dequeue public game: %w", err)
		}
	}

	return that.join(ctx, game, player)
}

func (that *gameUseCase) GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn applies the player's move and, in bot games, the bot's reply. A finished game
// is returned together with apperror.ErrGameFinished after it has been recorded and removed.
func (that *gameUseCase) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	game, err := that.GetGameByPlayerID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return nil, fmt.Errorf("game %s: %w", game.ID, err)
	}

	mark := ""
	for _, player := range game.Players {
		if player.ID == playerID {
			mark = player.Mark
		}
	}

	if err = tictactoe.MakeTurn(game, mark, cell); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if !game.IsFinished() && game.IsWithBot() {
		if err = that.bot.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if game.IsFinished() {
		if err = that.EndGame(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to end game: %w", err)
		}

		return game, apperror.ErrGameFinished
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// EndGame records a finished game, removes it and frees its human players.
func (that *gameUseCase) EndGame(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "EndGame", "gameID", game.ID)

	if game.IsFinished() {
		if err := that.resultRepo.Save(ctx, entity.NewResult(game, that.now())); err != nil {
			log.Error("failed to save result", "error", err)
		}
	}

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil && !errors.Is(err, repository.ErrGameNotFound) {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		released := &entity.Player{ID: player.ID}
		if err := that.playerRepo.CreateOrUpdate(ctx, released); err != nil {
			return fmt.Errorf("failed to release player %s: %w", player.ID, err)
		}
	}

	log.Info("game ended", "winner", game.Winner, "status", game.Status)

	return nil
}

// currentGame returns the game the player is seated in, or nil when there is none.
func (that *gameUseCase) currentGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	if player.GameID == "" {
		return nil, nil
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if errors.Is(err, repository.ErrGameNotFound) {
		that.logger.Warn("player points to a missing game", "playerID", player.ID, "gameID", player.GameID)
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) createGame(ctx context.Context, player *entity.Player, gameType, difficulty string) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID, gameType)

	player.GameID = gameID
	player.Mark = entity.PlayerX
	game.Players = []*entity.Player{player}

	if game.IsWithBot() {
		if err = that.seatBot(game, player, difficulty); err != nil {
			return nil, err
		}
	}

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game in storage: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) createPublicGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	game, err := that.createGame(ctx, player, entity.PublicType, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create public game: %w", err)
	}

	if err = that.gameRepo.EnqueuePublicGame(ctx, game.ID); err != nil {
		return nil, fmt.Errorf("failed to enqueue public game: %w", err)
	}

	return game, nil
}

// seatBot adds the bot, deals marks at random and lets the bot open when it holds X.
func (that *gameUseCase) seatBot(game *entity.Game, player *entity.Player, difficulty string) error {
	if !that.bot.IsKnownDifficulty(difficulty) {
		difficulty = that.bot.DefaultDifficulty()
	}
	game.Difficulty = difficulty

	playerMark, botMark := that.randomMarks(game)
	player.Mark = playerMark

	game.Players = append(game.Players, entity.NewBotPlayer(game.ID, botMark))
	game.Status = entity.StatusOngoing

	if botMark == entity.PlayerX {
		if err := that.bot.MakeTurn(game); err != nil {
			return fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	return nil
}

func (that *gameUseCase) join(ctx context.Context, game *entity.Game, player *entity.Player) (*entity.Game, error) {
	player.GameID = game.ID
	player.Mark = entity.PlayerO
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	game.Status = entity.StatusOngoing
	game.Players = append(game.Players, player)
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("player joined game", "playerID", player.ID, "gameID", game.ID)

	return game, nil
}
