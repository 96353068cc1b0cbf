package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

const waitingPublicGamesKey = "games:public:waiting"

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error

	EnqueuePublicGame(ctx context.Context, id string) error
	DequeuePublicGame(ctx context.Context, id string) error
	GetWaitingPublicGame(ctx context.Context) (*entity.Game, error)
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.client.Set(ctx, gameKey(game.ID), gameJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	pipe := that.client.TxPipeline()
	deleted := pipe.Del(ctx, gameKey(id))
	pipe.SRem(ctx, waitingPublicGamesKey, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted.Val() == 0 {
		return ErrGameNotFound
	}

	return nil
}

// EnqueuePublicGame - marks a public game as waiting for an opponent.
func (that *dbGame) EnqueuePublicGame(ctx context.Context, id string) error {
	if err := that.client.SAdd(ctx, waitingPublicGamesKey, id).Err(); err != nil {
		return fmt.Errorf("failed to enqueue public game: %w", err)
	}

	return nil
}

// DequeuePublicGame removes id from the waiting set; a missing id is not an error.
func (that *dbGame) DequeuePublicGame(ctx context.Context, id string) error {
	if err := that.client.SRem(ctx, waitingPublicGamesKey, id).Err(); err != nil {
		return fmt.Errorf("failed to dequeue public game: %w", err)
	}

	return nil
}

// GetWaitingPublicGame - pops a waiting public game, skipping ids whose game is gone or already started.
func (that *dbGame) GetWaitingPublicGame(ctx context.Context) (*entity.Game, error) {
	for {
		id, err := that.client.SPop(ctx, waitingPublicGamesKey).Result()
		if errors.Is(err, redis.Nil) {
			return nil, apperror.ErrNoActiveGames
		}

		if err != nil {
			return nil, fmt.Errorf("failed to pop waiting public game: %w", err)
		}

		game, err := that.GetByID(ctx, id)
		if errors.Is(err, ErrGameNotFound) {
			continue
		}

		if err != nil {
			return nil, err
		}

		if !game.IsWaiting() || game.IsFull() {
			continue
		}

		return game, nil
	}
}
