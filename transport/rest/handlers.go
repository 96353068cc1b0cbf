package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/service"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

const (
	defaultResultsLimit = 20
	maxResultsLimit     = 100
)

var (
	ErrInvalidSide       = errors.New("side must be X or O")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

type moveSelector interface {
	SelectMove(board entity.Board, side string, difficulty tictactoe.Difficulty) int
}

type resultRepository interface {
	ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.Result, error)
}

type Handlers struct {
	logger *slog.Logger

	selector          moveSelector
	tiers             service.Tiers
	defaultDifficulty string
	results           resultRepository
}

func NewHandlers(logger *slog.Logger, selector moveSelector, tiers service.Tiers, defaultDifficulty string, results resultRepository) *Handlers {
	return &Handlers{
		logger:            logger.With("component", "restHandlers"),
		selector:          selector,
		tiers:             tiers,
		defaultDifficulty: defaultDifficulty,
		results:           results,
	}
}

func (that *Handlers) Register(e *echo.Echo) {
	e.GET("/ping", that.Ping)

	api := e.Group("/api/v1")
	api.POST("/bot/move", that.BotMove)
	api.GET("/players/:id/results", that.PlayerResults)
}

func (that *Handlers) Ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}

// botMoveRequest carries the board in row-major order. An empty side means the mark to move.
type botMoveRequest struct {
	Board       []string `json:"board"`
	Side        string   `json:"side"`
	Difficulty  string   `json:"difficulty"`
	OptimalRate *float64 `json:"optimal_rate,omitempty"`
}

type botMoveResponse struct {
	Cell int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// BotMove picks a cell for side on the posted board without touching any stored game.
func (that *Handlers) BotMove(ctx echo.Context) error {
	log := that.logger.With("method", "BotMove")

	var req botMoveRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
	}

	board, err := parseBoard(req.Board)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if req.Side == "" {
		req.Side = board.NextMark()
	}

	if !entity.IsValidMark(req.Side) {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: ErrInvalidSide.Error()})
	}

	if board.IsTerminal() {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "game is already over"})
	}

	difficulty, err := that.difficultyFor(req)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cell := that.selector.SelectMove(board, req.Side, difficulty)
	if cell == tictactoe.NoMove {
		log.Error("selector found no move on a playable board", "board", req.Board)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "no move available"})
	}

	log.Debug("bot move selected", "cell", cell, "mode", difficulty.Mode)

	return ctx.JSON(http.StatusOK, botMoveResponse{Cell: cell})
}

// PlayerResults lists finished games of a player, newest first.
func (that *Handlers) PlayerResults(ctx echo.Context) error {
	log := that.logger.With("method", "PlayerResults")

	playerID := ctx.Param("id")

	limit := defaultResultsLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
		}
		limit = min(parsed, maxResultsLimit)
	}

	results, err := that.results.ListByPlayer(ctx.Request().Context(), playerID, limit)
	if err != nil {
		log.Error("failed to list results", "playerID", playerID, "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}

	if results == nil {
		results = []*entity.Result{}
	}

	return ctx.JSON(http.StatusOK, results)
}

// difficultyFor accepts a bot tier name or a raw selection mode. optimal_rate
// only applies to weighted play; raw weighted without it plays like the hard tier.
func (that *Handlers) difficultyFor(req botMoveRequest) (tictactoe.Difficulty, error) {
	name := req.Difficulty
	if name == "" {
		name = that.defaultDifficulty
	}

	difficulty, ok := that.tiers[name]
	if !ok {
		mode, err := tictactoe.ParseMode(name)
		if err != nil {
			return tictactoe.Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
		}

		difficulty = tictactoe.Difficulty{Mode: mode}
		if mode == tictactoe.ModeWeighted {
			difficulty.OptimalRate = that.tiers[entity.HardDifficulty].OptimalRate
		}
	}

	if req.OptimalRate == nil {
		return difficulty, nil
	}

	if difficulty.Mode != tictactoe.ModeWeighted {
		return tictactoe.Difficulty{}, fmt.Errorf("%w: optimal_rate needs weighted play, got %q", ErrUnknownDifficulty, name)
	}

	if *req.OptimalRate < 0 || *req.OptimalRate > 1 {
		return tictactoe.Difficulty{}, fmt.Errorf("%w: optimal_rate must be within [0, 1]", ErrUnknownDifficulty)
	}

	difficulty.OptimalRate = *req.OptimalRate

	return difficulty, nil
}

func parseBoard(cells []string) (entity.Board, error) {
	var board entity.Board

	if len(cells) != len(board) {
		return board, fmt.Errorf("%w: want %d cells, got %d", apperror.ErrInvalidBoard, len(board), len(cells))
	}

	for i, cell := range cells {
		if cell != entity.EmptyCell && !entity.IsValidMark(cell) {
			return board, fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidBoard, i, cell)
		}
		board[i] = cell
	}

	return board, nil
}
