package tictactoe

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

const (
	winScore  = 10
	lossScore = -10
	drawScore = 0

	// NoMove is returned when the board has no playable cell.
	NoMove = -1
)

// Mode is the move selection strategy.
type Mode string

const (
	ModeRandom    Mode = "random"
	ModeHeuristic Mode = "heuristic"
	ModeOptimal   Mode = "optimal"
	ModeWeighted  Mode = "weighted"
)

func ParseMode(s string) (Mode, error) {
	switch mode := Mode(s); mode {
	case ModeRandom, ModeHeuristic, ModeOptimal, ModeWeighted:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Difficulty selects a Mode. OptimalRate is the chance of an optimal move
// in ModeWeighted; the rest of the time the heuristic plays.
type Difficulty struct {
	Mode        Mode    `json:"mode" yaml:"mode"`
	OptimalRate float64 `json:"optimal_rate,omitempty" yaml:"optimal-rate"`
}

// Move is a cell picked by search together with its minimax score.
type Move struct {
	Cell  int `json:"cell"`
	Score int `json:"score"`
}

// MoveSelector picks bot moves. It never mutates the board it is given.
type MoveSelector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewMoveSelector(rnd *rand.Rand) *MoveSelector {
	return &MoveSelector{rnd: rnd}
}

// SelectMove returns the cell side should play. It returns NoMove on a won or
// full board and for a Mode it does not know.
func (that *MoveSelector) SelectMove(board entity.Board, side string, difficulty Difficulty) int {
	if board.IsTerminal() {
		return NoMove
	}

	switch difficulty.Mode {
	case ModeRandom:
		return that.pick(board.EmptyCells())
	case ModeHeuristic:
		return that.heuristicMove(board, side)
	case ModeOptimal:
		return BestMove(board, side).Cell
	case ModeWeighted:
		if that.float64() < difficulty.OptimalRate {
			return BestMove(board, side).Cell
		}
		return that.heuristicMove(board, side)
	default:
		return NoMove
	}
}

func (that *MoveSelector) heuristicMove(board entity.Board, side string) int {
	if cell := completingCell(board, side); cell != NoMove {
		return cell
	}

	if cell := completingCell(board, entity.Opponent(side)); cell != NoMove {
		return cell
	}

	if board[entity.CenterCell] == entity.EmptyCell {
		return entity.CenterCell
	}

	corners := make([]int, 0, len(entity.CornerCells))
	for _, cell := range entity.CornerCells {
		if board[cell] == entity.EmptyCell {
			corners = append(corners, cell)
		}
	}

	if len(corners) > 0 {
		return that.pick(corners)
	}

	return that.pick(board.EmptyCells())
}

// completingCell returns the first empty cell that gives mark three in a row.
func completingCell(board entity.Board, mark string) int {
	for _, cell := range board.EmptyCells() {
		if board.Place(cell, mark).Winner() == mark {
			return cell
		}
	}

	return NoMove
}

func (that *MoveSelector) pick(cells []int) int {
	if len(cells) == 0 {
		return NoMove
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return cells[that.rnd.Intn(len(cells))]
}

func (that *MoveSelector) float64() float64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Float64()
}

// BestMove runs a full minimax for side. Scores are not discounted by depth and the
// lowest cell index wins among equal scores.
func BestMove(board entity.Board, side string) Move {
	best := Move{Cell: NoMove, Score: lossScore - 1}

	for _, cell := range board.EmptyCells() {
		score := minimax(board.Place(cell, side), side, entity.Opponent(side))
		if score > best.Score {
			best = Move{Cell: cell, Score: score}
		}
	}

	return best
}

// minimax scores board from the point of view of maximizer, with toMove about to play.
func minimax(board entity.Board, maximizer, toMove string) int {
	switch board.Result() {
	case maximizer:
		return winScore
	case entity.Opponent(maximizer):
		return lossScore
	case entity.PlayerTie:
		return drawScore
	}

	maximizing := toMove == maximizer

	best := winScore + 1
	if maximizing {
		best = lossScore - 1
	}

	for _, cell := range board.EmptyCells() {
		score := minimax(board.Place(cell, toMove), maximizer, entity.Opponent(toMove))
		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}

	return best
}
