package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

const (
	gameStatusOpponentOut = "opponent_out"
	gameStatusLeave       = "leave"
)

var ErrPlayerRequired = errors.New("player is required")

func (that *Server) handleConnect(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to create a new player")
	}

	that.register(player.ID, conn)

	payloadResp := Payload{Player: player}

	if player.GameID != "" {
		game, err := that.gameUseCase.GetGameByPlayerID(ctx, player.ID)
		if err != nil {
			log.Warn("failed to get the player's game", "gameID", player.GameID, "error", err)
		} else {
			payloadResp.Game = maskGameDetails(game)
		}
	}

	if err = that.sendMessage(conn, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	if payloadReq.Game == nil {
		return that.sendErrorResponse(conn, msg.Action, "game is required")
	}

	that.register(payloadReq.Player.ID, conn)

	var game *entity.Game
	if payloadReq.Game.IsPublic() {
		game, err = that.gameUseCase.CreateOrJoinToPublicGame(ctx, payloadReq.Player.ID)
	} else {
		game, err = that.gameUseCase.GetOrCreateGame(ctx, payloadReq.Player.ID, payloadReq.Game.Type, payloadReq.Game.Difficulty)
	}

	if err != nil {
		log.Error("failed to create game", "type", payloadReq.Game.Type, "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to create a new game")
	}

	that.notifyPlayers(log, msg.Action, game, "", "")

	return nil
}

func (that *Server) handleJoinGame(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleJoinGame")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	if payloadReq.Game == nil {
		return that.sendErrorResponse(conn, msg.Action, "game is required")
	}

	that.register(payloadReq.Player.ID, conn)

	game, err := that.gameUseCase.JoinGameByID(ctx, payloadReq.Game.ID, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to join game", "gameID", payloadReq.Game.ID, "error", err)
		return that.sendErrorResponse(conn, msg.Action, fmt.Sprintf("game %s: %v", payloadReq.Game.ID, err))
	}

	that.notifyPlayers(log, msg.Action, game, "", "")

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleGameTurn")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	if payloadReq.Cell == nil {
		return that.sendErrorResponse(conn, msg.Action, "cell is required")
	}

	that.register(payloadReq.Player.ID, conn)

	game, err := that.gameUseCase.MakeTurn(ctx, payloadReq.Player.ID, *payloadReq.Cell)
	switch {
	case errors.Is(err, apperror.ErrGameFinished) && game != nil:
		log.Info("game finished", "gameID", game.ID, "winner", game.Winner)
	case err != nil:
		log.Warn("failed to make turn", "playerID", payloadReq.Player.ID, "error", err)
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	that.notifyPlayers(log, msg.Action, game, "", "")

	return nil
}

func (that *Server) handleGameLeave(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleGameLeave")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	that.register(payloadReq.Player.ID, conn)

	game, err := that.gameUseCase.GetGameByPlayerID(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to find game", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "game doesn't exist")
	}

	if err = that.gameUseCase.EndGame(ctx, game); err != nil {
		log.Error("failed to end game", "gameID", game.ID, "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to leave the game")
	}

	that.notifyPlayers(log, actionGameLeave, game, gameStatusLeave, "")

	log.Info("player left the game", "playerID", payloadReq.Player.ID, "gameID", game.ID)

	return nil
}

// handleDisconnect forgets the connection and starts the reconnect countdown for its player.
func (that *Server) handleDisconnect(conn *connection) {
	log := that.logger.With("method", "handleDisconnect")

	that.connectionsMutex.Lock()
	var disconnectedPlayerID string
	for playerID, registered := range that.connections {
		if registered == conn {
			disconnectedPlayerID = playerID
			delete(that.connections, playerID)
			break
		}
	}
	that.connectionsMutex.Unlock()

	if disconnectedPlayerID == "" {
		log.Debug("connection closed before a player was registered")
		return
	}

	that.disconnectedMutex.Lock()
	that.disconnectedPlayers[disconnectedPlayerID] = time.Now()
	that.disconnectedMutex.Unlock()

	log.Info("player disconnected", "playerID", disconnectedPlayerID)
}

func (that *Server) watchDisconnected(ctx context.Context) {
	interval := that.reconnectTimeout / 2
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			that.checkDisconnectedPlayers(ctx, now)
		}
	}
}

// checkDisconnectedPlayers ends the games of players that did not come back in time.
func (that *Server) checkDisconnectedPlayers(ctx context.Context, now time.Time) {
	var expired []string

	that.disconnectedMutex.Lock()
	for playerID, disconnectedAt := range that.disconnectedPlayers {
		if now.Sub(disconnectedAt) > that.reconnectTimeout {
			expired = append(expired, playerID)
			delete(that.disconnectedPlayers, playerID)
		}
	}
	that.disconnectedMutex.Unlock()

	for _, playerID := range expired {
		that.handleOpponentOut(ctx, playerID)
	}
}

func (that *Server) handleOpponentOut(ctx context.Context, playerID string) {
	log := that.logger.With("method", "handleOpponentOut", "playerID", playerID)

	game, err := that.gameUseCase.GetGameByPlayerID(ctx, playerID)
	if errors.Is(err, apperror.ErrNoActiveGames) {
		return
	}

	if err != nil {
		log.Error("failed to get game by player ID", "error", err)
		return
	}

	game.Forfeit(playerID)

	if err = that.gameUseCase.EndGame(ctx, game); err != nil {
		log.Error("failed to end game", "gameID", game.ID, "error", err)
		return
	}

	that.notifyPlayers(log, actionGameLeave, game, gameStatusOpponentOut, playerID)

	log.Info("handled opponent out", "gameID", game.ID)
}

func (that *Server) register(playerID string, conn *connection) {
	that.connectionsMutex.Lock()
	that.connections[playerID] = conn
	that.connectionsMutex.Unlock()

	that.disconnectedMutex.Lock()
	delete(that.disconnectedPlayers, playerID)
	that.disconnectedMutex.Unlock()
}

// notifyPlayers sends the game to every connected human player except skipPlayerID.
// A non-empty status overrides the game status in the outgoing copy.
func (that *Server) notifyPlayers(log *slog.Logger, action string, game *entity.Game, status, skipPlayerID string) {
	for _, player := range game.Players {
		if player.IsBot() || player.ID == skipPlayerID {
			continue
		}

		that.connectionsMutex.RLock()
		conn, ok := that.connections[player.ID]
		that.connectionsMutex.RUnlock()

		if !ok {
			log.Warn("connection not found for player", "playerID", player.ID)
			continue
		}

		masked := maskGameDetails(game)
		if status != "" {
			masked.Status = status
		}

		if err := that.sendMessage(conn, action, Payload{Player: player, Game: masked}); err != nil {
			log.Error("failed to send game update", "playerID", player.ID, "error", err)
		}
	}
}

func decodePayload(msg *Message) (*Payload, error) {
	var payload Payload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Player == nil {
		return nil, ErrPlayerRequired
	}

	return &payload, nil
}
