// Package server exposes the game engine's action API over a websocket/JSON
// protocol and broadcasts state snapshots to subscribed clients.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/boardwalkhq/monopoly-server-go/internal/game"
)

// Server wires websocket clients to the engine.
type Server struct {
	logger   *zap.Logger
	engine   *game.Engine
	hub      *Hub
	upgrader websocket.Upgrader
}

// New creates a server and registers itself as the engine's notification
// handler so every committed state change is broadcast.
func New(logger *zap.Logger, engine *game.Engine) *Server {
	s := &Server{
		logger: logger,
		engine: engine,
		hub:    newHub(logger),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	engine.SetNotificationHandler(s.handleNotification)
	return s
}

// Hub returns the broadcast hub; the caller runs it.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		srv:  s,
		conn: conn,
		send: make(chan []byte, 64),
	}
	s.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// handleNotification marshals the snapshot and broadcasts it to the game's
// subscribers. It runs on the engine's action goroutine, so it only queues.
func (s *Server) handleNotification(n game.GameNotification) {
	data, err := json.Marshal(n.View)
	if err != nil {
		s.logger.Error("failed to encode game view", zap.Error(err))
		return
	}
	payload, err := json.Marshal(WSMessage{Type: MsgGameState, GameID: n.GameID, Data: data})
	if err != nil {
		s.logger.Error("failed to encode envelope", zap.Error(err))
		return
	}
	s.hub.Broadcast(n.GameID, payload)
}

// handleMessage dispatches one client envelope onto the engine action API.
func (s *Server) handleMessage(c *Client, msg WSMessage) {
	switch msg.Type {
	case MsgCreateGame:
		s.handleCreateGame(c, msg)
		return
	case MsgJoinGame:
		s.handleJoinGame(c, msg)
		return
	}

	gameID := msg.GameID
	if gameID == "" {
		gameID = c.gameID()
	}
	if gameID == "" {
		c.sendError("no game joined")
		return
	}

	var err error
	switch msg.Type {
	case MsgResetGame:
		err = s.engine.ResetGame(gameID)
	case MsgRollDice:
		err = s.engine.RollDice(gameID)
	case MsgEndTurn:
		err = s.engine.EndTurn(gameID)
	case MsgCardAction:
		err = s.engine.HandleCardAction(gameID)
	case MsgDeclareBankruptcy:
		err = s.engine.DeclareBankruptcy(gameID)
	case MsgBuyAction:
		var p buyPayload
		if err = json.Unmarshal(msg.Data, &p); err == nil {
			err = s.engine.HandleBuyAction(gameID, game.BuyDecision(p.Decision))
		}
	case MsgJailAction:
		var p jailPayload
		if err = json.Unmarshal(msg.Data, &p); err == nil {
			err = s.engine.HandleJailAction(gameID, game.JailAction(p.Action))
		}
	case MsgManageProperty:
		var p managePropertyPayload
		if err = json.Unmarshal(msg.Data, &p); err == nil {
			err = s.engine.ManageProperty(gameID, p.SpaceIndex, game.PropertyAction(p.Action))
		}
	case MsgProposeTrade:
		var p tradeOfferPayload
		if err = json.Unmarshal(msg.Data, &p); err == nil {
			err = s.engine.ProposeTrade(gameID, game.TradeOffer{
				FromPlayerID:        p.FromPlayerID,
				ToPlayerID:          p.ToPlayerID,
				PropertiesOffered:   p.PropertiesOffered,
				PropertiesRequested: p.PropertiesRequested,
				MoneyOffered:        p.MoneyOffered,
				MoneyRequested:      p.MoneyRequested,
				CardsOffered:        p.CardsOffered,
				CardsRequested:      p.CardsRequested,
			})
		}
	case MsgRespondTrade:
		var p respondTradePayload
		if err = json.Unmarshal(msg.Data, &p); err == nil {
			err = s.engine.RespondToTrade(gameID, p.Accepted)
		}
	case MsgModalAction:
		var p modalPayload
		if err = json.Unmarshal(msg.Data, &p); err == nil {
			err = s.engine.HandleModalAction(gameID, game.ModalAction(p.Action))
		}
	default:
		c.sendError("unknown message type: " + msg.Type)
		return
	}

	if err != nil {
		s.logger.Debug("action failed",
			zap.String("type", msg.Type),
			zap.String("game_id", gameID),
			zap.Error(err),
		)
		c.sendError(err.Error())
	}
}

func (s *Server) handleCreateGame(c *Client, msg WSMessage) {
	var p createGamePayload
	if err := json.Unmarshal(msg.Data, &p); err != nil {
		c.sendError("malformed create_game payload")
		return
	}

	opts := game.GameOptions{StartingMoney: p.StartingMoney}
	for _, setup := range p.Players {
		opts.Players = append(opts.Players, game.PlayerSetup{
			Name:  setup.Name,
			Piece: game.PlayerPiece(setup.Piece),
		})
	}

	gameID, err := s.engine.CreateGame(opts)
	if err != nil {
		c.sendError(err.Error())
		return
	}
	c.setGameID(gameID)
	c.sendJSON(WSMessage{Type: MsgGameCreated, GameID: gameID})
	s.sendSnapshot(c, gameID)
}

func (s *Server) handleJoinGame(c *Client, msg WSMessage) {
	if msg.GameID == "" {
		c.sendError("join_game requires game_id")
		return
	}
	if _, err := s.engine.GameView(msg.GameID); err != nil {
		c.sendError(err.Error())
		return
	}
	c.setGameID(msg.GameID)
	s.sendSnapshot(c, msg.GameID)
}

func (s *Server) sendSnapshot(c *Client, gameID string) {
	view, err := s.engine.GameView(gameID)
	if err != nil {
		return
	}
	data, err := json.Marshal(view)
	if err != nil {
		s.logger.Error("failed to encode game view", zap.Error(err))
		return
	}
	c.sendJSON(WSMessage{Type: MsgGameState, GameID: gameID, Data: data})
}
