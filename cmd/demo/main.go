// Command demo is a headless websocket client that creates a game against a
// running server and plays a few automated turns, printing the engine log as
// snapshots arrive. Useful for eyeballing the broadcast stream.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type wsMessage struct {
	Type   string          `json:"type"`
	GameID string          `json:"game_id,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

type gameView struct {
	CurrentPlayerIndex int `json:"current_player_index"`
	TurnState          struct {
		Type string `json:"type"`
	} `json:"turn_state"`
	Dice    [2]int   `json:"dice"`
	Rolling bool     `json:"rolling"`
	Log     []string `json:"log"`
	Players []struct {
		Name     string `json:"name"`
		Money    int    `json:"money"`
		Position int    `json:"position"`
	} `json:"players"`
}

func main() {
	addr := flag.String("addr", "ws://localhost:8080/ws", "server websocket URL")
	turns := flag.Int("turns", 10, "turns to play before exiting")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	conn, _, err := websocket.DefaultDialer.Dial(*addr, nil)
	if err != nil {
		logger.Fatal("dial failed", zap.String("addr", *addr), zap.Error(err))
	}
	defer conn.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	send := func(msg wsMessage) {
		if err := conn.WriteJSON(msg); err != nil {
			logger.Fatal("write failed", zap.Error(err))
		}
	}

	createData, _ := json.Marshal(map[string]any{
		"players": []map[string]string{
			{"name": "Demo Alice", "piece": "car"},
			{"name": "Demo Bob", "piece": "hat"},
		},
	})
	send(wsMessage{Type: "create_game", Data: createData})

	var (
		gameID      string
		turnsPlayed int
		lastLogLen  int
	)

	for {
		select {
		case <-interrupt:
			logger.Info("interrupted")
			return
		default:
		}

		conn.SetReadDeadline(time.Now().Add(30 * time.Second))
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			logger.Fatal("read failed", zap.Error(err))
		}

		switch msg.Type {
		case "game_created":
			gameID = msg.GameID
			logger.Info("game created", zap.String("game_id", gameID))

		case "error":
			logger.Warn("server error", zap.String("payload", string(msg.Data)))

		case "game_state":
			var view gameView
			if err := json.Unmarshal(msg.Data, &view); err != nil {
				logger.Warn("bad snapshot", zap.Error(err))
				continue
			}
			// Log entries are newest-first; print the ones we have not seen.
			for i := len(view.Log) - lastLogLen - 1; i >= 0; i-- {
				fmt.Printf("  %s\n", view.Log[i])
			}
			lastLogLen = len(view.Log)

			if view.Rolling {
				continue
			}
			switch view.TurnState.Type {
			case "AWAITING_ROLL":
				send(wsMessage{Type: "roll_dice", GameID: gameID})
			case "AWAITING_BUY_PROMPT":
				data, _ := json.Marshal(map[string]string{"decision": "buy"})
				send(wsMessage{Type: "buy_action", GameID: gameID, Data: data})
			case "AWAITING_CARD_ACTION":
				send(wsMessage{Type: "card_action", GameID: gameID})
			case "AWAITING_JAIL_ACTION":
				data, _ := json.Marshal(map[string]string{"action": "roll"})
				send(wsMessage{Type: "jail_action", GameID: gameID, Data: data})
			case "AWAITING_DEBT_PAYMENT":
				// The demo does not liquidate assets; concede the debt.
				send(wsMessage{Type: "declare_bankruptcy", GameID: gameID})
			case "TURN_ENDED":
				turnsPlayed++
				if turnsPlayed >= *turns {
					printStandings(view)
					return
				}
				send(wsMessage{Type: "end_turn", GameID: gameID})
			case "GAME_OVER":
				printStandings(view)
				return
			}
		}
	}
}

func printStandings(view gameView) {
	fmt.Println("--- standings ---")
	for _, p := range view.Players {
		fmt.Printf("  %-12s $%-5d at space %d\n", p.Name, p.Money, p.Position)
	}
}
