package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultStartingMoney = 1500
	minPlayers           = 2
	maxPlayers           = 6

	// logCap bounds the per-game advisory log.
	logCap = 100
)

// DiceRoller produces a pair of die values in [1,6]. The default roller is
// backed by math/rand; tests substitute a scripted roller.
type DiceRoller interface {
	Roll() (int, int)
}

type randRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (r *randRoller) Roll() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(6) + 1, r.rng.Intn(6) + 1
}

// NotificationType categorizes engine notifications.
type NotificationType string

const (
	// NotifyStateChange is emitted after every committed state mutation,
	// including each intermediate step of token movement.
	NotifyStateChange NotificationType = "STATE_CHANGE"
	// NotifyGameOver is emitted once when a game reaches its terminal state.
	NotifyGameOver NotificationType = "GAME_OVER"
)

// GameNotification carries a fresh state snapshot to the UI/websocket layer.
type GameNotification struct {
	GameID string
	Type   NotificationType
	View   *GameView
}

// NotificationHandler receives engine notifications.
type NotificationHandler func(GameNotification)

// Options tunes engine pacing and determinism.
type Options struct {
	// RollDelay is the cosmetic latency window between requesting a roll and
	// the dice resolving. The turn state is PROCESSING for its duration.
	RollDelay time.Duration
	// StepDelay paces the per-space token movement updates.
	StepDelay time.Duration
	// Seed seeds deck shuffling and the default dice roller. Zero means
	// time-based seeding.
	Seed int64
}

// Engine owns every game's canonical state. All mutation is funneled through
// its action handlers; one action per game runs to completion at a time.
type Engine struct {
	logger    *zap.Logger
	rollDelay time.Duration
	stepDelay time.Duration

	mu    sync.RWMutex
	games map[string]*gameState
	rng   *rand.Rand

	roller              DiceRoller
	notificationHandler NotificationHandler
}

// gameState is the single mutable root for one game.
type gameState struct {
	mu sync.Mutex

	id                    string
	players               []*Player
	board                 []BoardSpace
	currentPlayerIndex    int
	turnState             TurnState
	doublesCount          int
	chanceDeck            []Card
	communityChestDeck    []Card
	chanceDiscard         []Card
	communityChestDiscard []Card
	winner                int

	rng     *rand.Rand
	dice    [2]int
	rolling bool

	log       []string
	lastEvent LastEvent
}

// NewEngine creates an engine with no games.
func NewEngine(logger *zap.Logger, opts Options) *Engine {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		logger:    logger,
		rollDelay: opts.RollDelay,
		stepDelay: opts.StepDelay,
		games:     make(map[string]*gameState),
		rng:       rand.New(rand.NewSource(seed)),
		roller:    &randRoller{rng: rand.New(rand.NewSource(seed + 1))},
	}
}

// SetNotificationHandler registers the handler receiving state snapshots.
func (e *Engine) SetNotificationHandler(handler NotificationHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notificationHandler = handler
}

// SetDiceRoller replaces the dice source. Intended for tests.
func (e *Engine) SetDiceRoller(roller DiceRoller) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.roller = roller
}

// CreateGame initializes a new game and returns its ID. The first seat has
// the opening turn.
func (e *Engine) CreateGame(opts GameOptions) (string, error) {
	if len(opts.Players) < minPlayers || len(opts.Players) > maxPlayers {
		return "", fmt.Errorf("player count must be between %d and %d, got %d", minPlayers, maxPlayers, len(opts.Players))
	}
	for i, p := range opts.Players {
		if p.Name == "" {
			return "", fmt.Errorf("player %d has no name", i)
		}
	}
	startingMoney := opts.StartingMoney
	if startingMoney == 0 {
		startingMoney = defaultStartingMoney
	}

	gameID := uuid.NewString()

	e.mu.Lock()
	defer e.mu.Unlock()

	g := &gameState{
		id:                 gameID,
		board:              NewBoard(),
		turnState:          awaitingRoll(),
		winner:             NoOwner,
		chanceDeck:         newChanceDeck(),
		communityChestDeck: newCommunityChestDeck(),
		rng:                rand.New(rand.NewSource(e.rng.Int63())),
		dice:               [2]int{1, 1},
	}
	for i, setup := range opts.Players {
		g.players = append(g.players, &Player{
			ID:           i,
			Name:         setup.Name,
			Piece:        setup.Piece,
			Color:        playerColors[i],
			Money:        startingMoney,
			Transactions: []Transaction{{Description: "Starting Cash", Amount: startingMoney}},
		})
	}
	shuffleCards(g.rng, g.chanceDeck)
	shuffleCards(g.rng, g.communityChestDeck)

	g.addLog(fmt.Sprintf("Game started! It's %s's turn.", g.players[0].Name))
	g.setLastEvent("Game Started", "Good luck!")

	e.games[gameID] = g

	e.logger.Info("game created",
		zap.String("game_id", gameID),
		zap.Int("players", len(g.players)),
		zap.Int("starting_money", startingMoney),
	)
	return gameID, nil
}

// ResetGame discards a game entirely.
func (e *Engine) ResetGame(gameID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.games[gameID]; !ok {
		return fmt.Errorf("game %s not found", gameID)
	}
	delete(e.games, gameID)
	e.logger.Info("game reset", zap.String("game_id", gameID))
	return nil
}

// withGame runs fn with the game's lock held and broadcasts the resulting
// state. Actions against unknown games are the only hard errors; in-game
// rule violations are silent no-ops per the engine's error model.
func (e *Engine) withGame(gameID string, fn func(g *gameState)) error {
	e.mu.RLock()
	g, ok := e.games[gameID]
	e.mu.RUnlock()
	if !ok {
		return fmt.Errorf("game %s not found", gameID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g)
	e.notifyState(g)
	return nil
}

// notifyState emits a snapshot of g to the registered handler. Callers hold
// g.mu; the view is a detached copy, so the handler never touches live state.
func (e *Engine) notifyState(g *gameState) {
	e.mu.RLock()
	handler := e.notificationHandler
	e.mu.RUnlock()
	if handler == nil {
		return
	}
	notifType := NotifyStateChange
	if g.turnState.Type == StateGameOver {
		notifType = NotifyGameOver
	}
	handler(GameNotification{GameID: g.id, Type: notifType, View: buildGameView(g)})
}

// rejectAction records a precondition violation without touching game state.
func (e *Engine) rejectAction(g *gameState, action string) {
	e.logger.Debug("action rejected",
		zap.String("game_id", g.id),
		zap.String("action", action),
		zap.String("turn_state", g.turnState.Type.String()),
	)
}

func (g *gameState) currentPlayer() *Player {
	return g.players[g.currentPlayerIndex]
}

func (g *gameState) playerByID(id int) *Player {
	if id < 0 || id >= len(g.players) {
		return nil
	}
	return g.players[id]
}

// solventPlayers returns the players still in the game.
func (g *gameState) solventPlayers() []*Player {
	var active []*Player
	for _, p := range g.players {
		if !p.Bankrupt {
			active = append(active, p)
		}
	}
	return active
}

// addLog prepends a message, suppressing consecutive duplicates and trimming
// to the cap.
func (g *gameState) addLog(message string) {
	if len(g.log) > 0 && g.log[0] == message {
		return
	}
	g.log = append([]string{message}, g.log...)
	if len(g.log) > logCap {
		g.log = g.log[:logCap]
	}
}

func (g *gameState) setLastEvent(title, description string) {
	g.lastEvent = LastEvent{Title: title, Description: description}
}

// defaultTransition is the post-resolution state: the player rolls again if
// they still hold an unused doubles bonus, otherwise the turn is over.
func (g *gameState) defaultTransition() TurnState {
	if g.doublesCount > 0 {
		return awaitingRoll()
	}
	return turnEnded()
}
