package game

import "fmt"

// TurnStateType names the variants of the turn state machine. The turn state
// is the single source of truth for which action handlers are currently legal.
type TurnStateType int

const (
	StateAwaitingRoll TurnStateType = iota
	StateProcessing
	StateAwaitingBuyPrompt
	StateAwaitingCardAction
	StateAwaitingJailAction
	StateAwaitingDebtPayment
	StateManagingProperties
	StateProposingTrade
	StateAwaitingTradeResponse
	StateTurnEnded
	StateGameOver
)

var turnStateNames = map[TurnStateType]string{
	StateAwaitingRoll:          "AWAITING_ROLL",
	StateProcessing:            "PROCESSING",
	StateAwaitingBuyPrompt:     "AWAITING_BUY_PROMPT",
	StateAwaitingCardAction:    "AWAITING_CARD_ACTION",
	StateAwaitingJailAction:    "AWAITING_JAIL_ACTION",
	StateAwaitingDebtPayment:   "AWAITING_DEBT_PAYMENT",
	StateManagingProperties:    "MANAGING_PROPERTIES",
	StateProposingTrade:        "PROPOSING_TRADE",
	StateAwaitingTradeResponse: "AWAITING_TRADE_RESPONSE",
	StateTurnEnded:             "TURN_ENDED",
	StateGameOver:              "GAME_OVER",
}

func (t TurnStateType) String() string {
	if name, ok := turnStateNames[t]; ok {
		return name
	}
	return fmt.Sprintf("STATE_%d", int(t))
}

// TurnState is a tagged variant; the payload fields populated depend on Type.
// Previous holds a value snapshot of the state suspended by a modal
// interaction (managing properties, trading), never a live reference.
type TurnState struct {
	Type       TurnStateType
	SpaceIndex int
	Card       Card
	IsChance   bool
	Debt       Debt
	Offer      TradeOffer
	Winner     int
	Previous   *TurnState
}

func awaitingRoll() TurnState { return TurnState{Type: StateAwaitingRoll} }
func processing() TurnState   { return TurnState{Type: StateProcessing} }
func turnEnded() TurnState    { return TurnState{Type: StateTurnEnded} }

func awaitingBuyPrompt(spaceIndex int) TurnState {
	return TurnState{Type: StateAwaitingBuyPrompt, SpaceIndex: spaceIndex}
}

func awaitingCardAction(card Card, isChance bool) TurnState {
	return TurnState{Type: StateAwaitingCardAction, Card: card, IsChance: isChance}
}

func awaitingJailAction() TurnState { return TurnState{Type: StateAwaitingJailAction} }

func awaitingDebtPayment(debt Debt) TurnState {
	return TurnState{Type: StateAwaitingDebtPayment, Debt: debt}
}

func gameOver(winner int) TurnState {
	return TurnState{Type: StateGameOver, Winner: winner}
}

// suspended builds a modal state holding a copy of the state it interrupts.
func suspended(t TurnStateType, prev TurnState) TurnState {
	snapshot := prev
	return TurnState{Type: t, Previous: &snapshot}
}

// resume returns the suspended state, or fallback when none was recorded.
func (t TurnState) resume(fallback TurnState) TurnState {
	if t.Previous != nil {
		return *t.Previous
	}
	return fallback
}
