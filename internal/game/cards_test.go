package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawScripted plants the card as the top of the Chance deck and walks the
// player onto a Chance space so it gets drawn.
func drawScripted(tg *testGame, card Card) {
	tg.t.Helper()
	g := tg.state()
	g.chanceDeck = []Card{card}
	tg.player(0).Position = 4
	tg.roll(1, 2) // lands on index 7, Chance
	require.Equal(tg.t, StateAwaitingCardAction, g.turnState.Type)
}

func ack(tg *testGame) {
	tg.t.Helper()
	require.NoError(tg.t, tg.engine.HandleCardAction(tg.id))
}

func TestCardReceive(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	drawScripted(tg, Card{Type: CardReceive, Text: "Collect $100", Amount: 100})

	ack(tg)

	assert.Equal(t, 1600, tg.player(0).Money)
	assert.Equal(t, StateTurnEnded, tg.state().turnState.Type)
}

func TestCardPay(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	drawScripted(tg, Card{Type: CardPay, Text: "Pay $50", Amount: 50})

	ack(tg)

	assert.Equal(t, 1450, tg.player(0).Money)
}

func TestCardPayInsufficientRaisesDebt(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	drawScripted(tg, Card{Type: CardPay, Text: "Pay $50", Amount: 50})
	tg.player(0).Money = 30

	ack(tg)

	g := tg.state()
	assert.Equal(t, StateAwaitingDebtPayment, g.turnState.Type)
	assert.Equal(t, Debt{DebtorID: 0, CreditorID: NoOwner, Amount: 50}, g.turnState.Debt)
	assert.Equal(t, 30, tg.player(0).Money)
}

func TestCardReceivePerPlayer(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob", "Cara")
	drawScripted(tg, Card{Type: CardReceivePerPlayer, Text: "Collect $10 from every player", Amount: 10})

	ack(tg)

	assert.Equal(t, 1520, tg.player(0).Money)
	assert.Equal(t, 1490, tg.player(1).Money)
	assert.Equal(t, 1490, tg.player(2).Money)
}

func TestCardPayPerPlayer(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob", "Cara")
	drawScripted(tg, Card{Type: CardPayPerPlayer, Text: "Pay each player $50", Amount: 50})

	ack(tg)

	assert.Equal(t, 1400, tg.player(0).Money)
	assert.Equal(t, 1550, tg.player(1).Money)
	assert.Equal(t, 1550, tg.player(2).Money)
}

func TestCardPayPerPlayerAggregateDebt(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob", "Cara")
	drawScripted(tg, Card{Type: CardPayPerPlayer, Text: "Pay each player $50", Amount: 50})
	tg.player(0).Money = 60 // owes 100 total

	ack(tg)

	g := tg.state()
	assert.Equal(t, StateAwaitingDebtPayment, g.turnState.Type)
	assert.Equal(t, 100, g.turnState.Debt.Amount)
	assert.Equal(t, 60, tg.player(0).Money)
	assert.Equal(t, 1500, tg.player(1).Money)
}

func TestCardPayBuildings(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	tg.giveProperty(0, 1)
	tg.giveProperty(0, 3)
	g := tg.state()
	g.board[1].Houses = 3         // three houses
	g.board[3].Houses = MaxHouses // one hotel
	drawScripted(tg, Card{Type: CardPayBuildings, Text: "Repairs", PerHouse: 25, PerHotel: 100})

	ack(tg)

	// 3 houses x $25 + 1 hotel x $100
	assert.Equal(t, 1500-175, tg.player(0).Money)
}

func TestCardGetOutOfJailIsRetained(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	drawScripted(tg, Card{Type: CardGetOutOfJail, Text: "Get Out of Jail Free"})

	g := tg.state()
	// The card never reaches the discard pile.
	assert.Empty(t, g.chanceDiscard)

	ack(tg)

	assert.Equal(t, 1, tg.player(0).GetOutOfJailCards)
	assert.Equal(t, StateTurnEnded, g.turnState.Type)
}

func TestCardGoToJail(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	drawScripted(tg, Card{Type: CardGoToJail, Text: "Go to Jail"})

	ack(tg)

	alice := tg.player(0)
	assert.True(t, alice.InJail)
	assert.Equal(t, PositionJail, alice.Position)
	assert.Equal(t, StateTurnEnded, tg.state().turnState.Type)
}

func TestCardAdvanceToGoCollectsSalary(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	drawScripted(tg, Card{Type: CardAdvance, Text: "Advance to Go (Collect $200)", Position: PositionGo})

	ack(tg)

	alice := tg.player(0)
	assert.Equal(t, PositionGo, alice.Position)
	assert.Equal(t, 1700, alice.Money)
	assert.Equal(t, StateTurnEnded, tg.state().turnState.Type)
}

func TestCardAdvanceForwardNoSalary(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	drawScripted(tg, Card{Type: CardAdvance, Text: "Take a walk on the Boardwalk", Position: 39})

	ack(tg)

	alice := tg.player(0)
	assert.Equal(t, 39, alice.Position)
	// Landing on unowned Boardwalk prompts a purchase; no GO credit.
	assert.Equal(t, 1500, alice.Money)
	assert.Equal(t, StateAwaitingBuyPrompt, tg.state().turnState.Type)
	assert.Equal(t, 39, tg.state().turnState.SpaceIndex)
}

func TestCardGoBackNeverPaysSalary(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	g := tg.state()
	g.chanceDeck = []Card{{Type: CardAdvance, Text: "Go Back 3 Spaces", Position: -3, Relative: true}}
	tg.player(0).Position = 33
	tg.roll(1, 2) // lands on 36, Chance
	require.Equal(t, StateAwaitingCardAction, g.turnState.Type)

	ack(tg)

	alice := tg.player(0)
	assert.Equal(t, 33, alice.Position) // 36 - 3
	assert.Equal(t, 1500, alice.Money)
}

func TestCardGoBackWrapsWithoutSalary(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	g := tg.state()
	g.chanceDeck = []Card{{Type: CardAdvance, Text: "Go Back 3 Spaces", Position: -3, Relative: true}}
	tg.player(0).Position = 4
	tg.roll(1, 2) // lands on 7, Chance

	ack(tg)

	alice := tg.player(0)
	assert.Equal(t, 4, alice.Position) // 7 - 3, Income Tax
	// Income Tax applies on the re-resolved landing, but no GO money even on
	// a relative move that would wrap.
	assert.Equal(t, 1300, alice.Money)
}

func TestCardAdvanceNearestUtilityPaysTenTimesDice(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	tg.giveProperty(1, 12) // Bob owns only Electric Company
	drawScripted(tg, Card{Type: CardAdvanceNearest, Text: "Nearest Utility", Target: SpaceUtility, RentMultiplier: 10})

	ack(tg)

	alice := tg.player(0)
	assert.Equal(t, 12, alice.Position)
	// Dice were (1,2): flat ten times the throw, not the ownership-count rate.
	assert.Equal(t, 1500-30, alice.Money)
	assert.Equal(t, 1500+30, tg.player(1).Money)
}

func TestCardAdvanceNearestRailroadPaysDoubleRent(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	tg.giveProperty(1, 15) // Bob owns one railroad
	drawScripted(tg, Card{Type: CardAdvanceNearest, Text: "Nearest Railroad", Target: SpaceRailroad, RentMultiplier: 2})

	ack(tg)

	alice := tg.player(0)
	assert.Equal(t, 15, alice.Position)
	assert.Equal(t, 1500-50, alice.Money) // 25 x 2
	assert.Equal(t, 1500+50, tg.player(1).Money)
}

func TestCardAdvanceNearestUnownedPromptsBuy(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	drawScripted(tg, Card{Type: CardAdvanceNearest, Text: "Nearest Railroad", Target: SpaceRailroad, RentMultiplier: 2})

	ack(tg)

	g := tg.state()
	assert.Equal(t, StateAwaitingBuyPrompt, g.turnState.Type)
	assert.Equal(t, 15, g.turnState.SpaceIndex)
}

func TestEmptyDeckReshufflesDiscard(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	g := tg.state()
	g.chanceDeck = nil
	g.chanceDiscard = []Card{{Type: CardReceive, Text: "Collect $20", Amount: 20}}

	tg.player(0).Position = 4
	tg.roll(1, 2) // Chance with an empty deck

	assert.Equal(t, StateAwaitingCardAction, g.turnState.Type)
	assert.Equal(t, CardReceive, g.turnState.Card.Type)
	// The reshuffled card went straight back to the discard pile on draw.
	assert.Empty(t, g.chanceDeck)
	assert.Len(t, g.chanceDiscard, 1)
}
