package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// giveBrownGroup hands a player the full brown group (indices 1 and 3).
func giveBrownGroup(tg *testGame, playerID int) {
	tg.t.Helper()
	tg.giveProperty(playerID, 1)
	tg.giveProperty(playerID, 3)
}

func TestBuyHouse(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	giveBrownGroup(tg, 0)

	require.NoError(t, tg.engine.ManageProperty(tg.id, 1, PropertyActionBuyHouse))

	g := tg.state()
	assert.Equal(t, 1, g.board[1].Houses)
	assert.Equal(t, 1500-g.board[1].HouseCost, tg.player(0).Money)
}

func TestBuyHouseRequiresFullGroup(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	tg.giveProperty(0, 1) // Mediterranean only

	require.NoError(t, tg.engine.ManageProperty(tg.id, 1, PropertyActionBuyHouse))

	assert.Equal(t, 0, tg.state().board[1].Houses)
	assert.Equal(t, 1500, tg.player(0).Money)
}

func TestBuyHouseEvenBuildingEnforced(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	giveBrownGroup(tg, 0)
	g := tg.state()
	g.board[1].Houses = 1

	// Index 3 sits at the group minimum, index 1 does not.
	require.NoError(t, tg.engine.ManageProperty(tg.id, 1, PropertyActionBuyHouse))
	assert.Equal(t, 1, g.board[1].Houses)

	require.NoError(t, tg.engine.ManageProperty(tg.id, 3, PropertyActionBuyHouse))
	assert.Equal(t, 1, g.board[3].Houses)
}

func TestBuyHouseRejectedOnMortgaged(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	giveBrownGroup(tg, 0)
	g := tg.state()
	g.board[1].Mortgaged = true

	require.NoError(t, tg.engine.ManageProperty(tg.id, 1, PropertyActionBuyHouse))

	assert.Equal(t, 0, g.board[1].Houses)
	assert.Equal(t, 1500, tg.player(0).Money)
}

func TestBuyHouseCapsAtHotel(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	giveBrownGroup(tg, 0)
	g := tg.state()
	g.board[1].Houses = MaxHouses
	g.board[3].Houses = MaxHouses

	require.NoError(t, tg.engine.ManageProperty(tg.id, 1, PropertyActionBuyHouse))

	assert.Equal(t, MaxHouses, g.board[1].Houses)
	assert.Equal(t, 1500, tg.player(0).Money)
}

func TestSellHouseRefundsHalf(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	giveBrownGroup(tg, 0)
	g := tg.state()
	g.board[1].Houses = 2
	g.board[3].Houses = 2

	require.NoError(t, tg.engine.ManageProperty(tg.id, 1, PropertyActionSellHouse))

	assert.Equal(t, 1, g.board[1].Houses)
	assert.Equal(t, 1500+g.board[1].HouseCost/2, tg.player(0).Money)
}

func TestSellHouseEvenSellingEnforced(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	giveBrownGroup(tg, 0)
	g := tg.state()
	g.board[1].Houses = 1
	g.board[3].Houses = 2

	// Index 1 is below the group maximum; only index 3 may sell.
	require.NoError(t, tg.engine.ManageProperty(tg.id, 1, PropertyActionSellHouse))
	assert.Equal(t, 1, g.board[1].Houses)

	require.NoError(t, tg.engine.ManageProperty(tg.id, 3, PropertyActionSellHouse))
	assert.Equal(t, 1, g.board[3].Houses)
}

func TestMortgage(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	tg.giveProperty(0, 1) // Mediterranean Avenue, $60

	require.NoError(t, tg.engine.ManageProperty(tg.id, 1, PropertyActionMortgage))

	g := tg.state()
	assert.True(t, g.board[1].Mortgaged)
	assert.Equal(t, 1530, tg.player(0).Money)
}

func TestMortgageRejectedWithHouses(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	giveBrownGroup(tg, 0)
	g := tg.state()
	g.board[1].Houses = 1

	require.NoError(t, tg.engine.ManageProperty(tg.id, 1, PropertyActionMortgage))

	assert.False(t, g.board[1].Mortgaged)
	assert.Equal(t, 1500, tg.player(0).Money)
}

func TestUnmortgageCostsTenPercentInterest(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	tg.giveProperty(0, 1)
	g := tg.state()
	g.board[1].Mortgaged = true

	require.NoError(t, tg.engine.ManageProperty(tg.id, 1, PropertyActionUnmortgage))

	// $30 principal plus $3 interest, integer math.
	assert.False(t, g.board[1].Mortgaged)
	assert.Equal(t, 1500-33, tg.player(0).Money)
}

func TestManageRejectsUnownedSpace(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	tg.giveProperty(1, 1)

	require.NoError(t, tg.engine.ManageProperty(tg.id, 1, PropertyActionMortgage))

	g := tg.state()
	assert.False(t, g.board[1].Mortgaged)
	assert.Equal(t, 1500, tg.player(1).Money)
}

func TestManageRejectedDuringActiveRoll(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	tg.giveProperty(0, 1)
	g := tg.state()
	g.turnState = processing()

	require.NoError(t, tg.engine.ManageProperty(tg.id, 1, PropertyActionMortgage))

	assert.False(t, g.board[1].Mortgaged)
}

func TestMortgageToSettleDebt(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	tg.giveProperty(0, 39) // Boardwalk, mortgage value $200
	g := tg.state()
	alice := tg.player(0)
	alice.Money = 50
	g.turnState = awaitingDebtPayment(Debt{DebtorID: 0, CreditorID: 1, Amount: 150})

	require.NoError(t, tg.engine.ManageProperty(tg.id, 39, PropertyActionMortgage))

	// Mortgage raised $200; the $150 debt settled immediately.
	assert.True(t, g.board[39].Mortgaged)
	assert.Equal(t, 100, alice.Money)
	assert.Equal(t, 1650, tg.player(1).Money)
	assert.Equal(t, StateTurnEnded, g.turnState.Type)
}

func TestPartialFundsLeaveDebtPending(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	tg.giveProperty(0, 1) // raises only $30
	g := tg.state()
	alice := tg.player(0)
	alice.Money = 0
	g.turnState = awaitingDebtPayment(Debt{DebtorID: 0, CreditorID: 1, Amount: 100})

	require.NoError(t, tg.engine.ManageProperty(tg.id, 1, PropertyActionMortgage))

	assert.Equal(t, 30, alice.Money)
	assert.Equal(t, StateAwaitingDebtPayment, g.turnState.Type)
	assert.Equal(t, 100, g.turnState.Debt.Amount)
}

func TestDebtorManagesDuringOpponentDebt(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	tg.giveProperty(1, 39)
	g := tg.state()
	bob := tg.player(1)
	bob.Money = 10
	// Alice's turn, but Bob owes the rent debt and must raise the money.
	g.turnState = awaitingDebtPayment(Debt{DebtorID: 1, CreditorID: 0, Amount: 120})

	require.NoError(t, tg.engine.ManageProperty(tg.id, 39, PropertyActionMortgage))

	assert.True(t, g.board[39].Mortgaged)
	assert.Equal(t, 90, bob.Money)
	assert.Equal(t, 1620, tg.player(0).Money)
	assert.Equal(t, StateTurnEnded, g.turnState.Type)
}

func TestSettleDebtThroughManagementModal(t *testing.T) {
	tg := newTestGame(t, "Alice", "Bob")
	tg.giveProperty(0, 39)
	g := tg.state()
	alice := tg.player(0)
	alice.Money = 0
	g.turnState = awaitingDebtPayment(Debt{DebtorID: 0, CreditorID: NoOwner, Amount: 150})

	// Open the management modal on top of the debt state.
	require.NoError(t, tg.engine.HandleModalAction(tg.id, ModalManageProperties))
	require.Equal(t, StateManagingProperties, g.turnState.Type)

	require.NoError(t, tg.engine.ManageProperty(tg.id, 39, PropertyActionMortgage))

	// Bank debt: the money leaves the game.
	assert.Equal(t, 50, alice.Money)
	assert.Equal(t, StateTurnEnded, g.turnState.Type)
}
