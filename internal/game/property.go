package game

import "fmt"

// PropertyAction is a building or mortgage operation on an owned space.
type PropertyAction string

const (
	PropertyActionBuyHouse   PropertyAction = "buy_house"
	PropertyActionSellHouse  PropertyAction = "sell_house"
	PropertyActionMortgage   PropertyAction = "mortgage"
	PropertyActionUnmortgage PropertyAction = "unmortgage"
)

// ManageProperty applies a building or mortgage action for the acting player:
// the debtor while a debt is being resolved, otherwise the current player.
// Rule violations (uneven building, mortgaging a built property, acting on a
// space the player does not own) are rejected with an advisory log entry and
// leave the state unchanged. While a debt is pending, every successful action
// re-checks whether the raised cash now covers it.
func (e *Engine) ManageProperty(gameID string, spaceIndex int, action PropertyAction) error {
	return e.withGame(gameID, func(g *gameState) {
		switch g.turnState.Type {
		case StateAwaitingRoll, StateTurnEnded, StateManagingProperties, StateAwaitingDebtPayment:
		default:
			e.rejectAction(g, "manage_property")
			return
		}
		if spaceIndex < 0 || spaceIndex >= len(g.board) {
			e.rejectAction(g, "manage_property")
			return
		}

		player := g.currentPlayer()
		if debt, ok := g.pendingDebt(); ok {
			player = g.playerByID(debt.DebtorID)
		}

		space := &g.board[spaceIndex]
		if !space.Ownable() || space.Owner != player.ID {
			g.addLog("You can only manage properties you own.")
			return
		}

		switch action {
		case PropertyActionBuyHouse:
			g.buyHouse(player, space)
		case PropertyActionSellHouse:
			g.sellHouse(player, space)
		case PropertyActionMortgage:
			g.mortgage(player, space)
		case PropertyActionUnmortgage:
			g.unmortgage(player, space)
		default:
			e.rejectAction(g, fmt.Sprintf("manage_property:%s", action))
			return
		}

		g.settleDebtIfAble(player)
	})
}

// checkEvenBuilding enforces the even-building constraint: buying requires
// the space to sit at the group minimum, selling at the group maximum. The
// player must own the whole color group to build at all.
func (g *gameState) checkEvenBuilding(player *Player, space *BoardSpace, buying bool) bool {
	if !ownsColorGroup(g.board, space.Color, player.ID) {
		g.addLog(fmt.Sprintf("You must own all %s properties to build.", space.Color))
		return false
	}

	minHouses, maxHouses := MaxHouses, 0
	for _, idx := range colorGroupIndices(g.board, space.Color) {
		if h := g.board[idx].Houses; h < minHouses {
			minHouses = h
		}
		if h := g.board[idx].Houses; h > maxHouses {
			maxHouses = h
		}
	}

	if buying && space.Houses > minHouses {
		g.addLog("You must build houses evenly across the color group.")
		return false
	}
	if !buying && space.Houses < maxHouses {
		g.addLog("You must sell houses evenly across the color group.")
		return false
	}
	return true
}

func (g *gameState) buyHouse(player *Player, space *BoardSpace) {
	if space.Type != SpaceProperty {
		g.addLog("You can only manage houses on normal properties.")
		return
	}
	if !g.checkEvenBuilding(player, space, true) {
		return
	}
	if space.Mortgaged {
		g.addLog("You cannot build on a mortgaged property.")
		return
	}
	if space.Houses >= MaxHouses || player.Money < space.HouseCost {
		return
	}
	player.Money -= space.HouseCost
	space.Houses++
	msg := fmt.Sprintf("%s built a house on %s for $%d.", player.Name, space.Name, space.HouseCost)
	g.addLog(msg)
	g.setLastEvent("House Built", msg)
	player.recordTransaction(fmt.Sprintf("Built house on %s", space.Name), -space.HouseCost)
}

func (g *gameState) sellHouse(player *Player, space *BoardSpace) {
	if space.Type != SpaceProperty {
		g.addLog("You can only manage houses on normal properties.")
		return
	}
	if !g.checkEvenBuilding(player, space, false) {
		return
	}
	if space.Houses == 0 {
		return
	}
	refund := space.HouseCost / 2
	player.Money += refund
	space.Houses--
	msg := fmt.Sprintf("%s sold a house on %s for $%d.", player.Name, space.Name, refund)
	g.addLog(msg)
	g.setLastEvent("House Sold", msg)
	player.recordTransaction(fmt.Sprintf("Sold house on %s", space.Name), refund)
}

func (g *gameState) mortgage(player *Player, space *BoardSpace) {
	if space.Mortgaged {
		return
	}
	if space.Type == SpaceProperty && space.Houses > 0 {
		g.addLog("You must sell all houses before mortgaging.")
		return
	}
	value := space.Price / 2
	player.Money += value
	space.Mortgaged = true
	msg := fmt.Sprintf("%s mortgaged %s for $%d.", player.Name, space.Name, value)
	g.addLog(msg)
	g.setLastEvent("Property Mortgaged", msg)
	player.recordTransaction(fmt.Sprintf("Mortgaged %s", space.Name), value)
}

func (g *gameState) unmortgage(player *Player, space *BoardSpace) {
	value := space.Price / 2
	cost := value + value/10
	if !space.Mortgaged || player.Money < cost {
		return
	}
	player.Money -= cost
	space.Mortgaged = false
	msg := fmt.Sprintf("%s unmortgaged %s for $%d.", player.Name, space.Name, cost)
	g.addLog(msg)
	g.setLastEvent("Property Unmortgaged", msg)
	player.recordTransaction(fmt.Sprintf("Unmortgaged %s", space.Name), -cost)
}

// pendingDebt returns the debt being resolved, looking through a
// managing-properties suspension opened on top of the debt state.
func (g *gameState) pendingDebt() (Debt, bool) {
	switch g.turnState.Type {
	case StateAwaitingDebtPayment:
		return g.turnState.Debt, true
	case StateManagingProperties:
		if g.turnState.Previous != nil && g.turnState.Previous.Type == StateAwaitingDebtPayment {
			return g.turnState.Previous.Debt, true
		}
	}
	return Debt{}, false
}

// settleDebtIfAble pays off the pending debt atomically once the debtor's
// cash covers it, then resumes normal turn flow.
func (g *gameState) settleDebtIfAble(player *Player) {
	debt, ok := g.pendingDebt()
	if !ok || player.ID != debt.DebtorID || player.Money < debt.Amount {
		return
	}

	player.Money -= debt.Amount
	player.recordTransaction("Paid debt", -debt.Amount)
	if creditor := g.playerByID(debt.CreditorID); creditor != nil {
		creditor.Money += debt.Amount
		creditor.recordTransaction(fmt.Sprintf("Received debt payment from %s", player.Name), debt.Amount)
	}

	msg := fmt.Sprintf("%s paid their debt of $%d.", player.Name, debt.Amount)
	g.addLog(msg)
	g.setLastEvent("Debt Paid", msg)
	g.turnState = g.defaultTransition()
}
