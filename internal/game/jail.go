package game

import "fmt"

// JailAction is how a jailed player attempts to get out.
type JailAction string

const (
	JailActionPay  JailAction = "pay"
	JailActionRoll JailAction = "roll"
	JailActionCard JailAction = "card"
)

// HandleJailAction resolves a jailed player's choice. Paying the fine or
// using a card always grants the normal roll; release by rolling doubles
// moves immediately but forfeits the doubles bonus roll. A third failed roll
// forces the fine, routing to debt payment when cash falls short.
func (e *Engine) HandleJailAction(gameID string, action JailAction) error {
	return e.withGame(gameID, func(g *gameState) {
		if g.turnState.Type != StateAwaitingJailAction {
			e.rejectAction(g, "jail_action")
			return
		}

		player := g.currentPlayer()

		switch action {
		case JailActionPay:
			if player.Money < JailFine {
				g.addLog(fmt.Sprintf("%s does not have enough money to pay the fine.", player.Name))
				return
			}
			player.Money -= JailFine
			player.InJail = false
			player.JailTurns = 0
			player.recordTransaction("Paid jail fine", -JailFine)
			msg := fmt.Sprintf("%s paid $%d to get out of jail.", player.Name, JailFine)
			g.addLog(msg)
			g.setLastEvent("Left Jail", msg)
			g.turnState = awaitingRoll()

		case JailActionCard:
			if player.GetOutOfJailCards == 0 {
				g.addLog(fmt.Sprintf("%s has no Get Out of Jail Free card.", player.Name))
				return
			}
			player.GetOutOfJailCards--
			player.InJail = false
			player.JailTurns = 0
			msg := fmt.Sprintf("%s used a Get Out of Jail Free card.", player.Name)
			g.addLog(msg)
			g.setLastEvent("Left Jail", msg)
			g.turnState = awaitingRoll()

		case JailActionRoll:
			e.resolveJailRoll(g, player)

		default:
			e.rejectAction(g, fmt.Sprintf("jail_action:%s", action))
		}
	})
}

func (e *Engine) resolveJailRoll(g *gameState, player *Player) {
	d1, d2 := e.rollWithLatency(g, player)

	if d1 == d2 {
		g.addLog("Doubles! You are out of jail.")
		g.setLastEvent("Left Jail", "Rolled doubles")
		player.InJail = false
		player.JailTurns = 0
		// The escape roll is the move; no bonus roll for this double.
		g.doublesCount = 0
		e.moveSteps(g, player, d1+d2)
		e.resolveLanding(g, player, 0)
		return
	}

	g.addLog("Not doubles. You remain in jail.")
	g.setLastEvent("Stay in Jail", "Did not roll doubles")
	player.JailTurns++

	if player.JailTurns < MaxJailTurns {
		g.turnState = turnEnded()
		return
	}

	g.addLog("Third attempt failed. You must pay the fine.")
	player.InJail = false
	player.JailTurns = 0
	if player.Money < JailFine {
		g.turnState = awaitingDebtPayment(Debt{DebtorID: player.ID, CreditorID: NoOwner, Amount: JailFine})
		return
	}
	player.Money -= JailFine
	player.recordTransaction("Paid jail fine (3 attempts)", -JailFine)
	g.turnState = awaitingRoll()
}
