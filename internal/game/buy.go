package game

import "fmt"

// BuyDecision is the player's answer to a purchase prompt.
type BuyDecision string

const (
	BuyDecisionBuy  BuyDecision = "buy"
	BuyDecisionSkip BuyDecision = "skip"
)

// HandleBuyAction resolves a pending purchase prompt. Auctions are not part
// of the rule set; a skipped space simply stays with the bank.
func (e *Engine) HandleBuyAction(gameID string, decision BuyDecision) error {
	return e.withGame(gameID, func(g *gameState) {
		if g.turnState.Type != StateAwaitingBuyPrompt {
			e.rejectAction(g, "buy_action")
			return
		}

		player := g.currentPlayer()
		spaceIndex := g.turnState.SpaceIndex
		space := &g.board[spaceIndex]

		if decision == BuyDecisionBuy {
			player.Money -= space.Price
			space.Owner = player.ID
			list := player.ownershipListFor(space.Type)
			*list = append(*list, spaceIndex)

			msg := fmt.Sprintf("%s bought %s for $%d.", player.Name, space.Name, space.Price)
			player.recordTransaction(fmt.Sprintf("Bought %s", space.Name), -space.Price)
			g.addLog(msg)
			g.setLastEvent("Property Bought", msg)
		} else {
			g.addLog(fmt.Sprintf("%s declined to buy %s.", player.Name, space.Name))
		}

		g.turnState = g.defaultTransition()
	})
}
