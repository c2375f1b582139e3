package game

import "fmt"

// DeclareBankruptcy resolves the pending debt by insolvency. The debtor is
// marked bankrupt irreversibly; cash, properties and jail cards go whole to
// the creditor (mortgage flags and houses preserved), or revert to the bank
// fully reset when the debt was bank-owed. The game ends if at most one
// solvent player remains, otherwise play passes over the bankrupt seat.
func (e *Engine) DeclareBankruptcy(gameID string) error {
	return e.withGame(gameID, func(g *gameState) {
		if g.turnState.Type != StateAwaitingDebtPayment {
			e.rejectAction(g, "declare_bankruptcy")
			return
		}

		debt := g.turnState.Debt
		player := g.playerByID(debt.DebtorID)
		if player == nil || player.Bankrupt {
			e.rejectAction(g, "declare_bankruptcy")
			return
		}

		player.Bankrupt = true
		creditor := g.playerByID(debt.CreditorID)
		creditorName := "the bank"
		if creditor != nil {
			creditorName = creditor.Name
		}

		msg := fmt.Sprintf("%s has gone bankrupt to %s!", player.Name, creditorName)
		g.addLog(msg)
		g.setLastEvent("Bankruptcy", msg)
		player.recordTransaction(fmt.Sprintf("Went bankrupt to %s", creditorName), -player.Money)

		assets := make([]int, 0, len(player.Properties)+len(player.Railroads)+len(player.Utilities))
		assets = append(assets, player.Properties...)
		assets = append(assets, player.Railroads...)
		assets = append(assets, player.Utilities...)

		if creditor != nil {
			creditor.Money += player.Money
			for _, idx := range assets {
				space := &g.board[idx]
				space.Owner = creditor.ID
				list := creditor.ownershipListFor(space.Type)
				*list = append(*list, idx)
			}
			creditor.GetOutOfJailCards += player.GetOutOfJailCards
		} else {
			for _, idx := range assets {
				space := &g.board[idx]
				space.Owner = NoOwner
				space.Houses = 0
				space.Mortgaged = false
			}
		}

		player.Money = 0
		player.Properties = nil
		player.Railroads = nil
		player.Utilities = nil
		player.GetOutOfJailCards = 0

		if active := g.solventPlayers(); len(active) <= 1 {
			g.finishGame(active)
			return
		}
		g.advanceTurn()
	})
}
