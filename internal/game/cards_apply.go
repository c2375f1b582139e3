package game

import "fmt"

// HandleCardAction acknowledges the drawn card and applies its effect.
func (e *Engine) HandleCardAction(gameID string) error {
	return e.withGame(gameID, func(g *gameState) {
		if g.turnState.Type != StateAwaitingCardAction {
			e.rejectAction(g, "card_action")
			return
		}
		e.applyCard(g, g.currentPlayer(), g.turnState.Card)
	})
}

// applyCard applies a card effect to the current player. Movement cards
// re-resolve the destination as a fresh landing; pay variants that exceed
// cash on hand route to debt payment without a partial debit.
func (e *Engine) applyCard(g *gameState, p *Player, card Card) {
	var msg string

	switch card.Type {
	case CardGetOutOfJail:
		p.GetOutOfJailCards++
		msg = fmt.Sprintf("%s received a Get Out of Jail Free card.", p.Name)

	case CardReceive:
		p.Money += card.Amount
		p.recordTransaction(card.Text, card.Amount)
		msg = fmt.Sprintf("%s received $%d.", p.Name, card.Amount)

	case CardPay:
		msg = fmt.Sprintf("%s paid $%d.", p.Name, card.Amount)
		if p.Money < card.Amount {
			g.addLog(msg)
			g.turnState = awaitingDebtPayment(Debt{DebtorID: p.ID, CreditorID: NoOwner, Amount: card.Amount})
			return
		}
		p.Money -= card.Amount
		p.recordTransaction(card.Text, -card.Amount)

	case CardReceivePerPlayer:
		total := 0
		for _, other := range g.players {
			if other.ID == p.ID || other.Bankrupt {
				continue
			}
			other.Money -= card.Amount
			p.Money += card.Amount
			other.recordTransaction(fmt.Sprintf("Paid %s", p.Name), -card.Amount)
			p.recordTransaction(fmt.Sprintf("Received from %s", other.Name), card.Amount)
			total += card.Amount
		}
		msg = fmt.Sprintf("%s received $%d from each player, for a total of $%d.", p.Name, card.Amount, total)

	case CardPayPerPlayer:
		total := 0
		for _, other := range g.players {
			if other.ID != p.ID && !other.Bankrupt {
				total += card.Amount
			}
		}
		msg = fmt.Sprintf("%s paid $%d to each player.", p.Name, card.Amount)
		if p.Money < total {
			g.addLog(msg)
			g.turnState = awaitingDebtPayment(Debt{DebtorID: p.ID, CreditorID: NoOwner, Amount: total})
			return
		}
		p.Money -= total
		p.recordTransaction(card.Text, -total)
		for _, other := range g.players {
			if other.ID != p.ID && !other.Bankrupt {
				other.Money += card.Amount
				other.recordTransaction(fmt.Sprintf("Received from %s", p.Name), card.Amount)
			}
		}

	case CardPayBuildings:
		houses, hotels := 0, 0
		for _, idx := range p.Properties {
			if g.board[idx].Houses == MaxHouses {
				hotels++
			} else {
				houses += g.board[idx].Houses
			}
		}
		total := houses*card.PerHouse + hotels*card.PerHotel
		msg = fmt.Sprintf("%s paid $%d for building repairs.", p.Name, total)
		if p.Money < total {
			g.addLog(msg)
			g.turnState = awaitingDebtPayment(Debt{DebtorID: p.ID, CreditorID: NoOwner, Amount: total})
			return
		}
		p.Money -= total
		p.recordTransaction(card.Text, -total)

	case CardGoToJail:
		g.addLog(fmt.Sprintf("%s was sent to jail.", p.Name))
		g.sendToJail(p)
		g.turnState = turnEnded()
		return

	case CardAdvance:
		oldPos := p.Position
		if card.Relative {
			p.Position = (oldPos + card.Position + BoardSize) % BoardSize
		} else {
			p.Position = card.Position
		}
		g.addLog(fmt.Sprintf("%s advanced to %s.", p.Name, g.board[p.Position].Name))
		// Relative "go back" moves never pay the GO salary.
		if !card.Relative && p.Position < oldPos {
			g.creditPassGo(p)
		}
		e.resolveLanding(g, p, 0)
		return

	case CardAdvanceNearest:
		nearest := NoOwner
		for i := 1; i < BoardSize; i++ {
			checkPos := (p.Position + i) % BoardSize
			if g.board[checkPos].Type == card.Target {
				nearest = checkPos
				break
			}
		}
		if nearest == NoOwner {
			break
		}
		if nearest < p.Position {
			g.creditPassGo(p)
		}
		p.Position = nearest
		g.addLog(fmt.Sprintf("%s advanced to the nearest %s, %s.", p.Name, card.Target, g.board[nearest].Name))
		e.resolveLanding(g, p, card.RentMultiplier)
		return
	}

	if msg != "" {
		g.addLog(msg)
		g.setLastEvent("Card Action", msg)
	}
	g.turnState = g.defaultTransition()
}
