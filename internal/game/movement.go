package game

import (
	"fmt"
	"time"
)

// moveSteps advances the token one space at a time so the presentation layer
// can render intermediate positions. Every 39->0 crossing credits Passed GO.
// The caller holds g.mu.
func (e *Engine) moveSteps(g *gameState, p *Player, steps int) {
	for i := 0; i < steps; i++ {
		if e.stepDelay > 0 {
			time.Sleep(e.stepDelay)
		}
		p.Position = (p.Position + 1) % BoardSize
		if p.Position == PositionGo {
			g.creditPassGo(p)
		}
		e.notifyState(g)
	}
}

// creditPassGo pays the Passed GO salary with a transaction record.
func (g *gameState) creditPassGo(p *Player) {
	p.Money += PassGoAmount
	p.recordTransaction("Passed GO", PassGoAmount)
	msg := fmt.Sprintf("%s passed GO and collected $%d.", p.Name, PassGoAmount)
	g.addLog(msg)
	g.setLastEvent("Passed GO", msg)
}

// resolveLanding dispatches on the type of the space the player stopped on.
// rentMultiplier is nonzero only when the landing was forced by an
// advance-to-nearest card; it overrides the normal rent computation.
func (e *Engine) resolveLanding(g *gameState, p *Player, rentMultiplier int) {
	space := &g.board[p.Position]
	g.addLog(fmt.Sprintf("%s landed on %s.", p.Name, space.Name))
	g.setLastEvent("Landed On", space.Name)

	switch space.Type {
	case SpaceProperty, SpaceRailroad, SpaceUtility:
		e.resolveOwnable(g, p, space, rentMultiplier)
	case SpaceTax:
		g.resolveTax(p, space)
	case SpaceChance, SpaceCommunityChest:
		g.drawCard(space.Type == SpaceChance)
	case SpaceCorner:
		if p.Position == PositionGoToJail {
			g.addLog(fmt.Sprintf("%s was sent to jail.", p.Name))
			g.setLastEvent("Go to Jail", space.Name)
			g.sendToJail(p)
			g.turnState = turnEnded()
			return
		}
		g.turnState = g.defaultTransition()
	}
}

func (e *Engine) resolveOwnable(g *gameState, p *Player, space *BoardSpace, rentMultiplier int) {
	switch {
	case space.Owner == NoOwner:
		if p.Money >= space.Price {
			g.turnState = awaitingBuyPrompt(p.Position)
			return
		}
		g.addLog(fmt.Sprintf("%s cannot afford to buy %s.", p.Name, space.Name))
		g.turnState = g.defaultTransition()

	case space.Owner != p.ID:
		owner := g.players[space.Owner]
		if space.Mortgaged {
			g.addLog(fmt.Sprintf("%s is mortgaged. No rent is due.", space.Name))
			g.turnState = g.defaultTransition()
			return
		}

		rent := g.rentFor(space, owner, rentMultiplier)
		msg := fmt.Sprintf("%s owes %s $%d in rent.", p.Name, owner.Name, rent)
		g.addLog(msg)
		g.setLastEvent("Rent Due", msg)

		if p.Money < rent {
			g.turnState = awaitingDebtPayment(Debt{DebtorID: p.ID, CreditorID: owner.ID, Amount: rent})
			return
		}
		p.Money -= rent
		owner.Money += rent
		p.recordTransaction(fmt.Sprintf("Paid rent for %s", space.Name), -rent)
		owner.recordTransaction(fmt.Sprintf("Received rent from %s", p.Name), rent)
		g.turnState = g.defaultTransition()

	default:
		// Own space, nothing to do.
		g.turnState = g.defaultTransition()
	}
}

// rentFor computes rent for an unmortgaged space owned by owner. A complete
// color group with no houses doubles the base property rent. Railroad rent
// comes from a fixed table by count owned; utility rent is the last dice sum
// times 4 or 10 by count owned. A card-forced landing overrides with the
// card's multiplier: twice the table rent for railroads, a flat ten times the
// dice for utilities regardless of how many the owner holds.
func (g *gameState) rentFor(space *BoardSpace, owner *Player, multiplier int) int {
	switch space.Type {
	case SpaceProperty:
		rent := space.Rent[space.Houses]
		if space.Houses == 0 && ownsColorGroup(g.board, space.Color, owner.ID) {
			rent *= 2
		}
		return rent
	case SpaceRailroad:
		rent := railroadRentLevels[len(owner.Railroads)-1]
		if multiplier > 0 {
			rent *= multiplier
		}
		return rent
	case SpaceUtility:
		diceSum := g.dice[0] + g.dice[1]
		if multiplier > 0 {
			return diceSum * multiplier
		}
		if len(owner.Utilities) == 1 {
			return diceSum * 4
		}
		return diceSum * 10
	}
	return 0
}

func (g *gameState) resolveTax(p *Player, space *BoardSpace) {
	msg := fmt.Sprintf("%s paid $%d in %s.", p.Name, space.Cost, space.Name)
	g.addLog(msg)
	g.setLastEvent("Tax Paid", msg)

	if p.Money < space.Cost {
		g.turnState = awaitingDebtPayment(Debt{DebtorID: p.ID, CreditorID: NoOwner, Amount: space.Cost})
		return
	}
	p.Money -= space.Cost
	p.recordTransaction(fmt.Sprintf("Paid %s", space.Name), -space.Cost)
	g.turnState = g.defaultTransition()
}

// drawCard draws the top card of the requested deck, reshuffling the discard
// pile back in when the deck runs dry. Get Out of Jail Free cards never reach
// the discard pile; they convert into a player-held card count on
// acknowledgement.
func (g *gameState) drawCard(isChance bool) {
	deck, discard := &g.communityChestDeck, &g.communityChestDiscard
	title := "Community Chest"
	if isChance {
		deck, discard = &g.chanceDeck, &g.chanceDiscard
		title = "Chance"
	}

	if len(*deck) == 0 {
		shuffleCards(g.rng, *discard)
		*deck = append(*deck, *discard...)
		*discard = (*discard)[:0]
	}

	card := (*deck)[len(*deck)-1]
	*deck = (*deck)[:len(*deck)-1]
	g.setLastEvent(title, card.Text)
	if card.Type != CardGetOutOfJail {
		*discard = append(*discard, card)
	}
	g.turnState = awaitingCardAction(card, isChance)
}
