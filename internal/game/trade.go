package game

import "fmt"

// ModalAction suspends or resumes the turn state for non-mandatory UI flows.
type ModalAction string

const (
	ModalManageProperties ModalAction = "manage_properties"
	ModalTradePrompt      ModalAction = "trade_prompt"
	ModalCloseModal       ModalAction = "close_modal"
)

// HandleModalAction opens or closes a modal suspension. Property management
// may also be opened over a pending debt so the debtor can liquidate assets;
// trading may not.
func (e *Engine) HandleModalAction(gameID string, action ModalAction) error {
	return e.withGame(gameID, func(g *gameState) {
		current := g.turnState
		switch action {
		case ModalManageProperties:
			switch current.Type {
			case StateAwaitingRoll, StateTurnEnded, StateAwaitingDebtPayment:
				g.turnState = suspended(StateManagingProperties, current)
			default:
				e.rejectAction(g, "modal:manage_properties")
			}
		case ModalTradePrompt:
			switch current.Type {
			case StateAwaitingRoll, StateTurnEnded:
				g.turnState = suspended(StateProposingTrade, current)
			default:
				e.rejectAction(g, "modal:trade_prompt")
			}
		case ModalCloseModal:
			switch current.Type {
			case StateManagingProperties, StateProposingTrade, StateAwaitingTradeResponse:
				if current.Previous != nil {
					g.turnState = *current.Previous
				}
			default:
				e.rejectAction(g, "modal:close_modal")
			}
		default:
			e.rejectAction(g, fmt.Sprintf("modal:%s", action))
		}
	})
}

// ProposeTrade submits a composed offer to the counterparty. Invalid offers
// (unknown parties, unowned or built-up properties, card counts exceeding
// holdings) are rejected with an advisory and the composer stays open.
func (e *Engine) ProposeTrade(gameID string, offer TradeOffer) error {
	return e.withGame(gameID, func(g *gameState) {
		if g.turnState.Type != StateProposingTrade {
			e.rejectAction(g, "propose_trade")
			return
		}
		if !g.validateOffer(offer) {
			return
		}

		proposer := g.playerByID(offer.FromPlayerID)
		receiver := g.playerByID(offer.ToPlayerID)
		msg := fmt.Sprintf("%s proposed a trade to %s.", proposer.Name, receiver.Name)
		g.addLog(msg)
		g.setLastEvent("Trade Proposed", msg)

		g.turnState = TurnState{
			Type:     StateAwaitingTradeResponse,
			Offer:    offer,
			Previous: g.turnState.Previous,
		}
	})
}

func (g *gameState) validateOffer(offer TradeOffer) bool {
	proposer := g.playerByID(offer.FromPlayerID)
	receiver := g.playerByID(offer.ToPlayerID)
	if proposer == nil || receiver == nil || proposer.ID == receiver.ID ||
		proposer.Bankrupt || receiver.Bankrupt {
		g.addLog("Invalid trade: unknown or bankrupt party.")
		return false
	}
	if offer.MoneyOffered < 0 || offer.MoneyRequested < 0 {
		g.addLog("Invalid trade: negative money amount.")
		return false
	}
	if offer.CardsOffered > proposer.GetOutOfJailCards || offer.CardsRequested > receiver.GetOutOfJailCards ||
		offer.CardsOffered < 0 || offer.CardsRequested < 0 {
		g.addLog("Invalid trade: not enough Get Out of Jail Free cards.")
		return false
	}
	return g.validateOfferedSpaces(offer.PropertiesOffered, proposer) &&
		g.validateOfferedSpaces(offer.PropertiesRequested, receiver)
}

func (g *gameState) validateOfferedSpaces(indices []int, owner *Player) bool {
	for _, idx := range indices {
		if idx < 0 || idx >= len(g.board) || !g.board[idx].Ownable() || g.board[idx].Owner != owner.ID {
			g.addLog(fmt.Sprintf("Invalid trade: %s does not own that property.", owner.Name))
			return false
		}
		if g.board[idx].Type == SpaceProperty && g.board[idx].Houses > 0 {
			g.addLog(fmt.Sprintf("Invalid trade: %s still has houses.", g.board[idx].Name))
			return false
		}
	}
	return true
}

// RespondToTrade accepts or rejects the pending offer. Acceptance moves the
// net money, the named properties and the jail card counts in one step;
// rejection only logs. Either way the suspended turn state resumes.
func (e *Engine) RespondToTrade(gameID string, accepted bool) error {
	return e.withGame(gameID, func(g *gameState) {
		if g.turnState.Type != StateAwaitingTradeResponse {
			e.rejectAction(g, "respond_to_trade")
			return
		}

		offer := g.turnState.Offer
		proposer := g.playerByID(offer.FromPlayerID)
		receiver := g.playerByID(offer.ToPlayerID)

		if accepted {
			msg := fmt.Sprintf("Trade between %s and %s accepted!", proposer.Name, receiver.Name)
			g.addLog(msg)
			g.setLastEvent("Trade", msg)
			g.executeTrade(proposer, receiver, offer)
		} else {
			msg := fmt.Sprintf("Trade between %s and %s was rejected.", proposer.Name, receiver.Name)
			g.addLog(msg)
			g.setLastEvent("Trade", msg)
		}

		g.turnState = g.turnState.resume(turnEnded())
	})
}

func (g *gameState) executeTrade(proposer, receiver *Player, offer TradeOffer) {
	proposerGain := offer.MoneyRequested - offer.MoneyOffered
	proposer.Money += proposerGain
	receiver.Money -= proposerGain
	if proposerGain != 0 {
		proposer.recordTransaction(fmt.Sprintf("Trade with %s", receiver.Name), proposerGain)
		receiver.recordTransaction(fmt.Sprintf("Trade with %s", proposer.Name), -proposerGain)
	}

	g.transferSpaces(proposer, receiver, offer.PropertiesOffered)
	g.transferSpaces(receiver, proposer, offer.PropertiesRequested)

	proposer.GetOutOfJailCards += offer.CardsRequested - offer.CardsOffered
	receiver.GetOutOfJailCards += offer.CardsOffered - offer.CardsRequested
}

// transferSpaces moves ownership of each index from one player to the other,
// updating both the board pointer and the ownership lists.
func (g *gameState) transferSpaces(from, to *Player, indices []int) {
	for _, idx := range indices {
		space := &g.board[idx]
		space.Owner = to.ID

		fromList := from.ownershipListFor(space.Type)
		filtered := (*fromList)[:0]
		for _, owned := range *fromList {
			if owned != idx {
				filtered = append(filtered, owned)
			}
		}
		*fromList = filtered

		toList := to.ownershipListFor(space.Type)
		*toList = append(*toList, idx)
	}
}
