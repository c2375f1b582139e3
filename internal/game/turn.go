package game

import (
	"fmt"
	"time"
)

// RollDice resolves the current player's roll: doubles accounting, the
// three-doubles jail rule, stepwise movement, and landing resolution. The
// turn state is PROCESSING for the whole resolution so no other action can
// interleave. A jailed player is redirected to the jail decision instead.
func (e *Engine) RollDice(gameID string) error {
	return e.withGame(gameID, func(g *gameState) {
		if g.turnState.Type != StateAwaitingRoll {
			e.rejectAction(g, "roll_dice")
			return
		}

		player := g.currentPlayer()
		if player.InJail {
			g.turnState = awaitingJailAction()
			return
		}

		d1, d2 := e.rollWithLatency(g, player)

		if d1 == d2 {
			g.doublesCount++
		} else {
			g.doublesCount = 0
		}

		if g.doublesCount == 3 {
			g.addLog(fmt.Sprintf("%s rolled doubles three times. Go to jail!", player.Name))
			g.setLastEvent("Go to Jail", "Rolled doubles 3 times")
			g.sendToJail(player)
			g.turnState = turnEnded()
			return
		}

		e.moveSteps(g, player, d1+d2)
		e.resolveLanding(g, player, 0)
	})
}

// rollWithLatency runs the cosmetic dice latency window and commits the
// rolled values. The caller holds g.mu.
func (e *Engine) rollWithLatency(g *gameState, player *Player) (int, int) {
	g.turnState = processing()
	g.rolling = true
	e.notifyState(g)

	if e.rollDelay > 0 {
		time.Sleep(e.rollDelay)
	}

	e.mu.RLock()
	roller := e.roller
	e.mu.RUnlock()

	d1, d2 := roller.Roll()
	g.dice = [2]int{d1, d2}
	g.rolling = false
	g.addLog(fmt.Sprintf("%s rolled a %d and a %d.", player.Name, d1, d2))
	return d1, d2
}

// EndTurn hands the turn to the next solvent player.
func (e *Engine) EndTurn(gameID string) error {
	return e.withGame(gameID, func(g *gameState) {
		if g.turnState.Type != StateTurnEnded {
			e.rejectAction(g, "end_turn")
			return
		}
		g.advanceTurn()
	})
}

// advanceTurn moves currentPlayerIndex past bankrupt seats and resets the
// doubles counter. A jailed next player starts on the jail decision. With
// fewer than two solvent players left the game ends instead.
func (g *gameState) advanceTurn() {
	active := g.solventPlayers()
	if len(active) <= 1 {
		g.finishGame(active)
		return
	}

	next := (g.currentPlayerIndex + 1) % len(g.players)
	for g.players[next].Bankrupt {
		next = (next + 1) % len(g.players)
	}
	g.currentPlayerIndex = next
	g.doublesCount = 0

	nextPlayer := g.players[next]
	if nextPlayer.InJail {
		g.turnState = awaitingJailAction()
	} else {
		g.turnState = awaitingRoll()
	}
	g.addLog(fmt.Sprintf("It's %s's turn.", nextPlayer.Name))
}

// finishGame ends the game with the sole survivor, if any, as winner.
func (g *gameState) finishGame(active []*Player) {
	winner := NoOwner
	if len(active) >= 1 {
		winner = active[0].ID
		g.addLog(fmt.Sprintf("%s wins the game!", active[0].Name))
		g.setLastEvent("Game Over", fmt.Sprintf("%s wins!", active[0].Name))
	}
	g.winner = winner
	g.turnState = gameOver(winner)
}

// sendToJail places the player in jail without landing resolution.
func (g *gameState) sendToJail(p *Player) {
	p.Position = PositionJail
	p.InJail = true
	g.doublesCount = 0
}
