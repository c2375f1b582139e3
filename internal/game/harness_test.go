package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// scriptedRoller feeds predetermined dice pairs to the engine. Once the
// script runs out, the last pair repeats.
type scriptedRoller struct {
	rolls [][2]int
	idx   int
}

func (r *scriptedRoller) Roll() (int, int) {
	if len(r.rolls) == 0 {
		return 1, 2
	}
	i := r.idx
	if i >= len(r.rolls) {
		i = len(r.rolls) - 1
	}
	r.idx++
	return r.rolls[i][0], r.rolls[i][1]
}

// testGame sets up an engine with zero pacing delays, a scripted dice roller
// and direct access to the raw game state.
type testGame struct {
	t      *testing.T
	engine *Engine
	id     string
	roller *scriptedRoller
}

func newTestGame(t *testing.T, names ...string) *testGame {
	t.Helper()
	engine := NewEngine(zaptest.NewLogger(t), Options{Seed: 42})
	roller := &scriptedRoller{}
	engine.SetDiceRoller(roller)

	opts := GameOptions{}
	for _, name := range names {
		opts.Players = append(opts.Players, PlayerSetup{Name: name, Piece: PieceCar})
	}
	id, err := engine.CreateGame(opts)
	require.NoError(t, err)

	return &testGame{t: t, engine: engine, id: id, roller: roller}
}

// state returns the raw game state for direct setup and assertions.
func (tg *testGame) state() *gameState {
	tg.engine.mu.RLock()
	defer tg.engine.mu.RUnlock()
	return tg.engine.games[tg.id]
}

// queueRoll appends a dice pair to the script.
func (tg *testGame) queueRoll(d1, d2 int) {
	tg.roller.rolls = append(tg.roller.rolls, [2]int{d1, d2})
}

func (tg *testGame) roll(d1, d2 int) {
	tg.t.Helper()
	tg.queueRoll(d1, d2)
	require.NoError(tg.t, tg.engine.RollDice(tg.id))
}

func (tg *testGame) player(id int) *Player {
	return tg.state().players[id]
}

// giveProperty assigns an ownable space to a player directly.
func (tg *testGame) giveProperty(playerID, spaceIndex int) {
	tg.t.Helper()
	g := tg.state()
	space := &g.board[spaceIndex]
	require.True(tg.t, space.Ownable(), "space %d is not ownable", spaceIndex)
	space.Owner = playerID
	player := g.players[playerID]
	list := player.ownershipListFor(space.Type)
	*list = append(*list, spaceIndex)
}

// totalMoney sums cash across all players, for conservation checks.
func (tg *testGame) totalMoney() int {
	total := 0
	for _, p := range tg.state().players {
		total += p.Money
	}
	return total
}
