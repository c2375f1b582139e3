package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardLayout(t *testing.T) {
	board := NewBoard()
	require.Len(t, board, BoardSize)

	assert.Equal(t, SpaceCorner, board[PositionGo].Type)
	assert.Equal(t, SpaceCorner, board[PositionJail].Type)
	assert.Equal(t, SpaceCorner, board[PositionParking].Type)
	assert.Equal(t, SpaceCorner, board[PositionGoToJail].Type)

	railroads, utilities, properties := 0, 0, 0
	for _, s := range board {
		switch s.Type {
		case SpaceRailroad:
			railroads++
		case SpaceUtility:
			utilities++
		case SpaceProperty:
			properties++
		}
	}
	assert.Equal(t, 4, railroads)
	assert.Equal(t, 2, utilities)
	assert.Equal(t, 22, properties)

	assert.Equal(t, "Mediterranean Avenue", board[1].Name)
	assert.Equal(t, "Boardwalk", board[39].Name)
	assert.Equal(t, 400, board[39].Price)
}

func TestColorGroupHelpers(t *testing.T) {
	board := NewBoard()

	brown := colorGroupIndices(board, ColorBrown)
	assert.Equal(t, []int{1, 3}, brown)

	board[1].Owner = 2
	assert.False(t, ownsColorGroup(board, ColorBrown, 2))
	board[3].Owner = 2
	assert.True(t, ownsColorGroup(board, ColorBrown, 2))
	assert.False(t, ownsColorGroup(board, ColorBrown, 1))
}

func TestDeckComposition(t *testing.T) {
	for name, deck := range map[string][]Card{
		"chance":          newChanceDeck(),
		"community_chest": newCommunityChestDeck(),
	} {
		t.Run(name, func(t *testing.T) {
			require.Len(t, deck, 16)
			jailEscapes := 0
			for _, c := range deck {
				assert.NotEmpty(t, c.Text)
				if c.Type == CardGetOutOfJail {
					jailEscapes++
				}
			}
			assert.Equal(t, 1, jailEscapes)
		})
	}
}
