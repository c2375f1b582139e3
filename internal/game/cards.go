package game

import (
	"fmt"
	"math/rand"
)

// CardType identifies the effect a drawn card applies.
type CardType int

const (
	CardAdvance CardType = iota
	CardAdvanceNearest
	CardReceive
	CardPay
	CardReceivePerPlayer
	CardPayPerPlayer
	CardPayBuildings
	CardGoToJail
	CardGetOutOfJail
)

var cardTypeNames = map[CardType]string{
	CardAdvance:          "advance",
	CardAdvanceNearest:   "advance_nearest",
	CardReceive:          "receive",
	CardPay:              "pay",
	CardReceivePerPlayer: "receive_per_player",
	CardPayPerPlayer:     "pay_per_player",
	CardPayBuildings:     "pay_buildings",
	CardGoToJail:         "go_to_jail",
	CardGetOutOfJail:     "get_out_of_jail",
}

func (c CardType) String() string {
	if name, ok := cardTypeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CARD_%d", int(c))
}

// Card is an immutable Chance or Community Chest card. Which fields are
// meaningful depends on Type. RentMultiplier applies to advance_nearest
// cards: the landing charges that multiple instead of the normal rent
// (railroads pay twice the table rent, utilities pay ten times the dice).
type Card struct {
	Type           CardType
	Text           string
	Position       int
	Relative       bool
	Target         SpaceType
	RentMultiplier int
	Amount         int
	PerHouse       int
	PerHotel       int
}

func newChanceDeck() []Card {
	return []Card{
		{Type: CardAdvance, Text: "Advance to Go (Collect $200)", Position: PositionGo},
		{Type: CardAdvance, Text: "Advance to Illinois Ave.", Position: 24},
		{Type: CardAdvance, Text: "Advance to St. Charles Place.", Position: 11},
		{Type: CardAdvanceNearest, Text: "Advance token to nearest Utility. If unowned, you may buy it from the Bank. If owned, throw dice and pay owner a total ten times the amount thrown.", Target: SpaceUtility, RentMultiplier: 10},
		{Type: CardAdvanceNearest, Text: "Advance token to the nearest Railroad and pay owner twice the rental to which he/she is otherwise entitled. If Railroad is unowned, you may buy it from the Bank.", Target: SpaceRailroad, RentMultiplier: 2},
		{Type: CardReceive, Text: "Bank pays you dividend of $50", Amount: 50},
		{Type: CardGetOutOfJail, Text: "Get Out of Jail Free"},
		{Type: CardAdvance, Text: "Go Back 3 Spaces", Position: -3, Relative: true},
		{Type: CardGoToJail, Text: "Go to Jail. Go directly to Jail, do not pass Go, do not collect $200"},
		{Type: CardPayBuildings, Text: "Make general repairs on all your property. For each house pay $25. For each hotel pay $100", PerHouse: 25, PerHotel: 100},
		{Type: CardPay, Text: "Pay poor tax of $15", Amount: 15},
		{Type: CardAdvance, Text: "Take a trip to Reading Railroad.", Position: 5},
		{Type: CardAdvance, Text: "Take a walk on the Boardwalk. Advance token to Boardwalk", Position: 39},
		{Type: CardPayPerPlayer, Text: "You have been elected Chairman of the Board. Pay each player $50", Amount: 50},
		{Type: CardReceive, Text: "Your building and loan matures. Collect $150", Amount: 150},
		{Type: CardReceive, Text: "You have won a crossword competition. Collect $100", Amount: 100},
	}
}

func newCommunityChestDeck() []Card {
	return []Card{
		{Type: CardAdvance, Text: "Advance to Go (Collect $200)", Position: PositionGo},
		{Type: CardReceive, Text: "Bank error in your favor. Collect $200", Amount: 200},
		{Type: CardPay, Text: "Doctor's fees. Pay $50", Amount: 50},
		{Type: CardReceive, Text: "From sale of stock you get $50", Amount: 50},
		{Type: CardGetOutOfJail, Text: "Get Out of Jail Free"},
		{Type: CardGoToJail, Text: "Go to Jail. Go directly to Jail, do not pass Go, do not collect $200"},
		{Type: CardReceive, Text: "Holiday fund matures. Receive $100", Amount: 100},
		{Type: CardReceive, Text: "Income tax refund. Collect $20", Amount: 20},
		{Type: CardReceivePerPlayer, Text: "It is your birthday. Collect $10 from every player", Amount: 10},
		{Type: CardReceive, Text: "Life insurance matures. Collect $100", Amount: 100},
		{Type: CardPay, Text: "Pay hospital fees of $100", Amount: 100},
		{Type: CardPay, Text: "Pay school fees of $50", Amount: 50},
		{Type: CardReceive, Text: "Receive $25 consultancy fee", Amount: 25},
		{Type: CardPayBuildings, Text: "You are assessed for street repairs. $40 per house. $115 per hotel", PerHouse: 40, PerHotel: 115},
		{Type: CardReceive, Text: "You have won second prize in a beauty contest. Collect $10", Amount: 10},
		{Type: CardReceive, Text: "You inherit $100", Amount: 100},
	}
}

func shuffleCards(rng *rand.Rand, cards []Card) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
