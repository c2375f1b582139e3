package game

import "fmt"

// SpaceType identifies the kind of board space.
type SpaceType int

const (
	SpaceProperty SpaceType = iota
	SpaceRailroad
	SpaceUtility
	SpaceTax
	SpaceChance
	SpaceCommunityChest
	SpaceCorner
)

var spaceTypeNames = map[SpaceType]string{
	SpaceProperty:       "property",
	SpaceRailroad:       "railroad",
	SpaceUtility:        "utility",
	SpaceTax:            "tax",
	SpaceChance:         "chance",
	SpaceCommunityChest: "community-chest",
	SpaceCorner:         "corner",
}

func (s SpaceType) String() string {
	if name, ok := spaceTypeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SPACE_%d", int(s))
}

// PropertyColor identifies a property's color group.
type PropertyColor string

const (
	ColorBrown     PropertyColor = "brown"
	ColorLightBlue PropertyColor = "light-blue"
	ColorPink      PropertyColor = "pink"
	ColorOrange    PropertyColor = "orange"
	ColorRed       PropertyColor = "red"
	ColorYellow    PropertyColor = "yellow"
	ColorGreen     PropertyColor = "green"
	ColorDarkBlue  PropertyColor = "dark-blue"
)

// Board layout constants for the standard 40-space board.
const (
	BoardSize        = 40
	PositionGo       = 0
	PositionJail     = 10
	PositionParking  = 20
	PositionGoToJail = 30

	PassGoAmount = 200
	JailFine     = 50
	MaxJailTurns = 3

	// Houses runs 0-4; a value of 5 encodes a hotel.
	MaxHouses = 5

	// NoOwner marks an ownable space that belongs to the bank.
	NoOwner = -1
)

// BoardSpace is one space on the board. Which fields are meaningful depends
// on Type: Price/Rent/Color/HouseCost/Houses/Mortgaged/Owner for properties,
// Price/Mortgaged/Owner for railroads and utilities, Cost for tax spaces.
type BoardSpace struct {
	Type      SpaceType
	Name      string
	Price     int
	Rent      [6]int // base, 1-4 houses, hotel
	Color     PropertyColor
	HouseCost int
	Cost      int
	Owner     int
	Houses    int
	Mortgaged bool
}

// Ownable reports whether the space can be bought and owned by a player.
func (s *BoardSpace) Ownable() bool {
	switch s.Type {
	case SpaceProperty, SpaceRailroad, SpaceUtility:
		return true
	}
	return false
}

// railroadRentLevels is indexed by (railroads owned - 1).
var railroadRentLevels = [4]int{25, 50, 100, 200}

func property(name string, price int, rent [6]int, color PropertyColor, houseCost int) BoardSpace {
	return BoardSpace{
		Type:      SpaceProperty,
		Name:      name,
		Price:     price,
		Rent:      rent,
		Color:     color,
		HouseCost: houseCost,
		Owner:     NoOwner,
	}
}

func railroad(name string) BoardSpace {
	return BoardSpace{Type: SpaceRailroad, Name: name, Price: 200, Owner: NoOwner}
}

func utility(name string) BoardSpace {
	return BoardSpace{Type: SpaceUtility, Name: name, Price: 150, Owner: NoOwner}
}

// NewBoard returns a fresh standard board with all spaces unowned.
func NewBoard() []BoardSpace {
	return []BoardSpace{
		{Type: SpaceCorner, Name: "Go"},
		property("Mediterranean Avenue", 60, [6]int{2, 10, 30, 90, 160, 250}, ColorBrown, 50),
		{Type: SpaceCommunityChest, Name: "Community Chest"},
		property("Baltic Avenue", 60, [6]int{4, 20, 60, 180, 320, 450}, ColorBrown, 50),
		{Type: SpaceTax, Name: "Income Tax", Cost: 200},
		railroad("Reading Railroad"),
		property("Oriental Avenue", 100, [6]int{6, 30, 90, 270, 400, 550}, ColorLightBlue, 50),
		{Type: SpaceChance, Name: "Chance"},
		property("Vermont Avenue", 100, [6]int{6, 30, 90, 270, 400, 550}, ColorLightBlue, 50),
		property("Connecticut Avenue", 120, [6]int{8, 40, 100, 300, 450, 600}, ColorLightBlue, 50),

		{Type: SpaceCorner, Name: "Jail"},
		property("St. Charles Place", 140, [6]int{10, 50, 150, 450, 625, 750}, ColorPink, 100),
		utility("Electric Company"),
		property("States Avenue", 140, [6]int{10, 50, 150, 450, 625, 750}, ColorPink, 100),
		property("Virginia Avenue", 160, [6]int{12, 60, 180, 500, 700, 900}, ColorPink, 100),
		railroad("Pennsylvania Railroad"),
		property("St. James Place", 180, [6]int{14, 70, 200, 550, 750, 950}, ColorOrange, 100),
		{Type: SpaceCommunityChest, Name: "Community Chest"},
		property("Tennessee Avenue", 180, [6]int{14, 70, 200, 550, 750, 950}, ColorOrange, 100),
		property("New York Avenue", 200, [6]int{16, 80, 220, 600, 800, 1000}, ColorOrange, 100),

		{Type: SpaceCorner, Name: "Free Parking"},
		property("Kentucky Avenue", 220, [6]int{18, 90, 250, 700, 875, 1050}, ColorRed, 150),
		{Type: SpaceChance, Name: "Chance"},
		property("Indiana Avenue", 220, [6]int{18, 90, 250, 700, 875, 1050}, ColorRed, 150),
		property("Illinois Avenue", 240, [6]int{20, 100, 300, 750, 925, 1100}, ColorRed, 150),
		railroad("B. & O. Railroad"),
		property("Atlantic Avenue", 260, [6]int{22, 110, 330, 800, 975, 1150}, ColorYellow, 150),
		property("Ventnor Avenue", 260, [6]int{22, 110, 330, 800, 975, 1150}, ColorYellow, 150),
		utility("Water Works"),
		property("Marvin Gardens", 280, [6]int{24, 120, 360, 850, 1025, 1200}, ColorYellow, 150),

		{Type: SpaceCorner, Name: "Go to Jail"},
		property("Pacific Avenue", 300, [6]int{26, 130, 390, 900, 1100, 1275}, ColorGreen, 200),
		property("North Carolina Avenue", 300, [6]int{26, 130, 390, 900, 1100, 1275}, ColorGreen, 200),
		{Type: SpaceCommunityChest, Name: "Community Chest"},
		property("Pennsylvania Avenue", 320, [6]int{28, 150, 450, 1000, 1200, 1400}, ColorGreen, 200),
		railroad("Short Line"),
		{Type: SpaceChance, Name: "Chance"},
		property("Park Place", 350, [6]int{35, 175, 500, 1100, 1300, 1500}, ColorDarkBlue, 200),
		{Type: SpaceTax, Name: "Luxury Tax", Cost: 100},
		property("Boardwalk", 400, [6]int{50, 200, 600, 1400, 1700, 2000}, ColorDarkBlue, 200),
	}
}

// colorGroupIndices returns the board indices of every property sharing color.
func colorGroupIndices(board []BoardSpace, color PropertyColor) []int {
	var indices []int
	for i := range board {
		if board[i].Type == SpaceProperty && board[i].Color == color {
			indices = append(indices, i)
		}
	}
	return indices
}

// ownsColorGroup reports whether playerID owns every property in color.
func ownsColorGroup(board []BoardSpace, color PropertyColor, playerID int) bool {
	for _, idx := range colorGroupIndices(board, color) {
		if board[idx].Owner != playerID {
			return false
		}
	}
	return true
}
