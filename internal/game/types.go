package game

// PlayerPiece is the token a player moves around the board.
type PlayerPiece string

const (
	PieceCar     PlayerPiece = "car"
	PieceHat     PlayerPiece = "hat"
	PieceShip    PlayerPiece = "ship"
	PieceDog     PlayerPiece = "dog"
	PieceShoe    PlayerPiece = "shoe"
	PieceThimble PlayerPiece = "thimble"
)

// playerColors assigns a display color by seat order.
var playerColors = [...]string{"#ed1b24", "#0072bb", "#1fb25a", "#fef200", "#f781be", "#4ade80"}

// transactionCap bounds each player's transaction history.
const transactionCap = 50

// Transaction is one entry in a player's money history, newest first.
type Transaction struct {
	Description string
	Amount      int
}

// Player is one seat in the game. ID doubles as the seat index.
type Player struct {
	ID                int
	Name              string
	Piece             PlayerPiece
	Color             string
	Money             int
	Position          int
	Properties        []int
	Railroads         []int
	Utilities         []int
	InJail            bool
	JailTurns         int
	GetOutOfJailCards int
	Bankrupt          bool
	Transactions      []Transaction
}

// recordTransaction prepends a history entry, trimming to the cap.
func (p *Player) recordTransaction(description string, amount int) {
	p.Transactions = append([]Transaction{{Description: description, Amount: amount}}, p.Transactions...)
	if len(p.Transactions) > transactionCap {
		p.Transactions = p.Transactions[:transactionCap]
	}
}

// ownershipListFor returns the ownership list holding spaces of the given type.
func (p *Player) ownershipListFor(t SpaceType) *[]int {
	switch t {
	case SpaceProperty:
		return &p.Properties
	case SpaceRailroad:
		return &p.Railroads
	case SpaceUtility:
		return &p.Utilities
	}
	return nil
}

// Debt is an unpaid obligation. CreditorID is NoOwner when owed to the bank.
type Debt struct {
	DebtorID   int
	CreditorID int
	Amount     int
}

// TradeOffer names the two parties and what each side gives up.
// Card counts refer to Get Out of Jail Free cards.
type TradeOffer struct {
	FromPlayerID        int
	ToPlayerID          int
	PropertiesOffered   []int
	PropertiesRequested []int
	MoneyOffered        int
	MoneyRequested      int
	CardsOffered        int
	CardsRequested      int
}

// LastEvent is the headline/description pair the UI highlights.
type LastEvent struct {
	Title       string
	Description string
}

// GameOptions configures a new game.
type GameOptions struct {
	Players []PlayerSetup
	// StartingMoney defaults to 1500 when zero.
	StartingMoney int
}

// PlayerSetup names one seat at game creation.
type PlayerSetup struct {
	Name  string
	Piece PlayerPiece
}
