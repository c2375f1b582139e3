package game

import "fmt"

// GameView is a detached, read-only snapshot of one game. It is safe to hand
// out across goroutines; nothing in it aliases live engine state.
type GameView struct {
	GameID             string           `json:"game_id"`
	Players            []PlayerView     `json:"players"`
	Board              []BoardSpaceView `json:"board"`
	CurrentPlayerIndex int              `json:"current_player_index"`
	TurnState          TurnStateView    `json:"turn_state"`
	DoublesCount       int              `json:"doubles_count"`
	Dice               [2]int           `json:"dice"`
	Rolling            bool             `json:"rolling"`
	Log                []string         `json:"log"`
	LastEvent          LastEventView    `json:"last_event"`
	Winner             int              `json:"winner"`
}

// PlayerView mirrors Player for the presentation layer.
type PlayerView struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	Piece             string            `json:"piece"`
	Color             string            `json:"color"`
	Money             int               `json:"money"`
	Position          int               `json:"position"`
	Properties        []int             `json:"properties"`
	Railroads         []int             `json:"railroads"`
	Utilities         []int             `json:"utilities"`
	InJail            bool              `json:"in_jail"`
	JailTurns         int               `json:"jail_turns"`
	GetOutOfJailCards int               `json:"get_out_of_jail_cards"`
	Bankrupt          bool              `json:"bankrupt"`
	Transactions      []TransactionView `json:"transactions"`
}

type TransactionView struct {
	Description string `json:"description"`
	Amount      int    `json:"amount"`
}

// BoardSpaceView mirrors BoardSpace; Rent is present only for properties.
type BoardSpaceView struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Price     int    `json:"price,omitempty"`
	Rent      []int  `json:"rent,omitempty"`
	Color     string `json:"color,omitempty"`
	HouseCost int    `json:"house_cost,omitempty"`
	Cost      int    `json:"cost,omitempty"`
	Owner     int    `json:"owner"`
	Houses    int    `json:"houses"`
	Mortgaged bool   `json:"mortgaged"`
}

// CardView mirrors Card.
type CardView struct {
	Type           string `json:"type"`
	Text           string `json:"text"`
	Position       int    `json:"position,omitempty"`
	Relative       bool   `json:"relative,omitempty"`
	Target         string `json:"target,omitempty"`
	RentMultiplier int    `json:"rent_multiplier,omitempty"`
	Amount         int    `json:"amount,omitempty"`
	PerHouse       int    `json:"per_house,omitempty"`
	PerHotel       int    `json:"per_hotel,omitempty"`
}

type DebtView struct {
	DebtorID   int `json:"debtor_id"`
	CreditorID int `json:"creditor_id"`
	Amount     int `json:"amount"`
}

type TradeOfferView struct {
	FromPlayerID        int   `json:"from_player_id"`
	ToPlayerID          int   `json:"to_player_id"`
	PropertiesOffered   []int `json:"properties_offered"`
	PropertiesRequested []int `json:"properties_requested"`
	MoneyOffered        int   `json:"money_offered"`
	MoneyRequested      int   `json:"money_requested"`
	CardsOffered        int   `json:"cards_offered"`
	CardsRequested      int   `json:"cards_requested"`
}

// TurnStateView is the tagged turn state with only the payload of the active
// variant populated.
type TurnStateView struct {
	Type       string          `json:"type"`
	SpaceIndex int             `json:"space_index,omitempty"`
	Card       *CardView       `json:"card,omitempty"`
	IsChance   bool            `json:"is_chance,omitempty"`
	Debt       *DebtView       `json:"debt,omitempty"`
	Offer      *TradeOfferView `json:"offer,omitempty"`
	Winner     int             `json:"winner,omitempty"`
	Previous   *TurnStateView  `json:"previous,omitempty"`
}

type LastEventView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GameView returns a snapshot of the requested game.
func (e *Engine) GameView(gameID string) (*GameView, error) {
	e.mu.RLock()
	g, ok := e.games[gameID]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("game %s not found", gameID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return buildGameView(g), nil
}

// buildGameView copies g into a detached view. The caller holds g.mu.
func buildGameView(g *gameState) *GameView {
	view := &GameView{
		GameID:             g.id,
		CurrentPlayerIndex: g.currentPlayerIndex,
		TurnState:          buildTurnStateView(g.turnState),
		DoublesCount:       g.doublesCount,
		Dice:               g.dice,
		Rolling:            g.rolling,
		Log:                append([]string(nil), g.log...),
		LastEvent:          LastEventView{Title: g.lastEvent.Title, Description: g.lastEvent.Description},
		Winner:             g.winner,
	}
	for _, p := range g.players {
		view.Players = append(view.Players, buildPlayerView(p))
	}
	for i := range g.board {
		view.Board = append(view.Board, buildBoardSpaceView(&g.board[i]))
	}
	return view
}

func buildPlayerView(p *Player) PlayerView {
	pv := PlayerView{
		ID:                p.ID,
		Name:              p.Name,
		Piece:             string(p.Piece),
		Color:             p.Color,
		Money:             p.Money,
		Position:          p.Position,
		Properties:        append([]int(nil), p.Properties...),
		Railroads:         append([]int(nil), p.Railroads...),
		Utilities:         append([]int(nil), p.Utilities...),
		InJail:            p.InJail,
		JailTurns:         p.JailTurns,
		GetOutOfJailCards: p.GetOutOfJailCards,
		Bankrupt:          p.Bankrupt,
	}
	for _, tx := range p.Transactions {
		pv.Transactions = append(pv.Transactions, TransactionView(tx))
	}
	return pv
}

func buildBoardSpaceView(s *BoardSpace) BoardSpaceView {
	bv := BoardSpaceView{
		Type:      s.Type.String(),
		Name:      s.Name,
		Price:     s.Price,
		Color:     string(s.Color),
		HouseCost: s.HouseCost,
		Cost:      s.Cost,
		Owner:     s.Owner,
		Houses:    s.Houses,
		Mortgaged: s.Mortgaged,
	}
	if s.Type == SpaceProperty {
		bv.Rent = append([]int(nil), s.Rent[:]...)
	}
	// Non-ownable spaces report the bank sentinel too.
	if !s.Ownable() {
		bv.Owner = NoOwner
	}
	return bv
}

func buildCardView(c Card) *CardView {
	return &CardView{
		Type:           c.Type.String(),
		Text:           c.Text,
		Position:       c.Position,
		Relative:       c.Relative,
		Target:         cardTargetName(c),
		RentMultiplier: c.RentMultiplier,
		Amount:         c.Amount,
		PerHouse:       c.PerHouse,
		PerHotel:       c.PerHotel,
	}
}

func cardTargetName(c Card) string {
	if c.Type != CardAdvanceNearest {
		return ""
	}
	return c.Target.String()
}

func buildTurnStateView(t TurnState) TurnStateView {
	tv := TurnStateView{Type: t.Type.String()}
	switch t.Type {
	case StateAwaitingBuyPrompt:
		tv.SpaceIndex = t.SpaceIndex
	case StateAwaitingCardAction:
		tv.Card = buildCardView(t.Card)
		tv.IsChance = t.IsChance
	case StateAwaitingDebtPayment:
		tv.Debt = &DebtView{DebtorID: t.Debt.DebtorID, CreditorID: t.Debt.CreditorID, Amount: t.Debt.Amount}
	case StateAwaitingTradeResponse:
		tv.Offer = buildTradeOfferView(t.Offer)
	case StateGameOver:
		tv.Winner = t.Winner
	}
	if t.Previous != nil {
		prev := buildTurnStateView(*t.Previous)
		tv.Previous = &prev
	}
	return tv
}

func buildTradeOfferView(o TradeOffer) *TradeOfferView {
	return &TradeOfferView{
		FromPlayerID:        o.FromPlayerID,
		ToPlayerID:          o.ToPlayerID,
		PropertiesOffered:   append([]int(nil), o.PropertiesOffered...),
		PropertiesRequested: append([]int(nil), o.PropertiesRequested...),
		MoneyOffered:        o.MoneyOffered,
		MoneyRequested:      o.MoneyRequested,
		CardsOffered:        o.CardsOffered,
		CardsRequested:      o.CardsRequested,
	}
}
