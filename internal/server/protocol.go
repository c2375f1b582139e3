package server

import "encoding/json"

// WSMessage is the JSON envelope for both directions of the websocket.
type WSMessage struct {
	Type   string          `json:"type"`
	GameID string          `json:"game_id,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Client-to-server message types. Each maps onto one engine action.
const (
	MsgCreateGame        = "create_game"
	MsgJoinGame          = "join_game"
	MsgResetGame         = "reset_game"
	MsgRollDice          = "roll_dice"
	MsgEndTurn           = "end_turn"
	MsgBuyAction         = "buy_action"
	MsgCardAction        = "card_action"
	MsgJailAction        = "jail_action"
	MsgManageProperty    = "manage_property"
	MsgProposeTrade      = "propose_trade"
	MsgRespondTrade      = "respond_trade"
	MsgDeclareBankruptcy = "declare_bankruptcy"
	MsgModalAction       = "modal_action"
)

// Server-to-client message types.
const (
	MsgGameState   = "game_state"
	MsgGameCreated = "game_created"
	MsgError       = "error"
)

type createGamePayload struct {
	Players       []playerSetupPayload `json:"players"`
	StartingMoney int                  `json:"starting_money"`
}

type playerSetupPayload struct {
	Name  string `json:"name"`
	Piece string `json:"piece"`
}

type buyPayload struct {
	Decision string `json:"decision"`
}

type jailPayload struct {
	Action string `json:"action"`
}

type managePropertyPayload struct {
	SpaceIndex int    `json:"space_index"`
	Action     string `json:"action"`
}

type tradeOfferPayload struct {
	FromPlayerID        int   `json:"from_player_id"`
	ToPlayerID          int   `json:"to_player_id"`
	PropertiesOffered   []int `json:"properties_offered"`
	PropertiesRequested []int `json:"properties_requested"`
	MoneyOffered        int   `json:"money_offered"`
	MoneyRequested      int   `json:"money_requested"`
	CardsOffered        int   `json:"cards_offered"`
	CardsRequested      int   `json:"cards_requested"`
}

type respondTradePayload struct {
	Accepted bool `json:"accepted"`
}

type modalPayload struct {
	Action string `json:"action"`
}

type errorPayload struct {
	Message string `json:"message"`
}
