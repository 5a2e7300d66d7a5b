package dto

// ChatClientMessage is what the websocket client sends. Plain text frames are
// accepted too and wrapped into this shape by the handler.
type ChatClientMessage struct {
	Text string `json:"text" validate:"required"`
}

// ChatOption is a quick-reply button rendered under the bot message.
type ChatOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChatPropertyCard is a rental listing rendered as a rich card.
type ChatPropertyCard struct {
	Id            int    `json:"id"`
	Title         string `json:"title"`
	Location      string `json:"location"`
	PricePerMonth int    `json:"price_per_month"`
	Bedrooms      int    `json:"bedrooms"`
	Furnished     bool   `json:"furnished"`
	HasGarden     *bool  `json:"has_garden,omitempty"`
	Parking       *bool  `json:"parking,omitempty"`
	Url           string `json:"url"`
	Score         int    `json:"score"`
}

// ChatBotResponse is a single assistant turn sent back over the socket.
type ChatBotResponse struct {
	Text       string             `json:"text"`
	Options    []ChatOption       `json:"options,omitempty"`
	Properties []ChatPropertyCard `json:"properties,omitempty"`
	ShowInput  bool               `json:"show_input"`
}
