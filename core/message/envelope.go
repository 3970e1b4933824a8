package message

const (
	cardSchema      = "http://adaptivecards.io/schemas/adaptive-card.json"
	cardVersion     = "1.5"
	cardContentType = "application/vnd.microsoft.card.adaptive"
)

// Envelope is the webhook payload carrying one Adaptive Card.
type Envelope struct {
	Type        string       `json:"type"`
	Attachments []Attachment `json:"attachments"`
}

// Attachment wraps the card content.
type Attachment struct {
	ContentType string  `json:"contentType"`
	ContentURL  *string `json:"contentUrl"`
	Content     Card    `json:"content"`
}

// Card is a schema-versioned Adaptive Card.
type Card struct {
	Schema  string   `json:"$schema"`
	Type    string   `json:"type"`
	Version string   `json:"version"`
	Body    Body     `json:"body"`
	MSTeams *MSTeams `json:"msteams,omitempty"`
}

// MSTeams holds Teams-specific card settings.
type MSTeams struct {
	Width string `json:"width,omitempty"`
}

// NewCard wraps body in a full-width Adaptive Card.
func NewCard(body Body) Card {
	if body == nil {
		body = Body{}
	}
	return Card{
		Schema:  cardSchema,
		Type:    "AdaptiveCard",
		Version: cardVersion,
		Body:    body,
		MSTeams: &MSTeams{Width: "Full"},
	}
}

// NewEnvelope wraps body in the message payload posted to a chat webhook.
func NewEnvelope(body Body) Envelope {
	return Envelope{
		Type: "message",
		Attachments: []Attachment{{
			ContentType: cardContentType,
			Content:     NewCard(body),
		}},
	}
}
