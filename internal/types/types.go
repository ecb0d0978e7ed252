package types

import "encoding/json"

const (
	ContentChat = "chat"
	ContentGame = "game"
)

// ClientMessage is the inbound wire format. ContentType routes the message:
// "chat" is relayed untouched, "game" names an engine command. Content
// carries the chat text, or the card for the call/play commands.
type ClientMessage struct {
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
	ContentType string `json:"contentType"`
	GameCommand string `json:"gameCommand,omitempty"`
	Content     string `json:"content,omitempty"`
}

// ServerMessage is the outbound wire format. State carries the full game
// aggregate, already serialized by the room that owns it.
type ServerMessage struct {
	Type     string          `json:"type"` // "state" | "chat" | "error" | "closed"
	Version  int             `json:"version,omitempty"`
	State    json.RawMessage `json:"state,omitempty"`
	UserName string          `json:"userName,omitempty"`
	Content  string          `json:"content,omitempty"`
	Error    string          `json:"error,omitempty"`
}
