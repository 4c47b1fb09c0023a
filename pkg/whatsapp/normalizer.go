package whatsapp

import (
	"strconv"
	"strings"

	"fashion-buddy-be/pkg/apperrors"
)

// AddressPrefix is what the transport prepends to phone numbers on both
// sides of a conversation.
const AddressPrefix = "whatsapp:"

type MessageKind string

const (
	MessageKindText  MessageKind = "text"
	MessageKindImage MessageKind = "image"
)

// Payload is the raw webhook body as the transport posts it
// (form-encoded, Twilio field names).
type Payload struct {
	From      string `form:"From" json:"From"`
	To        string `form:"To" json:"To"`
	Body      string `form:"Body" json:"Body"`
	NumMedia  string `form:"NumMedia" json:"NumMedia"`
	MediaURL0 string `form:"MediaUrl0" json:"MediaUrl0"`
}

// Message is the normalized inbound message.
type Message struct {
	Kind     MessageKind
	From     string
	To       string
	Text     string
	MediaURL string
	Caption  string
}

// ParseInbound normalizes a raw transport payload. It is a pure function:
// it never mutates state and fails when the payload is not a usable text
// or image message.
func ParseInbound(p Payload) (*Message, error) {
	if p.From == "" || p.To == "" {
		return nil, apperrors.InvalidMessageFormat("payload is missing sender or recipient")
	}

	msg := &Message{
		From: strings.TrimPrefix(p.From, AddressPrefix),
		To:   strings.TrimPrefix(p.To, AddressPrefix),
	}

	numMedia, _ := strconv.Atoi(p.NumMedia)

	switch {
	case numMedia > 0 && p.MediaURL0 != "":
		msg.Kind = MessageKindImage
		msg.MediaURL = p.MediaURL0
		msg.Caption = p.Body
	case p.Body != "":
		msg.Kind = MessageKindText
		msg.Text = p.Body
	default:
		return nil, apperrors.InvalidMessageFormat("payload carries neither text nor media")
	}

	return msg, nil
}
