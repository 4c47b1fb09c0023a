package reasoning

import (
	"context"
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Part is one piece of a message: text or an image reference. Exactly one
// field is set.
type Part struct {
	Text     string
	ImageURL string
}

// Message is a chat message in a provider-agnostic format.
type Message struct {
	Role  string
	Parts []Part
}

func TextMessage(role, text string) Message {
	return Message{Role: role, Parts: []Part{{Text: text}}}
}

// Option allows for optional parameters like temperature or JSON mode.
type Option func(*Options)

type Options struct {
	Model       string
	Temperature float64
	JSONOutput  bool
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

// WithJSONOutput constrains the model to emit a JSON object.
func WithJSONOutput() Option {
	return func(o *Options) {
		o.JSONOutput = true
	}
}

// Provider defines the contract for any vision/language model backend.
type Provider interface {
	Chat(ctx context.Context, messages []Message, options ...Option) (string, error)
}
