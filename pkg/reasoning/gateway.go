package reasoning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"fashion-buddy-be/pkg/apperrors"
)

// SessionContext is the conversational state handed to the model alongside
// each message.
type SessionContext struct {
	SessionType string
	Status      string
}

// InboundContent is the message content to reason over: either plain text
// or an image with an optional caption.
type InboundContent struct {
	Text     string
	ImageURL string
	Caption  string
}

// SkinToneAnalysis is the structured result of a classification call.
type SkinToneAnalysis struct {
	SkinTone          string   `json:"skinTone"`
	Undertone         string   `json:"undertone"`
	RecommendedColors []string `json:"recommendedColors"`
	AvoidColors       []string `json:"avoidColors"`
}

// ReplyResult is a generated reply plus any inferred transition signal.
type ReplyResult struct {
	Reply   string
	Updates SessionUpdates
}

// Gateway wraps the reasoning provider behind the two calls the
// conversation engine needs.
type Gateway interface {
	ClassifySkinTone(ctx context.Context, imageURLs []string) (*SkinToneAnalysis, error)
	GenerateReply(ctx context.Context, content InboundContent, sessionCtx SessionContext) (*ReplyResult, error)
}

type gateway struct {
	provider Provider
}

func NewGateway(provider Provider) Gateway {
	return &gateway{provider: provider}
}

const classifySystemPrompt = `You are a professional skin tone analyzer for fashion recommendations.
You will be shown facial photos of a person, and you need to determine their skin tone category.
Analyze the photos carefully and categorize the skin tone from the following options: %s
You must select EXACTLY one skin tone from the list above. Do not create new categories.

After selecting the skin tone, use that determination to find the appropriate color recommendations.
The output must be a JSON object with this structure:
{"skinTone": "selected skin tone from the list", "undertone": "warm/cool/neutral", "recommendedColors": ["..."], "avoidColors": ["..."]}`

func (g *gateway) ClassifySkinTone(ctx context.Context, imageURLs []string) (*SkinToneAnalysis, error) {
	if len(imageURLs) == 0 {
		return nil, apperrors.Validation("at least one image url is required")
	}

	labels, _ := json.Marshal(PaletteLabels())

	userParts := []Part{{Text: "Please analyze these facial photos and determine the skin tone category."}}
	for _, url := range imageURLs {
		userParts = append(userParts, Part{ImageURL: url})
	}

	messages := []Message{
		TextMessage(RoleSystem, fmt.Sprintf(classifySystemPrompt, string(labels))),
		{Role: RoleUser, Parts: userParts},
	}

	raw, err := g.provider.Chat(ctx, messages, WithJSONOutput())
	if err != nil {
		return nil, apperrors.Reasoning("skin tone classification failed", err)
	}

	var analysis SkinToneAnalysis
	if err := json.Unmarshal(stripMarkdownFences(raw), &analysis); err != nil {
		return nil, apperrors.Reasoning(fmt.Sprintf("unparseable classification response: %s", raw), err)
	}

	// Backfill color lists from the local palette when the model returned a
	// label without them. No palette match leaves the lists empty; callers
	// treat that as degraded, not fatal.
	if analysis.SkinTone != "" && (len(analysis.RecommendedColors) == 0 || len(analysis.AvoidColors) == 0) {
		if entry := LookupPalette(analysis.SkinTone); entry != nil {
			if len(analysis.RecommendedColors) == 0 {
				analysis.RecommendedColors = entry.RecommendedColors
			}
			if len(analysis.AvoidColors) == 0 {
				analysis.AvoidColors = entry.AvoidColors
			}
			if analysis.Undertone == "" {
				analysis.Undertone = entry.Undertone
			}
		}
	}

	return &analysis, nil
}

const replySystemPrompt = `You are a WhatsApp Fashion Buddy, an AI assistant specializing in fashion advice based on skin tones.
You help users find clothing that suits their skin tone and allow them to virtually try on clothes.

You guide users through two main paths:
1. Color Analysis & Shopping: analyze skin tone from photos, recommend colors, and suggest clothing items
2. Virtual Try-On: allow users to see how specific clothing items would look on them

You should always be helpful, friendly, and conversational. Use emojis and keep messages concise for WhatsApp.
Prices should be shown in Indian Rupees (₹).

The user's current session type is: %s
The user's current session status is: %s`

func (g *gateway) GenerateReply(ctx context.Context, content InboundContent, sessionCtx SessionContext) (*ReplyResult, error) {
	sessionType := sessionCtx.SessionType
	if sessionType == "" {
		sessionType = "new_session"
	}
	status := sessionCtx.Status
	if status == "" {
		status = "none"
	}

	messages := []Message{
		TextMessage(RoleSystem, fmt.Sprintf(replySystemPrompt, sessionType, status)),
	}

	if content.ImageURL != "" {
		caption := content.Caption
		if caption == "" {
			caption = "I've sent you an image."
		}
		messages = append(messages, Message{
			Role: RoleUser,
			Parts: []Part{
				{Text: caption},
				{ImageURL: content.ImageURL},
			},
		})
	} else {
		messages = append(messages, TextMessage(RoleUser, content.Text))
	}

	reply, err := g.provider.Chat(ctx, messages)
	if err != nil {
		return nil, apperrors.Reasoning("reply generation failed", err)
	}

	return &ReplyResult{
		Reply:   reply,
		Updates: DetectSessionUpdates(reply),
	}, nil
}

// stripMarkdownFences removes a ```json ... ``` wrapper some models add
// around structured output.
func stripMarkdownFences(raw string) []byte {
	b := bytes.TrimSpace([]byte(raw))
	b = bytes.TrimPrefix(b, []byte("```json"))
	b = bytes.TrimPrefix(b, []byte("```"))
	b = bytes.TrimSuffix(b, []byte("```"))
	return bytes.TrimSpace(b)
}
