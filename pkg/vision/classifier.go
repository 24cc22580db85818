package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// classifyPrompt is the fixed instruction sent with every image. The model is
// asked for a JSON-only reply with exactly the four fields of Classification.
const classifyPrompt = `Describe the garment in the image. State clearly: ` +
	`1. The garment type (shirt, pants, skirt, shoes, dress, etc.). ` +
	`2. The main colors. ` +
	`3. The category (everyday, evening, sport, elegant, casual). ` +
	`4. A short general description. ` +
	`Reply in JSON format only: { "type": "...", "color": "...", "category": "...", "description": "..." }`

// Unrecognized is substituted for any field the model left out of its reply.
const Unrecognized = "not recognized"

// Classification is the structured best-effort guess for a garment image.
type Classification struct {
	Type        string `json:"type"`
	Color       string `json:"color"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// ParseError is returned when the model reply is not valid JSON after
// code-fence stripping. Raw carries the full model text for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse model reply as JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Classifier asks a hosted multimodal model to describe a garment image.
type Classifier struct {
	client *openai.Client
	model  string
}

// NewClassifier creates a classifier backed by the OpenAI chat completion API.
func NewClassifier(apiKey string) *Classifier {
	return &Classifier{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4o,
	}
}

// Classify sends the fixed instruction prompt plus the image URL to the model
// and parses its reply. No latency bound is enforced beyond ctx.
func (c *Classifier) Classify(ctx context.Context, imageURL string) (*Classification, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: 300,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: classifyPrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: imageURL,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("classification request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("classification returned no choices")
	}
	return ParseReply(resp.Choices[0].Message.Content)
}

// ParseReply strips any surrounding Markdown code-fence markup, parses the
// remaining text as JSON and fills absent fields with Unrecognized.
func ParseReply(raw string) (*Classification, error) {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var result Classification
	if err := json.Unmarshal([]byte(clean), &result); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}

	if result.Type == "" {
		result.Type = Unrecognized
	}
	if result.Color == "" {
		result.Color = Unrecognized
	}
	if result.Category == "" {
		result.Category = Unrecognized
	}
	if result.Description == "" {
		result.Description = Unrecognized
	}
	return &result, nil
}
