// Package ai talks to an OpenAI-compatible chat completions gateway.
//
// The gateway multiplexes several model providers behind one endpoint and
// API key, using the OpenAI chat completions format. Structured outputs
// (keyword extraction, trending topics) use tool calls so the model returns
// machine-readable JSON arguments instead of free text.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

// MaxContentChars caps how much book text is sent for keyword extraction.
const MaxContentChars = 5000

// MaxKeywords caps how many keywords one extraction returns.
const MaxKeywords = 20

// Service is the AI gateway client.
type Service struct {
	gatewayURL string
	apiKey     string
	model      string
	imageModel string
	httpClient *http.Client
}

// New creates a gateway client. An empty apiKey produces a client whose
// calls fail fast with a configuration error; callers are expected to fall
// back to local extraction.
func New(gatewayURL, apiKey, model, imageModel string) *Service {
	return &Service{
		gatewayURL: gatewayURL,
		apiKey:     apiKey,
		model:      model,
		imageModel: imageModel,
		// Go Pattern: Always configure timeouts on HTTP clients.
		// The default http.Client has NO timeout — requests can hang forever!
		httpClient: &http.Client{
			Timeout: 120 * time.Second, // LLMs can be slow
		},
	}
}

// Configured reports whether the gateway can be called at all.
func (s *Service) Configured() bool {
	return s.apiKey != ""
}

// --- Gateway API types (OpenAI chat completions format) ---

type chatRequest struct {
	Model      string        `json:"model"`
	Messages   []chatMessage `json:"messages"`
	Tools      []tool        `json:"tools,omitempty"`
	ToolChoice any           `json:"tool_choice,omitempty"`
	Modalities []string      `json:"modalities,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type tool struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type toolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
			Images []struct {
				ImageURL struct {
					URL string `json:"url"`
				} `json:"image_url"`
			} `json:"images"`
		} `json:"message"`
	} `json:"choices"`
	Model string `json:"model"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// complete sends one chat completions request and returns the parsed body.
func (s *Service) complete(ctx context.Context, reqBody chatRequest) (*chatResponse, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI gateway API key not configured; set AI_GATEWAY_API_KEY")
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.gatewayURL, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("AI gateway request failed: %w", err)
	}
	defer resp.Body.Close() // Go Pattern: ALWAYS close response bodies!

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("AI gateway rate limited (429)")
	}
	if resp.StatusCode == http.StatusPaymentRequired {
		return nil, fmt.Errorf("AI gateway credits exhausted (402)")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AI gateway returned %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if chatResp.Error != nil {
		return nil, fmt.Errorf("AI gateway error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no response from model")
	}
	return &chatResp, nil
}

// Chat sends a conversation turn to the reading assistant. history is
// replayed oldest-first so the model keeps conversational context;
// bookContext, when non-empty, is appended to the system prompt.
func (s *Service) Chat(ctx context.Context, history []models.ChatMessage, userMessage, bookContext string) (reply, model string, err error) {
	system := "You are Cosmos, a friendly reading assistant for a space-science library. " +
		"You help readers understand books about astronomy, telescopes and space weather. " +
		"Answer clearly and encourage curiosity. Keep answers short enough for a young reader."
	if bookContext != "" {
		system += "\n\nThe reader is currently reading this book:\n" + truncate(bookContext, 2000)
	}

	messages := []chatMessage{{Role: "system", Content: system}}
	for _, m := range history {
		messages = append(messages, chatMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: userMessage})

	log.Printf("🤖 Chat turn using %s (%d history messages)", s.model, len(history))

	resp, err := s.complete(ctx, chatRequest{Model: s.model, Messages: messages})
	if err != nil {
		return "", "", err
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", "", fmt.Errorf("empty chat response")
	}
	model = resp.Model
	if model == "" {
		model = s.model
	}
	return content, model, nil
}

// ExtractedKeyword is one enriched keyword returned by the extraction tool.
type ExtractedKeyword struct {
	Keyword    string `json:"keyword"`
	Definition string `json:"definition"`
	Category   string `json:"category"`
	Example    string `json:"example,omitempty"`
}

var extractKeywordsSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"keywords": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"keyword": {"type": "string"},
					"definition": {"type": "string"},
					"category": {"type": "string"},
					"example": {"type": "string"}
				},
				"required": ["keyword", "definition", "category"]
			}
		}
	},
	"required": ["keywords"]
}`)

// ExtractKeywords asks the model for up to MaxKeywords science vocabulary
// terms from a book, each with a short definition, category and example.
// Content beyond MaxContentChars is truncated before sending.
func (s *Service) ExtractKeywords(ctx context.Context, title, content string) ([]ExtractedKeyword, string, error) {
	prompt := fmt.Sprintf(
		"Extract up to %d important science vocabulary terms from this book for a young reader. "+
			"For each term give a one-sentence definition, a one-word category and a short example sentence.\n\n"+
			"Title: %s\n\nText:\n%s",
		MaxKeywords, title, truncate(content, MaxContentChars))

	log.Printf("🤖 Extracting keywords for %q using %s", title, s.model)

	resp, err := s.complete(ctx, chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You extract and explain vocabulary from reading material. Always respond via the extract_keywords tool."},
			{Role: "user", Content: prompt},
		},
		Tools: []tool{{
			Type: "function",
			Function: toolFunction{
				Name:        "extract_keywords",
				Description: "Return the extracted vocabulary terms",
				Parameters:  extractKeywordsSchema,
			},
		}},
		ToolChoice: map[string]any{
			"type":     "function",
			"function": map[string]string{"name": "extract_keywords"},
		},
	})
	if err != nil {
		return nil, "", err
	}

	msg := resp.Choices[0].Message
	if len(msg.ToolCalls) == 0 {
		return nil, "", fmt.Errorf("model did not call extract_keywords")
	}

	var args struct {
		Keywords []ExtractedKeyword `json:"keywords"`
	}
	if err := json.Unmarshal([]byte(msg.ToolCalls[0].Function.Arguments), &args); err != nil {
		return nil, "", fmt.Errorf("failed to parse tool arguments: %w", err)
	}
	if len(args.Keywords) > MaxKeywords {
		args.Keywords = args.Keywords[:MaxKeywords]
	}

	model := resp.Model
	if model == "" {
		model = s.model
	}
	return args.Keywords, model, nil
}

// TrendingTopic is one suggested reading topic derived from recent space
// weather events.
type TrendingTopic struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Emoji       string `json:"emoji,omitempty"`
}

var trendingTopicsSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"topics": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"title": {"type": "string"},
					"description": {"type": "string"},
					"emoji": {"type": "string"}
				},
				"required": ["title", "description"]
			}
		}
	},
	"required": ["topics"]
}`)

// TrendingTopics turns a summary of recent space weather events into five
// kid-friendly reading topic suggestions.
func (s *Service) TrendingTopics(ctx context.Context, eventSummary string) ([]TrendingTopic, error) {
	resp, err := s.complete(ctx, chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You suggest exciting space-science reading topics for children. Always respond via the generate_trending_topics tool."},
			{Role: "user", Content: "Based on these recent space weather events, suggest 5 reading topics:\n\n" + truncate(eventSummary, 4000)},
		},
		Tools: []tool{{
			Type: "function",
			Function: toolFunction{
				Name:        "generate_trending_topics",
				Description: "Return the suggested reading topics",
				Parameters:  trendingTopicsSchema,
			},
		}},
		ToolChoice: map[string]any{
			"type":     "function",
			"function": map[string]string{"name": "generate_trending_topics"},
		},
	})
	if err != nil {
		return nil, err
	}

	msg := resp.Choices[0].Message
	if len(msg.ToolCalls) == 0 {
		return nil, fmt.Errorf("model did not call generate_trending_topics")
	}

	var args struct {
		Topics []TrendingTopic `json:"topics"`
	}
	if err := json.Unmarshal([]byte(msg.ToolCalls[0].Function.Arguments), &args); err != nil {
		return nil, fmt.Errorf("failed to parse tool arguments: %w", err)
	}
	if len(args.Topics) > 5 {
		args.Topics = args.Topics[:5]
	}
	return args.Topics, nil
}

// GenerateColoringImage asks the image model for a black-and-white coloring
// page and returns it as a data URL.
func (s *Service) GenerateColoringImage(ctx context.Context, prompt string) (string, error) {
	wrapped := "Create a simple black-and-white line-art coloring page for children. " +
		"Thick clean outlines, no shading, no color. Subject: " + truncate(prompt, 500)

	log.Printf("🎨 Generating coloring image using %s", s.imageModel)

	resp, err := s.complete(ctx, chatRequest{
		Model:      s.imageModel,
		Messages:   []chatMessage{{Role: "user", Content: wrapped}},
		Modalities: []string{"image", "text"},
	})
	if err != nil {
		return "", err
	}

	msg := resp.Choices[0].Message
	if len(msg.Images) == 0 {
		return "", fmt.Errorf("model returned no image")
	}
	return msg.Images[0].ImageURL.URL, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n\n[Text truncated due to length...]"
}
