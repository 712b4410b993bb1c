package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"advisor-backend/internal/llm"
)

const (
	apiBaseURL = "https://api-inference.huggingface.co/models/"

	defaultModel = "mistralai/Mixtral-8x7B-Instruct-v0.1"
)

// systemPrompt describes the assistant persona sent with every completion.
const systemPrompt = `You are an expert startup mentor and advisor with deep knowledge in:
- Business strategy and planning
- Product development and MVP creation
- Fundraising and investor relations
- Marketing and growth strategies
- Team building and hiring
- Financial planning and runway management
- Risk assessment and mitigation
- Market analysis and competition

Your role is to provide practical, actionable advice to entrepreneurs and startup founders.
Be concise, supportive, and focus on real-world solutions. When appropriate, ask clarifying
questions to better understand their situation. Keep responses under 150 words unless more
detail is specifically requested.`

// Client implements llm.Client using the Hugging Face Inference API.
type Client struct {
	token      string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new Hugging Face inference client. The token may be
// empty; the free inference tier accepts anonymous requests.
func NewClient(token, model string) *Client {
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	timeout := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("HF_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		token:   strings.TrimSpace(token),
		model:   model,
		baseURL: apiBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float32 `json:"temperature"`
	TopP           float32 `json:"top_p"`
	ReturnFullText bool    `json:"return_full_text"`
}

type generateResponse struct {
	GeneratedText string `json:"generated_text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Complete sends the prompt to the inference endpoint and returns the raw
// completion text. Any transport fault, non-success status, or empty
// generation is reported as llm.ErrUnavailable.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Inputs: systemPrompt + "\n\nUser: " + prompt + "\n\nAssistant:",
		Parameters: generateParameters{
			MaxNewTokens:   300,
			Temperature:    0.7,
			TopP:           0.95,
			ReturnFullText: false,
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.model, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("%w: huggingface request timeout: %v", llm.ErrUnavailable, err)
		}
		return "", fmt.Errorf("%w: %v", llm.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", llm.ErrUnavailable, err)
	}

	if resp.StatusCode >= 400 {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("%w: huggingface http status %d: %s", llm.ErrUnavailable, resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("%w: huggingface http status %d", llm.ErrUnavailable, resp.StatusCode)
	}

	var parsed []generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: huggingface response parse: %v", llm.ErrUnavailable, err)
	}
	if len(parsed) == 0 {
		return "", fmt.Errorf("%w: huggingface response missing generations", llm.ErrUnavailable)
	}

	text := strings.TrimSpace(parsed[0].GeneratedText)
	if text == "" {
		return "", fmt.Errorf("%w: huggingface response empty content", llm.ErrUnavailable)
	}

	log.Printf("llm response model=%s chars=%d", c.model, len(text))
	return text, nil
}

var _ llm.Client = (*Client)(nil)
