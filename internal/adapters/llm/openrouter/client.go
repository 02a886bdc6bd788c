package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Gwang-eon/soulcard-app-sub001/internal/domain"
	"github.com/Gwang-eon/soulcard-app-sub001/internal/ports"
)

// Client implements ports.Interpreter via the OpenRouter API.
type Client struct {
	httpClient     *http.Client
	apiKey         string
	baseURL        string
	model          string
	fallbackModels []string
	logger         *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey, baseURL, model string, fallbackModels []string, logger *slog.Logger) *Client {
	return &Client{
		httpClient:     httpClient,
		apiKey:         apiKey,
		baseURL:        strings.TrimRight(baseURL, "/"),
		model:          model,
		fallbackModels: fallbackModels,
		logger:         logger,
	}
}

// chatRequest / chatResponse mirror the OpenAI-compatible API shapes.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) Interpret(ctx context.Context, in ports.InterpretInput) (ports.InterpretOutput, error) {
	models := make([]string, 0, 1+len(c.fallbackModels))
	models = append(models, c.model)
	models = append(models, c.fallbackModels...)

	var lastErr error
	for _, model := range models {
		out, err := c.interpretWithModel(ctx, in, model)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if len(models) > 1 {
			c.logger.WarnContext(ctx, "model failed, trying next", "model", model, "error", err)
		}
	}

	return ports.InterpretOutput{}, lastErr
}

func (c *Client) interpretWithModel(ctx context.Context, in ports.InterpretInput, model string) (ports.InterpretOutput, error) {
	userPrompt := buildUserPrompt(in)

	content, err := c.callLLM(ctx, model, systemPrompt, userPrompt)
	if err != nil {
		return ports.InterpretOutput{}, fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, err)
	}

	var out ports.InterpretOutput
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		c.logger.WarnContext(ctx, "LLM returned invalid JSON, retrying", "model", model, "error", err)
		content, err = c.callLLM(ctx, model, systemPrompt, retryPrompt(content))
		if err != nil {
			return ports.InterpretOutput{}, fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, err)
		}
		if err := json.Unmarshal([]byte(content), &out); err != nil {
			return ports.InterpretOutput{}, fmt.Errorf("%w: %w", domain.ErrInvalidLLMJSON, err)
		}
	}

	if out.Text == "" {
		return ports.InterpretOutput{}, fmt.Errorf("%w: empty text", domain.ErrInvalidLLMJSON)
	}
	if out.Style == "" {
		out.Style = "neutral"
	}
	if out.Disclaimer == "" {
		out.Disclaimer = "본 풀이는 성찰과 재미를 위한 것으로, 의료·법률·재정 조언이 아닙니다."
	}
	out.Model = model

	return out, nil
}

func (c *Client) callLLM(ctx context.Context, model, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upstream status %d: %s", resp.StatusCode, string(respBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

const systemPrompt = `당신은 차분하고 균형 잡힌 타로 리더입니다.

규칙:
- 단정하지 말고 가능성과 성찰의 질문을 함께 제시하세요.
- 의료·법률·재정 조언은 하지 않습니다.
- 특정 결과나 불행을 예언하지 않습니다.
- 제공된 템플릿 초안의 구조(포지션별 해석, 전체 흐름, 조언)를 유지하되 문장을 자연스럽게 다듬고 풍부하게 만드세요.
- 한국어로만 답합니다.

반드시 아래 스키마의 JSON 객체만 출력하세요(마크다운, 코드펜스, 부가 텍스트 금지):
{
  "text": "<해석 전문>",
  "style": "neutral",
  "disclaimer": "본 풀이는 성찰과 재미를 위한 것으로, 의료·법률·재정 조언이 아닙니다."
}`

func buildUserPrompt(in ports.InterpretInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "스프레드: %s\n카테고리: %s\n조합 강도: %s\n", in.Spread, in.Category, in.Strength)
	if in.Pattern != "" && in.Pattern != "none" {
		fmt.Fprintf(&b, "특수 패턴: %s\n", in.Pattern)
	}

	b.WriteString("\n뽑힌 카드:\n")
	for _, card := range in.Cards {
		fmt.Fprintf(&b, "  [%s] %s / %s (%s)\n", card.PositionLabel, card.LocalizedName, card.Name, card.Orientation)
		fmt.Fprintf(&b, "    키워드: %s\n", strings.Join(card.Keywords, ", "))
		fmt.Fprintf(&b, "    의미: %s\n", card.Meaning)
	}

	if in.Question != "" {
		fmt.Fprintf(&b, "\n질문: %q\n", in.Question)
	}

	if in.DraftText != "" {
		fmt.Fprintf(&b, "\n템플릿 초안:\n%s\n", in.DraftText)
	}

	b.WriteString("\n위 내용을 바탕으로 하나의 JSON 객체로 해석을 작성하세요.")
	return b.String()
}

func retryPrompt(badJSON string) string {
	return fmt.Sprintf(`이전 응답이 유효한 JSON이 아니었습니다. 이전 응답:
%s

아래 스키마에 맞는 JSON 객체만 다시 출력하세요(마크다운, 코드펜스 금지):
{
  "text": "<해석 전문>",
  "style": "neutral",
  "disclaimer": "본 풀이는 성찰과 재미를 위한 것으로, 의료·법률·재정 조언이 아닙니다."
}`, badJSON)
}
