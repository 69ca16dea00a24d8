package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"scripture-llm/internal/domain"
)

// AnthropicClient implementa Client contra la Messages API oficial.
type AnthropicClient struct {
	client    sdk.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	logger    *zap.Logger
}

const defaultLLMTimeout = 60 * time.Second

// NewAnthropicClient construye el cliente con modelo y máximo de tokens fijos.
func NewAnthropicClient(apiKey, model string, maxTokens int64, logger *zap.Logger) *AnthropicClient {
	if maxTokens <= 0 {
		maxTokens = 2048
	}
	return &AnthropicClient{
		client:    sdk.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: maxTokens,
		timeout:   defaultLLMTimeout,
		logger:    logger,
	}
}

// Model devuelve el identificador del modelo configurado.
func (c *AnthropicClient) Model() string {
	return c.model
}

func (c *AnthropicClient) Generate(ctx context.Context, prompt string) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Response{}, domain.Wrap(domain.KindTimeout,
				fmt.Sprintf("llm did not answer within %s", c.timeout), err)
		}
		return Response{}, domain.Wrap(domain.KindUpstreamUnavailable, "llm call failed", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return Response{}, domain.E(domain.KindUpstreamUnavailable, "llm returned an empty response")
	}

	usage := domain.TokenUsage{
		InputTokens:  msg.Usage.InputTokens,
		OutputTokens: msg.Usage.OutputTokens,
	}

	if c.logger != nil {
		c.logger.Debug("llm call",
			zap.String("model", c.model),
			zap.Int64("input_tokens", usage.InputTokens),
			zap.Int64("output_tokens", usage.OutputTokens),
		)
	}
	return Response{Text: text, Usage: usage}, nil
}
