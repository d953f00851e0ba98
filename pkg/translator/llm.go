package translator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"subfuse/internal/types"
	"subfuse/log"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const translatePrompt = `Translate the following subtitle text from %s to %s. Keep the tone natural and concise for on-screen display. Output only the translation, nothing else.

%s`

// LLMTranslator 调用OpenAI兼容端点做翻译
type LLMTranslator struct {
	client *openai.Client
	model  string
}

func NewLLMTranslator(baseUrl, apiKey, model, proxyAddr string) *LLMTranslator {
	cfg := openai.DefaultConfig(apiKey)
	if baseUrl != "" {
		cfg.BaseURL = baseUrl
	}
	if proxyAddr != "" {
		if proxyURL, err := url.Parse(proxyAddr); err == nil {
			cfg.HTTPClient = &http.Client{
				Transport: &http.Transport{Proxy: http.ProxyURL(proxyURL)},
			}
		}
	}
	if model == "" {
		model = openai.GPT4oMini20240718
	}
	return &LLMTranslator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (t *LLMTranslator) Name() string {
	return "llm"
}

func (t *LLMTranslator) Translate(ctx context.Context, text string, source, target types.StandardLanguageCode) (string, error) {
	if text == "" {
		return "", nil
	}
	prompt := fmt.Sprintf(translatePrompt,
		types.GetStandardLanguageName(source), types.GetStandardLanguageName(target), text)

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an assistant that helps with subtitle translation.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Stream:    true,
		MaxTokens: 8192,
	}

	stream, err := t.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		log.GetLogger().Error("llm translator create chat completion stream failed", zap.Error(err))
		return "", fmt.Errorf("llm translator create stream err: %w", err)
	}
	defer stream.Close()

	var resContent string
	for {
		response, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.GetLogger().Error("llm translator stream receive failed", zap.Error(err))
			return "", fmt.Errorf("llm translator stream receive err: %w", err)
		}
		if len(response.Choices) == 0 {
			continue
		}
		resContent += response.Choices[0].Delta.Content
	}

	// 清理模型输出里多余的引号
	resContent = strings.TrimSpace(resContent)
	resContent = strings.Trim(resContent, `"'`)
	if resContent == "" {
		return "", errors.New("llm translator returned empty result")
	}
	return resContent, nil
}
