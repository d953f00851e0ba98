package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"subfuse/internal/types"

	"github.com/go-resty/resty/v2"
)

// GoogleTranslator 调用Google网页版翻译接口（非官方，无需密钥）
type GoogleTranslator struct {
	client   *resty.Client
	endpoint string
}

func NewGoogleTranslator(endpoint, proxyAddr string) *GoogleTranslator {
	client := resty.New()
	if proxyAddr != "" {
		client.SetProxy(proxyAddr)
	}
	if endpoint == "" {
		endpoint = "https://translate.googleapis.com"
	}
	return &GoogleTranslator{
		client:   client,
		endpoint: strings.TrimRight(endpoint, "/"),
	}
}

func (t *GoogleTranslator) Name() string {
	return "google"
}

func (t *GoogleTranslator) Translate(ctx context.Context, text string, source, target types.StandardLanguageCode) (string, error) {
	if text == "" {
		return "", nil
	}
	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     googleLangCode(source),
			"tl":     googleLangCode(target),
			"dt":     "t",
			"q":      text,
		}).
		Get(t.endpoint + "/translate_a/single")
	if err != nil {
		return "", fmt.Errorf("google translator request err: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("google translator non-200 response: %d", resp.StatusCode())
	}
	return parseGoogleResponse(resp.Body())
}

// parseGoogleResponse 解析gtx端点的嵌套数组响应，拼接所有译文分段
func parseGoogleResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("google translator parse response err: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("google translator empty response")
	}
	var sentences [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &sentences); err != nil {
		return "", fmt.Errorf("google translator parse sentences err: %w", err)
	}

	var sb strings.Builder
	for _, sentence := range sentences {
		if len(sentence) == 0 {
			continue
		}
		var translated string
		if err := json.Unmarshal(sentence[0], &translated); err != nil {
			continue
		}
		sb.WriteString(translated)
	}
	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", fmt.Errorf("google translator returned empty result")
	}
	return result, nil
}

// googleLangCode 把内部语言码映射到Google的语言码
func googleLangCode(code types.StandardLanguageCode) string {
	if code == types.LanguageCodeSimplifiedChinese {
		return "zh-CN"
	}
	return string(code)
}

