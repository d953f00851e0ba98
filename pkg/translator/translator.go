package translator

import (
	"context"
	"errors"
	"fmt"

	"subfuse/internal/types"
	"subfuse/log"

	"go.uber.org/zap"
)

var ErrAllProvidersFailed = errors.New("all translation providers failed")

// Translator 统一的翻译能力，不同后端实现
type Translator interface {
	Translate(ctx context.Context, text string, source, target types.StandardLanguageCode) (string, error)
	Name() string
}

// Chain 按顺序尝试各个后端，取第一个成功的结果
type Chain struct {
	providers []Translator
}

func NewChain(providers ...Translator) *Chain {
	return &Chain{providers: providers}
}

func (c *Chain) Name() string {
	return "chain"
}

func (c *Chain) Translate(ctx context.Context, text string, source, target types.StandardLanguageCode) (string, error) {
	if len(c.providers) == 0 {
		return "", ErrAllProvidersFailed
	}
	var lastErr error
	for _, provider := range c.providers {
		result, err := provider.Translate(ctx, text, source, target)
		if err == nil {
			return result, nil
		}
		lastErr = err
		log.GetLogger().Warn("translator chain provider failed, trying next",
			zap.String("provider", provider.Name()), zap.Error(err))
	}
	return "", fmt.Errorf("%w: last: %v", ErrAllProvidersFailed, lastErr)
}
