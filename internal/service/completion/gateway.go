// Package completion owns the single bounded call to the upstream
// completion API.
package completion

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"
)

// Failure taxonomy. Callers map every one of these to the same opaque
// phone-bearing fallback; the distinction exists for logs only.
var (
	ErrNotConfigured   = errors.New("completion: upstream credential not configured")
	ErrTimeout         = errors.New("completion: upstream call timed out")
	ErrUpstream        = errors.New("completion: upstream call failed")
	ErrEmptyCompletion = errors.New("completion: upstream returned no usable text")
)

// totalTimeout bounds one whole upstream attempt. There are no retries; the
// visitor-facing recovery path is the phone number, not a second attempt.
const totalTimeout = 30 * time.Second

// Gateway wraps the chat model behind the gateway's own response contract.
type Gateway struct {
	chatModel model.BaseChatModel
	logger    *zap.Logger
}

// New creates a gateway around an already-constructed chat model.
func New(chatModel model.BaseChatModel, logger *zap.Logger) *Gateway {
	return &Gateway{chatModel: chatModel, logger: logger}
}

// Complete issues exactly one generation request and returns the trimmed
// completion text.
func (g *Gateway) Complete(ctx context.Context, messages []*schema.Message) (string, error) {
	if g == nil || g.chatModel == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, totalTimeout)
	defer cancel()

	start := time.Now()
	response, err := g.chatModel.Generate(ctx, messages)
	if err != nil {
		err = classify(err)
		g.logger.Warn("upstream completion failed",
			zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return "", err
	}

	text := strings.TrimSpace(response.Content)
	if text == "" {
		g.logger.Warn("upstream returned an empty completion")
		return "", ErrEmptyCompletion
	}

	g.logger.Info("completion generated",
		zap.Int("messages", len(messages)),
		zap.Int("reply_length", len(text)),
		zap.Duration("elapsed", time.Since(start)))
	return text, nil
}

func classify(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}
