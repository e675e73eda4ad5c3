package completion

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"
)

type stubModel struct {
	reply string
	err   error
}

func (s stubModel) Generate(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	return schema.AssistantMessage(s.reply, nil), nil
}

func (s stubModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not implemented")
}

func messages() []*schema.Message {
	return []*schema.Message{
		schema.SystemMessage("prompt"),
		schema.UserMessage("Hi"),
	}
}

func TestCompleteTrimsReply(t *testing.T) {
	g := New(stubModel{reply: "  We can help with that.\n"}, zap.NewNop())

	got, err := g.Complete(context.Background(), messages())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "We can help with that." {
		t.Fatalf("got %q", got)
	}
}

func TestCompleteNilGateway(t *testing.T) {
	var g *Gateway
	if _, err := g.Complete(context.Background(), messages()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	g := New(stubModel{err: errors.New("status 500")}, zap.NewNop())

	_, err := g.Complete(context.Background(), messages())
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestCompleteTimeout(t *testing.T) {
	g := New(stubModel{err: context.DeadlineExceeded}, zap.NewNop())

	_, err := g.Complete(context.Background(), messages())
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestCompleteEmptyReply(t *testing.T) {
	g := New(stubModel{reply: "   "}, zap.NewNop())

	_, err := g.Complete(context.Background(), messages())
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}
