package ai

import (
	"context"
	"io"
	"log/slog"

	"github.com/kulina/kulina-ai/internal/provider"
)

// fakeProvider records the conversation and options it receives and
// answers with a fixed reply or error.
type fakeProvider struct {
	name     string
	reply    string
	err      error
	lastConv provider.Conversation
	lastOpts provider.Options
	calls    int
}

func (f *fakeProvider) Complete(ctx context.Context, conv provider.Conversation, opts provider.Options) (string, error) {
	f.calls++
	f.lastConv = conv
	f.lastOpts = opts
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeProvider) Name() string {
	if f.name == "" {
		return "fake"
	}
	return f.name
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
