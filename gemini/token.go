// Package gemini counts tokens in assembled documentation with the local
// Gemini tokenizer, so budgets can be compared against a real model.
package gemini

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/vbadoc"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

// DefaultModel is the tokenizer model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

var _ vbadoc.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens using the Gemini tokenizer.
// It is safe for concurrent use.
type TokenCounter struct {
	mu  sync.Mutex
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
// An empty model selects DefaultModel.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, vbadoc.Errorf(vbadoc.EINVALID, "tokenizer for model %q: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the number of tokens in the given text.
// Whitespace-only text counts as zero.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	tc.mu.Lock()
	result, err := tc.tok.CountTokens(contents, nil)
	tc.mu.Unlock()
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}
