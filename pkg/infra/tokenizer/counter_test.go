package tokenizer_test

import (
	"os"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/zipscope/pkg/infra/tokenizer"
)

func TestSimpleCounter(t *testing.T) {
	counter := &tokenizer.SimpleCounter{}

	gt.Equal(t, counter.Count(""), 0)
	gt.Equal(t, counter.Count("abc"), 0)
	gt.Equal(t, counter.Count(strings.Repeat("a", 40)), 10)
}

func TestTiktokenCounter(t *testing.T) {
	// tiktoken fetches BPE ranks over the network
	if os.Getenv("TEST_TIKTOKEN") == "" {
		t.Skip("TEST_TIKTOKEN not set, skipping tiktoken test")
	}

	counter, err := tokenizer.NewTiktokenCounter("gpt-4o")
	gt.NoError(t, err).Required()
	gt.Number(t, counter.Count("package main\n\nfunc main() {}\n")).Greater(0)
}
