package tokenizer

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/pkoukk/tiktoken-go"
)

// SimpleCounter estimates tokens as bytes/4
type SimpleCounter struct{}

// Count returns the estimated token count of text
func (c *SimpleCounter) Count(text string) int {
	// ~4 bytes per token for English text and source code
	return len(text) / 4
}

// TiktokenCounter counts tokens with the BPE encoding of an OpenAI model
type TiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTiktokenCounter creates a TiktokenCounter for model. Loading the
// encoding may download its BPE ranks on first use.
func NewTiktokenCounter(model string) (*TiktokenCounter, error) {
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, goerr.Wrap(err, "unsupported model for tiktoken", goerr.V("model", model))
	}
	return &TiktokenCounter{encoding: encoding}, nil
}

// Count returns the number of tokens in text
func (c *TiktokenCounter) Count(text string) int {
	return len(c.encoding.Encode(text, nil, nil))
}
