package textgen

import "context"

// Client defines the interface for sending a prompt to a remote
// text-generation model and receiving its raw textual response.
//
// Implementations own their retry and fallback policy; a returned error
// means the call is exhausted and the caller should degrade (for task
// extraction, to the heuristic path).
type Client interface {
	// Generate sends the prompt and returns the generated text.
	// The context can be used for cancellation during retry waits.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Params are the generation parameters forwarded with each request.
type Params struct {
	// MaxLength bounds the generated output length in tokens.
	MaxLength int `json:"max_length,omitempty"`

	// Temperature controls sampling randomness.
	Temperature float64 `json:"temperature,omitempty"`

	// TopP is the nucleus-sampling cutoff.
	TopP float64 `json:"top_p,omitempty"`

	// DoSample enables sampling instead of greedy decoding.
	DoSample bool `json:"do_sample,omitempty"`
}

// DefaultParams returns the generation parameters used for task extraction:
// bounded output with sampling enabled for variety.
func DefaultParams() Params {
	return Params{
		MaxLength:   250,
		Temperature: 0.7,
		TopP:        0.9,
		DoSample:    true,
	}
}
