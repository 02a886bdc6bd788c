package domain

import "errors"

var (
	ErrInvalidCount   = errors.New("count must be positive")
	ErrEmptyCatalog   = errors.New("catalog has no cards")
	ErrUpstreamLLM    = errors.New("upstream LLM failure")
	ErrInvalidLLMJSON = errors.New("LLM returned invalid JSON after retry")
)
