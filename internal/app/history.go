package app

import (
	"sync"

	"github.com/Gwang-eon/soulcard-app-sub001/internal/domain"
)

// HistoryCap bounds the in-memory reading log.
const HistoryCap = 100

// History is a best-effort bounded log of recent readings. It is not
// correctness-critical: entries beyond the cap are discarded oldest
// first.
type History struct {
	mu      sync.Mutex
	entries []domain.Reading
}

func NewHistory() *History {
	return &History{}
}

// Add appends a reading, evicting the oldest entry once full.
func (h *History) Add(r domain.Reading) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, r)
	if len(h.entries) > HistoryCap {
		h.entries = h.entries[len(h.entries)-HistoryCap:]
	}
}

// Recent returns a snapshot of stored readings, newest first.
func (h *History) Recent() []domain.Reading {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]domain.Reading, len(h.entries))
	for i, r := range h.entries {
		out[len(h.entries)-1-i] = r
	}
	return out
}

// Len reports the number of stored readings.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
