package engine

import "sync"

const (
	// HistoryCapacity bounds the recent-classification list.
	HistoryCapacity = 5
	// summaryRunes is how much of the narrative a history entry keeps.
	summaryRunes = 80
)

// HistoryEntry is one recent classification kept for display and audit.
// Entries hold a truncated narrative, never the full text.
type HistoryEntry struct {
	Summary string `json:"summary"`
	Source  Source `json:"source"`
	Result  Result `json:"result"`
}

// History is the bounded most-recent-first record of past classifications.
// It is the engine's only shared mutable state; a single mutex serializes
// writers so Classify itself can stay pure.
type History struct {
	mu      sync.Mutex
	entries []HistoryEntry
}

// NewHistory creates an empty history with the fixed capacity.
func NewHistory() *History {
	return &History{
		entries: make([]HistoryEntry, 0, HistoryCapacity),
	}
}

// Record inserts an entry at the front, evicting the oldest entry when the
// capacity is exceeded.
func (h *History) Record(in Input, res Result) {
	entry := HistoryEntry{
		Summary: truncate(in.Narrative, summaryRunes),
		Source:  ParseSource(string(in.Source)),
		Result:  res,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append([]HistoryEntry{entry}, h.entries...)
	if len(h.entries) > HistoryCapacity {
		h.entries = h.entries[:HistoryCapacity]
	}
}

// Recent returns a copy of the entries, most recent first.
func (h *History) Recent() []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
