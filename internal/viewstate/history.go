package viewstate

import "strings"

// MaxSearchHistory caps the number of remembered keywords.
const MaxSearchHistory = 10

// SearchHistory keeps recent search keywords, newest first, without duplicates.
type SearchHistory struct {
	items []string
}

// NewSearchHistory restores a history from saved keywords (newest first).
func NewSearchHistory(saved []string) *SearchHistory {
	h := &SearchHistory{}
	for i := len(saved) - 1; i >= 0; i-- {
		h.Add(saved[i])
	}
	return h
}

// Add moves keyword to the front. Blank keywords are ignored.
func (h *SearchHistory) Add(keyword string) {
	trimmed := strings.TrimSpace(keyword)
	if trimmed == "" {
		return
	}
	next := make([]string, 0, MaxSearchHistory)
	next = append(next, trimmed)
	for _, item := range h.items {
		if item != trimmed && len(next) < MaxSearchHistory {
			next = append(next, item)
		}
	}
	h.items = next
}

func (h *SearchHistory) Clear() {
	h.items = nil
}

// Items returns a copy, newest first.
func (h *SearchHistory) Items() []string {
	return append([]string(nil), h.items...)
}
