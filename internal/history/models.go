package history

import (
	"time"

	"tubetag/internal/titleparse"
)

// Entry is one recorded parse result.
type Entry struct {
	ID         int64     `json:"id"`
	RunID      string    `json:"run_id"`
	Position   int       `json:"position"`
	RecordedAt time.Time `json:"recorded_at"`
	titleparse.Metadata
}

// MethodCount is the number of recorded results per method and confidence.
type MethodCount struct {
	Method     titleparse.Method     `json:"parse_method"`
	Confidence titleparse.Confidence `json:"parse_confidence"`
	Count      int                   `json:"count"`
}

// Match is a search hit. Lower Distance is a closer match.
type Match struct {
	Entry
	Distance int `json:"distance"`
}
