package batch

import (
	"cmp"
	"slices"

	"tubetag/internal/titleparse"
)

// Summary aggregates a batch run.
type Summary struct {
	Total        int                           `json:"total"`
	Parsed       int                           `json:"parsed"`
	Unparsed     int                           `json:"unparsed"`
	Failed       int                           `json:"failed"`
	ByMethod     map[titleparse.Method]int     `json:"by_method"`
	ByConfidence map[titleparse.Confidence]int `json:"by_confidence"`
}

// Summarize counts results by outcome, method and confidence. Rejected lines
// only count as Failed.
func Summarize(results []Result) Summary {
	s := Summary{
		Total:        len(results),
		ByMethod:     make(map[titleparse.Method]int),
		ByConfidence: make(map[titleparse.Confidence]int),
	}
	for _, res := range results {
		if res.Err != nil {
			s.Failed++
			continue
		}
		if res.Metadata.Parsed {
			s.Parsed++
		} else {
			s.Unparsed++
		}
		s.ByMethod[res.Metadata.Method]++
		s.ByConfidence[res.Metadata.Confidence]++
	}
	return s
}

// Methods returns the methods present in s, most frequent first and then by name.
func (s Summary) Methods() []titleparse.Method {
	methods := make([]titleparse.Method, 0, len(s.ByMethod))
	for m := range s.ByMethod {
		methods = append(methods, m)
	}
	slices.SortFunc(methods, func(a, b titleparse.Method) int {
		if s.ByMethod[a] != s.ByMethod[b] {
			return s.ByMethod[b] - s.ByMethod[a]
		}
		return cmp.Compare(a, b)
	})
	return methods
}

// Metadata returns the parse results of lines that were not rejected.
func Metadata(results []Result) []titleparse.Metadata {
	out := make([]titleparse.Metadata, 0, len(results))
	for _, res := range results {
		if res.Err == nil {
			out = append(out, res.Metadata)
		}
	}
	return out
}
