package faq

// Entry is one question/answer pair. Identity is its position in the order
// the data source produced it.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QueryResult is the single best match for a query.
type QueryResult struct {
	MatchedQuestion string  `json:"matchedQuestion"`
	Answer          string  `json:"answer"`
	Score           float64 `json:"score"`
}

// Match pairs an entry with its cosine similarity to a probe vector.
type Match struct {
	Position int
	Entry    Entry
	Score    float64
}

// Config holds runtime knobs for the FAQ corpus service.
type Config struct {
	// CacheNamespace isolates cached vectors per embedder/model so a model
	// change never mixes embedding spaces.
	CacheNamespace string
}
