package chat

// LanguageUnknown is the sentinel returned by detectors that could not
// classify the input.
const LanguageUnknown = "unknown"

// Request encapsulates one incoming question.
type Request struct {
	Question string `json:"question"`
}

// Response is returned to the transport and interactive surfaces.
type Response struct {
	Question        string  `json:"question"`
	Answer          string  `json:"answer"`
	MatchedQuestion string  `json:"matchedQuestion"`
	Score           float64 `json:"score"`
	Language        string  `json:"language"`
	Translated      bool    `json:"translated"`
	DurationMs      int64   `json:"durationMs"`
}

// Config holds runtime knobs for the query pipeline.
type Config struct {
	// PivotLanguage is the language the FAQ corpus is written in. All
	// non-pivot queries are routed through it.
	PivotLanguage string
}
