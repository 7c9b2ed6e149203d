package response_models

// Citation points at a constitutional source backing a streamed answer.
type Citation struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Relevance int    `json:"relevance"`
}

type CitationsPayload struct {
	Citations              []Citation `json:"citations"`
	ConstitutionalArticles []string   `json:"constitutionalArticles"`
}

type CompletePayload struct {
	Confidence float64 `json:"confidence"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// StreamEvent is one SSE frame on the /api/ask stream. Types: citations,
// chunk, complete, error — one citations frame first, chunks in generation
// order, exactly one terminal frame last.
type StreamEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}
