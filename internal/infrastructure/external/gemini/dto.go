package gemini

// DTOs for the Gemini generateContent REST API. Only the fields the
// client actually reads and writes are modelled.

type generateContentRequest struct {
	Contents         []contentDT       `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type contentDT struct {
	Parts []partDT `json:"parts"`
}

type partDT struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string    `json:"responseMimeType,omitempty"`
	ResponseSchema   *schemaDT `json:"responseSchema,omitempty"`
	Temperature      *float64  `json:"temperature,omitempty"`
}

type schemaDT struct {
	Type       string               `json:"type"`
	Properties map[string]*schemaDT `json:"properties,omitempty"`
	Items      *schemaDT            `json:"items,omitempty"`
}

type generateContentResponse struct {
	Candidates []candidateDT `json:"candidates"`
}

type candidateDT struct {
	Content contentDT `json:"content"`
}

// text returns the first text part of the first candidate.
func (r *generateContentResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	for _, p := range r.Candidates[0].Content.Parts {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// smartMatchResponse mirrors the JSON object the model is instructed
// to produce for matchmaking calls.
type smartMatchResponse struct {
	RecommendedTutorIDs []string `json:"recommendedTutorIds"`
	Reasoning           string   `json:"reasoning"`
}

// tutorContext is the compact tutor profile embedded into the
// matchmaking prompt. Keeping it small saves tokens.
type tutorContext struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Subjects string  `json:"subjects"`
	Bio      string  `json:"bio"`
	Rate     float64 `json:"rate"`
	City     string  `json:"city"`
}
