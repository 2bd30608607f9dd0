package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/findateacher/tutorhub/internal/domain/tutor"
)

// buildSmartMatchPrompt renders the matchmaking prompt. Candidates are
// embedded as a compact JSON array so the model can reference their ids.
func buildSmartMatchPrompt(query string, candidates []*tutor.Tutor) (string, error) {
	contexts := make([]tutorContext, 0, len(candidates))
	for _, t := range candidates {
		contexts = append(contexts, tutorContext{
			ID:       t.ID,
			Name:     t.Name,
			Subjects: strings.Join(t.Subjects, ", "),
			Bio:      t.Bio,
			Rate:     t.HourlyRate,
			City:     t.City,
		})
	}

	encoded, err := json.Marshal(contexts)
	if err != nil {
		return "", fmt.Errorf("encode tutor context: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are an intelligent educational consultant.\n")
	fmt.Fprintf(&b, "User Request: %q\n\n", query)
	b.WriteString("Available Tutors:\n")
	b.Write(encoded)
	b.WriteString("\n\nTask:\n")
	b.WriteString("1. Analyze the user's request and the tutors' profiles.\n")
	b.WriteString("2. Select up to 3 tutor IDs that best match the user's specific needs " +
		"(subject, level, inferred price sensitivity, location, or specific keywords).\n")
	b.WriteString("3. Provide a very brief reasoning (max 1 sentence) explaining why " +
		"these tutors were selected as a group.\n\n")
	b.WriteString("Output JSON format:\n")
	b.WriteString(`{"recommendedTutorIds": ["id1", "id2"], "reasoning": "We selected these tutors because..."}`)
	return b.String(), nil
}

// smartMatchSchema constrains the model output to the matchmaking JSON shape.
func smartMatchSchema() *schemaDT {
	return &schemaDT{
		Type: "OBJECT",
		Properties: map[string]*schemaDT{
			"recommendedTutorIds": {
				Type:  "ARRAY",
				Items: &schemaDT{Type: "STRING"},
			},
			"reasoning": {Type: "STRING"},
		},
	}
}

// buildBioPrompt renders the profile bio generation prompt.
func buildBioPrompt(experience, subjects, style string) string {
	var b strings.Builder
	b.WriteString("You are an expert copywriter for an educational platform.\n")
	b.WriteString("Write a professional, engaging, and trustworthy bio (max 80 words) " +
		"for a tutor with the following details:\n")
	fmt.Fprintf(&b, "- Experience: %s\n", experience)
	fmt.Fprintf(&b, "- Subjects: %s\n", subjects)
	fmt.Fprintf(&b, "- Teaching Style: %s\n\n", style)
	b.WriteString("Instructions:\n")
	b.WriteString("1. Naturally incorporate relevant keywords and terminology associated " +
		"with the subjects listed (e.g., if 'Math', mention specific topics like algebra " +
		"or calculus if appropriate contextually).\n")
	b.WriteString("2. Reflect the 'Teaching Style' in the tone of the bio.\n")
	b.WriteString("3. Do not include \"Here is a bio\" or quotes. Just the raw bio text.\n")
	return b.String()
}
