package responses

import "mna-assessment-service/internal/pkg/scoring"

type QuestionnaireSummary struct {
	ID        string  `json:"id"`
	Version   int     `json:"version"`
	Title     string  `json:"title"`
	ItemCount int     `json:"itemCount"`
	MaxScore  float64 `json:"maxScore"`
}

type Questionnaire struct {
	ID         string              `json:"id"`
	Version    int                 `json:"version"`
	Title      string              `json:"title"`
	MaxScore   float64             `json:"maxScore"`
	Items      []QuestionnaireItem `json:"items"`
	Thresholds []scoring.Threshold `json:"thresholds"`
	Fallback   scoring.Status      `json:"fallback"`
}

type QuestionnaireItem struct {
	Key    string          `json:"key"`
	Label  string          `json:"label"`
	Kind   string          `json:"kind"`
	Inputs []QuestionInput `json:"inputs"`
}

// QuestionInput is one answer key of an item. Enumerated inputs list their
// options, counted inputs the codes they accept, and numeric inputs carry a
// unit and their breakpoints.
type QuestionInput struct {
	Key         string               `json:"key"`
	Label       string               `json:"label"`
	Options     []scoring.Option     `json:"options,omitempty"`
	Codes       []string             `json:"codes,omitempty"`
	Unit        string               `json:"unit,omitempty"`
	Breakpoints []scoring.Breakpoint `json:"breakpoints,omitempty"`
}
