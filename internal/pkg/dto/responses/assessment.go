package responses

import (
	"time"

	"mna-assessment-service/internal/pkg/scoring"
)

type SubmitAssessment struct {
	ID            string              `json:"id"`
	Questionnaire string              `json:"questionnaire"`
	TotalScore    float64             `json:"totalScore"`
	Status        string              `json:"status"`
	StatusCode    scoring.StatusCode  `json:"statusCode"`
	Items         []scoring.ItemScore `json:"items"`
	CreatedAt     time.Time           `json:"createdAt"`
}

type Assessment struct {
	ID            string            `json:"id"`
	Questionnaire string            `json:"questionnaire"`
	IsAnonymous   bool              `json:"isAnonymous"`
	Name          string            `json:"name"`
	Gender        string            `json:"gender"`
	DOB           string            `json:"dob,omitempty"`
	Height        *float64          `json:"height,omitempty"`
	Weight        *float64          `json:"weight,omitempty"`
	Answers       map[string]string `json:"answers"`
	TotalScore    float64           `json:"totalScore"`
	Status        string            `json:"status"`
	StatusCode    string            `json:"statusCode,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

type AssessmentReport struct {
	Questionnaire      string             `json:"questionnaire,omitempty"`
	GeneratedAt        time.Time          `json:"generatedAt"`
	Count              int                `json:"count"`
	MeanScore          float64            `json:"meanScore"`
	StatusDistribution map[string]int     `json:"statusDistribution"`
	GenderDistribution map[string]int     `json:"genderDistribution"`
	AgeDistribution    map[string]int     `json:"ageDistribution"`
	BMIDistribution    map[string]int     `json:"bmiDistribution"`
	ItemScores         map[string]float64 `json:"itemScores"`
}

type AssessmentExport struct {
	FileName string `json:"-"`
	Content  []byte `json:"-"`
	Rows     int    `json:"-"`
}

type ArchivedExport struct {
	ObjectName string    `json:"objectName"`
	Bucket     string    `json:"bucket"`
	URL        string    `json:"url"`
	Rows       int       `json:"rows"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
