package requests

// SubmitAssessment is the body of POST /assessments. TotalScore and Status
// are accepted for compatibility with older clients and ignored: the server
// always scores the answers itself.
type SubmitAssessment struct {
	Questionnaire string            `json:"questionnaire" validate:"omitempty,max=32"`
	IsAnonymous   bool              `json:"isAnonymous"`
	Name          string            `json:"name" validate:"max=100"`
	Gender        string            `json:"gender"`
	DOB           string            `json:"dob"`
	Height        *float64          `json:"height" validate:"omitempty,gt=0,lte=300"`
	Weight        *float64          `json:"weight" validate:"omitempty,gt=0,lte=500"`
	Answers       map[string]string `json:"answers"`
	TotalScore    *float64          `json:"totalScore,omitempty"`
	Status        string            `json:"status,omitempty"`

	IdempotencyKey string `json:"-"`
}

type FindAllAssessment struct {
	Questionnaire string `validate:"omitempty,max=32"`
}

type ScoreAnswers struct {
	Questionnaire string            `json:"-"`
	Answers       map[string]string `json:"answers"`
}
