package requests

import "time"

// AssessmentSubmittedEvent is the message body published after a submission
// is stored. It carries no subject identity beyond the anonymity flag.
type AssessmentSubmittedEvent struct {
	Type          string    `json:"type"`
	AssessmentID  string    `json:"assessmentId"`
	Questionnaire string    `json:"questionnaire"`
	IsAnonymous   bool      `json:"isAnonymous"`
	TotalScore    float64   `json:"totalScore"`
	Status        string    `json:"status"`
	StatusCode    string    `json:"statusCode"`
	CreatedAt     time.Time `json:"createdAt"`
}
