package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mna-assessment-service/internal/pkg/constvars"
	"mna-assessment-service/internal/pkg/dto/requests"
	"mna-assessment-service/internal/pkg/dto/responses"
	"mna-assessment-service/internal/pkg/reporting"
	"mna-assessment-service/internal/pkg/scoring"
	"mna-assessment-service/internal/pkg/utils"
)

// Assessment is one stored submission. DOB keeps the YYYY-MM-DD form the
// subject entered; Status is the display label and StatusCode the stable code.
type Assessment struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	Questionnaire        string             `bson:"questionnaire"`
	QuestionnaireVersion int                `bson:"questionnaireVersion"`
	IsAnonymous          bool               `bson:"isAnonymous"`
	Name                 string             `bson:"name"`
	Gender               string             `bson:"gender"`
	DOB                  string             `bson:"dob,omitempty"`
	Height               *float64           `bson:"height,omitempty"`
	Weight               *float64           `bson:"weight,omitempty"`
	Answers              map[string]string  `bson:"answers"`
	TotalScore           float64            `bson:"totalScore"`
	Status               string             `bson:"status"`
	StatusCode           string             `bson:"statusCode,omitempty"`
	TimeModel            `bson:",inline"`
}

// ApplyResult copies the server-side score onto the assessment.
func (a *Assessment) ApplyResult(def *scoring.Definition, result scoring.Result) {
	a.Questionnaire = def.ID
	a.QuestionnaireVersion = def.Version
	a.TotalScore = result.TotalScore
	a.Status = result.Status.Label
	a.StatusCode = string(result.Status.Code)
}

func (a Assessment) ConvertIntoResponse() responses.Assessment {
	return responses.Assessment{
		ID:            a.ID.Hex(),
		Questionnaire: a.Questionnaire,
		IsAnonymous:   a.IsAnonymous,
		Name:          a.Name,
		Gender:        a.Gender,
		DOB:           a.DOB,
		Height:        a.Height,
		Weight:        a.Weight,
		Answers:       a.Answers,
		TotalScore:    a.TotalScore,
		Status:        a.Status,
		StatusCode:    a.StatusCode,
		CreatedAt:     a.CreatedAt,
	}
}

// ConvertIntoReportRecord maps the document to the plain record the report
// engine reads. An unparsable stored DOB is treated as not provided.
func (a Assessment) ConvertIntoReportRecord() reporting.Record {
	dob, err := utils.ParseDateOfBirth(a.DOB)
	if err != nil {
		dob = nil
	}
	return reporting.Record{
		ID:            a.ID.Hex(),
		Questionnaire: a.Questionnaire,
		Anonymous:     a.IsAnonymous,
		Name:          a.Name,
		Gender:        a.Gender,
		DOB:           dob,
		Height:        a.Height,
		Weight:        a.Weight,
		Answers:       a.Answers,
		TotalScore:    a.TotalScore,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
	}
}

// AssessmentFilter narrows a listing. An empty Questionnaire matches every
// stored assessment.
type AssessmentFilter struct {
	Questionnaire string
}

func (f *AssessmentFilter) ConvertToBSON() bson.M {
	filter := bson.M{}
	if f == nil || f.Questionnaire == "" {
		return filter
	}
	filter["questionnaire"] = f.Questionnaire
	return filter
}

func (a Assessment) ConvertIntoSubmittedEvent() *requests.AssessmentSubmittedEvent {
	return &requests.AssessmentSubmittedEvent{
		Type:          constvars.EventAssessmentSubmitted,
		AssessmentID:  a.ID.Hex(),
		Questionnaire: a.Questionnaire,
		IsAnonymous:   a.IsAnonymous,
		TotalScore:    a.TotalScore,
		Status:        a.Status,
		StatusCode:    a.StatusCode,
		CreatedAt:     a.CreatedAt,
	}
}
