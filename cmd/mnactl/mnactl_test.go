package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mna-assessment-service/internal/pkg/dto/requests"
	"mna-assessment-service/internal/pkg/dto/responses"
	"mna-assessment-service/internal/pkg/scoring"
)

type MockAssessmentUsecase struct {
	mock.Mock
}

func (m *MockAssessmentUsecase) SubmitAssessment(ctx context.Context, request *requests.SubmitAssessment) (*responses.SubmitAssessment, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.SubmitAssessment)
	return result, args.Error(1)
}

func (m *MockAssessmentUsecase) FindAll(ctx context.Context, request *requests.FindAllAssessment) ([]responses.Assessment, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).([]responses.Assessment)
	return result, args.Error(1)
}

func (m *MockAssessmentUsecase) GetReport(ctx context.Context, request *requests.FindAllAssessment) (*responses.AssessmentReport, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AssessmentReport)
	return result, args.Error(1)
}

func (m *MockAssessmentUsecase) ExportCSV(ctx context.Context, request *requests.FindAllAssessment) (*responses.AssessmentExport, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AssessmentExport)
	return result, args.Error(1)
}

func (m *MockAssessmentUsecase) ArchiveExport(ctx context.Context, request *requests.FindAllAssessment) (*responses.ArchivedExport, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.ArchivedExport)
	return result, args.Error(1)
}

func (m *MockAssessmentUsecase) CheckStore(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func writeAnswers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunScore(t *testing.T) {
	answers := `{"appetite":"none","mobility":"flying","ac":"21.5","cc":"32"}`

	t.Run("Renders total, status and invalid answers", func(t *testing.T) {
		var out bytes.Buffer

		err := runScore(&out, scoring.QuestionnaireShort, writeAnswers(t, answers), false)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "MNA 簡易營養篩檢")
		assert.Contains(t, out.String(), "3.5 / 13")
		assert.Contains(t, out.String(), "營養不良")
		assert.Contains(t, out.String(), `"flying"`)
	})

	t.Run("JSON output", func(t *testing.T) {
		var out bytes.Buffer

		err := runScore(&out, scoring.QuestionnaireShort, writeAnswers(t, answers), true)

		require.NoError(t, err)
		var result scoring.Result
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, 3.5, result.TotalScore)
		assert.Equal(t, scoring.StatusMalnourished, result.Status.Code)
		require.Len(t, result.Invalid, 1)
		assert.Equal(t, "mobility", result.Invalid[0].Key)
	})

	t.Run("Empty questionnaire uses the full form", func(t *testing.T) {
		var out bytes.Buffer

		err := runScore(&out, "", writeAnswers(t, `{}`), true)

		require.NoError(t, err)
		var result scoring.Result
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, scoring.QuestionnaireFull, result.Questionnaire)
		assert.Len(t, result.Items, 18)
	})

	t.Run("Unknown questionnaire", func(t *testing.T) {
		err := runScore(&bytes.Buffer{}, "mna-xl", writeAnswers(t, answers), false)

		assert.ErrorContains(t, err, "mna-xl")
	})

	t.Run("Answers must be strings", func(t *testing.T) {
		err := runScore(&bytes.Buffer{}, scoring.QuestionnaireShort, writeAnswers(t, `{"ac":21.5}`), false)

		assert.ErrorContains(t, err, "JSON object of strings")
	})

	t.Run("Missing file", func(t *testing.T) {
		err := runScore(&bytes.Buffer{}, scoring.QuestionnaireShort, filepath.Join(t.TempDir(), "nope.json"), false)

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestRunReport(t *testing.T) {
	report := &responses.AssessmentReport{
		Questionnaire:      scoring.QuestionnaireShort,
		Count:              2,
		MeanScore:          10.5,
		StatusDistribution: map[string]int{"營養狀況良好": 1, "有營養不良風險": 1},
		GenderDistribution: map[string]int{"男": 2},
		ItemScores:         map[string]float64{"appetite": 1.5},
	}

	t.Run("Renders the summary", func(t *testing.T) {
		usecase := new(MockAssessmentUsecase)
		usecase.On("GetReport", mock.Anything, &requests.FindAllAssessment{Questionnaire: scoring.QuestionnaireShort}).Return(report, nil)
		var out bytes.Buffer

		err := runReport(context.Background(), &out, usecase, scoring.QuestionnaireShort, false)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "MNA report (mna-sf)")
		assert.Contains(t, out.String(), "10.50")
		assert.Contains(t, out.String(), "有營養不良風險")
		assert.Contains(t, out.String(), "appetite")
		assert.NotContains(t, out.String(), "bmi")
		usecase.AssertExpectations(t)
	})

	t.Run("JSON output", func(t *testing.T) {
		usecase := new(MockAssessmentUsecase)
		usecase.On("GetReport", mock.Anything, mock.Anything).Return(report, nil)
		var out bytes.Buffer

		err := runReport(context.Background(), &out, usecase, scoring.QuestionnaireShort, true)

		require.NoError(t, err)
		var decoded responses.AssessmentReport
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, 2, decoded.Count)
	})

	t.Run("Usecase error", func(t *testing.T) {
		usecase := new(MockAssessmentUsecase)
		storeErr := errors.New("store down")
		usecase.On("GetReport", mock.Anything, mock.Anything).Return(nil, storeErr)

		err := runReport(context.Background(), &bytes.Buffer{}, usecase, "", false)

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestRunExport(t *testing.T) {
	t.Run("Writes the CSV", func(t *testing.T) {
		content := []byte("\ufeff\"姓名\"\n")
		usecase := new(MockAssessmentUsecase)
		usecase.On("ExportCSV", mock.Anything, &requests.FindAllAssessment{}).
			Return(&responses.AssessmentExport{FileName: "mna.csv", Content: content, Rows: 1}, nil)
		path := filepath.Join(t.TempDir(), "out.csv")
		var out bytes.Buffer

		err := runExport(context.Background(), &out, usecase, "", path)

		require.NoError(t, err)
		written, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, content, written)
		assert.Contains(t, out.String(), "1 rows to "+path)
	})

	t.Run("Nothing written on error", func(t *testing.T) {
		usecase := new(MockAssessmentUsecase)
		usecase.On("ExportCSV", mock.Anything, mock.Anything).Return(nil, errors.New("no assessments found to export"))
		path := filepath.Join(t.TempDir(), "out.csv")

		err := runExport(context.Background(), &bytes.Buffer{}, usecase, "", path)

		assert.Error(t, err)
		assert.NoFileExists(t, path)
	})
}
