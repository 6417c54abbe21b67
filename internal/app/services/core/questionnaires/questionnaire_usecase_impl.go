package questionnaires

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"mna-assessment-service/internal/app/contracts"
	"mna-assessment-service/internal/pkg/constvars"
	"mna-assessment-service/internal/pkg/dto/requests"
	"mna-assessment-service/internal/pkg/dto/responses"
	"mna-assessment-service/internal/pkg/exceptions"
	"mna-assessment-service/internal/pkg/scoring"
)

type questionnaireUsecase struct {
	Log *zap.Logger
}

var (
	questionnaireUsecaseInstance contracts.QuestionnaireUsecase
	onceQuestionnaireUsecase     sync.Once
)

func NewQuestionnaireUsecase(logger *zap.Logger) contracts.QuestionnaireUsecase {
	onceQuestionnaireUsecase.Do(func() {
		questionnaireUsecaseInstance = &questionnaireUsecase{
			Log: logger,
		}
	})
	return questionnaireUsecaseInstance
}

func (uc *questionnaireUsecase) FindAll(ctx context.Context) ([]responses.QuestionnaireSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	defs := scoring.Definitions()
	summaries := make([]responses.QuestionnaireSummary, 0, len(defs))
	for _, def := range defs {
		summaries = append(summaries, responses.QuestionnaireSummary{
			ID:        def.ID,
			Version:   def.Version,
			Title:     def.Title,
			ItemCount: len(def.Items),
			MaxScore:  def.MaxScore(),
		})
	}

	uc.Log.Info("questionnaireUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(summaries)),
	)
	return summaries, nil
}

func (uc *questionnaireUsecase) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireUsecase.FindQuestionnaireByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireKey, questionnaireID),
	)

	def, ok := scoring.Lookup(questionnaireID)
	if !ok {
		uc.Log.Error("questionnaireUsecase.FindQuestionnaireByID unknown questionnaire",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireKey, questionnaireID),
		)
		return nil, exceptions.ErrQuestionnaireNotFound(nil, questionnaireID)
	}

	response := &responses.Questionnaire{
		ID:         def.ID,
		Version:    def.Version,
		Title:      def.Title,
		MaxScore:   def.MaxScore(),
		Items:      make([]responses.QuestionnaireItem, 0, len(def.Items)),
		Thresholds: def.Thresholds,
		Fallback:   def.Fallback,
	}
	for _, item := range def.Items {
		response.Items = append(response.Items, responses.QuestionnaireItem{
			Key:    item.Key,
			Label:  item.Label,
			Kind:   ruleKind(item.Rule),
			Inputs: questionInputs(def, item.Rule),
		})
	}

	uc.Log.Info("questionnaireUsecase.FindQuestionnaireByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response.Items)),
	)
	return response, nil
}

// ScoreAnswers previews the score of a set of answers without storing it.
// Invalid answers are listed in the result rather than rejected.
func (uc *questionnaireUsecase) ScoreAnswers(ctx context.Context, request *requests.ScoreAnswers) (*scoring.Result, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireUsecase.ScoreAnswers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireKey, request.Questionnaire),
	)

	def, ok := scoring.Resolve(request.Questionnaire)
	if !ok {
		uc.Log.Error("questionnaireUsecase.ScoreAnswers unknown questionnaire",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireKey, request.Questionnaire),
		)
		return nil, exceptions.ErrQuestionnaireNotFound(nil, request.Questionnaire)
	}

	result := def.Score(scoring.Answers(request.Answers))

	uc.Log.Info("questionnaireUsecase.ScoreAnswers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Float64(constvars.LoggingTotalScoreKey, result.TotalScore),
		zap.Int(constvars.LoggingInvalidAnswersKey, len(result.Invalid)),
	)
	return &result, nil
}

func ruleKind(rule scoring.Rule) string {
	switch rule.(type) {
	case scoring.LookupRule:
		return "lookup"
	case scoring.CountRule:
		return "count"
	case scoring.ThresholdRule:
		return "threshold"
	case scoring.SumRule:
		return "sum"
	default:
		return "unknown"
	}
}

func questionInputs(def *scoring.Definition, rule scoring.Rule) []responses.QuestionInput {
	switch r := rule.(type) {
	case scoring.LookupRule:
		return []responses.QuestionInput{{
			Key:     r.Key,
			Label:   def.AnswerLabel(r.Key),
			Options: r.Options,
		}}
	case scoring.CountRule:
		inputs := make([]responses.QuestionInput, 0, len(r.AnswerKeys))
		for _, key := range r.AnswerKeys {
			input := responses.QuestionInput{Key: key, Label: def.AnswerLabel(key), Codes: []string{r.Match}}
			if r.Reject != "" {
				input.Codes = append(input.Codes, r.Reject)
			}
			inputs = append(inputs, input)
		}
		return inputs
	case scoring.ThresholdRule:
		return []responses.QuestionInput{{
			Key:         r.Key,
			Label:       def.AnswerLabel(r.Key),
			Unit:        r.Unit,
			Breakpoints: r.Breakpoints,
		}}
	case scoring.SumRule:
		var inputs []responses.QuestionInput
		for _, inner := range r.Rules {
			inputs = append(inputs, questionInputs(def, inner)...)
		}
		return inputs
	default:
		return nil
	}
}
