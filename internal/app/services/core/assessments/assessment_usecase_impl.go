package assessments

import (
	"bytes"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"mna-assessment-service/internal/app/config"
	"mna-assessment-service/internal/app/contracts"
	"mna-assessment-service/internal/app/models"
	"mna-assessment-service/internal/pkg/constvars"
	"mna-assessment-service/internal/pkg/dto/requests"
	"mna-assessment-service/internal/pkg/dto/responses"
	"mna-assessment-service/internal/pkg/exceptions"
	"mna-assessment-service/internal/pkg/reporting"
	"mna-assessment-service/internal/pkg/scoring"
	"mna-assessment-service/internal/pkg/utils"
)

// assessmentUsecase owns submission, listing, reporting and export.
// IdempotencyService, EventPublisher and Storage are nil when their driver
// is disabled.
type assessmentUsecase struct {
	AssessmentRepository contracts.AssessmentRepository
	IdempotencyService   contracts.IdempotencyService
	EventPublisher       contracts.EventPublisher
	Storage              contracts.Storage
	InternalConfig       *config.InternalConfig
	Location             *time.Location
	Log                  *zap.Logger
	now                  func() time.Time
}

var (
	assessmentUsecaseInstance contracts.AssessmentUsecase
	onceAssessmentUsecase     sync.Once
)

func NewAssessmentUsecase(
	assessmentRepository contracts.AssessmentRepository,
	idempotencyService contracts.IdempotencyService,
	eventPublisher contracts.EventPublisher,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	location *time.Location,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	onceAssessmentUsecase.Do(func() {
		instance := &assessmentUsecase{
			AssessmentRepository: assessmentRepository,
			IdempotencyService:   idempotencyService,
			EventPublisher:       eventPublisher,
			Storage:              storage,
			InternalConfig:       internalConfig,
			Location:             location,
			Log:                  logger,
			now:                  time.Now,
		}
		assessmentUsecaseInstance = instance
	})
	return assessmentUsecaseInstance
}

func (uc *assessmentUsecase) SubmitAssessment(ctx context.Context, request *requests.SubmitAssessment) (*responses.SubmitAssessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.SubmitAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireKey, request.Questionnaire),
		zap.Bool("is_anonymous", request.IsAnonymous),
	)

	anonymizeSubject(request)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("assessmentUsecase.SubmitAssessment error validating subject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	def, ok := scoring.Resolve(request.Questionnaire)
	if !ok {
		uc.Log.Error("assessmentUsecase.SubmitAssessment unknown questionnaire",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireKey, request.Questionnaire),
		)
		return nil, exceptions.ErrQuestionnaireNotFound(nil, request.Questionnaire)
	}

	answers := scoring.Answers(request.Answers)
	if uc.InternalConfig.Assessment.StrictAnswers {
		err = def.Validate(answers)
		if err != nil {
			uc.Log.Error("assessmentUsecase.SubmitAssessment rejected invalid answers",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingInvalidAnswersKey, len(scoring.InvalidAnswers(err))),
				zap.Error(err),
			)
			return nil, exceptions.ErrInvalidAnswers(err, def.ID)
		}
	}

	reserved, err := uc.reserveIdempotencyKey(ctx, request.IdempotencyKey)
	if err != nil {
		uc.Log.Error("assessmentUsecase.SubmitAssessment error calling IdempotencyService.Reserve",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := def.Score(answers)
	if len(result.Invalid) > 0 {
		uc.Log.Warn("assessmentUsecase.SubmitAssessment scored invalid answers as 0",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingInvalidAnswersKey, len(result.Invalid)),
		)
	}

	assessment := &models.Assessment{
		IsAnonymous: request.IsAnonymous,
		Name:        request.Name,
		Gender:      request.Gender,
		DOB:         request.DOB,
		Height:      request.Height,
		Weight:      request.Weight,
		Answers:     request.Answers,
	}
	if assessment.Answers == nil {
		assessment.Answers = make(map[string]string)
	}
	assessment.ApplyResult(def, result)
	assessment.SetCreatedAt(uc.now())

	assessmentID, err := uc.AssessmentRepository.Create(ctx, assessment)
	if err != nil {
		uc.Log.Error("assessmentUsecase.SubmitAssessment error calling AssessmentRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if reserved {
			uc.releaseIdempotencyKey(ctx, request.IdempotencyKey)
		}
		return nil, err
	}

	if reserved {
		uc.completeIdempotencyKey(ctx, request.IdempotencyKey, assessmentID)
	}

	if uc.EventPublisher != nil {
		err = uc.EventPublisher.PublishAssessmentSubmitted(ctx, assessment.ConvertIntoSubmittedEvent())
		if err != nil {
			uc.Log.Warn("assessmentUsecase.SubmitAssessment error calling EventPublisher.PublishAssessmentSubmitted",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("assessmentUsecase.SubmitAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.Float64(constvars.LoggingTotalScoreKey, result.TotalScore),
		zap.String(constvars.LoggingStatusKey, string(result.Status.Code)),
	)

	return &responses.SubmitAssessment{
		ID:            assessmentID,
		Questionnaire: def.ID,
		TotalScore:    result.TotalScore,
		Status:        result.Status.Label,
		StatusCode:    result.Status.Code,
		Items:         result.Items,
		CreatedAt:     assessment.CreatedAt,
	}, nil
}

func (uc *assessmentUsecase) FindAll(ctx context.Context, request *requests.FindAllAssessment) ([]responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireKey, request.Questionnaire),
	)

	assessments, err := uc.findAssessments(ctx, request)
	if err != nil {
		uc.Log.Error("assessmentUsecase.FindAll error fetching assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Assessment, 0, len(assessments))
	for _, assessment := range assessments {
		response = append(response, assessment.ConvertIntoResponse())
	}

	uc.Log.Info("assessmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response)),
	)
	return response, nil
}

func (uc *assessmentUsecase) GetReport(ctx context.Context, request *requests.FindAllAssessment) (*responses.AssessmentReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.GetReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireKey, request.Questionnaire),
	)

	records, err := uc.findReportRecords(ctx, request)
	if err != nil {
		uc.Log.Error("assessmentUsecase.GetReport error fetching assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.now().In(uc.location())
	summary := reporting.Summarize(records, now)

	uc.Log.Info("assessmentUsecase.GetReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, summary.Count),
	)

	return &responses.AssessmentReport{
		Questionnaire:      request.Questionnaire,
		GeneratedAt:        now,
		Count:              summary.Count,
		MeanScore:          summary.MeanScore,
		StatusDistribution: summary.StatusDistribution,
		GenderDistribution: summary.GenderDistribution,
		AgeDistribution:    summary.AgeDistribution,
		BMIDistribution:    summary.BMIDistribution,
		ItemScores:         summary.ItemScores,
	}, nil
}

func (uc *assessmentUsecase) ExportCSV(ctx context.Context, request *requests.FindAllAssessment) (*responses.AssessmentExport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.ExportCSV called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireKey, request.Questionnaire),
	)

	export, err := uc.buildExport(ctx, request)
	if err != nil {
		uc.Log.Error("assessmentUsecase.ExportCSV error building export",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("assessmentUsecase.ExportCSV succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRowsKey, export.Rows),
		zap.Int(constvars.LoggingResponseLengthKey, len(export.Content)),
	)
	return export, nil
}

func (uc *assessmentUsecase) ArchiveExport(ctx context.Context, request *requests.FindAllAssessment) (*responses.ArchivedExport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.ArchiveExport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireKey, request.Questionnaire),
	)

	if uc.Storage == nil {
		uc.Log.Error("assessmentUsecase.ArchiveExport object storage disabled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrArchiveUnavailable(nil)
	}

	export, err := uc.buildExport(ctx, request)
	if err != nil {
		uc.Log.Error("assessmentUsecase.ArchiveExport error building export",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.now()
	bucketName := uc.InternalConfig.Minio.BucketName
	objectName, err := uc.Storage.UploadObject(ctx, export.Content, bucketName,
		utils.GenerateExportObjectName(request.Questionnaire, now.In(uc.location())),
		constvars.MIMETextCSVCharsetUTF8,
	)
	if err != nil {
		uc.Log.Error("assessmentUsecase.ArchiveExport error calling Storage.UploadObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucketName),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.MinioPreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		uc.Log.Error("assessmentUsecase.ArchiveExport error calling Storage.GetObjectUrlWithExpiryTime",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("assessmentUsecase.ArchiveExport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
		zap.Int(constvars.LoggingRowsKey, export.Rows),
	)

	return &responses.ArchivedExport{
		ObjectName: objectName,
		Bucket:     bucketName,
		URL:        url,
		Rows:       export.Rows,
		ExpiresAt:  now.Add(expiry),
	}, nil
}

func (uc *assessmentUsecase) CheckStore(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := uc.AssessmentRepository.Ping(ctx)
	if err != nil {
		uc.Log.Error("assessmentUsecase.CheckStore error calling AssessmentRepository.Ping",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// buildExport renders the CSV. An empty dataset is an error so clients
// never receive a header-only file.
func (uc *assessmentUsecase) buildExport(ctx context.Context, request *requests.FindAllAssessment) (*responses.AssessmentExport, error) {
	records, err := uc.findReportRecords(ctx, request)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, exceptions.ErrEmptyDataset(nil)
	}

	defs := scoring.Definitions()
	if request.Questionnaire != "" {
		def, _ := scoring.Lookup(request.Questionnaire)
		defs = []*scoring.Definition{def}
	}

	table := reporting.BuildTable(defs, records, uc.location())
	var buffer bytes.Buffer
	err = table.WriteCSV(&buffer)
	if err != nil {
		return nil, exceptions.ErrBuildExport(err)
	}

	return &responses.AssessmentExport{
		FileName: constvars.ExportFileName,
		Content:  buffer.Bytes(),
		Rows:     len(table.Rows),
	}, nil
}

func (uc *assessmentUsecase) findAssessments(ctx context.Context, request *requests.FindAllAssessment) ([]models.Assessment, error) {
	if request.Questionnaire != "" {
		if _, ok := scoring.Lookup(request.Questionnaire); !ok {
			return nil, exceptions.ErrQuestionnaireNotFound(nil, request.Questionnaire)
		}
	}
	return uc.AssessmentRepository.FindAll(ctx, &models.AssessmentFilter{Questionnaire: request.Questionnaire})
}

func (uc *assessmentUsecase) findReportRecords(ctx context.Context, request *requests.FindAllAssessment) ([]reporting.Record, error) {
	assessments, err := uc.findAssessments(ctx, request)
	if err != nil {
		return nil, err
	}
	records := make([]reporting.Record, 0, len(assessments))
	for _, assessment := range assessments {
		records = append(records, assessment.ConvertIntoReportRecord())
	}
	return records, nil
}

func (uc *assessmentUsecase) reserveIdempotencyKey(ctx context.Context, key string) (bool, error) {
	if key == "" || uc.IdempotencyService == nil {
		return false, nil
	}
	reserved, err := uc.IdempotencyService.Reserve(ctx, key, uc.idempotencyTTL())
	if err != nil {
		return false, err
	}
	if !reserved {
		holder, err := uc.IdempotencyService.Holder(ctx, key)
		if err != nil {
			uc.Log.Warn("assessmentUsecase.reserveIdempotencyKey error calling IdempotencyService.Holder",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.Error(err),
			)
		}
		return false, exceptions.ErrDuplicateSubmission(nil, key, holder)
	}
	return true, nil
}

// completeIdempotencyKey is best effort: the assessment is already stored and
// the key stays reserved either way.
func (uc *assessmentUsecase) completeIdempotencyKey(ctx context.Context, key, assessmentID string) {
	err := uc.IdempotencyService.Complete(ctx, key, assessmentID, uc.idempotencyTTL())
	if err != nil {
		uc.Log.Warn("assessmentUsecase.completeIdempotencyKey error calling IdempotencyService.Complete",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
	}
}

func (uc *assessmentUsecase) idempotencyTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Assessment.IdempotencyTTLInMinutes) * time.Minute
}

func (uc *assessmentUsecase) releaseIdempotencyKey(ctx context.Context, key string) {
	err := uc.IdempotencyService.Release(ctx, key)
	if err != nil {
		uc.Log.Warn("assessmentUsecase.releaseIdempotencyKey error calling IdempotencyService.Release",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func (uc *assessmentUsecase) location() *time.Location {
	if uc.Location == nil {
		return time.UTC
	}
	return uc.Location
}

// anonymizeSubject replaces the identity of an anonymous submission with the
// fixed sentinel values before anything is validated or stored.
func anonymizeSubject(request *requests.SubmitAssessment) {
	if !request.IsAnonymous {
		return
	}
	request.Name = constvars.AnonymousSubjectName
	request.Gender = constvars.GenderUnknown
	request.DOB = ""
}
