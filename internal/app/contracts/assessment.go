package contracts

import (
	"context"

	"mna-assessment-service/internal/app/models"
	"mna-assessment-service/internal/pkg/dto/requests"
	"mna-assessment-service/internal/pkg/dto/responses"
)

type AssessmentUsecase interface {
	SubmitAssessment(ctx context.Context, request *requests.SubmitAssessment) (*responses.SubmitAssessment, error)
	FindAll(ctx context.Context, request *requests.FindAllAssessment) ([]responses.Assessment, error)
	GetReport(ctx context.Context, request *requests.FindAllAssessment) (*responses.AssessmentReport, error)
	ExportCSV(ctx context.Context, request *requests.FindAllAssessment) (*responses.AssessmentExport, error)
	ArchiveExport(ctx context.Context, request *requests.FindAllAssessment) (*responses.ArchivedExport, error)
	CheckStore(ctx context.Context) error
}

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *models.Assessment) (string, error)
	FindAll(ctx context.Context, filter *models.AssessmentFilter) ([]models.Assessment, error)
	Ping(ctx context.Context) error
}
