package contracts

import (
	"context"

	"mna-assessment-service/internal/pkg/dto/requests"
)

type EventPublisher interface {
	PublishAssessmentSubmitted(ctx context.Context, event *requests.AssessmentSubmittedEvent) error
}
