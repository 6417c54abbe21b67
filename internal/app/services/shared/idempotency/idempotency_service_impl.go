package idempotency

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mna-assessment-service/internal/app/contracts"
	"mna-assessment-service/internal/pkg/constvars"
)

var (
	idempotencyServiceInstance contracts.IdempotencyService
	onceIdempotencyService     sync.Once
)

type idempotencyService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewIdempotencyService(repo contracts.RedisRepository, logger *zap.Logger) contracts.IdempotencyService {
	onceIdempotencyService.Do(func() {
		instance := &idempotencyService{
			redisRepo: repo,
			Log:       logger,
		}
		idempotencyServiceInstance = instance
	})
	return idempotencyServiceInstance
}

// reservation is the value kept under a key. AssessmentID stays empty while
// the submission is in flight.
type reservation struct {
	Token        string `json:"token"`
	AssessmentID string `json:"assessmentId,omitempty"`
}

func storageKey(key string) string {
	return constvars.IdempotencyKeyPrefix + key
}

// Reserve returns false when the key was already reserved and has not
// expired yet.
func (s *idempotencyService) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("idempotencyService.Reserve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, storageKey(key)),
		zap.Duration("ttl", ttl),
	)

	reserved, err := s.redisRepo.TrySetNX(ctx, storageKey(key), reservation{Token: uuid.NewString()}, ttl)
	if err != nil {
		s.Log.Error("idempotencyService.Reserve error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, err
	}

	if !reserved {
		s.Log.Info("idempotencyService.Reserve key already used",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, storageKey(key)),
		)
		return false, nil
	}

	s.Log.Info("idempotencyService.Reserve succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, storageKey(key)),
	)
	return true, nil
}

// Complete records the stored assessment under the key and restarts its ttl.
func (s *idempotencyService) Complete(ctx context.Context, key, assessmentID string, ttl time.Duration) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("idempotencyService.Complete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, storageKey(key)),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	value := reservation{Token: uuid.NewString(), AssessmentID: assessmentID}
	err := s.redisRepo.Set(ctx, storageKey(key), value, ttl)
	if err != nil {
		s.Log.Error("idempotencyService.Complete error calling redisRepo.Set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("idempotencyService.Complete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// Holder returns the assessment stored under key. It is empty when the key
// is unknown, expired or still in flight.
func (s *idempotencyService) Holder(ctx context.Context, key string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	raw, err := s.redisRepo.Get(ctx, storageKey(key))
	if err != nil {
		s.Log.Error("idempotencyService.Holder error calling redisRepo.Get",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}
	if raw == "" {
		return "", nil
	}

	var value reservation
	err = json.Unmarshal([]byte(raw), &value)
	if err != nil {
		s.Log.Warn("idempotencyService.Holder unreadable reservation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, storageKey(key)),
			zap.Error(err),
		)
		return "", nil
	}
	return value.AssessmentID, nil
}

// Release frees a key whose submission failed so the client can retry.
func (s *idempotencyService) Release(ctx context.Context, key string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("idempotencyService.Release called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, storageKey(key)),
	)

	err := s.redisRepo.Delete(ctx, storageKey(key))
	if err != nil {
		s.Log.Error("idempotencyService.Release error calling redisRepo.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("idempotencyService.Release succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
