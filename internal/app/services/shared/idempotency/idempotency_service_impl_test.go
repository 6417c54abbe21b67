package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mna-assessment-service/internal/pkg/exceptions"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func TestIdempotencyService_Reserve(t *testing.T) {
	ctx := context.Background()

	t.Run("First use reserves the prefixed key", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := &idempotencyService{redisRepo: repo, Log: zap.NewNop()}
		pending := mock.MatchedBy(func(value reservation) bool {
			return value.Token != "" && value.AssessmentID == ""
		})
		repo.On("TrySetNX", ctx, "assessment:idempotency:abc", pending, 10*time.Minute).Return(true, nil)

		reserved, err := service.Reserve(ctx, "abc", 10*time.Minute)

		require.NoError(t, err)
		assert.True(t, reserved)
		repo.AssertExpectations(t)
	})

	t.Run("Reused key", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := &idempotencyService{redisRepo: repo, Log: zap.NewNop()}
		repo.On("TrySetNX", ctx, "assessment:idempotency:abc", mock.Anything, time.Minute).Return(false, nil)

		reserved, err := service.Reserve(ctx, "abc", time.Minute)

		require.NoError(t, err)
		assert.False(t, reserved)
	})

	t.Run("Redis failure", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := &idempotencyService{redisRepo: repo, Log: zap.NewNop()}
		repo.On("TrySetNX", ctx, mock.Anything, mock.Anything, mock.Anything).Return(false, exceptions.ErrRedisSet(assert.AnError))

		reserved, err := service.Reserve(ctx, "abc", time.Minute)

		assert.Error(t, err)
		assert.False(t, reserved)
	})
}

func TestIdempotencyService_Release(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRedisRepository)
	service := &idempotencyService{redisRepo: repo, Log: zap.NewNop()}
	repo.On("Delete", ctx, "assessment:idempotency:abc").Return(nil)

	require.NoError(t, service.Release(ctx, "abc"))
	repo.AssertExpectations(t)
}

func TestIdempotencyService_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("Records the assessment", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := &idempotencyService{redisRepo: repo, Log: zap.NewNop()}
		stored := mock.MatchedBy(func(value reservation) bool {
			return value.AssessmentID == "65f0c0ffee"
		})
		repo.On("Set", ctx, "assessment:idempotency:abc", stored, time.Hour).Return(nil)

		require.NoError(t, service.Complete(ctx, "abc", "65f0c0ffee", time.Hour))
		repo.AssertExpectations(t)
	})

	t.Run("Redis failure", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := &idempotencyService{redisRepo: repo, Log: zap.NewNop()}
		repo.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(exceptions.ErrRedisSet(assert.AnError))

		assert.Error(t, service.Complete(ctx, "abc", "65f0c0ffee", time.Hour))
	})
}

func TestIdempotencyService_Holder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{"Completed key", `{"token":"t","assessmentId":"65f0c0ffee"}`, "65f0c0ffee"},
		{"In flight key", `{"token":"t"}`, ""},
		{"Unknown key", "", ""},
		{"Unreadable value", `"legacy-token"`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRedisRepository)
			service := &idempotencyService{redisRepo: repo, Log: zap.NewNop()}
			repo.On("Get", ctx, "assessment:idempotency:abc").Return(tt.stored, nil)

			holder, err := service.Holder(ctx, "abc")

			require.NoError(t, err)
			assert.Equal(t, tt.want, holder)
		})
	}

	t.Run("Redis failure", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := &idempotencyService{redisRepo: repo, Log: zap.NewNop()}
		repo.On("Get", ctx, mock.Anything).Return("", exceptions.ErrRedisGet(assert.AnError))

		_, err := service.Holder(ctx, "abc")

		assert.Error(t, err)
	})
}
