package exceptions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mna-assessment-service/internal/pkg/constvars"
	"mna-assessment-service/internal/pkg/scoring"
)

func TestBuildNewCustomError(t *testing.T) {
	t.Run("Wraps the cause", func(t *testing.T) {
		err := ErrServerDeadlineExceeded(context.DeadlineExceeded)

		assert.Equal(t, constvars.StatusGatewayTimeout, err.StatusCode)
		assert.Equal(t, constvars.ErrClientServerLongRespond, err.ClientMessage)
		assert.Contains(t, err.Error(), context.DeadlineExceeded.Error())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		require.Len(t, err.Locations, 1)
		assert.Contains(t, err.Locations[0].FunctionName, "TestBuildNewCustomError")
	})

	t.Run("Nil cause", func(t *testing.T) {
		err := ErrEmptyDataset(nil)

		assert.Equal(t, constvars.StatusNotFound, err.StatusCode)
		assert.Equal(t, "no assessments found to export", err.ClientMessage)
		assert.Equal(t, constvars.ErrDevEmptyDataset, err.Error())
	})

	t.Run("Keeps inner locations", func(t *testing.T) {
		inner := ErrStoreUnavailable(errors.New("server selection timeout"))
		outer := ErrServerProcess(inner)

		assert.Len(t, outer.Locations, 2)

		var customErr *CustomError
		require.True(t, errors.As(outer, &customErr))
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}

func TestErrInvalidAnswers(t *testing.T) {
	def, ok := scoring.Lookup(scoring.QuestionnaireFull)
	require.True(t, ok)

	validationErr := def.Validate(scoring.Answers{"appetite": "starving", "meals": "five"})
	err := ErrInvalidAnswers(validationErr, def.ID)

	assert.Equal(t, constvars.StatusBadRequest, err.StatusCode)
	assert.Contains(t, err.ClientMessage, "appetite, meals")

	details, ok := err.Details.([]*scoring.InvalidAnswerError)
	require.True(t, ok)
	assert.Len(t, details, 2)
}
