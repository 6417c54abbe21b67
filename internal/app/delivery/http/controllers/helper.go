package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"mna-assessment-service/internal/app/config"
	"mna-assessment-service/internal/pkg/exceptions"
	"mna-assessment-service/internal/pkg/utils"
)

const defaultRequestTimeout = 10 * time.Second

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	if internalConfig == nil || internalConfig.App.RequestTimeoutInSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
}

// decodeJSONBody reads the whole body before decoding so an oversized body
// is reported as such rather than as malformed JSON.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrRequestBodyTooLarge(err, maxBytesErr.Limit)
		}
		return exceptions.ErrCannotParseJSON(err)
	}

	err = json.Unmarshal(body, dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

// buildUsecaseErrorResponse keeps the status of a CustomError even when it
// wraps a deadline; only a bare deadline becomes a 504.
func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		utils.BuildErrorResponse(log, w, customErr)
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
