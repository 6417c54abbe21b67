package scoring

import (
	"errors"
	"fmt"
)

const (
	ReasonUnknownCode = "unknown answer code"
	ReasonNotANumber  = "not a number"
	ReasonOutOfRange  = "out of range"
	ReasonUnknownItem = "not part of the questionnaire"
)

// InvalidAnswerError reports an answer the questionnaire cannot score.
type InvalidAnswerError struct {
	Key    string `json:"key"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("answer %q for %s: %s", e.Code, e.Key, e.Reason)
}

// InvalidAnswers flattens err into the invalid answers it carries, walking
// joined errors. Errors of other types are ignored.
func InvalidAnswers(err error) []*InvalidAnswerError {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var found []*InvalidAnswerError
		for _, inner := range joined.Unwrap() {
			found = append(found, InvalidAnswers(inner)...)
		}
		return found
	}
	var invalid *InvalidAnswerError
	if errors.As(err, &invalid) {
		return []*InvalidAnswerError{invalid}
	}
	return nil
}
