package scoring

import (
	"errors"
	"strconv"
	"strings"
)

// Answers maps an answer key to the code the respondent selected. Free
// numeric measurements (e.g. "ac", "cc") are carried as decimal strings.
type Answers map[string]string

func (a Answers) value(key string) string {
	return strings.TrimSpace(a[key])
}

// Rule turns the answers it reads into the points of a single item.
// Missing answers score 0 without error. Answers the rule cannot interpret
// also score 0, and the returned error describes them.
type Rule interface {
	Points(answers Answers) (float64, error)
	Keys() []string
}

type Option struct {
	Code   string  `json:"code" yaml:"code"`
	Label  string  `json:"label" yaml:"label"`
	Points float64 `json:"points" yaml:"points"`
}

// LookupRule scores an enumerated answer through a fixed point table.
type LookupRule struct {
	Key     string
	Options []Option
}

func (r LookupRule) Points(answers Answers) (float64, error) {
	code := answers.value(r.Key)
	if code == "" {
		return 0, nil
	}
	for _, option := range r.Options {
		if option.Code == code {
			return option.Points, nil
		}
	}
	return 0, &InvalidAnswerError{Key: r.Key, Code: code, Reason: ReasonUnknownCode}
}

func (r LookupRule) Keys() []string {
	return []string{r.Key}
}

type Step struct {
	MinCount int     `json:"minCount"`
	Points   float64 `json:"points"`
}

// CountRule counts the sub-answers equal to Match and maps the count to
// points through Ladder. Ladder is ordered by MinCount, highest first; a
// count below every step scores 0.
type CountRule struct {
	AnswerKeys []string
	Match      string
	Reject     string
	Ladder     []Step
}

func (r CountRule) Points(answers Answers) (float64, error) {
	var errs []error
	count := 0
	for _, key := range r.AnswerKeys {
		code := answers.value(key)
		switch code {
		case "":
		case r.Match:
			count++
		case r.Reject:
		default:
			errs = append(errs, &InvalidAnswerError{Key: key, Code: code, Reason: ReasonUnknownCode})
		}
	}
	for _, step := range r.Ladder {
		if count >= step.MinCount {
			return step.Points, errors.Join(errs...)
		}
	}
	return 0, errors.Join(errs...)
}

func (r CountRule) Keys() []string {
	return r.AnswerKeys
}

type Breakpoint struct {
	Min    float64 `json:"min" yaml:"min"`
	Points float64 `json:"points" yaml:"points"`
}

// ThresholdRule scores a numeric measurement. Breakpoints are ordered by Min,
// highest first, and each lower bound is inclusive.
type ThresholdRule struct {
	Key         string
	Unit        string
	Breakpoints []Breakpoint
}

func (r ThresholdRule) Points(answers Answers) (float64, error) {
	raw := answers.value(r.Key)
	if raw == "" {
		return 0, nil
	}
	measurement, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &InvalidAnswerError{Key: r.Key, Code: raw, Reason: ReasonNotANumber}
	}
	if measurement < 0 {
		return 0, &InvalidAnswerError{Key: r.Key, Code: raw, Reason: ReasonOutOfRange}
	}
	for _, breakpoint := range r.Breakpoints {
		if measurement >= breakpoint.Min {
			return breakpoint.Points, nil
		}
	}
	return 0, nil
}

func (r ThresholdRule) Keys() []string {
	return []string{r.Key}
}

// SumRule adds up the points of several rules into one item.
type SumRule struct {
	Rules []Rule
}

func (r SumRule) Points(answers Answers) (float64, error) {
	var (
		total float64
		errs  []error
	)
	for _, rule := range r.Rules {
		points, err := rule.Points(answers)
		if err != nil {
			errs = append(errs, err)
		}
		total += points
	}
	return total, errors.Join(errs...)
}

func (r SumRule) Keys() []string {
	var keys []string
	for _, rule := range r.Rules {
		keys = append(keys, rule.Keys()...)
	}
	return keys
}
