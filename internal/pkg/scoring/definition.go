package scoring

import (
	"errors"
	"sort"
)

type StatusCode string

const (
	StatusGood         StatusCode = "good"
	StatusAtRisk       StatusCode = "at_risk"
	StatusMalnourished StatusCode = "malnourished"
)

type Status struct {
	Code  StatusCode `json:"code"`
	Label string     `json:"label"`
}

// Threshold classifies every total score greater than or equal to Min.
type Threshold struct {
	Min    float64 `json:"min"`
	Status Status  `json:"status"`
}

type Item struct {
	Key   string
	Label string
	Rule  Rule
}

// Definition is an immutable, versioned questionnaire: its items in display
// order and the status ladder applied to the total score.
type Definition struct {
	ID         string
	Version    int
	Title      string
	Items      []Item
	Thresholds []Threshold
	Fallback   Status

	labels map[string]string
}

type ItemScore struct {
	Key    string  `json:"key"`
	Points float64 `json:"points"`
}

type Result struct {
	Questionnaire string                `json:"questionnaire"`
	TotalScore    float64               `json:"totalScore"`
	Status        Status                `json:"status"`
	Items         []ItemScore           `json:"items"`
	Invalid       []*InvalidAnswerError `json:"invalid,omitempty"`
}

// Score sums the points of every item and classifies the total. It never
// fails: answers the definition cannot interpret contribute 0 and are listed
// in Result.Invalid.
func Score(def *Definition, answers Answers) Result {
	result := Result{
		Questionnaire: def.ID,
		Items:         make([]ItemScore, 0, len(def.Items)),
	}
	for _, item := range def.Items {
		points, err := item.Rule.Points(answers)
		result.Invalid = append(result.Invalid, InvalidAnswers(err)...)
		result.Items = append(result.Items, ItemScore{Key: item.Key, Points: points})
		result.TotalScore += points
	}
	result.Status = def.Classify(result.TotalScore)
	return result
}

func (d *Definition) Score(answers Answers) Result {
	return Score(d, answers)
}

// Classify walks the thresholds highest first; lower bounds are inclusive.
func (d *Definition) Classify(total float64) Status {
	for _, threshold := range d.Thresholds {
		if total >= threshold.Min {
			return threshold.Status
		}
	}
	return d.Fallback
}

// ItemPoints scores a single item, or reports false when the definition has
// no item with that key.
func (d *Definition) ItemPoints(key string, answers Answers) (float64, bool) {
	for _, item := range d.Items {
		if item.Key == key {
			points, _ := item.Rule.Points(answers)
			return points, true
		}
	}
	return 0, false
}

// Validate reports every answer that would be scored as invalid, plus
// answers for keys the questionnaire does not contain. Missing answers are
// not reported.
func (d *Definition) Validate(answers Answers) error {
	known := make(map[string]bool)
	var errs []error
	for _, item := range d.Items {
		for _, key := range item.Rule.Keys() {
			known[key] = true
		}
		if _, err := item.Rule.Points(answers); err != nil {
			errs = append(errs, err)
		}
	}

	unknown := make([]string, 0)
	for key := range answers {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		errs = append(errs, &InvalidAnswerError{Key: key, Code: answers[key], Reason: ReasonUnknownItem})
	}
	return errors.Join(errs...)
}

// AnswerKeys lists every answer key read by the items, in item order.
func (d *Definition) AnswerKeys() []string {
	var keys []string
	for _, item := range d.Items {
		keys = append(keys, item.Rule.Keys()...)
	}
	return keys
}

// AnswerLabel returns the display label of an answer key.
func (d *Definition) AnswerLabel(key string) string {
	if label, ok := d.labels[key]; ok {
		return label
	}
	for _, item := range d.Items {
		keys := item.Rule.Keys()
		if len(keys) == 1 && keys[0] == key {
			return item.Label
		}
	}
	return key
}

// MaxScore is the highest total the definition can produce.
func (d *Definition) MaxScore() float64 {
	var total float64
	for _, item := range d.Items {
		total += maxPoints(item.Rule)
	}
	return total
}

func maxPoints(rule Rule) float64 {
	var highest float64
	switch r := rule.(type) {
	case LookupRule:
		for _, option := range r.Options {
			if option.Points > highest {
				highest = option.Points
			}
		}
	case CountRule:
		for _, step := range r.Ladder {
			if step.Points > highest {
				highest = step.Points
			}
		}
	case ThresholdRule:
		for _, breakpoint := range r.Breakpoints {
			if breakpoint.Points > highest {
				highest = breakpoint.Points
			}
		}
	case SumRule:
		for _, inner := range r.Rules {
			highest += maxPoints(inner)
		}
	}
	return highest
}
