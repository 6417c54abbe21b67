package reporting

import (
	"fmt"
	"time"

	"mna-assessment-service/internal/pkg/scoring"
)

const (
	BMIUnderweight = "underweight"
	BMINormal      = "normal"
	BMIOverweight  = "overweight"
	BMIObese       = "obese"
	BMIIncomplete  = "incomplete"
)

// Summary is computed on demand and never persisted.
type Summary struct {
	Count              int                `json:"count"`
	MeanScore          float64            `json:"meanScore"`
	StatusDistribution map[string]int     `json:"statusDistribution"`
	GenderDistribution map[string]int     `json:"genderDistribution"`
	AgeDistribution    map[string]int     `json:"ageDistribution"`
	BMIDistribution    map[string]int     `json:"bmiDistribution"`
	ItemScores         map[string]float64 `json:"itemScores"`
}

// Summarize aggregates records into histograms and means. Ages are computed
// against now. An empty input yields a zero summary with empty maps.
func Summarize(records []Record, now time.Time) Summary {
	summary := Summary{
		Count:              len(records),
		StatusDistribution: make(map[string]int),
		GenderDistribution: make(map[string]int),
		AgeDistribution:    make(map[string]int),
		BMIDistribution:    make(map[string]int),
		ItemScores:         make(map[string]float64),
	}
	if len(records) == 0 {
		return summary
	}

	var total float64
	itemTotals := make(map[string]float64)
	itemCounts := make(map[string]int)

	for _, record := range records {
		total += record.TotalScore

		status := record.Status
		if status == "" {
			status = Unknown
		}
		summary.StatusDistribution[status]++
		summary.GenderDistribution[record.providedGender()]++
		summary.AgeDistribution[AgeBracket(record, now)]++
		summary.BMIDistribution[BMICategory(record)]++

		def, ok := scoring.Resolve(record.Questionnaire)
		if !ok {
			continue
		}
		for _, item := range def.Items {
			points, _ := item.Rule.Points(record.Answers)
			itemTotals[item.Key] += points
			itemCounts[item.Key]++
		}
	}

	summary.MeanScore = total / float64(len(records))
	for key, sum := range itemTotals {
		summary.ItemScores[key] = sum / float64(itemCounts[key])
	}
	return summary
}

// AgeBracket buckets the age by decade, e.g. "70-79".
func AgeBracket(record Record, now time.Time) string {
	age, ok := record.Age(now)
	if !ok {
		return NotProvided
	}
	lower := (age / 10) * 10
	return fmt.Sprintf("%d-%d", lower, lower+9)
}

func BMICategory(record Record) string {
	bmi, ok := record.BMI()
	switch {
	case !ok:
		return BMIIncomplete
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 24:
		return BMINormal
	case bmi < 27:
		return BMIOverweight
	default:
		return BMIObese
	}
}
