package reporting

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mna-assessment-service/internal/pkg/scoring"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func float(v float64) *float64 {
	return &v
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, now)

	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0.0, summary.MeanScore)
	assert.NotNil(t, summary.StatusDistribution)
	assert.NotNil(t, summary.GenderDistribution)
	assert.NotNil(t, summary.AgeDistribution)
	assert.NotNil(t, summary.BMIDistribution)
	assert.NotNil(t, summary.ItemScores)
	assert.Empty(t, summary.StatusDistribution)
}

func TestSummarize(t *testing.T) {
	records := []Record{
		{
			Questionnaire: scoring.QuestionnaireFull,
			Name:          "王小明",
			Gender:        GenderMale,
			DOB:           date(1950, time.March, 3),
			Height:        float(170),
			Weight:        float(65),
			Answers:       scoring.Answers{"appetite": "none", "dairy": "yes", "legumes": "yes"},
			TotalScore:    25,
			Status:        "營養狀況良好",
		},
		{
			Questionnaire: scoring.QuestionnaireFull,
			Name:          "陳美玲",
			Gender:        GenderFemale,
			DOB:           date(1942, time.December, 31),
			Height:        float(155),
			Weight:        float(40),
			Answers:       scoring.Answers{"appetite": "moderate"},
			TotalScore:    18,
			Status:        "具營養不良危險性",
		},
		{
			Questionnaire: scoring.QuestionnaireShort,
			Anonymous:     true,
			Name:          "匿名",
			Gender:        GenderUnknown,
			Answers:       scoring.Answers{"appetite": "severe", "ac": "21.5"},
			TotalScore:    5,
			Status:        "營養不良",
		},
		{
			Gender:     GenderMale,
			DOB:        date(2030, time.January, 1),
			Height:     float(180),
			TotalScore: 12,
		},
	}

	summary := Summarize(records, now)

	assert.Equal(t, 4, summary.Count)
	assert.Equal(t, 15.0, summary.MeanScore)

	assert.Equal(t, map[string]int{
		"營養狀況良好":   1,
		"具營養不良危險性": 1,
		"營養不良":     1,
		Unknown:    1,
	}, summary.StatusDistribution)

	assert.Equal(t, map[string]int{
		GenderMale:   2,
		GenderFemale: 1,
		NotProvided:  1,
	}, summary.GenderDistribution)

	assert.Equal(t, map[string]int{
		"70-79":     1,
		"80-89":     1,
		NotProvided: 2,
	}, summary.AgeDistribution)

	assert.Equal(t, map[string]int{
		BMINormal:      1,
		BMIUnderweight: 1,
		BMIIncomplete:  2,
	}, summary.BMIDistribution)

	t.Run("Item scores use the records containing the item", func(t *testing.T) {
		// appetite: 2, 1, 0 and the record without questionnaire falls back
		// to the long form with no answers.
		assert.Equal(t, 0.75, summary.ItemScores["appetite"])
		assert.Equal(t, 0.5, summary.ItemScores["anthropometry"])
		assert.Equal(t, 0.5/3, summary.ItemScores["protein"])
		_, ok := summary.ItemScores["unknown_item"]
		assert.False(t, ok)
	})
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		name     string
		height   *float64
		weight   *float64
		expected string
	}{
		{"underweight", float(160), float(45), BMIUnderweight},
		{"normal", float(170), float(65), BMINormal},
		{"overweight", float(170), float(75), BMIOverweight},
		{"obese", float(160), float(80), BMIObese},
		{"missing weight", float(160), nil, BMIIncomplete},
		{"zero height", float(0), float(60), BMIIncomplete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BMICategory(Record{Height: tt.height, Weight: tt.weight}))
		})
	}
}

func TestAgeBracket(t *testing.T) {
	assert.Equal(t, "70-79", AgeBracket(Record{DOB: date(1950, time.March, 3)}, now))
	assert.Equal(t, "70-79", AgeBracket(Record{DOB: date(1945, time.December, 31)}, now))
	assert.Equal(t, "0-9", AgeBracket(Record{DOB: date(2024, time.January, 1)}, now))
	assert.Equal(t, NotProvided, AgeBracket(Record{}, now))
	assert.Equal(t, NotProvided, AgeBracket(Record{DOB: date(2025, time.January, 1)}, now))
	assert.Equal(t, NotProvided, AgeBracket(Record{Anonymous: true, DOB: date(1950, time.March, 3)}, now))
}

func TestRecord_AgeComparesCalendarDays(t *testing.T) {
	taipei := time.FixedZone("Asia/Taipei", 8*60*60)
	// 07:30 local is still the previous day in UTC.
	earlyMorning := time.Date(2024, time.June, 1, 7, 30, 0, 0, taipei)

	t.Run("Born today", func(t *testing.T) {
		age, ok := Record{DOB: date(2024, time.June, 1)}.Age(earlyMorning)

		assert.True(t, ok)
		assert.Equal(t, 0, age)
		assert.Equal(t, "0-9", AgeBracket(Record{DOB: date(2024, time.June, 1)}, earlyMorning))
	})

	t.Run("Born tomorrow", func(t *testing.T) {
		_, ok := Record{DOB: date(2024, time.June, 2)}.Age(earlyMorning)

		assert.False(t, ok)
	})
}

func TestBuildTable(t *testing.T) {
	taipei := time.FixedZone("Asia/Taipei", 8*60*60)
	short, ok := scoring.Lookup(scoring.QuestionnaireShort)
	require.True(t, ok)

	records := []Record{
		{
			Name:       `王 "小明"`,
			Gender:     GenderMale,
			DOB:        date(1950, time.March, 3),
			TotalScore: 12.5,
			Status:     "營養狀況良好",
			CreatedAt:  time.Date(2024, 3, 5, 7, 4, 5, 0, time.UTC),
			Answers:    scoring.Answers{"appetite": "none", "ac": "21.5", "cc": "32"},
		},
		{
			Anonymous:  true,
			Name:       "匿名",
			Gender:     GenderUnknown,
			TotalScore: 0,
			Status:     "營養不良",
			CreatedAt:  time.Date(2024, 3, 5, 16, 0, 0, 0, time.UTC),
		},
	}

	table := BuildTable([]*scoring.Definition{short}, records, taipei)

	assert.Equal(t, []string{
		"姓名", "性別", "出生日期", "總分", "營養狀況", "評估時間",
		"食慾", "體重變化", "活動能力", "精神壓力或急性疾病", "神經精神問題", "上臂圍", "小腿圍",
	}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{
		`王 "小明"`, "男", "1950/3/3", "12.5", "營養狀況良好", "2024/3/5 下午3:04:05",
		"none", "", "", "", "", "21.5", "32",
	}, table.Rows[0])
	assert.Equal(t, "未提供", table.Rows[1][1])
	assert.Equal(t, "", table.Rows[1][2])
	assert.Equal(t, "0", table.Rows[1][3])
	assert.Equal(t, "2024/3/6 上午12:00:00", table.Rows[1][5])

	t.Run("Shared keys get a single column", func(t *testing.T) {
		full, ok := scoring.Lookup(scoring.QuestionnaireFull)
		require.True(t, ok)

		table := BuildTable([]*scoring.Definition{full, short}, nil, taipei)

		assert.Len(t, table.Header, len(subjectColumns)+len(full.AnswerKeys())+1)
		assert.Equal(t, "上臂圍", table.Header[len(table.Header)-1])
		assert.Empty(t, table.Rows)
	})
}

func TestTable_WriteCSV(t *testing.T) {
	table := Table{
		Header: []string{"姓名", "總分"},
		Rows: [][]string{
			{`say "hi"`, "24"},
			{"a,b", ""},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))

	body := string(raw[3:])
	lines := strings.Split(body, "\n")
	assert.Equal(t, []string{
		`"姓名","總分"`,
		`"say ""hi""","24"`,
		`"a,b",""`,
	}, lines)
}
