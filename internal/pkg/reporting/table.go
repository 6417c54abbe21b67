package reporting

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"mna-assessment-service/internal/pkg/scoring"
)

// LayoutVersion identifies the export column layout.
const LayoutVersion = "v1"

var subjectColumns = []string{"姓名", "性別", "出生日期", "總分", "營養狀況", "評估時間"}

var genderLabels = map[string]string{
	GenderMale:   "男",
	GenderFemale: "女",
}

// Table is a rendered export: a header row and one row per record.
type Table struct {
	Header []string
	Rows   [][]string
}

// BuildTable lays out records in input order. Answer columns follow the
// subject columns, one per answer key of defs in definition order; a key
// shared by several definitions gets a single column.
func BuildTable(defs []*scoring.Definition, records []Record, loc *time.Location) Table {
	if loc == nil {
		loc = time.UTC
	}

	var keys []string
	header := append([]string(nil), subjectColumns...)
	seen := make(map[string]bool)
	for _, def := range defs {
		for _, key := range def.AnswerKeys() {
			if seen[key] {
				continue
			}
			seen[key] = true
			keys = append(keys, key)
			header = append(header, def.AnswerLabel(key))
		}
	}

	table := Table{Header: header, Rows: make([][]string, 0, len(records))}
	for _, record := range records {
		row := make([]string, 0, len(header))
		row = append(row,
			record.Name,
			genderLabel(record),
			formatDOB(record.DOB, loc),
			strconv.FormatFloat(record.TotalScore, 'f', -1, 64),
			record.Status,
			FormatDateTime(record.CreatedAt, loc),
		)
		for _, key := range keys {
			row = append(row, record.Answers[key])
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func genderLabel(record Record) string {
	if label, ok := genderLabels[record.providedGender()]; ok {
		return label
	}
	return "未提供"
}

func formatDOB(dob *time.Time, loc *time.Location) string {
	if dob == nil {
		return ""
	}
	return FormatDate(*dob, loc)
}

// FormatDate renders t the way zh-TW locales print a date, e.g. 2024/3/5.
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006/1/2")
}

// FormatDateTime renders t as a zh-TW date and 12-hour time, e.g.
// 2024/3/5 下午3:04:05.
func FormatDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	local := t.In(loc)
	period := "上午"
	if local.Hour() >= 12 {
		period = "下午"
	}
	hour := local.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%s %s%d:%02d:%02d", local.Format("2006/1/2"), period, hour, local.Minute(), local.Second())
}

// WriteCSV writes the table with a UTF-8 byte order mark so spreadsheet
// software detects the encoding. Every field is quoted and rows are
// separated by "\n".
func (t Table) WriteCSV(w io.Writer) error {
	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())

	lines := make([]string, 0, len(t.Rows)+1)
	lines = append(lines, quoteRow(t.Header))
	for _, row := range t.Rows {
		lines = append(lines, quoteRow(row))
	}
	if _, err := io.WriteString(bw, strings.Join(lines, "\n")); err != nil {
		return err
	}
	return bw.Close()
}

func quoteRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
