package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"mna-assessment-service/internal/pkg/dto/responses"
	"mna-assessment-service/internal/pkg/scoring"
)

type printStyles struct {
	header       lipgloss.Style
	good         lipgloss.Style
	atRisk       lipgloss.Style
	malnourished lipgloss.Style
	dim          lipgloss.Style
}

func newPrintStyles() printStyles {
	return printStyles{
		header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		good:         lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		atRisk:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		malnourished: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (s printStyles) status(code scoring.StatusCode) lipgloss.Style {
	switch code {
	case scoring.StatusGood:
		return s.good
	case scoring.StatusAtRisk:
		return s.atRisk
	default:
		return s.malnourished
	}
}

func formatPoints(points float64) string {
	return strconv.FormatFloat(points, 'f', -1, 64)
}

func renderResult(w io.Writer, def *scoring.Definition, result scoring.Result) {
	styles := newPrintStyles()

	fmt.Fprintln(w, styles.header.Render(def.Title))
	for i, item := range result.Items {
		label := item.Key
		if i < len(def.Items) {
			label = def.Items[i].Label
		}
		fmt.Fprintf(w, "  %-24s %s\n", label, formatPoints(item.Points))
	}
	fmt.Fprintf(w, "%s %s / %s  %s\n",
		styles.header.Render("總分"),
		formatPoints(result.TotalScore),
		formatPoints(def.MaxScore()),
		styles.status(result.Status.Code).Render(result.Status.Label),
	)

	for _, invalid := range result.Invalid {
		fmt.Fprintln(w, styles.dim.Render("  ! "+invalid.Error()))
	}
}

func renderReport(w io.Writer, report *responses.AssessmentReport) {
	styles := newPrintStyles()

	title := "MNA report"
	if report.Questionnaire != "" {
		title += " (" + report.Questionnaire + ")"
	}
	fmt.Fprintln(w, styles.header.Render(title))
	fmt.Fprintf(w, "  count       %d\n", report.Count)
	fmt.Fprintf(w, "  mean score  %.2f\n", report.MeanScore)

	renderDistribution(w, styles, "status", report.StatusDistribution)
	renderDistribution(w, styles, "gender", report.GenderDistribution)
	renderDistribution(w, styles, "age", report.AgeDistribution)
	renderDistribution(w, styles, "bmi", report.BMIDistribution)

	if len(report.ItemScores) > 0 {
		fmt.Fprintln(w, styles.header.Render("item means"))
		for _, key := range sortedKeys(report.ItemScores) {
			fmt.Fprintf(w, "  %-20s %.2f\n", key, report.ItemScores[key])
		}
	}
}

func renderDistribution(w io.Writer, styles printStyles, name string, distribution map[string]int) {
	if len(distribution) == 0 {
		return
	}
	fmt.Fprintln(w, styles.header.Render(name))
	for _, key := range sortedKeys(distribution) {
		fmt.Fprintf(w, "  %-20s %d\n", key, distribution[key])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
