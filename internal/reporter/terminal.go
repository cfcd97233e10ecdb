package reporter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/pthm/polarity/internal/classifier"
)

// TerminalReporter outputs results to the terminal with colors
type TerminalReporter struct {
	w io.Writer
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer) *TerminalReporter {
	return &TerminalReporter{w: w}
}

// LabelColor returns the display color for a label
func LabelColor(label classifier.Label) *color.Color {
	switch label {
	case classifier.Positive:
		return color.New(color.FgGreen, color.Bold)
	case classifier.Negative:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgYellow, color.Bold)
	}
}

// Report outputs predictions to the terminal
func (r *TerminalReporter) Report(results []Result) error {
	multi := len(results) > 1

	for i, res := range results {
		if multi {
			if i > 0 {
				fmt.Fprintln(r.w)
			}
			color.New(color.FgHiBlack).Fprintf(r.w, "> %s\n", preview(res.Text, 72))
		}

		r.printPrediction(res.Prediction)

		for _, s := range res.Sentences {
			fmt.Fprint(r.w, "  ")
			LabelColor(s.Prediction.Label).Fprintf(r.w, "%-8s", s.Prediction.Label.Display())
			fmt.Fprintf(r.w, " %6s  %s\n", classifier.FormatConfidence(s.Prediction.Confidence), preview(s.Text, 60))
		}
	}

	if multi {
		r.printSummary(results)
	}
	return nil
}

func (r *TerminalReporter) printPrediction(p classifier.Prediction) {
	fmt.Fprint(r.w, "Sentiment: ")
	LabelColor(p.Label).Fprintln(r.w, p.Label.Display())
	fmt.Fprintf(r.w, "Confidence: %s\n", classifier.FormatConfidence(p.Confidence))
}

func (r *TerminalReporter) printSummary(results []Result) {
	summary := ComputeSummary(results)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "─────────────────────────────────────")

	parts := []string{
		color.GreenString("%d positive", summary.Positive),
		color.RedString("%d negative", summary.Negative),
		color.YellowString("%d neutral", summary.Neutral),
	}

	fmt.Fprintf(r.w, "Analyzed %d texts: %s\n", summary.Total, strings.Join(parts, ", "))
}

// ReportWords prints both polarity sets side by side
func (r *TerminalReporter) ReportWords(positive, negative []classifier.WordCount) error {
	if len(positive) == 0 && len(negative) == 0 {
		color.New(color.FgYellow).Fprintln(r.w, "Model has no polarity words")
		return nil
	}

	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"#", "Positive", "Count", "Negative", "Count"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	rows := max(len(positive), len(negative))
	for i := 0; i < rows; i++ {
		row := []string{strconv.Itoa(i + 1), "", "", "", ""}
		if i < len(positive) {
			row[1] = positive[i].Word
			row[2] = strconv.Itoa(positive[i].Count)
		}
		if i < len(negative) {
			row[3] = negative[i].Word
			row[4] = strconv.Itoa(negative[i].Count)
		}
		table.Append(row)
	}
	table.Render()

	fmt.Fprintf(r.w, "%d positive words, %d negative words (max %d each)\n",
		len(positive), len(negative), classifier.MaxPolarityWords)
	return nil
}

// ReportTraining prints the training summary
func (r *TerminalReporter) ReportTraining(s TrainingSummary) error {
	if s.Added != "" {
		color.New(color.FgGreen).Fprintln(r.w, "✓ Model retrained with new data!")
		color.New(color.FgHiBlack).Fprintf(r.w, "  > %s\n", preview(s.Added, 72))
	}
	if s.SavedTo != "" {
		color.New(color.FgGreen).Fprintf(r.w, "✓ Corpus saved to %s\n", s.SavedTo)
	}

	color.New(color.FgWhite, color.Bold).Fprintln(r.w, "Training corpus")
	fmt.Fprintf(r.w, "  Source:    %s\n", s.Source)
	fmt.Fprintf(r.w, "  Examples:  %d (%d positive, %d negative)\n", s.Examples, s.Positive, s.Negative)
	color.New(color.FgWhite, color.Bold).Fprintln(r.w, "Model")
	fmt.Fprintf(r.w, "  Positive words: %d\n", s.PositiveWords)
	fmt.Fprintf(r.w, "  Negative words: %d\n", s.NegativeWords)
	return nil
}

func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
