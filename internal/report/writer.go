package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/amishk599/shortlist/internal/model"
)

var (
	_ model.Reporter = (*TableReporter)(nil)
	_ model.Reporter = (*JSONReporter)(nil)
)

// TableReporter prints results as an aligned table, in the order received.
type TableReporter struct {
	w io.Writer
}

func NewTableReporter(w io.Writer) *TableReporter {
	return &TableReporter{w: w}
}

func (r *TableReporter) Report(results []model.AnalysisResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(r.w, "No results.")
		return err
	}

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tSCORE\tMATCHING SKILLS")
	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%s%%\t%s\n", res.FileName, FormatScore(res.MatchScore), JoinSkills(res.MatchingSkills))
	}
	return tw.Flush()
}

// JSONReporter writes the result list as indented JSON.
type JSONReporter struct {
	w io.Writer
}

func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

func (r *JSONReporter) Report(results []model.AnalysisResult) error {
	if results == nil {
		results = []model.AnalysisResult{}
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}

// FormatScore renders a score the way the service sent it: 87 stays "87",
// 87.25 stays "87.25".
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// JoinSkills renders a skill list for display.
func JoinSkills(skills []string) string {
	if len(skills) == 0 {
		return "-"
	}
	return strings.Join(skills, ", ")
}
