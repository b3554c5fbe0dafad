package report

import (
	"log/slog"

	"github.com/amishk599/shortlist/internal/model"
)

// Ensure LogReporter implements model.Reporter.
var _ model.Reporter = (*LogReporter)(nil)

// LogReporter writes each result to the given logger as a structured message.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter returns a reporter that logs each result via slog.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report logs each result with file, score and matching skills.
// Returns nil (logging does not fail).
func (r *LogReporter) Report(results []model.AnalysisResult) error {
	for _, res := range results {
		args := []any{"file", res.FileName, "match_score", res.MatchScore, "matching_skills", res.MatchingSkills}
		if d := res.Details; d != nil {
			args = append(args,
				"skill_score", d.SkillScore,
				"experience_score", d.ExperienceScore,
				"education_score", d.EducationScore,
			)
		}
		r.logger.Info("resume analyzed", args...)
	}
	return nil
}
