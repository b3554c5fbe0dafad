package form

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/amishk599/shortlist/internal/model"
)

// RejectedMessage is shown when the service answered with a non-success status.
const RejectedMessage = "Failed to analyze resumes. Please try again."

// ErrNotReady is returned by Submit and Begin when the form is incomplete or a
// submission is already in flight.
var ErrNotReady = errors.New("form not ready for submission")

// Controller owns the form state and drives one submission at a time.
// It is not safe for concurrent use: all calls must come from the same
// goroutine (the view's event loop). Only the Analyzer call itself may run
// elsewhere, with its outcome handed back through Settle.
type Controller struct {
	analyzer model.Analyzer
	logger   *slog.Logger

	files      []model.UploadedFile
	jobRole    string
	skills     []string
	skillInput string
	state      State
}

// NewController returns a controller in the Idle state.
func NewController(analyzer model.Analyzer, logger *slog.Logger) *Controller {
	return &Controller{
		analyzer: analyzer,
		logger:   logger,
		state:    Idle{},
	}
}

// AddFiles appends files to the list. Callers pass only files that went
// through the accept filter.
func (c *Controller) AddFiles(files ...model.UploadedFile) {
	c.files = append(c.files, files...)
}

// AddSkill adds the trimmed text to the skill set and clears the pending
// skill input. Empty or duplicate skills are ignored and reported as false.
func (c *Controller) AddSkill(text string) bool {
	skill := strings.TrimSpace(text)
	if skill == "" || slices.Contains(c.skills, skill) {
		return false
	}
	c.skills = append(c.skills, skill)
	c.skillInput = ""
	return true
}

// RemoveSkill drops every occurrence of skill.
func (c *Controller) RemoveSkill(skill string) {
	c.skills = slices.DeleteFunc(c.skills, func(s string) bool { return s == skill })
}

// SetJobRole replaces the job role as typed.
func (c *Controller) SetJobRole(text string) {
	c.jobRole = text
}

// SetSkillInput records the skill text being typed.
func (c *Controller) SetSkillInput(text string) {
	c.skillInput = text
}

func (c *Controller) Files() []model.UploadedFile { return slices.Clone(c.files) }
func (c *Controller) JobRole() string             { return c.jobRole }
func (c *Controller) Skills() []string            { return slices.Clone(c.skills) }
func (c *Controller) SkillInput() string          { return c.skillInput }
func (c *Controller) State() State                { return c.state }

// Loading reports whether a submission is in flight.
func (c *Controller) Loading() bool {
	_, ok := c.state.(Loading)
	return ok
}

// CanSubmit reports whether the submit trigger should be enabled.
func (c *Controller) CanSubmit() bool {
	return len(c.files) > 0 && c.jobRole != "" && len(c.skills) > 0 && !c.Loading()
}

// Begin moves to Loading and returns the request to send. The caller must
// hand the outcome of the call to Settle.
func (c *Controller) Begin() (model.AnalysisRequest, error) {
	if !c.CanSubmit() {
		return model.AnalysisRequest{}, ErrNotReady
	}
	c.state = Loading{}
	return model.AnalysisRequest{
		Files:   slices.Clone(c.files),
		JobRole: c.jobRole,
		Skills:  slices.Clone(c.skills),
	}, nil
}

// Settle applies the outcome of the call started by Begin. It always leaves
// the Loading state.
func (c *Controller) Settle(results []model.AnalysisResult, err error) State {
	if err == nil {
		if results == nil {
			results = []model.AnalysisResult{}
		}
		c.state = Succeeded{Results: results}
		c.logger.Info("analysis complete", "results", len(results))
		return c.state
	}

	var rejected *model.RequestRejectedError
	if errors.As(err, &rejected) {
		c.logger.Error("analysis rejected",
			"status", rejected.StatusCode,
			"body", rejected.Body,
		)
		c.state = Failed{Message: RejectedMessage}
		return c.state
	}

	c.logger.Error("analysis failed", "error", err)
	c.state = Failed{Message: err.Error()}
	return c.state
}

// Submit runs a whole submission: Begin, one blocking Analyze call, Settle.
func (c *Controller) Submit(ctx context.Context) (State, error) {
	req, err := c.Begin()
	if err != nil {
		return c.state, err
	}
	results, err := c.analyzer.Analyze(ctx, req)
	return c.Settle(results, err), nil
}

// Analyze runs req against the controller's analyzer without touching state.
// The form view uses it from a background command between Begin and Settle.
func (c *Controller) Analyze(ctx context.Context, req model.AnalysisRequest) ([]model.AnalysisResult, error) {
	return c.analyzer.Analyze(ctx, req)
}
