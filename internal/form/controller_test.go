package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/amishk599/shortlist/internal/model"
)

// --- Mock/Fake Implementations ---

// MockAnalyzer returns canned results or an error and records each request.
type MockAnalyzer struct {
	Results  []model.AnalysisResult
	Err      error
	Requests []model.AnalysisRequest

	// seen is the controller state observed during the call.
	seen  State
	owner *Controller
}

func (m *MockAnalyzer) Analyze(_ context.Context, req model.AnalysisRequest) ([]model.AnalysisResult, error) {
	m.Requests = append(m.Requests, req)
	if m.owner != nil {
		m.seen = m.owner.State()
	}
	return m.Results, m.Err
}

// --- Helpers ---

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newReadyController(a *MockAnalyzer) *Controller {
	c := NewController(a, discardLogger())
	a.owner = c
	c.AddFiles(model.UploadedFile{Name: "R1.pdf", Size: 2048, Path: "R1.pdf", ContentType: "application/pdf"})
	c.SetJobRole("Engineer")
	c.AddSkill("Go")
	return c
}

// --- Skills ---

func TestAddSkill_NoDuplicatesFirstInsertionOrder(t *testing.T) {
	c := NewController(&MockAnalyzer{}, discardLogger())
	for _, s := range []string{"Go", "SQL", "Go", " SQL ", "Docker", "go"} {
		c.AddSkill(s)
	}

	want := []string{"Go", "SQL", "Docker", "go"}
	if got := c.Skills(); !slices.Equal(got, want) {
		t.Errorf("Skills() = %v, want %v", got, want)
	}
}

func TestAddSkill_BlankIsNoOp(t *testing.T) {
	c := NewController(&MockAnalyzer{}, discardLogger())
	c.SetSkillInput("   ")

	if c.AddSkill("") {
		t.Error("AddSkill(\"\") = true, want false")
	}
	if c.AddSkill("   ") {
		t.Error("AddSkill(\"   \") = true, want false")
	}
	if len(c.Skills()) != 0 {
		t.Errorf("Skills() = %v, want empty", c.Skills())
	}
	if c.SkillInput() != "   " {
		t.Errorf("SkillInput() = %q, want pending input untouched", c.SkillInput())
	}
}

func TestAddSkill_ClearsPendingInputOnlyWhenAdded(t *testing.T) {
	c := NewController(&MockAnalyzer{}, discardLogger())

	c.SetSkillInput("  Kubernetes ")
	if !c.AddSkill(c.SkillInput()) {
		t.Fatal("AddSkill: expected skill to be added")
	}
	if c.SkillInput() != "" {
		t.Errorf("SkillInput() = %q, want empty after add", c.SkillInput())
	}
	if got := c.Skills(); !slices.Equal(got, []string{"Kubernetes"}) {
		t.Errorf("Skills() = %v, want [Kubernetes]", got)
	}

	c.SetSkillInput("Kubernetes")
	if c.AddSkill(c.SkillInput()) {
		t.Error("AddSkill duplicate = true, want false")
	}
	if c.SkillInput() != "Kubernetes" {
		t.Errorf("SkillInput() = %q, want duplicate left in input", c.SkillInput())
	}
}

func TestRemoveSkill_ThenAddRestores(t *testing.T) {
	c := NewController(&MockAnalyzer{}, discardLogger())
	c.AddSkill("Go")
	c.AddSkill("Rust")

	c.RemoveSkill("Go")
	if got := c.Skills(); !slices.Equal(got, []string{"Rust"}) {
		t.Fatalf("after RemoveSkill: Skills() = %v, want [Rust]", got)
	}

	c.AddSkill("Go")
	if got := c.Skills(); !slices.Contains(got, "Go") {
		t.Errorf("after re-add: Skills() = %v, want Go present", got)
	}
}

func TestRemoveSkill_UnknownIsNoOp(t *testing.T) {
	c := NewController(&MockAnalyzer{}, discardLogger())
	c.AddSkill("Go")
	c.RemoveSkill("Java")
	if got := c.Skills(); !slices.Equal(got, []string{"Go"}) {
		t.Errorf("Skills() = %v, want [Go]", got)
	}
}

// --- Files and job role ---

func TestAddFiles_AppendsPreservingOrder(t *testing.T) {
	c := NewController(&MockAnalyzer{}, discardLogger())
	c.AddFiles(model.UploadedFile{Name: "a.pdf"})
	c.AddFiles(model.UploadedFile{Name: "b.docx"}, model.UploadedFile{Name: "a.pdf"})

	var names []string
	for _, f := range c.Files() {
		names = append(names, f.Name)
	}
	want := []string{"a.pdf", "b.docx", "a.pdf"}
	if !slices.Equal(names, want) {
		t.Errorf("file names = %v, want %v", names, want)
	}
}

func TestSetJobRole_NoTrimming(t *testing.T) {
	c := NewController(&MockAnalyzer{}, discardLogger())
	c.SetJobRole("  Staff Engineer ")
	if c.JobRole() != "  Staff Engineer " {
		t.Errorf("JobRole() = %q, want untrimmed value", c.JobRole())
	}
}

// --- Submit guard ---

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Controller)
		want  bool
	}{
		{"ready", func(c *Controller) {}, true},
		{"no files", func(c *Controller) { c.files = nil }, false},
		{"empty job role", func(c *Controller) { c.SetJobRole("") }, false},
		{"no skills", func(c *Controller) { c.RemoveSkill("Go") }, false},
		{"loading", func(c *Controller) { c.state = Loading{} }, false},
		{"after failure", func(c *Controller) { c.state = Failed{Message: "x"} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newReadyController(&MockAnalyzer{})
			tt.setup(c)
			if got := c.CanSubmit(); got != tt.want {
				t.Errorf("CanSubmit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubmit_NotReadyLeavesStateAlone(t *testing.T) {
	mock := &MockAnalyzer{}
	c := NewController(mock, discardLogger())

	state, err := c.Submit(context.Background())
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("Submit err = %v, want ErrNotReady", err)
	}
	if _, ok := state.(Idle); !ok {
		t.Errorf("state = %T, want Idle", state)
	}
	if len(mock.Requests) != 0 {
		t.Errorf("analyzer called %d times, want 0", len(mock.Requests))
	}
}

func TestBegin_RejectsSecondSubmissionWhileLoading(t *testing.T) {
	c := newReadyController(&MockAnalyzer{})
	if _, err := c.Begin(); err != nil {
		t.Fatalf("first Begin: %v", err)
	}
	if _, err := c.Begin(); !errors.Is(err, ErrNotReady) {
		t.Errorf("second Begin err = %v, want ErrNotReady", err)
	}
}

// --- Submit outcomes ---

func TestSubmit_Success(t *testing.T) {
	want := model.AnalysisResult{FileName: "R1.pdf", MatchScore: 87, MatchingSkills: []string{"Go"}}
	mock := &MockAnalyzer{Results: []model.AnalysisResult{want}}
	c := newReadyController(mock)

	state, err := c.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	s, ok := state.(Succeeded)
	if !ok {
		t.Fatalf("state = %T, want Succeeded", state)
	}
	if len(s.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(s.Results))
	}
	got := s.Results[0]
	if got.FileName != want.FileName || got.MatchScore != want.MatchScore || !slices.Equal(got.MatchingSkills, want.MatchingSkills) {
		t.Errorf("result = %+v, want %+v", got, want)
	}
	if _, ok := mock.seen.(Loading); !ok {
		t.Errorf("state during call = %T, want Loading", mock.seen)
	}
}

func TestSubmit_BuildsRequestFromForm(t *testing.T) {
	mock := &MockAnalyzer{}
	c := newReadyController(mock)
	c.AddSkill("SQL")

	if _, err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(mock.Requests) != 1 {
		t.Fatalf("analyzer called %d times, want 1", len(mock.Requests))
	}
	req := mock.Requests[0]
	if req.JobRole != "Engineer" {
		t.Errorf("JobRole = %q, want Engineer", req.JobRole)
	}
	if !slices.Equal(req.Skills, []string{"Go", "SQL"}) {
		t.Errorf("Skills = %v, want [Go SQL]", req.Skills)
	}
	if len(req.Files) != 1 || req.Files[0].Name != "R1.pdf" {
		t.Errorf("Files = %+v, want [R1.pdf]", req.Files)
	}
}

func TestSubmit_RejectedShowsGenericMessage(t *testing.T) {
	mock := &MockAnalyzer{Err: fmt.Errorf("analyze: %w", &model.RequestRejectedError{StatusCode: 500, Body: "boom"})}
	c := newReadyController(mock)

	state, err := c.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	f, ok := state.(Failed)
	if !ok {
		t.Fatalf("state = %T, want Failed", state)
	}
	if f.Message != "Failed to analyze resumes. Please try again." {
		t.Errorf("Message = %q", f.Message)
	}
}

func TestSubmit_TransportErrorShownVerbatim(t *testing.T) {
	mock := &MockAnalyzer{Err: errors.New("network down")}
	c := newReadyController(mock)

	state, _ := c.Submit(context.Background())
	f, ok := state.(Failed)
	if !ok {
		t.Fatalf("state = %T, want Failed", state)
	}
	if f.Message != "network down" {
		t.Errorf("Message = %q, want %q", f.Message, "network down")
	}
}

func TestSubmit_NeverLoadingAfterSettlement(t *testing.T) {
	outcomes := []*MockAnalyzer{
		{Results: []model.AnalysisResult{{FileName: "R1.pdf"}}},
		{Err: &model.RequestRejectedError{StatusCode: 502}},
		{Err: errors.New("dial tcp: connection refused")},
		{Err: &model.ServiceError{Message: "bad pdf"}},
	}
	for i, mock := range outcomes {
		c := newReadyController(mock)
		c.Submit(context.Background())
		if c.Loading() {
			t.Errorf("outcome %d: still Loading after settlement", i)
		}
		if !c.CanSubmit() {
			t.Errorf("outcome %d: CanSubmit() = false after settlement", i)
		}
	}
}

func TestSubmit_ReplacesPreviousOutcome(t *testing.T) {
	mock := &MockAnalyzer{Err: errors.New("network down")}
	c := newReadyController(mock)
	c.Submit(context.Background())

	mock.Err = nil
	mock.Results = []model.AnalysisResult{{FileName: "R1.pdf", MatchScore: 40}}
	state, _ := c.Submit(context.Background())
	s, ok := state.(Succeeded)
	if !ok {
		t.Fatalf("state = %T, want Succeeded", state)
	}
	if len(s.Results) != 1 || s.Results[0].MatchScore != 40 {
		t.Errorf("results = %+v", s.Results)
	}

	mock.Err = &model.RequestRejectedError{StatusCode: 400}
	state, _ = c.Submit(context.Background())
	if _, ok := state.(Failed); !ok {
		t.Errorf("state = %T, want Failed with no results kept", state)
	}
}

func TestSettle_NilResultsIsEmptySuccess(t *testing.T) {
	c := newReadyController(&MockAnalyzer{})
	if _, err := c.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	s, ok := c.Settle(nil, nil).(Succeeded)
	if !ok {
		t.Fatalf("state = %T, want Succeeded", c.State())
	}
	if s.Results == nil || len(s.Results) != 0 {
		t.Errorf("Results = %#v, want empty non-nil slice", s.Results)
	}
}
