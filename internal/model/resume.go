package model

import (
	"context"
	"fmt"
	"io"
	"os"
)

// UploadedFile is a reference to a resume the user selected. Content is read
// from Path only when a request is built.
type UploadedFile struct {
	Name        string // display name, sent as the part filename
	Size        int64  // bytes
	Path        string // where the content lives
	ContentType string // MIME type from the accept filter
}

// Open returns the file content.
func (f UploadedFile) Open() (io.ReadCloser, error) {
	r, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Name, err)
	}
	return r, nil
}

// SizeMB formats the size in megabytes with two decimals, e.g. "0.25 MB".
func (f UploadedFile) SizeMB() string {
	return fmt.Sprintf("%.2f MB", float64(f.Size)/1024/1024)
}

// AnalysisRequest is composed from the form at submission time.
type AnalysisRequest struct {
	Files   []UploadedFile
	JobRole string
	Skills  []string
}

// AnalysisResult is the service's verdict for one resume.
type AnalysisResult struct {
	FileName       string        `json:"fileName"`
	MatchScore     float64       `json:"matchScore"`
	MatchingSkills []string      `json:"matchingSkills"`
	Details        *ScoreDetails `json:"details,omitempty"`
}

// ScoreDetails is the optional per-component breakdown some services send.
type ScoreDetails struct {
	SkillScore      float64 `json:"skillScore"`
	ExperienceScore float64 `json:"experienceScore"`
	EducationScore  float64 `json:"educationScore"`
}

// Analyzer sends a request to the analysis service and returns one result
// per submitted file.
type Analyzer interface {
	Analyze(ctx context.Context, req AnalysisRequest) ([]AnalysisResult, error)
}

// Reporter presents a result list somewhere (terminal, log, ...).
type Reporter interface {
	Report(results []AnalysisResult) error
}
