package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amishk599/shortlist/internal/model"
)

// acceptedTypes maps the resume extensions the form takes to their MIME types.
var acceptedTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// AcceptedExtensions lists the extensions the form takes, for hints and help text.
var AcceptedExtensions = []string{".pdf", ".doc", ".docx"}

// ContentType returns the MIME type for name, or "" if the type is not accepted.
func ContentType(name string) string {
	return acceptedTypes[strings.ToLower(filepath.Ext(name))]
}

// Rejection records a path that did not make it through the accept filter.
type Rejection struct {
	Path   string
	Reason string
}

func (r Rejection) String() string {
	return fmt.Sprintf("%s: %s", r.Path, r.Reason)
}

// Select expands each glob pattern and returns the accepted files in order.
// Paths of other types, directories and patterns that match nothing are
// returned as rejections. An error is returned only when a match cannot be
// inspected.
func Select(patterns ...string) ([]model.UploadedFile, []Rejection, error) {
	var accepted []model.UploadedFile
	var rejected []Rejection

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		matches, err := filepath.Glob(expandHome(pattern))
		if err != nil {
			rejected = append(rejected, Rejection{Path: pattern, Reason: "invalid pattern"})
			continue
		}
		if len(matches) == 0 {
			rejected = append(rejected, Rejection{Path: pattern, Reason: "no such file"})
			continue
		}

		for _, path := range matches {
			info, err := os.Stat(path)
			if err != nil {
				return nil, nil, fmt.Errorf("stat %s: %w", path, err)
			}
			if info.IsDir() {
				rejected = append(rejected, Rejection{Path: path, Reason: "is a directory"})
				continue
			}
			ct := ContentType(path)
			if ct == "" {
				rejected = append(rejected, Rejection{
					Path:   path,
					Reason: "unsupported type (want " + strings.Join(AcceptedExtensions, ", ") + ")",
				})
				continue
			}
			accepted = append(accepted, model.UploadedFile{
				Name:        filepath.Base(path),
				Size:        info.Size(),
				Path:        path,
				ContentType: ct,
			})
		}
	}

	return accepted, rejected, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
