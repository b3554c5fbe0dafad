package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/amishk599/shortlist/internal/model"
)

// Ensure Client implements model.Analyzer.
var _ model.Analyzer = (*Client)(nil)

// maxErrorBody caps how much of a rejected response body is kept for logs.
const maxErrorBody = 4 << 10

// Multipart field names expected by the service.
const (
	fieldResumes = "resumes"
	fieldJobRole = "jobRole"
	fieldSkills  = "skills"
)

// Client posts resumes to the analysis service's /analyze endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the service rooted at endpoint,
// e.g. "http://localhost:5000".
func NewClient(endpoint string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Analyze sends one multipart request and decodes the result list.
// A non-2xx answer yields *model.RequestRejectedError, a failed round trip
// yields *model.TransportError, and a bad body is a decoding failure.
func (c *Client) Analyze(ctx context.Context, req model.AnalysisRequest) ([]model.AnalysisResult, error) {
	target := c.endpoint + "/analyze"
	requestID := uuid.NewString()

	pr, pw := io.Pipe()
	defer pr.Close()
	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeForm(mw, req))
	}()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, pr)
	if err != nil {
		return nil, fmt.Errorf("create analyze request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("sending analyze request",
		"request_id", requestID,
		"url", target,
		"files", len(req.Files),
		"skills", len(req.Skills),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("analyze request failed",
			"request_id", requestID,
			"url", target,
			"error", err,
		)
		return nil, &model.TransportError{Cause: transportCause(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("analyze request rejected",
			"request_id", requestID,
			"status", resp.StatusCode,
		)
		return nil, &model.RequestRejectedError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read analyze response: %w", err)
	}

	results, err := decodeResults(respBytes)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("analyze request complete",
		"request_id", requestID,
		"results", len(results),
	)
	return results, nil
}

// writeForm streams the request body: one resumes part per file, then the
// jobRole and skills fields. It always closes mw.
func writeForm(mw *multipart.Writer, req model.AnalysisRequest) error {
	for _, f := range req.Files {
		if err := writeFile(mw, f); err != nil {
			mw.Close()
			return err
		}
	}

	if err := mw.WriteField(fieldJobRole, req.JobRole); err != nil {
		mw.Close()
		return fmt.Errorf("write %s field: %w", fieldJobRole, err)
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	encoded, err := json.Marshal(skills)
	if err != nil {
		mw.Close()
		return fmt.Errorf("marshal skills: %w", err)
	}
	if err := mw.WriteField(fieldSkills, string(encoded)); err != nil {
		mw.Close()
		return fmt.Errorf("write %s field: %w", fieldSkills, err)
	}

	return mw.Close()
}

func writeFile(mw *multipart.Writer, f model.UploadedFile) error {
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		fieldResumes, escapeQuotes(f.Name)))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create part for %s: %w", f.Name, err)
	}

	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("copy %s: %w", f.Name, err)
	}
	return nil
}

// transportCause strips the method and URL the http client adds, leaving the
// error the transport raised.
func transportCause(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// errorBody is what the reference service sends with a 2xx status when it
// fails internally.
type errorBody struct {
	Error *string `json:"error"`
}

// decodeResults parses a success body. An {"error": "..."} object becomes a
// *model.ServiceError.
func decodeResults(body []byte) ([]model.AnalysisResult, error) {
	var results []model.AnalysisResult
	err := json.Unmarshal(body, &results)
	if err == nil {
		if results == nil {
			results = []model.AnalysisResult{}
		}
		return results, nil
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var eb errorBody
		if jsonErr := json.Unmarshal(trimmed, &eb); jsonErr == nil && eb.Error != nil {
			return nil, &model.ServiceError{Message: *eb.Error}
		}
	}

	return nil, fmt.Errorf("decode analyze response: %w", err)
}
