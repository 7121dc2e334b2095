// Package placement is the HTTP client for the Placement Pal backend.
package placement

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/placementpal/internal/core/logging"
	"github.com/colonyops/placementpal/internal/core/roadmap"
	"github.com/colonyops/placementpal/pkg/randid"
)

// Endpoint paths served by the backend.
const (
	EndpointChat          = "/chat"
	EndpointRoadmap       = "/roadmap"
	EndpointExperiences   = "/experiences"
	EndpointAnalyzeSkills = "/analyze-skills"
	EndpointAnalyzeATS    = "/analyze-ats"
)

const maxErrorBody = 512

// Client talks to the backend. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// New creates a client for the backend at baseURL.
func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// BaseURL returns the backend address the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Chat sends a question to the knowledge-base chatbot and returns its answer.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	body, err := c.postJSON(ctx, EndpointChat, map[string]string{"message": message})
	if err != nil {
		return "", err
	}

	var resp struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	return resp.Response, nil
}

// Roadmap generates a preparation roadmap for a company and role.
func (c *Client) Roadmap(ctx context.Context, company, role string) ([]roadmap.Milestone, error) {
	body, err := c.postJSON(ctx, EndpointRoadmap, map[string]string{"company": company, "role": role})
	if err != nil {
		return nil, err
	}

	milestones, err := roadmap.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("decode roadmap: %w", err)
	}
	return milestones, nil
}

// Experiences returns curated interview experiences for a company.
func (c *Client) Experiences(ctx context.Context, company string) ([]Experience, error) {
	body, err := c.postJSON(ctx, EndpointExperiences, map[string]string{"company": company})
	if err != nil {
		return nil, err
	}

	var experiences []Experience
	if err := json.Unmarshal(body, &experiences); err != nil {
		return nil, fmt.Errorf("decode experiences: %w", err)
	}
	return experiences, nil
}

// AnalyzeSkills compares a resume against the skills a role requires.
func (c *Client) AnalyzeSkills(ctx context.Context, up Upload) (SkillReport, error) {
	body, err := c.postUpload(ctx, EndpointAnalyzeSkills, up)
	if err != nil {
		return SkillReport{}, err
	}

	var report SkillReport
	if err := json.Unmarshal(body, &report); err != nil {
		return SkillReport{}, fmt.Errorf("decode skill report: %w", err)
	}
	return report, nil
}

// AnalyzeATS scores a resume the way an applicant tracking system would.
func (c *Client) AnalyzeATS(ctx context.Context, up Upload) (ATSReport, error) {
	body, err := c.postUpload(ctx, EndpointAnalyzeATS, up)
	if err != nil {
		return ATSReport{}, err
	}

	var report ATSReport
	if err := json.Unmarshal(body, &report); err != nil {
		return ATSReport{}, fmt.Errorf("decode ats report: %w", err)
	}
	return report, nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(ctx, endpoint, req)
}

func (c *Client) postUpload(ctx context.Context, endpoint string, up Upload) ([]byte, error) {
	f, err := os.Open(up.Path)
	if err != nil {
		return nil, fmt.Errorf("open resume: %w", err)
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("company", up.Company); err != nil {
		return nil, fmt.Errorf("write company field: %w", err)
	}
	if err := w.WriteField("role", up.Role); err != nil {
		return nil, fmt.Errorf("write role field: %w", err)
	}

	part, err := w.CreateFormFile("file", filepath.Base(up.Path))
	if err != nil {
		return nil, fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("copy resume: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(ctx, endpoint, req)
}

func (c *Client) do(ctx context.Context, endpoint string, req *http.Request) ([]byte, error) {
	requestID := randid.Generate(8)
	ctx = logging.WithRequestID(ctx, requestID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Ctx(ctx).Err(err).Str("endpoint", endpoint).Msg("backend request failed")
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Debug().Ctx(ctx).Err(err).Msg("close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", endpoint, err)
	}

	c.logger.Debug().Ctx(ctx).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Int("bytes", len(body)).
		Msg("backend request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Endpoint: endpoint, Code: resp.StatusCode, Body: truncate(string(body), maxErrorBody)}
	}

	if err := checkErrorBody(endpoint, body); err != nil {
		c.logger.Warn().Ctx(ctx).Err(err).Str("endpoint", endpoint).Msg("backend reported error")
		return nil, err
	}

	return body, nil
}
