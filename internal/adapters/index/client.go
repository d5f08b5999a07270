// Package index implements the distribution index client.
//
// It speaks the legacy form-upload protocol: metadata registration is a
// ":action=submit" form post and artifact upload is a ":action=file_upload"
// multipart post. Both are authenticated with basic auth.
package index

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkgship/shipit/internal/core/domain"
	"github.com/pkgship/shipit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.Index over HTTP.
type Client struct {
	httpClient *http.Client
	logger     ports.Logger
}

// NewClient creates a new Client.
func NewClient(logger ports.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		logger:     logger,
	}
}

// Register publishes the package metadata to the index.
func (c *Client) Register(ctx context.Context, cfg domain.IndexConfig, meta *domain.PackageMeta) error {
	form := url.Values{}
	form.Set(":action", "submit")
	form.Set("protocol_version", "1")
	addMetaFields(form, meta)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return zerr.Wrap(err, "failed to build register request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if err := c.do(req, cfg); err != nil {
		return zerr.With(err, "action", "register")
	}
	c.logger.Info("registered " + meta.Name + " " + meta.Version)
	return nil
}

// Upload sends the built source distribution to the index. An index response
// indicating the version already has a file is surfaced as
// domain.ErrDuplicateUpload, never swallowed.
func (c *Client) Upload(ctx context.Context, cfg domain.IndexConfig, meta *domain.PackageMeta, artifact *domain.Artifact) error {
	body, contentType, err := uploadBody(meta, artifact)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.URL, body)
	if err != nil {
		return zerr.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", contentType)

	if err := c.do(req, cfg); err != nil {
		return zerr.With(err, "action", "upload")
	}
	c.logger.Info("uploaded " + filepath.Base(artifact.Path))
	return nil
}

func uploadBody(meta *domain.PackageMeta, artifact *domain.Artifact) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	form := url.Values{}
	form.Set(":action", "file_upload")
	form.Set("protocol_version", "1")
	addMetaFields(form, meta)
	form.Set("filetype", "sdist")
	form.Set("pyversion", "source")
	form.Set("sha256_digest", artifact.SHA256)

	for key, values := range form {
		for _, value := range values {
			if err := w.WriteField(key, value); err != nil {
				return nil, "", zerr.Wrap(err, "failed to write form field")
			}
		}
	}

	f, err := os.Open(artifact.Path) //nolint:gosec // artifact was built by us
	if err != nil {
		return nil, "", zerr.Wrap(err, "failed to open artifact")
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	part, err := w.CreateFormFile("content", filepath.Base(artifact.Path))
	if err != nil {
		return nil, "", zerr.Wrap(err, "failed to create file part")
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", zerr.Wrap(err, "failed to copy artifact into request")
	}

	if err := w.Close(); err != nil {
		return nil, "", zerr.Wrap(err, "failed to finalize multipart body")
	}
	return &buf, w.FormDataContentType(), nil
}

func addMetaFields(form url.Values, meta *domain.PackageMeta) {
	form.Set("metadata_version", "1.0")
	form.Set("name", meta.Name)
	form.Set("version", meta.Version)
	if meta.Summary != "" {
		form.Set("summary", meta.Summary)
	}
	if meta.Homepage != "" {
		form.Set("home_page", meta.Homepage)
	}
	if meta.Author != "" {
		form.Set("author", meta.Author)
	}
	if meta.License != "" {
		form.Set("license", meta.License)
	}
}

func (c *Client) do(req *http.Request, cfg domain.IndexConfig) error {
	if cfg.Username != "" || cfg.Password != "" {
		req.SetBasicAuth(cfg.Username, cfg.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zerr.Wrap(err, "index request failed")
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	detail := strings.TrimSpace(string(body))

	if isDuplicate(resp.StatusCode, detail) {
		return zerr.With(domain.ErrDuplicateUpload, "detail", detail)
	}
	return zerr.With(zerr.With(domain.ErrIndexRejected, "status", resp.StatusCode), "detail", detail)
}

// isDuplicate recognizes the index's duplicate-version rejections. Warehouse
// answers 400 with "File already exists", older index servers answer 409.
func isDuplicate(status int, body string) bool {
	if status == http.StatusConflict {
		return true
	}
	lower := strings.ToLower(body)
	return status == http.StatusBadRequest && strings.Contains(lower, "already exists")
}
