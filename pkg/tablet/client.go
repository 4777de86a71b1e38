package tablet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/OliverTED/remarkable-usb-api/internal/logging"
	"github.com/OliverTED/remarkable-usb-api/pkg/protocol"
	"github.com/OliverTED/remarkable-usb-api/pkg/retry"
)

// DefaultBaseURL is where the USB web interface listens when the tablet is
// connected over USB and the interface is enabled in its settings.
const DefaultBaseURL = "http://10.11.99.1"

// Client talks to the device's REST API. All calls are synchronous; transient
// transport failures are retried a fixed number of times with no backoff and
// become fatal once attempts are exhausted.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	retryConfig retry.Config
}

// Config holds client configuration.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	RetryConfig retry.Config
}

// New creates a new client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RetryConfig.MaxAttempts == 0 {
		cfg.RetryConfig = retry.Immediate(3)
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        4,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		retryConfig: cfg.RetryConfig,
	}
}

// BaseURL returns the device URL this client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// ListFolder fetches the raw records of one folder level. An empty folderID
// lists the root folder. The listing doubles as the device's notion of the
// "current" folder for a following upload.
func (c *Client) ListFolder(ctx context.Context, folderID string) ([]protocol.RawRecord, error) {
	url := c.baseURL + "/documents/" + folderID
	logging.Debug("listing folder", zap.String("url", url))

	return retry.DoWithResult(ctx, c.retryConfig, func() ([]protocol.RawRecord, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, retry.Retryable(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if resp.StatusCode >= 500 {
				return nil, retry.Retryable(fmt.Errorf("device returned %d", resp.StatusCode))
			}
			return nil, fmt.Errorf("device returned %d", resp.StatusCode)
		}

		var records []protocol.RawRecord
		if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
			return nil, fmt.Errorf("decoding folder listing: %w", err)
		}
		return records, nil
	})
}

// DownloadTo streams a document's rendered pdf into w.
func (c *Client) DownloadTo(ctx context.Context, documentID string, w io.Writer) error {
	// The trailing path segment is required by the device but ignored.
	url := c.baseURL + "/download/" + documentID + "/placeholder"
	logging.Debug("downloading document", zap.String("url", url))

	return retry.Do(ctx, c.retryConfig, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.Retryable(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if resp.StatusCode >= 500 {
				return retry.Retryable(fmt.Errorf("device returned %d", resp.StatusCode))
			}
			return fmt.Errorf("device returned %d", resp.StatusCode)
		}

		_, err = io.Copy(w, resp.Body)
		return err
	})
}

// DownloadToFile stores a document as a local file, replacing any existing
// file and creating parent directories as needed.
func (c *Client) DownloadToFile(ctx context.Context, documentID, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	if err := os.Remove(filename); err != nil && !os.IsNotExist(err) {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := c.DownloadTo(ctx, documentID, f); err != nil {
		f.Close()
		os.Remove(filename)
		return err
	}
	return f.Close()
}

// Upload sends content as a new document named filename into the folder with
// the given ID ("" for root). The destination folder is listed first: the
// device uploads into whichever folder was requested last.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader, folderID string) error {
	if _, err := c.ListFolder(ctx, folderID); err != nil {
		return fmt.Errorf("selecting upload folder: %w", err)
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, content); err != nil {
		return err
	}
	if err := form.Close(); err != nil {
		return err
	}

	url := c.baseURL + "/upload"
	logging.Debug("uploading document",
		zap.String("url", url),
		zap.String("filename", filename),
		zap.Int("size", body.Len()))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("uploading %s: device returned %d", filename, resp.StatusCode)
	}
	return nil
}

// CreateFolder would create a folder on the device. No such endpoint exists
// in the USB web API, so this always fails with a user-actionable error.
func (c *Client) CreateFolder(ctx context.Context, folderPath string) (*Folder, error) {
	return nil, fmt.Errorf("mkdir %s: %w", folderPath, ErrFolderCreationUnsupported)
}
