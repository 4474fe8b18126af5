package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/convdesk/convdesk/internal/model"
)

// Default timeout for the conversion request. The remote service answers as
// soon as the upload is accepted; processing continues over the progress
// channel, so this only bounds the transfer itself.
const DefaultRequestTimeout = 10 * time.Minute

// Multipart field names expected by the conversion service
const (
	FieldFile         = "file"
	FieldFiles        = "files"
	FieldOutputFormat = "output_format"
	FieldBatchID      = "batch_id"
)

// ConvertOptions carries form-selected options plus the hooks the
// orchestrator supplies for one conversion attempt.
type ConvertOptions struct {
	OutputFormat string
	Params       map[string]string

	// OnUploadProgress receives transfer completion 0-100 while the request
	// body is being sent. It is independent of remote processing progress.
	OnUploadProgress func(percent int)
}

// Client talks to the remote conversion service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a conversion service client for the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultRequestTimeout},
	}
}

// BaseURL returns the configured service base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Convert uploads a single file to the media-type endpoint and returns the
// synchronous conversion result. The request is attempted exactly once.
func (c *Client) Convert(ctx context.Context, mediaType model.MediaType, file model.InputFile, opts ConvertOptions) (*model.ConversionResult, error) {
	return c.post(ctx, mediaType.Endpoint(), []model.InputFile{file}, FieldFile, nil, opts)
}

// ConvertBatch uploads every file of the batch in one request to the batch
// endpoint. The service returns a single session producing one archive.
func (c *Client) ConvertBatch(ctx context.Context, batch *model.Batch, opts ConvertOptions) (*model.ConversionResult, error) {
	if batch == nil || len(batch.Files) == 0 {
		return nil, fmt.Errorf("batch has no files")
	}
	extra := map[string]string{FieldBatchID: batch.ID}
	return c.post(ctx, model.MediaBatch.Endpoint(), batch.Files, FieldFiles, extra, opts)
}

func (c *Client) post(ctx context.Context, endpoint string, files []model.InputFile, fieldName string, extra map[string]string, opts ConvertOptions) (*model.ConversionResult, error) {
	var total int64
	for _, f := range files {
		total += f.Size
	}

	bodyReader, bodyWriter := io.Pipe()
	form := multipart.NewWriter(bodyWriter)
	tracker := newUploadTracker(total, opts.OnUploadProgress)

	go func() {
		bodyWriter.CloseWithError(writeForm(form, files, fieldName, extra, opts, tracker))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to build conversion request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("conversion request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read conversion response: %w", err)
	}

	var result model.ConversionResult
	if err := json.Unmarshal(payload, &result); err != nil {
		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("conversion request rejected: %s", resp.Status)
		}
		return nil, fmt.Errorf("malformed conversion response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if result.Error != "" {
			return nil, fmt.Errorf("conversion request rejected: %s", result.Error)
		}
		return nil, fmt.Errorf("conversion request rejected: %s", resp.Status)
	}

	return &result, nil
}

// writeForm streams every file and form field into the multipart writer,
// feeding the upload tracker as file bytes go out.
func writeForm(form *multipart.Writer, files []model.InputFile, fieldName string, extra map[string]string, opts ConvertOptions, tracker *uploadTracker) error {
	for _, file := range files {
		src, err := os.Open(file.Path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", file.Name, err)
		}

		part, err := form.CreateFormFile(fieldName, file.Name)
		if err != nil {
			src.Close()
			return err
		}
		if _, err := io.Copy(part, tracker.wrap(src)); err != nil {
			src.Close()
			return fmt.Errorf("failed to upload %s: %w", file.Name, err)
		}
		src.Close()
	}

	if opts.OutputFormat != "" {
		if err := form.WriteField(FieldOutputFormat, opts.OutputFormat); err != nil {
			return err
		}
	}
	for key, value := range opts.Params {
		if err := form.WriteField(key, value); err != nil {
			return err
		}
	}
	for key, value := range extra {
		if err := form.WriteField(key, value); err != nil {
			return err
		}
	}

	if err := form.Close(); err != nil {
		return err
	}
	tracker.finish()
	return nil
}
