package removebg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const defaultURL = "https://api.remove.bg/v1.0/removebg"

const defaultTimeout = 30 * time.Second

var _ Remover = (*Client)(nil)

// Remover removes the background from an image referenced by a local file,
// a URL or a base64-encoded string.
type Remover interface {
	RemoveFromFile(ctx context.Context, path string, options *Options) (*Result, error)
	RemoveFromURL(ctx context.Context, url string, options *Options) (*Result, error)
	RemoveFromBase64(ctx context.Context, data string, options *Options) (*Result, error)
}

type Client struct {
	client *http.Client

	url   string
	token string

	timeout time.Duration

	errors *errorLog
}

// New creates a client for the given API key. Remote and transport failures
// are appended to the log file at logPath in addition to being returned.
func New(token, logPath string, options ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("invalid token")
	}

	if logPath == "" {
		return nil, errors.New("invalid error log path")
	}

	c := &Client{
		client: http.DefaultClient,

		url:   defaultURL,
		token: token,

		timeout: defaultTimeout,

		errors: &errorLog{path: logPath},
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

type payload struct {
	fileName    string
	fileContent []byte

	imageURL string
	imageB64 string
}

func (c *Client) RemoveFromFile(ctx context.Context, path string, options *Options) (*Result, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return c.send(ctx, payload{fileName: filepath.Base(path), fileContent: data}, options)
}

func (c *Client) RemoveFromURL(ctx context.Context, url string, options *Options) (*Result, error) {
	if url == "" {
		return nil, errors.New("invalid image url")
	}

	return c.send(ctx, payload{imageURL: url}, options)
}

func (c *Client) RemoveFromBase64(ctx context.Context, data string, options *Options) (*Result, error) {
	if data == "" {
		return nil, errors.New("invalid image data")
	}

	return c.send(ctx, payload{imageB64: data}, options)
}

func (c *Client) send(ctx context.Context, input payload, options *Options) (*Result, error) {
	opts, err := resolveOptions(options)

	if err != nil {
		return nil, err
	}

	var data bytes.Buffer
	w := multipart.NewWriter(&data)

	if input.fileName != "" {
		file, err := w.CreateFormFile("image_file", input.fileName)

		if err != nil {
			return nil, err
		}

		if _, err := file.Write(input.fileContent); err != nil {
			return nil, err
		}
	}

	if input.imageURL != "" {
		w.WriteField("image_url", input.imageURL)
	}

	if input.imageB64 != "" {
		w.WriteField("image_file_b64", input.imageB64)
	}

	if err := opts.encode(w); err != nil {
		return nil, err
	}

	w.Close()

	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &data)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Api-Key", c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		if logErr := c.errors.append(opts.OutputFile, 0, err.Error()); logErr != nil {
			return nil, logErr
		}

		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respErr := convertError(resp)

		if logErr := c.errors.append(opts.OutputFile, respErr.Status, respErr.Reason); logErr != nil {
			return nil, logErr
		}

		return nil, respErr
	}

	content, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(opts.OutputFile, content, 0644); err != nil {
		return nil, err
	}

	return &Result{
		ID:   uuid.NewString(),
		Name: opts.OutputFile,

		Content:     content,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func convertError(resp *http.Response) *ResponseError {
	result := &ResponseError{
		Status: resp.StatusCode,
		Reason: http.StatusText(resp.StatusCode),
	}

	var payload errorResponse

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return result
	}

	if len(payload.Errors) > 0 {
		if title := payload.Errors[0].Title; title != "" {
			result.Reason = title
		} else if detail := payload.Errors[0].Detail; detail != "" {
			result.Reason = detail
		}
	}

	return result
}
