// Package ocr extracts text from scanned invoices through the OCR.space API.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const DefaultURL = "https://api.ocr.space/parse/image"

var ErrMissingAPIKey = errors.New("missing OCR API key")

type Client struct {
	url      string
	apiKey   string
	language string
	client   *http.Client
}

type Option func(*Client)

func WithURL(url string) Option {
	return func(c *Client) { c.url = url }
}

func WithLanguage(lang string) Option {
	return func(c *Client) { c.language = lang }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

func NewClient(apiKey string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		url:      DefaultURL,
		apiKey:   apiKey,
		language: "por",
		client:   &http.Client{Timeout: timeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type parsedResult struct {
	ParsedText   string `json:"ParsedText"`
	ErrorMessage string `json:"ErrorMessage"`
}

type parseResponse struct {
	ParsedResults         []parsedResult `json:"ParsedResults"`
	IsErroredOnProcessing bool           `json:"IsErroredOnProcessing"`
	ErrorMessage          any            `json:"ErrorMessage"`
}

// Extract uploads the file and returns the recognised text of every page,
// joined by newlines.
func (c *Client) Extract(ctx context.Context, filename string, r io.Reader) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	body, contentType, err := c.buildForm(filename, r)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	var parsed parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("OCR failed: status %d: decoding response: %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("OCR failed: status %d: %s", resp.StatusCode, errorMessage(parsed))
	}

	if parsed.IsErroredOnProcessing {
		return "", fmt.Errorf("OCR failed: %s", errorMessage(parsed))
	}

	texts := make([]string, 0, len(parsed.ParsedResults))
	for _, pr := range parsed.ParsedResults {
		texts = append(texts, pr.ParsedText)
	}

	return strings.Join(texts, "\n"), nil
}

func (c *Client) buildForm(filename string, r io.Reader) (io.Reader, string, error) {
	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"apikey", c.apiKey},
		{"language", c.language},
		{"isOverlayRequired", "false"},
		{"OCREngine", "2"},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("writing field %s: %w", f[0], err)
		}
	}

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", fmt.Errorf("creating file part: %w", err)
	}

	if _, err := io.Copy(part, r); err != nil {
		return nil, "", fmt.Errorf("copying file: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing form: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

// errorMessage flattens the API's ErrorMessage, which is a string or a list.
func errorMessage(p parseResponse) string {
	switch m := p.ErrorMessage.(type) {
	case string:
		if m != "" {
			return m
		}
	case []any:
		parts := make([]string, 0, len(m))
		for _, v := range m {
			parts = append(parts, fmt.Sprint(v))
		}

		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}

	for _, pr := range p.ParsedResults {
		if pr.ErrorMessage != "" {
			return pr.ErrorMessage
		}
	}

	return "unknown error"
}
