package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// ErrNoImage means the model answered but produced no inline image part.
var ErrNoImage = errors.New("gemini response did not include an image part")

// GeminiImageClient talks to the generateContent endpoint of the Gemini image
// model over plain HTTP. The transport is injectable so callers can test the
// orchestration without real network access.
type GeminiImageClient struct {
	apiKey      string
	model       string
	baseURL     string
	httpClient  *http.Client
	contentType string
}

type ImageEditRequest struct {
	Image    []byte
	MimeType string
	Prompt   string
}

type ImageEditResult struct {
	Image     []byte
	MimeType  string
	ElapsedMs int64
}

func NewGeminiImageClient(apiKey, model string, httpClient *http.Client) *GeminiImageClient {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 90 * time.Second,
		}
	}
	if model == "" {
		model = "gemini-2.5-flash-image-preview"
	}
	return &GeminiImageClient{
		apiKey:      apiKey,
		model:       model,
		baseURL:     defaultBaseURL,
		httpClient:  httpClient,
		contentType: "application/json",
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *GeminiImageClient) SetBaseURL(u string) {
	c.baseURL = strings.TrimRight(u, "/")
}

// Edit sends the image plus prompt in a single generateContent call and
// returns the first inline image part of the response.
func (c *GeminiImageClient) Edit(ctx context.Context, req ImageEditRequest) (*ImageEditResult, error) {
	if c == nil {
		return nil, errors.New("gemini image client is nil")
	}
	if c.apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}
	if len(req.Image) == 0 {
		return nil, errors.New("image is required")
	}

	mimeType := strings.TrimSpace(req.MimeType)
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	parts := []map[string]interface{}{
		{
			"inline_data": map[string]string{
				"mime_type": mimeType,
				"data":      base64.StdEncoding.EncodeToString(req.Image),
			},
		},
		{"text": req.Prompt},
	}

	body := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": parts,
			},
		},
		"generationConfig": map[string]interface{}{
			"responseModalities": []string{"IMAGE", "TEXT"},
		},
	}

	payload, _ := json.Marshal(body)
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", c.contentType)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	resBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini status %d: %s", resp.StatusCode, truncate(string(resBody), 500))
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					InlineData *struct {
						MimeType string `json:"mimeType"`
						Data     string `json:"data"`
					} `json:"inlineData,omitempty"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(resBody, &parsed); err != nil {
		return nil, err
	}

	for _, cand := range parsed.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				img, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
				if err != nil {
					continue
				}
				outMime := part.InlineData.MimeType
				if outMime == "" {
					outMime = "image/png"
				}
				return &ImageEditResult{Image: img, MimeType: outMime, ElapsedMs: elapsed}, nil
			}
		}
	}

	return nil, ErrNoImage
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
