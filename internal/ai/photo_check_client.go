package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

// PhotoCheckClient asks a text-capable Gemini model whether an uploaded photo
// is a good starting point for a resume headshot. The verdict is advisory:
// callers must never block generation on its failure.
type PhotoCheckClient struct {
	apiKey string
	model  string
}

type PhotoCheck struct {
	Score int      `json:"score"`
	Hints []string `json:"hints"`
}

func NewPhotoCheckClient(apiKey, model string) *PhotoCheckClient {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &PhotoCheckClient{apiKey: apiKey, model: model}
}

const photoCheckPrompt = `You are a photo reviewer for an AI resume-headshot service.
Rate how suitable the attached photo is as source material for a professional
headshot edit. Consider: a single clearly visible face, frontal gaze, no glare
on glasses, visible forehead and hairline, sharp focus, adequate lighting.
First line: the score only, as $<number>$ where <number> is an integer 0-100.
Then up to three short hint lines in Korean telling the user how to improve
the photo. No other text.`

// Assess sends the photo and returns the parsed suitability verdict.
func (c *PhotoCheckClient) Assess(ctx context.Context, image []byte, mimeType string) (*PhotoCheck, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	start := time.Now()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[precheck] stage=client_init err=%v", err)
		return nil, err
	}

	mime := strings.TrimSpace(mimeType)
	if mime == "" {
		mime = "image/jpeg"
	}
	parts := []*genai.Part{
		genai.NewPartFromText(photoCheckPrompt),
		genai.NewPartFromBytes(image, mime),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	temp := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}

	genStart := time.Now()
	log.Printf("[precheck] stage=gemini_start model=%s bytes=%d", c.model, len(image))
	res, err := client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		log.Printf("[precheck] stage=gemini_fail model=%s err=%v", c.model, err)
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	genDur := time.Since(genStart)

	rawText := res.Text()
	score, hints, err := ParseSuitability(rawText)
	if err != nil {
		text := strings.ReplaceAll(rawText, "\n", " ")
		if len(text) > 80 {
			text = text[:80]
		}
		log.Printf("[precheck] stage=parse_fail len=%d text=%q err=%v", len(rawText), text, err)
		return nil, err
	}
	log.Printf("[precheck] stage=parse_ok score=%d hints=%d genMs=%d totalMs=%d",
		score, len(hints), genDur.Milliseconds(), time.Since(start).Milliseconds())
	return &PhotoCheck{Score: score, Hints: hints}, nil
}
