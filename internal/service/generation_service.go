package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumeshot-backend/internal/ai"
	"resumeshot-backend/internal/model"
	"resumeshot-backend/internal/repository"
	"resumeshot-backend/internal/upload"
)

var (
	ErrConsentRequired = errors.New("consent required")
	ErrInvalidImage    = errors.New("invalid image payload")
	// ErrNoImage is the "no image produced" class: the model answered but
	// returned no image part. Never retried automatically.
	ErrNoImage = errors.New("no image produced")
	// ErrUpstream is the generic "generation failed" class. The user-facing
	// message stays generic; detail goes to the operator log only.
	ErrUpstream = errors.New("generation failed")
)

// MissingParameterError names the first absent required field. Surfaced
// before any network call.
type MissingParameterError struct {
	Field string
}

func (e *MissingParameterError) Error() string {
	return "missing required parameter: " + e.Field
}

// ImageEditor is the outbound AI call, injected for testability.
type ImageEditor interface {
	Edit(ctx context.Context, req ai.ImageEditRequest) (*ai.ImageEditResult, error)
}

type GenerateRequest struct {
	ImageBase64 string
	MimeType    string
	Consent     bool
	Options     ai.GenerationOptions
}

type GenerateResult struct {
	RequestID string
	DataURI   string
	Filename  string
	ElapsedMs int64
}

type GenerationService struct {
	editor      ImageEditor
	repo        repository.GenerationRepository
	paymentMode string
	now         func() time.Time
}

func NewGenerationService(editor ImageEditor, repo repository.GenerationRepository, paymentMode string) *GenerationService {
	return &GenerationService{
		editor:      editor,
		repo:        repo,
		paymentMode: paymentMode,
		now:         time.Now,
	}
}

// Generate runs one orchestration attempt: validate, build the prompt, issue
// exactly one upstream call, decode the returned image into a data URI.
// Validation failures return before any network traffic.
func (s *GenerationService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if !req.Consent {
		return nil, ErrConsentRequired
	}
	if err := checkRequired(req); err != nil {
		return nil, err
	}

	image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if err := upload.Validate(req.MimeType, int64(len(image))); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	prompt := ai.BuildResumePrompt(req.Options)

	res, err := s.editor.Edit(ctx, ai.ImageEditRequest{
		Image:    image,
		MimeType: req.MimeType,
		Prompt:   prompt,
	})
	if err != nil {
		class := ErrUpstream
		if errors.Is(err, ai.ErrNoImage) {
			class = ErrNoImage
		}
		log.Printf("[generate] rid=%s stage=upstream_fail err=%v", requestID, err)
		s.record(ctx, requestID, req, len(image), model.GenerationStatusFailed, class, 0)
		return nil, class
	}

	dataURI := "data:" + res.MimeType + ";base64," + base64.StdEncoding.EncodeToString(res.Image)
	s.record(ctx, requestID, req, len(image), model.GenerationStatusOK, nil, res.ElapsedMs)
	log.Printf("[generate] rid=%s stage=done bytes=%d elapsedMs=%d", requestID, len(res.Image), res.ElapsedMs)

	return &GenerateResult{
		RequestID: requestID,
		DataURI:   dataURI,
		Filename:  DownloadFilename(s.now()),
		ElapsedMs: res.ElapsedMs,
	}, nil
}

// DownloadFilename derives the suggested save name for a generated photo.
func DownloadFilename(t time.Time) string {
	return "resume_photo_" + t.Format("20060102_150405") + ".png"
}

var requiredFields = []struct {
	name string
	get  func(GenerateRequest) string
}{
	{"imageBase64", func(r GenerateRequest) string { return r.ImageBase64 }},
	{"mimeType", func(r GenerateRequest) string { return r.MimeType }},
	{"gender", func(r GenerateRequest) string { return r.Options.Gender }},
	{"suitPrompt", func(r GenerateRequest) string { return r.Options.SuitPrompt }},
	{"backgroundPrompt", func(r GenerateRequest) string { return r.Options.BackgroundPrompt }},
	{"framingPrompt", func(r GenerateRequest) string { return r.Options.FramingPrompt }},
	{"anglePrompt", func(r GenerateRequest) string { return r.Options.AnglePrompt }},
	{"expressionPrompt", func(r GenerateRequest) string { return r.Options.ExpressionPrompt }},
	{"retouchingPrompt", func(r GenerateRequest) string { return r.Options.RetouchingPrompt }},
}

func checkRequired(req GenerateRequest) error {
	for _, f := range requiredFields {
		if strings.TrimSpace(f.get(req)) == "" {
			return &MissingParameterError{Field: f.name}
		}
	}
	return nil
}

func (s *GenerationService) record(ctx context.Context, requestID string, req GenerateRequest, sizeBytes int, status model.GenerationStatus, class error, elapsedMs int64) {
	if s.repo == nil || !s.repo.Ready() {
		return
	}
	rec := &model.GenerationRecord{
		RequestID:         requestID,
		MimeType:          req.MimeType,
		SizeBytes:         int64(sizeBytes),
		Gender:            req.Options.Gender,
		AspectRatio:       req.Options.AspectRatio,
		SpecialRequestLen: len(strings.TrimSpace(req.Options.SpecialRequest)),
		PaymentMode:       s.paymentMode,
		Status:            status,
		ElapsedMs:         elapsedMs,
	}
	if class != nil {
		rec.ErrorClass = errorClass(class)
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		log.Printf("[generate] rid=%s stage=ledger_fail err=%v", requestID, err)
	}
}

func errorClass(err error) string {
	switch {
	case errors.Is(err, ErrNoImage):
		return "no_image"
	default:
		return "generation_failed"
	}
}
