package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"resumeshot-backend/internal/ai"
	"resumeshot-backend/internal/service"
	"resumeshot-backend/internal/upload"
)

type GenerateHandler struct {
	svc *service.GenerationService
}

func NewGenerateHandler(svc *service.GenerationService) *GenerateHandler {
	return &GenerateHandler{svc: svc}
}

type generateRequest struct {
	ImageBase64      string `json:"imageBase64"`
	MimeType         string `json:"mimeType"`
	Gender           string `json:"gender"`
	SuitPrompt       string `json:"suitPrompt"`
	BackgroundPrompt string `json:"backgroundPrompt"`
	FramingPrompt    string `json:"framingPrompt"`
	AnglePrompt      string `json:"anglePrompt"`
	ExpressionPrompt string `json:"expressionPrompt"`
	RetouchingPrompt string `json:"retouchingPrompt"`
	SpecialRequest   string `json:"specialRequest"`
	AspectRatio      string `json:"aspectRatio"`
	Consent          bool   `json:"consent"`
}

type generateResponse struct {
	RequestID string `json:"requestId"`
	DataURL   string `json:"dataUrl"`
	Filename  string `json:"filename"`
	ElapsedMs int64  `json:"elapsedMs"`
}

func (h *GenerateHandler) Generate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}

	res, err := h.svc.Generate(c.Request().Context(), service.GenerateRequest{
		ImageBase64: req.ImageBase64,
		MimeType:    req.MimeType,
		Consent:     req.Consent,
		Options: ai.GenerationOptions{
			Gender:           req.Gender,
			SuitPrompt:       req.SuitPrompt,
			BackgroundPrompt: req.BackgroundPrompt,
			FramingPrompt:    req.FramingPrompt,
			AnglePrompt:      req.AnglePrompt,
			ExpressionPrompt: req.ExpressionPrompt,
			RetouchingPrompt: req.RetouchingPrompt,
			SpecialRequest:   req.SpecialRequest,
			AspectRatio:      req.AspectRatio,
		},
	})
	if err != nil {
		return h.writeError(c, err)
	}

	c.Response().Header().Set("X-Request-Id", res.RequestID)
	return c.JSON(http.StatusOK, generateResponse{
		RequestID: res.RequestID,
		DataURL:   res.DataURI,
		Filename:  res.Filename,
		ElapsedMs: res.ElapsedMs,
	})
}

// writeError maps the service taxonomy onto HTTP. Validation errors carry
// their reason; upstream errors stay generic because provider detail is
// already in the server log.
func (h *GenerateHandler) writeError(c echo.Context, err error) error {
	var missing *service.MissingParameterError
	switch {
	case errors.As(err, &missing):
		return c.JSON(http.StatusBadRequest, NewErrorResponse("missing_parameter", missing.Error()))
	case errors.Is(err, service.ErrConsentRequired):
		return c.JSON(http.StatusBadRequest, NewErrorResponse("consent_required", "사진 사용에 동의해야 합니다."))
	case errors.Is(err, upload.ErrUnsupportedFormat):
		return c.JSON(http.StatusBadRequest, NewErrorResponse("unsupported_format", "지원하지 않는 파일 형식입니다. (JPG, PNG, HEIC, WEBP)"))
	case errors.Is(err, upload.ErrTooLarge):
		return c.JSON(http.StatusBadRequest, NewErrorResponse("file_too_large", "파일 크기는 5MB를 초과할 수 없습니다."))
	case errors.Is(err, service.ErrInvalidImage):
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid_image", "이미지 데이터를 해석할 수 없습니다."))
	case errors.Is(err, service.ErrNoImage):
		return c.JSON(http.StatusBadGateway, NewErrorResponse("no_image", "AI 모델로부터 이미지를 생성하지 못했습니다."))
	default:
		return c.JSON(http.StatusBadGateway, NewErrorResponse("generation_failed", "사진 생성에 실패했습니다. 잠시 후 다시 시도하거나, 다른 사진을 사용해보세요."))
	}
}
