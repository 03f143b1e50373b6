package handler

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/labstack/echo/v4"

	"resumeshot-backend/internal/ai"
	"resumeshot-backend/internal/upload"
)

// PhotoChecker is the advisory suitability call, injected for testability.
type PhotoChecker interface {
	Assess(ctx context.Context, image []byte, mimeType string) (*ai.PhotoCheck, error)
}

type PrecheckHandler struct {
	checker PhotoChecker
}

func NewPrecheckHandler(checker PhotoChecker) *PrecheckHandler {
	return &PrecheckHandler{checker: checker}
}

type precheckRequest struct {
	ImageBase64 string `json:"imageBase64"`
	MimeType    string `json:"mimeType"`
}

// Check rates the uploaded photo as headshot source material. Advisory only:
// the frontend shows hints but never blocks generation on a failure here.
func (h *PrecheckHandler) Check(c echo.Context) error {
	var req precheckRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.ImageBase64 == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("missing_parameter", "missing required parameter: imageBase64"))
	}
	if req.MimeType == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("missing_parameter", "missing required parameter: mimeType"))
	}

	image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid_image", "이미지 데이터를 해석할 수 없습니다."))
	}
	if err := upload.Validate(req.MimeType, int64(len(image))); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}

	check, err := h.checker.Assess(c.Request().Context(), image, req.MimeType)
	if err != nil {
		return c.JSON(http.StatusBadGateway, NewErrorResponse("precheck_failed", "사진 적합도 확인에 실패했습니다."))
	}
	return c.JSON(http.StatusOK, check)
}
