package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"resumeshot-backend/internal/model"
	"resumeshot-backend/internal/repository"
)

type GenerationLogHandler struct {
	repo repository.GenerationRepository
}

func NewGenerationLogHandler(repo repository.GenerationRepository) *GenerationLogHandler {
	return &GenerationLogHandler{repo: repo}
}

type generationRecordResponse struct {
	RequestID   string `json:"requestId"`
	MimeType    string `json:"mimeType"`
	SizeBytes   int64  `json:"sizeBytes"`
	Gender      string `json:"gender"`
	AspectRatio string `json:"aspectRatio"`
	PaymentMode string `json:"paymentMode"`
	Status      string `json:"status"`
	ErrorClass  string `json:"errorClass,omitempty"`
	ElapsedMs   int64  `json:"elapsedMs"`
	CreatedAt   string `json:"createdAt"`
}

func toGenerationRecordResponse(r *model.GenerationRecord) generationRecordResponse {
	return generationRecordResponse{
		RequestID:   r.RequestID,
		MimeType:    r.MimeType,
		SizeBytes:   r.SizeBytes,
		Gender:      r.Gender,
		AspectRatio: r.AspectRatio,
		PaymentMode: r.PaymentMode,
		Status:      string(r.Status),
		ErrorClass:  r.ErrorClass,
		ElapsedMs:   r.ElapsedMs,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

// ListRecent returns the latest attempt metadata for operators. Returns 503
// while no database is attached.
func (h *GenerationLogHandler) ListRecent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	list, err := h.repo.ListRecent(c.Request().Context(), limit)
	if err != nil {
		if errors.Is(err, repository.ErrDBNotReady) {
			return c.JSON(http.StatusServiceUnavailable, NewErrorResponse("ledger_unavailable", "generation ledger is not attached"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch generation records"))
	}
	resp := make([]generationRecordResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toGenerationRecordResponse(&list[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
