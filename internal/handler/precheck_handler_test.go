package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"resumeshot-backend/internal/ai"
)

type stubChecker struct {
	calls  int
	result *ai.PhotoCheck
	err    error
}

func (s *stubChecker) Assess(ctx context.Context, image []byte, mimeType string) (*ai.PhotoCheck, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func doPrecheck(t *testing.T, checker *stubChecker, body map[string]interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	h := NewPrecheckHandler(checker)

	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/precheck", strings.NewReader(string(raw)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Check(c); err != nil {
		t.Fatalf("handler returned err: %v", err)
	}
	var parsed map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &parsed)
	return rec, parsed
}

func validPrecheckBody() map[string]interface{} {
	return map[string]interface{}{
		"imageBase64": base64.StdEncoding.EncodeToString([]byte("fake-jpeg")),
		"mimeType":    "image/jpeg",
	}
}

func TestPrecheckSuccess(t *testing.T) {
	checker := &stubChecker{result: &ai.PhotoCheck{Score: 85, Hints: []string{"이마가 잘 보이도록 해주세요."}}}
	rec, parsed := doPrecheck(t, checker, validPrecheckBody())

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d want=200 body=%s", rec.Code, rec.Body.String())
	}
	if score, _ := parsed["score"].(float64); int(score) != 85 {
		t.Fatalf("score=%v want=85", parsed["score"])
	}
	hints, _ := parsed["hints"].([]interface{})
	if len(hints) != 1 {
		t.Fatalf("hints=%v", parsed["hints"])
	}
}

func TestPrecheckMissingParameters(t *testing.T) {
	tests := []struct {
		name  string
		field string
	}{
		{"image", "imageBase64"},
		{"mime", "mimeType"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := &stubChecker{}
			body := validPrecheckBody()
			delete(body, tt.field)
			rec, parsed := doPrecheck(t, checker, body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status=%d want=400", rec.Code)
			}
			if errorCode(t, parsed) != "missing_parameter" {
				t.Fatalf("code=%s", errorCode(t, parsed))
			}
			errObj := parsed["error"].(map[string]interface{})
			if msg, _ := errObj["message"].(string); !strings.Contains(msg, tt.field) {
				t.Fatalf("message must name the field: %q", msg)
			}
			if checker.calls != 0 {
				t.Fatalf("validation errors must not reach the upstream")
			}
		})
	}
}

func TestPrecheckInvalidBase64(t *testing.T) {
	checker := &stubChecker{}
	body := validPrecheckBody()
	body["imageBase64"] = "not base64 at all!!!"
	rec, parsed := doPrecheck(t, checker, body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=400", rec.Code)
	}
	if errorCode(t, parsed) != "invalid_image" {
		t.Fatalf("code=%s", errorCode(t, parsed))
	}
	if checker.calls != 0 {
		t.Fatalf("undecodable payload must not reach the upstream")
	}
}

func TestPrecheckUploadValidation(t *testing.T) {
	t.Run("unsupported format", func(t *testing.T) {
		checker := &stubChecker{}
		body := validPrecheckBody()
		body["mimeType"] = "image/gif"
		rec, _ := doPrecheck(t, checker, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status=%d want=400", rec.Code)
		}
		if checker.calls != 0 {
			t.Fatalf("rejected upload must not reach the upstream")
		}
	})
	t.Run("file too large", func(t *testing.T) {
		checker := &stubChecker{}
		body := validPrecheckBody()
		body["imageBase64"] = base64.StdEncoding.EncodeToString(make([]byte, 6*1024*1024))
		rec, _ := doPrecheck(t, checker, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status=%d want=400", rec.Code)
		}
		if checker.calls != 0 {
			t.Fatalf("rejected upload must not reach the upstream")
		}
	})
}

func TestPrecheckUpstreamFailureIsGeneric(t *testing.T) {
	checker := &stubChecker{err: errors.New("gemini status 500: internal provider detail")}
	rec, parsed := doPrecheck(t, checker, validPrecheckBody())

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status=%d want=502", rec.Code)
	}
	if errorCode(t, parsed) != "precheck_failed" {
		t.Fatalf("code=%s", errorCode(t, parsed))
	}
	if strings.Contains(rec.Body.String(), "provider detail") {
		t.Fatalf("provider detail leaked to the client: %s", rec.Body.String())
	}
}
