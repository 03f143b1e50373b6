package config

import (
	"os"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GEMINI_API_KEY", "GEMINI_IMAGE_MODEL", "GEMINI_CHECK_MODEL",
		"GENERATE_TIMEOUT", "PAYMENT_MODE", "PAYPAL_CLIENT_ID",
		"PAYPAL_HOSTED_BUTTON_ID", "PRICE_KRW",
		"CURRENCY", "STATIC_DIR", "DB_USER", "DB_PASSWORD", "DB_HOST",
		"DB_NAME", "DB_PORT", "INSTANCE_CONNECTION_NAME",
	} {
		// t.Setenv registers the restore, Unsetenv makes the var truly absent
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port=%s want=8080", cfg.Port)
	}
	if cfg.GeminiImageModel != "gemini-2.5-flash-image-preview" {
		t.Errorf("image model=%s", cfg.GeminiImageModel)
	}
	if cfg.GenerateTimeout != 90*time.Second {
		t.Errorf("timeout=%s want=90s", cfg.GenerateTimeout)
	}
	if cfg.PaymentMode != "disabled" {
		t.Errorf("payment mode=%s want=disabled", cfg.PaymentMode)
	}
	if cfg.PriceKRW != 500 || cfg.Currency != "KRW" {
		t.Errorf("price=%d currency=%s", cfg.PriceKRW, cfg.Currency)
	}
	if cfg.HasDB() {
		t.Errorf("no DB settings were provided")
	}
}

func TestLoadRequiresGeminiKey(t *testing.T) {
	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Fatalf("expected an error when GEMINI_API_KEY is absent")
	}
}

func TestLoadPaymentValidation(t *testing.T) {
	tests := []struct {
		name           string
		mode           string
		clientID       string
		hostedButtonID string
		wantErr        bool
	}{
		{"disabled needs nothing", "disabled", "", "", false},
		{"embedded needs client id", "embedded-checkout", "", "", true},
		{"embedded with client id", "embedded-checkout", "pp-client", "", false},
		{"hosted needs client id", "hosted-button", "", "HB123", true},
		{"hosted needs button id", "hosted-button", "pp-client", "", true},
		{"hosted fully configured", "hosted-button", "pp-client", "HB123", false},
		{"unknown mode", "stripe", "pp-client", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("GEMINI_API_KEY", "test-key")
			t.Setenv("PAYMENT_MODE", tt.mode)
			if tt.clientID != "" {
				t.Setenv("PAYPAL_CLIENT_ID", tt.clientID)
			}
			if tt.hostedButtonID != "" {
				t.Setenv("PAYPAL_HOSTED_BUTTON_ID", tt.hostedButtonID)
			}

			_, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GENERATE_TIMEOUT", "0s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected an error for a zero timeout")
	}
}

func TestHasDB(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_NAME", "resumeshot")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !cfg.HasDB() {
		t.Fatalf("all three DB settings are present")
	}
}
