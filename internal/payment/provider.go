// Package payment models the optional checkout gate as one provider with
// three mutually exclusive modes. The widget itself runs client-side; the
// backend only publishes its parameters and never verifies amounts.
package payment

import (
	"fmt"
	"net/url"
)

type Mode string

const (
	ModeDisabled         Mode = "disabled"
	ModeEmbeddedCheckout Mode = "embedded-checkout"
	ModeHostedButton     Mode = "hosted-button"
)

const sdkBaseURL = "https://www.paypal.com/sdk/js"

type Provider struct {
	mode           Mode
	clientID       string
	hostedButtonID string
	currency       string
	price          int
}

// ClientConfig is what the frontend needs to render (or skip) the widget.
type ClientConfig struct {
	PaymentEnabled       bool   `json:"paymentEnabled"`
	Mode                 string `json:"mode"`
	Price                int    `json:"price"`
	Currency             string `json:"currency"`
	PayPalClientID       string `json:"paypalClientId,omitempty"`
	PayPalHostedButtonID string `json:"paypalHostedButtonId,omitempty"`
	SDKURL               string `json:"sdkUrl,omitempty"`
}

// New validates the configured mode. Enabled modes require a client ID and
// the hosted mode additionally a hosted button ID; the caller treats a
// returned error as fatal at startup.
func New(mode, clientID, hostedButtonID, currency string, price int) (*Provider, error) {
	m := Mode(mode)
	switch m {
	case ModeDisabled:
	case ModeEmbeddedCheckout, ModeHostedButton:
		if clientID == "" {
			return nil, fmt.Errorf("payment mode %s requires a PayPal client id", m)
		}
		if m == ModeHostedButton && hostedButtonID == "" {
			return nil, fmt.Errorf("payment mode %s requires a PayPal hosted button id", m)
		}
	default:
		return nil, fmt.Errorf("unknown payment mode %q", mode)
	}
	if price <= 0 {
		price = 500
	}
	if currency == "" {
		currency = "KRW"
	}
	return &Provider{mode: m, clientID: clientID, hostedButtonID: hostedButtonID, currency: currency, price: price}, nil
}

func (p *Provider) Mode() Mode {
	return p.mode
}

func (p *Provider) Enabled() bool {
	return p.mode != ModeDisabled
}

func (p *Provider) ClientConfig() ClientConfig {
	cfg := ClientConfig{
		PaymentEnabled: p.Enabled(),
		Mode:           string(p.mode),
		Price:          p.price,
		Currency:       p.currency,
	}
	if !p.Enabled() {
		return cfg
	}
	cfg.PayPalClientID = p.clientID
	if p.mode == ModeHostedButton {
		cfg.PayPalHostedButtonID = p.hostedButtonID
	}
	cfg.SDKURL = p.sdkURL()
	return cfg
}

func (p *Provider) sdkURL() string {
	q := url.Values{}
	q.Set("client-id", p.clientID)
	q.Set("currency", p.currency)
	q.Set("disable-funding", "card")
	if p.mode == ModeHostedButton {
		q.Set("components", "hosted-buttons")
	}
	return sdkBaseURL + "?" + q.Encode()
}
