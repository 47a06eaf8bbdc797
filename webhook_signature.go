package voicenotes

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// signaturePrefix is the optional scheme prefix on inbound signature headers.
const signaturePrefix = "sha256="

// signatureConfig holds the optional components of the signing string.
type signatureConfig struct {
	timestamp  string
	deliveryID string
}

// SignatureOption configures signature computation and validation.
type SignatureOption func(*signatureConfig)

// WithSignatureTimestamp includes the delivery timestamp in the signing
// string. The same timestamp used to sign must be supplied to validate.
func WithSignatureTimestamp(timestamp string) SignatureOption {
	return func(c *signatureConfig) {
		c.timestamp = timestamp
	}
}

// WithSignatureDeliveryID includes the delivery id in the signing string.
// It only takes effect together with a timestamp.
func WithSignatureDeliveryID(deliveryID string) SignatureOption {
	return func(c *signatureConfig) {
		c.deliveryID = deliveryID
	}
}

// WebhookValidator verifies webhook delivery signatures offline. It holds
// the webhook's shared signing secret, never logs it, and never talks to
// the network.
type WebhookValidator struct {
	secret []byte
}

// NewWebhookValidator creates a validator for the given signing secret.
func NewWebhookValidator(secret string) (*WebhookValidator, error) {
	if secret == "" {
		return nil, ErrMissingWebhookSecret
	}
	return &WebhookValidator{secret: []byte(secret)}, nil
}

// signingString builds the canonical string the HMAC is computed over:
//
//	"{timestamp}.{deliveryId}.{payload}" when both are set,
//	"{timestamp}.{payload}" with only a timestamp,
//	"{payload}" otherwise.
func signingString(payload string, cfg *signatureConfig) string {
	switch {
	case cfg.timestamp != "" && cfg.deliveryID != "":
		return cfg.timestamp + "." + cfg.deliveryID + "." + payload
	case cfg.timestamp != "":
		return cfg.timestamp + "." + payload
	default:
		return payload
	}
}

// ComputeSignature returns the lowercase hex HMAC-SHA256 digest of the
// canonical signing string.
func (v *WebhookValidator) ComputeSignature(payload string, opts ...SignatureOption) string {
	cfg := &signatureConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(signingString(payload, cfg)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Validate reports whether signature matches the payload. The signature
// may carry a leading "sha256=" prefix. Validation never returns an error:
// malformed, truncated, or oversized signatures simply compare unequal,
// so a webhook receiver cannot be crashed by attacker-supplied input.
// The comparison is constant-time.
func (v *WebhookValidator) Validate(payload, signature string, opts ...SignatureOption) bool {
	provided := strings.TrimPrefix(signature, signaturePrefix)
	expected := v.ComputeSignature(payload, opts...)
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}
