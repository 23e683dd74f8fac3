package infrastructure

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/url"

	"github.com/pkg/errors"
)

// signedHeaders are the request headers covered by the signature, in signing order
type signedHeaders struct {
	APIKey         string `json:"Api-Key"`
	IdempotencyKey string `json:"Idempotency-Key"`
}

type signaturePayload struct {
	Headers    signedHeaders       `json:"headers"`
	Parameters map[string][]string `json:"parameters"`
	Body       string              `json:"body"`
}

// calculateSignature signs a request the way Paynow v3 verifies it: a base64
// HMAC-SHA256 over the JSON document of signed headers, query parameters and body.
func calculateSignature(signatureKey string, headers signedHeaders, parameters url.Values, body string) (string, error) {
	payload := signaturePayload{
		Headers:    headers,
		Parameters: map[string][]string(parameters),
		Body:       body,
	}
	if payload.Parameters == nil {
		payload.Parameters = map[string][]string{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(payload); err != nil {
		return "", errors.Wrap(err, "failed to encode signature payload")
	}

	mac := hmac.New(sha256.New, []byte(signatureKey))
	mac.Write(bytes.TrimRight(buf.Bytes(), "\n"))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
