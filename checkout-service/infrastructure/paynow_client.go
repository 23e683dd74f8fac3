package infrastructure

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/paynow/checkout-system/checkout-service/domain"
	"github.com/paynow/checkout-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	paymentMethodsPath = "/v3/payments/paymentmethods"
	maxResponseBytes   = 1 << 20

	DefaultProductionURL = "https://api.paynow.pl"
	DefaultSandboxURL    = "https://api.sandbox.paynow.pl"
)

// PaynowClientConfig configures the Paynow API client
type PaynowClientConfig struct {
	ProductionURL string
	SandboxURL    string
	Timeout       time.Duration
	MaxRetries    int
	RetryDelay    time.Duration
	UserAgent     string
}

// PaynowClient implements domain.PaymentMethodsProvider against the Paynow v3 API
type PaynowClient struct {
	config     PaynowClientConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewPaynowClient creates a new PaynowClient. A nil httpClient gets a client bounded by config.Timeout.
func NewPaynowClient(config PaynowClientConfig, httpClient *http.Client, logger *zap.Logger) *PaynowClient {
	if config.ProductionURL == "" {
		config.ProductionURL = DefaultProductionURL
	}
	if config.SandboxURL == "" {
		config.SandboxURL = DefaultSandboxURL
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = 100 * time.Millisecond
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &PaynowClient{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
	}
}

type paynowPaymentMethod struct {
	ID                json.Number `json:"id"`
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	Image             string      `json:"image"`
	Status            string      `json:"status"`
	AuthorizationType string      `json:"authorizationType"`
}

type paynowPaymentMethodGroup struct {
	Type           string                `json:"type"`
	PaymentMethods []paynowPaymentMethod `json:"paymentMethods"`
}

type paynowErrorResponse struct {
	StatusCode int `json:"statusCode"`
	Errors     []struct {
		ErrorType string `json:"errorType"`
		Message   string `json:"message"`
	} `json:"errors"`
}

// GetPaymentMethods fetches the payment methods available for the request.
// Server errors and transport failures are retried; the idempotency key makes retries safe.
func (c *PaynowClient) GetPaymentMethods(ctx context.Context, credentials domain.Credentials, request domain.SelectionRequest) (*domain.MethodSet, error) {
	ctx, span := telemetry.StartSpan(ctx, "paynow.get_payment_methods",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("paynow.environment", credentials.Environment.String())),
	)
	defer span.End()

	params := paymentMethodsParameters(request)
	signature, err := calculateSignature(credentials.SignatureKey, signedHeaders{
		APIKey:         credentials.APIKey,
		IdempotencyKey: request.IdempotencyKey,
	}, params, "")
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL(credentials.Environment) + paymentMethodsPath
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	headers := http.Header{}
	headers.Set("Api-Key", credentials.APIKey)
	headers.Set("Idempotency-Key", request.IdempotencyKey)
	headers.Set("Signature", signature)
	headers.Set("Accept", "application/json")
	if c.config.UserAgent != "" {
		headers.Set("User-Agent", c.config.UserAgent)
	}

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.InitialInterval = c.config.RetryDelay
	retryBackoff.MaxInterval = c.config.RetryDelay * 4

	attempt := 0
	groups, err := backoff.Retry(ctx, func() ([]paynowPaymentMethodGroup, error) {
		attempt++
		groups, err := c.doRequest(ctx, endpoint, headers)
		if err != nil && attempt <= c.config.MaxRetries {
			c.logger.Debug("paynow request failed",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
		return groups, err
	},
		backoff.WithBackOff(retryBackoff),
		backoff.WithMaxTries(uint(c.config.MaxRetries+1)),
	)
	span.SetAttributes(attribute.Int("paynow.attempts", attempt))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return toMethodSet(groups), nil
}

func (c *PaynowClient) doRequest(ctx context.Context, endpoint string, headers http.Header) ([]paynowPaymentMethodGroup, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(errors.Wrap(err, "failed to create request"))
	}
	req.Header = headers.Clone()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		providerErr := domain.NewProviderError(0, "request failed", err)
		if ctx.Err() != nil {
			return nil, backoff.Permanent(providerErr)
		}
		return nil, providerErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, domain.NewProviderError(resp.StatusCode, "failed to read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		providerErr := domain.NewProviderError(resp.StatusCode, errorMessage(body, resp.StatusCode), nil)
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, providerErr
		}
		return nil, backoff.Permanent(providerErr)
	}

	var groups []paynowPaymentMethodGroup
	if err := json.Unmarshal(body, &groups); err != nil {
		return nil, backoff.Permanent(domain.NewProviderError(resp.StatusCode, "invalid response", err))
	}

	return groups, nil
}

func (c *PaynowClient) baseURL(environment domain.Environment) string {
	base := c.config.SandboxURL
	if environment == domain.EnvironmentProduction {
		base = c.config.ProductionURL
	}
	return strings.TrimRight(base, "/")
}

func paymentMethodsParameters(request domain.SelectionRequest) url.Values {
	params := url.Values{}
	if request.Amount != nil {
		params.Set("amount", strconv.FormatInt(*request.Amount, 10))
	}
	if request.Currency != nil {
		params.Set("currency", *request.Currency)
	}
	params.Set("applePayEnabled", strconv.FormatBool(request.ApplePayEnabled))
	if request.BuyerExternalID != nil {
		params.Set("externalBuyerId", *request.BuyerExternalID)
	}
	return params
}

func errorMessage(body []byte, statusCode int) string {
	var response paynowErrorResponse
	if err := json.Unmarshal(body, &response); err == nil && len(response.Errors) > 0 && response.Errors[0].Message != "" {
		return response.Errors[0].Message
	}
	return http.StatusText(statusCode)
}

func toMethodSet(groups []paynowPaymentMethodGroup) *domain.MethodSet {
	var methods []domain.PaymentMethod
	for _, group := range groups {
		for _, method := range group.PaymentMethods {
			methods = append(methods, domain.PaymentMethod{
				ID:                method.ID.String(),
				Name:              method.Name,
				Description:       method.Description,
				Image:             method.Image,
				Status:            domain.PaymentMethodStatus(method.Status),
				Type:              domain.NewPaymentMethodType(group.Type),
				AuthorizationType: method.AuthorizationType,
			})
		}
	}
	return domain.NewMethodSet(methods...)
}
