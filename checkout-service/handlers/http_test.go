package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/paynow/checkout-system/checkout-service/application"
	"github.com/paynow/checkout-system/checkout-service/domain"
	"github.com/paynow/checkout-system/checkout-service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testStoreID = "default"

func configuredStore() *domain.StoreConfiguration {
	return &domain.StoreConfiguration{
		StoreID: testStoreID,
		Credentials: domain.Credentials{
			Environment:  domain.EnvironmentSandbox,
			APIKey:       "api-key",
			SignatureKey: "signature-key",
		},
		MainActive: true,
		BlikActive: true,
	}
}

func providerResult() *domain.MethodSet {
	return domain.NewMethodSet(
		domain.PaymentMethod{ID: "1", Name: "Karta", Type: domain.PaymentMethodTypeCard, Status: domain.PaymentMethodStatusEnabled},
		domain.PaymentMethod{ID: "2", Name: "BLIK", Type: domain.PaymentMethodTypeBlik, Status: domain.PaymentMethodStatusEnabled},
		domain.PaymentMethod{ID: "3", Name: "mBank", Type: domain.PaymentMethodTypePBL, Status: domain.PaymentMethodStatusEnabled},
	)
}

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockStoreConfigurationRepository, *mocks.MockPaymentMethodsProvider) {
	repo := mocks.NewMockStoreConfigurationRepository(t)
	provider := mocks.NewMockPaymentMethodsProvider(t)
	publisher := mocks.NewMockPublisher(t)
	logger := zap.NewNop()

	h := NewCheckoutHandlers(
		application.NewPaymentMethodSelector(repo, provider, publisher, logger),
		application.NewGetCheckoutConfig(repo, logger),
		logger,
	)

	r := chi.NewRouter()
	r.Route("/api/v1", h.RegisterRoutes)
	return r, repo, provider
}

func TestCheckoutHandlers_ListPaymentMethods(t *testing.T) {
	router, repo, provider := newTestRouter(t)
	repo.EXPECT().FindByStoreID(mock.Anything, testStoreID).Return(configuredStore(), nil).Once()
	provider.EXPECT().GetPaymentMethods(mock.Anything, mock.Anything, mock.MatchedBy(func(req domain.SelectionRequest) bool {
		return req.ApplePayEnabled &&
			req.Amount != nil && *req.Amount == 12999 &&
			req.Currency != nil && *req.Currency == "PLN" &&
			req.BuyerExternalID != nil
	})).Return(providerResult(), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/default/payment-methods?currency=PLN&amount=129.99&cart_id=42", nil)
	req.Header.Set(CustomerIDHeader, "7")
	req.AddCookie(&http.Cookie{Name: ApplePayCookieName, Value: "1"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "2", body[0]["id"])
	assert.Equal(t, "3", body[1]["id"])
	assert.Equal(t, true, body[1]["enabled"])
	assert.NotContains(t, body[0], "type")
}

func TestCheckoutHandlers_ListPaymentMethods_NotConfigured(t *testing.T) {
	router, repo, _ := newTestRouter(t)
	repo.EXPECT().FindByStoreID(mock.Anything, testStoreID).Return(nil, nil).Once()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stores/default/payment-methods?cart_id=42", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCheckoutHandlers_InvalidAmount(t *testing.T) {
	router, _, _ := newTestRouter(t)

	for _, amount := range []string{"abc", "-1.00", "1e30"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stores/default/payment-methods?cart_id=42&amount="+amount, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, amount)
	}
}

func TestCheckoutHandlers_MissingCartID(t *testing.T) {
	router, _, _ := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/stores/default/payment-methods?currency=PLN&amount=129.99",
		"/api/v1/stores/default/payment-methods?cart_id=%20%20",
		"/api/v1/stores/default/payment-methods/blik",
		"/api/v1/stores/default/payment-methods/card?cart_id=",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestCheckoutHandlers_GatewayMethods(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		result         *domain.MethodSet
		expectedStatus int
		expectedID     string
	}{
		{
			name:           "blik found",
			path:           "/api/v1/stores/default/payment-methods/blik?cart_id=42",
			result:         providerResult(),
			expectedStatus: http.StatusOK,
			expectedID:     "2",
		},
		{
			name:           "card found",
			path:           "/api/v1/stores/default/payment-methods/card?cart_id=42",
			result:         providerResult(),
			expectedStatus: http.StatusOK,
			expectedID:     "1",
		},
		{
			name:           "card absent",
			path:           "/api/v1/stores/default/payment-methods/card?cart_id=42",
			result:         domain.NewMethodSet(),
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo, provider := newTestRouter(t)
			repo.EXPECT().FindByStoreID(mock.Anything, testStoreID).Return(configuredStore(), nil).Once()
			provider.EXPECT().GetPaymentMethods(mock.Anything, mock.Anything, mock.Anything).Return(tt.result, nil).Once()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedID == "" {
				return
			}
			var body application.PaymentMethodResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedID, body.ID)
		})
	}
}

func TestCheckoutHandlers_GetCheckoutConfig(t *testing.T) {
	router, repo, _ := newTestRouter(t)
	repo.EXPECT().FindByStoreID(mock.Anything, testStoreID).Return(configuredStore(), nil).Once()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stores/default/checkout-config", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body application.CheckoutConfigResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Payment[domain.GatewayCodeMain].IsActive)
	assert.True(t, body.Payment[domain.GatewayCodeBlik].IsActive)
	assert.False(t, body.Payment[domain.GatewayCodeCard].IsActive)
	require.Len(t, body.Renderers, 2)
	assert.Equal(t, domain.GatewayCodeMain, body.Renderers[0].Type)
	assert.Equal(t, domain.GatewayCodeBlik, body.Renderers[1].Type)
}

func TestCheckoutHandlers_SetCapabilities(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCookie string
	}{
		{
			name:           "apple pay available",
			body:           `{"applePayEnabled":true}`,
			expectedStatus: http.StatusNoContent,
			expectedCookie: "1",
		},
		{
			name:           "apple pay unavailable",
			body:           `{"applePayEnabled":false}`,
			expectedStatus: http.StatusNoContent,
			expectedCookie: "0",
		},
		{
			name:           "invalid body",
			body:           `{"applePayEnabled":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, _ := newTestRouter(t)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/checkout/capabilities", strings.NewReader(tt.body)))

			require.Equal(t, tt.expectedStatus, rec.Code)

			cookies := rec.Result().Cookies()
			if tt.expectedCookie == "" {
				assert.Empty(t, cookies)
				return
			}
			require.Len(t, cookies, 1)
			assert.Equal(t, ApplePayCookieName, cookies[0].Name)
			assert.Equal(t, tt.expectedCookie, cookies[0].Value)
			assert.Equal(t, "/", cookies[0].Path)
			assert.Equal(t, 3600, cookies[0].MaxAge)
		})
	}
}

func TestCookieRoundTrip(t *testing.T) {
	router, repo, provider := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/checkout/capabilities", strings.NewReader(`{"applePayEnabled":true}`)))
	require.Equal(t, http.StatusNoContent, rec.Code)

	repo.EXPECT().FindByStoreID(mock.Anything, testStoreID).Return(configuredStore(), nil).Once()
	provider.EXPECT().GetPaymentMethods(mock.Anything, mock.Anything, mock.MatchedBy(func(req domain.SelectionRequest) bool {
		return req.ApplePayEnabled
	})).Return(domain.NewMethodSet(), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/default/payment-methods?cart_id=42", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(httptest.NewRecorder(), req)
}
