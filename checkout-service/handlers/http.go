package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/paynow/checkout-system/checkout-service/application"
	"github.com/paynow/checkout-system/shared/models"
	"go.uber.org/zap"
)

const (
	ApplePayCookieName = "applePayEnabled"
	CustomerIDHeader   = "X-Customer-ID"

	applePayCookieMaxAge = time.Hour
)

// CapabilitiesRequest carries the device capabilities detected by the checkout front end
type CapabilitiesRequest struct {
	ApplePayEnabled bool `json:"applePayEnabled"`
}

// CheckoutHandlers contains checkout HTTP handlers
type CheckoutHandlers struct {
	selector          *application.PaymentMethodSelector
	getCheckoutConfig *application.GetCheckoutConfig
	logger            *zap.Logger
}

// NewCheckoutHandlers creates new checkout handlers
func NewCheckoutHandlers(
	selector *application.PaymentMethodSelector,
	getCheckoutConfig *application.GetCheckoutConfig,
	logger *zap.Logger,
) *CheckoutHandlers {
	return &CheckoutHandlers{
		selector:          selector,
		getCheckoutConfig: getCheckoutConfig,
		logger:            logger,
	}
}

// ListPaymentMethods handles the main gateway payment methods lookup
func (h *CheckoutHandlers) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	query, ok := h.selectionQuery(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.selector.ListAvailable(r.Context(), query))
}

// GetBlikMethod handles the BLIK gateway lookup
func (h *CheckoutHandlers) GetBlikMethod(w http.ResponseWriter, r *http.Request) {
	query, ok := h.selectionQuery(w, r)
	if !ok {
		return
	}

	method := h.selector.GetBlikMethod(r.Context(), query)
	if method == nil {
		http.Error(w, "BLIK payment method not available", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, application.NewPaymentMethodResponse(*method))
}

// GetCardMethod handles the card gateway lookup
func (h *CheckoutHandlers) GetCardMethod(w http.ResponseWriter, r *http.Request) {
	query, ok := h.selectionQuery(w, r)
	if !ok {
		return
	}

	method := h.selector.GetCardMethod(r.Context(), query)
	if method == nil {
		http.Error(w, "Card payment method not available", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, application.NewPaymentMethodResponse(*method))
}

// GetCheckoutConfig handles checkout config requests
func (h *CheckoutHandlers) GetCheckoutConfig(w http.ResponseWriter, r *http.Request) {
	response, err := h.getCheckoutConfig.Execute(r.Context(), &application.GetCheckoutConfigQuery{
		StoreID: chi.URLParam(r, "store_id"),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// SetCapabilities stores the Apple Pay capability flag in a short-lived cookie
// that later payment method lookups read back.
func (h *CheckoutHandlers) SetCapabilities(w http.ResponseWriter, r *http.Request) {
	var req CapabilitiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	value := "0"
	if req.ApplePayEnabled {
		value = "1"
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ApplePayCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(applePayCookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/stores/{store_id}", func(r chi.Router) {
		r.Get("/payment-methods", h.ListPaymentMethods)
		r.Get("/payment-methods/blik", h.GetBlikMethod)
		r.Get("/payment-methods/card", h.GetCardMethod)
		r.Get("/checkout-config", h.GetCheckoutConfig)
	})
	r.Put("/checkout/capabilities", h.SetCapabilities)
}

func (h *CheckoutHandlers) selectionQuery(w http.ResponseWriter, r *http.Request) (*application.SelectPaymentMethodsQuery, bool) {
	params := r.URL.Query()

	amount, err := models.ParseAmount(params.Get("amount"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	cartID := strings.TrimSpace(params.Get("cart_id"))
	if cartID == "" {
		http.Error(w, "cart_id is required", http.StatusBadRequest)
		return nil, false
	}

	query := &application.SelectPaymentMethodsQuery{
		StoreID:    chi.URLParam(r, "store_id"),
		CartID:     cartID,
		CustomerID: r.Header.Get(CustomerIDHeader),
		Currency:   params.Get("currency"),
		Amount:     amount,
	}

	if cookie, err := r.Cookie(ApplePayCookieName); err == nil {
		query.ApplePayFlag = cookie.Value
	}

	return query, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
