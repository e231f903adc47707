package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/apperrors"
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/utils"
)

// ErrGatewayNotConfigured is returned when live mode is requested without credentials.
var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

const (
	gatewayName     = "razorpay"
	mockGatewayName = "mock"
	mockKeyID       = "rzp_test_mock"
	mockKeySecret   = "mock_secret"
	orderIDPrefix   = "order_"
	orderIDLength   = 14
	ordersPath      = "/v1/orders"
	maxErrorBody    = 4 << 10

	// DefaultAPIBaseURL is the live gateway API.
	DefaultAPIBaseURL = "https://api.razorpay.com"
	// DefaultTimeout bounds one gateway API call.
	DefaultTimeout = 10 * time.Second
)

// CheckoutGateway opens gateway orders and verifies the checkout signature
// (hex HMAC-SHA256 of "gatewayOrderID|gatewayPaymentID" keyed with the key secret).
// Live mode calls the gateway orders API with basic auth. Mock mode issues local
// order ids with fixed test credentials so the whole flow works offline.
type CheckoutGateway struct {
	keyID     string
	keySecret string
	mockMode  bool
	baseURL   string
	client    *http.Client
	logger    *slog.Logger
}

// GatewayOption configures a CheckoutGateway.
type GatewayOption func(*CheckoutGateway)

// WithAPIBaseURL points live calls at another host, such as a sandbox or a test server.
func WithAPIBaseURL(baseURL string) GatewayOption {
	return func(g *CheckoutGateway) {
		if baseURL != "" {
			g.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the client used for live calls.
func WithHTTPClient(client *http.Client) GatewayOption {
	return func(g *CheckoutGateway) {
		if client != nil {
			g.client = client
		}
	}
}

// WithTimeout sets the per-call timeout of the default client.
func WithTimeout(d time.Duration) GatewayOption {
	return func(g *CheckoutGateway) {
		if d > 0 {
			g.client = &http.Client{Timeout: d}
		}
	}
}

// NewCheckoutGateway creates the gateway adapter. Live mode needs both keys.
func NewCheckoutGateway(keyID, keySecret string, mockMode bool, logger *slog.Logger, opts ...GatewayOption) (*CheckoutGateway, error) {
	g := &CheckoutGateway{
		keyID:     keyID,
		keySecret: keySecret,
		mockMode:  mockMode,
		baseURL:   DefaultAPIBaseURL,
		client:    &http.Client{Timeout: DefaultTimeout},
		logger:    logger,
	}
	for _, opt := range opts {
		opt(g)
	}

	if mockMode {
		logger.Info("Payment gateway mock mode enabled")
		if g.keyID == "" {
			g.keyID = mockKeyID
		}
		if g.keySecret == "" {
			g.keySecret = mockKeySecret
		}
		return g, nil
	}

	if keyID == "" || keySecret == "" {
		return nil, ErrGatewayNotConfigured
	}
	logger.Info("Payment gateway initialized", slog.String("key_id", keyID), slog.String("api", g.baseURL))
	return g, nil
}

var _ portssvc.PaymentGateway = (*CheckoutGateway)(nil)

func (g *CheckoutGateway) Name() string {
	if g.mockMode {
		return mockGatewayName
	}
	return gatewayName
}

func (g *CheckoutGateway) KeyID() string { return g.keyID }

// CreateOrder opens a gateway order for amountMinor paise.
func (g *CheckoutGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*domain.GatewayOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if amountMinor <= 0 {
		return nil, fmt.Errorf("gateway order amount must be positive, got %d", amountMinor)
	}
	currency = strings.ToUpper(currency)

	var (
		order *domain.GatewayOrder
		err   error
	)
	if g.mockMode {
		order, err = g.mockOrder(amountMinor, currency, receipt)
	} else {
		order, err = g.liveOrder(ctx, amountMinor, currency, receipt)
	}
	if err != nil {
		return nil, err
	}

	g.logger.Debug("Gateway order created",
		slog.String("gateway", g.Name()),
		slog.String("gateway_order_id", order.GatewayOrderID),
		slog.Int64("amount", amountMinor),
		slog.String("receipt", receipt))
	return order, nil
}

func (g *CheckoutGateway) mockOrder(amountMinor int64, currency, receipt string) (*domain.GatewayOrder, error) {
	suffix, err := utils.GenerateSecureRandomBase36(orderIDLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate gateway order id: %w", err)
	}
	return &domain.GatewayOrder{
		GatewayOrderID: orderIDPrefix + suffix,
		AmountMinor:    amountMinor,
		Currency:       currency,
		Receipt:        receipt,
	}, nil
}

type createOrderBody struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderReply struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type errorReply struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// liveOrder calls POST /v1/orders. Transport failures and non-2xx replies surface as 502.
func (g *CheckoutGateway) liveOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*domain.GatewayOrder, error) {
	payload, err := json.Marshal(createOrderBody{Amount: amountMinor, Currency: currency, Receipt: receipt})
	if err != nil {
		return nil, fmt.Errorf("failed to encode gateway order: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+ordersPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusBadGateway, "payment gateway unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var reply errorReply
		detail := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &reply) == nil && reply.Error.Description != "" {
			detail = reply.Error.Code + ": " + reply.Error.Description
		}
		g.logger.Warn("Gateway rejected order",
			slog.Int("status", resp.StatusCode),
			slog.String("receipt", receipt),
			slog.String("detail", detail))
		return nil, apperrors.NewAppError(http.StatusBadGateway, "payment gateway rejected the order",
			fmt.Errorf("gateway returned %d: %s", resp.StatusCode, detail))
	}

	var reply orderReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, apperrors.NewAppError(http.StatusBadGateway, "payment gateway sent an unreadable reply", err)
	}
	if reply.ID == "" {
		return nil, apperrors.NewAppError(http.StatusBadGateway, "payment gateway sent an unreadable reply", errors.New("order id missing"))
	}
	if reply.Amount != 0 && reply.Amount != amountMinor {
		return nil, apperrors.NewAppError(http.StatusBadGateway, "payment gateway amount mismatch",
			fmt.Errorf("requested %d, gateway order %s has %d", amountMinor, reply.ID, reply.Amount))
	}

	order := &domain.GatewayOrder{
		GatewayOrderID: reply.ID,
		AmountMinor:    amountMinor,
		Currency:       currency,
		Receipt:        receipt,
	}
	if reply.Currency != "" {
		order.Currency = strings.ToUpper(reply.Currency)
	}
	if reply.Receipt != "" {
		order.Receipt = reply.Receipt
	}
	return order, nil
}

// Verify checks the checkout signature in constant time.
func (g *CheckoutGateway) Verify(gatewayOrderID, gatewayPaymentID, signature string) bool {
	return utils.VerifyPaymentSignature(g.keySecret, gatewayOrderID, gatewayPaymentID, signature)
}

// Sign produces the signature the checkout would return for the pair.
func (g *CheckoutGateway) Sign(gatewayOrderID, gatewayPaymentID string) string {
	return utils.SignPayment(g.keySecret, gatewayOrderID, gatewayPaymentID)
}
