package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/apperrors"
	"github.com/SscSPs/forex_marketplace/internal/broadcast"
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/dto"
	"github.com/SscSPs/forex_marketplace/internal/handlers"
	"github.com/SscSPs/forex_marketplace/internal/platform/config"
	"github.com/SscSPs/forex_marketplace/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "forex-marketplace-test"
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	rates      *MockRateService
	quotes     *MockQuoteService
	orders     *MockOrderService
	offers     *MockOfferService
	payments   *MockPaymentService
	alerts     *MockRateAlertService
	subscriber *fakeSubscriber
	userID     string
	adminID    string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.rates = new(MockRateService)
	suite.quotes = new(MockQuoteService)
	suite.orders = new(MockOrderService)
	suite.offers = new(MockOfferService)
	suite.payments = new(MockPaymentService)
	suite.alerts = new(MockRateAlertService)
	suite.subscriber = &fakeSubscriber{}
	suite.userID = uuid.NewString()
	suite.adminID = uuid.NewString()

	cfg := &config.Config{JWTSecret: testSecret, JWTIssuer: testIssuer, IsProduction: true}
	container := &portssvc.ServiceContainer{
		Rate:      suite.rates,
		Quote:     suite.quotes,
		Order:     suite.orders,
		Offer:     suite.offers,
		Payment:   suite.payments,
		RateAlert: suite.alerts,
	}
	handlers.RegisterRoutes(suite.router, cfg, container, handlers.RouteOptions{RateStream: suite.subscriber})
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.rates.AssertExpectations(suite.T())
	suite.quotes.AssertExpectations(suite.T())
	suite.orders.AssertExpectations(suite.T())
	suite.offers.AssertExpectations(suite.T())
	suite.payments.AssertExpectations(suite.T())
	suite.alerts.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) token(userID string, role domain.UserRole) string {
	tok, err := utils.GenerateJWT(userID, role, testSecret, time.Hour, testIssuer)
	suite.Require().NoError(err)
	return tok
}

func (suite *HandlerTestSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func sampleOrder(userID string) *domain.Order {
	return &domain.Order{
		OrderID:       uuid.NewString(),
		OrderNumber:   "FX20261014ABC123",
		UserID:        userID,
		ProductType:   domain.ProductBuyCurrency,
		CurrencyCode:  "USD",
		AmountForeign: decimal.NewFromInt(100),
		ExchangeRate:  decimal.NewFromInt(85),
		TotalAmount:   decimal.RequireFromString("10230.60"),
		Status:        domain.OrderCreated,
		DeliveryType:  domain.DeliveryPickup,
	}
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestCalculateQuote_Success() {
	quote := &domain.Quote{
		CurrencyCode:  "USD",
		ProductType:   domain.ProductBuyCurrency,
		AmountForeign: decimal.NewFromInt(100),
		ExchangeRate:  decimal.NewFromInt(85),
		BaseAmount:    decimal.NewFromInt(8500),
		TotalAmount:   decimal.RequireFromString("10230.6"),
	}
	suite.quotes.On("Quote", mock.Anything, mock.MatchedBy(func(r domain.QuoteRequest) bool {
		return r.CurrencyCode == "USD" && r.AmountForeign.Equal(decimal.NewFromInt(100)) && r.ProductType == domain.ProductBuyCurrency
	})).Return(quote, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/rates/calculate", map[string]any{
		"currencyCode":  "USD",
		"amountForeign": "100",
		"productType":   "BUY_CURRENCY",
	}, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.QuoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.TotalAmount.Equal(decimal.RequireFromString("10230.60")))
}

func (suite *HandlerTestSuite) TestCalculateQuote_Validation() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"malformed currency", map[string]any{"currencyCode": "US1", "amountForeign": "100", "productType": "BUY_CURRENCY"}},
		{"currency not a string", map[string]any{"currencyCode": 840, "amountForeign": "100", "productType": "BUY_CURRENCY"}},
		{"zero amount", map[string]any{"currencyCode": "USD", "amountForeign": "0", "productType": "BUY_CURRENCY"}},
		{"unknown product", map[string]any{"currencyCode": "USD", "amountForeign": "100", "productType": "GOLD"}},
	}
	for _, tc := range tests {
		suite.Run(tc.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/rates/calculate", tc.body, "")
			suite.Equal(http.StatusBadRequest, w.Code)
			suite.Equal("VALIDATION", suite.decodeError(w).Error)
		})
	}
	suite.quotes.AssertNotCalled(suite.T(), "Quote", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCalculateQuote_LowercaseCurrencyIsNormalised() {
	suite.quotes.On("Quote", mock.Anything, mock.MatchedBy(func(r domain.QuoteRequest) bool {
		return r.CurrencyCode == "USD"
	})).Return(&domain.Quote{CurrencyCode: "USD", ProductType: domain.ProductBuyCurrency}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/rates/calculate", map[string]any{
		"currencyCode":  " usd ",
		"amountForeign": "100",
		"productType":   "BUY_CURRENCY",
	}, "")

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestGetRate_NotFound() {
	suite.rates.On("GetRate", mock.Anything, "EUR").Return(nil, apperrors.NewNotFoundError("Rate not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/rates/eur", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
	resp := suite.decodeError(w)
	suite.Equal("NOT_FOUND", resp.Error)
	suite.Equal("Rate not found", resp.Message)
}

func (suite *HandlerTestSuite) TestGetRate_BadCode() {
	w := suite.do(http.MethodGet, "/api/v1/rates/EURO", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListRates_InternalErrorHidesCause() {
	suite.rates.On("ListActiveRates", mock.Anything).Return(nil, errors.New("connection reset by peer")).Once()

	w := suite.do(http.MethodGet, "/api/v1/rates", nil, "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection reset")
}

func (suite *HandlerTestSuite) TestCreateOrder_Success() {
	order := sampleOrder(suite.userID)
	suite.orders.On("CreateOrder", mock.Anything, suite.userID, mock.MatchedBy(func(r dto.CreateOrderRequest) bool {
		return r.CurrencyCode == "USD" && r.ProductType == domain.ProductBuyCurrency
	})).Return(order, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/orders", map[string]any{
		"productType":   "BUY_CURRENCY",
		"currencyCode":  "USD",
		"amountForeign": "100",
		"deliveryType":  "PICKUP",
		"totalAmount":   "1",
	}, suite.token(suite.userID, domain.RoleUser))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.OrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(order.OrderNumber, resp.OrderNumber)
	suite.True(resp.TotalAmount.Equal(decimal.RequireFromString("10230.60")))
}

func (suite *HandlerTestSuite) TestCreateOrder_RequiresToken() {
	w := suite.do(http.MethodPost, "/api/v1/orders", map[string]any{"productType": "BUY_CURRENCY"}, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.orders.AssertNotCalled(suite.T(), "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateOrder_KYCRequired() {
	suite.orders.On("CreateOrder", mock.Anything, suite.userID, mock.Anything).
		Return(nil, apperrors.NewForbiddenError("KYC verification required")).Once()

	w := suite.do(http.MethodPost, "/api/v1/orders", map[string]any{
		"productType":   "BUY_CURRENCY",
		"currencyCode":  "USD",
		"amountForeign": "100",
	}, suite.token(suite.userID, domain.RoleUser))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("FORBIDDEN", suite.decodeError(w).Error)
}

func (suite *HandlerTestSuite) TestExpiredToken() {
	tok, err := utils.GenerateJWT(suite.userID, domain.RoleUser, testSecret, -time.Minute, testIssuer)
	suite.Require().NoError(err)

	w := suite.do(http.MethodGet, "/api/v1/orders", nil, tok)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Token has expired", suite.decodeError(w).Message)
}

func (suite *HandlerTestSuite) TestListMyOrders_Pagination() {
	status := domain.OrderCreated
	want := domain.OrderFilter{Status: &status, Page: domain.Page{Page: 2, Limit: 5}}
	suite.orders.On("ListMyOrders", mock.Anything, suite.userID, want).
		Return([]domain.Order{*sampleOrder(suite.userID)}, 6, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/orders?status=CREATED&page=2&limit=5", nil, suite.token(suite.userID, domain.RoleUser))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListOrdersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Orders, 1)
}

func (suite *HandlerTestSuite) TestListMyOrders_BadStatus() {
	w := suite.do(http.MethodGet, "/api/v1/orders?status=SHIPPED", nil, suite.token(suite.userID, domain.RoleUser))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetOrder_NotOwner() {
	orderID := uuid.NewString()
	suite.orders.On("GetOrder", mock.Anything, orderID, suite.userID).
		Return(nil, apperrors.NewForbiddenError("Order belongs to another user")).Once()

	w := suite.do(http.MethodGet, "/api/v1/orders/"+orderID, nil, suite.token(suite.userID, domain.RoleUser))

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestCancelOrder_InvalidState() {
	orderID := uuid.NewString()
	suite.orders.On("CancelOrder", mock.Anything, orderID, suite.userID).
		Return(nil, apperrors.NewInvalidStateError("Order can no longer be cancelled")).Once()

	w := suite.do(http.MethodPut, "/api/v1/orders/"+orderID+"/cancel", nil, suite.token(suite.userID, domain.RoleUser))

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("Order can no longer be cancelled", suite.decodeError(w).Message)
}

func (suite *HandlerTestSuite) TestAdminRoutes_RejectUserRole() {
	w := suite.do(http.MethodGet, "/api/v1/admin/rates", nil, suite.token(suite.userID, domain.RoleUser))
	suite.Equal(http.StatusForbidden, w.Code)
	suite.rates.AssertNotCalled(suite.T(), "ListRates", mock.Anything)
}

func (suite *HandlerTestSuite) TestAdminCreateRate() {
	rate := &domain.Rate{
		CurrencyCode: "USD",
		CurrencyName: "US Dollar",
		BaseRate:     decimal.RequireFromString("83.50"),
		BuyRate:      decimal.RequireFromString("82.00"),
		SellRate:     decimal.RequireFromString("85.00"),
		IsActive:     true,
	}
	suite.rates.On("CreateRate", mock.Anything, mock.MatchedBy(func(r dto.CreateRateRequest) bool {
		return r.CurrencyCode == "USD"
	}), suite.adminID).Return(rate, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/rates", map[string]any{
		"currencyCode": "usd",
		"currencyName": "US Dollar",
		"baseRate":     "83.50",
		"buyRate":      "82.00",
		"sellRate":     "85.00",
		"markup":       "1.50",
	}, suite.token(suite.adminID, domain.RoleAdmin))

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestAdminDeleteRate() {
	suite.rates.On("DeleteRate", mock.Anything, "USD", suite.adminID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/admin/rates/usd", nil, suite.token(suite.adminID, domain.RoleAdmin))

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestAdminUpdateOrderStatus_IllegalTransition() {
	orderID := uuid.NewString()
	suite.orders.On("UpdateOrderStatus", mock.Anything, orderID, domain.OrderCompleted, suite.adminID).
		Return(nil, apperrors.NewInvalidStateError("Cannot move order from CREATED to COMPLETED")).Once()

	w := suite.do(http.MethodPut, "/api/v1/admin/orders/"+orderID+"/status",
		map[string]any{"status": "COMPLETED"}, suite.token(suite.adminID, domain.RoleAdmin))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestAdminAssignPartner() {
	orderID := uuid.NewString()
	partnerID := uuid.NewString()
	order := sampleOrder(suite.userID)
	order.PartnerID = &partnerID
	suite.orders.On("AssignPartner", mock.Anything, orderID, partnerID, suite.adminID).Return(order, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/admin/orders/"+orderID+"/assign",
		map[string]any{"partnerID": partnerID}, suite.token(suite.adminID, domain.RoleAdmin))

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestValidateOffer_Public() {
	result := &domain.OfferResult{
		Offer:       domain.Offer{Code: "FLAT200", DiscountType: domain.DiscountFlat},
		Amount:      decimal.NewFromInt(6000),
		Discount:    decimal.NewFromInt(200),
		FinalAmount: decimal.NewFromInt(5800),
	}
	suite.offers.On("ValidateOffer", mock.Anything, "FLAT200", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(6000))
	})).Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/offers/validate", map[string]any{"code": "FLAT200", "amount": "6000"}, "")

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestRedeemOffer_Exhausted() {
	suite.offers.On("RedeemOffer", mock.Anything, "WELCOME10", suite.userID).
		Return(nil, apperrors.NewInvalidStateError("Offer usage limit reached")).Once()

	w := suite.do(http.MethodPost, "/api/v1/offers/redeem", map[string]any{"code": "WELCOME10"}, suite.token(suite.userID, domain.RoleUser))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestInitiatePayment() {
	orderID := uuid.NewString()
	intent := &domain.PaymentIntent{
		GatewayOrder: domain.GatewayOrder{GatewayOrderID: "order_mock_1", AmountMinor: 1023060, Currency: "INR", Receipt: "FX1"},
		OrderNumber:  "FX1",
		KeyID:        "rzp_test",
	}
	suite.payments.On("InitiatePayment", mock.Anything, orderID, suite.userID).Return(intent, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/payments/create-order", map[string]any{"orderID": orderID}, suite.token(suite.userID, domain.RoleUser))

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), "order_mock_1")
}

func (suite *HandlerTestSuite) TestVerifyPayment_BadSignature() {
	req := dto.VerifyPaymentRequest{GatewayOrderID: "order_1", GatewayPaymentID: "pay_1", Signature: "abcd"}
	suite.payments.On("VerifyPayment", mock.Anything, suite.userID, req).
		Return(nil, apperrors.NewValidationError("Invalid payment signature")).Once()

	w := suite.do(http.MethodPost, "/api/v1/payments/verify", req, suite.token(suite.userID, domain.RoleUser))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid payment signature", suite.decodeError(w).Message)
}

func (suite *HandlerTestSuite) TestListTransactions_DefaultPage() {
	suite.payments.On("ListMyTransactions", mock.Anything, suite.userID, domain.Page{Page: 1, Limit: 10}).
		Return([]domain.Transaction{}, 0, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/payments/transactions", nil, suite.token(suite.userID, domain.RoleUser))

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestRateStream_SendsSnapshot() {
	suite.subscriber.snapshots = []broadcast.RateSnapshot{{
		Rates: []broadcast.RateBroadcastEntry{{
			CurrencyCode: "USD",
			CurrencyName: "US Dollar",
			BuyRate:      decimal.RequireFromString("82.00"),
			SellRate:     decimal.RequireFromString("85.00"),
		}},
		Timestamp: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC),
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/stream", nil)
	w := newCloseNotifyingRecorder()
	suite.router.ServeHTTP(w, req)

	body := w.Body.String()
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "text/event-stream")
	suite.Contains(body, "event:rates:update")
	suite.Equal(1, strings.Count(body, "event:rates:update"))
	suite.Contains(body, `"currencyCode":"USD"`)
	suite.True(suite.subscriber.unsubscribed)
}

func (suite *HandlerTestSuite) TestRateStream_SubscribeFailure() {
	suite.subscriber.err = errors.New("rates unavailable")

	w := suite.do(http.MethodGet, "/api/v1/rates/stream", nil, "")

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *HandlerTestSuite) TestCreateRateAlert() {
	alert := &domain.RateAlert{AlertID: uuid.NewString(), UserID: suite.userID, CurrencyCode: "USD",
		TargetRate: decimal.RequireFromString("84.5"), AlertType: domain.AlertByBoth, IsActive: true, CreatedAt: time.Now().UTC()}
	suite.alerts.On("CreateRateAlert", mock.Anything, suite.userID, mock.MatchedBy(func(r dto.CreateRateAlertRequest) bool {
		return r.CurrencyCode == "USD" && r.TargetRate.Equal(decimal.RequireFromString("84.5")) && r.AlertType == domain.AlertByBoth
	})).Return(alert, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/rates/alert", map[string]any{
		"currencyCode": "usd",
		"targetRate":   "84.5",
		"alertType":    "BOTH",
	}, suite.token(suite.userID, domain.RoleUser))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.RateAlertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(alert.AlertID, resp.AlertID)
	suite.True(resp.IsActive)
}

func (suite *HandlerTestSuite) TestCreateRateAlert_Invalid() {
	tok := suite.token(suite.userID, domain.RoleUser)
	cases := map[string]map[string]any{
		"missing target":     {"currencyCode": "USD"},
		"negative target":    {"currencyCode": "USD", "targetRate": "-1"},
		"unknown channel":    {"currencyCode": "USD", "targetRate": "84", "alertType": "PUSH"},
		"malformed currency": {"currencyCode": "US1", "targetRate": "84"},
	}
	for name, body := range cases {
		suite.Run(name, func() {
			w := suite.do(http.MethodPost, "/api/v1/rates/alert", body, tok)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func (suite *HandlerTestSuite) TestCreateRateAlert_UnknownCurrency() {
	suite.alerts.On("CreateRateAlert", mock.Anything, suite.userID, mock.Anything).
		Return(nil, apperrors.NewNotFoundError("currency XYZ")).Once()

	w := suite.do(http.MethodPost, "/api/v1/rates/alert", map[string]any{"currencyCode": "XYZ", "targetRate": "1"},
		suite.token(suite.userID, domain.RoleUser))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestRateAlerts_RequireLogin() {
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodPost, "/api/v1/rates/alert", map[string]any{"currencyCode": "USD", "targetRate": "1"}, "").Code)
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/api/v1/rates/alerts/my", nil, "").Code)
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodDelete, "/api/v1/rates/alert/"+uuid.NewString(), nil, "").Code)
}

func (suite *HandlerTestSuite) TestListMyAlerts() {
	alerts := []domain.RateAlert{
		{AlertID: uuid.NewString(), UserID: suite.userID, CurrencyCode: "EUR", TargetRate: decimal.NewFromInt(90), AlertType: domain.AlertByEmail},
		{AlertID: uuid.NewString(), UserID: suite.userID, CurrencyCode: "USD", TargetRate: decimal.NewFromInt(84), AlertType: domain.AlertBySMS},
	}
	suite.alerts.On("ListMyAlerts", mock.Anything, suite.userID).Return(alerts, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/rates/alerts/my", nil, suite.token(suite.userID, domain.RoleUser))

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.RateAlertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("EUR", resp[0].CurrencyCode)
}

func (suite *HandlerTestSuite) TestDeleteRateAlert() {
	tok := suite.token(suite.userID, domain.RoleUser)
	mine, theirs, missing := uuid.NewString(), uuid.NewString(), uuid.NewString()
	suite.alerts.On("DeleteRateAlert", mock.Anything, mine, suite.userID).Return(nil).Once()
	suite.alerts.On("DeleteRateAlert", mock.Anything, theirs, suite.userID).
		Return(apperrors.NewForbiddenError("Rate alert belongs to another user")).Once()
	suite.alerts.On("DeleteRateAlert", mock.Anything, missing, suite.userID).
		Return(apperrors.NewNotFoundError("Rate alert not found")).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/rates/alert/"+mine, nil, tok).Code)
	suite.Equal(http.StatusForbidden, suite.do(http.MethodDelete, "/api/v1/rates/alert/"+theirs, nil, tok).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/api/v1/rates/alert/"+missing, nil, tok).Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
