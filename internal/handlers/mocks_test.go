package handlers_test

import (
	"context"
	"net/http/httptest"

	"github.com/SscSPs/forex_marketplace/internal/broadcast"
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) ListActiveRates(ctx context.Context) ([]domain.Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}
func (m *MockRateService) ListRates(ctx context.Context) ([]domain.Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}
func (m *MockRateService) GetRate(ctx context.Context, currencyCode string) (*domain.Rate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}
func (m *MockRateService) GetActiveRate(ctx context.Context, currencyCode string) (*domain.Rate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}
func (m *MockRateService) CreateRate(ctx context.Context, req dto.CreateRateRequest, adminID string) (*domain.Rate, error) {
	args := m.Called(ctx, req, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}
func (m *MockRateService) UpdateRate(ctx context.Context, currencyCode string, req dto.UpdateRateRequest, adminID string) (*domain.Rate, error) {
	args := m.Called(ctx, currencyCode, req, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}
func (m *MockRateService) DeleteRate(ctx context.Context, currencyCode string, adminID string) error {
	args := m.Called(ctx, currencyCode, adminID)
	return args.Error(0)
}
func (m *MockRateService) BulkUpdateRates(ctx context.Context, req dto.BulkUpdateRatesRequest, adminID string) ([]domain.Rate, error) {
	args := m.Called(ctx, req, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Mock QuoteService ---
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Quote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

var _ portssvc.QuoteSvc = (*MockQuoteService)(nil)

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) GetOrder(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) ListMyOrders(ctx context.Context, userID string, filter domain.OrderFilter) ([]domain.Order, int, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.Int(1), args.Error(2)
}
func (m *MockOrderService) CreateOrder(ctx context.Context, userID string, req dto.CreateOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) CancelOrder(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.Int(1), args.Error(2)
}
func (m *MockOrderService) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, adminID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, status, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) AssignPartner(ctx context.Context, orderID, partnerID, adminID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, partnerID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

// --- Mock OfferService ---
type MockOfferService struct {
	mock.Mock
}

func (m *MockOfferService) ListActiveOffers(ctx context.Context) ([]domain.Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}
func (m *MockOfferService) GetOfferByCode(ctx context.Context, code string) (*domain.Offer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}
func (m *MockOfferService) ValidateOffer(ctx context.Context, code string, amount decimal.Decimal) (*domain.OfferResult, error) {
	args := m.Called(ctx, code, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OfferResult), args.Error(1)
}
func (m *MockOfferService) RedeemOffer(ctx context.Context, code string, userID string) (*domain.Offer, error) {
	args := m.Called(ctx, code, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

var _ portssvc.OfferSvcFacade = (*MockOfferService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) InitiatePayment(ctx context.Context, orderID, userID string) (*domain.PaymentIntent, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentIntent), args.Error(1)
}
func (m *MockPaymentService) VerifyPayment(ctx context.Context, userID string, req dto.VerifyPaymentRequest) (*domain.Order, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockPaymentService) ListMyTransactions(ctx context.Context, userID string, page domain.Page) ([]domain.Transaction, int, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Int(1), args.Error(2)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock RateAlertService ---
type MockRateAlertService struct {
	mock.Mock
}

func (m *MockRateAlertService) CreateRateAlert(ctx context.Context, userID string, req dto.CreateRateAlertRequest) (*domain.RateAlert, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateAlert), args.Error(1)
}
func (m *MockRateAlertService) ListMyAlerts(ctx context.Context, userID string) ([]domain.RateAlert, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateAlert), args.Error(1)
}
func (m *MockRateAlertService) DeleteRateAlert(ctx context.Context, alertID, userID string) error {
	args := m.Called(ctx, alertID, userID)
	return args.Error(0)
}
func (m *MockRateAlertService) EvaluateRate(ctx context.Context, rate domain.Rate) {
	m.Called(ctx, rate)
}

var _ portssvc.RateAlertSvcFacade = (*MockRateAlertService)(nil)

// fakeSubscriber hands out a stream that yields the given snapshots and then ends.
type fakeSubscriber struct {
	snapshots    []broadcast.RateSnapshot
	err          error
	unsubscribed bool
}

func (f *fakeSubscriber) Subscribe(ctx context.Context) (<-chan broadcast.RateSnapshot, func(), error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	ch := make(chan broadcast.RateSnapshot, len(f.snapshots))
	for _, s := range f.snapshots {
		ch <- s
	}
	close(ch)
	return ch, func() { f.unsubscribed = true }, nil
}

// closeNotifyingRecorder lets gin's Stream run against an httptest recorder.
type closeNotifyingRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyingRecorder() *closeNotifyingRecorder {
	return &closeNotifyingRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}
}

func (r *closeNotifyingRecorder) CloseNotify() <-chan bool {
	return r.closed
}
