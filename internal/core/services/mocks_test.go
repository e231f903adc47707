package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) FindRateByCode(ctx context.Context, currencyCode string) (*domain.Rate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateRepository) ListActiveRates(ctx context.Context) ([]domain.Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockRateRepository) ListRates(ctx context.Context) ([]domain.Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockRateRepository) SaveRate(ctx context.Context, rate domain.Rate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockRateRepository) UpdateRate(ctx context.Context, rate domain.Rate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockRateRepository) DeleteRate(ctx context.Context, currencyCode string) error {
	args := m.Called(ctx, currencyCode)
	return args.Error(0)
}

func (m *MockRateRepository) BulkUpdateRates(ctx context.Context, updates []domain.BulkRateUpdate, actorID string) ([]domain.Rate, error) {
	args := m.Called(ctx, updates, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

var _ portsrepo.RateRepositoryFacade = (*MockRateRepository)(nil)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByUser(ctx context.Context, userID string, filter domain.OrderFilter) ([]domain.Order, int, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.Int(1), args.Error(2)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.Int(1), args.Error(2)
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) TransitionOrderStatus(ctx context.Context, orderID string, from []domain.OrderStatus, next domain.OrderStatus, at time.Time) (*domain.Order, error) {
	args := m.Called(ctx, orderID, from, next, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) AssignPartner(ctx context.Context, orderID, partnerID string, at time.Time) (*domain.Order, error) {
	args := m.Called(ctx, orderID, partnerID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

var _ portsrepo.OrderRepositoryFacade = (*MockOrderRepository)(nil)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindAddressByID(ctx context.Context, addressID string) (*domain.Address, error) {
	args := m.Called(ctx, addressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

func (m *MockUserRepository) FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock OfferRepository ---
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) FindOfferByCode(ctx context.Context, code string) (*domain.Offer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) ListActiveOffers(ctx context.Context, at time.Time) ([]domain.Offer, error) {
	args := m.Called(ctx, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) IncrementOfferUsage(ctx context.Context, code string) (*domain.Offer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

var _ portsrepo.OfferRepositoryFacade = (*MockOfferRepository)(nil)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.Transaction, error) {
	args := m.Called(ctx, gatewayOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, page domain.Page) ([]domain.Transaction, int, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Int(1), args.Error(2)
}

func (m *MockTransactionRepository) SaveInitiatedTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) CompletePayment(ctx context.Context, transactionID, gatewayPaymentID string, at time.Time) (*domain.Order, error) {
	args := m.Called(ctx, transactionID, gatewayPaymentID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Mock AuditRepository ---
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

var _ portsrepo.AuditWriter = (*MockAuditRepository)(nil)

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

// --- Mock AuditSvc ---
type MockAuditSvc struct {
	mock.Mock
}

func (m *MockAuditSvc) Record(ctx context.Context, entry domain.AuditEntry) {
	m.Called(ctx, entry)
}

var _ portssvc.AuditSvc = (*MockAuditSvc)(nil)

// --- Mock NotificationSvc ---
type MockNotificationSvc struct {
	mock.Mock
}

func (m *MockNotificationSvc) OrderCreated(ctx context.Context, user domain.User, order domain.Order) {
	m.Called(ctx, user, order)
}

func (m *MockNotificationSvc) OrderCancelled(ctx context.Context, order domain.Order) {
	m.Called(ctx, order)
}

func (m *MockNotificationSvc) PaymentSucceeded(ctx context.Context, order domain.Order) {
	m.Called(ctx, order)
}

func (m *MockNotificationSvc) RateAlertReached(ctx context.Context, alert domain.RateAlert, rate domain.Rate) {
	m.Called(ctx, alert, rate)
}

var _ portssvc.NotificationSvc = (*MockNotificationSvc)(nil)

// --- Mock RateChangeNotifier ---
type MockRateChangeNotifier struct {
	mock.Mock
}

func (m *MockRateChangeNotifier) NotifyRatesChanged(ctx context.Context) {
	m.Called(ctx)
}

var _ portssvc.RateChangeNotifier = (*MockRateChangeNotifier)(nil)

// --- Mock RateAlertEvaluator ---
type MockRateAlertEvaluator struct {
	mock.Mock
}

func (m *MockRateAlertEvaluator) EvaluateRate(ctx context.Context, rate domain.Rate) {
	m.Called(ctx, rate)
}

var _ portssvc.RateAlertEvaluator = (*MockRateAlertEvaluator)(nil)

// --- Mock RateAlertRepository ---
type MockRateAlertRepository struct {
	mock.Mock
}

func (m *MockRateAlertRepository) FindRateAlertByID(ctx context.Context, alertID string) (*domain.RateAlert, error) {
	args := m.Called(ctx, alertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateAlert), args.Error(1)
}

func (m *MockRateAlertRepository) ListRateAlertsByUser(ctx context.Context, userID string) ([]domain.RateAlert, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateAlert), args.Error(1)
}

func (m *MockRateAlertRepository) ListActiveAlertsByCurrency(ctx context.Context, currencyCode string) ([]domain.RateAlert, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateAlert), args.Error(1)
}

func (m *MockRateAlertRepository) SaveRateAlert(ctx context.Context, alert domain.RateAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockRateAlertRepository) DeleteRateAlert(ctx context.Context, alertID string) error {
	args := m.Called(ctx, alertID)
	return args.Error(0)
}

func (m *MockRateAlertRepository) MarkAlertTriggered(ctx context.Context, alertID string, at time.Time) error {
	args := m.Called(ctx, alertID, at)
	return args.Error(0)
}

var _ portsrepo.RateAlertRepositoryFacade = (*MockRateAlertRepository)(nil)

// --- Mock PaymentGateway ---
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) Name() string {
	return m.Called().String(0)
}

func (m *MockPaymentGateway) KeyID() string {
	return m.Called().String(0)
}

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*domain.GatewayOrder, error) {
	args := m.Called(ctx, amountMinor, currency, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GatewayOrder), args.Error(1)
}

func (m *MockPaymentGateway) Verify(gatewayOrderID, gatewayPaymentID, signature string) bool {
	return m.Called(gatewayOrderID, gatewayPaymentID, signature).Bool(0)
}

var _ portssvc.PaymentGateway = (*MockPaymentGateway)(nil)

// --- Mock Notifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

var _ portssvc.Notifier = (*MockNotifier)(nil)

// --- Mock EventCapturer ---
type MockEventCapturer struct {
	mock.Mock
}

func (m *MockEventCapturer) Enqueue(distinctID string, event string, properties map[string]any) error {
	args := m.Called(distinctID, event, properties)
	return args.Error(0)
}

var _ portssvc.EventCapturer = (*MockEventCapturer)(nil)

// inlineJobs runs submitted jobs synchronously and records their names and errors.
// With reject set, every job is refused as if the queue were full.
type inlineJobs struct {
	mu     sync.Mutex
	reject bool
	names  []string
	errs   []error
}

func (j *inlineJobs) Submit(name string, job func(ctx context.Context) error) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.reject {
		return false
	}
	j.names = append(j.names, name)
	j.errs = append(j.errs, job(context.Background()))
	return true
}

var _ portssvc.JobSubmitter = (*inlineJobs)(nil)
