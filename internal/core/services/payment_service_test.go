package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/forex_marketplace/internal/apperrors"
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/core/services"
	"github.com/SscSPs/forex_marketplace/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockOrders        *MockOrderRepository
	mockTxns          *MockTransactionRepository
	mockGateway       *MockPaymentGateway
	mockNotifications *MockNotificationSvc
	mockAudit         *MockAuditSvc
	service           portssvc.PaymentSvcFacade
	userID            string
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockOrders = new(MockOrderRepository)
	suite.mockTxns = new(MockTransactionRepository)
	suite.mockGateway = new(MockPaymentGateway)
	suite.mockNotifications = new(MockNotificationSvc)
	suite.mockAudit = new(MockAuditSvc)
	suite.userID = uuid.NewString()
	suite.service = services.NewPaymentService(
		suite.mockOrders,
		suite.mockTxns,
		suite.mockGateway,
		services.WithPaymentNotifications(suite.mockNotifications),
		services.WithPaymentAuditor(suite.mockAudit),
	)
	suite.mockAudit.On("Record", mock.Anything, mock.Anything).Return().Maybe()
	suite.mockGateway.On("Name").Return("mock").Maybe()
	suite.mockGateway.On("KeyID").Return("rzp_test_mock").Maybe()
}

func (suite *PaymentServiceTestSuite) pendingOrder() *domain.Order {
	return &domain.Order{
		OrderID:       uuid.NewString(),
		OrderNumber:   "BMF20261014A1B2C3",
		UserID:        suite.userID,
		TotalAmount:   dec("10230.60"),
		Status:        domain.OrderCreated,
		PaymentStatus: domain.PaymentPending,
	}
}

func (suite *PaymentServiceTestSuite) TestInitiatePayment_Success() {
	ctx := context.Background()
	order := suite.pendingOrder()
	suite.mockOrders.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockGateway.On("CreateOrder", ctx, int64(1023060), "INR", order.OrderNumber).
		Return(&domain.GatewayOrder{GatewayOrderID: "order_abc", AmountMinor: 1023060, Currency: "INR", Receipt: order.OrderNumber}, nil).Once()
	suite.mockTxns.On("SaveInitiatedTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.OrderID == order.OrderID && t.GatewayOrderID == "order_abc" &&
			t.Status == domain.TransactionInitiated && t.Amount.Equal(order.TotalAmount) && t.Gateway == "mock"
	})).Return(nil).Once()

	intent, err := suite.service.InitiatePayment(ctx, order.OrderID, suite.userID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "order_abc", intent.GatewayOrder.GatewayOrderID)
	assert.Equal(suite.T(), "rzp_test_mock", intent.KeyID)
	assert.Equal(suite.T(), order.OrderNumber, intent.OrderNumber)
	suite.mockTxns.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestInitiatePayment_AlreadyPaid() {
	ctx := context.Background()
	order := suite.pendingOrder()
	order.PaymentStatus = domain.PaymentSuccess
	order.Status = domain.OrderPaymentCompleted
	suite.mockOrders.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	_, err := suite.service.InitiatePayment(ctx, order.OrderID, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidState)
	suite.mockGateway.AssertNotCalled(suite.T(), "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestInitiatePayment_CancelledOrder() {
	ctx := context.Background()
	order := suite.pendingOrder()
	order.Status = domain.OrderCancelled
	suite.mockOrders.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	_, err := suite.service.InitiatePayment(ctx, order.OrderID, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidState)
}

func (suite *PaymentServiceTestSuite) TestInitiatePayment_NotOwner() {
	ctx := context.Background()
	order := suite.pendingOrder()
	suite.mockOrders.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	_, err := suite.service.InitiatePayment(ctx, order.OrderID, uuid.NewString())

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *PaymentServiceTestSuite) TestInitiatePayment_GatewayFailureStoresNothing() {
	ctx := context.Background()
	order := suite.pendingOrder()
	suite.mockOrders.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockGateway.On("CreateOrder", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("gateway timeout")).Once()

	_, err := suite.service.InitiatePayment(ctx, order.OrderID, suite.userID)

	assert.Error(suite.T(), err)
	suite.mockTxns.AssertNotCalled(suite.T(), "SaveInitiatedTransaction", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) verifyRequest() dto.VerifyPaymentRequest {
	return dto.VerifyPaymentRequest{GatewayOrderID: "order_abc", GatewayPaymentID: "pay_xyz", Signature: "sig"}
}

func (suite *PaymentServiceTestSuite) TestVerifyPayment_Success() {
	ctx := context.Background()
	req := suite.verifyRequest()
	txn := &domain.Transaction{TransactionID: uuid.NewString(), UserID: suite.userID, GatewayOrderID: "order_abc", Status: domain.TransactionInitiated}
	paid := suite.pendingOrder()
	paid.Status = domain.OrderPaymentCompleted
	paid.PaymentStatus = domain.PaymentSuccess
	suite.mockGateway.On("Verify", "order_abc", "pay_xyz", "sig").Return(true).Once()
	suite.mockTxns.On("FindTransactionByGatewayOrderID", ctx, "order_abc").Return(txn, nil).Once()
	suite.mockTxns.On("CompletePayment", ctx, txn.TransactionID, "pay_xyz", mock.Anything).Return(paid, nil).Once()
	suite.mockNotifications.On("PaymentSucceeded", ctx, *paid).Return().Once()

	order, err := suite.service.VerifyPayment(ctx, suite.userID, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.OrderPaymentCompleted, order.Status)
	assert.Equal(suite.T(), domain.PaymentSuccess, order.PaymentStatus)
	suite.mockNotifications.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestVerifyPayment_BadSignatureReadsNothing() {
	suite.mockGateway.On("Verify", "order_abc", "pay_xyz", "sig").Return(false).Once()

	_, err := suite.service.VerifyPayment(context.Background(), suite.userID, suite.verifyRequest())

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockTxns.AssertNotCalled(suite.T(), "FindTransactionByGatewayOrderID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestVerifyPayment_AlreadyCompleted() {
	ctx := context.Background()
	txn := &domain.Transaction{TransactionID: uuid.NewString(), UserID: suite.userID, Status: domain.TransactionSuccess}
	suite.mockGateway.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return(true).Once()
	suite.mockTxns.On("FindTransactionByGatewayOrderID", ctx, "order_abc").Return(txn, nil).Once()

	_, err := suite.service.VerifyPayment(ctx, suite.userID, suite.verifyRequest())

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidState)
	suite.mockTxns.AssertNotCalled(suite.T(), "CompletePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestVerifyPayment_SecondSuccessRejected() {
	ctx := context.Background()
	txn := &domain.Transaction{TransactionID: uuid.NewString(), UserID: suite.userID, Status: domain.TransactionInitiated}
	suite.mockGateway.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return(true).Once()
	suite.mockTxns.On("FindTransactionByGatewayOrderID", ctx, "order_abc").Return(txn, nil).Once()
	suite.mockTxns.On("CompletePayment", ctx, txn.TransactionID, "pay_xyz", mock.Anything).
		Return(nil, apperrors.NewInvalidStateError("order already has a successful payment")).Once()

	_, err := suite.service.VerifyPayment(ctx, suite.userID, suite.verifyRequest())

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidState)
	suite.mockNotifications.AssertNotCalled(suite.T(), "PaymentSucceeded", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestVerifyPayment_OtherUsersTransaction() {
	ctx := context.Background()
	txn := &domain.Transaction{TransactionID: uuid.NewString(), UserID: uuid.NewString(), Status: domain.TransactionInitiated}
	suite.mockGateway.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return(true).Once()
	suite.mockTxns.On("FindTransactionByGatewayOrderID", ctx, "order_abc").Return(txn, nil).Once()

	_, err := suite.service.VerifyPayment(ctx, suite.userID, suite.verifyRequest())

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *PaymentServiceTestSuite) TestListMyTransactions_Empty() {
	ctx := context.Background()
	page := domain.Page{Page: 1, Limit: 20}
	suite.mockTxns.On("ListTransactionsByUser", ctx, suite.userID, page).Return(nil, 0, nil).Once()

	txns, total, err := suite.service.ListMyTransactions(ctx, suite.userID, page)

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), txns)
	assert.Zero(suite.T(), total)
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
