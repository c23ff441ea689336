package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/apperrors"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	portssvc "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/services"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/dto"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/handlers"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Mock LedgerService ---

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) SearchTransactions(ctx context.Context, req dto.SearchTransactionsRequest) ([]domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockLedgerService) AdjustAccountBalance(ctx context.Context, accountID string, req dto.AdjustBalanceRequest) (*dto.AdjustBalanceResponse, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AdjustBalanceResponse), args.Error(1)
}

// --- Mock ReportingService ---

type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetStats(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

func (m *MockReportingService) GetExpenseByCategory(ctx context.Context) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockReportingService) GetIncomeByCategory(ctx context.Context) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockReportingService) GetMonthlyTrend(ctx context.Context, months int) ([]domain.TrendPoint, error) {
	args := m.Called(ctx, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrendPoint), args.Error(1)
}

func (m *MockReportingService) GetIncomeExpenseTrend(ctx context.Context, period string) ([]domain.TrendPoint, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrendPoint), args.Error(1)
}

// --- Mock CategoryService ---

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) GetCategories(ctx context.Context) (*domain.CategoryTree, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryTree), args.Error(1)
}

func (m *MockCategoryService) GetCategoriesByType(ctx context.Context, category1 string) (*domain.CategoryTree, error) {
	args := m.Called(ctx, category1)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryTree), args.Error(1)
}

func (m *MockCategoryService) GetCategoriesByParent(ctx context.Context, category1, category2 string) (*domain.CategoryTree, error) {
	args := m.Called(ctx, category1, category2)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryTree), args.Error(1)
}

func (m *MockCategoryService) GetAllCategories(ctx context.Context) (*domain.CategoryTree, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryTree), args.Error(1)
}

// --- Test Suite Setup ---

type AccountHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockAccountSvc  *MockAccountService
	mockLedgerSvc   *MockLedgerService
	mockReportSvc   *MockReportingService
	mockCategorySvc *MockCategoryService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockAccountSvc = new(MockAccountService)
	suite.mockLedgerSvc = new(MockLedgerService)
	suite.mockReportSvc = new(MockReportingService)
	suite.mockCategorySvc = new(MockCategoryService)

	container := &portssvc.ServiceContainer{
		Account:   suite.mockAccountSvc,
		Ledger:    suite.mockLedgerSvc,
		Reporting: suite.mockReportSvc,
		Category:  suite.mockCategorySvc,
	}

	cfg := &config.Config{Port: "8080", RateLimit: "1000-S"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, logger, container)
}

func (suite *AccountHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	reqBody := dto.CreateAccountRequest{Name: "Checking", Type: "bank"}
	created := &domain.Account{
		AccountID: uuid.NewString(),
		Name:      "Checking",
		Type:      "bank",
		Balance:   decimal.Zero,
	}

	suite.mockAccountSvc.On("CreateAccount", mock.Anything, reqBody).Return(created, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/accounts", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.AccountID, resp.AccountID)
	suite.Equal("Checking", resp.Name)
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingFields() {
	w := suite.performRequest(http.MethodPost, "/api/v1/accounts", map[string]string{"name": "No Type"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	testID := uuid.NewString()

	suite.mockAccountSvc.On("GetAccountByID", mock.Anything, testID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, fmt.Sprintf("/api/v1/accounts/%s", testID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts_Success() {
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), Name: "Checking", Type: "bank", Balance: decimal.NewFromInt(100)},
		{AccountID: uuid.NewString(), Name: "Wallet", Type: "cash", Balance: decimal.NewFromInt(20)},
	}

	suite.mockAccountSvc.On("ListAccounts", mock.Anything).Return(accounts, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_Conflict() {
	testID := uuid.NewString()

	suite.mockAccountSvc.On("DeleteAccount", mock.Anything, testID).Return(apperrors.ErrConstraintViolation).Once()

	w := suite.performRequest(http.MethodDelete, fmt.Sprintf("/api/v1/accounts/%s", testID), nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_Success() {
	testID := uuid.NewString()

	suite.mockAccountSvc.On("DeleteAccount", mock.Anything, testID).Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, fmt.Sprintf("/api/v1/accounts/%s", testID), nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestAdjustBalance_Success() {
	testID := uuid.NewString()
	reqBody := dto.AdjustBalanceRequest{NewBalance: decimal.NewFromInt(500), Reason: "reconcile"}
	resp := &dto.AdjustBalanceResponse{
		Account: dto.AccountResponse{
			AccountID: testID,
			Name:      "Checking",
			Type:      "bank",
			Balance:   decimal.NewFromInt(500),
		},
		Adjustment: &dto.TransactionResponse{
			TransactionID: uuid.NewString(),
			AccountID:     testID,
			Amount:        decimal.NewFromInt(150),
			Kind:          domain.Income,
		},
	}

	suite.mockLedgerSvc.On("AdjustAccountBalance", mock.Anything, testID, reqBody).Return(resp, nil).Once()

	w := suite.performRequest(http.MethodPost, fmt.Sprintf("/api/v1/accounts/%s/adjust", testID), reqBody)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.AdjustBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.Account.Balance.Equal(decimal.NewFromInt(500)))
	suite.Require().NotNil(got.Adjustment)
	suite.True(got.Adjustment.Amount.Equal(decimal.NewFromInt(150)))
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestAdjustBalance_ValidationError() {
	testID := uuid.NewString()
	reqBody := dto.AdjustBalanceRequest{NewBalance: decimal.RequireFromString("1.005")}

	suite.mockLedgerSvc.On("AdjustAccountBalance", mock.Anything, testID, reqBody).Return(nil, apperrors.ErrValidation).Once()

	w := suite.performRequest(http.MethodPost, fmt.Sprintf("/api/v1/accounts/%s/adjust", testID), reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
