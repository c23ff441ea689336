package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/apperrors"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	portssvc "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/services"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/services"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, deltas, now)
	return args.Error(0)
}

func (m *MockAccountRepository) SetAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, accountID, balance, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Checking", Type: "bank"}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal("Checking", created.Name)
	suite.Equal("bank", created.Type)
	suite.True(created.Balance.IsZero())
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_TrimsWhitespace() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "  Wallet  ", Type: " cash "}

	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Name == "Wallet" && acc.Type == "cash"
	})).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Wallet", created.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_BlankName() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "   ", Type: "bank"}

	created, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Checking", Type: "bank"}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	created, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, testID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_Success() {
	ctx := context.Background()
	expected := []domain.Account{
		{AccountID: uuid.NewString(), Name: "Checking", Type: "bank", Balance: decimal.NewFromInt(120)},
		{AccountID: uuid.NewString(), Name: "Wallet", Type: "cash", Balance: decimal.NewFromInt(-15)},
	}

	suite.mockRepo.On("ListAccounts", ctx).Return(expected, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialFields() {
	ctx := context.Background()
	testID := uuid.NewString()
	existing := &domain.Account{
		AccountID: testID,
		Name:      "Old Name",
		Type:      "bank",
		Balance:   decimal.NewFromInt(50),
	}
	newName := "New Name"
	req := dto.UpdateAccountRequest{Name: &newName}

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Name == "New Name" && acc.Type == "bank"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, testID, req)

	suite.Require().NoError(err)
	suite.Equal("New Name", updated.Name)
	suite.Equal("bank", updated.Type)
	suite.True(updated.Balance.Equal(decimal.NewFromInt(50)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_BlankName() {
	ctx := context.Background()
	testID := uuid.NewString()
	existing := &domain.Account{AccountID: testID, Name: "Old Name", Type: "bank"}
	blank := "   "
	req := dto.UpdateAccountRequest{Name: &blank}

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, testID, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount")
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_WithTransactions() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("DeleteAccount", ctx, testID).Return(apperrors.ErrConstraintViolation).Once()

	err := suite.service.DeleteAccount(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConstraintViolation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_RepoError() {
	ctx := context.Background()
	testID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockRepo.On("DeleteAccount", ctx, testID).Return(expectedErr).Once()

	err := suite.service.DeleteAccount(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
