package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/utils/conversion"
	"github.com/stretchr/testify/mock"
)

// --- Mock CountryService ---
type MockCountryService struct {
	mock.Mock
}

func (m *MockCountryService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

func (m *MockCountryService) ListActiveCountries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

func (m *MockCountryService) CreateCountry(ctx context.Context, req dto.CreateCountryRequest, adminID string) (*domain.Country, error) {
	args := m.Called(ctx, req, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCountryService) UpdateCountries(ctx context.Context, reqs []dto.UpdateCountryRequest, adminID string) error {
	args := m.Called(ctx, reqs, adminID)
	return args.Error(0)
}

func (m *MockCountryService) SetCountryEnabled(ctx context.Context, countryID string, enabled bool, adminID string) error {
	args := m.Called(ctx, countryID, enabled, adminID)
	return args.Error(0)
}

func (m *MockCountryService) DeleteCountry(ctx context.Context, countryID string, adminID string) error {
	args := m.Called(ctx, countryID, adminID)
	return args.Error(0)
}

var _ portssvc.CountrySvcFacade = (*MockCountryService)(nil)

// --- Mock CommentService ---
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListVisibleComments(ctx context.Context) ([]domain.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockCommentService) ListAllComments(ctx context.Context) ([]domain.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockCommentService) CreateComment(ctx context.Context, req dto.CreateCommentRequest) (*domain.Comment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentService) UpdateVisibility(ctx context.Context, updates []dto.CommentVisibilityUpdate, adminID string) error {
	args := m.Called(ctx, updates, adminID)
	return args.Error(0)
}

func (m *MockCommentService) DeleteComments(ctx context.Context, ids []string, adminID string) (int64, error) {
	args := m.Called(ctx, ids, adminID)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.CommentSvcFacade = (*MockCommentService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, name, password string) (string, time.Time, *domain.Admin, error) {
	args := m.Called(ctx, name, password)
	var admin *domain.Admin
	if args.Get(2) != nil {
		admin = args.Get(2).(*domain.Admin)
	}
	return args.String(0), args.Get(1).(time.Time), admin, args.Error(3)
}

func (m *MockAuthService) GetAdmin(ctx context.Context, adminID string) (*domain.Admin, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context, name, password string) error {
	args := m.Called(ctx, name, password)
	return args.Error(0)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, amount float64, from, to string, dir conversion.Direction) (*domain.Conversion, error) {
	args := m.Called(ctx, amount, from, to, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

var _ portssvc.ConversionSvc = (*MockConversionService)(nil)
