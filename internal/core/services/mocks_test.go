package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock CountryRepository ---
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

func (m *MockCountryRepository) FindCountryByID(ctx context.Context, countryID string) (*domain.Country, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCountryRepository) SaveCountry(ctx context.Context, country domain.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockCountryRepository) UpdateCountries(ctx context.Context, patches []domain.CountryPatch, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, patches, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockCountryRepository) SetCountryEnabled(ctx context.Context, countryID string, enabled bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, countryID, enabled, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockCountryRepository) DeleteCountry(ctx context.Context, countryID string) error {
	args := m.Called(ctx, countryID)
	return args.Error(0)
}

// --- Mock CommentRepository ---
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) ListComments(ctx context.Context, visibleOnly bool) ([]domain.Comment, error) {
	args := m.Called(ctx, visibleOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) UpdateCommentVisibility(ctx context.Context, updates []domain.CommentVisibility, updatedAt time.Time) error {
	args := m.Called(ctx, updates, updatedAt)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteComments(ctx context.Context, commentIDs []string) (int64, error) {
	args := m.Called(ctx, commentIDs)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock AdminRepository ---
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindAdminByName(ctx context.Context, name string) (*domain.Admin, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}
