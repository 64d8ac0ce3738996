package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/platform/metrics"
	"github.com/SscSPs/currency_exchange_app/internal/utils/catalog"
	"github.com/SscSPs/currency_exchange_app/internal/utils/mapping"
	"github.com/google/uuid"
)

const maxCountryNameLength = 100

type countryService struct {
	BaseService
	countryRepo portsrepo.CountryRepositoryFacade
}

// NewCountryService creates the price catalog service.
func NewCountryService(countryRepo portsrepo.CountryRepositoryFacade) portssvc.CountrySvcFacade {
	return &countryService{BaseService: newBaseService("catalog"), countryRepo: countryRepo}
}

func validPrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}

func checkCountryName(name string) error {
	if utf8.RuneCountInString(name) > maxCountryNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", apperrors.ErrValidation, maxCountryNameLength)
	}
	return nil
}

func normalizeCurrencyCode(code string) (string, error) {
	if !dto.IsCurrencyCode(code) {
		return "", fmt.Errorf("%w: currency code %q must be three letters", apperrors.ErrValidation, code)
	}
	return strings.ToUpper(strings.TrimSpace(code)), nil
}

func (s *countryService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.countryRepo.ListCountries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list countries")
		return nil, fmt.Errorf("failed to list countries in service: %w", err)
	}
	if countries == nil {
		return []domain.Country{}, nil
	}
	return countries, nil
}

// ListActiveCountries keeps the entries the calculator may use, in catalog order.
func (s *countryService) ListActiveCountries(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.ListCountries(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := catalog.FilterActive(mapping.ToCatalogRaw(countries))
	active := make(map[string]struct{}, len(snapshot))
	for _, e := range snapshot {
		active[e.ID] = struct{}{}
	}

	out := make([]domain.Country, 0, len(snapshot))
	for _, c := range countries {
		if _, ok := active[c.CountryID]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *countryService) CreateCountry(ctx context.Context, req dto.CreateCountryRequest, adminID string) (*domain.Country, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if err := checkCountryName(name); err != nil {
		return nil, err
	}
	code, err := normalizeCurrencyCode(req.CurrencyCode)
	if err != nil {
		return nil, err
	}
	if !validPrice(req.USDPrice) {
		return nil, fmt.Errorf("%w: usdPrice must be positive", apperrors.ErrValidation)
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	now := time.Now().UTC()
	country := domain.Country{
		CountryID:    uuid.NewString(),
		Name:         name,
		CurrencyCode: code,
		USDPrice:     req.USDPrice,
		Enabled:      enabled,
		FlagImage:    strings.TrimSpace(req.FlagImage),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}

	if err := s.countryRepo.SaveCountry(ctx, country); err != nil {
		s.LogError(ctx, err, "Failed to save country", slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to create country in service: %w", err)
	}

	metrics.RecordCatalogWrite("create")
	s.LogInfo(ctx, "Country created", slog.String("country_id", country.CountryID), slog.String("currency_code", code))
	return &country, nil
}

func (s *countryService) UpdateCountries(ctx context.Context, reqs []dto.UpdateCountryRequest, adminID string) error {
	if len(reqs) == 0 {
		return fmt.Errorf("%w: no countries to update", apperrors.ErrValidation)
	}

	seen := make(map[string]struct{}, len(reqs))
	patches := make([]domain.CountryPatch, 0, len(reqs))
	for _, req := range reqs {
		if _, dup := seen[req.ID]; dup {
			return fmt.Errorf("%w: country %s appears more than once", apperrors.ErrValidation, req.ID)
		}
		seen[req.ID] = struct{}{}

		patch := req.ToCountryPatch()
		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return fmt.Errorf("%w: name of country %s cannot be blank", apperrors.ErrValidation, req.ID)
			}
			if err := checkCountryName(name); err != nil {
				return err
			}
			patch.Name = &name
		}
		if patch.CurrencyCode != nil {
			code, err := normalizeCurrencyCode(*patch.CurrencyCode)
			if err != nil {
				return err
			}
			patch.CurrencyCode = &code
		}
		if patch.USDPrice != nil && !validPrice(*patch.USDPrice) {
			return fmt.Errorf("%w: usdPrice of country %s must be positive", apperrors.ErrValidation, req.ID)
		}
		patches = append(patches, patch)
	}

	if err := s.countryRepo.UpdateCountries(ctx, patches, adminID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to update countries", slog.Int("count", len(patches)))
		return fmt.Errorf("failed to update countries in service: %w", err)
	}

	metrics.RecordCatalogWrite("update")
	s.LogInfo(ctx, "Countries updated", slog.Int("count", len(patches)), slog.String("admin_id", adminID))
	return nil
}

func (s *countryService) SetCountryEnabled(ctx context.Context, countryID string, enabled bool, adminID string) error {
	if err := s.countryRepo.SetCountryEnabled(ctx, countryID, enabled, adminID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set enabled=%t on country %s: %w", enabled, countryID, err)
	}
	if enabled {
		metrics.RecordCatalogWrite("enable")
	} else {
		metrics.RecordCatalogWrite("disable")
	}
	return nil
}

func (s *countryService) DeleteCountry(ctx context.Context, countryID string, adminID string) error {
	if err := s.countryRepo.DeleteCountry(ctx, countryID); err != nil {
		return fmt.Errorf("failed to delete country %s: %w", countryID, err)
	}
	metrics.RecordCatalogWrite("delete")
	s.LogInfo(ctx, "Country deleted", slog.String("country_id", countryID), slog.String("admin_id", adminID))
	return nil
}
