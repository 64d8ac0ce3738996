package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// countryHandler handles HTTP requests related to the price catalog.
type countryHandler struct {
	countryService portssvc.CountrySvcFacade
}

func newCountryHandler(cs portssvc.CountrySvcFacade) *countryHandler {
	return &countryHandler{countryService: cs}
}

// listCountries godoc
// @Summary List the price catalog
// @Description Returns every country in catalog order. With active=true only entries usable by the calculator are returned.
// @Tags countries
// @Produce json
// @Param active query bool false "Only enabled entries with a valid price"
// @Success 200 {array} dto.CountryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /countries [get]
func (h *countryHandler) listCountries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCountriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, err)
		return
	}

	list := h.countryService.ListCountries
	if params.Active {
		list = h.countryService.ListActiveCountries
	}
	countries, err := list(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list countries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCountryResponse(countries))
}

// createCountry godoc
// @Summary Add a country
// @Tags countries
// @Accept json
// @Produce json
// @Param country body dto.CreateCountryRequest true "Country details"
// @Success 201 {object} dto.CreateCountryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Currency already listed"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /countries [post]
func (h *countryHandler) createCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, ok := requireAdmin(c, logger)
	if !ok {
		return
	}

	var req dto.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	country, err := h.countryService.CreateCountry(c.Request.Context(), req, adminID)
	if err != nil {
		respondError(c, logger, err, "Failed to create country")
		return
	}

	logger.Info("Country created", slog.String("country_id", country.CountryID))
	c.JSON(http.StatusCreated, dto.CreateCountryResponse{
		Message: "Country created",
		Country: dto.ToCountryResponse(country),
	})
}

// updateCountries godoc
// @Summary Bulk update the catalog
// @Description Applies partial updates to several countries at once. Either every change is stored or none is.
// @Tags countries
// @Accept json
// @Produce json
// @Param updates body []dto.UpdateCountryRequest true "Partial updates keyed by id"
// @Success 200 {object} dto.BulkUpdateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown country id"
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /countries [put]
func (h *countryHandler) updateCountries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, ok := requireAdmin(c, logger)
	if !ok {
		return
	}

	var reqs []dto.UpdateCountryRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		badRequest(c, logger, err)
		return
	}

	if err := h.countryService.UpdateCountries(c.Request.Context(), reqs, adminID); err != nil {
		respondError(c, logger, err, "Failed to update countries")
		return
	}
	c.JSON(http.StatusOK, dto.BulkUpdateResponse{Message: "Countries updated", Updated: len(reqs)})
}

// enableCountry godoc
// @Summary Enable a country
// @Tags countries
// @Produce json
// @Param id path string true "Country ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /countries/{id}/enable [put]
func (h *countryHandler) enableCountry(c *gin.Context) {
	h.setEnabled(c, true)
}

// disableCountry godoc
// @Summary Disable a country
// @Tags countries
// @Produce json
// @Param id path string true "Country ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /countries/{id}/disable [put]
func (h *countryHandler) disableCountry(c *gin.Context) {
	h.setEnabled(c, false)
}

func (h *countryHandler) setEnabled(c *gin.Context, enabled bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, ok := requireAdmin(c, logger)
	if !ok {
		return
	}

	countryID := c.Param("id")
	if err := h.countryService.SetCountryEnabled(c.Request.Context(), countryID, enabled, adminID); err != nil {
		respondError(c, logger, err, "Failed to update country")
		return
	}

	msg := "Country disabled"
	if enabled {
		msg = "Country enabled"
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msg})
}

// deleteCountry godoc
// @Summary Delete a country
// @Tags countries
// @Produce json
// @Param id path string true "Country ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /countries/{id} [delete]
func (h *countryHandler) deleteCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, ok := requireAdmin(c, logger)
	if !ok {
		return
	}

	if err := h.countryService.DeleteCountry(c.Request.Context(), c.Param("id"), adminID); err != nil {
		respondError(c, logger, err, "Failed to delete country")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Country deleted"})
}
