package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/SscSPs/currency_exchange_app/internal/utils/conversion"
	"github.com/gin-gonic/gin"
)

type conversionHandler struct {
	conversionService portssvc.ConversionSvc
}

func newConversionHandler(cs portssvc.ConversionSvc) *conversionHandler {
	return &conversionHandler{conversionService: cs}
}

// convert godoc
// @Summary Convert an amount
// @Description Runs the calculator against the active catalog. LEFT_TO_RIGHT applies the 0.80 spread, RIGHT_TO_LEFT its inverse. A currency missing from the catalog converts to 0.
// @Tags calculator
// @Produce json
// @Param amount query string true "Amount typed in the authoritative field"
// @Param from query string true "Left currency code"
// @Param to query string true "Right currency code"
// @Param direction query string false "LEFT_TO_RIGHT (default) or RIGHT_TO_LEFT"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /convert [get]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(req.Amount), 64)
	if err != nil || !conversion.Valid(amount) {
		badRequest(c, logger, fmt.Errorf("amount %q is not a number", req.Amount))
		return
	}
	dir, err := conversion.ParseDirection(req.Direction)
	if err != nil {
		badRequest(c, logger, err)
		return
	}

	result, err := h.conversionService.Convert(c.Request.Context(), amount, req.From, req.To, dir)
	if err != nil {
		respondError(c, logger, err, "Failed to convert")
		return
	}
	c.JSON(http.StatusOK, dto.ToConvertResponse(result))
}
