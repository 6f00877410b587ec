package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"appraisalhub-properties/internal/errors"
	"appraisalhub-properties/internal/models"
	"appraisalhub-properties/internal/services"
	"appraisalhub-properties/internal/validators"
	"appraisalhub-properties/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PropertyDataHandler exposes the assembled property-data pipeline over HTTP.
type PropertyDataHandler struct {
	dataService  *services.PropertyDataService
	batchService *services.BatchService
	validator    validators.ResponseValidator
}

func NewPropertyDataHandler(
	dataService *services.PropertyDataService,
	batchService *services.BatchService,
	validator validators.ResponseValidator,
) *PropertyDataHandler {
	return &PropertyDataHandler{
		dataService:  dataService,
		batchService: batchService,
		validator:    validator,
	}
}

// GetPropertyData returns the full assembled envelope for one property.
// The envelope itself carries success or failure; the HTTP status mirrors it.
func (h *PropertyDataHandler) GetPropertyData(c *gin.Context) {
	id := c.Param("id")
	resp := h.dataService.GetPropertyData(c.Request.Context(), id)

	if violations := h.validator.ValidateResponse(resp); len(violations) > 0 {
		logger.GlobalLogger.Debugf("Response validation flagged issues: propertyId=%s, violations=%v", id, violations)
	}

	status := http.StatusOK
	if !resp.Success {
		status = errors.MapError(stderrors.New(resp.Error)).HTTPStatus
	}
	c.JSON(status, resp)
}

// GetComparables returns the ranked comparable sales for a property.
func (h *PropertyDataHandler) GetComparables(c *gin.Context) {
	id := c.Param("id")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}

	comparables, err := h.dataService.GetComparables(c.Request.Context(), id, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"propertyId":           id,
		"comparableProperties": comparables,
	})
}

// GetValuation returns the AVM valuation estimate for a property.
func (h *PropertyDataHandler) GetValuation(c *gin.Context) {
	id := c.Param("id")
	valuation, err := h.dataService.GetValuation(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if valuation == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no valuation available for this property"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"propertyId": id,
		"valuation":  valuation,
	})
}

// BatchPropertyData assembles envelopes for a list of property IDs.
func (h *PropertyDataHandler) BatchPropertyData(c *gin.Context) {
	var req models.BatchDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validator.ValidateBatchRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := h.batchService.GetBatchPropertyData(c.Request.Context(), req.PropertyIDs)
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetMarketTrends returns the market-trends view for a suburb and city.
func (h *PropertyDataHandler) GetMarketTrends(c *gin.Context) {
	suburb := c.Query("suburb")
	city := c.Query("city")
	if suburb == "" || city == "" {
		c.Error(fmt.Errorf("suburb and city are required"))
		return
	}

	trends, err := h.dataService.GetMarketTrends(c.Request.Context(), suburb, city)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// InvalidatePropertyData drops a stored assembly so the next read rebuilds
// it from the provider.
func (h *PropertyDataHandler) InvalidatePropertyData(c *gin.Context) {
	id := c.Param("id")
	if err := h.dataService.InvalidatePropertyData(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ListPropertyData returns stored assemblies with pagination.
func (h *PropertyDataHandler) ListPropertyData(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	response, err := h.dataService.GetStoredPropertyData(c.Request.Context(), offset, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response)
}
