package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// loyaltyTierCount handles GET /api/analytics/loyalty-tier-count
// @Summary Customer count per loyalty tier
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.TierCountRow
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/analytics/loyalty-tier-count [get]
func (h *Handler) loyaltyTierCount(c *gin.Context) {
	rows, err := h.reports.LoyaltyTierCounts(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// salesByStore handles GET /api/analytics/sales-by-store
// @Summary Total revenue per store
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.StoreSalesRow
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/analytics/sales-by-store [get]
func (h *Handler) salesByStore(c *gin.Context) {
	rows, err := h.reports.SalesByStore(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// topProducts handles GET /api/analytics/top-products
// @Summary Most purchased products by unit volume
// @Tags analytics
// @Produce json
// @Param limit query int false "Row cap, defaults to 5"
// @Success 200 {array} dto.ProductDemandRow
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/analytics/top-products [get]
func (h *Handler) topProducts(c *gin.Context) {
	limit, err := limitParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	rows, err := h.reports.TopProducts(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// avgBasketByTier handles GET /api/analytics/avg-basket-by-tier
// @Summary Average line items per transaction, grouped by loyalty tier
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.TierBasketRow
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/analytics/avg-basket-by-tier [get]
func (h *Handler) avgBasketByTier(c *gin.Context) {
	rows, err := h.reports.AvgBasketByTier(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// topSpenders handles GET /api/analytics/top-spenders
// @Summary Customers ranked by total spend
// @Tags analytics
// @Produce json
// @Param limit query int false "Row cap, unbounded when omitted"
// @Success 200 {array} dto.TopSpenderRow
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/analytics/top-spenders [get]
func (h *Handler) topSpenders(c *gin.Context) {
	limit, err := limitParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	rows, err := h.reports.TopSpenders(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// categorySpend handles GET /api/analytics/category-spend
// @Summary Spend per customer per product category
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.CategorySpendRow
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/analytics/category-spend [get]
func (h *Handler) categorySpend(c *gin.Context) {
	rows, err := h.reports.CategorySpend(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// storeCategoryDemand handles GET /api/analytics/store-category-demand
// @Summary Unit volume per store per product category
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.StoreCategoryRow
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/analytics/store-category-demand [get]
func (h *Handler) storeCategoryDemand(c *gin.Context) {
	rows, err := h.reports.StoreCategoryDemand(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// churnRisk handles GET /api/analytics/churn-risk
// @Summary Customers whose last purchase predates the churn window
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.ChurnRiskRow
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/analytics/churn-risk [get]
func (h *Handler) churnRisk(c *gin.Context) {
	rows, err := h.reports.ChurnRisk(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// dairyBuyers handles GET /api/analytics/dairy-buyers
// @Summary Customer and transaction pairs that include a Dairy item
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.DairyBuyerRow
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/analytics/dairy-buyers [get]
func (h *Handler) dairyBuyers(c *gin.Context) {
	rows, err := h.reports.DairyBuyers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// priceSensitivity handles GET /api/analytics/price-sensitivity
// @Summary Average unit price paid per loyalty tier
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.PriceSensitivityRow
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/analytics/price-sensitivity [get]
func (h *Handler) priceSensitivity(c *gin.Context) {
	rows, err := h.reports.PriceSensitivity(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// householdVsBasket handles GET /api/analytics/household-vs-basket
// @Summary Average basket value grouped by household size
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.HouseholdBasketRow
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/analytics/household-vs-basket [get]
func (h *Handler) householdVsBasket(c *gin.Context) {
	rows, err := h.reports.HouseholdVsBasket(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// customerLifetimeValue handles GET /api/analytics/clv
// @Summary Lifetime spend and transaction count for the highest value customers
// @Tags analytics
// @Produce json
// @Param limit query int false "Row cap, defaults to 10"
// @Success 200 {array} dto.CustomerValueRow
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/analytics/clv [get]
func (h *Handler) customerLifetimeValue(c *gin.Context) {
	limit, err := limitParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	rows, err := h.reports.CustomerLifetimeValue(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
