package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Achala357/cargills-backend/docs"
	"github.com/Achala357/cargills-backend/internal/domain"
	"github.com/Achala357/cargills-backend/internal/dto"
	"github.com/Achala357/cargills-backend/internal/service"
)

// Handler owns the gin router and translates HTTP traffic into service calls.
type Handler struct {
	records service.RecordServicer
	reports service.ReportServicer
	router  *gin.Engine
	log     *zap.Logger
}

// NewHandler wires all portal routes. CORS is wide open: the portal SPA is
// served from a different origin in every deployment.
func NewHandler(records service.RecordServicer, reports service.ReportServicer, log *zap.Logger) *Handler {
	h := &Handler{
		records: records,
		reports: reports,
		router:  gin.Default(),
		log:     log,
	}

	h.router.Use(cors.Default())
	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := h.router.Group("/api")

	customers := api.Group("/customers")
	customers.GET("", h.listCustomers)
	customers.POST("", h.createCustomer)
	customers.GET("/:id", h.getCustomer)
	customers.PUT("/:id", h.updateCustomer)
	customers.DELETE("/:id", h.deleteCustomer)

	products := api.Group("/products")
	products.GET("", h.listProducts)
	products.POST("", h.createProduct)
	products.GET("/:id", h.getProduct)
	products.PUT("/:id", h.updateProduct)
	products.DELETE("/:id", h.deleteProduct)

	stores := api.Group("/stores")
	stores.GET("", h.listStores)
	stores.POST("", h.createStore)
	stores.GET("/:id", h.getStore)
	stores.PUT("/:id", h.updateStore)
	stores.DELETE("/:id", h.deleteStore)

	transactions := api.Group("/transactions")
	transactions.GET("", h.listTransactions)
	transactions.POST("", h.createTransaction)
	transactions.GET("/:id", h.getTransaction)
	transactions.PUT("/:id", h.updateTransaction)
	transactions.DELETE("/:id", h.deleteTransaction)

	offers := api.Group("/offers")
	offers.GET("", h.listOffers)
	offers.POST("", h.createOffer)
	offers.GET("/:id", h.getOffer)
	offers.PUT("/:id", h.updateOffer)
	offers.DELETE("/:id", h.deleteOffer)

	analytics := api.Group("/analytics")
	analytics.GET("/loyalty-tier-count", h.loyaltyTierCount)
	analytics.GET("/sales-by-store", h.salesByStore)
	analytics.GET("/top-products", h.topProducts)
	analytics.GET("/avg-basket-by-tier", h.avgBasketByTier)
	analytics.GET("/top-spenders", h.topSpenders)
	analytics.GET("/category-spend", h.categorySpend)
	analytics.GET("/store-category-demand", h.storeCategoryDemand)
	analytics.GET("/churn-risk", h.churnRisk)
	analytics.GET("/dairy-buyers", h.dairyBuyers)
	analytics.GET("/price-sensitivity", h.priceSensitivity)
	analytics.GET("/household-vs-basket", h.householdVsBasket)
	analytics.GET("/clv", h.customerLifetimeValue)
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// respondError maps the domain error taxonomy onto HTTP statuses.
func (h *Handler) respondError(c *gin.Context, err error) {
	var (
		validation  *domain.ValidationError
		notFound    *domain.NotFound
		immutable   *domain.Immutable
		unavailable *domain.DataUnavailable
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: validation.Error(),
		})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "not_found",
			Message: notFound.Error(),
		})
	case errors.As(err, &immutable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:   "immutable_record",
			Message: immutable.Error(),
		})
	case errors.As(err, &unavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:   "data_unavailable",
			Message: unavailable.Error(),
		})
	default:
		h.log.Error("Unhandled service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "internal_error",
		})
	}
}

// limitParam reads an optional positive ?limit= query parameter. Zero means
// "use the query's default".
func limitParam(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, &domain.ValidationError{Field: "limit", Reason: "must be a positive integer"}
	}
	return limit, nil
}
