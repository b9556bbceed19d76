package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Achala357/cargills-backend/internal/dto"
)

// Customers

// listCustomers handles GET /api/customers
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} domain.Customer
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/customers [get]
func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.records.ListCustomers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// getCustomer handles GET /api/customers/:id
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} domain.Customer
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/customers/{id} [get]
func (h *Handler) getCustomer(c *gin.Context) {
	customer, err := h.records.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// createCustomer handles POST /api/customers
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CustomerPayload true "Customer data"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/customers [post]
func (h *Handler) createCustomer(c *gin.Context) {
	var payload dto.CustomerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.badPayload(c, err)
		return
	}
	customer, err := h.records.CreateCustomer(c.Request.Context(), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// updateCustomer handles PUT /api/customers/:id
// @Summary Update a customer
// @Description Full-record replace: the submitted fields become the record.
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Record id"
// @Param customer body dto.CustomerPayload true "Customer data"
// @Success 200 {object} domain.Customer
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/customers/{id} [put]
func (h *Handler) updateCustomer(c *gin.Context) {
	var payload dto.CustomerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.badPayload(c, err)
		return
	}
	customer, err := h.records.UpdateCustomer(c.Request.Context(), c.Param("id"), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// deleteCustomer handles DELETE /api/customers/:id
// @Summary Delete a customer
// @Tags customers
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/customers/{id} [delete]
func (h *Handler) deleteCustomer(c *gin.Context) {
	if err := h.records.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Status: "deleted"})
}

// Products

// listProducts handles GET /api/products
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} domain.Product
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/products [get]
func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.records.ListProducts(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// getProduct handles GET /api/products/:id
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} domain.Product
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [get]
func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.records.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// createProduct handles POST /api/products
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductPayload true "Product data"
// @Success 201 {object} domain.Product
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/products [post]
func (h *Handler) createProduct(c *gin.Context) {
	var payload dto.ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.badPayload(c, err)
		return
	}
	product, err := h.records.CreateProduct(c.Request.Context(), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// updateProduct handles PUT /api/products/:id
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Record id"
// @Param product body dto.ProductPayload true "Product data"
// @Success 200 {object} domain.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [put]
func (h *Handler) updateProduct(c *gin.Context) {
	var payload dto.ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.badPayload(c, err)
		return
	}
	product, err := h.records.UpdateProduct(c.Request.Context(), c.Param("id"), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// deleteProduct handles DELETE /api/products/:id
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [delete]
func (h *Handler) deleteProduct(c *gin.Context) {
	if err := h.records.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Status: "deleted"})
}

// Stores

// listStores handles GET /api/stores
// @Summary List stores
// @Tags stores
// @Produce json
// @Success 200 {array} domain.Store
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/stores [get]
func (h *Handler) listStores(c *gin.Context) {
	stores, err := h.records.ListStores(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

// getStore handles GET /api/stores/:id
// @Summary Get a store
// @Tags stores
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} domain.Store
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/stores/{id} [get]
func (h *Handler) getStore(c *gin.Context) {
	store, err := h.records.GetStore(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

// createStore handles POST /api/stores
// @Summary Create a store
// @Tags stores
// @Accept json
// @Produce json
// @Param store body dto.StorePayload true "Store data"
// @Success 201 {object} domain.Store
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/stores [post]
func (h *Handler) createStore(c *gin.Context) {
	var payload dto.StorePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.badPayload(c, err)
		return
	}
	store, err := h.records.CreateStore(c.Request.Context(), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, store)
}

// updateStore handles PUT /api/stores/:id
// @Summary Update a store
// @Tags stores
// @Accept json
// @Produce json
// @Param id path string true "Record id"
// @Param store body dto.StorePayload true "Store data"
// @Success 200 {object} domain.Store
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/stores/{id} [put]
func (h *Handler) updateStore(c *gin.Context) {
	var payload dto.StorePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.badPayload(c, err)
		return
	}
	store, err := h.records.UpdateStore(c.Request.Context(), c.Param("id"), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

// deleteStore handles DELETE /api/stores/:id
// @Summary Delete a store
// @Tags stores
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/stores/{id} [delete]
func (h *Handler) deleteStore(c *gin.Context) {
	if err := h.records.DeleteStore(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Status: "deleted"})
}

// Transactions

// listTransactions handles GET /api/transactions
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Success 200 {array} domain.Transaction
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/transactions [get]
func (h *Handler) listTransactions(c *gin.Context) {
	transactions, err := h.records.ListTransactions(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// getTransaction handles GET /api/transactions/:id
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} domain.Transaction
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/transactions/{id} [get]
func (h *Handler) getTransaction(c *gin.Context) {
	transaction, err := h.records.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// createTransaction handles POST /api/transactions
// @Summary Create a transaction
// @Description Line totals and the transaction total are recomputed from qty and price.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.TransactionPayload true "Transaction data"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/transactions [post]
func (h *Handler) createTransaction(c *gin.Context) {
	var payload dto.TransactionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.badPayload(c, err)
		return
	}
	transaction, err := h.records.CreateTransaction(c.Request.Context(), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transaction)
}

// updateTransaction handles PUT /api/transactions/:id
// @Summary Update a transaction
// @Description Rejected with 409 when the deployment marks transactions append-only.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Record id"
// @Param transaction body dto.TransactionPayload true "Transaction data"
// @Success 200 {object} domain.Transaction
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/transactions/{id} [put]
func (h *Handler) updateTransaction(c *gin.Context) {
	var payload dto.TransactionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.badPayload(c, err)
		return
	}
	transaction, err := h.records.UpdateTransaction(c.Request.Context(), c.Param("id"), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// deleteTransaction handles DELETE /api/transactions/:id
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/transactions/{id} [delete]
func (h *Handler) deleteTransaction(c *gin.Context) {
	if err := h.records.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Status: "deleted"})
}

// Offers

// listOffers handles GET /api/offers
// @Summary List offers
// @Tags offers
// @Produce json
// @Success 200 {array} domain.Offer
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/offers [get]
func (h *Handler) listOffers(c *gin.Context) {
	offers, err := h.records.ListOffers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

// getOffer handles GET /api/offers/:id
// @Summary Get an offer
// @Tags offers
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} domain.Offer
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/offers/{id} [get]
func (h *Handler) getOffer(c *gin.Context) {
	offer, err := h.records.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

// createOffer handles POST /api/offers
// @Summary Create an offer
// @Tags offers
// @Accept json
// @Produce json
// @Param offer body dto.OfferPayload true "Offer data"
// @Success 201 {object} domain.Offer
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/offers [post]
func (h *Handler) createOffer(c *gin.Context) {
	var payload dto.OfferPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.badPayload(c, err)
		return
	}
	offer, err := h.records.CreateOffer(c.Request.Context(), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offer)
}

// updateOffer handles PUT /api/offers/:id
// @Summary Update an offer
// @Tags offers
// @Accept json
// @Produce json
// @Param id path string true "Record id"
// @Param offer body dto.OfferPayload true "Offer data"
// @Success 200 {object} domain.Offer
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/offers/{id} [put]
func (h *Handler) updateOffer(c *gin.Context) {
	var payload dto.OfferPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.badPayload(c, err)
		return
	}
	offer, err := h.records.UpdateOffer(c.Request.Context(), c.Param("id"), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

// deleteOffer handles DELETE /api/offers/:id
// @Summary Delete an offer
// @Tags offers
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/offers/{id} [delete]
func (h *Handler) deleteOffer(c *gin.Context) {
	if err := h.records.DeleteOffer(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Status: "deleted"})
}

// badPayload rejects a body that failed JSON decoding. Type mismatches (a
// string where a number belongs) land here, so malformed numerics are never
// coerced to zero.
func (h *Handler) badPayload(c *gin.Context, err error) {
	h.log.Warn("Invalid request payload", zap.Error(err))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}
