package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	customerRepo "probook/database/repository/customer"
	"probook/models"
	"probook/services/customer"
	"probook/utils"
)

// CustomerHandler serves the professional's client roster.
type CustomerHandler struct {
	Service customer.CustomerService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(svc customer.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: svc}
}

// List handles GET /api/customers. hasJobs is recomputed on every fetch.
func (h *CustomerHandler) List(c *gin.Context) {
	userID := c.GetString("userID")
	customers, err := h.Service.ListCustomers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var input models.Customer
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if input.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "name is required")
		return
	}

	input.UserID = c.GetString("userID")
	if err := h.Service.CreateCustomer(c.Request.Context(), &input); err != nil {
		if errors.Is(err, customerRepo.ErrDuplicateEmail) {
			utils.JSONError(c, http.StatusConflict, "Duplicate customer", "a customer with this email already exists")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, input)
}

// Update handles PUT /api/customers/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	var input models.Customer
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	input.ID = c.Param("id")

	err := h.Service.UpdateCustomer(c.Request.Context(), c.GetString("userID"), &input)
	if err != nil {
		if errors.Is(err, customerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Customer not found", input.ID)
			return
		}
		if errors.Is(err, customerRepo.ErrDuplicateEmail) {
			utils.JSONError(c, http.StatusConflict, "Duplicate customer", "a customer with this email already exists")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

// Delete handles DELETE /api/customers/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	err := h.Service.DeleteCustomer(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, customerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Customer not found", c.Param("id"))
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
