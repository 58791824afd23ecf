package handlers

import (
	"errors"
	"net/http"

	"bookly/middleware"
	"bookly/models"
	"bookly/services/business"
	"bookly/services/user"
	"bookly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessHandler exposes owner-facing business profile endpoints plus the
// public read surface clients browse.
type BusinessHandler struct {
	Service business.BusinessService
	Users   user.UserService
}

func NewBusinessHandler(svc business.BusinessService, users user.UserService) *BusinessHandler {
	return &BusinessHandler{Service: svc, Users: users}
}

// List returns all businesses.
func (h *BusinessHandler) List(c *gin.Context) {
	businesses, err := h.Service.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list businesses", err.Error())
		return
	}
	c.JSON(http.StatusOK, businesses)
}

// GetByID returns one business profile.
func (h *BusinessHandler) GetByID(c *gin.Context) {
	biz, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, business.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "business not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch business", err.Error())
		return
	}
	c.JSON(http.StatusOK, biz)
}

// Create registers a business owned by the caller.
func (h *BusinessHandler) Create(c *gin.Context) {
	var input models.Business
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ownerID := middleware.CallerID(c)
	biz, err := h.Service.Create(ownerID, &input)
	if err != nil {
		if errors.Is(err, business.ErrInvalidInput) {
			utils.JSONError(c, http.StatusBadRequest, "invalid business profile", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create business", err.Error())
		return
	}

	if err := h.Users.AttachBusiness(ownerID, biz.ID); err != nil {
		zap.L().Warn("Failed to attach business to owner",
			zap.String("ownerID", ownerID), zap.String("businessID", biz.ID), zap.Error(err))
	}

	c.JSON(http.StatusCreated, biz)
}

// Update replaces the caller's business profile.
func (h *BusinessHandler) Update(c *gin.Context) {
	var input models.Business
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.ID = c.Param("id")

	biz, err := h.Service.Update(middleware.CallerID(c), &input)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "business not found", "")
		case errors.Is(err, business.ErrForbidden):
			utils.JSONError(c, http.StatusForbidden, "not allowed to modify this business", "")
		case errors.Is(err, business.ErrInvalidInput):
			utils.JSONError(c, http.StatusBadRequest, "invalid business profile", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update business", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, biz)
}
