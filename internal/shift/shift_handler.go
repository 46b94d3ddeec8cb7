package shift

import (
	"net/http"
	"strconv"

	"go-salon/internal/shared/apperror"
	"go-salon/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Open(c *gin.Context) {
	salonID := c.GetString("salon_id")
	cashierID := c.GetString("user_id_validated")

	var req OpenShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Open(c.Request.Context(), salonID, cashierID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	salonID := c.GetString("salon_id")

	resp, err := h.service.GetAll(c.Request.Context(), salonID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetOpen(c *gin.Context) {
	salonID := c.GetString("salon_id")
	cashierID := c.GetString("user_id_validated")

	resp, err := h.service.GetOpen(c.Request.Context(), salonID, cashierID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) PreviewClose(c *gin.Context) {
	salonID := c.GetString("salon_id")
	id := c.Param("id")

	var actualCash *float64
	if raw := c.Query("actual_cash"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid actual_cash", nil)
			return
		}
		actualCash = &v
	}

	resp, err := h.service.PreviewClose(c.Request.Context(), salonID, id, actualCash)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Close(c *gin.Context) {
	salonID := c.GetString("salon_id")
	id := c.Param("id")

	var req CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Close(c.Request.Context(), salonID, id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
