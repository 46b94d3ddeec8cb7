package bonus

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

func (h *Handler) Create(c *gin.Context) {
	salonID := c.GetString("salon_id")
	actorID := c.GetString("user_id_validated")

	var req CreateBonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), salonID, actorID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetByEmployeeMonth(c *gin.Context) {
	salonID := c.GetString("salon_id")
	employeeID := c.Param("employeeId")
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	resp, err := h.service.GetByEmployeeAndMonth(c.Request.Context(), salonID, employeeID, month, year)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	salonID := c.GetString("salon_id")
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), salonID, id); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
