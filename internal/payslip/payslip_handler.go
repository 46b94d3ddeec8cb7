package payslip

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

type requestDocumentBody struct {
	Month int `json:"month" binding:"required,gte=1,lte=12"`
	Year  int `json:"year" binding:"required,gte=2000,lte=2100"`
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetStatement(c *gin.Context) {
	salonID := c.GetString("salon_id")
	employeeID := c.Param("employeeId")
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	resp, err := h.service.GetStatement(c.Request.Context(), salonID, employeeID, month, year)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RequestDocument(c *gin.Context) {
	salonID := c.GetString("salon_id")
	actorID := c.GetString("user_id_validated")
	employeeID := c.Param("employeeId")

	var body requestDocumentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, mapped.Code, mapped.Message, nil)
		return
	}

	err := h.service.RequestDocument(c.Request.Context(), salonID, actorID, employeeID, body.Month, body.Year)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{"requested": true}, nil)
}

func (h *Handler) DownloadDocument(c *gin.Context) {
	salonID := c.GetString("salon_id")
	employeeID := c.Param("employeeId")
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	resp, err := h.service.GetDocument(c.Request.Context(), salonID, employeeID, month, year)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, resp.FileURL)
}
