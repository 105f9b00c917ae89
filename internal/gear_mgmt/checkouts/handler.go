package checkouts

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"basecamp-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/checkouts", h.List)
	r.GET("/checkouts/:id", h.Get)
	r.POST("/checkouts", h.Create)
	r.PUT("/checkouts/:id/return", h.Return)

	r.GET("/equipment/:id/history", h.EquipmentHistory)
}

// List godoc
// @Summary  List checkouts with item info joined in
// @Tags     checkouts
// @Param    status query string false "OUT, RETURNED or all"
// @Success  200 {array} CheckoutResponse
// @Router   /checkouts [get]
func (h *Handler) List(c *gin.Context) {
	f := Filter{}
	if v := c.Query("status"); v != "" && !strings.EqualFold(v, "all") {
		status := strings.ToUpper(v)
		if status != StatusOut && status != StatusReturned {
			c.JSON(http.StatusBadRequest, apierr.NewBody(apierr.CodeInvalidArgument, "status must be OUT, RETURNED or all"))
			return
		}
		f.Status = &status
	}
	if v := c.Query("checked_out_by"); v != "" {
		f.CheckedOutBy = &v
	}
	if v := c.Query("event_name"); v != "" {
		f.EventName = &v
	}
	p := Page{
		Limit:  parseIntDefault(c.Query("limit"), 100),
		Offset: parseIntDefault(c.Query("offset"), 0),
	}

	res, err := h.svc.ListCheckouts(c.Request.Context(), f, p)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	res, err := h.svc.GetByKey(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// Create godoc
// @Summary  Check out equipment
// @Tags     checkouts
// @Param    body body CreateCheckoutRequest true "checkout"
// @Success  201 {object} CheckoutResponse
// @Router   /checkouts [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.NewBody(apierr.CodeInvalidArgument, "invalid json or missing required fields"))
		return
	}

	res, err := h.svc.RecordCheckout(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.Header("Location", "/checkouts/"+res.CheckoutULID)
	c.JSON(http.StatusCreated, res)
}

// Return godoc
// @Summary  Return a checkout
// @Tags     checkouts
// @Param    id   path int           true "checkout id"
// @Param    body body ReturnRequest true "return"
// @Success  200 {object} CheckoutResponse
// @Router   /checkouts/{id}/return [put]
func (h *Handler) Return(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierr.NewBody(apierr.CodeInvalidArgument, "invalid id"))
		return
	}
	var req ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.NewBody(apierr.CodeInvalidArgument, "condition_in is required"))
		return
	}

	res, err := h.svc.RecordReturn(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) EquipmentHistory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierr.NewBody(apierr.CodeInvalidArgument, "invalid id"))
		return
	}
	p := Page{
		Limit:  parseIntDefault(c.Query("limit"), 100),
		Offset: parseIntDefault(c.Query("offset"), 0),
	}

	res, err := h.svc.EquipmentHistory(c.Request.Context(), id, p)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func parseIntDefault(s string, d int) int {
	if s == "" {
		return d
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return v
}
