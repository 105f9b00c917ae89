package equipment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"basecamp-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/equipment", h.List)
	r.GET("/equipment/:id", h.Get)
	r.POST("/equipment", h.Create)
	r.PUT("/equipment/:id", h.Update)
	r.DELETE("/equipment/:id", h.Delete)

	r.POST("/equipment/:id/inspections", h.CreateInspection)
	r.GET("/equipment/:id/inspections", h.ListInspections)
}

// List godoc
// @Summary  List equipment with derived availability
// @Tags     equipment
// @Param    category  query string false "category filter"
// @Param    condition query string false "condition filter"
// @Param    available query bool   false "only items with quantity_available > 0"
// @Success  200 {array} ItemResponse
// @Router   /equipment [get]
func (h *Handler) List(c *gin.Context) {
	f := Filter{}
	if v := c.Query("category"); v != "" {
		f.Category = &v
	}
	if v := c.Query("condition"); v != "" {
		f.Condition = &v
	}
	if v := c.Query("available"); v == "true" || v == "1" {
		f.OnlyAvailable = true
	}
	p := Page{
		Limit:  parseIntDefault(c.Query("limit"), 100),
		Offset: parseIntDefault(c.Query("offset"), 0),
	}

	res, err := h.svc.ListItems(c.Request.Context(), f, p)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.svc.GetItem(c.Request.Context(), id)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// Create godoc
// @Summary  Add an equipment item to the catalog
// @Tags     equipment
// @Param    body body CreateItemRequest true "item"
// @Success  201 {object} ItemResponse
// @Router   /equipment [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.NewBody(apierr.CodeInvalidArgument, "invalid json or missing required fields"))
		return
	}

	res, err := h.svc.CreateItem(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.Header("Location", "/equipment/"+strconv.FormatUint(res.ID, 10))
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.NewBody(apierr.CodeInvalidArgument, "invalid json"))
		return
	}

	res, err := h.svc.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteItem(c.Request.Context(), id); err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateInspection(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.NewBody(apierr.CodeInvalidArgument, "invalid json or missing required fields"))
		return
	}

	res, err := h.svc.RecordInspection(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.Header("Location", "/equipment/"+strconv.FormatUint(id, 10)+"/inspections")
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) ListInspections(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p := Page{
		Limit:  parseIntDefault(c.Query("limit"), 100),
		Offset: parseIntDefault(c.Query("offset"), 0),
	}
	res, err := h.svc.ListInspections(c.Request.Context(), id, p)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// ---------- helpers ----------

func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierr.NewBody(apierr.CodeInvalidArgument, "invalid id"))
		return 0, false
	}
	return id, true
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
