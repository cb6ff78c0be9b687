package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arloliu/rechenmodul/contingency"
	"github.com/arloliu/rechenmodul/csvimport"
	"github.com/arloliu/rechenmodul/errs"
	"github.com/arloliu/rechenmodul/store"
)

// PointsHandler edits the session point store.
type PointsHandler struct {
	store *store.Store
}

// NewPointsHandler creates a PointsHandler.
func NewPointsHandler(s *store.Store) *PointsHandler {
	return &PointsHandler{store: s}
}

func (h *PointsHandler) listing() gin.H {
	return gin.H{
		"points":   h.store.Points(),
		"version":  h.store.Version(),
		"distinct": h.store.DistinctCount(),
		"limits":   h.store.Limits(),
	}
}

// List handles GET /api/v1/points
func (h *PointsHandler) List(c *gin.Context) {
	success(c, h.listing())
}

// Create handles POST /api/v1/points
func (h *PointsHandler) Create(c *gin.Context) {
	var req PointInput
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.store.Add(req.Point())
	if err != nil {
		respondError(c, err)
		return
	}

	created(c, p)
}

// Update handles PUT /api/v1/points/:id
func (h *PointsHandler) Update(c *gin.Context) {
	id, ok := pointID(c)
	if !ok {
		return
	}

	var req PointInput
	if !bindJSON(c, &req) {
		return
	}

	if err := h.store.Update(id, req.Point()); err != nil {
		respondError(c, err)
		return
	}

	p, err := h.store.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	success(c, p)
}

// Delete handles DELETE /api/v1/points/:id
func (h *PointsHandler) Delete(c *gin.Context) {
	id, ok := pointID(c)
	if !ok {
		return
	}

	if err := h.store.Remove(id); err != nil {
		respondError(c, err)
		return
	}

	success(c, gin.H{"id": id})
}

// Replace handles PUT /api/v1/points
func (h *PointsHandler) Replace(c *gin.Context) {
	var req PointsInput
	if !bindJSON(c, &req) {
		return
	}

	if err := h.store.Set(req.Sample()); err != nil {
		respondError(c, err)
		return
	}

	success(c, h.listing())
}

// Import handles POST /api/v1/points/import with a semicolon separated body.
func (h *PointsHandler) Import(c *gin.Context) {
	n, err := csvimport.Import(c.Request.Body, h.store)
	if err != nil {
		respondError(c, err)
		return
	}

	data := h.listing()
	data["imported"] = n
	success(c, data)
}

// Table handles GET /api/v1/contingency
func (h *PointsHandler) Table(c *gin.Context) {
	success(c, h.store.Table())
}

// SetTable handles PUT /api/v1/contingency
func (h *PointsHandler) SetTable(c *gin.Context) {
	var table contingency.Table
	if !bindJSON(c, &table) {
		return
	}

	if err := h.store.SetTable(table); err != nil {
		respondError(c, err)
		return
	}

	success(c, h.store.Table())
}

func pointID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, CodeNotFound, errs.ErrPointNotFound.Error()+": "+strconv.Quote(c.Param("id")))
		return 0, false
	}

	return id, true
}
