package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arloliu/rechenmodul/internal/pipeline"
	"github.com/arloliu/rechenmodul/store"
)

// DefaultResultWait bounds how long GET /result waits for the pipeline to
// catch up with the store.
const DefaultResultWait = 2 * time.Second

// ResultHandler serves the latest pipeline result of the session store.
type ResultHandler struct {
	store    *store.Store
	pipeline *pipeline.Pipeline
	wait     time.Duration
}

// NewResultHandler creates a ResultHandler.
func NewResultHandler(s *store.Store, p *pipeline.Pipeline) *ResultHandler {
	return &ResultHandler{store: s, pipeline: p, wait: DefaultResultWait}
}

// Get handles GET /api/v1/result
func (h *ResultHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.wait)
	defer cancel()

	update, err := h.pipeline.Wait(ctx, h.store.Version())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			fail(c, http.StatusServiceUnavailable, CodeUnavailable, "result is not available yet")
			return
		}
		respondError(c, err)

		return
	}

	view := newResultView(update.Result)
	view.Version = &update.Version
	success(c, view)
}
