package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/arloliu/rechenmodul/calculation"
	"github.com/arloliu/rechenmodul/errs"
	"github.com/arloliu/rechenmodul/internal/distinct"
	"github.com/arloliu/rechenmodul/present"
	"github.com/arloliu/rechenmodul/stats"
	"github.com/arloliu/rechenmodul/store"
)

// ResultView is the presentation of one calculation.
type ResultView struct {
	Version *uint64             `json:"version,omitempty"`
	Result  *calculation.Result `json:"result"`
	List    []present.ListItem  `json:"list"`
	Chart   present.ChartItem   `json:"chart"`
}

func newResultView(result *calculation.Result) ResultView {
	return ResultView{
		Result: result,
		List:   present.ResultList(result),
		Chart:  present.Chart(result),
	}
}

// CalculateHandler serves stateless calculations.
type CalculateHandler struct {
	limits store.Limits
}

// NewCalculateHandler creates a CalculateHandler enforcing limits.
func NewCalculateHandler(limits store.Limits) *CalculateHandler {
	return &CalculateHandler{limits: limits}
}

// Calculate handles POST /api/v1/calculate
func (h *CalculateHandler) Calculate(c *gin.Context) {
	var req PointsInput
	if !bindJSON(c, &req) {
		return
	}

	sample := req.Sample()
	if err := checkLimits(sample, h.limits); err != nil {
		respondError(c, err)
		return
	}

	result, _ := calculation.Calculate(sample)
	success(c, newResultView(result))
}

func checkLimits(sample stats.Sample, limits store.Limits) error {
	if len(sample) > limits.MaxSampleSize {
		return fmt.Errorf("%w: %d points, limit %d", errs.ErrSampleTooLarge, len(sample), limits.MaxSampleSize)
	}
	if n := distinct.FromSample(sample).Count(); n > limits.MaxDistinctValues {
		return fmt.Errorf("%w: %d distinct values, limit %d", errs.ErrTooManyDistinctValues, n, limits.MaxDistinctValues)
	}

	return nil
}
