package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/rechenmodul/errs"
	"github.com/arloliu/rechenmodul/stats"
	"github.com/arloliu/rechenmodul/store"
)

// Value is a coordinate in a request body. It accepts a JSON number or a
// string in the input grammar of store.ParseValue, so "2,5" and 2.5 are
// equivalent.
type Value float64

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := store.ParseValue(s)
		if err != nil {
			return err
		}
		*v = Value(parsed)

		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidValue, data)
	}
	if err := stats.ValidateValue(f); err != nil {
		return err
	}
	*v = Value(f)

	return nil
}

// PointInput is a point in a request body.
type PointInput struct {
	X *Value `json:"x" binding:"required"`
	Y *Value `json:"y" binding:"required"`
}

// Point converts the input to a stats.Point.
func (p PointInput) Point() stats.Point {
	return stats.Point{X: float64(*p.X), Y: float64(*p.Y)}
}

// PointsInput is a list of points in a request body.
type PointsInput struct {
	Points []PointInput `json:"points" binding:"required,dive"`
}

// Sample converts the input to a sample.
func (in PointsInput) Sample() stats.Sample {
	sample := make(stats.Sample, len(in.Points))
	for i, p := range in.Points {
		sample[i] = p.Point()
	}

	return sample
}
