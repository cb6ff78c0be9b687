package regression

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the line with a "kind" discriminator.
func (l *VerticalLine) MarshalJSON() ([]byte, error) {
	type alias VerticalLine
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{KindVertical.String(), (*alias)(l)})
}

// MarshalJSON encodes the line with a "kind" discriminator.
func (l *SlopedLine) MarshalJSON() ([]byte, error) {
	type alias SlopedLine
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{KindSloped.String(), (*alias)(l)})
}

// UnmarshalLine decodes a line produced by MarshalJSON into the variant named
// by its "kind" field.
func UnmarshalLine(data []byte) (Line, error) {
	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	switch KindFromString(head.Kind) {
	case KindVertical:
		var l VerticalLine
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, err
		}

		return &l, nil
	case KindSloped:
		var l SlopedLine
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, err
		}

		return &l, nil
	default:
		return nil, fmt.Errorf("unknown regression line kind %q", head.Kind)
	}
}
