package vector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ParseJSON builds an Embedding from a JSON array of numbers.
func ParseJSON(data []byte) (*Embedding, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("vector: parse embedding: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("vector: parse embedding: trailing data after array")
	}
	values, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: want JSON array, got %T", ErrType, raw)
	}
	return FromValues(values)
}

// MarshalJSON encodes the first Dimension() components as a JSON array.
func (e *Embedding) MarshalJSON() ([]byte, error) {
	vs := e.components()
	b := make([]byte, 0, 2+len(vs)*8)
	b = append(b, '[')
	for i, v := range vs {
		if i > 0 {
			b = append(b, ',')
		}
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("vector: cannot encode non-finite component %v at index %d", v, i)
		}
		b = strconv.AppendFloat(b, f, 'g', -1, 32)
	}
	b = append(b, ']')
	return b, nil
}

func toFloat32(v any) (float32, bool) {
	switch n := v.(type) {
	case float32:
		return n, true
	case float64:
		return float32(n), true
	case int:
		return float32(n), true
	case int8:
		return float32(n), true
	case int16:
		return float32(n), true
	case int32:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint:
		return float32(n), true
	case uint8:
		return float32(n), true
	case uint16:
		return float32(n), true
	case uint32:
		return float32(n), true
	case uint64:
		return float32(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return float32(f), true
	}
	return 0, false
}
