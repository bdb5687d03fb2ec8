package vector

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParseJSON(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		want        []float32
		wantErr     error
	}{
		{description: "floats", input: `[0.25, -1.5, 3]`, want: []float32{0.25, -1.5, 3}},
		{description: "integers", input: `[1,0,0]`, want: []float32{1, 0, 0}},
		{description: "empty", input: `[]`, wantErr: ErrDimensionTooSmall},
		{description: "string element", input: `[1, "x"]`, wantErr: ErrType},
		{description: "nested", input: `[[1]]`, wantErr: ErrType},
		{description: "object", input: `{"a": 1}`, wantErr: ErrType},
	}
	for _, tc := range testCases {
		e, err := ParseJSON([]byte(tc.input))
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("%s: ParseJSON error = %v, want %v", tc.description, err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: ParseJSON failed: %v", tc.description, err)
		}
		got := e.Values()
		if len(got) != len(tc.want) {
			t.Fatalf("%s: ParseJSON = %v, want %v", tc.description, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: ParseJSON[%d] = %v, want %v", tc.description, i, got[i], tc.want[i])
			}
		}
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	for _, input := range []string{``, `[1,`, `[1] [2]`} {
		if e, err := ParseJSON([]byte(input)); err == nil {
			t.Fatalf("ParseJSON(%q) = %v, want error", input, e)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	e, err := New([]float32{0.1, -2, 3.5})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	if got, want := string(data), `[0.1,-2,3.5]`; got != want {
		t.Fatalf("json.Marshal = %s, want %s", got, want)
	}

	back, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if !back.Equal(e) {
		t.Fatalf("ParseJSON(Marshal(e)) = %v, want %v", back, e)
	}
}

func TestMarshalJSON_NonFinite(t *testing.T) {
	e, err := New([]float32{1, float32(math.Inf(-1))})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := e.MarshalJSON(); err == nil {
		t.Fatalf("MarshalJSON with -Inf succeeded, want error")
	}
}
