package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceLabel(t *testing.T) {
	cases := []struct {
		name  string
		place Place
		want  string
	}{
		{"all parts", Place{City: "Austin", Region: "TX", Country: "United States"}, "Austin, TX, United States"},
		{"no region", Place{City: "Paris", Country: "FR"}, "Paris, FR"},
		{"whitespace region", Place{City: "Paris", Region: "  ", Country: "FR"}, "Paris, FR"},
		{"empty", Place{}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.place.Label())
		})
	}
}

func TestMeasureSentinel(t *testing.T) {
	assert.Equal(t, "N/A", None().String())
	assert.Equal(t, "N/A", MeasureOf(nil).String())
	assert.Equal(t, "5.75", Some(5.75).String())

	v := 270.0
	got, ok := MeasureOf(&v).Value()
	assert.True(t, ok)
	assert.Equal(t, 270.0, got)
}

func TestMeasureJSON(t *testing.T) {
	w := Wind{Speed: Some(3.4), Deg: None()}

	b, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"speed":3.4,"deg":"N/A"}`, string(b))

	var back Wind
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, w, back)

	var m Measure
	assert.Error(t, json.Unmarshal([]byte(`"calm"`), &m))
}

func TestUpstreamErrorMatchesKind(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("fetch current: %w", &UpstreamError{Provider: "openweather", Status: 502, Err: cause})

	assert.True(t, errors.Is(err, ErrUpstream))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "status 502")

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "openweather", ue.Provider)
}

func TestValidationf(t *testing.T) {
	err := fmt.Errorf("search: %w", Validationf("location %q is empty", " "))
	assert.True(t, errors.Is(err, ErrValidation))

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, `location " " is empty`, ve.Msg)
}
