package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// NotAvailable is the placeholder shown in place of a missing optional reading.
const NotAvailable = "N/A"

// Measure is an optional numeric reading. The zero value is missing.
type Measure struct {
	value float64
	ok    bool
}

func Some(v float64) Measure { return Measure{value: v, ok: true} }

func None() Measure { return Measure{} }

// MeasureOf maps a nil pointer to a missing reading.
func MeasureOf(v *float64) Measure {
	if v == nil {
		return None()
	}
	return Some(*v)
}

func (m Measure) Value() (float64, bool) { return m.value, m.ok }

// String renders the reading as the provider reported it, or "N/A".
func (m Measure) String() string {
	if !m.ok {
		return NotAvailable
	}
	return strconv.FormatFloat(m.value, 'f', -1, 64)
}

func (m Measure) MarshalJSON() ([]byte, error) {
	if !m.ok {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(m.value)
}

func (m *Measure) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s != NotAvailable {
			return fmt.Errorf("measure: unexpected string %q", s)
		}
		*m = None()
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*m = Some(v)
	return nil
}
