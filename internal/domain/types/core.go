package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// KeyUser is the per-user credential token returned by the login endpoint.
type KeyUser string

// String returns the string form of the token.
func (k KeyUser) String() string { return string(k) }

// OrderNumber identifies an order across the backend and the embedded pages.
type OrderNumber string

// String returns the string form of the order number.
func (n OrderNumber) String() string { return string(n) }

// Text is a wire value that the backend sends either as a JSON string or as a
// JSON number. Null decodes to the empty string.
type Text string

// UnmarshalJSON accepts strings, numbers and null.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

// String returns the raw text.
func (t Text) String() string { return string(t) }

// Int parses the value as a base-10 integer. Decimal values such as "3.0"
// are truncated toward zero.
func (t Text) Int() (int, error) {
	s := strings.TrimSpace(string(t))
	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, err
	}
	return int(f), nil
}

// Float parses the value as a decimal amount. Malformed or non-finite
// amounts yield 0.
func (t Text) Float() float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(t)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
