package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID identifies a record. The backend uses integer primary keys, but the
// console treats them as opaque text so string keys work as well.
// The empty ID is an unset weak reference and encodes as null.
type ID string

func (id ID) String() string { return string(id) }

// IsZero reports whether the reference is unset.
func (id ID) IsZero() bool { return id == "" }

func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(b []byte) error {
	s, err := scalarText(b)
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(s)
	return nil
}

// Decimal is a numeric quantity kept as text. The API serialises
// decimal values as strings ("1200.00") and accepts both forms back.
type Decimal string

func (d Decimal) String() string { return string(d) }

// Float parses the value; ok is false for empty or malformed text.
func (d Decimal) Float() (float64, bool) {
	f, err := strconv.ParseFloat(string(d), 64)
	return f, err == nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	if d == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(d))
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	s, err := scalarText(b)
	if err != nil {
		return fmt.Errorf("decimal: %w", err)
	}
	*d = Decimal(s)
	return nil
}

// Date holds an ISO-8601 date or timestamp as sent by the API.
type Date string

func (d Date) String() string { return string(d) }

func (d Date) MarshalJSON() ([]byte, error) {
	if d == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(d))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := scalarText(b)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	*d = Date(s)
	return nil
}

// scalarText accepts a JSON string, number or null and returns its text.
func scalarText(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		return "", nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return s, nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return "", err
		}
		return n.String(), nil
	}
}
