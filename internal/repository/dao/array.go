package dao

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// IntArray maps a Go int slice onto a Postgres integer[] column using
// the text array format.
type IntArray []int

func (IntArray) GormDataType() string {
	return "integer[]"
}

func (a IntArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}

	parts := make([]string, len(a))
	for i, n := range a {
		parts[i] = strconv.Itoa(n)
	}

	return "{" + strings.Join(parts, ",") + "}", nil
}

func (a *IntArray) Scan(src any) error {
	if src == nil {
		*a = nil
		return nil
	}

	var text string
	switch v := src.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return fmt.Errorf("cannot scan %T into IntArray", src)
	}

	text = strings.Trim(text, "{}")
	if text == "" {
		*a = IntArray{}
		return nil
	}

	parts := strings.Split(text, ",")
	out := make(IntArray, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid integer array element %q -> %w", part, err)
		}
		out[i] = n
	}

	*a = out

	return nil
}
