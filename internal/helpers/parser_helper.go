package helpers

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// FlexString accepts a JSON string, number, bool or null and normalizes it to
// a string. Browser clients post the same fields as form values (always
// strings) or as JSON (sometimes numbers/bools), so payload structs use this
// for every scalar that is not guaranteed to be a string.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*s = FlexString(t)
	case float64:
		*s = FlexString(strconv.FormatFloat(t, 'f', -1, 64))
	case bool:
		*s = FlexString(strconv.FormatBool(t))
	case nil:
		*s = ""
	default:
		*s = FlexString(string(data))
	}
	return nil
}

func (s FlexString) String() string { return string(s) }

// FloatOrZero parses a fee-style value, falling back to 0 when the value is
// absent or not a number.
func FloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// UintOrNil parses an optional numeric id. Empty and garbage both mean "not
// provided".
func UintOrNil(s string) *uint {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

// IsTruthy mirrors the checkbox/JSON convention used by the frontend: the
// coerced bool "true" or the string "1", nothing else.
func IsTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true
	}
	return false
}

const dateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

// Truncate caps a string at max characters, the storage limit of the
// varchar(255) columns. Counting runes rather than bytes keeps accented
// titles intact and never cuts mid-rune.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
