package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseIntParam retrieves an integer value from the provided URL query parameters.
// If the key is not present it returns (0, false) with no error recorded. If the
// value is present but invalid, it records a validation error in fieldErrors.
func ParseIntParam(params url.Values, key string, fieldErrors map[string][]string) (int, bool, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, false, fieldErrors
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return 0, false, fieldErrors
	}
	return n, true, fieldErrors
}

// ParseListParam retrieves a multi-valued parameter. Values may be repeated
// (?country=a&country=b) or comma-separated (?country=a,b); both forms are
// accepted and blanks are dropped.
func ParseListParam(params url.Values, key string) []string {
	var out []string
	for _, raw := range params[key] {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
