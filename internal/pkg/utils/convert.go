// Package utils provides small string conversion helpers shared by the API
// layer.
package utils

import "strconv"

// ConvertToInt parses s as a decimal integer, returning 0 when it cannot be
// parsed.
func ConvertToInt(s string) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}
