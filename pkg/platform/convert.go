package platform

import "math"

// Helpers for reading values decoded by JsonCodec: objects arrive as
// map[string]any, numbers as float64.

func parseString(value any) string {
	s, _ := value.(string)
	return s
}

// parseBool accepts a JSON boolean or the strings "true"/"false", which some
// Android plugins send.
func parseBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

func parseMap(value any) map[string]any {
	m, _ := value.(map[string]any)
	return m
}

// toInt reports false for non-numbers and for numbers with a fractional part.
func toInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
