package mcp

import "fmt"

// stringArg returns the string argument key. A required argument must be
// present and non-empty; an optional one defaults to "".
func stringArg(args map[string]any, key string, required bool) (string, error) {
	val, ok := args[key]
	if !ok {
		if required {
			return "", fmt.Errorf("%s parameter is required", key)
		}
		return "", nil
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	if required && str == "" {
		return "", fmt.Errorf("%s cannot be empty", key)
	}
	return str, nil
}

// stringsArg returns the string elements of the array argument key,
// skipping anything that is not a string. Missing or non-array values yield nil.
func stringsArg(args map[string]any, key string) []string {
	arr, ok := args[key].([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if str, ok := item.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

// limitArg reads a numeric argument (JSON numbers arrive as float64) and
// clamps it to [lo, hi]. Missing or non-numeric values yield def.
func limitArg(args map[string]any, key string, def, lo, hi int) int {
	n := def
	if f, ok := args[key].(float64); ok {
		n = int(f)
	}
	return max(lo, min(n, hi))
}
