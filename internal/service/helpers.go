package service

import (
	"fmt"
	"sort"
)

// sortedKeys keeps log attribute order stable across runs.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
