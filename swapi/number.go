package swapi

import (
	"math"
	"strconv"
	"strings"
)

// sentinels are the placeholder strings SWAPI uses for missing measurements.
// They convert to an absent value.
var sentinels = map[string]bool{
	"":        true,
	"unknown": true,
	"n/a":     true,
	"none":    true,
}

// ParseNumber converts a string-encoded measurement such as "1,358" to a
// float. Sentinels and anything else that does not parse return nil.
func ParseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if sentinels[strings.ToLower(s)] {
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ParseInt is ParseNumber truncated to a GraphQL Int. Values outside the
// int32 range return nil.
func ParseInt(s string) *int32 {
	f := ParseNumber(s)
	if f == nil || *f > math.MaxInt32 || *f < math.MinInt32 {
		return nil
	}
	i := int32(*f)
	return &i
}

// SplitList splits a comma separated field such as "arid, temperate" into
// its trimmed, non-empty parts.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
