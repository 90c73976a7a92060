package request

import (
	"googleapi-client/internal/domain"
	"strconv"
	"strings"
	"time"
)

func FormatBool(b bool) string { return strconv.FormatBool(b) }

// FormatBoolIf emits "true" only when b is set; false omits the parameter.
func FormatBoolIf(b bool) string {
	if !b {
		return ""
	}
	return "true"
}

// FormatPositive returns "" for n <= 0 so unset optional numbers are omitted.
func FormatPositive(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func FormatIntPtr(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func FormatFloatPtr(f *float64) string {
	if f == nil {
		return ""
	}
	return domain.FormatFloat(*f)
}

// FormatUnix renders seconds since the epoch; the zero time is omitted.
func FormatUnix(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return strconv.FormatInt(t.Unix(), 10)
}

func FormatCoordinate(c *domain.Coordinate) string {
	if c == nil {
		return ""
	}
	return c.String()
}

// Join joins string-like values with sep, skipping empty ones.
func Join[T ~string](values []T, sep string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, string(v))
		}
	}
	return strings.Join(parts, sep)
}
