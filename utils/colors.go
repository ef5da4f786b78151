package utils

import "fmt"

const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
)

func ColorText(text, color string) string {
	return color + text + Reset
}

// ColorStatus renders an HTTP status code with a severity color.
func ColorStatus(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return fmt.Sprintf("%s%d%s", Green, statusCode, Reset)
	case statusCode >= 400 && statusCode < 500:
		return fmt.Sprintf("%s%d%s", Yellow, statusCode, Reset)
	case statusCode >= 500:
		return fmt.Sprintf("%s%d%s", Red, statusCode, Reset)
	default:
		return fmt.Sprintf("%d", statusCode)
	}
}
