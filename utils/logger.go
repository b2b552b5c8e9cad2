package utils

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	stampColor   = color.New(color.FgHiBlack)
	pathColor    = color.New(color.FgWhite)
	methodColor  = color.New(color.FgMagenta)
)

func stamp() string {
	return stampColor.Sprintf("[%s]", time.Now().Format("15:04:05"))
}

func Info(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), infoColor.Sprintf(format, args...))
}

func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), successColor.Sprintf("✓ "+format, args...))
}

func Warning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), warnColor.Sprintf("⚠ "+format, args...))
}

func Error(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), errorColor.Sprintf("✗ "+format, args...))
}

// Request logs one HTTP round trip, colored by status class.
func Request(method, path string, status int, duration time.Duration) {
	statusColor := successColor
	switch {
	case status >= 500:
		statusColor = errorColor
	case status >= 400:
		statusColor = warnColor
	case status >= 300:
		statusColor = infoColor
	}

	fmt.Printf("%s %s %s %s %s\n",
		stamp(),
		methodColor.Sprintf("%-6s", method),
		pathColor.Sprintf("%-40s", path),
		statusColor.Sprintf("[%d]", status),
		stampColor.Sprintf("(%s)", duration.Round(time.Microsecond)),
	)
}
