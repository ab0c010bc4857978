package logger

import (
	"fmt"

	"github.com/odpf/salt/term"
)

var (
	// ColoredSuccess format message with color for success
	ColoredSuccess = fmt.Sprintf
	ColoredError   = fmt.Sprintf
	ColoredNotice  = fmt.Sprintf
)

// InitializeColor enables colors, call it only when stdout is a terminal
func InitializeColor() {
	cs := term.NewColorScheme()
	ColoredSuccess = func(s string, a ...interface{}) string {
		return cs.Greenf(s, a...)
	}
	ColoredError = func(s string, a ...interface{}) string {
		return cs.Redf(s, a...)
	}
	ColoredNotice = func(s string, a ...interface{}) string {
		return cs.Yellowf(s, a...)
	}
}
