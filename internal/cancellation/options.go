package cancellation

import "fmt"

const (
	firstOptionHour = 7
	lastOptionHour  = 20
	optionStep      = 30
)

// TimeOptions lists the selectable start times: every half hour from 07:00
// through 20:30, ascending.
func TimeOptions() []string {
	opts := make([]string, 0, (lastOptionHour-firstOptionHour+1)*60/optionStep)
	for hour := firstOptionHour; hour <= lastOptionHour; hour++ {
		for minute := 0; minute < 60; minute += optionStep {
			opts = append(opts, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return opts
}

// ValidStartTime reports whether s is one of TimeOptions.
func ValidStartTime(s string) bool {
	for _, opt := range TimeOptions() {
		if opt == s {
			return true
		}
	}
	return false
}
