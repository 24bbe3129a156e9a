package capture

import (
	"strconv"
	"strings"

	"kympulse/models"
)

// ParseSurvey reads the three form fields. Scores take the leading integer of the
// field ("4 estrellas" is 4); a field without one is left nil. The checkbox is
// true for "on", "true" or "1".
func ParseSurvey(satisfaction, comfort, durationOK string) models.Survey {
	return models.Survey{
		Satisfaction: leadingInt(satisfaction),
		Comfort:      leadingInt(comfort),
		DurationOK:   checkbox(durationOK),
	}
}

func leadingInt(s string) *int {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}

func checkbox(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}
