// README: Parsing of textual travel durations into minutes.
package transport

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	hoursPattern   = regexp.MustCompile(`(\d+)\s*h`)
	minutesPattern = regexp.MustCompile(`(\d+)\s*m`)
)

// Minutes returns the option's travel time. ETAMinutes wins when present;
// otherwise hours and minutes are read from Duration. An option with neither
// scores unknownDurationMinutes.
func (o Option) Minutes() int {
	if o.ETAMinutes != nil {
		return *o.ETAMinutes
	}
	return ParseDuration(o.Duration)
}

// ParseDuration reads "<N>h" and "<N>m" parts from s and sums them.
func ParseDuration(s string) int {
	s = strings.ToLower(s)
	h, okH := firstInt(hoursPattern, s)
	m, okM := firstInt(minutesPattern, s)
	if !okH && !okM {
		return unknownDurationMinutes
	}
	return h*60 + m
}

func firstInt(re *regexp.Regexp, s string) (int, bool) {
	match := re.FindStringSubmatch(s)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
