package document

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timecode is an event time in centiseconds from script start. The textual
// form is H:MM:SS.CC with an unpadded hour, matching what authoring tools
// write into Dialogue lines.
type Timecode int

// ParseTimecode parses H:MM:SS.CC. The hour accepts one or more digits;
// minutes, seconds and centiseconds must be exactly two.
func ParseTimecode(s string) (Timecode, error) {
	s = strings.TrimSpace(s)

	colon := strings.IndexByte(s, ':')
	if colon < 1 {
		return 0, fmt.Errorf("invalid timecode %q", s)
	}
	hours, err := strconv.Atoi(s[:colon])
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("invalid timecode %q", s)
	}

	rest := s[colon+1:]
	if len(rest) != 8 || rest[2] != ':' || rest[5] != '.' {
		return 0, fmt.Errorf("invalid timecode %q", s)
	}
	minutes, err := strconv.Atoi(rest[:2])
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("invalid timecode %q", s)
	}
	seconds, err := strconv.Atoi(rest[3:5])
	if err != nil || seconds > 59 {
		return 0, fmt.Errorf("invalid timecode %q", s)
	}
	centis, err := strconv.Atoi(rest[6:8])
	if err != nil {
		return 0, fmt.Errorf("invalid timecode %q", s)
	}

	total := ((hours*60+minutes)*60+seconds)*100 + centis
	return Timecode(total), nil
}

// String renders the canonical H:MM:SS.CC form. Negative values clamp to
// zero since the format has no sign.
func (t Timecode) String() string {
	if t < 0 {
		t = 0
	}
	centis := int(t) % 100
	seconds := int(t) / 100 % 60
	minutes := int(t) / 6000 % 60
	hours := int(t) / 360000
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}

// Duration converts to a time.Duration.
func (t Timecode) Duration() time.Duration {
	return time.Duration(t) * 10 * time.Millisecond
}

// TimecodeFromDuration rounds a duration to the nearest centisecond.
func TimecodeFromDuration(d time.Duration) Timecode {
	return Timecode((d + 5*time.Millisecond) / (10 * time.Millisecond))
}
