package plan

import "strings"

// TimeBlock is the six-way partition of the game day.
type TimeBlock int

const (
	TimeBlockUnknown TimeBlock = iota
	Morning                    // 06:00-11:59
	Afternoon                  // 12:00-17:59
	Evening                    // 18:00-20:59
	Night                      // 21:00-23:59
	Dawn                       // 00:00-02:59
	DeepNight                  // 03:00-05:59
)

// TimeBlockOf maps an hour of day to its block. Hours outside 0..23 are
// wrapped so the function stays total.
func TimeBlockOf(hour int) TimeBlock {
	hour = ((hour % 24) + 24) % 24
	switch {
	case hour >= 6 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	case hour >= 18 && hour < 21:
		return Evening
	case hour >= 21:
		return Night
	case hour < 3:
		return Dawn
	default:
		return DeepNight
	}
}

func (b TimeBlock) String() string {
	switch b {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	case Evening:
		return "evening"
	case Night:
		return "night"
	case Dawn:
		return "dawn"
	case DeepNight:
		return "deepnight"
	default:
		return "unknown"
	}
}

// ParseTimeBlock is the log/JSON boundary parser. Unrecognized labels map
// to TimeBlockUnknown, which the scorer treats as "no time signal".
func ParseTimeBlock(s string) TimeBlock {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "morning":
		return Morning
	case "afternoon":
		return Afternoon
	case "evening":
		return Evening
	case "night":
		return Night
	case "dawn":
		return Dawn
	case "deepnight":
		return DeepNight
	default:
		return TimeBlockUnknown
	}
}

// IsFeedingWindow reports whether hour falls in one of the two daily
// feeding slots (07-09 and 17-19, bounds inclusive).
func IsFeedingWindow(hour int) bool {
	return (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19)
}
