package textutil

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DefaultTimezone is used when a post carries no timezone label.
const DefaultTimezone = "Asia/Shanghai"

// FormatDate renders a date in long form, e.g. "2024年3月5日".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
}

// ConvertToTimezone renders t as wall-clock time in the named zone using a
// 24-hour clock, e.g. "2024/03/05 14:30". An empty zone means DefaultTimezone.
func ConvertToTimezone(t time.Time, timezone string) (string, error) {
	if t.IsZero() {
		return "", nil
	}
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("load location %q: %w", timezone, err)
	}
	return t.In(loc).Format("2006/01/02 15:04"), nil
}

// IsValidTimezone reports whether name is a loadable IANA zone.
func IsValidTimezone(name string) bool {
	if name == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}
