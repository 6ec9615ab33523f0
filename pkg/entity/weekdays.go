package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// WeekdaySet is a bitmask over time.Weekday (bit 0 is Sunday). Zero value is the empty set.
type WeekdaySet uint8

var weekdayNames = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var set WeekdaySet
	for _, d := range days {
		set = set.With(d)
	}
	return set
}

func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	if d < time.Sunday || d > time.Saturday {
		return s
	}
	return s | 1<<uint(d)
}

func (s WeekdaySet) Contains(d time.Weekday) bool {
	if d < time.Sunday || d > time.Saturday {
		return false
	}
	return s&(1<<uint(d)) != 0
}

func (s WeekdaySet) Empty() bool {
	return s&0x7f == 0
}

func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// ParseWeekday accepts three-letter names ("MON") and full English names, case-insensitive.
func ParseWeekday(name string) (time.Weekday, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, short := range weekdayNames {
		if upper == short || upper == strings.ToUpper(time.Weekday(i).String()) {
			return time.Weekday(i), nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}

func ParseWeekdaySet(names []string) (WeekdaySet, error) {
	var set WeekdaySet
	for _, name := range names {
		d, err := ParseWeekday(name)
		if err != nil {
			return 0, err
		}
		set = set.With(d)
	}
	return set, nil
}

func (s WeekdaySet) Names() []string {
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, weekdayNames[d])
	}
	return names
}

func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

func (s *WeekdaySet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	set, err := ParseWeekdaySet(names)
	if err != nil {
		return err
	}
	*s = set
	return nil
}
