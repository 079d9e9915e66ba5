package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotKind distinguishes a LectureSlot from a TutorialSlot.
type SlotKind int

const (
	LectureSlotKind SlotKind = iota
	TutorialSlotKind
)

func (k SlotKind) suffix() string {
	if k == LectureSlotKind {
		return "LEC"
	}
	return "TUT"
}

// Slot is a candidate time+room-capacity placement for a section. Slots
// are arena-held: the catalog hands out *Slot pointers that are shared
// between the slot pools and every live assignment record, so the
// mutable current-capacity counters are visible everywhere a slot is
// referenced.
type Slot struct {
	Day           string
	Time          string
	Kind          SlotKind
	StartTime     float64
	EndTime       float64
	MaxCap        int
	MinCap        int
	AltMax        int
	CurrentCap    int
	CurrentAltCap int
}

// Identifier is the slot's identity key: day || time || kind suffix.
func (s *Slot) Identifier() string {
	return s.Day + s.Time + s.Kind.suffix()
}

// NewSlot builds a Slot, deriving StartTime and EndTime from the day,
// kind, and "HH:MM" time string.
func NewSlot(day, timeStr string, kind SlotKind, maxCap, minCap, altMax int) (*Slot, error) {
	start, err := ParseClock(timeStr)
	if err != nil {
		return nil, err
	}
	end := start + slotDuration(day, kind)
	return &Slot{
		Day:       day,
		Time:      timeStr,
		Kind:      kind,
		StartTime: start,
		EndTime:   end,
		MaxCap:    maxCap,
		MinCap:    minCap,
		AltMax:    altMax,
	}, nil
}

func slotDuration(day string, kind SlotKind) float64 {
	switch {
	case day == "MO":
		return 1.0
	case day == "TU" && kind == LectureSlotKind:
		return 1.5
	case day == "TU" && kind == TutorialSlotKind:
		return 1.0
	default:
		return 2.0
	}
}

// ParseClock turns an "HH:MM" string into decimal hours, where ":30"
// contributes +0.5 and every other minute value contributes 0, per the
// original _calc_start_end_times. It is also used by the loader to
// derive start_time for unwanted entries, preferences, and forced
// partial assignments, which carry no end_time of their own.
func ParseClock(timeStr string) (float64, error) {
	parts := strings.SplitN(timeStr, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time %q: expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q: %w", timeStr, err)
	}
	minute := 0.0
	if parts[1] == "30" {
		minute = 0.5
	}
	return float64(hour) + minute, nil
}

// HasCapacity reports whether the slot still has room for another
// section, and enough active-learning capacity if required.
func (s *Slot) HasCapacity(alRequired bool) bool {
	if s.CurrentCap >= s.MaxCap {
		return false
	}
	if alRequired && s.CurrentAltCap >= s.AltMax {
		return false
	}
	return true
}
