package services

import (
	"errors"
	"fmt"
	"time"

	"evercare-dental/internal/adapters/persistence/models"
	"evercare-dental/internal/config"
)

// ErrInvalidDate is returned for dates that cannot be parsed into a
// calendar date.
var ErrInvalidDate = errors.New("invalid date")

// dateFormats are the accepted input layouts. Everything is normalized
// to YYYY-MM-DD before storage or comparison, so two spellings of the
// same date always land on the same slot.
var dateFormats = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-1-2",
}

// ScheduleService owns the clinic booking grid: which time slots exist,
// which dates are bookable, and whether a (date, time) slot is free.
type ScheduleService struct {
	cfg config.ScheduleConfig
}

// NewScheduleService creates a new schedule service
func NewScheduleService(cfg config.ScheduleConfig) *ScheduleService {
	return &ScheduleService{cfg: cfg}
}

// TimeSlots returns the daily slot grid. The grid is the same for
// every calendar day.
func (s *ScheduleService) TimeSlots() []string {
	slots := make([]string, 0, s.cfg.LastSlotHour-s.cfg.FirstSlotHour+1)
	for hour := s.cfg.FirstSlotHour; hour <= s.cfg.LastSlotHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:%02d", hour, s.cfg.SlotMinute))
	}
	return slots
}

// ContainsSlot reports whether a time string is on the grid
func (s *ScheduleService) ContainsSlot(timeSlot string) bool {
	for _, slot := range s.TimeSlots() {
		if slot == timeSlot {
			return true
		}
	}
	return false
}

// AvailableDates returns the bookable dates: the next BookingDays
// calendar days after now, excluding the closed weekday.
func (s *ScheduleService) AvailableDates(now time.Time) []string {
	dates := make([]string, 0, s.cfg.BookingDays)
	for i := 1; i <= s.cfg.BookingDays; i++ {
		day := now.AddDate(0, 0, i)
		if day.Weekday() != s.cfg.ClosedWeekday {
			dates = append(dates, day.Format(time.DateOnly))
		}
	}
	return dates
}

// DefaultDate returns today unless today is the closed weekday, in
// which case the next open day is chosen.
func (s *ScheduleService) DefaultDate(now time.Time) string {
	if now.Weekday() != s.cfg.ClosedWeekday {
		return now.Format(time.DateOnly)
	}
	for i := 1; i <= s.cfg.BookingDays; i++ {
		day := now.AddDate(0, 0, i)
		if day.Weekday() != s.cfg.ClosedWeekday {
			return day.Format(time.DateOnly)
		}
	}
	return ""
}

// NormalizeDate parses a date in any accepted layout and re-encodes it
// as YYYY-MM-DD. Returns ErrInvalidDate for unparseable input.
func (s *ScheduleService) NormalizeDate(date string) (string, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format(time.DateOnly), nil
		}
	}
	return "", ErrInvalidDate
}

// IsClosedDay reports whether a normalized date falls on the clinic's
// weekly closed day.
func (s *ScheduleService) IsClosedDay(date string) (bool, error) {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return false, ErrInvalidDate
	}
	return t.Weekday() == s.cfg.ClosedWeekday, nil
}

// IsSlotAvailable reports whether a (date, time) slot is free given the
// current appointment set. excludeID skips the appointment being edited
// (0 excludes nothing). Cancelled appointments do not hold their slot.
func (s *ScheduleService) IsSlotAvailable(appts []models.Appointment, date, timeSlot string, excludeID uint) bool {
	for i := range appts {
		appt := &appts[i]
		if appt.ID == excludeID && excludeID != 0 {
			continue
		}
		if !appt.HoldsSlot() {
			continue
		}
		if appt.Date == date && appt.Time == timeSlot {
			return false
		}
	}
	return true
}

// SlotStatus is one grid entry of a day's availability
type SlotStatus struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// DayAvailability maps the whole grid of one date against the booked
// appointments of that date.
func (s *ScheduleService) DayAvailability(appts []models.Appointment, date string) []SlotStatus {
	grid := s.TimeSlots()
	statuses := make([]SlotStatus, 0, len(grid))
	for _, slot := range grid {
		statuses = append(statuses, SlotStatus{
			Time:      slot,
			Available: s.IsSlotAvailable(appts, date, slot, 0),
		})
	}
	return statuses
}
