package model

import "time"

// EventStatus is the label derived from an event's date.
type EventStatus string

const (
	StatusUpcoming EventStatus = "Upcoming"
	StatusOngoing  EventStatus = "Ongoing"
	StatusPast     EventStatus = "Past"
)

// DateLayout is the calendar-date format used by every date field.
const DateLayout = "2006-01-02"

// Event represents a school calendar entry.
//
// Fields:
//
//	ID          – timestamp-string identifier.
//	Title       – required headline.
//	Description – free text.
//	Date        – required start date, YYYY-MM-DD.
//	EndDate     – optional end date, YYYY-MM-DD; not used for status.
//	Status      – derived from Date, see EventStatusOn.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
	EndDate     string      `json:"endDate,omitempty"`
	Status      EventStatus `json:"status"`
}

// EventStatusOn compares the date string against today's UTC calendar date.
// Both sides are YYYY-MM-DD so a plain string comparison orders them.
func EventStatusOn(date string, now time.Time) EventStatus {
	today := now.UTC().Format(DateLayout)
	if date == today {
		return StatusOngoing
	}
	if date > today {
		return StatusUpcoming
	}
	return StatusPast
}

// Today returns the current UTC date as YYYY-MM-DD.
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}
