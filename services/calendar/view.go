package calendar

import (
	"fmt"
	"time"
)

// ViewType selects between the day and week calendar layouts.
type ViewType string

const (
	ViewDay  ViewType = "day"
	ViewWeek ViewType = "week"
)

// ViewState is the navigation state of the staff calendar. Owned exclusively
// by the calendar; mutated only through the navigation methods below.
type ViewState struct {
	Anchor   time.Time
	View     ViewType
	WorkDays map[time.Weekday]bool
	Hours    WorkingHours
}

// NewViewState starts a week view anchored on the given date.
func NewViewState(anchor time.Time, workDays map[time.Weekday]bool, hours WorkingHours) *ViewState {
	return &ViewState{
		Anchor:   anchor,
		View:     ViewWeek,
		WorkDays: workDays,
		Hours:    hours,
	}
}

// GoToday resets the anchor to the current date.
func (v *ViewState) GoToday(now time.Time) {
	v.Anchor = now
}

// GoPrevious shifts the anchor back by one week in week view, one day in day view.
func (v *ViewState) GoPrevious() {
	v.Anchor = v.Anchor.AddDate(0, 0, -v.stride())
}

// GoNext shifts the anchor forward by one week in week view, one day in day view.
func (v *ViewState) GoNext() {
	v.Anchor = v.Anchor.AddDate(0, 0, v.stride())
}

// SetView switches the layout. The anchor's underlying date is untouched;
// only the visible day set is recomputed.
func (v *ViewState) SetView(view ViewType) {
	v.View = view
}

func (v *ViewState) stride() int {
	if v.View == ViewWeek {
		return 7
	}
	return 1
}

// VisibleDays returns the rendered day set: just the anchor in day view, the
// Monday-start 7-day span containing the anchor in week view.
func (v *ViewState) VisibleDays() []time.Time {
	if v.View == ViewDay {
		return []time.Time{v.Anchor}
	}

	monday := v.Anchor.AddDate(0, 0, -mondayOffset(v.Anchor))
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// Range returns the first and last visible date.
func (v *ViewState) Range() (time.Time, time.Time) {
	days := v.VisibleDays()
	return days[0], days[len(days)-1]
}

// mondayOffset counts days since the most recent Monday.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// RangeNotifier tells the data-fetch side about the effective visible range,
// exactly once per distinct range. Re-renders with an unchanged range do not
// re-notify, so availability is not refetched redundantly.
type RangeNotifier struct {
	lastRange string
	notify    func(start, end time.Time)
}

func NewRangeNotifier(notify func(start, end time.Time)) *RangeNotifier {
	return &RangeNotifier{notify: notify}
}

// Publish forwards the range to the consumer if it differs from the last one.
// Returns whether a notification was sent.
func (n *RangeNotifier) Publish(start, end time.Time) bool {
	key := fmt.Sprintf("%s..%s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	if key == n.lastRange {
		return false
	}
	n.lastRange = key
	if n.notify != nil {
		n.notify(start, end)
	}
	return true
}
