package models

import "fmt"

// AtomicTimeSlot is the smallest schedulable time unit returned by an
// availability query. Start and End are minutes from midnight.
type AtomicTimeSlot struct {
	Start       int  `json:"start"`
	End         int  `json:"end"`
	IsAvailable bool `json:"isAvailable"`
}

// Label renders the slot bounds as "HH:MM - HH:MM" for client display.
func (s AtomicTimeSlot) Label() string {
	return fmt.Sprintf("%s - %s", MinutesToClock(s.Start), MinutesToClock(s.End))
}

// SlotRange is a contiguous run of atomic slots selected together to cover a
// service's full duration.
type SlotRange struct {
	Start             int   `json:"start"` // Minutes from midnight
	End               int   `json:"end"`   // Minutes from midnight
	MergedSlotIndices []int `json:"mergedSlotIndices"`
}

// IsZero reports whether no slot range has been chosen yet.
func (r SlotRange) IsZero() bool {
	return len(r.MergedSlotIndices) == 0 && r.Start == 0 && r.End == 0
}

// SlotBoard groups selectable ranges the way the booking UI presents them.
type SlotBoard struct {
	Morning   []SlotOption `json:"morning"`
	Afternoon []SlotOption `json:"afternoon"`
}

// SlotOption is a pre-merged run of atomic slots covering one service duration.
type SlotOption struct {
	Start   int   `json:"start"`
	End     int   `json:"end"`
	Indices []int `json:"indices"`
	Label   string `json:"label"`
}

// MinutesToClock formats minutes-from-midnight as "HH:MM".
func MinutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
