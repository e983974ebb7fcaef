package booking

import (
	"fmt"

	"pawbook/models"
)

const noonMinutes = 12 * 60

// PartitionSlots splits atomic slots into morning and afternoon buckets. A
// slot is morning iff its start hour is before noon. Unavailable slots are
// dropped before partitioning; they are absent from the candidate set, not
// rendered as disabled.
func PartitionSlots(atomicSlots []models.AtomicTimeSlot) (morning, afternoon []models.AtomicTimeSlot) {
	for _, slot := range atomicSlots {
		if !slot.IsAvailable {
			continue
		}
		if slot.Start < noonMinutes {
			morning = append(morning, slot)
		} else {
			afternoon = append(afternoon, slot)
		}
	}
	return morning, afternoon
}

// BuildSlotBoard pre-merges atomic slots into duration-covering options and
// groups them the way the time step of the wizard presents them.
func BuildSlotBoard(atomicSlots []models.AtomicTimeSlot, durationMinutes int) models.SlotBoard {
	var board models.SlotBoard
	for _, opt := range BuildSlotOptions(atomicSlots, durationMinutes) {
		if opt.Start < noonMinutes {
			board.Morning = append(board.Morning, opt)
		} else {
			board.Afternoon = append(board.Afternoon, opt)
		}
	}
	return board
}

// BuildSlotOptions pre-merges contiguous runs of available atomic slots so
// that each option covers the full service duration. A service that fits in a
// single atomic slot yields one option per available slot.
func BuildSlotOptions(atomicSlots []models.AtomicTimeSlot, durationMinutes int) []models.SlotOption {
	var options []models.SlotOption

	for i := range atomicSlots {
		indices := coveringRun(atomicSlots, i, durationMinutes)
		if indices == nil {
			continue
		}
		first := atomicSlots[indices[0]]
		last := atomicSlots[indices[len(indices)-1]]
		options = append(options, models.SlotOption{
			Start:   first.Start,
			End:     last.End,
			Indices: indices,
			Label:   fmt.Sprintf("%s - %s", models.MinutesToClock(first.Start), models.MinutesToClock(last.End)),
		})
	}
	return options
}

// coveringRun walks forward from start collecting adjacent available slots
// until durationMinutes is covered. Returns nil when the run breaks first.
func coveringRun(atomicSlots []models.AtomicTimeSlot, start, durationMinutes int) []int {
	var indices []int
	covered := 0
	for i := start; i < len(atomicSlots); i++ {
		slot := atomicSlots[i]
		if !slot.IsAvailable {
			return nil
		}
		if i > start && atomicSlots[i-1].End != slot.Start {
			return nil // gap in the grid, run broken
		}
		indices = append(indices, i)
		covered += slot.End - slot.Start
		if covered >= durationMinutes {
			return indices
		}
	}
	return nil
}

// SelectSlotRange turns the user's ordered selection of atomic slot indices
// into a merged time-slot range. The selection must be a strictly increasing,
// contiguous run over time-adjacent slots; anything else is a programming
// contract violation surfaced as ErrNonContiguousSelection.
func SelectSlotRange(atomicSlots []models.AtomicTimeSlot, indices []int) (models.SlotRange, error) {
	if len(indices) == 0 {
		return models.SlotRange{}, fmt.Errorf("empty slot selection: %w", ErrNonContiguousSelection)
	}

	for i, idx := range indices {
		if idx < 0 || idx >= len(atomicSlots) {
			return models.SlotRange{}, fmt.Errorf("slot index %d out of range: %w", idx, ErrNonContiguousSelection)
		}
		if i == 0 {
			continue
		}
		if idx != indices[i-1]+1 {
			return models.SlotRange{}, ErrNonContiguousSelection
		}
		if atomicSlots[indices[i-1]].End != atomicSlots[idx].Start {
			return models.SlotRange{}, fmt.Errorf("slots %d and %d are not time-adjacent: %w", indices[i-1], idx, ErrNonContiguousSelection)
		}
	}

	merged := make([]int, len(indices))
	copy(merged, indices)

	return models.SlotRange{
		Start:             atomicSlots[indices[0]].Start,
		End:               atomicSlots[indices[len(indices)-1]].End,
		MergedSlotIndices: merged,
	}, nil
}
