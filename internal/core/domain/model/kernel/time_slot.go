package kernel

import (
	"iter"
	"time"
)

// SlotGranularity is the human-schedulable slot size offered to callers.
// Slot quantization only affects presentation granularity, never feasibility.
const SlotGranularity = 30 * time.Minute

// TimeSlot is a transient [Start, End] interval produced by slot quantization.
// It is used only during computation and is never persisted.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// QuantizeSlots produces a lazy, finite, restartable sequence of contiguous
// 30-minute slots covering [start, end]. The first slot begins at start rounded
// up to the next 30-minute boundary (timestamps already on a boundary are left
// unchanged); the last slot is clipped so it never exceeds end.
//
// Invalid input (a zero timestamp or start after end) yields an empty sequence:
// that is a usage error on the caller's side, not a reason to panic.
//
// Example:
//
//	for slot := range kernel.QuantizeSlots(windowStart, deadline) {
//	    offer(slot)
//	}
func QuantizeSlots(start time.Time, end time.Time) iter.Seq[TimeSlot] {
	return func(yield func(TimeSlot) bool) {
		if start.IsZero() || end.IsZero() || start.After(end) {
			return
		}

		cur := roundUpToSlot(start)
		for cur.Before(end) {
			slotEnd := cur.Add(SlotGranularity)
			if slotEnd.After(end) {
				slotEnd = end
			}
			if !yield(TimeSlot{Start: cur, End: slotEnd}) {
				return
			}
			cur = slotEnd
		}
	}
}

// roundUpToSlot rounds t up to the next SlotGranularity boundary.
// Timestamps exactly on a boundary are returned unchanged.
func roundUpToSlot(t time.Time) time.Time {
	rounded := t.Truncate(SlotGranularity)
	if rounded.Before(t) {
		rounded = rounded.Add(SlotGranularity)
	}
	return rounded
}
