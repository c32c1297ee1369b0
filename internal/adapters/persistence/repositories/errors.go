package repositories

import "errors"

// ErrSlotTaken is returned when a create or update would put two
// non-cancelled appointments on the same (date, time) slot.
var ErrSlotTaken = errors.New("slot already booked")
