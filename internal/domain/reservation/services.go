package reservation

// FindConflict returns the first existing reservation whose stay overlaps the candidate.
// Callers pass the reservations of a single room.
func FindConflict(existing []*Reservation, candidate TimeSlot) *Reservation {
	for _, r := range existing {
		if r.stay.Overlaps(candidate) {
			return r
		}
	}
	return nil
}
