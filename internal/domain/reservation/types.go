package reservation

// Status is the closed state set of a reservation. READY_TO_PLAY is the
// only non-terminal state; CANCELLED is terminal. The human-facing label
// ("ready to play") lives at the presentation boundary, never here.
type Status string

const (
	StatusReadyToPlay Status = "ready_to_play"
	StatusCancelled   Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReadyToPlay, StatusCancelled:
		return true
	default:
		return false
	}
}
