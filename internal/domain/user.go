package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle      UserState = "idle"
	StateReviewing UserState = "reviewing"
	StateResetting UserState = "resetting"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State     UserState
	SessionID string
	Mode      Mode
	Card      Candidate // Card on screen
	Position  int       // 1-based position of Card in the session
	Total     int
}
