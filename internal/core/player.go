package core

// PlayerID identifies a player slot within a match. Player1 is the first
// session the matchmaker paired; Player2 joined after. The zero value means
// no player, which doubles as "draw" in match results.
type PlayerID int

const (
	Player1 PlayerID = iota + 1
	Player2
)

// Other returns the opposing player slot.
func (p PlayerID) Other() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// String returns a short label for the player slot.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}
