package domain

// Role represents a principal's role in the system
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin" // caretaker
)

// ParseRole normalizes a stored or claimed role. An empty role is a plain user.
func ParseRole(s string) Role {
	if s == "" {
		return RoleUser
	}
	return Role(s)
}

// Identity is the authenticated principal carried by a verified token
type Identity struct {
	UserID uint
	Role   Role
}

// Authorize allows the identity when its role matches the required role
func Authorize(identity Identity, required Role) error {
	if identity.Role != required {
		return ErrForbidden
	}
	return nil
}

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pendente"
	StatusConcluded BookingStatus = "concluido"
)

// Conclude returns the state after the "mark concluded" transition.
// concluido is terminal, so concluding twice is a no-op.
func (s BookingStatus) Conclude() BookingStatus {
	return StatusConcluded
}

// IsTerminal reports whether no further transitions exist
func (s BookingStatus) IsTerminal() bool {
	return s == StatusConcluded
}
