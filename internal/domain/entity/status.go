// Package entity contains the core business objects of the project.
package entity

// Status is the active/inactive flag shared by products and variants.
type Status string

const (
	// StatusActive marks a row that is visible on the storefront.
	StatusActive Status = "active"
	// StatusInactive marks a row hidden from the storefront.
	StatusInactive Status = "inactive"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// Toggled returns the opposite status. Unknown values toggle to active.
func (s Status) Toggled() Status {
	if s == StatusActive {
		return StatusInactive
	}

	return StatusActive
}
