package domain

import "time"

// DateLayout is the calendar-date layout used for dates of birth in every
// export format and on the command line.
const DateLayout = "2006-01-02"

// User is the value exported by the user export use case.
// It carries no identity beyond its fields.
type User struct {
	// Name is the display name (e.g., "John Doe")
	Name string

	// Email is the contact address
	Email string

	// DateOfBirth holds a calendar date; the clock part is ignored
	DateOfBirth time.Time
}

// BirthDate returns the date of birth formatted with DateLayout,
// or an empty string when it is unset.
func (u User) BirthDate() string {
	if u.DateOfBirth.IsZero() {
		return ""
	}
	return u.DateOfBirth.Format(DateLayout)
}

// Equal reports whether two users carry the same fields.
// Dates are compared as instants, so locations do not matter.
func (u User) Equal(o User) bool {
	return u.Name == o.Name && u.Email == o.Email && u.DateOfBirth.Equal(o.DateOfBirth)
}
