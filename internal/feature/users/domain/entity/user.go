// Package entity defines the domain models for the users feature.
package entity

// User is the combined view of a user record and its employment detail,
// joined on the shared identifier.
// Company and Salary are nil when the user has no employment row.
type User struct {
	ID      uint
	Name    string
	Email   string
	Company *string
	Salary  *float64
}

// UpdateUser carries the full set of values written by an update.
// Every field is overwritten; nil Company or Salary stores NULL.
type UpdateUser struct {
	ID      uint
	Name    string
	Email   string
	Company *string
	Salary  *float64
}
