// Package entity defines the domain models for the employment feature.
package entity

// EmploymentDetail represents a row of the employmentdetails table.
// ID is shared with the owning user.
type EmploymentDetail struct {
	ID          uint
	CompanyName *string
	Salary      *float64
}
