// Package dto defines the GraphQL-facing shapes of the employment feature.
package dto

import (
	"user_directory/internal/feature/employment/domain/entity"
	"user_directory/internal/shared/ident"
)

// EmploymentDetails is the GraphQL representation of an employmentdetails row.
type EmploymentDetails struct {
	ID          string   `json:"id"`
	CompanyName *string  `json:"companyname"`
	Salary      *float64 `json:"salary"`
}

// FromEntity converts a domain employment detail into its GraphQL shape.
func FromEntity(d entity.EmploymentDetail) EmploymentDetails {
	return EmploymentDetails{
		ID:          ident.Format(d.ID),
		CompanyName: d.CompanyName,
		Salary:      d.Salary,
	}
}
