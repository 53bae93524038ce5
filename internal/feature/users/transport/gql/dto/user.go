// Package dto defines the GraphQL-facing shapes of the users feature.
package dto

import (
	"user_directory/internal/feature/users/domain/entity"
	"user_directory/internal/shared/ident"
)

// User is the GraphQL representation of a combined row.
// Field names follow the json tags, which the default resolver reads.
type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Company *string  `json:"company"`
	Salary  *float64 `json:"salary"`
}

// FromEntity converts a domain user into its GraphQL shape.
func FromEntity(u entity.User) User {
	return User{
		ID:      ident.Format(u.ID),
		Name:    u.Name,
		Email:   u.Email,
		Company: u.Company,
		Salary:  u.Salary,
	}
}
