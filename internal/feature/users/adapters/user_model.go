package adapters

import "user_directory/internal/feature/users/domain/entity"

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:255;not null"`
	Email string `gorm:"size:255;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// joinedRow is the flat projection produced by the users/employmentdetails join.
type joinedRow struct {
	ID      uint
	Name    string
	Email   string
	Company *string
	Salary  *float64
}

func (r joinedRow) toEntity() entity.User {
	return entity.User{
		ID:      r.ID,
		Name:    r.Name,
		Email:   r.Email,
		Company: r.Company,
		Salary:  r.Salary,
	}
}
