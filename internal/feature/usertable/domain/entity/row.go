// Package entity defines the table rows and edit state of the user table UI.
package entity

import "strconv"

// Row is one combined user row as displayed in the table.
type Row struct {
	ID      string
	Name    string
	Email   string
	Company *string
	Salary  *float64
}

// UpdateInput carries the values sent with updateUser.
type UpdateInput struct {
	ID      string
	Name    string
	Email   string
	Company *string
	Salary  *float64
}

// Draft holds the raw input of a row being edited.
type Draft struct {
	Name    string
	Email   string
	Company string
	Salary  string
}

// DraftFromRow returns the input values shown when editing of row begins.
func DraftFromRow(r Row) Draft {
	d := Draft{Name: r.Name, Email: r.Email}
	if r.Company != nil {
		d.Company = *r.Company
	}
	if r.Salary != nil {
		d.Salary = strconv.FormatFloat(*r.Salary, 'f', -1, 64)
	}
	return d
}
