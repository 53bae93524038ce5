// Package dto defines the wire shapes exchanged with the GraphQL API.
package dto

import "encoding/json"

// Request はGraphQL over HTTPのリクエストボディです。
type Request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// Response はGraphQLのレスポンスです。Data はフィールドごとにデコードします。
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors"`
}

// Error はGraphQLエラーの1件です。
type Error struct {
	Message string `json:"message"`
}

// User はAPIが返すUser型です。
type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Company *string  `json:"company"`
	Salary  *float64 `json:"salary"`
}

// UsersData は users クエリの data 部です。
type UsersData struct {
	Users []User `json:"users"`
}

// UserData は user クエリの data 部です。
type UserData struct {
	User *User `json:"user"`
}

// UpdateUserData は updateUser ミューテーションの data 部です。
type UpdateUserData struct {
	UpdateUser *User `json:"updateUser"`
}
