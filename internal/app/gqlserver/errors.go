package gqlserver

import "errors"

var (
	errBody      = errors.New("POST body must be a JSON object with a query string")
	errVariables = errors.New("variables must be a JSON object")
)
