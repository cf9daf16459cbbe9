//go:build tools

package graph

//go:generate go run github.com/99designs/gqlgen generate

import _ "github.com/99designs/gqlgen"
