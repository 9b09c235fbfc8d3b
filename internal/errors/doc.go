// Package errors provides structured, actionable errors for waymark
// shape resolution.
//
// A shape descriptor that cannot be compiled into a codec is a caller
// bug: the endpoint declaration itself is invalid. These errors are
// raised once, at router construction, and never during parse/render.
// A path that merely fails to match is not an error anywhere in this
// module; it surfaces as an empty candidate set.
//
// # Error codes
//
// Each configuration error has a unique code (e.g. "W001") that maps
// to a short message, a detailed explanation, and a documentation URL.
//
// # Usage
//
//	err := errors.New("W003").
//	    WithDetail("cases \"Home\" and \"Landing\" both have an empty prefix").
//	    WithSuggestion("give one of the cases a literal prefix segment")
package errors
