// Package common contains shared constants and sentinel errors used across
// Fruitie components.
package common

// AuthorizationHeaderName carries the bearer token on protected requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token inside the Authorization header.
const BearerPrefix = "Bearer "

// MinPasswordLength is the shortest accepted plaintext password.
const MinPasswordLength = 6

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72
