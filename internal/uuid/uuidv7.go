// Package uuid generates and checks the request IDs attached to every API
// call.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. Version 7 IDs sort by creation time, so log
// lines for consecutive requests stay in order when sorted by request ID.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Random source failure; a v4 ID is still unique.
		return googleuuid.New().String()
	}
	return id.String()
}

// Normalize parses s and returns its canonical lowercase form. It reports
// false for anything that is not a UUID.
func Normalize(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, ok := Normalize(s)
	return ok
}
