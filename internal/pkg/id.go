package pkg

import uuid "github.com/satori/go.uuid"

// GenerateMatchID returns a random id used to tie together the log lines of one match.
func GenerateMatchID() string {
	return uuid.NewV4().String()
}
