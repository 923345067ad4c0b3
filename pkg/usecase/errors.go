package usecase

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrFeatureNotFound is returned when a requested app feature ID is not
	// in the feature registry
	ErrFeatureNotFound = goerr.New("app feature not found")

	// ErrChatNotConfigured is returned when the conversational front-end is
	// used without an LLM client
	ErrChatNotConfigured = goerr.New("chat is not configured, LLM client is missing")
)
