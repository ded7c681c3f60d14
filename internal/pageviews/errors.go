package pageviews

import "errors"

var (
	// ErrInvalidInput marks user-input problems caught before any network call.
	ErrInvalidInput = errors.New("invalid input")

	// ErrArticleNotFound is returned on HTTP 404; the article most likely
	// does not exist on English Wikipedia.
	ErrArticleNotFound = errors.New("article not found")

	// ErrRequestFailed marks transport failures and unexpected HTTP statuses.
	ErrRequestFailed = errors.New("pageviews request failed")

	// ErrProcessing marks a response that arrived but could not be normalized.
	ErrProcessing = errors.New("failed to process pageviews response")
)
