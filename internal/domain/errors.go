package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrTitleTooLong is returned when a title exceeds the configured length limit
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrBatchTooLarge is returned when a batch holds more titles than allowed
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidVocabulary is returned when a vocabulary table cannot be compiled
	ErrInvalidVocabulary = errors.New("invalid vocabulary")
)
