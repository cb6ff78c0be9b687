// Package errs defines the sentinel errors shared by rechenmodul packages.
//
// Callers match them with errors.Is; packages wrap them with additional
// context using fmt.Errorf and the %w verb.
package errs

import "errors"

// Calculation errors.
var (
	// ErrEmptySample is returned when a statistic is requested for a sample without points.
	ErrEmptySample = errors.New("sample contains no points")
	// ErrInsufficientPoints is raised when a regression line is fitted to fewer than two points.
	ErrInsufficientPoints = errors.New("at least two points are required")
)

// Point store and validation errors.
var (
	// ErrSampleTooLarge is returned when a sample exceeds the maximum sample size.
	ErrSampleTooLarge = errors.New("sample exceeds maximum size")
	// ErrTooManyDistinctValues is returned when a sample exceeds the maximum number of distinct point values.
	ErrTooManyDistinctValues = errors.New("sample exceeds maximum number of distinct point values")
	// ErrInvalidValue is returned for coordinates that are not finite or out of the safe range.
	ErrInvalidValue = errors.New("invalid point value")
	// ErrPointNotFound is returned when a point ID does not exist in the store.
	ErrPointNotFound = errors.New("point not found")
	// ErrInvalidTable is returned for malformed contingency tables.
	ErrInvalidTable = errors.New("invalid contingency table")
)

// Sample token errors.
var (
	// ErrInvalidToken is returned when a sample token cannot be decoded.
	ErrInvalidToken = errors.New("invalid sample token")
	// ErrChecksumMismatch is returned when a decoded payload does not match its checksum.
	ErrChecksumMismatch = errors.New("sample token checksum mismatch")
	// ErrInvalidCompression is returned for unknown compression types.
	ErrInvalidCompression = errors.New("invalid compression type")
)
