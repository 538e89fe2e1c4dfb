package domain

import "errors"

// Sentinel errors for catalog operations
var (
	// ErrServerOffline indicates the catalog endpoint is unreachable
	ErrServerOffline = errors.New("catalog endpoint is unreachable")

	// ErrNotFound indicates the endpoint answered 404
	ErrNotFound = errors.New("catalog document not found")

	// ErrEmptyDocument indicates a set document carried no data entry
	ErrEmptyDocument = errors.New("catalog document has no data entry")

	// ErrMissingField indicates a required JSON path was absent
	ErrMissingField = errors.New("required field missing")

	// ErrMalformed indicates a JSON entry whose fields have the wrong shape
	ErrMalformed = errors.New("malformed catalog entry")

	// ErrUnknownItemType indicates an item type tag outside the known table
	ErrUnknownItemType = errors.New("unknown item type")

	// ErrNoVisual indicates image bytes could not be turned into a drawable image
	ErrNoVisual = errors.New("image could not be decoded")
)
