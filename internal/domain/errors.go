package domain

import "errors"

var (
	// ErrCountryNotFound is returned when a country is not a column of the table.
	ErrCountryNotFound = errors.New("country not found")

	// ErrImageNotFound is returned when a rendered image is missing on disk.
	ErrImageNotFound = errors.New("image file not found")
)
