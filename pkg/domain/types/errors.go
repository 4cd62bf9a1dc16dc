package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrPackageNotFound is returned when the input package does not exist
	ErrPackageNotFound = goerr.New("package file not found")

	// ErrUnsupportedArchive is returned when the input exists but cannot be extracted
	ErrUnsupportedArchive = goerr.New("unsupported archive format")

	// ErrInvalidSource is returned when a package source cannot be parsed
	ErrInvalidSource = goerr.New("invalid package source")
)
