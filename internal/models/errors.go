package models

import "errors"

var (
	// ErrInvalidProjectName indicates a project name that cannot be used as a folder name.
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrInvalidBundleID indicates a bundle identifier that is not reverse-DNS.
	ErrInvalidBundleID = errors.New("invalid bundle identifier")
)
