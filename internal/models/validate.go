package models

import (
	"fmt"
	"regexp"
	"strings"
)

const maxBundleIDLength = 155

var bundleIDRegex = regexp.MustCompile(`^[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)

// ValidateProjectName checks that name can be used as a folder and file name
// inside the platform directory.
func ValidateProjectName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidProjectName)
	case strings.ContainsAny(name, `/\:`+"\x00"):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidProjectName, name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidProjectName, name)
	case strings.HasSuffix(name, XcodeProjectSuffix), strings.HasSuffix(name, XcodeWorkspaceSuffix):
		return fmt.Errorf("%w: %q must not carry a bundle suffix", ErrInvalidProjectName, name)
	}
	return nil
}

// ValidateBundleID checks that id follows Apple's reverse-DNS bundle identifier rules.
func ValidateBundleID(id string) error {
	if len(id) > maxBundleIDLength {
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidBundleID, id, maxBundleIDLength)
	}
	if !bundleIDRegex.MatchString(id) {
		return fmt.Errorf("%w: %q (expected reverse-DNS such as com.company.app)", ErrInvalidBundleID, id)
	}
	return nil
}
