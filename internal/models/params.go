package models

import "strings"

// InvocationParameters holds the naming flags of one run. Both must be set for
// the rename to take place.
type InvocationParameters struct {
	ProjectName string
	BundleName  string
}

func (p InvocationParameters) HasProjectName() bool {
	return strings.TrimSpace(p.ProjectName) != ""
}

func (p InvocationParameters) HasBundleName() bool {
	return strings.TrimSpace(p.BundleName) != ""
}

// ShouldRename reports whether both names were supplied.
func (p InvocationParameters) ShouldRename() bool {
	return p.HasProjectName() && p.HasBundleName()
}

// IsPartial reports whether exactly one of the two names was supplied.
func (p InvocationParameters) IsPartial() bool {
	return p.HasProjectName() != p.HasBundleName()
}

// ProjectIdentity is the old/new name pair derived once per run.
type ProjectIdentity struct {
	OldName string
	NewName string
}

// Unchanged reports whether the project already carries the new name.
func (id ProjectIdentity) Unchanged() bool {
	return id.OldName == id.NewName
}
