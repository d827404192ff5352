package manifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ValidateVersions checks that every version constraint attached to out's
// dependency declarations parses as a valid semver constraint. Parse never
// calls this itself — the manifest dialect allows constraints Parse cannot
// and should not reject (platform-specific Ruby version strings) — so
// validation is opt-in for callers who want a stricter check over the
// extracted output. A declaration with no versions always passes. The first
// constraint that fails to parse is returned as the error.
func ValidateVersions(out *ParseOutput) error {
	for _, decl := range out.Groups.Runtime {
		if err := validateDeclarationVersions(decl); err != nil {
			return err
		}
	}
	for _, decl := range out.Groups.Development {
		if err := validateDeclarationVersions(decl); err != nil {
			return err
		}
	}
	return nil
}

func validateDeclarationVersions(decl GemDeclaration) error {
	for _, v := range decl.Versions {
		if _, err := semver.NewConstraint(v); err != nil {
			return fmt.Errorf("%s: invalid version constraint %q: %w", decl.Name, v, err)
		}
	}
	return nil
}
