package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-kline/pkg/errors"
)

// CheckVersionCompatibility checks if the library version and the version a
// native chart view was built against are compatible.
// Returns nil if compatible, error with details if not.
//
// Compatibility Rules:
//   - If either version is "main" (development build), compatibility check is skipped
//   - Major versions must match exactly
//   - Minor versions must match exactly
//   - Patch versions can differ (e.g., 1.2.0 is compatible with 1.2.5)
//
// Examples:
//   - Library 1.2.0, Native 1.2.0 -> OK (exact match)
//   - Library 1.2.1, Native 1.2.0 -> OK (patch differs)
//   - Library 1.3.0, Native 1.2.0 -> ERROR (minor differs)
//   - Library 2.0.0, Native 1.2.0 -> ERROR (major differs)
//   - Library main, Native 1.2.0 -> OK (dev build, skip check)
func CheckVersionCompatibility(libraryVersion, nativeVersion string) error {
	// Strip 'v' prefix if present for consistency
	libraryVersion = strings.TrimPrefix(libraryVersion, "v")
	nativeVersion = strings.TrimPrefix(nativeVersion, "v")

	// Skip version check for "main" (development builds)
	if libraryVersion == "main" || nativeVersion == "main" {
		return nil
	}

	// Parse library version
	librarySemver, err := semver.NewVersion(libraryVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid library version '%s'", libraryVersion)
	}

	// Parse native version
	nativeSemver, err := semver.NewVersion(nativeVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid native version '%s'", nativeVersion)
	}

	// Check major version match
	if librarySemver.Major() != nativeSemver.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "major version mismatch: library is %d.x.x but chart view requires %d.x.x",
			librarySemver.Major(), nativeSemver.Major())
	}

	// Check minor version match
	if librarySemver.Minor() != nativeSemver.Minor() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "minor version mismatch: library is %d.%d.x but chart view requires %d.%d.x",
			librarySemver.Major(), librarySemver.Minor(),
			nativeSemver.Major(), nativeSemver.Minor())
	}

	// Patch versions can differ, so we're compatible
	return nil
}
