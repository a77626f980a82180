package imggen

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
const Version = "0.1.0"

// APIVersion is the AI Image Generator API version this SDK was built for.
const APIVersion = "1.0.0"

// APIVersionRange is the semver constraint of API versions this SDK is
// known to work with.
const APIVersionRange = ">= 1.0.0, < 2.0.0"

var compatible = mustConstraint(APIVersionRange)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic("imggen: invalid version constraint " + c + ": " + err.Error())
	}
	return constraint
}

// IsCompatible reports whether version satisfies [APIVersionRange].
// A leading "v" is accepted. Empty or malformed versions are incompatible.
//
//	health, _ := client.Health(ctx)
//	if v := health.ServerVersion(); v != "" && !imggen.IsCompatible(v) {
//	    log.Printf("server %s is outside %s", v, imggen.APIVersionRange)
//	}
func IsCompatible(version string) bool {
	version = strings.TrimSpace(version)
	if version == "" {
		return false
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return compatible.Check(v)
}
