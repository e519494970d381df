// Package version records the xmatrix build version.
package version

// VersionTag is the release tag, overridden at build time via
// -ldflags "-X github.com/teranos/xmatrix/internal/version.VersionTag=..."
var VersionTag = "v0.1.0-dev"
