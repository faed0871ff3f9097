package gff

import "runtime"

// LibraryVersion is the semantic version of the gff library.
//
// It is unrelated to the GFF dialect selector Version: the library version
// changes with the Go API, while V2 and V3 name the file formats it reads
// and writes. gffconv prints it from its version command.
const LibraryVersion = "0.1.0"

// GetVersion returns the current library version string, for callers that
// record which parser produced a converted annotation file.
func GetVersion() string {
	return LibraryVersion
}

// VersionInfo contains detailed build information for a gff binary.
type VersionInfo struct {
	// Version is the semantic version (e.g., "0.1.0")
	Version string
	// GitCommit is the git commit hash (set via ldflags at build time)
	GitCommit string
	// BuildTime is the build timestamp (set via ldflags at build time)
	BuildTime string
	// GoVersion is the Go version used to build
	GoVersion string
}

// GetVersionInfo returns detailed version information
//
// GitCommit, BuildTime, and GoVersion are populated at build time via -ldflags.
// If not set, they will show as "unknown".
//
// Example build command:
//
//	go build -ldflags="-X github.com/simonhull/gff.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/gff.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ) \
//	  -X github.com/simonhull/gff.goVersion=$(go version | awk '{print $3}')"
func GetVersionInfo() VersionInfo {
	goVer := goVersion
	if goVer == "unknown" {
		// Fallback to runtime if not set via ldflags
		goVer = runtime.Version()
	}

	return VersionInfo{
		Version:   LibraryVersion,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: goVer,
	}
}

// Variables populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)
