// Package version provides build metadata for the folio binary.
package version

import "runtime"

// These variables are set during build time via ldflags
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
	GoVersion = runtime.Version()
)

// Info returns a map with all version information, as served by /status.
func Info() map[string]string {
	return map[string]string{
		"version":   Version,
		"buildTime": BuildTime,
		"gitCommit": GitCommit,
		"goVersion": GoVersion,
	}
}

// String renders the version line printed by `folio -version`.
func String() string {
	return Version + " (" + GitCommit + ", built " + BuildTime + ", " + GoVersion + ")"
}
