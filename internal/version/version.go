package version

import "runtime"

// AppName is the process name reported in logs and health checks.
const AppName = "quran-shell"

var (
	Version   = "dev"              // ex: v0.1.0, set via -ldflags
	Commit    = "none"             // ex: abcd123
	BuildDate = "unknown"          // ex: 2026-08-29T10:00:00Z
	GoVersion = runtime.Version()  // go version used for the build
)
