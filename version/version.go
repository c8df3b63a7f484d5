package version

import "fmt"

// values are set via ldflags on release builds
var (
	Version   = "0.0.0-dev"
	GitCommit = "none"
	BuildDate = "unknown"

	FullVersion = fmt.Sprintf("%s (%s, %s)", Version, GitCommit, BuildDate)
)
