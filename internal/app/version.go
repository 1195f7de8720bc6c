package app

import "fmt"

// ServiceName is reported by the root endpoint and attached to every log record.
const ServiceName = "HPC Dispatch Microservice"

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/hpc-dispatch/internal/app.Version=1.2.0"
var (
	Version   = "1.2.0"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs and the version command.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
