// Package version provides the build information of colorfmt and the
// version command that reports it.
package version

import (
	"fmt"
	"runtime"
)

// Set via ldflags at build time.
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info holds version information for a binary.
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
	Platform  string `json:"platform"`
}

// New creates an Info from the build variables.
func New(name string) *Info {
	return &Info{
		Name:      name,
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
