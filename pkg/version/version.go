// Package version provides version information for the contexto CLI tool.
package version

import (
	"fmt"
	"runtime"
)

// These variables are populated at build time using -ldflags.
// Example:
// go build -ldflags "-X 'contexto/pkg/version.Version=1.2.3' -X 'contexto/pkg/version.Commit=abcdefg' -X 'contexto/pkg/version.BuildTime=2024-04-27T15:04:05Z'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// AppName is reported in logs and in the version line.
const AppName = "contexto"

// Info describes the running binary.
type Info struct {
	Name      string
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Name:      AppName,
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the version information in a single line, e.g.
// contexto 1.2.3 (abcdefg, 2024-04-27T15:04:05Z) go1.23.1 linux/amd64
func (i Info) String() string {
	return fmt.Sprintf(
		"%s %s (%s, %s) %s %s",
		i.Name,
		i.Version,
		i.GitCommit,
		i.BuildTime,
		i.GoVersion,
		i.Platform,
	)
}
