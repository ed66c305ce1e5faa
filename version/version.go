// Package version exposes build metadata injected with -ldflags:
//
//	go build -ldflags "-X github.com/teranos/milassist/version.Version=v0.3.0 \
//	  -X github.com/teranos/milassist/version.CommitHash=$(git rev-parse HEAD)"
package version

import (
	"fmt"
	"runtime"
)

// Product prefixes every version string and the outbound User-Agent.
const Product = "milassist"

var (
	CommitHash = "dev"
	BuildTime  = "unknown"
	Version    = "dev"
)

// Info is the build metadata of the running binary.
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

func Get() Info {
	return Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", Product, i.Version, i.CommitHash, i.BuildTime)
}

// Short is the abbreviated commit hash.
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}

// UserAgent identifies milassist to Mapbox and the LLM endpoints,
// e.g. "milassist/v0.3.0 (0123456; linux/amd64)".
func UserAgent() string {
	i := Get()
	return fmt.Sprintf("%s/%s (%s; %s)", Product, i.Version, i.Short(), i.Platform)
}
