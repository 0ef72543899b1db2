// Package buildinfo carries the sketchfit version stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/sketchfit/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/sketchfit/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/sketchfit/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/sketchfit
//
// The CLI prints it for --version and the chart server reports it on /healthz.
package buildinfo

import "fmt"

// Link-time values; unstamped builds report "dev".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build stamp in a form that encodes to JSON.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Current returns the stamp of the running binary.
func Current() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String formats the stamp on one line, e.g. "v0.3.0 (abc1234, 2026-10-19)".
func (i Info) String() string {
	return fmt.Sprintf("%s (%s, %s)", i.Version, i.Commit, i.Date)
}

// Template returns the cobra --version template.
func Template() string {
	return "{{.Name}} " + Current().String() + "\n"
}
