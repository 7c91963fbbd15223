package version

import (
	"fmt"
	"runtime/debug"
)

var (
	VersionPrefix = "dev"     // Set via -ldflags
	VersionDate   = "edge"    // Set via -ldflags - Value should be: YYYYMMDD
	CommitHash    = "unknown" // Set via -ldflags
)

// Info describes the running binary.
type Info struct {
	Version   string
	Date      string
	Commit    string
	GoVersion string
	// Modified is true when the build came from a dirty checkout.
	Modified bool
}

// Get collects version details, preferring values injected at link time and
// falling back to the VCS data recorded by the Go toolchain.
func Get() Info {
	info := Info{Version: VersionPrefix, Date: VersionDate, Commit: CommitHash}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" && len(s.Value) >= 7 {
				info.Commit = s.Value[:7]
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// Print returns the version information
func Print() string {
	return Get().String()
}

func (i Info) String() string {
	s := fmt.Sprintf(`%s-%s-%s`, i.Version, i.Date, i.Commit)
	if i.Modified {
		s += "-dirty"
	}
	return s
}
