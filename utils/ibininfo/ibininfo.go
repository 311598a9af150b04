package ibininfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

/*
编译时注入:

go build -ldflags "-X 'github.com/cute-angelia/go-xrand/utils/ibininfo.Version=$(git describe --tags --always)' \
                   -X 'github.com/cute-angelia/go-xrand/utils/ibininfo.BuildTime=$(date '+%Y-%m-%d %H:%M:%S')'" ./cmd/xrand
*/

var (
	Version   = "unknown"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Info 未注入的字段从 debug.ReadBuildInfo 的 vcs 信息补全
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	Modified  bool   `json:"modified"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	OSArch    string `json:"os_arch"`
}

func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		OSArch:    runtime.GOOS + "/" + runtime.GOARCH,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "unknown" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String 多行格式
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Version=%s\n", i.Version)
	fmt.Fprintf(&b, "GitCommit=%s\n", i.GitCommit)
	fmt.Fprintf(&b, "Modified=%t\n", i.Modified)
	fmt.Fprintf(&b, "BuildTime=%s\n", i.BuildTime)
	fmt.Fprintf(&b, "GoVersion=%s\n", i.GoVersion)
	fmt.Fprintf(&b, "runtime=%s", i.OSArch)
	return b.String()
}
