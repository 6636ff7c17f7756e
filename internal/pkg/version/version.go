package version

import "runtime/debug"

// Set at build time:
//
//	go build -ldflags "-X wifi-toggle/internal/pkg/version.tag=$(git describe --tags --abbrev=0)"
var (
	commit string
	branch string
	tag    string
	dirty  string
)

type gitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

// GetGitInfo returns the git metadata of the binary. Values not injected at build
// time are taken from the VCS stamp the Go toolchain records.
func GetGitInfo() gitInfo {
	info := gitInfo{
		Commit: commit,
		Branch: branch,
		Tag:    tag,
		Dirty:  dirty == "dirty",
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(&info, bi.Settings)
	}

	if info.Tag == "" {
		info.Tag = "none"
	}
	if info.Branch == "" {
		info.Branch = "unknown"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	return info
}

func fillFromBuildInfo(info *gitInfo, settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.modified":
			if dirty == "" {
				info.Dirty = s.Value == "true"
			}
		}
	}
}
