// Package codecvar provides the version of a mailcodec build.
package codecvar

import (
	"runtime/debug"
)

// Version is set at startup from the module build information.
var Version = "(devel)"

func init() {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	Version = versionFrom(buildInfo)
}

// versionFrom returns the module version, or for development builds the
// vcs revision with a suffix if the tree had modifications.
func versionFrom(bi *debug.BuildInfo) string {
	v := bi.Main.Version
	if v != "(devel)" && v != "" {
		return v
	}
	var vcsRev, vcsMod string
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			vcsRev = setting.Value
		case "vcs.modified":
			vcsMod = setting.Value
		}
	}
	if vcsRev == "" {
		return "(devel)"
	}
	switch vcsMod {
	case "false":
		return vcsRev
	case "true":
		return vcsRev + "+modifications"
	}
	return vcsRev + "+unknown"
}
