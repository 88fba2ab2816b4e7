// Package misc holds small program identity helpers used by logging and
// the command line surface.
package misc

import (
	"runtime/debug"
)

const appName = "cssb"

// set by the linker in release builds, falls back to module info otherwise
var appVersion string

// GetAppName returns the program name used for log files and CLI help.
func GetAppName() string {
	return appName
}

// GetVersion returns the program version.
func GetVersion() string {
	if len(appVersion) > 0 {
		return appVersion
	}
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 {
		return bi.Main.Version
	}
	return "unknown"
}

// GetGitHash returns the vcs revision recorded in build info.
func GetGitHash() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return "unknown"
}
