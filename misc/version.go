// Package misc keeps build time program identity.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// set by linker: -ldflags "-X slidefx/misc.version=... -X slidefx/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
	appName = ""
)

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns git commit hash program was built from.
func GetGitHash() string {
	return gitHash
}

// GetAppName returns program name without path and extension.
func GetAppName() string {
	if len(appName) > 0 {
		return appName
	}
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}
