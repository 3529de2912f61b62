package cli

import (
	"runtime/debug"
)

// buildVersion reads the module version embedded by the Go toolchain at
// build time, falling back to "dev" for a non-release build (go run, a
// local go build without VCS info, etc).
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "doccmd dev"
	}
	return "doccmd " + info.Main.Version
}
