package pyext

import "strings"

// Packaging subcommands that produce or install compiled code.
var nativeBuildCommands = map[string]struct{}{
	"build":       {},
	"build_ext":   {},
	"install":     {},
	"develop":     {},
	"bdist_wheel": {},
	"wheel":       {},
}

// RequiresNativeBuild reports whether the packaging subcommand needs the
// native extension configured and built before it runs.
//
// Metadata queries (egg_info, sdist, version and the like) do not, so they
// never touch the toolchain. Dashes and underscores are interchangeable.
func RequiresNativeBuild(command string) bool {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(command)), "-", "_")
	_, ok := nativeBuildCommands[name]
	return ok
}
