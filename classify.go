package pyext

import (
	"fmt"
	"path/filepath"
	"strings"
)

// WheelOptions are the packaging options that decide how a wheel is tagged.
//
// RootIsPure is nil until a finalizer decides it. A pure wheel is tagged
// py3-none-any; a platform-specific one carries the interpreter, ABI and
// platform tags.
type WheelOptions struct {
	DistName  string
	Version   string
	PythonTag string
	ABITag    string
	PlatName  string

	RootIsPure *bool
}

// Pure reports whether the wheel is marked pure. Unset counts as pure.
func (o WheelOptions) Pure() bool {
	return o.RootIsPure == nil || *o.RootIsPure
}

// Tag returns the compatibility tag, e.g. "cp312-cp312-linux_x86_64".
func (o WheelOptions) Tag() string {
	if o.Pure() {
		return "py3-none-any"
	}
	return strings.Join([]string{
		valueOr(o.PythonTag, "py3"),
		valueOr(o.ABITag, "none"),
		valueOr(o.PlatName, HostPlatformTag()),
	}, "-")
}

// Filename returns the wheel file name for these options.
func (o WheelOptions) Filename() string {
	name := strings.ReplaceAll(o.DistName, "-", "_")
	return fmt.Sprintf("%s-%s-%s.whl", name, o.Version, o.Tag())
}

// InstallOptions are the packaging options that decide where the package
// is installed.
type InstallOptions struct {
	Prefix         string
	InstallPurelib string // generic library location
	InstallPlatlib string // platform-specific library location
	InstallLib     string // where the package actually lands
}

// WheelFinalizer completes wheel options.
type WheelFinalizer func(WheelOptions) (WheelOptions, error)

// InstallFinalizer completes install options.
type InstallFinalizer func(InstallOptions) (InstallOptions, error)

// DefaultWheelFinalizer fills the wheel options the way the packaging system
// does for a distribution that declares no extension modules: it is
// inferred pure unless already decided.
func DefaultWheelFinalizer(config *BuildConfig) WheelFinalizer {
	return func(o WheelOptions) (WheelOptions, error) {
		if o.DistName == "" {
			o.DistName = config.Name
		}
		if o.DistName == "" {
			return o, fmt.Errorf("wheel options: distribution name is required")
		}
		if o.Version == "" {
			o.Version = config.Version.String()
		}
		if o.PythonTag == "" || o.ABITag == "" {
			python, abi := interpreterTags(config.PythonVersion)
			o.PythonTag = valueOr(o.PythonTag, python)
			o.ABITag = valueOr(o.ABITag, abi)
		}
		if o.PlatName == "" {
			o.PlatName = HostPlatformTag()
		}
		if o.RootIsPure == nil {
			pure := true
			o.RootIsPure = &pure
		}
		return o, nil
	}
}

// DefaultInstallFinalizer fills any unset install locations from the
// prefix and selects the generic library location.
func DefaultInstallFinalizer(config *BuildConfig) InstallFinalizer {
	return func(o InstallOptions) (InstallOptions, error) {
		if o.Prefix == "" {
			o.Prefix = config.Prefix
		}
		if o.Prefix == "" {
			return o, fmt.Errorf("install options: prefix is required")
		}

		purelib, platlib := sitePackages(config)
		if o.InstallPurelib == "" {
			o.InstallPurelib = filepath.Join(o.Prefix, purelib)
		}
		if o.InstallPlatlib == "" {
			o.InstallPlatlib = filepath.Join(o.Prefix, platlib)
		}
		if o.InstallLib == "" {
			o.InstallLib = o.InstallPurelib
		}
		return o, nil
	}
}

// PlatformWheel wraps a wheel finalizer so the result is always marked
// platform-specific. next runs first; its errors are returned unchanged.
func PlatformWheel(next WheelFinalizer) WheelFinalizer {
	return func(o WheelOptions) (WheelOptions, error) {
		o, err := next(o)
		if err != nil {
			return o, err
		}
		return MarkPlatformSpecific(o), nil
	}
}

// InstallToPlatlib wraps an install finalizer so the package is always
// installed into the platform library location. next runs first; its
// errors are returned unchanged.
func InstallToPlatlib(next InstallFinalizer) InstallFinalizer {
	return func(o InstallOptions) (InstallOptions, error) {
		o, err := next(o)
		if err != nil {
			return o, err
		}
		return RedirectToPlatlib(o), nil
	}
}

// MarkPlatformSpecific returns o with RootIsPure forced to false.
func MarkPlatformSpecific(o WheelOptions) WheelOptions {
	pure := false
	o.RootIsPure = &pure
	return o
}

// RedirectToPlatlib returns o with InstallLib set to InstallPlatlib.
func RedirectToPlatlib(o InstallOptions) InstallOptions {
	o.InstallLib = o.InstallPlatlib
	return o
}

// interpreterTags returns the python and ABI tags for a "3.12" style
// version. Without a version the generic py3/none pair is used.
func interpreterTags(pythonVersion string) (python, abi string) {
	major, minor, ok := strings.Cut(pythonVersion, ".")
	if !ok || major == "" || minor == "" {
		return "py3", "none"
	}
	tag := "cp" + major + minor
	return tag, tag
}

func sitePackages(config *BuildConfig) (purelib, platlib string) {
	if config.platform().IsWindows() {
		lib := filepath.Join("Lib", "site-packages")
		return lib, lib
	}

	pyDir := "python3"
	if config.PythonVersion != "" {
		pyDir = "python" + config.PythonVersion
	}
	platlibDir := valueOr(config.PlatLibDir, "lib")

	return filepath.Join("lib", pyDir, "site-packages"),
		filepath.Join(platlibDir, pyDir, "site-packages")
}

func valueOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
