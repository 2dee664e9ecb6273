// Package pyext builds the native extension of a Python package and
// classifies the resulting distribution as platform-specific.
//
// The package drives CMake in two blocking stages inside a build workspace
// (cmake_build by default):
//
//  1. Configure: cmake <sources> -DPYTHON_EXECUTABLE=<interpreter>
//     (plus the vcpkg triplet and toolchain file on Windows)
//  2. Build: make -j<cpus>, or cmake --build . --config Release on Windows
//
// A non-zero exit from either stage stops everything. The toolchain's own
// output is the diagnostic; no retry or fallback is attempted.
//
// # Basic Usage
//
//	config := &pyext.BuildConfig{
//	    Name:    "opensfm",
//	    Version: pyext.Version{Major: 0, Minor: 5, Patch: 2},
//	}
//
//	orch := pyext.NewOrchestrator(config, pyext.NewExecRunner())
//	result, err := orch.Run(ctx)
//
// # Classification
//
// After the build, the packaging option finalizers are wrapped so the
// distribution is tagged as platform-specific and installed into the
// platform library directory:
//
//	finalize := pyext.PlatformWheel(pyext.DefaultWheelFinalizer(config))
//	opts, err := finalize(pyext.WheelOptions{})
//	fmt.Println(opts.Filename()) // opensfm-0.5.2-cp312-cp312-linux_x86_64.whl
//
// # Platform Support
//
// Linux and macOS use make. Windows uses vcpkg through the CMake toolchain
// file and the CMake build driver.
package pyext
