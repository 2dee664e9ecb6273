// Package config loads pyext settings from a YAML file, a .env file and
// PYEXT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	pyext "github.com/contriboss/python-extension-go"
)

const (
	// DefaultFile is read from the working directory when no path is given.
	DefaultFile = "pyext.yaml"

	fileType  = "yaml"
	envPrefix = "PYEXT"
)

// Config keys
const (
	KeyName          = "name"
	KeyVersion       = "version"
	KeySourceDir     = "source_dir"
	KeyBuildDir      = "build_dir"
	KeyConfigureTool = "configure_tool"
	KeyBuildSystem   = "build_system"
	KeyTriplet       = "windows.triplet"
	KeyToolchainFile = "windows.toolchain_file"
	KeyConfigureArgs = "configure_args"
	KeyJobs          = "jobs"
	KeyInterpreter   = "interpreter"
	KeyPythonVersion = "python_version"
	KeyPrefix        = "prefix"
	KeyPlatLibDir    = "platlibdir"
	KeyVerbose       = "verbose"
)

const (
	defaultProjectName = "opensfm"
	defaultVersion     = "0.5.2"
)

// Load reads configuration and returns the build config.
//
// Sources, lowest to highest priority: built-in defaults, the YAML file,
// .env in the working directory, PYEXT_* environment variables. A missing
// file is not an error unless path was given explicitly.
func Load(path string) (*pyext.BuildConfig, error) {
	// Ignore error if .env doesn't exist.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigType(fileType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyName, defaultProjectName)
	v.SetDefault(KeyVersion, defaultVersion)
	v.SetDefault(KeySourceDir, pyext.DefaultSourceDir)
	v.SetDefault(KeyBuildDir, pyext.DefaultBuildDir)
	v.SetDefault(KeyConfigureTool, pyext.DefaultConfigureTool)
	v.SetDefault(KeyBuildSystem, pyext.DefaultBuildSystem)
	v.SetDefault(KeyTriplet, pyext.DefaultTriplet)
	v.SetDefault(KeyToolchainFile, pyext.DefaultToolchainFile)
	v.SetDefault(KeyJobs, 0)
	v.SetDefault(KeyPlatLibDir, "lib")
	v.SetDefault(KeyVerbose, false)
}

func fromViper(v *viper.Viper) (*pyext.BuildConfig, error) {
	version, err := pyext.ParseVersion(v.GetString(KeyVersion))
	if err != nil {
		return nil, err
	}

	jobs := v.GetInt(KeyJobs)
	if jobs < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %d", KeyJobs, jobs)
	}

	return &pyext.BuildConfig{
		Name:            v.GetString(KeyName),
		Version:         version,
		SourceDir:       v.GetString(KeySourceDir),
		BuildDir:        v.GetString(KeyBuildDir),
		ConfigureTool:   v.GetString(KeyConfigureTool),
		BuildSystem:     v.GetString(KeyBuildSystem),
		Triplet:         v.GetString(KeyTriplet),
		ToolchainFile:   v.GetString(KeyToolchainFile),
		ConfigureArgs:   v.GetStringSlice(KeyConfigureArgs),
		Jobs:            jobs,
		InterpreterPath: v.GetString(KeyInterpreter),
		PythonVersion:   v.GetString(KeyPythonVersion),
		Prefix:          v.GetString(KeyPrefix),
		PlatLibDir:      v.GetString(KeyPlatLibDir),
		Verbose:         v.GetBool(KeyVerbose),
	}, nil
}
