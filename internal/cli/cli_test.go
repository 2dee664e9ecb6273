package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/magefile/mage/mg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pyext "github.com/contriboss/python-extension-go"
)

type fakeToolchain struct {
	commands  []pyext.Command
	failStage string
	exitCode  int
}

func (f *fakeToolchain) Run(ctx context.Context, cmd pyext.Command) error {
	f.commands = append(f.commands, cmd)
	if cmd.Name == f.failStage {
		return mg.Fatalf(f.exitCode, "%s failed", cmd.Name)
	}
	if cmd.Name == "make" {
		path := filepath.Join(cmd.Dir, "pymap.so")
		if err := os.WriteFile(path, []byte("elf"), 0o600); err != nil {
			return err
		}
	}
	return nil
}

func setup(t *testing.T) (*fakeToolchain, string) {
	t.Helper()
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "pyext.yaml")
	content := fmt.Sprintf(`name: opensfm
version: 0.5.2
build_dir: %s
interpreter: /usr/bin/python3
python_version: "3.12"
prefix: %s
platlibdir: lib64
jobs: 4
`, filepath.ToSlash(filepath.Join(dir, "cmake_build")), filepath.ToSlash(filepath.Join(dir, "prefix")))
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	fake := &fakeToolchain{}
	origRunner := newRunner
	newRunner = func() pyext.Runner { return fake }
	t.Cleanup(func() { newRunner = origRunner })

	return fake, cfgPath
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	configPath, verbose = "", false
	versionShort, versionJSON = false, false
	installRoot, installPrefix = "", ""
	wheelStageDir = ""
	current = session{}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := Execute("test")
	return out.String(), err
}

func TestVersionDoesNotBuild(t *testing.T) {
	fake, cfgPath := setup(t)

	out, err := runCLI(t, "version", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "0.5.2\n", out)

	out, err = runCLI(t, "version", "--short", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "0.5\n", out)

	assert.Empty(t, fake.commands)
}

func TestMetadataReportsPlatformSpecific(t *testing.T) {
	fake, cfgPath := setup(t)

	out, err := runCLI(t, "metadata", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Name: opensfm")
	assert.Contains(t, out, "Version: 0.5.2")
	assert.Contains(t, out, "Root-Is-Purelib: false")
	assert.Empty(t, fake.commands)
}

func TestBuildRunsConfigureThenCompile(t *testing.T) {
	fake, cfgPath := setup(t)

	out, err := runCLI(t, "build", "--config", cfgPath)
	require.NoError(t, err)

	require.Len(t, fake.commands, 2)
	assert.Equal(t, "cmake", fake.commands[0].Name)
	assert.Contains(t, fake.commands[0].Args, "-DPYTHON_EXECUTABLE=/usr/bin/python3")
	assert.Equal(t, fake.commands[0].Dir, fake.commands[1].Dir)
	assert.Contains(t, out, "pymap.so")
}

func TestBuildStopsOnConfigureFailure(t *testing.T) {
	fake, cfgPath := setup(t)
	fake.failStage = "cmake"
	fake.exitCode = 1

	_, err := runCLI(t, "build", "--config", cfgPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, pyext.ErrConfigureFailed)
	assert.Equal(t, 1, mg.ExitStatus(err))
	assert.Len(t, fake.commands, 1)
}

func TestInstallUsesPlatformLibrary(t *testing.T) {
	_, cfgPath := setup(t)

	out, err := runCLI(t, "install", "--config", cfgPath)
	require.NoError(t, err)

	installed := strings.TrimSpace(out)
	assert.Contains(t, filepath.ToSlash(installed), "/prefix/lib64/python3.12/site-packages/opensfm/pymap.so")
	_, err = os.Stat(installed)
	assert.NoError(t, err)
}

func TestWheelIsPlatformTagged(t *testing.T) {
	_, cfgPath := setup(t)
	stage := t.TempDir()

	out, err := runCLI(t, "wheel", "--config", cfgPath, "--bdist-dir", stage)
	require.NoError(t, err)

	expected := "opensfm-0.5.2-cp312-cp312-" + pyext.HostPlatformTag() + ".whl\n"
	assert.Equal(t, expected, out)

	_, err = os.Stat(filepath.Join(stage, "opensfm", "pymap.so"))
	assert.NoError(t, err)
}
