package pyext

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var nativeModuleExtensions = []string{".so", ".pyd", ".dylib", ".dll"}

// CollectArtifacts walks the build workspace and returns the compiled
// native modules it contains, as slash-separated paths relative to the
// workspace. A missing workspace yields no artifacts.
func CollectArtifacts(workspace string) ([]string, error) {
	if _, err := os.Stat(workspace); os.IsNotExist(err) {
		return nil, nil
	}

	var artifacts []string
	err := filepath.WalkDir(workspace, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		// CMake scratch directories never hold installable modules
		if d.IsDir() && d.Name() == "CMakeFiles" {
			return filepath.SkipDir
		}
		if !d.Type().IsRegular() || !isNativeModule(d.Name()) {
			return nil
		}

		relPath, err := filepath.Rel(workspace, path)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, filepath.ToSlash(relPath))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collecting artifacts in %s: %w", workspace, err)
	}

	sort.Strings(artifacts)
	return artifacts, nil
}

// InstallArtifacts copies artifacts (relative to workspace) into destDir,
// keeping their relative layout, and returns the installed paths.
func InstallArtifacts(workspace string, artifacts []string, destDir string) ([]string, error) {
	var installed []string

	for _, rel := range uniqueStrings(artifacts) {
		srcPath := filepath.Join(workspace, filepath.FromSlash(rel))
		if info, err := os.Stat(srcPath); err != nil || !info.Mode().IsRegular() {
			continue
		}

		relDest := safeRelativePath(filepath.FromSlash(rel))
		destPath := filepath.Join(destDir, relDest)
		if err := copyFile(srcPath, destPath); err != nil {
			return nil, fmt.Errorf("installing %s: %w", rel, err)
		}
		installed = append(installed, destPath)
	}

	return installed, nil
}

func isNativeModule(path string) bool {
	return MatchesExtension(path, nativeModuleExtensions...)
}

func copyFile(srcPath, destPath string) error {
	info, err := os.Stat(srcPath)
	if err != nil {
		return err
	}

	dir := filepath.Dir(destPath)
	if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
		return mkErr
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

func safeRelativePath(path string) string {
	clean := filepath.Clean(path)
	if clean == "." || clean == ".." || filepath.IsAbs(clean) ||
		strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return filepath.Base(path)
	}
	return clean
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{})
	var result []string

	for _, value := range values {
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}

	return result
}
