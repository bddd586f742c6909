package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"image-transcriber/internal/models"
)

// DiscoverImages turns command line arguments into candidate image paths. A file
// argument is taken as is; a directory contributes its direct regular-file
// children. With no arguments the working directory is used. Sidecar files are
// never candidates. Arguments that cannot be read are skipped and reported in
// the returned error; the paths found so far are still returned.
func DiscoverImages(args []string) ([]string, error) {
	if len(args) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		args = []string{cwd}
	}

	var (
		paths []string
		errs  []error
	)
	for _, arg := range args {
		found, err := resolveArgument(arg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		paths = append(paths, found...)
	}

	images := paths[:0]
	for _, p := range paths {
		if !strings.HasSuffix(p, models.SidecarSuffix) {
			images = append(images, p)
		}
	}
	return images, errors.Join(errs...)
}

func resolveArgument(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("argument %q: %w", arg, err)
	}

	switch {
	case info.Mode().IsRegular():
		return []string{arg}, nil
	case info.IsDir():
		return listDirectory(arg)
	default:
		return nil, fmt.Errorf("argument %q: not a regular file or directory", arg)
	}
}

func listDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		// Stat rather than entry.Type() so symlinks to files count as files.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}
