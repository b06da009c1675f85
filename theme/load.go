// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package theme

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/jongio/colorfmt/fileutil"
	"github.com/jongio/colorfmt/logutil"
	"github.com/jongio/colorfmt/security"
)

// Location of the user theme, relative to the XDG config directories.
const (
	AppName  = "colorfmt"
	FileName = "theme.yaml"
)

// ErrThemeExists is returned by WriteDefault when it would overwrite a file.
var ErrThemeExists = errors.New("theme file already exists")

func relPath() string {
	return filepath.Join(AppName, FileName)
}

// UserPath returns the path of the user theme in $XDG_CONFIG_HOME, whether
// or not the file exists.
func UserPath() string {
	return filepath.Join(xdg.ConfigHome, relPath())
}

// Locate searches the XDG config directories for a theme file.
func Locate() (string, bool) {
	path, err := xdg.SearchConfigFile(relPath())
	if err != nil {
		return "", false
	}
	return path, true
}

// Load reads and parses the theme file at path.
func Load(path string) (*Theme, error) {
	log := logutil.NewLogger("theme").WithInput(path)

	data, err := fileutil.ReadInput(path, nil)
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", err)
	}
	if err := security.ValidateFilePermissions(path); errors.Is(err, security.ErrInsecureFilePermissions) && !security.IsContainerEnvironment() {
		log.Warn("theme file is writable by other users")
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("loaded theme")
	return t, nil
}

// Resolve returns the theme for a run and the path it came from: the file
// at explicit when set, else the user theme found by Locate, else Default
// with an empty path.
func Resolve(explicit string) (*Theme, string, error) {
	if explicit != "" {
		t, err := Load(explicit)
		if err != nil {
			return nil, "", err
		}
		return t, explicit, nil
	}

	if path, ok := Locate(); ok {
		t, err := Load(path)
		if err != nil {
			return nil, "", err
		}
		return t, path, nil
	}

	logutil.NewLogger("theme").Debug("no theme file found, using defaults")
	return Default(), "", nil
}

// WriteDefault writes the default theme to path, creating its directory.
// An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if fileutil.FileExists(path) && !force {
		return fmt.Errorf("%w: %s", ErrThemeExists, path)
	}
	data, err := Default().Marshal()
	if err != nil {
		return err
	}
	if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return fileutil.AtomicWriteFile(path, data, fileutil.FilePermission)
}
