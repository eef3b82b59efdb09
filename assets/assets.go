// Package assets embeds the default rules and levels.
package assets

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed rules.json levels
var files embed.FS

// FS returns the embedded asset tree
func FS() fs.FS {
	return files
}

// LevelNames returns the level file names under levels/ of an asset tree
// (without directory) in sorted order
func LevelNames(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, "levels")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		if ext != ".txt" && ext != ".tmx" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// LevelStem strips the extension from a level file name
func LevelStem(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}
