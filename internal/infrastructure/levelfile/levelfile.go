// Package levelfile loads a level map by file extension.
package levelfile

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/younwookim/gemrun/internal/domain/entity"
	"github.com/younwookim/gemrun/internal/infrastructure/config"
	"github.com/younwookim/gemrun/internal/infrastructure/textmap"
	"github.com/younwookim/gemrun/internal/infrastructure/tmx"
)

// Map is a parsed level together with the tile mappings of its format
type Map struct {
	Cells    *entity.CellMap
	Mappings map[string]config.TileMappingConfig
}

// Load parses name from fsys: .tmx files through the Tiled reader,
// .txt files through the ASCII reader
func Load(fsys fs.FS, name string, rules *config.Rules) (*Map, error) {
	switch ext := path.Ext(name); ext {
	case ".tmx":
		m, err := tmx.Load(fsys, name)
		if err != nil {
			return nil, err
		}
		return &Map{Cells: m, Mappings: rules.TileMappings.TMX}, nil
	case ".txt":
		m, err := textmap.Load(fsys, name)
		if err != nil {
			return nil, err
		}
		return &Map{Cells: m, Mappings: rules.TileMappings.Text}, nil
	default:
		return nil, fmt.Errorf("level %s: unsupported format %q", name, ext)
	}
}
