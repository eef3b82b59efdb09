// Package tmx reads Tiled maps.
//
// Every non-empty tile of every tile layer becomes one cell whose identifier
// is the tile's global id. Layers are emitted in file order, so a cell in a
// later layer overrides the same cell of an earlier one.
package tmx

import (
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/younwookim/gemrun/internal/domain/entity"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*entity.CellMap, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	base := path.Base(tmxPath)
	m := &entity.CellMap{
		Name:       strings.TrimSuffix(base, path.Ext(base)),
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  float64(levelMap.TileWidth),
		TileHeight: float64(levelMap.TileHeight),
	}

	for _, layer := range levelMap.Layers {
		for i, tile := range layer.Tiles {
			if tile == nil || tile.IsNil() {
				continue
			}
			gid := tile.Tileset.FirstGID + tile.ID
			m.Cells = append(m.Cells, entity.Cell{
				Col: i % levelMap.Width,
				Row: i / levelMap.Width,
				ID:  strconv.FormatUint(uint64(gid), 10),
			})
		}
	}
	return m, nil
}
