// Package textmap reads ASCII level files.
//
// Every character is one cell and its identifier is the character itself.
// All lines must have the same length.
package textmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/younwookim/gemrun/internal/domain/entity"
)

var (
	ErrEmpty        = errors.New("level has no lines")
	ErrLineLength   = errors.New("the length of a line is different from all preceding lines")
	ErrNonASCIIChar = errors.New("level lines must be ASCII")
)

// Load reads a level file from fsys. The map is named after the file stem.
func Load(fsys fs.FS, name string) (*entity.CellMap, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", name, err)
	}
	defer f.Close()

	base := path.Base(name)
	m, err := Parse(strings.TrimSuffix(base, path.Ext(base)), f)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", name, err)
	}
	return m, nil
}

// Parse reads an ASCII level. Cells are emitted row by row, left to right.
func Parse(name string, r io.Reader) (*entity.CellMap, error) {
	m := &entity.CellMap{Name: name}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if m.Height == 0 {
			m.Width = len(line)
		} else if len(line) != m.Width {
			return nil, fmt.Errorf("line %d: %w", m.Height+1, ErrLineLength)
		}
		for col := 0; col < len(line); col++ {
			if line[col] >= utf8.RuneSelf {
				return nil, fmt.Errorf("line %d: %w", m.Height+1, ErrNonASCIIChar)
			}
			m.Cells = append(m.Cells, entity.Cell{Col: col, Row: m.Height, ID: line[col : col+1]})
		}
		m.Height++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if m.Height == 0 || m.Width == 0 {
		return nil, ErrEmpty
	}
	return m, nil
}
