package content

import (
	"embed"
	"encoding/json"
	"io/fs"
	"path"
	"sort"

	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

//go:embed data/*.json data/quiz/*.json
var embedded embed.FS

type questionFile struct {
	Category  string               `json:"category"`
	Questions []*entities.Question `json:"questions"`
}

// Load builds the catalog from the content compiled into the binary
func Load() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded content")
	}
	return LoadFS(sub)
}

// LoadFS builds a catalog from items.json, enemies.json,
// special_attacks.json, map.json and quiz/*.json under fsys
func LoadFS(fsys fs.FS) (*Catalog, error) {
	data := &Data{}

	if err := readJSON(fsys, "items.json", &data.Items); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, "enemies.json", &data.Enemies); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, "special_attacks.json", &data.SpecialAttacks); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, "map.json", &data.Tiles); err != nil {
		return nil, err
	}

	files, err := fs.Glob(fsys, "quiz/*.json")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list quiz files")
	}
	sort.Strings(files)

	for _, name := range files {
		var qf questionFile
		if err := readJSON(fsys, name, &qf); err != nil {
			return nil, err
		}
		if qf.Category == "" {
			qf.Category = trimExt(path.Base(name))
		}
		for _, q := range qf.Questions {
			if q == nil {
				continue
			}
			q.Category = qf.Category
			data.Questions = append(data.Questions, q)
		}
	}

	return New(data)
}

func readJSON(fsys fs.FS, name string, v interface{}) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse "+name)
	}
	return nil
}

func trimExt(name string) string {
	return name[:len(name)-len(path.Ext(name))]
}
