package assets

import (
	"embed"

	"github.com/BurntSushi/toml"
)

//go:embed categories.toml
var FS embed.FS

// CategoryFile is one [[category]] table of categories.toml.
type CategoryFile struct {
	Name  string   `toml:"name"`
	Words []string `toml:"words"`
}

type catalogFile struct {
	Category []CategoryFile `toml:"category"`
}

// Categories decodes the embedded catalog, preserving file order.
func Categories() ([]CategoryFile, error) {
	b, err := FS.ReadFile("categories.toml")
	if err != nil {
		return nil, err
	}
	return DecodeCategories(string(b))
}

// DecodeCategories parses catalog TOML text.
func DecodeCategories(data string) ([]CategoryFile, error) {
	var f catalogFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, err
	}
	return f.Category, nil
}
