package banners

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/rook-computer/bannermaker/internal/dsl"
	"github.com/rook-computer/bannermaker/internal/render"
)

//go:embed *.banner
var descriptions embed.FS

const extension = ".banner"

// Names lists the embedded banner descriptions.
func Names() []string {
	entries, err := fs.ReadDir(descriptions, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), extension) {
			names = append(names, strings.TrimSuffix(entry.Name(), extension))
		}
	}
	sort.Strings(names)
	return names
}

// Load parses the embedded description called name and builds it.
func Load(name string) (*render.Banner, error) {
	filename := name + extension
	f, err := descriptions.Open(path.Clean(filename))
	if err != nil {
		return nil, fmt.Errorf("banner %q: %w", name, err)
	}
	defer f.Close()

	file, err := dsl.Parse(filename, f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	for _, b := range file.Banners {
		if b.Name == name {
			return Build(b)
		}
	}
	return nil, fmt.Errorf("%s: no banner named %q", filename, name)
}
