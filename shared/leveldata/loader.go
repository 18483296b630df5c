package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Extensions tried, in order, when resolving a level index to a file.
var levelExtensions = []string{".json", ".tmx"}

// Load resolves a level index to <index>.json or <index>.tmx inside fsys and
// decodes it. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, index string) (*Description, error) {
	if index == "" {
		return nil, errors.New("empty level index")
	}

	for _, ext := range levelExtensions {
		name := index + ext
		if _, err := fs.Stat(fsys, name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}
		return LoadFile(fsys, name)
	}

	return nil, fmt.Errorf("level %q: %w", index, fs.ErrNotExist)
}

// LoadFile decodes a single level file, choosing the format by extension.
func LoadFile(fsys fs.FS, name string) (*Description, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".tmx":
		return LoadTMX(fsys, name)
	case ".json":
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		desc, err := DecodeJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return desc, nil
	default:
		return nil, fmt.Errorf("%s: unsupported level format", name)
	}
}

// Indexes lists the level indexes available in fsys, sorted.
func Indexes(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}

	seen := make(map[string]struct{})
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(entry.Name()))
		if ext != ".json" && ext != ".tmx" {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		if _, ok := seen[stem]; ok {
			continue
		}
		seen[stem] = struct{}{}
		names = append(names, stem)
	}

	sort.Strings(names)
	return names, nil
}
