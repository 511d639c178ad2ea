package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown level format")

// Load reads the level at levelPath, choosing the parser by extension, and
// merges a sibling script (<level>.yaml or <level>.tengo) when one exists.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, levelPath string) (*Level, error) {
	var (
		level *Level
		err   error
	)

	switch strings.ToLower(path.Ext(levelPath)) {
	case ".csv":
		level, err = loadCSV(fsys, levelPath)
	case ".tmx":
		level, err = LoadTMX(fsys, levelPath)
	default:
		return nil, fmt.Errorf("load %s: %w", levelPath, ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}

	script, err := loadScript(fsys, levelPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", levelPath, err)
	}
	level.Script.merge(script)

	return level, nil
}

func loadCSV(fsys fs.FS, levelPath string) (*Level, error) {
	f, err := fsys.Open(levelPath)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", levelPath, err)
	}
	defer f.Close()

	return ParseCSV(stem(levelPath), f)
}

func loadScript(fsys fs.FS, levelPath string) (Script, error) {
	base := strings.TrimSuffix(levelPath, path.Ext(levelPath))

	if data, err := fs.ReadFile(fsys, base+".yaml"); err == nil {
		return ParseScriptYAML(data)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Script{}, err
	}

	if src, err := fs.ReadFile(fsys, base+".tengo"); err == nil {
		return RunScriptTengo(src)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Script{}, err
	}

	return Script{}, nil
}

// List returns the level files in dir, sorted by name.
func List(fsys fs.FS, dir string) ([]string, error) {
	var paths []string
	for _, ext := range []string{"csv", "tmx"} {
		pattern := path.Join(dir, "*."+ext)
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}

	sort.Strings(paths)
	return paths, nil
}

// IsLevelFile reports whether name is a level or level script file.
func IsLevelFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".csv", ".tmx", ".tsx", ".yaml", ".tengo":
		return true
	}
	return false
}

func stem(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' || r == ' ' }) {
		out = append(out, strings.ToLower(f))
	}
	return out
}
