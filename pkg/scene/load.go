package scene

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gaprule/gaprule/pkg/errors"
)

// Decode reads a scene from r in the given format ("toml" or "json") and
// validates it. Decode does not close r.
func Decode(r io.Reader, format string) (*Scene, error) {
	var s Scene
	switch format {
	case "toml":
		if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode toml scene")
		}
	case "json":
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode json scene")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported scene format %q (supported: toml, json)", format)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a scene file, picking the format from the file extension.
func Load(path string) (*Scene, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open scene file %s", path)
	}
	defer f.Close()

	s, err := Decode(f, format)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return s, nil
}
