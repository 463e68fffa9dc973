package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/logging"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
	fileExtension   = ".yaml"
)

// Files is a Store keeping one YAML document per record under a data
// directory, named <id>.yaml. Records remain human-diffable, which matters
// for a data set curated partly through pull requests.
type Files struct {
	dir string
}

var _ Store = (*Files)(nil)

// NewFiles creates a file-backed store rooted at dir, creating it if needed.
func NewFiles(dir string) (*Files, error) {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}
	return &Files{dir: dir}, nil
}

// List reads every record file in the data directory. Files that fail to
// parse are logged and skipped rather than failing the whole load: one
// corrupt record must not take down a batch run.
func (f *Files) List() ([]hackathons.Hackathon, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, errors.WrapIO("read", f.dir, err)
	}

	var records []hackathons.Hackathon
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExtension) {
			continue
		}
		h, err := f.read(filepath.Join(f.dir, entry.Name()))
		if err != nil {
			logging.Default().Error().
				Err(err).
				Str("file", entry.Name()).
				Msg("Skipping invalid hackathon record")
			continue
		}
		records = append(records, h)
	}

	sortByID(records)
	return records, nil
}

// Get returns the record with the given id.
func (f *Files) Get(id string) (hackathons.Hackathon, error) {
	h, err := f.read(f.path(id))
	if err != nil {
		if os.IsNotExist(err) || errors.Is(err, os.ErrNotExist) {
			return hackathons.Hackathon{}, errors.NewNotFoundError("hackathon", id)
		}
		return hackathons.Hackathon{}, err
	}
	return h, nil
}

// Upsert writes the record to <id>.yaml, replacing any previous version.
func (f *Files) Upsert(h hackathons.Hackathon) error {
	if err := h.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(h)
	if err != nil {
		return errors.WrapResource("marshal", "hackathon", h.ID, err)
	}
	if err := os.WriteFile(f.path(h.ID), data, filePermissions); err != nil {
		return errors.WrapIO("write", f.path(h.ID), err)
	}
	return nil
}

// Delete removes a record file. Missing files are not an error.
func (f *Files) Delete(id string) error {
	if err := os.Remove(f.path(id)); err != nil && !os.IsNotExist(err) {
		return errors.WrapIO("remove", f.path(id), err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (f *Files) Close() error { return nil }

// Dir returns the data directory the store is rooted at.
func (f *Files) Dir() string { return f.dir }

func (f *Files) path(id string) string {
	return filepath.Join(f.dir, id+fileExtension)
}

func (f *Files) read(path string) (hackathons.Hackathon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return hackathons.Hackathon{}, err
	}
	var h hackathons.Hackathon
	if err := yaml.Unmarshal(data, &h); err != nil {
		return hackathons.Hackathon{}, errors.WrapParse("yaml", path, err)
	}
	if err := h.Validate(); err != nil {
		return hackathons.Hackathon{}, err
	}
	return h, nil
}
