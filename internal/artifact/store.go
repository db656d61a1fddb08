package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates a referenced artifact does not exist in the store.
var ErrNotFound = errors.New("artifact: file not found")

// ExistsError indicates a write targeted a filename that is already taken.
// Artifacts are write-once; the store never overwrites.
type ExistsError struct {
	Name string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("artifact: file %q already exists", e.Name)
}

// NameError indicates a filename that escapes the store's flat namespace.
type NameError struct {
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("artifact: invalid filename %q: %s", e.Name, e.Reason)
}

// Store persists artifacts under a single fixed output directory with a flat
// namespace. Filenames are used exactly as supplied; a pre-existing filename
// is an error, never an overwrite.
//
// Two concurrent writes to the same new filename race; O_EXCL creation means
// exactly one wins and the other receives an ExistsError.
type Store struct {
	dir string
}

// NewStore creates the output directory if needed and returns a store rooted
// at it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("artifact: creating output dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path resolves a filename to its full path inside the store.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Exists reports whether an artifact with the given name is present.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Save writes data to a new artifact. The name must be a bare filename and
// must not already exist.
func (s *Store) Save(name string, data []byte) (string, error) {
	if err := ValidName(name); err != nil {
		return "", err
	}
	path := s.Path(name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", &ExistsError{Name: name}
		}
		return "", fmt.Errorf("artifact: creating %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("artifact: writing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("artifact: closing %s: %w", name, err)
	}
	return path, nil
}

// ValidName enforces the flat namespace: bare filenames only, no path
// separators, no traversal.
func ValidName(name string) error {
	if name == "" {
		return &NameError{Name: name, Reason: "empty"}
	}
	if strings.ContainsAny(name, `/\`) {
		return &NameError{Name: name, Reason: "must not contain path separators"}
	}
	if name == "." || name == ".." {
		return &NameError{Name: name, Reason: "must be a file name"}
	}
	return nil
}
