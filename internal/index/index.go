// Package index loads a package index from a TOML file.
//
// An index is a list of package tables:
//
//	[[package]]
//	cpv = "app-misc/foo-1.0"
//	description = "Foo utility"
//	homepage = "https://example.org/foo"
//	depend = "dev-libs/bar >=sys-libs/zlib-1.2"
//	rdepend = "dev-libs/bar"
//	iuse = "doc +ssl"
package index

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"ebrowse/internal/domain"
	"ebrowse/internal/logger"
	"ebrowse/internal/logic"
)

var log = logger.New("ebrowse.index")

// File is the structure of an index file.
type File struct {
	Packages []Entry `toml:"package"`
}

// Entry is one package table of an index file.
type Entry struct {
	CPV         string `toml:"cpv"`
	Description string `toml:"description"`
	Homepage    string `toml:"homepage"`
	Depend      string `toml:"depend"`
	RDepend     string `toml:"rdepend"`
	IUse        string `toml:"iuse"`
}

// Load reads the index at path into an in-memory package store.
func Load(path string) (*logic.MemoryPackageStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoDatabase, path)
		}
		return nil, fmt.Errorf("failed to read package index: %w", err)
	}

	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info("loaded %d packages from %s", store.Len(), path)
	return store, nil
}

// Parse decodes index data into an in-memory package store. Every entry
// needs a unique category/package-version cpv.
func Parse(data []byte) (*logic.MemoryPackageStore, error) {
	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse package index: %w", err)
	}

	store := logic.NewMemoryPackageStore()
	seen := make(map[string]bool, len(file.Packages))
	for i, entry := range file.Packages {
		cpv := strings.TrimSpace(entry.CPV)
		if !validCPV(cpv) {
			return nil, fmt.Errorf("package %d: invalid cpv %q", i+1, entry.CPV)
		}
		if seen[cpv] {
			return nil, fmt.Errorf("package %d: duplicate cpv %q", i+1, cpv)
		}
		seen[cpv] = true
		store.AddPackage(entry.toPackage(cpv))
	}
	return store, nil
}

func (e Entry) toPackage(cpv string) domain.Package {
	return domain.Package{
		CPV:         cpv,
		Depend:      strings.TrimSpace(e.Depend),
		RDepend:     strings.TrimSpace(e.RDepend),
		IUse:        strings.TrimSpace(e.IUse),
		Description: strings.TrimSpace(e.Description),
		Homepage:    strings.TrimSpace(e.Homepage),
	}
}

func validCPV(cpv string) bool {
	category, pf, ok := strings.Cut(cpv, "/")
	return ok && category != "" && pf != "" && !strings.ContainsAny(pf, "/ \t\n")
}
