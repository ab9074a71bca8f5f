// Package vardb reads the installed package database Portage keeps on disk.
//
// Every installed package has a directory <root>/var/db/pkg/<category>/<pf>
// holding one file per metadata key.
package vardb

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"ebrowse/internal/domain"
	"ebrowse/internal/logger"
)

// Path is the location of the database below the filesystem root
const Path = "var/db/pkg"

// Metadata files read for each package
const (
	keyDepend      = "DEPEND"
	keyRDepend     = "RDEPEND"
	keyIUse        = "IUSE"
	keyDescription = "DESCRIPTION"
	keyHomepage    = "HOMEPAGE"
)

// mergingPrefix marks package directories of merges still in progress
const mergingPrefix = "-MERGING-"

var log = logger.New("ebrowse.vardb")

// Database is a read-only view of an installed package database
type Database struct {
	dir string
}

// Open returns the database found under root, "/" for the running system
func Open(root string) (*Database, error) {
	dir := filepath.Join(root, Path)
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoDatabase, dir)
		}
		return nil, fmt.Errorf("failed to open package database: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrNoDatabase, dir)
	}
	log.Debug("using package database %s", dir)
	return &Database{dir: dir}, nil
}

// ListAll returns every installed package keyed by cpv
func (db *Database) ListAll() (map[string]domain.Package, error) {
	log.Debug("getting installed CPV list from %s", db.dir)

	categories, err := os.ReadDir(db.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read package database: %w", err)
	}

	packages := make(map[string]domain.Package)
	for _, category := range categories {
		if !category.IsDir() || strings.HasPrefix(category.Name(), ".") {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(db.dir, category.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read category %s: %w", category.Name(), err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if !entry.IsDir() || strings.HasPrefix(name, ".") || strings.HasPrefix(name, mergingPrefix) {
				continue
			}
			cpv := category.Name() + "/" + name
			pkg, err := db.Detail(cpv)
			if err != nil {
				return nil, err
			}
			packages[cpv] = pkg
		}
	}

	log.Info("got %d installed CPVs", len(packages))
	return packages, nil
}

// Detail reads the metadata recorded for cpv
func (db *Database) Detail(cpv string) (domain.Package, error) {
	log.Debug("getting package info for %q", cpv)

	dir, ok := db.packageDir(cpv)
	if !ok {
		return domain.Package{}, fmt.Errorf("%w: %s", domain.ErrNotFound, cpv)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return domain.Package{}, fmt.Errorf("%w: %s", domain.ErrNotFound, cpv)
	}

	pkg := domain.Package{CPV: cpv}
	fields := []struct {
		key string
		dst *string
	}{
		{keyDepend, &pkg.Depend},
		{keyRDepend, &pkg.RDepend},
		{keyIUse, &pkg.IUse},
		{keyDescription, &pkg.Description},
		{keyHomepage, &pkg.Homepage},
	}
	for _, f := range fields {
		value, err := readKey(dir, f.key)
		if err != nil {
			return domain.Package{}, fmt.Errorf("failed to read %s of %s: %w", f.key, cpv, err)
		}
		*f.dst = value
	}
	return pkg, nil
}

// packageDir maps a cpv to its directory, rejecting anything that is not
// exactly category/package-version
func (db *Database) packageDir(cpv string) (string, bool) {
	category, pf, found := strings.Cut(cpv, "/")
	if !found || category == "" || pf == "" || strings.Contains(pf, "/") {
		return "", false
	}
	if category == "." || category == ".." || pf == "." || pf == ".." {
		return "", false
	}
	return filepath.Join(db.dir, category, pf), true
}

// readKey returns the trimmed contents of a metadata file. A key with no
// file is empty.
func readKey(dir, key string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
