package logic

import (
	"fmt"
	"sync"

	"ebrowse/internal/domain"
)

// MemoryPackageStore is an in-memory implementation of PackageSource
type MemoryPackageStore struct {
	mu       sync.RWMutex
	packages map[string]domain.Package
}

// NewMemoryPackageStore creates a store holding the given packages
func NewMemoryPackageStore(packages ...domain.Package) *MemoryPackageStore {
	s := &MemoryPackageStore{
		packages: make(map[string]domain.Package, len(packages)),
	}
	for _, pkg := range packages {
		s.packages[pkg.CPV] = pkg
	}
	return s
}

func (s *MemoryPackageStore) ListAll() (map[string]domain.Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]domain.Package, len(s.packages))
	for k, v := range s.packages {
		result[k] = v
	}
	return result, nil
}

func (s *MemoryPackageStore) Detail(cpv string) (domain.Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pkg, ok := s.packages[cpv]
	if !ok {
		return domain.Package{}, fmt.Errorf("%w: %s", domain.ErrNotFound, cpv)
	}
	return pkg, nil
}

// AddPackage adds or replaces a package
func (s *MemoryPackageStore) AddPackage(pkg domain.Package) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packages[pkg.CPV] = pkg
}

// RemovePackage drops a package from the store
func (s *MemoryPackageStore) RemovePackage(cpv string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.packages, cpv)
}

// Len returns the number of stored packages
func (s *MemoryPackageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.packages)
}
