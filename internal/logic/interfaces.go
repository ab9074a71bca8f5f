package logic

import "ebrowse/internal/domain"

// PackageSource provides read-only access to the installed package database
type PackageSource interface {
	// ListAll returns every installed package keyed by cpv
	ListAll() (map[string]domain.Package, error)
	// Detail returns the package recorded for cpv, or an error wrapping
	// domain.ErrNotFound when there is none
	Detail(cpv string) (domain.Package, error)
}
