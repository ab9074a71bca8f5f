package domain

// Package represents an installed package as recorded by the package database
type Package struct {
	CPV         string // category/package-version
	Depend      string // build-time dependencies, whitespace delimited
	RDepend     string // run-time dependencies, whitespace delimited
	IUse        string // USE flags the package understands
	Description string
	Homepage    string
}

// NavigationState is the cursor position in the package list.
// Position and Page are both 1-based and always updated together.
type NavigationState struct {
	Position int
	Page     int
}

// Layout describes how the package list is split into pages
type Layout struct {
	PageLen int // items per page
	Pages   int // total number of pages, 0 for an empty list
	Total   int // total number of items
}

// FirstIndex returns the 1-based index of the first item on page
func (l Layout) FirstIndex(page int) int {
	return 1 + l.PageLen*(page-1)
}

// LastIndex returns the 1-based index of the last slot on page.
// On the last page this may be past Total.
func (l Layout) LastIndex(page int) int {
	return l.PageLen + l.PageLen*(page-1)
}
