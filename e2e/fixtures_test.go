//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// cpvFor names the i-th fixture package; names sort in creation order
func cpvFor(i int) string {
	return fmt.Sprintf("app-misc/pkg%02d-1.0", i)
}

// descriptionFor is the DESCRIPTION of the i-th fixture package
func descriptionFor(i int) string {
	return fmt.Sprintf("Fixture package number %d", i)
}

// WriteIndex writes a TOML index of n packages into the workspace and
// returns its path
func (tf *TUITestFramework) WriteIndex(n int) (string, error) {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "[[package]]\n")
		fmt.Fprintf(&b, "cpv = %q\n", cpvFor(i))
		fmt.Fprintf(&b, "description = %q\n", descriptionFor(i))
		fmt.Fprintf(&b, "homepage = %q\n", fmt.Sprintf("https://example.org/pkg%02d", i))
		fmt.Fprintf(&b, "depend = %q\n", "dev-libs/libfoo >=sys-libs/zlib-1.2")
		fmt.Fprintf(&b, "iuse = %q\n\n", "doc +ssl")
	}
	path := filepath.Join(tf.workspace, "packages.toml")
	return path, os.WriteFile(path, []byte(b.String()), 0644)
}

// WriteDatabase lays out n installed packages below the workspace the way
// Portage records them and returns the root to pass to --root
func (tf *TUITestFramework) WriteDatabase(n int) (string, error) {
	root := filepath.Join(tf.workspace, "root")
	for i := 1; i <= n; i++ {
		dir := filepath.Join(root, "var", "db", "pkg", cpvFor(i))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
		files := map[string]string{
			"DESCRIPTION": descriptionFor(i) + "\n",
			"DEPEND":      "dev-libs/libfoo\n",
			"IUSE":        "doc\n",
		}
		for key, value := range files {
			if err := os.WriteFile(filepath.Join(dir, key), []byte(value), 0644); err != nil {
				return "", err
			}
		}
	}
	return root, nil
}
