//go:build !linux

package organizer

import "github.com/spf13/afero"

func renameNoReplace(src, dst string) error {
	return checkedRename(afero.NewOsFs(), src, dst)
}
