package model

import "scanspec.dev/pkg/scanspec/pkg/pathlike"

// Path represents a file system path.
type Path string

var _ pathlike.PathLike = Path("")

// ToPath implements pathlike.PathLike.
func (p Path) ToPath() string {
	return string(p)
}
