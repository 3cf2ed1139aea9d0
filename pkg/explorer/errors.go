package explorer

import "errors"

// ErrOutsideVault is returned for paths that leave the vault root.
var ErrOutsideVault = errors.New("path outside vault")
