package finder

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jamesainslie/seek/pkg/seek/types"
)

// ErrUnclassified is reported for entries that are neither a directory, a
// regular file, nor a symbolic link: FIFOs, sockets and devices.
var ErrUnclassified = errors.New("entry is not a directory, file or symlink")

// Classify maps file mode bits to an EntryType, checking directory, then
// regular file, then symbolic link.
func Classify(mode fs.FileMode) (types.EntryType, error) {
	switch {
	case mode.IsDir():
		return types.Directory, nil
	case mode.IsRegular():
		return types.File, nil
	case mode&fs.ModeSymlink != 0:
		return types.Symlink, nil
	default:
		return 0, fmt.Errorf("%w (mode %s)", ErrUnclassified, mode.Type())
	}
}
