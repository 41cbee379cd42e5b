// Package preflight verifies the filesystem assumptions of an organize run
// before it starts.
//
// Checks are advisory: a failed permission or free-space check produces a
// warning for the operator, while the hard source/destination validation
// stays in the organize core. Keep checks cheap; they run on every real run.
package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Result captures one check outcome.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckDirectoryAccess verifies that the directory exists and is readable,
// writable, and traversable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFreeSpace reports the free bytes on the filesystem holding path.
// A minBytes of zero disables the threshold, so the check only fails when
// the filesystem cannot be queried.
func CheckFreeSpace(name, path string, minBytes uint64) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}

	free := stat.Bavail * uint64(stat.Bsize)
	if minBytes > 0 && free < minBytes {
		return Result{Name: name, Detail: fmt.Sprintf("%s (only %d bytes free, want %d)", path, free, minBytes)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d bytes free)", path, free)}
}

// CheckRun bundles the standard checks for an organize run. The destination
// may not exist yet; its closest existing ancestor is checked instead.
func CheckRun(source, dest string) []Result {
	return []Result{
		CheckDirectoryAccess("source", source),
		CheckDirectoryAccess("destination", existingAncestor(dest)),
		CheckFreeSpace("destination space", existingAncestor(dest), 0),
	}
}

func existingAncestor(path string) string {
	for {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}
