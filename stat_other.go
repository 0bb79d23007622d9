//go:build !linux

package occ

import (
	"os"
	"time"
)

// Platforms without a portable atime/ctime fall back to mtime.
func statTimes(fi os.FileInfo) (mtime, atime, ctime time.Time) {
	mtime = fi.ModTime()
	return mtime, mtime, mtime
}
