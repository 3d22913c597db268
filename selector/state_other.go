//go:build !unix

package selector

import "os"

// Advisory locking is a unix facility; elsewhere the last writer wins, which
// is the pre-locking behavior and costs at worst a momentarily stale display.

func lockShared(*os.File) error { return nil }

func lockExclusive(*os.File) error { return nil }

func unlock(*os.File) {}
