//go:build !windows

package host

import (
	"path/filepath"

	"github.com/mitosagi/NativeMessaging/store"
)

// defaultStore returns the platform discovery store.  Chrome on non-Windows
// platforms discovers hosts by scanning manifest directories rather than a
// registry, so registration state is kept in a records file alongside the
// manifests.
func defaultStore(system bool) store.Store {
	dir, err := installDir(system)
	if err != nil {
		// No resolvable install directory; fall back to the working
		// directory and let the first store operation surface the problem.
		return store.NewFile("registrations.json")
	}
	return store.NewFile(filepath.Join(dir, "registrations.json"))
}
