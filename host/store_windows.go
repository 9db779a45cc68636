package host

import "github.com/mitosagi/NativeMessaging/store"

// defaultStore returns the platform discovery store: the Windows registry,
// which is where Chrome looks hosts up.
func defaultStore(system bool) store.Store {
	if system {
		return store.NewSystemRegistry()
	}
	return store.NewUserRegistry()
}
