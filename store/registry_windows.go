package store

import (
	"errors"
	"fmt"
)

import "golang.org/x/sys/windows/registry"

// chromeKeyPath is the path under the registry root where Chrome looks up
// native messaging hosts.
const chromeKeyPath = `SOFTWARE\Google\Chrome\NativeMessagingHosts`

// Registry is a Store backed by the Windows registry.  Each record is a
// subkey of chromeKeyPath named after the host, with the manifest path as
// its default value.
type Registry struct {
	root registry.Key
}

// NewUserRegistry returns a store rooted at HKEY_CURRENT_USER, which needs
// no elevated privileges.
func NewUserRegistry() *Registry {
	return &Registry{root: registry.CURRENT_USER}
}

// NewSystemRegistry returns a store rooted at HKEY_LOCAL_MACHINE for
// machine-wide registration.
func NewSystemRegistry() *Registry {
	return &Registry{root: registry.LOCAL_MACHINE}
}

func (s *Registry) keyPath(name string) string {
	return fmt.Sprintf(`%s\%s`, chromeKeyPath, name)
}

func (s *Registry) Lookup(name string) (string, bool, error) {
	k, err := registry.OpenKey(s.root, s.keyPath(name), registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("opening registry key for %s: %w", name, err)
	}
	defer k.Close()

	path, _, err := k.GetStringValue("")
	if errors.Is(err, registry.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading registry value for %s: %w", name, err)
	}
	return path, true, nil
}

func (s *Registry) Set(name, path string) error {
	k, _, err := registry.CreateKey(s.root, s.keyPath(name), registry.CREATE_SUB_KEY|registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("creating registry key for %s: %w", name, err)
	}
	defer k.Close()

	if err := k.SetStringValue("", path); err != nil {
		return fmt.Errorf("setting registry value for %s: %w", name, err)
	}
	return nil
}

func (s *Registry) Delete(name string) error {
	err := registry.DeleteKey(s.root, s.keyPath(name))
	if errors.Is(err, registry.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("deleting registry key for %s: %w", name, err)
	}
	return nil
}
