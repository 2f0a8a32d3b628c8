// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl2d

import (
	"slices"
	"sync"
)

// PlatformFactory creates a new platform instance.
type PlatformFactory func() Platform

// registry holds registered platforms.
var (
	registryMu sync.RWMutex
	platforms  = make(map[string]PlatformFactory)
	// Priority order for platform selection (first available wins).
	platformPriority = []string{"glfw", "headless"}
)

// RegisterPlatform registers a platform factory with the given name.
// This is typically called from init() functions in platform packages.
// If a platform with the same name is already registered, it is replaced.
func RegisterPlatform(name string, factory PlatformFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	platforms[name] = factory
}

// UnregisterPlatform removes a platform from the registry.
// This is useful for testing.
func UnregisterPlatform(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(platforms, name)
}

// AvailablePlatforms returns the sorted names of registered platforms.
func AvailablePlatforms() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(platforms))
	for name := range platforms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// OpenPlatform returns a new instance of the named platform.
func OpenPlatform(name string) (Platform, error) {
	registryMu.RLock()
	factory, ok := platforms[name]
	registryMu.RUnlock()

	if !ok {
		return nil, ErrPlatformNotAvailable
	}
	return factory(), nil
}

// DefaultPlatform returns the best available platform based on priority.
// Priority order: glfw > headless, then any other registered platform.
// Returns nil if no platforms are registered.
func DefaultPlatform() Platform {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range platformPriority {
		if factory, ok := platforms[name]; ok {
			if p := factory(); p != nil {
				return p
			}
		}
	}

	names := make([]string, 0, len(platforms))
	for name := range platforms {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if p := platforms[name](); p != nil {
			return p
		}
	}
	return nil
}
