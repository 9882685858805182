// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

// Package registry manages user-registered browser launcher commands.
//
// Callers (or a YAML config file) can register named command templates that
// take precedence over the built-in named browsers, in the spirit of
// Python webbrowser's register(). The registry is in-memory only; loading a
// config file populates it but nothing is ever written back.
package registry

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Entry is a registered launcher command template.
type Entry struct {
	// Name the entry is looked up by (case-insensitive).
	Name string `yaml:"name"`
	// Command is the launcher command line. "%s" marks where the URL goes;
	// without it the URL is appended as the last argument.
	Command string `yaml:"command"`
	// Console marks a text-mode launcher that must run in the foreground.
	Console bool `yaml:"console,omitempty"`
}

// CommandLine expands the entry's command template for url.
func (e *Entry) CommandLine(url string) (name string, args []string, err error) {
	line := strings.ReplaceAll(e.Command, "%s", url)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("launcher %q has an empty command", e.Name)
	}

	args = fields[1:]
	if !strings.Contains(e.Command, "%s") {
		args = append(args, url)
	}
	return fields[0], args, nil
}

// Registry is a concurrency-safe set of launcher entries.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register adds or replaces an entry.
func (r *Registry) Register(entry Entry) error {
	if strings.TrimSpace(entry.Name) == "" {
		return fmt.Errorf("launcher name cannot be empty")
	}
	if strings.TrimSpace(entry.Command) == "" {
		return fmt.Errorf("launcher %q: command cannot be empty", entry.Name)
	}

	key := strings.ToLower(strings.TrimSpace(entry.Name))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = &entry

	slog.Debug("registered launcher", "name", key, "command", entry.Command)
	return nil
}

// Unregister removes an entry. Removing an unknown name is a no-op.
func (r *Registry) Unregister(name string) {
	key := strings.ToLower(strings.TrimSpace(name))

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)

	slog.Debug("unregistered launcher", "name", key)
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	key := strings.ToLower(strings.TrimSpace(name))

	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	// Copy so callers can't mutate registry state.
	e := *entry
	return &e, true
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// configFile is the YAML shape accepted by LoadFile.
type configFile struct {
	Browsers []Entry `yaml:"browsers"`
}

// LoadFile registers all entries from a YAML config file:
//
//	browsers:
//	  - name: firefox-dev
//	    command: /opt/firefox-dev/firefox --new-tab %s
//	  - name: lynx
//	    command: lynx %s
//	    console: true
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read launcher config: %w", err)
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse launcher config %s: %w", path, err)
	}

	for _, entry := range cfg.Browsers {
		if err := r.Register(entry); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	slog.Debug("loaded launcher config", "path", path, "entries", len(cfg.Browsers))
	return nil
}

// defaultRegistry backs the package-level convenience functions.
var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds an entry to the default registry.
func Register(entry Entry) error {
	return defaultRegistry.Register(entry)
}

// Lookup consults the default registry.
func Lookup(name string) (*Entry, bool) {
	return defaultRegistry.Lookup(name)
}
