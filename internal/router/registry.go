// Package router turns one line of user input into an ordered list of Results.
// It composes the parser, the access guard, the command registry and the tool
// adapter; commands register themselves with the global registry during
// initialization.
package router

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"labshell/pkg/labtypes"
)

// Registry manages command registration and lookup, including aliases.
// Registration happens once at startup; lookup is read-mostly and
// thread-safe.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]labtypes.Command
	aliases  map[string]string
}

// NewRegistry creates a new command registry with empty tables.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]labtypes.Command),
		aliases:  make(map[string]string),
	}
}

// Register adds a command and its aliases to the registry. Returns an error
// if the command name is empty or if any name or alias is already taken;
// the static table must stay free of shadowing.
func (r *Registry) Register(cmd labtypes.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.ToLower(cmd.Name())
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command %s already registered", name)
	}
	if canonical, exists := r.aliases[name]; exists {
		return fmt.Errorf("command %s conflicts with alias of %s", name, canonical)
	}

	for _, alias := range cmd.Aliases() {
		alias = strings.ToLower(alias)
		if alias == "" {
			return fmt.Errorf("command %s has an empty alias", name)
		}
		if _, exists := r.commands[alias]; exists {
			return fmt.Errorf("alias %s of %s conflicts with a command name", alias, name)
		}
		if canonical, exists := r.aliases[alias]; exists {
			return fmt.Errorf("alias %s of %s already points at %s", alias, name, canonical)
		}
	}

	r.commands[name] = cmd
	for _, alias := range cmd.Aliases() {
		r.aliases[strings.ToLower(alias)] = name
	}
	return nil
}

// Resolve retrieves a command by canonical name or alias, case-insensitively.
// Returns the command and true if found.
func (r *Registry) Resolve(name string) (labtypes.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.ToLower(name)
	if cmd, exists := r.commands[name]; exists {
		return cmd, true
	}
	if canonical, exists := r.aliases[name]; exists {
		return r.commands[canonical], true
	}
	return nil, false
}

// GetAll returns all registered commands sorted by canonical name.
func (r *Registry) GetAll() []labtypes.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commands := make([]labtypes.Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		commands = append(commands, cmd)
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})
	return commands
}

// IsValidCommand checks if a name or alias resolves to a registered command.
func (r *Registry) IsValidCommand(name string) bool {
	_, exists := r.Resolve(name)
	return exists
}

// GlobalRegistry is the global command registry instance used throughout
// LabShell. Commands register themselves with this instance during
// initialization.
var GlobalRegistry = NewRegistry()
