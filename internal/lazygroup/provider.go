// SPDX-License-Identifier: MPL-2.0

package lazygroup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/idevctl/idevctl/internal/registry"
	"github.com/idevctl/idevctl/pkg/devicegroup"
)

// ErrGroupLoad is the sentinel for failures to resolve a group implementation.
var ErrGroupLoad = errors.New("failed to load command group")

type (
	// Provider stands in for a command group until it is first used.
	Provider struct {
		desc    registry.Descriptor
		resolve func() (devicegroup.Group, error)
	}

	// GroupLoadError reports why a group implementation could not be resolved.
	GroupLoadError struct {
		Group   string
		Locator registry.Locator
		Cause   error
	}
)

// New creates a provider for desc. Nothing is loaded until the provider is used.
func New(desc registry.Descriptor, loader devicegroup.Loader) *Provider {
	p := &Provider{desc: desc}
	p.resolve = sync.OnceValues(func() (devicegroup.Group, error) {
		return load(desc, loader)
	})
	return p
}

// NewAll creates one provider per descriptor, keyed by group name.
func NewAll(descs []registry.Descriptor, loader devicegroup.Loader) map[string]*Provider {
	out := make(map[string]*Provider, len(descs))
	for _, d := range descs {
		out[d.Name] = New(d, loader)
	}
	return out
}

// Descriptor returns the descriptor the provider was created from.
func (p *Provider) Descriptor() registry.Descriptor { return p.desc }

// Resolve returns the group implementation, loading it on first use.
func (p *Provider) Resolve() (devicegroup.Group, error) {
	return p.resolve()
}

// ListCommands returns the group's command names.
func (p *Provider) ListCommands(ctx context.Context) ([]string, error) {
	g, err := p.resolve()
	if err != nil {
		return nil, err
	}
	return g.ListCommands(ctx), nil
}

// GetCommand returns the named command. When the group has no command called
// name but exposes exactly one command, that command is returned instead, so
// single-command groups accept any subcommand token. A nil command with a nil
// error means the group has no such command.
func (p *Provider) GetCommand(ctx context.Context, name string) (*cobra.Command, error) {
	g, err := p.resolve()
	if err != nil {
		return nil, err
	}

	if cmd := g.GetCommand(ctx, name); cmd != nil {
		return cmd, nil
	}

	names := g.ListCommands(ctx)
	if len(names) == 1 {
		return g.GetCommand(ctx, names[0]), nil
	}
	return nil, nil
}

func load(desc registry.Descriptor, loader devicegroup.Loader) (devicegroup.Group, error) {
	start := time.Now()

	modulePath, attribute, err := desc.Locator.Split()
	if err != nil {
		return nil, &GroupLoadError{Group: desc.Name, Locator: desc.Locator, Cause: err}
	}

	mod, err := loader.Load(modulePath)
	if err != nil {
		return nil, &GroupLoadError{Group: desc.Name, Locator: desc.Locator, Cause: err}
	}

	g, err := mod.Attr(modulePath, attribute)
	if err != nil {
		return nil, &GroupLoadError{Group: desc.Name, Locator: desc.Locator, Cause: err}
	}

	slog.Debug("resolved command group",
		"group", desc.Name,
		"locator", desc.Locator.String(),
		"duration", time.Since(start))
	return g, nil
}

// Error implements the error interface.
func (e *GroupLoadError) Error() string {
	return fmt.Sprintf("failed to load command group %s (%s): %v", e.Group, e.Locator, e.Cause)
}

// Unwrap returns both ErrGroupLoad and the underlying cause, so errors.Is
// matches the sentinel as well as catalog errors such as
// devicegroup.ErrModuleNotFound.
func (e *GroupLoadError) Unwrap() []error { return []error{ErrGroupLoad, e.Cause} }
