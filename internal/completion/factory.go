package completion

import (
	"fmt"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/config"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/port"
)

// ProviderFactory creates a Completer from a provider config.
type ProviderFactory func(cfg *config.CompletionProviderConfig) (port.Completer, error)

// registry of completion provider factories, populated via RegisterProvider
// at startup.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a completion provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewCompleter creates a Completer from a provider config using the
// registered factory.
func NewCompleter(cfg *config.CompletionProviderConfig) (port.Completer, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown completion provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
