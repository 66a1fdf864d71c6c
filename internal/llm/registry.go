package llm

import "fmt"

// ProviderFactory builds a provider from its environment configuration.
type ProviderFactory func() (Provider, error)

// registry of available model providers, keyed by the AI_PROVIDER value
var providers = make(map[string]ProviderFactory)

// RegisterProvider makes a provider selectable by name. Provider packages call
// this from init; cmd/server blank-imports the ones it ships with.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewProvider instantiates the named provider, typically once at startup.
func NewProvider(name string) (Provider, error) {
	factory, exists := providers[name]
	if !exists {
		return nil, fmt.Errorf("unsupported provider: %s", name)
	}
	return factory()
}
