package config

import "sort"

// Provider identifiers. The set is closed; every other component validates
// against it.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
)

// Models lists the valid models per provider. The first entry is the
// default selected when the provider is configured.
var Models = map[string][]string{
	ProviderOpenAI: {
		"gpt-4.1-nano",
		"gpt-4.1-mini",
		"gpt-4.1",
		"gpt-4o-mini",
		"gpt-4o",
		"gpt-3.5-turbo-1106",
		"gpt-3.5-turbo-0301",
	},
	ProviderGoogle: {
		"gemini-2.5-flash-lite",
		"gemini-2.0-flash-lite",
		"gemini-2.5-flash",
		"gemini-2.0-flash-exp",
		"gemini-2.5-pro",
	},
	ProviderAnthropic: {
		"claude-haiku-4-5",
		"claude-haiku-4-3",
		"claude-sonnet-4-5",
		"claude-sonnet-4-3",
		"claude-opus-4-5",
		"claude-opus-4-3",
		"claude-haiku-3-5",
		"claude-sonnet-3-5",
	},
}

// ValidProvider reports whether name is a known provider.
func ValidProvider(name string) bool {
	_, ok := Models[name]
	return ok
}

// ValidModel reports whether model is valid for the given provider.
func ValidModel(provider, model string) bool {
	for _, m := range Models[provider] {
		if m == model {
			return true
		}
	}
	return false
}

// DefaultModel returns the default model for a provider, or "" if the
// provider is unknown.
func DefaultModel(provider string) string {
	models := Models[provider]
	if len(models) == 0 {
		return ""
	}
	return models[0]
}

// ProviderList returns the known provider names, sorted.
func ProviderList() []string {
	names := make([]string, 0, len(Models))
	for name := range Models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MaskKey hides the middle of an API key, revealing the first four and last
// six characters. Keys too short to mask meaningfully are fully redacted.
func MaskKey(key string) string {
	if len(key) <= 10 {
		return "**********"
	}
	return key[:4] + "..." + key[len(key)-6:]
}
