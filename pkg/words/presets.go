package words

import (
	"maps"
	"slices"
)

// Built-in word sets.
const (
	PresetWeb    = "web"
	PresetCommon = "common"
)

var presets = map[string][]string{
	PresetWeb: {
		"Web",
		"HTML", "CSS", "JavaScript", "TypeScript", "HTTP", "HTTPS", "DNS",
		"REST", "GraphQL", "WebSocket", "JSON", "XML", "SVG", "Canvas",
		"DOM", "Browser", "Server", "Client", "Cookie", "Session", "Cache",
		"CDN", "Proxy", "TLS", "OAuth", "CORS", "API", "URL", "Router",
		"Frontend", "Backend", "Framework", "Bundler", "Accessibility",
		"Responsive", "Flexbox", "Grid", "Animation", "Fetch", "Promise",
		"Service Worker", "WebAssembly", "Markup", "Stylesheet", "Template",
		"Component", "State", "Hydration", "Rendering", "Latency", "SEO",
	},
	PresetCommon: {
		"Words",
		"the", "of", "and", "to", "in", "is", "you", "that", "it", "he",
		"was", "for", "on", "are", "as", "with", "his", "they", "at", "be",
		"this", "have", "from", "or", "one", "had", "by", "word", "but",
		"not", "what", "all", "were", "we", "when", "your", "can", "said",
		"there", "use", "an", "each", "which", "she", "do", "how", "their",
		"if", "will", "up", "other", "about", "out", "many", "then", "them",
		"these", "so", "some", "her", "would", "make", "like", "him", "into",
		"time", "has", "look", "two", "more", "write", "go", "see", "number",
	},
}

// Preset returns a copy of a built-in word set.
func Preset(name string) ([]string, bool) {
	w, ok := presets[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(w), true
}

// Presets returns the sorted names of the built-in word sets.
func Presets() []string {
	return slices.Sorted(maps.Keys(presets))
}
