package cache

// LayoutKeyOpts are the inputs that determine a layout besides the words.
type LayoutKeyOpts struct {
	Style   string  `json:"style"`
	Styles  string  `json:"styles"` // hash of the resolved style table
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Step    float64 `json:"step"`
	Seed    uint64  `json:"seed"`
	Shuffle bool    `json:"shuffle"`
}

// ArtifactKeyOpts are the inputs that determine a rendered artifact besides
// the layout.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Boxes  bool   `json:"boxes"`
}

// Keyer builds cache keys.
type Keyer interface {
	LayoutKey(wordsHash string, opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "layout:<sha>" and "artifact:<sha>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey keys a layout by the words hash and layout options.
func (DefaultKeyer) LayoutKey(wordsHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", wordsHash, opts)
}

// ArtifactKey keys an artifact by the layout hash and render options.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
