package fontmap

// Option configures a Resolver.
type Option func(*config)

type config struct {
	families    []string
	systemFonts bool
	cacheDir    string
	cacheSize   int
}

func defaultConfig() config {
	return config{
		cacheSize: 256,
	}
}

// WithFamilies sets the preferred font families, in priority order.
// Generic families such as "serif" or "monospace" are accepted.
func WithFamilies(families ...string) Option {
	return func(c *config) {
		c.families = append([]string(nil), families...)
	}
}

// WithSystemFonts enables scanning of the fonts installed on the system.
// The scan index is persisted in cacheDir; an empty cacheDir selects the
// user cache directory.
func WithSystemFonts(cacheDir string) Option {
	return func(c *config) {
		c.systemFonts = true
		c.cacheDir = cacheDir
	}
}

// WithCacheSize sets how many (script, language) resolutions are kept.
// A value of 0 disables the limit.
func WithCacheSize(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.cacheSize = n
		}
	}
}
