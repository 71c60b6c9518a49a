package config

// DefaultInclude matches every catalog file format.
var DefaultInclude = []string{"**/*.yml", "**/*.yaml", "**/*.json", "**/*.db"}

// DefaultExcludes are glob patterns never treated as catalogs.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"**/_*",
	"**/*.draft.*",
}

// DefaultSearchFields are searched when search.fields is not set.
var DefaultSearchFields = []string{"title", "author", "desc"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		HubsDir:   "hubs",
		Include:   append([]string(nil), DefaultInclude...),
		Exclude:   append([]string(nil), DefaultExcludes...),
		OutputDir: "site",
		SiteTitle: "Reference Hubs",
		Search: SearchConfig{
			ClearOnSectionChange: false,
			Fields:               append([]string(nil), DefaultSearchFields...),
		},
		Server: ServerConfig{
			Port:            8080,
			AllowAllOrigins: false,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
