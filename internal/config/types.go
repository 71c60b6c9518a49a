package config

// Config is the top-level refhub configuration, corresponding to .refhub.yml.
type Config struct {
	HubsDir   string       `yaml:"hubs_dir" koanf:"hubs_dir"`
	Include   []string     `yaml:"include" koanf:"include"`
	Exclude   []string     `yaml:"exclude" koanf:"exclude"`
	OutputDir string       `yaml:"output_dir" koanf:"output_dir"`
	SiteTitle string       `yaml:"site_title" koanf:"site_title"`
	Logo      string       `yaml:"logo" koanf:"logo"`
	Search    SearchConfig `yaml:"search" koanf:"search"`
	Server    ServerConfig `yaml:"server" koanf:"server"`
	Log       LogConfig    `yaml:"log" koanf:"log"`
}

// SearchConfig settles the behaviours that differed between hub pages.
type SearchConfig struct {
	ClearOnSectionChange bool     `yaml:"clear_on_section_change" koanf:"clear_on_section_change"`
	Fields               []string `yaml:"fields" koanf:"fields"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}
