package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port       int    `yaml:"port" validate:"gt=0,lte=65535"`
	SamplesDir string `yaml:"samplesDir"`
}

// CatalogConfig contains open-data catalog search configuration
type CatalogConfig struct {
	SearchURL  string `yaml:"searchURL" validate:"required,url"`
	SearchTerm string `yaml:"searchTerm"` // appended to every query, e.g. 収集日
	TitleHint  string `yaml:"titleHint"`  // preferred substring in package titles
	Rows       int    `yaml:"rows" validate:"gt=0,lte=1000"`
	TimeoutMS  int    `yaml:"timeoutMS" validate:"gte=0"`
}

// DownloadConfig contains resource download configuration
type DownloadConfig struct {
	TimeoutMS int   `yaml:"timeoutMS" validate:"gte=0"`
	MaxBytes  int64 `yaml:"maxBytes" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Catalog  CatalogConfig  `yaml:"catalog" validate:"required"`
	Download DownloadConfig `yaml:"download"`
}
