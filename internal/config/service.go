package config

type ServiceConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

// WooCommerceConfig holds credentials for the order source store.
type WooCommerceConfig struct {
	BaseURL        string `yaml:"base_url" validate:"required,url"`
	ConsumerKey    string `yaml:"consumer_key" validate:"required"`
	ConsumerSecret string `yaml:"consumer_secret" validate:"required"`
	// PageSize controls how many orders are requested per page.
	PageSize int `yaml:"page_size"`
}

// ZohoConfig holds credentials for the CRM.
type ZohoConfig struct {
	// BaseURL defaults to the Zoho v8 API root when empty.
	BaseURL     string `yaml:"base_url"`
	AccessToken string `yaml:"access_token" validate:"required"`
}

type RedisConfig struct {
	// Addr enables run-event publishing when set.
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Channel  string `yaml:"channel"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	Output      string `yaml:"output"`
	Development bool   `yaml:"development"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}
