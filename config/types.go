package config

// ServerConfig contains gateway server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// ClientConfig contains upstream TAN API client configuration
type ClientConfig struct {
	BaseURL          string `yaml:"baseURL" validate:"omitempty,url"`
	ConnectTimeoutMS int    `yaml:"connectTimeoutMS" validate:"gte=0"`
	RequestTimeoutMS int    `yaml:"requestTimeoutMS" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	Client ClientConfig `yaml:"client"`
}
