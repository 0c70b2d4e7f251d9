package config

// Config is the top-level configuration tree.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Redis  RedisConfig  `mapstructure:"redis"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	Search SearchConfig `mapstructure:"search"`
}

// ServerConfig holds the HTTP server settings and the canonical
// calendar-day timezone. Streak math, cache freshness and the daily-game
// day window all use this one timezone.
type ServerConfig struct {
	Port     int    `mapstructure:"port"`
	Timezone string `mapstructure:"timezone"`
}

// MongoConfig holds the document store connection settings.
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// SearchConfig bounds the in-process player/coach search cache.
type SearchConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds"`
	MaxEntries int `mapstructure:"max_entries"`
}
