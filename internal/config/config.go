package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

type Config struct {
	LogLevel   string    `yaml:"log-level" env-default:"info"`
	HTTPPort   string    `yaml:"http-port" env-default:"9090"`
	SocketPort string    `yaml:"socket-port" env-default:"9091"`
	Redis      Redis     `yaml:"redis"`
	MoveCache  MoveCache `yaml:"move-cache"`
	Bot        Bot       `yaml:"bot"`
	Sessions   Sessions  `yaml:"sessions"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// MoveCache selects where engine decisions are memoized.
type MoveCache struct {
	Driver string        `yaml:"driver" env-default:"memory"`
	TTL    time.Duration `yaml:"ttl" env-default:"0s"`
}

type Bot struct {
	// Mark the computer plays when a new game does not ask for one.
	Mark string `yaml:"mark" env-default:"O"`
}

// Sessions - a game unused for IdleTTL is dropped. Zero keeps games until DELETE or disconnect.
type Sessions struct {
	IdleTTL time.Duration `yaml:"idle-ttl" env-default:"30m"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// GetRedisAddr - returns host:port, or an empty string when no host is set.
func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
