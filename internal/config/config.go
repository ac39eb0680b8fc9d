package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

const (
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

type Config struct {
	LogLevel          string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort        string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Storage           Storage `yaml:"storage"`
	Redis             Redis   `yaml:"redis"`
	SQLiteStoragePath string  `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./data/tictactoe.db"`
	Game              Game    `yaml:"game"`
}

type Storage struct {
	Driver    string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"redis"`
	ScoresKey string `yaml:"scores-key" env:"STORAGE_SCORES_KEY" env-default:"ticTacToeScores"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Game holds the settings the first game starts with.
type Game struct {
	GridSize  int    `yaml:"grid-size" env:"GAME_GRID_SIZE" env-default:"3"`
	WinLength int    `yaml:"win-length" env:"GAME_WIN_LENGTH" env-default:"3"`
	SymbolA   string `yaml:"symbol-a" env:"GAME_SYMBOL_A" env-default:"X"`
	SymbolB   string `yaml:"symbol-b" env:"GAME_SYMBOL_B" env-default:"O"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the yml file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that Game) ToGameConfig() entity.GameConfig {
	return entity.GameConfig{
		GridSize:  that.GridSize,
		WinLength: that.WinLength,
		SymbolA:   that.SymbolA,
		SymbolB:   that.SymbolB,
	}
}
