package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env           string              `yaml:"env" env:"ENV" env-default:"local"`
	HTTP          HTTPConfig          `yaml:"http"`
	Database      DatabaseConfig      `yaml:"database"`
	Redis         RedisConf           `yaml:"redis"`
	ConfigStore   ConfigStoreConfig   `yaml:"config_store"`
	ObjectStorage ObjectStorageConfig `yaml:"object_storage"`
	Auth          AuthConfig          `yaml:"auth"`
	Content       ContentConfig       `yaml:"content"`
}

type HTTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type DatabaseConfig struct {
	DSN     string `yaml:"dsn" env:"DATABASE_DSN" env-required:"true"`
	Migrate bool   `yaml:"migrate" env-default:"true"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db"`
}

// ConfigStoreConfig selects where the site configuration document is persisted.
type ConfigStoreConfig struct {
	Driver string `yaml:"driver" env-default:"local"` // local, redis, memory
	Dir    string `yaml:"dir" env-default:"./data"`
	Key    string `yaml:"key" env-default:"siteData"`
}

type ObjectStorageConfig struct {
	Driver    string `yaml:"driver" env-default:"local"` // local, s3
	BaseDir   string `yaml:"base_dir" env-default:"./uploads"`
	BaseURL   string `yaml:"base_url" env:"OBJECT_STORAGE_BASE_URL" env-default:"http://localhost:8080/uploads"`
	Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT"`
	Bucket    string `yaml:"bucket" env:"S3_BUCKET" env-default:"instructor-images"`
	AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY"`
	UseSSL    bool   `yaml:"use_ssl" env-default:"true"`
	MaxSize   int64  `yaml:"max_size" env-default:"10485760"`
}

type AuthConfig struct {
	AdminPasswordHash string        `yaml:"admin_password_hash" env:"ADMIN_PASSWORD_HASH" env-required:"true"`
	TokenSecret       string        `yaml:"token_secret" env:"TOKEN_SECRET" env-required:"true"`
	TokenTTL          time.Duration `yaml:"token_ttl" env-default:"12h"`
	SessionSecret     string        `yaml:"session_secret" env:"SESSION_SECRET" env-required:"true"`
}

type ContentConfig struct {
	FetchTimeout     time.Duration `yaml:"fetch_timeout" env-default:"10s"`
	SettingsCacheTTL time.Duration `yaml:"settings_cache_ttl" env-default:"5m"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
