package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kotaroooo0/gomamayo"
	"github.com/kotaroooo0/gomamayo/morphology"
	"github.com/spf13/viper"
)

const envPrefix = "GOMAMAYO"

// DefaultSQLiteDSN はSQLiteでdsnが未指定のときのファイル
const DefaultSQLiteDSN = "gomamayo.db"

type Config struct {
	Tokenizer TokenizerConfig   `mapstructure:"tokenizer"`
	Normalize bool              `mapstructure:"normalize"` // NFKC正規化するか
	CharMap   map[string]string `mapstructure:"char_map"`  // 解析前に置換する表記
	Romaji    bool              `mapstructure:"romaji"`
	Workers   int               `mapstructure:"workers"` // 一括判定の並行数
	Format    string            `mapstructure:"format"`  // text, json, yaml
	Storage   StorageConfig     `mapstructure:"storage"`
	Server    ServerConfig      `mapstructure:"server"`
}

type TokenizerConfig struct {
	Mode     string `mapstructure:"mode"`      // normal, search, extended
	UserDict string `mapstructure:"user_dict"` // ユーザー辞書のパス
}

type StorageConfig struct {
	Driver string      `mapstructure:"driver"` // sqlite, mysql。空なら記録しない
	DSN    string      `mapstructure:"dsn"`
	MySQL  MySQLConfig `mapstructure:"mysql"` // dsnが空のときに使う
}

type MySQLConfig struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Addr     string `mapstructure:"addr"`
	Port     string `mapstructure:"port"`
	DB       string `mapstructure:"db"`
}

// DataSourceName は接続文字列を返す。dsnが空ならドライバごとに組み立てる
func (c StorageConfig) DataSourceName() string {
	if c.DSN != "" {
		return c.DSN
	}
	if c.Driver == "mysql" {
		return gomamayo.NewDBConfig(c.MySQL.User, c.MySQL.Password, c.MySQL.Addr, c.MySQL.Port, c.MySQL.DB).MySQLDSN()
	}
	return DefaultSQLiteDSN
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

var formats = map[string]struct{}{"text": {}, "json": {}, "yaml": {}}

var drivers = map[string]struct{}{"": {}, "sqlite": {}, "mysql": {}}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tokenizer.mode", "search")
	v.SetDefault("tokenizer.user_dict", "")
	v.SetDefault("normalize", true)
	v.SetDefault("romaji", false)
	v.SetDefault("workers", 4)
	v.SetDefault("format", "text")
	v.SetDefault("storage.driver", "")
	v.SetDefault("storage.dsn", "")
	v.SetDefault("storage.mysql.user", "root")
	v.SetDefault("storage.mysql.password", "")
	v.SetDefault("storage.mysql.addr", "127.0.0.1")
	v.SetDefault("storage.mysql.port", "3306")
	v.SetDefault("storage.mysql.db", "gomamayo")
	v.SetDefault("server.addr", ":8080")
}

// New は設定を読み込むviperを用意する
// 優先順位は 環境変数(GOMAMAYO_*) > 設定ファイル > デフォルト値
// CLIのフラグはBindPFlagで後から結びつける
func New(path string) (*viper.Viper, error) {
	// .envは無くてもよい
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return v, nil
}

func Load(path string) (*Config, error) {
	v, err := New(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal(v)
}

func Unmarshal(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if err := morphology.ValidateMode(c.Tokenizer.Mode); err != nil {
		return fmt.Errorf("tokenizer.mode: %w", err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers: must be positive, got %d", c.Workers)
	}
	if _, ok := formats[c.Format]; !ok {
		return fmt.Errorf("format: unknown format %q", c.Format)
	}
	if _, ok := drivers[c.Storage.Driver]; !ok {
		return fmt.Errorf("storage.driver: unknown driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == "mysql" && c.Storage.DSN == "" && c.Storage.MySQL.DB == "" {
		return fmt.Errorf("storage.mysql.db: required when storage.dsn is empty")
	}
	for k := range c.CharMap {
		if k == "" {
			return fmt.Errorf("char_map: empty key")
		}
	}
	return nil
}

// StorageEnabled は判定結果を記録するか
func (c *Config) StorageEnabled() bool {
	return c.Storage.Driver != ""
}
