package conf

import (
	"bytes"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/cute-angelia/go-xrand/components/iregistry"
	"github.com/cute-angelia/go-xrand/syntax/isource"
	"github.com/cute-angelia/go-xrand/utils/ilog"
)

// EnvPrefix 环境变量前缀，server.addr -> XRAND_SERVER_ADDR
const EnvPrefix = "XRAND"

type AppConfig struct {
	Server   ServerConfig     `mapstructure:"server"`
	Source   SourceConfig     `mapstructure:"source"`
	Registry iregistry.Config `mapstructure:"registry"`
	Log      ilog.Config      `mapstructure:"log"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	// Rate 每秒请求数，<= 0 不限流
	Rate     float64       `mapstructure:"rate"`
	Burst    int           `mapstructure:"burst"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type SourceConfig struct {
	Kind  string `mapstructure:"kind"`
	Batch int    `mapstructure:"batch"`
}

func defaults() map[string]any {
	lc := ilog.DefaultConfig()
	return map[string]any{
		"server.addr":      ":8080",
		"server.rate":      100.0,
		"server.burst":     200,
		"server.cache_ttl": 2 * time.Second,
		"server.timeout":   10 * time.Second,

		"source.kind":  isource.KindCrypto,
		"source.batch": isource.DefaultBatchSize,

		"registry.driver":          iregistry.DriverMemory,
		"registry.dsn":             "",
		"registry.ttl":             time.Duration(0),
		"registry.redis_addrs":     []string{"127.0.0.1:6379"},
		"registry.redis_db":        0,
		"registry.redis_username":  "",
		"registry.redis_password":  "",
		"registry.redis_pool_size": 0,

		"log.level":        lc.Level,
		"log.format":       lc.Format,
		"log.file":         lc.File,
		"log.max_size_mb":  lc.MaxSizeMB,
		"log.max_backups":  lc.MaxBackups,
		"log.max_age_days": lc.MaxAgeDays,
		"log.compress":     lc.Compress,
	}
}

// New 创建带默认值和环境变量绑定的 viper
func New() *viper.Viper {
	v := viper.New()
	for k, val := range defaults() {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfigFile cfgFile 为空时只使用默认值和环境变量
func LoadConfigFile(v *viper.Viper, cfgFile string) (*AppConfig, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "conf: read %s", cfgFile)
		}
	}
	return Decode(v)
}

// LoadConfigByte filetype: yaml / toml / json
func LoadConfigByte(v *viper.Viper, data []byte, filetype string) (*AppConfig, error) {
	v.SetConfigType(filetype)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.Wrapf(err, "conf: read %s", filetype)
	}
	return Decode(v)
}

func Decode(v *viper.Viper) (*AppConfig, error) {
	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "conf: decode")
	}
	return &cfg, nil
}

func MustLoadConfigFile(v *viper.Viper, cfgFile string) *AppConfig {
	cfg, err := LoadConfigFile(v, cfgFile)
	if err != nil {
		panic(err)
	}
	return cfg
}
