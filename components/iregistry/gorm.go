package iregistry

import (
	"context"
	stdlog "log"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cute-angelia/go-xrand/utils/ilog"
)

const (
	DriverSQLite    = "sqlite"
	DriverMysql     = "mysql"
	DriverPostgres  = "postgres"
	DriverSQLServer = "sqlserver"
)

type GormConfig struct {
	Driver       string          `mapstructure:"driver"`
	Dsn          string          `mapstructure:"dsn"`
	MaxOpenConns int             `mapstructure:"max_open_conns"`
	MaxIdleConns int             `mapstructure:"max_idle_conns"`
	MaxLifetime  time.Duration   `mapstructure:"max_lifetime"`
	LogLevel     logger.LogLevel `mapstructure:"log_level"`
}

// MintedValue 已发放的值，(namespace, value) 唯一
type MintedValue struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Namespace string    `gorm:"size:64;not null;uniqueIndex:idx_minted_ns_value"`
	Value     string    `gorm:"size:255;not null;uniqueIndex:idx_minted_ns_value"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (MintedValue) TableName() string { return "minted_values" }

// GormStore 基于 gorm 的持久化存储，支持 sqlite / mysql / postgres / sqlserver
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(cfg GormConfig) (*GormStore, error) {
	cfg.Driver = strings.ToLower(cfg.Driver)
	if cfg.Driver == "sqlite3" {
		cfg.Driver = DriverSQLite
	}
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	zl := ilog.Component(name)
	newLogger := logger.New(
		stdlog.New(zl, "", 0),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      cfg.LogLevel,
		},
	)
	if cfg.LogLevel == 0 {
		newLogger = newLogger.LogMode(logger.Warn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, errors.Wrapf(err, "iregistry: open %s", cfg.Driver)
	}

	if cfg.Driver == DriverSQLite {
		db.Exec("PRAGMA journal_mode=WAL;")
	}

	idb, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "iregistry: sql.DB")
	}
	if cfg.MaxOpenConns > 0 {
		idb.SetMaxOpenConns(cfg.MaxOpenConns)
	} else if cfg.Driver == DriverSQLite {
		idb.SetMaxOpenConns(1)
	}
	if cfg.MaxIdleConns > 0 {
		idb.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		idb.SetConnMaxLifetime(cfg.MaxLifetime)
	}

	if err := db.AutoMigrate(&MintedValue{}); err != nil {
		return nil, errors.Wrap(err, "iregistry: migrate")
	}

	zl.Info().Str("driver", cfg.Driver).Msg("gorm store ready")
	return &GormStore{db: db}, nil
}

func dialectorFor(cfg GormConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverSQLite:
		dsn := cfg.Dsn
		if dsn == "" {
			dsn = "./xrand_SQLite.db"
		}
		if !strings.Contains(dsn, "?") && !strings.HasPrefix(dsn, "file::memory:") {
			dsn += "?_busy_timeout=5000"
		}
		return sqlite.Open(dsn), nil
	case DriverMysql:
		if cfg.Dsn == "" {
			return nil, errors.New("iregistry: mysql dsn is empty")
		}
		return mysql.Open(cfg.Dsn), nil
	case DriverPostgres, "postgresql":
		if cfg.Dsn == "" {
			return nil, errors.New("iregistry: postgres dsn is empty")
		}
		return postgres.Open(cfg.Dsn), nil
	case DriverSQLServer:
		if cfg.Dsn == "" {
			return nil, errors.New("iregistry: sqlserver dsn is empty")
		}
		return sqlserver.Open(cfg.Dsn), nil
	default:
		return nil, errors.Wrapf(ErrUnknownDriver, "%q", cfg.Driver)
	}
}

func (s *GormStore) Load(ctx context.Context, ns string) ([]string, error) {
	vals := []string{}
	err := s.db.WithContext(ctx).
		Model(&MintedValue{}).
		Where("namespace = ?", ns).
		Order("id").
		Pluck("value", &vals).Error
	if err != nil {
		return nil, errors.Wrapf(err, "iregistry: load %s", ns)
	}
	return vals, nil
}

func (s *GormStore) Add(ctx context.Context, ns string, values ...string) error {
	if len(values) == 0 {
		return nil
	}
	if hasRepeat(values) {
		return errors.Wrapf(ErrConflict, "%s: repeated value in batch", ns)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&MintedValue{}).
			Where("namespace = ? AND value IN ?", ns, values).
			Count(&n).Error; err != nil {
			return errors.Wrapf(err, "iregistry: add %s", ns)
		}
		if n > 0 {
			return errors.Wrapf(ErrConflict, "%s: %d already minted", ns, n)
		}

		rows := make([]MintedValue, 0, len(values))
		for _, v := range values {
			rows = append(rows, MintedValue{Namespace: ns, Value: v})
		}
		if err := tx.CreateInBatches(rows, 500).Error; err != nil {
			return errors.Wrapf(err, "iregistry: add %s", ns)
		}
		return nil
	})
}

func (s *GormStore) Count(ctx context.Context, ns string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&MintedValue{}).Where("namespace = ?", ns).Count(&n).Error
	if err != nil {
		return 0, errors.Wrapf(err, "iregistry: count %s", ns)
	}
	return n, nil
}

func (s *GormStore) Close() error {
	idb, err := s.db.DB()
	if err != nil {
		return err
	}
	return idb.Close()
}
