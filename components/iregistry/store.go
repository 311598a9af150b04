package iregistry

import (
	"context"
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const name = "registry"

var (
	// ErrConflict 写入的值已存在于命名空间中
	ErrConflict = errors.New("iregistry: value already minted")
	// ErrNamespace 命名空间不合法
	ErrNamespace = errors.New("iregistry: invalid namespace")
	// ErrUnknownDriver 未知的存储驱动
	ErrUnknownDriver = errors.New("iregistry: unknown driver")
)

var namespacePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{1,64}$`)

var namespaceRules = []validation.Rule{validation.Required, validation.Match(namespacePattern)}

// Store 保存每个命名空间已发放的值，作为生成时的排除集
type Store interface {
	// Load 按写入顺序返回已发放的值
	Load(ctx context.Context, ns string) ([]string, error)
	// Add 写入新值，任一值已存在时返回 ErrConflict
	Add(ctx context.Context, ns string, values ...string) error
	Count(ctx context.Context, ns string) (int64, error)
	Close() error
}

func ValidNamespace(ns string) bool {
	return validation.Validate(ns, namespaceRules...) == nil
}
