package dao

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsDuplicateKey 唯一键冲突判断
// MySQL 报 "Duplicate entry"，测试用的 SQLite 报 "UNIQUE constraint failed"
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
