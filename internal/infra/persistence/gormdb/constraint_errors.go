package gormdb

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Both dialectors translate driver errors once TranslateError is set on the session.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
