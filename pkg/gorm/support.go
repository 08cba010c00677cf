package gorm

import (
	"errors"

	stdgorm "gorm.io/gorm"
)

func IsNotFound(seed error) bool {
	return seed != nil && errors.Is(seed, stdgorm.ErrRecordNotFound)
}

func IsFoundButHasErrors(seed error) bool {
	return seed != nil && !errors.Is(seed, stdgorm.ErrRecordNotFound)
}

func HasDbIssues(err error) bool {
	return IsNotFound(err) || IsFoundButHasErrors(err)
}
