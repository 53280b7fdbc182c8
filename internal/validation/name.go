package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxNameLen максимальная длина имени счетчика или фазы в символах
	MaxNameLen = 64
)

// ValidateName проверяет имя счетчика или фазы
// Имя не может быть пустым или состоять только из пробелов,
// не может содержать управляющие символы, длина до 64 символов
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if !utf8.ValidString(name) {
		return fmt.Errorf("name must be valid UTF-8")
	}

	if utf8.RuneCountInString(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}

	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return fmt.Errorf("name cannot contain control characters")
	}

	return nil
}

// ValidateCount проверяет, что значение счетчика неотрицательно и помещается в int32
func ValidateCount(count int64) error {
	if count < 0 {
		return fmt.Errorf("count cannot be negative")
	}

	if count > int64(^uint32(0)>>1) {
		return fmt.Errorf("count must not exceed %d", int64(^uint32(0)>>1))
	}

	return nil
}

// ValidateElapsed проверяет, что затраченное время неотрицательно
func ValidateElapsed(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("elapsed time cannot be negative")
	}

	return nil
}
