package validation

import (
	"fmt"
	"regexp"
)

// EntityTypePattern определяет допустимый формат вида сущности
// Строчные латинские буквы, цифры, нижнее подчеркивание; начинается с буквы
// Длина: 1-32 символа
var EntityTypePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,31}$`)

// EntityIDPattern определяет допустимый формат идентификатора сущности
// Латинские буквы, цифры, дефис, нижнее подчеркивание
// Длина: 1-64 символа
var EntityIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ValidateEntityType проверяет, что вид сущности соответствует требованиям
func ValidateEntityType(entityType string) error {
	if entityType == "" {
		return fmt.Errorf("entity type cannot be empty")
	}

	if !EntityTypePattern.MatchString(entityType) {
		return fmt.Errorf("entity type must start with a lowercase letter and contain only lowercase letters, numbers, and underscores (max 32 characters)")
	}

	return nil
}

// ValidateEntityID проверяет, что идентификатор сущности соответствует требованиям
func ValidateEntityID(entityID string) error {
	if entityID == "" {
		return fmt.Errorf("entity id cannot be empty")
	}

	if !EntityIDPattern.MatchString(entityID) {
		return fmt.Errorf("entity id can only contain letters, numbers, dashes, and underscores (max 64 characters)")
	}

	return nil
}
