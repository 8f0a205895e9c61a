package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ivolkov/syncpad/internal/models"
)

// parsePriority преобразует строковый флаг в Priority
func parsePriority(s string) (models.Priority, error) {
	switch models.Priority(s) {
	case models.PriorityLow, models.PriorityNormal, models.PriorityHigh:
		return models.Priority(s), nil
	default:
		return "", fmt.Errorf("invalid priority %q: expected low, normal or high", s)
	}
}

// parsePayload собирает payload мутации из аргументов вида key=value.
// Значение парсится как JSON (числа, bool, null, объекты), иначе
// трактуется как строка.
func parsePayload(args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, nil
	}

	payload := make(map[string]any, len(args))

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid payload argument %q: expected key=value", arg)
		}

		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err != nil {
			// Не JSON — обычная строка
			parsed = value
		}

		payload[key] = parsed
	}

	return payload, nil
}

// formatValues выводит подмножество полей карты в стабильном порядке
func formatValues(m map[string]any, fields []string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if v, ok := m[f]; ok {
			parts = append(parts, fmt.Sprintf("%s=%v", f, v))
		} else {
			parts = append(parts, f+"=<absent>")
		}
	}
	return strings.Join(parts, ", ")
}
