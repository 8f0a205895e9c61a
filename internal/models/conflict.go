package models

// Conflict представляет обнаруженное расхождение между локальной
// отложенной мутацией и актуальным состоянием сущности на сервере.
// Создается Delta Sync Service в момент push, когда remote version
// ушла вперед относительно BaseVersion элемента очереди, и хотя бы
// одно поле реально расходится.
type Conflict struct {
	OldValue      map[string]any `json:"old_value"`      // значения сервера (authoritative на момент обнаружения)
	NewValue      map[string]any `json:"new_value"`      // локальные намеченные значения
	ID            string         `json:"id"`             // UUID конфликта
	ItemID        string         `json:"item_id"`        // ID породившего QueueItem
	EntityType    string         `json:"entity_type"`    // вид сущности
	EntityID      string         `json:"entity_id"`      // ID сущности
	ChangeType    Action         `json:"change_type"`    // действие исходной мутации
	Fields        []string       `json:"fields"`         // отсортированный список расходящихся полей
	RemoteVersion int64          `json:"remote_version"` // версия сервера на момент обнаружения
	Timestamp     int64          `json:"timestamp"`      // UnixNano обнаружения
}

// Clone создает глубокую копию конфликта
func (c *Conflict) Clone() *Conflict {
	clone := *c
	clone.Fields = append([]string(nil), c.Fields...)
	if c.OldValue != nil {
		clone.OldValue = make(map[string]any, len(c.OldValue))
		for k, v := range c.OldValue {
			clone.OldValue[k] = v
		}
	}
	if c.NewValue != nil {
		clone.NewValue = make(map[string]any, len(c.NewValue))
		for k, v := range c.NewValue {
			clone.NewValue[k] = v
		}
	}
	return &clone
}
