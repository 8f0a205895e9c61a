package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ivolkov/syncpad/internal/models"
	"github.com/ivolkov/syncpad/internal/server/storage"
	"github.com/ivolkov/syncpad/internal/validation"
	"github.com/ivolkov/syncpad/pkg/api"
)

// EntityHandler обрабатывает push мутаций и чтение сущностей
type EntityHandler struct {
	logger  *slog.Logger
	storage storage.EntityStorage
}

// NewEntityHandler создает новый handler для сущностей
func NewEntityHandler(logger *slog.Logger, entityStorage storage.EntityStorage) *EntityHandler {
	return &EntityHandler{
		logger:  logger,
		storage: entityStorage,
	}
}

// Push обрабатывает POST /api/v1/entities/{type}/{id}/push
// Применяет одну мутацию с optimistic concurrency проверкой.
// При расхождении версий возвращает 409 с актуальным состоянием сущности,
// чтобы клиент мог построить field-level diff.
func (h *EntityHandler) Push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Получаем user_id из контекста (установлен AuthMiddleware)
	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user_id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entityType := r.PathValue("type")
	entityID := r.PathValue("id")

	if err := validation.ValidateEntityType(entityType); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateEntityID(entityID); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Парсим request body
	var req api.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode push request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	action := models.Action(req.Action)
	switch action {
	case models.ActionCreate, models.ActionUpdate, models.ActionDelete:
	default:
		h.sendError(w, "invalid action", http.StatusBadRequest)
		return
	}

	mutation := &storage.Mutation{
		UserID:      userID,
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		Payload:     req.Payload,
		BaseVersion: req.BaseVersion,
	}

	newVersion, err := h.storage.ApplyMutation(ctx, mutation)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrVersionMismatch):
			h.sendConflict(w, r, userID, entityType, entityID)
		case errors.Is(err, storage.ErrEntityNotFound):
			h.logger.WarnContext(ctx, "mutation targets missing entity",
				slog.String("entity_type", entityType),
				slog.String("entity_id", entityID))
			h.sendError(w, "entity not found", http.StatusNotFound)
		default:
			h.logger.ErrorContext(ctx, "failed to apply mutation", slog.Any("error", err))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.logger.InfoContext(ctx, "mutation applied",
		slog.String("user_id", userID),
		slog.String("action", string(action)),
		slog.String("entity_type", entityType),
		slog.String("entity_id", entityID),
		slog.Int64("version", newVersion))

	resp := api.PushResponse{
		Status:  api.PushStatusApplied,
		Version: newVersion,
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Get обрабатывает GET /api/v1/entities/{type}/{id}
// Возвращает текущее состояние сущности
func (h *EntityHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user_id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entityType := r.PathValue("type")
	entityID := r.PathValue("id")

	if err := validation.ValidateEntityType(entityType); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateEntityID(entityID); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	entity, err := h.storage.GetEntity(ctx, userID, entityType, entityID)
	if err != nil {
		if errors.Is(err, storage.ErrEntityNotFound) {
			h.sendError(w, "entity not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get entity", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.EntityResponse{
		EntityType: entity.EntityType,
		EntityID:   entity.EntityID,
		State:      entity.State,
		Version:    entity.Version,
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// sendConflict отправляет 409 с актуальным состоянием сущности
func (h *EntityHandler) sendConflict(w http.ResponseWriter, r *http.Request, userID, entityType, entityID string) {
	ctx := r.Context()

	entity, err := h.storage.GetEntity(ctx, userID, entityType, entityID)
	if err != nil {
		// Версия разошлась, но сущность прочитать не удалось
		h.logger.ErrorContext(ctx, "failed to get entity for conflict response", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.WarnContext(ctx, "push conflict",
		slog.String("user_id", userID),
		slog.String("entity_type", entityType),
		slog.String("entity_id", entityID),
		slog.Int64("remote_version", entity.Version))

	resp := api.PushResponse{
		Status:        api.PushStatusConflict,
		RemoteState:   entity.State,
		RemoteVersion: entity.Version,
	}

	h.sendJSON(w, resp, http.StatusConflict)
}

// sendJSON отправляет JSON ответ
func (h *EntityHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *EntityHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error: message,
	}
	h.sendJSON(w, resp, statusCode)
}
