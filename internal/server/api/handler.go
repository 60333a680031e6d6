// Package api реализует HTTP-слой сервиса записи на встречи.
//
// Пакет отвечает за:
//   - разбор входящих запросов (JSON, параметры пути);
//   - формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - проекцию серверных моделей в публичный JSON.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-appointments/internal/server/config"
	"github.com/IvanChernomyrdin/go-appointments/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-appointments/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-appointments/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-appointments/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - API: настройки публичного API (отдавать ли хэш пароля и т.п.).
type Handler struct {
	Svc *service.Services
	Log *logger.HTTPLogger
	API config.APIConfig
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, apiCfg config.APIConfig) *Handler {
	return &Handler{
		Svc: svc,
		Log: log,
		API: apiCfg,
	}
}

// WriteJSON пишет v в ответ как JSON с указанным статусом.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteMessage — ответ голой JSON-строкой, например "Appointment added".
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, msg)
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	WriteMessage(w, status, err.Error())
}

// decodeJSON читает тело запроса в dst.
// Превышение лимита тела даёт ErrPayloadTooLarge, остальное ErrBadJSON.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return serr.ErrPayloadTooLarge
		}
		return serr.ErrBadJSON
	}
	return nil
}

// pathID достаёт положительный числовой {id} из пути.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, serr.ErrInvalidInput
	}
	return id, nil
}

// writeServiceError маппит доменную ошибку в статус и тело ответа.
// Неизвестные ошибки логируются с id запроса, клиенту уходит "internal error".
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, serr.ErrNotJSON):
		WriteError(w, http.StatusUnsupportedMediaType, serr.ErrNotJSON)
	case errors.Is(err, serr.ErrPayloadTooLarge):
		WriteError(w, http.StatusRequestEntityTooLarge, serr.ErrPayloadTooLarge)
	case errors.Is(err, serr.ErrBadJSON):
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
	case errors.Is(err, serr.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, err)
	case errors.Is(err, serr.ErrNotFound):
		WriteError(w, http.StatusNotFound, err)
	case errors.Is(err, serr.ErrAlreadyExists):
		WriteError(w, http.StatusConflict, serr.ErrAlreadyExists)
	case errors.Is(err, serr.ErrNotVerified):
		WriteError(w, http.StatusUnauthorized, serr.ErrNotVerified)
	default:
		h.Log.Logger.Sugar().Errorw(
			op+" failed",
			"error", err,
			"request_id", middleware.RequestIDFromContext(r.Context()),
		)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
	}
}
