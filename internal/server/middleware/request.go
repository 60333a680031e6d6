// Проверка Content-Type тела запроса
package middleware

import (
	"encoding/json"
	"mime"
	"net/http"

	serr "github.com/IvanChernomyrdin/go-appointments/internal/shared/errors"
)

const jsonContentType = "application/json"

// RequireJSON пропускает только запросы с Content-Type: application/json
// (параметры вроде charset допускаются). Иначе 415 и сообщение ErrNotJSON.
func RequireJSON() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mt != jsonContentType {
				writeJSONString(w, http.StatusUnsupportedMediaType, serr.ErrNotJSON.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// writeJSONString отвечает голой JSON-строкой, как и хендлеры api.
func writeJSONString(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(msg)
}
