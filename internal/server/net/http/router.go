// Package http реализует маршрутизацию HTTP-слоя сервиса записи на встречи.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - порядок middleware: recover, request id, access-лог, лимит тела;
//   - проверку Content-Type и rate limit на регистрации и проверке пароля.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-appointments/internal/server/api"
	"github.com/IvanChernomyrdin/go-appointments/internal/server/middleware"

	_ "github.com/IvanChernomyrdin/go-appointments/swagger/docs"
)

// Options — то, что роутер берёт из конфига сервера.
type Options struct {
	// доверять X-Forwarded-For / X-Real-IP (сервер за прокси)
	TrustProxy bool
	// лимит тела запроса в байтах, 0 — без лимита
	MaxBodyBytes int64
	// nil — rate limit выключен
	Limiter *middleware.RateLimiter
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - /appointment/* — встречи;
//   - /user/* — пользователи, DELETE /user/delete/{id} только при api.allow_user_delete;
//   - /swagger/* — документация API.
func NewRouter(h *api.Handler, opts Options) http.Handler {
	r := chi.NewRouter()

	// паника в хендлере превращается в 500
	r.Use(chimw.Recoverer)
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestID())
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	// при превышении чтение тела вернёт *http.MaxBytesError, хендлер отвечает 413
	if opts.MaxBodyBytes > 0 {
		r.Use(chimw.RequestSize(opts.MaxBodyBytes))
	}

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/appointment", func(r chi.Router) {
		r.Post("/add", h.AddAppointment)
		r.Get("/get/data", h.ListAppointments)
		r.Get("/get/data/{username}", h.ListUserAppointments)
		r.Get("/get/{id}", h.GetAppointment)
		r.Delete("/delete/{id}", h.DeleteAppointment)
	})

	r.Route("/user", func(r chi.Router) {
		r.Get("/get", h.ListUsers)
		r.Get("/get/{id}", h.GetUser)
		if h.API.AllowUserDelete {
			r.Delete("/delete/{id}", h.DeleteUser)
		}

		// тут считается bcrypt: ограничиваем частоту и принимаем только JSON
		r.Group(func(r chi.Router) {
			if opts.Limiter != nil {
				r.Use(opts.Limiter.Middleware())
			}
			r.Use(middleware.RequireJSON())
			r.Post("/add", h.RegisterUser)
			r.Post("/verification", h.VerifyUser)
		})
	})

	return r
}
