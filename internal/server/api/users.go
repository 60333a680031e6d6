// HTTP-хендлеры пользователей: регистрация, список, проверка пароля
package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-appointments/internal/server/models"
	shared "github.com/IvanChernomyrdin/go-appointments/internal/shared/models"
	"github.com/IvanChernomyrdin/go-appointments/internal/shared/utils"
)

// Тексты успешных ответов
const (
	MsgUserCreated  = "User Created Successfully"
	MsgUserVerified = "User Verified"
	MsgUserDeleted  = "User Deleted"
)

// toUser проецирует пользователя в публичный JSON.
// Хэш пароля попадает в ответ только при api.expose_password_hash.
func (h *Handler) toUser(u models.User) shared.User {
	out := shared.User{ID: u.ID, Username: u.Username}
	if h.API.ExposePasswordHash {
		out.Password = utils.Ptr(u.PasswordHash)
	}
	return out
}

// RegisterUser регистрирует нового пользователя.
//
// @Summary      Register user
// @Description  Creates a user. Username must be unique, the password is stored as a bcrypt hash.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body models.CredentialsRequest true "Username and password"
// @Success      201 {string} string "User Created Successfully"
// @Failure      400 {string} string "Invalid input or bad JSON"
// @Failure      409 {string} string "Username Taken"
// @Failure      415 {string} string "Error: Data must be sent as JSON"
// @Failure      429 {string} string "Too many requests"
// @Failure      500 {string} string "Internal server error"
// @Router       /user/add [post]
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req shared.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "register user", err)
		return
	}

	if _, err := h.Svc.Users.Register(r.Context(), req.Username, req.Password); err != nil {
		h.writeServiceError(w, r, "register user", err)
		return
	}

	WriteMessage(w, http.StatusCreated, MsgUserCreated)
}

// ListUsers godoc
// @Summary      List users
// @Description  Returns all users ordered by id. The password hash is omitted unless the server is configured to expose it.
// @Tags         users
// @Produce      json
// @Success      200 {array} models.User
// @Failure      500 {string} string "Internal server error"
// @Router       /user/get [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.Users.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "list users", err)
		return
	}

	out := make([]shared.User, 0, len(users))
	for _, u := range users {
		out = append(out, h.toUser(u))
	}
	WriteJSON(w, http.StatusOK, out)
}

// GetUser godoc
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200 {object} models.User
// @Failure      400 {string} string "Bad id"
// @Failure      404 {string} string "user not found"
// @Failure      500 {string} string "Internal server error"
// @Router       /user/get/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeServiceError(w, r, "get user", err)
		return
	}

	u, err := h.Svc.Users.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "get user", err)
		return
	}

	WriteJSON(w, http.StatusOK, h.toUser(u))
}

// VerifyUser проверяет пароль пользователя.
//
// Неизвестный username и неверный пароль дают один и тот же ответ 401,
// чтобы по нему нельзя было перебирать существующие имена.
//
// @Summary      Verify credentials
// @Description  Compares the password with the stored hash. No token or session is issued.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body models.CredentialsRequest true "Username and password"
// @Success      200 {string} string "User Verified"
// @Failure      400 {string} string "Bad JSON"
// @Failure      401 {string} string "User NOT Verified"
// @Failure      415 {string} string "Error: Data must be sent as JSON"
// @Failure      429 {string} string "Too many requests"
// @Failure      500 {string} string "Internal server error"
// @Router       /user/verification [post]
func (h *Handler) VerifyUser(w http.ResponseWriter, r *http.Request) {
	var req shared.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "verify user", err)
		return
	}

	if err := h.Svc.Users.Verify(r.Context(), req.Username, req.Password); err != nil {
		h.writeServiceError(w, r, "verify user", err)
		return
	}

	WriteMessage(w, http.StatusOK, MsgUserVerified)
}

// DeleteUser удаляет пользователя и, каскадом, все его встречи.
// Маршрут регистрируется только при api.allow_user_delete.
//
// @Summary      Delete user
// @Description  Deletes the user and all of their appointments. Available only when enabled in config.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200 {string} string "User Deleted"
// @Failure      400 {string} string "Bad id"
// @Failure      404 {string} string "user not found"
// @Failure      500 {string} string "Internal server error"
// @Router       /user/delete/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeServiceError(w, r, "delete user", err)
		return
	}

	if err := h.Svc.Users.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, "delete user", err)
		return
	}

	WriteMessage(w, http.StatusOK, MsgUserDeleted)
}
