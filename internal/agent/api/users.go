// В этом файле описаны методы клиента для работы с пользователями:
// регистрация, проверка пароля, список и получение по id.
package api

import (
	"strconv"

	"github.com/IvanChernomyrdin/go-appointments/internal/shared/models"
)

// Register регистрирует пользователя.
//
// Отправляет POST /user/add и возвращает сообщение сервера
// ("User Created Successfully").
func (c *Client) Register(username, password string) (string, error) {
	var msg string
	err := c.PostJSON("/user/add", models.CredentialsRequest{Username: username, Password: password}, &msg)
	return msg, err
}

// Verify проверяет пароль пользователя.
//
// Отправляет POST /user/verification. Неверный пароль и несуществующий
// пользователь дают одинаковую ошибку "User NOT Verified" со статусом 401.
func (c *Client) Verify(username, password string) (string, error) {
	var msg string
	err := c.PostJSON("/user/verification", models.CredentialsRequest{Username: username, Password: password}, &msg)
	return msg, err
}

// ListUsers возвращает всех пользователей (GET /user/get).
func (c *Client) ListUsers() ([]models.User, error) {
	var users []models.User
	err := c.GetJSON("/user/get", &users)
	return users, err
}

// GetUser возвращает пользователя по id (GET /user/get/{id}).
func (c *Client) GetUser(id int64) (models.User, error) {
	var u models.User
	err := c.GetJSON("/user/get/"+strconv.FormatInt(id, 10), &u)
	return u, err
}
