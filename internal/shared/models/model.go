package models

// Appointment — JSON-проекция записи о встрече, используемая в HTTP API.
//
// Поля:
//   - ID: идентификатор записи
//   - Title: название встречи
//   - Company: компания, с которой назначена встреча
//   - Date: дата в формате YYYY-MM-DD
//   - Time: время как строка, сервер его не разбирает
//   - UserID: владелец записи
type Appointment struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	UserID  int64  `json:"user_id"`
}

// User — JSON-проекция пользователя.
//
// Password заполняется только если сервер явно настроен отдавать хэш
// (api.expose_password_hash). По умолчанию поле отсутствует в ответе.
type User struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Password *string `json:"password,omitempty"`
}

// CreateAppointmentRequest — запрос на создание встречи.
//
// Используется в:
//
//	POST /appointment/add
//
// Владелец указывается по username, сервер сам находит его id.
type CreateAppointmentRequest struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Username string `json:"username"`
}

// CredentialsRequest — тело запросов регистрации и проверки пароля.
//
// Используется в:
//
//	POST /user/add
//	POST /user/verification
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
