// Серверные модели пользователя и встречи
package models

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

type Appointment struct {
	ID      int64
	Title   string
	Company string
	Date    time.Time
	Time    string
	UserID  int64
}

// DateLayout — формат даты встречи на входе и выходе API.
const DateLayout = "2006-01-02"
