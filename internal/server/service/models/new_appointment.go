package models

// NewAppointment — входные данные для создания встречи.
// Владелец задаётся username, сервис сам резолвит его id.
type NewAppointment struct {
	Title    string
	Company  string
	Date     string // YYYY-MM-DD
	Time     string
	Username string
}
