package api

import (
	"net/url"
	"strconv"

	"github.com/IvanChernomyrdin/go-appointments/internal/shared/models"
)

// AddAppointment создаёт встречу (POST /appointment/add).
func (c *Client) AddAppointment(req models.CreateAppointmentRequest) (string, error) {
	var msg string
	err := c.PostJSON("/appointment/add", req, &msg)
	return msg, err
}

// ListAppointments возвращает все встречи (GET /appointment/get/data).
func (c *Client) ListAppointments() ([]models.Appointment, error) {
	var list []models.Appointment
	err := c.GetJSON("/appointment/get/data", &list)
	return list, err
}

// ListUserAppointments возвращает встречи пользователя
// (GET /appointment/get/data/{username}).
func (c *Client) ListUserAppointments(username string) ([]models.Appointment, error) {
	var list []models.Appointment
	err := c.GetJSON("/appointment/get/data/"+url.PathEscape(username), &list)
	return list, err
}

// GetAppointment возвращает встречу по id (GET /appointment/get/{id}).
func (c *Client) GetAppointment(id int64) (models.Appointment, error) {
	var a models.Appointment
	err := c.GetJSON("/appointment/get/"+strconv.FormatInt(id, 10), &a)
	return a, err
}

// DeleteAppointment удаляет встречу (DELETE /appointment/delete/{id}).
func (c *Client) DeleteAppointment(id int64) (string, error) {
	var msg string
	err := c.DeleteJSON("/appointment/delete/"+strconv.FormatInt(id, 10), &msg)
	return msg, err
}
