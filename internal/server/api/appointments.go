// HTTP-хендлеры встреч
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-appointments/internal/server/models"
	svcmodels "github.com/IvanChernomyrdin/go-appointments/internal/server/service/models"
	shared "github.com/IvanChernomyrdin/go-appointments/internal/shared/models"
)

const (
	MsgAppointmentAdded   = "Appointment added"
	MsgAppointmentDeleted = "Appointment Deleted"
)

func toAppointment(a models.Appointment) shared.Appointment {
	return shared.Appointment{
		ID:      a.ID,
		Title:   a.Title,
		Company: a.Company,
		Date:    a.Date.Format(models.DateLayout),
		Time:    a.Time,
		UserID:  a.UserID,
	}
}

func toAppointments(list []models.Appointment) []shared.Appointment {
	out := make([]shared.Appointment, 0, len(list))
	for _, a := range list {
		out = append(out, toAppointment(a))
	}
	return out
}

// AddAppointment создаёт встречу для пользователя, указанного по username.
//
// Возможные ошибки:
//   - 400: неверный JSON, пустые поля или дата не в формате YYYY-MM-DD;
//   - 404: пользователя с таким username нет, встреча не создаётся;
//   - 500: ошибка хранилища.
//
// @Summary      Add appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        request body models.CreateAppointmentRequest true "Appointment"
// @Success      201 {string} string "Appointment added"
// @Failure      400 {string} string "Invalid input or bad JSON"
// @Failure      404 {string} string "user not found"
// @Failure      500 {string} string "Internal server error"
// @Router       /appointment/add [post]
func (h *Handler) AddAppointment(w http.ResponseWriter, r *http.Request) {
	var req shared.CreateAppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "add appointment", err)
		return
	}

	_, err := h.Svc.Appointments.Add(r.Context(), svcmodels.NewAppointment{
		Title:    req.Title,
		Company:  req.Company,
		Date:     req.Date,
		Time:     req.Time,
		Username: req.Username,
	})
	if err != nil {
		h.writeServiceError(w, r, "add appointment", err)
		return
	}

	WriteMessage(w, http.StatusCreated, MsgAppointmentAdded)
}

// ListAppointments godoc
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Success      200 {array} models.Appointment
// @Failure      500 {string} string "Internal server error"
// @Router       /appointment/get/data [get]
func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.Appointments.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "list appointments", err)
		return
	}

	WriteJSON(w, http.StatusOK, toAppointments(list))
}

// ListUserAppointments godoc
// @Summary      List appointments of a user
// @Tags         appointments
// @Produce      json
// @Param        username   path      string  true  "Username"
// @Success      200 {array} models.Appointment
// @Failure      404 {string} string "user not found"
// @Failure      500 {string} string "Internal server error"
// @Router       /appointment/get/data/{username} [get]
func (h *Handler) ListUserAppointments(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.Appointments.ListByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.writeServiceError(w, r, "list user appointments", err)
		return
	}

	WriteJSON(w, http.StatusOK, toAppointments(list))
}

// GetAppointment godoc
// @Summary      Get appointment
// @Tags         appointments
// @Produce      json
// @Param        id   path      int  true  "Appointment ID"
// @Success      200 {object} models.Appointment
// @Failure      400 {string} string "Bad id"
// @Failure      404 {string} string "appointment not found"
// @Failure      500 {string} string "Internal server error"
// @Router       /appointment/get/{id} [get]
func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeServiceError(w, r, "get appointment", err)
		return
	}

	a, err := h.Svc.Appointments.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "get appointment", err)
		return
	}

	WriteJSON(w, http.StatusOK, toAppointment(a))
}

// DeleteAppointment godoc
// @Summary      Delete appointment
// @Tags         appointments
// @Produce      json
// @Param        id   path      int  true  "Appointment ID"
// @Success      200 {string} string "Appointment Deleted"
// @Failure      400 {string} string "Bad id"
// @Failure      404 {string} string "appointment not found"
// @Failure      500 {string} string "Internal server error"
// @Router       /appointment/delete/{id} [delete]
func (h *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeServiceError(w, r, "delete appointment", err)
		return
	}

	if err := h.Svc.Appointments.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, "delete appointment", err)
		return
	}

	WriteMessage(w, http.StatusOK, MsgAppointmentDeleted)
}
