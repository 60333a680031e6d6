package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-appointments/internal/shared/models"
)

var errNoUsername = errors.New("username is required: pass --username or run verify first")

// NewAppointmentsCmd создаёт группу команд для работы со встречами.
//
// Если --username не передан, используется имя из профиля (см. verify).
//
//	appointments appointments add --title Dentist --company Acme --date 2024-01-05 --time 09:00
//	appointments appointments list
//	appointments appointments list --all
//	appointments appointments get 3
//	appointments appointments delete 3
func NewAppointmentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"appt"},
		Short:   "Добавление, просмотр и удаление встреч",
	}

	cmd.AddCommand(newAppointmentAddCmd(app))
	cmd.AddCommand(newAppointmentListCmd(app))
	cmd.AddCommand(newAppointmentGetCmd(app))
	cmd.AddCommand(newAppointmentDeleteCmd(app))

	return cmd
}

func newAppointmentAddCmd(app *App) *cobra.Command {
	var req models.CreateAppointmentRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Новая встреча",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Username = app.username(req.Username)
			if req.Username == "" {
				return errNoUsername
			}
			msg, err := NewAPIClient(app.ServerURL, app.Insecure).AddAppointment(req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "appointment title")
	cmd.Flags().StringVar(&req.Company, "company", "", "company")
	cmd.Flags().StringVar(&req.Date, "date", "", "date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.Time, "time", "", "time, free-form (e.g. 09:00)")
	cmd.Flags().StringVar(&req.Username, "username", "", "owner (default: from profile)")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("company")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("time")

	return cmd
}

func newAppointmentListCmd(app *App) *cobra.Command {
	var (
		username string
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Встречи пользователя или все встречи (--all)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL, app.Insecure)

			var (
				list []models.Appointment
				err  error
			)
			if all {
				list, err = c.ListAppointments()
			} else {
				name := app.username(username)
				if name == "" {
					return errNoUsername
				}
				list, err = c.ListUserAppointments(name)
			}
			if err != nil {
				return err
			}

			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no appointments")
				return nil
			}
			for _, a := range list {
				printAppointment(cmd.OutOrStdout(), a)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "owner (default: from profile)")
	cmd.Flags().BoolVar(&all, "all", false, "list appointments of all users")
	cmd.MarkFlagsMutuallyExclusive("username", "all")

	return cmd
}

func newAppointmentGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Встреча по id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := NewAPIClient(app.ServerURL, app.Insecure).GetAppointment(id)
			if err != nil {
				return err
			}
			printAppointment(cmd.OutOrStdout(), a)
			return nil
		},
	}
}

func newAppointmentDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить встречу",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			msg, err := NewAPIClient(app.ServerURL, app.Insecure).DeleteAppointment(id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func printAppointment(w io.Writer, a models.Appointment) {
	fmt.Fprintf(w, "id=%d date=%s time=%q title=%q company=%q user_id=%d\n",
		a.ID, a.Date, a.Time, a.Title, a.Company, a.UserID)
}
