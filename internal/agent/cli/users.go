package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-appointments/internal/shared/models"
	"github.com/IvanChernomyrdin/go-appointments/internal/shared/utils"
)

// NewUsersCmd создаёт группу команд для просмотра пользователей.
//
//	appointments users list
//	appointments users get 1
func NewUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Просмотр пользователей",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Список пользователей",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := NewAPIClient(app.ServerURL, app.Insecure).ListUsers()
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no users")
				return nil
			}
			for _, u := range users {
				printUser(cmd.OutOrStdout(), u)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Пользователь по id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u, err := NewAPIClient(app.ServerURL, app.Insecure).GetUser(id)
			if err != nil {
				return err
			}
			printUser(cmd.OutOrStdout(), u)
			return nil
		},
	})

	return cmd
}

// printUser печатает пользователя одной строкой. Хэш пароля выводится,
// только если сервер его отдал.
func printUser(w io.Writer, u models.User) {
	if hash := utils.Deref(u.Password); hash != "" {
		fmt.Fprintf(w, "id=%d username=%s password=%s\n", u.ID, u.Username, hash)
		return
	}
	fmt.Fprintf(w, "id=%d username=%s\n", u.ID, u.Username)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return id, nil
}
