package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Пример использования:
//
//	appointments register --username alice --password StrongPass123
//
// При успехе печатается сообщение сервера, при занятом имени команда
// возвращает ошибку "Username Taken".
func NewRegisterCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  appointments register --username alice --password StrongPass123
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL, app.Insecure)
			msg, err := c.Register(username, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username (up to 20 characters)")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")

	return cmd
}
