package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/IvanChernomyrdin/go-appointments/internal/agent/config"
)

// NewVerifyCmd создаёт CLI-команду проверки пароля.
//
// Пароль читается из STDIN (--password-stdin) или из терминала со скрытым вводом.
// При успехе username и адрес сервера сохраняются в профиль, чтобы команды
// appointments могли обходиться без --username.
//
// Пример использования:
//
//	echo StrongPass123 | appointments verify --username alice --password-stdin
func NewVerifyCmd(app *App) *cobra.Command {
	var (
		username  string
		fromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Проверка пароля пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := app.username(username)
			if name == "" {
				return errors.New("username is required: pass --username")
			}

			password, err := ReadPassword(cmd, fromStdin)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL, app.Insecure)
			msg, err := c.Verify(name, password)
			if err != nil {
				return err
			}

			if app.Profile == nil {
				app.Profile = &config.Profile{}
			}
			app.Profile.Username = name
			app.Profile.ServerURL = app.ServerURL
			if app.ProfilePath != "" {
				if err := config.Save(app.ProfilePath, app.Profile); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username (default: from profile)")
	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "read password from STDIN")

	return cmd
}

// readPassword читает пароль.
//
// Режимы:
//   - fromStdin=true: читает STDIN целиком и отрезает завершающий перевод строки;
//   - fromStdin=false: читает из терминала со скрытым вводом. Если stdin не терминал,
//     возвращает ошибку с подсказкой про --password-stdin.
//
// Пустой пароль считается ошибкой.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		pw := bytes.TrimRight(b, "\r\n")
		if len(pw) == 0 {
			return "", errors.New("empty password on stdin")
		}
		return string(pw), nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password-stdin")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	pwBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	pw := strings.TrimSpace(string(pwBytes))
	if pw == "" {
		return "", errors.New("empty password")
	}
	return pw, nil
}
