// Package cli реализует командный интерфейс (CLI) клиента сервиса записи на встречи.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локального профиля (адрес сервера, подтверждённый username);
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-appointments/internal/agent/config"
)

// DefaultServerURL — адрес сервера, если он не задан ни флагом, ни профилем.
const DefaultServerURL = "http://127.0.0.1:8080"

// App содержит состояние CLI-приложения, разделяемое между командами.
type App struct {
	// ServerURL — базовый URL сервера (например, "http://127.0.0.1:8080").
	ServerURL string
	// Insecure — не проверять TLS-сертификат сервера.
	Insecure bool

	// ProfilePath — путь к файлу профиля.
	ProfilePath string
	// Profile — загруженный профиль. Может быть nil, если загрузка не выполнялась.
	Profile *config.Profile
}

// username возвращает явно переданное имя или имя из профиля.
func (a *App) username(flag string) string {
	if flag != "" {
		return flag
	}
	if a.Profile != nil {
		return a.Profile.Username
	}
	return ""
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// В PersistentPreRunE загружается профиль. Адрес сервера из профиля
// используется, только если флаг --server не передан явно.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{ServerURL: DefaultServerURL}

	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "Appointments CLI — пользователи и записи на встречи",
		Long: `Appointments CLI.

Команды:
  register      Регистрация нового пользователя
  verify        Проверка пароля (сохраняет username в профиль)
  users         Список пользователей и просмотр по id
  appointments  Добавление, просмотр и удаление встреч
  version       Версия и дата сборки

Примеры:

Регистрация:
  appointments register --username alice --password StrongPass123

Проверка пароля:
  echo StrongPass123 | appointments verify --username alice --password-stdin

Новая встреча для пользователя из профиля:
  appointments appointments add --title Dentist --company Acme --date 2024-01-05 --time 09:00
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.ProfilePath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.ProfilePath = p
			}

			prof, err := config.Load(app.ProfilePath)
			if err != nil {
				return fmt.Errorf("load profile %s: %w", app.ProfilePath, err)
			}
			app.Profile = prof

			if !cmd.Flags().Changed("server") && prof.ServerURL != "" {
				app.ServerURL = prof.ServerURL
			}
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", DefaultServerURL, "server base URL")
	cmd.PersistentFlags().BoolVar(&app.Insecure, "insecure", false, "skip TLS certificate verification")
	cmd.PersistentFlags().StringVar(&app.ProfilePath, "profile", "", "profile path (default ~/.appointments/profile.json)")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewVerifyCmd(app))
	cmd.AddCommand(NewUsersCmd(app))
	cmd.AddCommand(NewAppointmentsCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке сообщение выводится в stderr, процесс завершается с кодом 1.
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
