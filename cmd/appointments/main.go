// Package main содержит точку входа CLI-клиента сервиса записи на встречи.
//
// Версия и дата сборки задаются через -ldflags:
//
//	go build -ldflags "-X main.buildVersion=1.0.0 -X main.buildDate=2026-10-16" ./cmd/appointments
package main

import "github.com/IvanChernomyrdin/go-appointments/internal/agent/cli"

var (
	// по умолчанию "dev"
	buildVersion = "dev"
	// по умолчанию "unknown"
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
