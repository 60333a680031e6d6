package tests

import (
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/IvanChernomyrdin/go-appointments/internal/server/api"
	"github.com/IvanChernomyrdin/go-appointments/internal/server/config"
	"github.com/IvanChernomyrdin/go-appointments/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-appointments/internal/server/service"
	repoMocks "github.com/IvanChernomyrdin/go-appointments/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-appointments/internal/shared/logger"
)

var testHasher = crypto.BcryptHasher{Cost: bcrypt.MinCost}

type fixture struct {
	h     *api.Handler
	users *repoMocks.MockUsersRepo
	appts *repoMocks.MockAppointmentsRepo
}

// helper: создаёт Handler поверх настоящих сервисов и мок-репозиториев
func newFixture(t *testing.T, apiCfg config.APIConfig) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := repoMocks.NewMockUsersRepo(ctrl)
	appts := repoMocks.NewMockAppointmentsRepo(ctrl)

	svc := &service.Services{
		Users:        service.NewUsersService(users, testHasher),
		Appointments: service.NewAppointmentsService(users, appts),
	}
	log := logger.New(logger.Options{File: filepath.Join(t.TempDir(), "api.log")})

	return fixture{
		h:     api.NewHandler(svc, log, apiCfg),
		users: users,
		appts: appts,
	}
}
