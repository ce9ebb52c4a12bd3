package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/sales-goals-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/scheduler/mocks"
	"github.com/vfg2006/sales-goals-api/internal/usecases/goaling"
	goalmocks "github.com/vfg2006/sales-goals-api/internal/usecases/goaling/mocks"
	"github.com/vfg2006/sales-goals-api/pkg/apiErrors"
	"github.com/vfg2006/sales-goals-api/pkg/goalcalc"
	"go.uber.org/mock/gomock"
)

func TestDailyGoalDigestService_sendDailyDigests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStoreRepo := repomocks.NewMockStoreRepository(ctrl)
	mockGoaler := goalmocks.NewMockGoaler(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)

	today := time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC)
	generatedAt := time.Date(2025, time.November, 11, 8, 0, 0, 0, time.UTC)

	service := &DailyGoalDigestService{
		config:      DailyGoalDigestConfig{MaxConcurrentJobs: 2, Enabled: true},
		storeRepo:   mockStoreRepo,
		goalService: mockGoaler,
		notifier:    mockNotifier,
		today:       func() time.Time { return today },
		now:         func() time.Time { return generatedAt },
	}

	lojaCentro := &domain.Store{ID: "loja-1", Name: "Loja Centro"}
	lojaShopping := &domain.Store{ID: "loja-2", Name: "Loja Shopping"}
	lojaBairro := &domain.Store{ID: "loja-3", Name: "Loja Bairro"}
	dailyGoal := &domain.StoreDailyGoal{StoreID: "loja-1", Date: today}

	mockStoreRepo.EXPECT().
		ListActive(gomock.Any()).
		Return([]*domain.Store{lojaCentro, lojaShopping, lojaBairro}, nil)

	mockGoaler.EXPECT().GetStoreDailyGoal(gomock.Any(), "loja-1", today).Return(dailyGoal, nil)
	mockGoaler.EXPECT().
		GetStoreDailyGoal(gomock.Any(), "loja-2", today).
		Return(nil, goaling.NewGoalError(goaling.ErrGoalNotFound, apiErrors.ErrGoalNotFound, "loja-2", "202511"))
	mockGoaler.EXPECT().
		GetStoreDailyGoal(gomock.Any(), "loja-3", today).
		Return(nil, errors.New("conexão perdida"))

	mockNotifier.EXPECT().
		NotifyDailyGoals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, digest *domain.DailyGoalDigest) error {
			assert.Equal(t, lojaCentro, digest.Store)
			assert.Equal(t, dailyGoal, digest.Goal)
			assert.Equal(t, generatedAt, digest.GeneratedAt)
			return nil
		})

	service.sendDailyDigests(context.Background())

	status := service.GetStatus()
	assert.Equal(t, map[string]int{"sent": 1, "skipped": 1, "failed": 1}, status["last_run"])
	assert.Equal(t, generatedAt, status["last_completed_at"])
	assert.Equal(t, false, status["running"])
}

func TestDailyGoalDigestService_ExecucaoSobreposta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada é esperada nos mocks
	service := &DailyGoalDigestService{
		config:      DailyGoalDigestConfig{MaxConcurrentJobs: 1},
		storeRepo:   repomocks.NewMockStoreRepository(ctrl),
		goalService: goalmocks.NewMockGoaler(ctrl),
		notifier:    mocks.NewMockNotifier(ctrl),
		today:       time.Now,
		now:         time.Now,
		syncRunning: true,
	}

	service.sendDailyDigests(context.Background())
	service.TriggerManualSync()

	assert.True(t, service.GetStatus()["running"].(bool))
}

func TestFormatDailyGoalMessage(t *testing.T) {
	digest := &domain.DailyGoalDigest{
		Store: &domain.Store{ID: "loja-1", Name: "Loja Centro"},
		Date:  time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC),
		Goal: &domain.StoreDailyGoal{
			Target: domain.GoalPace{
				MonthlyTarget:  60000,
				AchievedToDate: 23000,
				Dynamic:        2300,
				Situation:      goalcalc.SituationAhead,
				PercentReached: 38.33,
			},
			Employees: []domain.EmployeeGoalView{
				{EmployeeName: "Ana", Final: 1475},
				{EmployeeName: "Carla", OnLeave: true},
			},
		},
	}

	message := FormatDailyGoalMessage(digest)

	require.Contains(t, message, "*Loja Centro* - metas de 11/11/2025")
	assert.Contains(t, message, "Meta do dia: R$ 2.300,00 (adiantada)")
	assert.Contains(t, message, "Realizado no mês: R$ 23.000,00 de R$ 60.000,00 (38.33%)")
	assert.Contains(t, message, "- Ana: R$ 1.475,00")
	assert.Contains(t, message, "- Carla: folga")
	assert.NotContains(t, message, "Super meta")
}

func TestMoney(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "R$ 0,00"},
		{115, "R$ 115,00"},
		{1234.5, "R$ 1.234,50"},
		{1000000, "R$ 1.000.000,00"},
		{107.499, "R$ 107,50"},
		{-20, "-R$ 20,00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, money(tt.value))
		})
	}
}
