package recording

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-goals-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type recorderMocks struct {
	store    *mocks.MockStoreRepository
	employee *mocks.MockEmployeeRepository
	goal     *mocks.MockGoalRepository
	sale     *mocks.MockSaleRepository
	offDay   *mocks.MockOffDayRepository
}

func newTestService(t *testing.T) (*Service, recorderMocks) {
	ctrl := gomock.NewController(t)

	m := recorderMocks{
		store:    mocks.NewMockStoreRepository(ctrl),
		employee: mocks.NewMockEmployeeRepository(ctrl),
		goal:     mocks.NewMockGoalRepository(ctrl),
		sale:     mocks.NewMockSaleRepository(ctrl),
		offDay:   mocks.NewMockOffDayRepository(ctrl),
	}

	return &Service{
		storeRepo:    m.store,
		employeeRepo: m.employee,
		goalRepo:     m.goal,
		saleRepo:     m.sale,
		offDayRepo:   m.offDay,
	}, m
}

func stringPtr(s string) *string {
	return &s
}

func decimalPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

var (
	today = time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC)
	loja  = &domain.Store{ID: "loja-1", Name: "Loja Centro", Active: true}
	ana   = &domain.Employee{ID: "ana", StoreID: "loja-1", Name: "Ana", Active: true}
)

func TestService_UpsertGoal(t *testing.T) {
	t.Run("Meta da loja com pesos parciais", func(t *testing.T) {
		service, m := newTestService(t)

		m.store.EXPECT().GetByID(gomock.Any(), "loja-1").Return(loja, nil)
		m.goal.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, goal *domain.MonthlyGoal) error {
				assert.Nil(t, goal.EmployeeID)
				assert.Equal(t, "202511", goal.MonthReference)
				assert.True(t, goal.SuperTargetValue.Valid)
				goal.ID = "meta-1"
				return nil
			})

		goal, err := service.UpsertGoal(context.Background(), "loja-1", &domain.UpsertGoalRequest{
			MonthReference:   "202511",
			TargetValue:      decimal.NewFromInt(6000),
			SuperTargetValue: decimalPtr(7500),
			DailyWeights: map[string]float64{
				"2025-11-01": 10,
				"2025-11-29": 0,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "meta-1", goal.ID)
		assert.True(t, goal.IsStoreGoal())
	})

	t.Run("Meta individual", func(t *testing.T) {
		service, m := newTestService(t)

		m.store.EXPECT().GetByID(gomock.Any(), "loja-1").Return(loja, nil)
		m.employee.EXPECT().GetByID(gomock.Any(), "ana").Return(ana, nil)
		m.goal.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		goal, err := service.UpsertGoal(context.Background(), "loja-1", &domain.UpsertGoalRequest{
			EmployeeID:     stringPtr("ana"),
			MonthReference: "202511",
			TargetValue:    decimal.NewFromInt(3000),
		})
		require.NoError(t, err)
		assert.False(t, goal.IsStoreGoal())
		assert.False(t, goal.SuperTargetValue.Valid)
	})
}

func TestService_UpsertGoal_Validacao(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.UpsertGoalRequest
		expected error
		code     string
	}{
		{
			name:     "Referência de mês inválida",
			request:  &domain.UpsertGoalRequest{MonthReference: "202513", TargetValue: decimal.NewFromInt(100)},
			expected: ErrInvalidMonthReference,
			code:     apiErrors.ErrInvalidCalendar,
		},
		{
			name:     "Meta negativa",
			request:  &domain.UpsertGoalRequest{MonthReference: "202511", TargetValue: decimal.NewFromInt(-1)},
			expected: ErrNegativeTarget,
			code:     apiErrors.ErrInvalidFormat,
		},
		{
			name: "Super meta negativa",
			request: &domain.UpsertGoalRequest{
				MonthReference:   "202511",
				TargetValue:      decimal.NewFromInt(100),
				SuperTargetValue: decimalPtr(-10),
			},
			expected: ErrNegativeTarget,
			code:     apiErrors.ErrInvalidFormat,
		},
		{
			name: "Peso com data de outro mês",
			request: &domain.UpsertGoalRequest{
				MonthReference: "202511",
				TargetValue:    decimal.NewFromInt(100),
				DailyWeights:   map[string]float64{"2025-12-01": 5},
			},
			expected: ErrInvalidWeights,
			code:     apiErrors.ErrInvalidWeights,
		},
		{
			name: "Peso negativo",
			request: &domain.UpsertGoalRequest{
				MonthReference: "202511",
				TargetValue:    decimal.NewFromInt(100),
				DailyWeights:   map[string]float64{"2025-11-03": -5},
			},
			expected: ErrInvalidWeights,
			code:     apiErrors.ErrInvalidWeights,
		},
		{
			name: "Chave que não é data",
			request: &domain.UpsertGoalRequest{
				MonthReference: "202511",
				TargetValue:    decimal.NewFromInt(100),
				DailyWeights:   map[string]float64{"03/11/2025": 5},
			},
			expected: ErrInvalidWeights,
			code:     apiErrors.ErrInvalidWeights,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t)

			_, err := service.UpsertGoal(context.Background(), "loja-1", tt.request)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)

			var recordErr *RecordError
			require.True(t, errors.As(err, &recordErr))
			assert.Equal(t, tt.code, recordErr.Code)
		})
	}
}

func TestService_RegisterSale(t *testing.T) {
	deactivatedAt := time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC)
	duda := &domain.Employee{ID: "duda", StoreID: "loja-1", Name: "Duda", DeactivatedAt: &deactivatedAt}

	tests := []struct {
		name     string
		request  *domain.RegisterSaleRequest
		setup    func(m recorderMocks)
		expected error
		soldAt   time.Time
	}{
		{
			name:    "Venda sem data é de hoje",
			request: &domain.RegisterSaleRequest{EmployeeID: "ana", Amount: decimal.NewFromInt(250)},
			setup: func(m recorderMocks) {
				m.store.EXPECT().GetByID(gomock.Any(), "loja-1").Return(loja, nil)
				m.employee.EXPECT().GetByID(gomock.Any(), "ana").Return(ana, nil)
				m.sale.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			soldAt: today,
		},
		{
			name:    "Venda retroativa",
			request: &domain.RegisterSaleRequest{EmployeeID: "ana", Amount: decimal.NewFromInt(90), SoldAt: "2025-11-03"},
			setup: func(m recorderMocks) {
				m.store.EXPECT().GetByID(gomock.Any(), "loja-1").Return(loja, nil)
				m.employee.EXPECT().GetByID(gomock.Any(), "ana").Return(ana, nil)
				m.sale.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			soldAt: time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Valor zero",
			request:  &domain.RegisterSaleRequest{EmployeeID: "ana", Amount: decimal.Zero},
			setup:    func(m recorderMocks) {},
			expected: ErrInvalidSale,
		},
		{
			name:     "Data futura",
			request:  &domain.RegisterSaleRequest{EmployeeID: "ana", Amount: decimal.NewFromInt(10), SoldAt: "2025-11-12"},
			setup:    func(m recorderMocks) {},
			expected: ErrInvalidSale,
		},
		{
			name:     "Data em formato inválido",
			request:  &domain.RegisterSaleRequest{EmployeeID: "ana", Amount: decimal.NewFromInt(10), SoldAt: "11/11/2025"},
			setup:    func(m recorderMocks) {},
			expected: ErrInvalidDate,
		},
		{
			name:    "Colaboradora desligada antes da venda",
			request: &domain.RegisterSaleRequest{EmployeeID: "duda", Amount: decimal.NewFromInt(10)},
			setup: func(m recorderMocks) {
				m.store.EXPECT().GetByID(gomock.Any(), "loja-1").Return(loja, nil)
				m.employee.EXPECT().GetByID(gomock.Any(), "duda").Return(duda, nil)
			},
			expected: ErrInvalidSale,
		},
		{
			name:    "Colaboradora de outra loja",
			request: &domain.RegisterSaleRequest{EmployeeID: "zoe", Amount: decimal.NewFromInt(10)},
			setup: func(m recorderMocks) {
				m.store.EXPECT().GetByID(gomock.Any(), "loja-1").Return(loja, nil)
				m.employee.EXPECT().GetByID(gomock.Any(), "zoe").Return(&domain.Employee{ID: "zoe", StoreID: "loja-2"}, nil)
			},
			expected: ErrEmployeeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			sale, err := service.RegisterSale(context.Background(), "loja-1", tt.request, today)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				assert.Nil(t, sale)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.soldAt, sale.SoldAt)
			assert.Equal(t, "loja-1", sale.StoreID)
			assert.True(t, sale.Amount.Equal(tt.request.Amount))
		})
	}
}

func TestService_ScheduleOffDay(t *testing.T) {
	service, m := newTestService(t)

	m.employee.EXPECT().GetByID(gomock.Any(), "ana").Return(ana, nil)
	m.offDay.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, offDay *domain.OffDay) error {
			offDay.ID = "folga-1"
			return nil
		})

	offDay, err := service.ScheduleOffDay(context.Background(), "loja-1", &domain.ScheduleOffDayRequest{
		EmployeeID: "ana",
		Date:       "2025-11-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "folga-1", offDay.ID)
	assert.Equal(t, time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC), offDay.Date)

	_, err = service.ScheduleOffDay(context.Background(), "loja-1", &domain.ScheduleOffDayRequest{EmployeeID: "ana"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestService_RemoveOffDay(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m recorderMocks)
		expected error
	}{
		{
			name: "Remove folga da própria loja",
			setup: func(m recorderMocks) {
				m.offDay.EXPECT().GetByID(gomock.Any(), "folga-1").Return(&domain.OffDay{ID: "folga-1", StoreID: "loja-1"}, nil)
				m.offDay.EXPECT().Delete(gomock.Any(), "folga-1").Return(nil)
			},
		},
		{
			name: "Folga de outra loja não é removida",
			setup: func(m recorderMocks) {
				m.offDay.EXPECT().GetByID(gomock.Any(), "folga-1").Return(&domain.OffDay{ID: "folga-1", StoreID: "loja-2"}, nil)
			},
			expected: ErrOffDayNotFound,
		},
		{
			name: "Folga inexistente",
			setup: func(m recorderMocks) {
				m.offDay.EXPECT().GetByID(gomock.Any(), "folga-1").Return(nil, nil)
			},
			expected: ErrOffDayNotFound,
		},
		{
			name: "Falha no banco ao remover",
			setup: func(m recorderMocks) {
				m.offDay.EXPECT().GetByID(gomock.Any(), "folga-1").Return(&domain.OffDay{ID: "folga-1", StoreID: "loja-1"}, nil)
				m.offDay.EXPECT().Delete(gomock.Any(), "folga-1").Return(errors.New("timeout"))
			},
			expected: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			err := service.RemoveOffDay(context.Background(), "loja-1", "folga-1")
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestService_ListOffDays(t *testing.T) {
	service, m := newTestService(t)

	from := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	m.offDay.EXPECT().ListByStore(gomock.Any(), "loja-1", from, to).Return(nil, nil)

	offDays, err := service.ListOffDays(context.Background(), "loja-1", 2025, time.November)
	require.NoError(t, err)
	assert.NotNil(t, offDays)
	assert.Empty(t, offDays)

	_, err = service.ListOffDays(context.Background(), "loja-1", 2025, 0)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
