package recording

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goals-api/infrastructure/repository"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/pkg/apiErrors"
	"github.com/vfg2006/sales-goals-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Recorder cadastra os insumos do cálculo de metas: metas mensais, vendas e folgas
type Recorder interface {
	UpsertGoal(ctx context.Context, storeID string, req *domain.UpsertGoalRequest) (*domain.MonthlyGoal, error)
	RegisterSale(ctx context.Context, storeID string, req *domain.RegisterSaleRequest, today time.Time) (*domain.Sale, error)
	ScheduleOffDay(ctx context.Context, storeID string, req *domain.ScheduleOffDayRequest) (*domain.OffDay, error)
	RemoveOffDay(ctx context.Context, storeID, offDayID string) error
	ListOffDays(ctx context.Context, storeID string, year int, month time.Month) ([]*domain.OffDay, error)
}

type Service struct {
	storeRepo    repository.StoreRepository
	employeeRepo repository.EmployeeRepository
	goalRepo     repository.GoalRepository
	saleRepo     repository.SaleRepository
	offDayRepo   repository.OffDayRepository
}

func NewService(
	storeRepo repository.StoreRepository,
	employeeRepo repository.EmployeeRepository,
	goalRepo repository.GoalRepository,
	saleRepo repository.SaleRepository,
	offDayRepo repository.OffDayRepository,
) Recorder {
	return &Service{
		storeRepo:    storeRepo,
		employeeRepo: employeeRepo,
		goalRepo:     goalRepo,
		saleRepo:     saleRepo,
		offDayRepo:   offDayRepo,
	}
}

// UpsertGoal grava a meta do mês. Sem EmployeeID a meta é da loja.
// Os pesos não precisam somar 100: dias ausentes do mapa pesam zero.
func (s *Service) UpsertGoal(ctx context.Context, storeID string, req *domain.UpsertGoalRequest) (*domain.MonthlyGoal, error) {
	if req == nil {
		return nil, NewRecordError(ErrInvalidMonthReference, apiErrors.ErrMissingRequiredData, storeID, "corpo da requisição ausente")
	}

	year, month, err := domain.ParseMonthReference(req.MonthReference)
	if err != nil {
		return nil, NewRecordError(ErrInvalidMonthReference, apiErrors.ErrInvalidCalendar, storeID, err.Error())
	}

	if req.TargetValue.IsNegative() {
		return nil, NewRecordError(ErrNegativeTarget, apiErrors.ErrInvalidFormat, storeID, "target_value")
	}

	if req.SuperTargetValue != nil && req.SuperTargetValue.IsNegative() {
		return nil, NewRecordError(ErrNegativeTarget, apiErrors.ErrInvalidFormat, storeID, "super_target_value")
	}

	if err := validateWeights(year, month, req.DailyWeights); err != nil {
		return nil, NewRecordError(ErrInvalidWeights, apiErrors.ErrInvalidWeights, storeID, err.Error())
	}

	if err := s.ensureStore(ctx, storeID); err != nil {
		return nil, err
	}

	goal := &domain.MonthlyGoal{
		StoreID:        storeID,
		MonthReference: req.MonthReference,
		TargetValue:    req.TargetValue,
		DailyWeights:   req.DailyWeights,
	}

	if req.EmployeeID != nil && *req.EmployeeID != "" {
		if _, err := s.loadEmployee(ctx, storeID, *req.EmployeeID); err != nil {
			return nil, err
		}
		goal.EmployeeID = req.EmployeeID
	}

	if req.SuperTargetValue != nil {
		goal.SuperTargetValue = decimal.NewNullDecimal(*req.SuperTargetValue)
	}

	if err := s.goalRepo.Upsert(ctx, goal); err != nil {
		logrus.WithError(err).WithField("store_id", storeID).Error("recording: erro ao gravar meta")
		return nil, NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, storeID, "Erro ao gravar meta")
	}

	return goal, nil
}

// RegisterSale lança uma venda no razão da loja. Sem data a venda é de hoje.
func (s *Service) RegisterSale(ctx context.Context, storeID string, req *domain.RegisterSaleRequest, today time.Time) (*domain.Sale, error) {
	if req == nil || req.EmployeeID == "" {
		return nil, NewRecordError(ErrInvalidSale, apiErrors.ErrMissingRequiredData, storeID, "employee_id é obrigatório")
	}

	if !req.Amount.IsPositive() {
		return nil, NewRecordError(ErrInvalidSale, apiErrors.ErrInvalidSale, storeID, "o valor deve ser maior que zero")
	}

	today = utils.DateOnly(today)

	soldAt, err := utils.ParseDate(req.SoldAt)
	if err != nil {
		return nil, NewRecordError(ErrInvalidDate, apiErrors.ErrInvalidFormat, storeID, err.Error())
	}
	if soldAt == nil {
		soldAt = &today
	}

	if soldAt.After(today) {
		return nil, NewRecordError(ErrInvalidSale, apiErrors.ErrInvalidSale, storeID, "venda com data futura")
	}

	if err := s.ensureStore(ctx, storeID); err != nil {
		return nil, err
	}

	employee, err := s.loadEmployee(ctx, storeID, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	if !employee.WorkedOn(*soldAt) {
		return nil, NewRecordError(ErrInvalidSale, apiErrors.ErrInvalidSale, storeID, "colaboradora desligada na data da venda")
	}

	sale := &domain.Sale{
		StoreID:    storeID,
		EmployeeID: employee.ID,
		Amount:     req.Amount,
		SoldAt:     *soldAt,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		logrus.WithError(err).WithField("store_id", storeID).Error("recording: erro ao registrar venda")
		return nil, NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, storeID, "Erro ao registrar venda")
	}

	return sale, nil
}

// ScheduleOffDay marca a folga. Repetir a mesma data para a colaboradora não duplica o registro.
func (s *Service) ScheduleOffDay(ctx context.Context, storeID string, req *domain.ScheduleOffDayRequest) (*domain.OffDay, error) {
	if req == nil || req.EmployeeID == "" || req.Date == "" {
		return nil, NewRecordError(ErrInvalidDate, apiErrors.ErrMissingRequiredData, storeID, "employee_id e date são obrigatórios")
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, NewRecordError(ErrInvalidDate, apiErrors.ErrInvalidFormat, storeID, err.Error())
	}

	if _, err := s.loadEmployee(ctx, storeID, req.EmployeeID); err != nil {
		return nil, err
	}

	offDay := &domain.OffDay{
		StoreID:    storeID,
		EmployeeID: req.EmployeeID,
		Date:       *date,
	}

	if err := s.offDayRepo.Create(ctx, offDay); err != nil {
		logrus.WithError(err).WithField("store_id", storeID).Error("recording: erro ao marcar folga")
		return nil, NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, storeID, "Erro ao marcar folga")
	}

	return offDay, nil
}

func (s *Service) RemoveOffDay(ctx context.Context, storeID, offDayID string) error {
	offDay, err := s.offDayRepo.GetByID(ctx, offDayID)
	if err != nil {
		return NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar folga")
	}

	if offDay == nil || offDay.StoreID != storeID {
		return NewRecordError(ErrOffDayNotFound, apiErrors.ErrOffDayNotFound, storeID, offDayID)
	}

	if err := s.offDayRepo.Delete(ctx, offDayID); err != nil {
		return NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, storeID, "Erro ao remover folga")
	}

	return nil
}

// ListOffDays lista as folgas da loja no mês
func (s *Service) ListOffDays(ctx context.Context, storeID string, year int, month time.Month) ([]*domain.OffDay, error) {
	if month < time.January || month > time.December {
		return nil, NewRecordError(ErrInvalidDate, apiErrors.ErrInvalidCalendar, storeID, fmt.Sprintf("mês %d", int(month)))
	}

	from, to := utils.MonthBounds(year, month)

	offDays, err := s.offDayRepo.ListByStore(ctx, storeID, from, to)
	if err != nil {
		return nil, NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, storeID, "Erro ao listar folgas")
	}

	if offDays == nil {
		offDays = make([]*domain.OffDay, 0)
	}

	return offDays, nil
}

func (s *Service) ensureStore(ctx context.Context, storeID string) error {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar loja")
	}
	if store == nil {
		return NewRecordError(ErrStoreNotFound, apiErrors.ErrStoreNotFound, storeID, storeID)
	}
	return nil
}

func (s *Service) loadEmployee(ctx context.Context, storeID, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar colaboradora")
	}
	if employee == nil || employee.StoreID != storeID {
		return nil, NewRecordError(ErrEmployeeNotFound, apiErrors.ErrEmployeeNotFound, storeID, employeeID)
	}
	return employee, nil
}

// validateWeights exige datas YYYY-MM-DD do próprio mês e pesos finitos não negativos
func validateWeights(year int, month time.Month, weights map[string]float64) error {
	for key, weight := range weights {
		date, err := time.Parse(time.DateOnly, key)
		if err != nil {
			return fmt.Errorf("chave %q não é uma data YYYY-MM-DD", key)
		}

		if date.Year() != year || date.Month() != month {
			return fmt.Errorf("data %s fora do mês %s", key, domain.MonthReference(year, month))
		}

		if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
			return fmt.Errorf("peso %v inválido para %s", weight, key)
		}
	}
	return nil
}
