package contesting

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goals-api/infrastructure/repository"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/pkg/apiErrors"
	"github.com/vfg2006/sales-goals-api/pkg/utils"
	"github.com/vfg2006/sales-goals-api/pkg/weekref"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Contester administra as gincanas semanais das lojas
type Contester interface {
	CreateGincana(ctx context.Context, storeID string, req *domain.CreateGincanaRequest) (*domain.Gincana, error)
	ListGincanas(ctx context.Context, storeID string) ([]*domain.Gincana, error)
	GetGincanaProgress(ctx context.Context, storeID, gincanaID string) (*domain.GincanaProgress, error)
}

type Service struct {
	storeRepo    repository.StoreRepository
	employeeRepo repository.EmployeeRepository
	gincanaRepo  repository.GincanaRepository
	saleRepo     repository.SaleRepository
}

func NewService(
	storeRepo repository.StoreRepository,
	employeeRepo repository.EmployeeRepository,
	gincanaRepo repository.GincanaRepository,
	saleRepo repository.SaleRepository,
) Contester {
	return &Service{
		storeRepo:    storeRepo,
		employeeRepo: employeeRepo,
		gincanaRepo:  gincanaRepo,
		saleRepo:     saleRepo,
	}
}

// CreateGincana cadastra a gincana da semana. A referência é sempre gravada no formato WWYYYY,
// mesmo quando recebida no formato antigo.
func (s *Service) CreateGincana(ctx context.Context, storeID string, req *domain.CreateGincanaRequest) (*domain.Gincana, error) {
	if req == nil || strings.TrimSpace(req.Title) == "" {
		return nil, NewGincanaError(ErrInvalidGincana, apiErrors.ErrMissingRequiredData, "", "título é obrigatório")
	}

	ref, err := weekref.Decode(req.WeekReference)
	if err != nil {
		return nil, NewGincanaError(ErrInvalidWeekToken, apiErrors.ErrInvalidWeekToken, "", err.Error())
	}

	if req.TargetValue.IsNegative() || (req.SuperTargetValue != nil && req.SuperTargetValue.IsNegative()) {
		return nil, NewGincanaError(ErrInvalidGincana, apiErrors.ErrInvalidFormat, "", "metas não podem ser negativas")
	}

	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, NewGincanaError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Erro ao buscar loja")
	}
	if store == nil {
		return nil, NewGincanaError(ErrStoreNotFound, apiErrors.ErrStoreNotFound, "", storeID)
	}

	seen := make(map[string]struct{}, len(req.Participants))
	for _, p := range req.Participants {
		if _, ok := seen[p.EmployeeID]; ok {
			return nil, NewGincanaError(ErrInvalidParticipant, apiErrors.ErrInvalidFormat, "", "participante repetida: "+p.EmployeeID)
		}
		seen[p.EmployeeID] = struct{}{}

		if p.TargetValue.IsNegative() || (p.SuperTargetValue.Valid && p.SuperTargetValue.Decimal.IsNegative()) {
			return nil, NewGincanaError(ErrInvalidParticipant, apiErrors.ErrInvalidFormat, "", "metas não podem ser negativas: "+p.EmployeeID)
		}

		employee, err := s.employeeRepo.GetByID(ctx, p.EmployeeID)
		if err != nil {
			return nil, NewGincanaError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Erro ao buscar colaboradora")
		}
		if employee == nil || employee.StoreID != storeID {
			return nil, NewGincanaError(ErrInvalidParticipant, apiErrors.ErrEmployeeNotFound, "", p.EmployeeID)
		}
	}

	gincana := &domain.Gincana{
		StoreID:       storeID,
		WeekReference: ref.Token(),
		Title:         strings.TrimSpace(req.Title),
		Prize:         req.Prize,
		TargetValue:   req.TargetValue,
		Participants:  req.Participants,
	}
	if req.SuperTargetValue != nil {
		gincana.SuperTargetValue = decimal.NewNullDecimal(*req.SuperTargetValue)
	}
	withWeek(gincana, ref)

	if err := s.gincanaRepo.Create(ctx, gincana); err != nil {
		logrus.WithError(err).WithField("store_id", storeID).Error("gincana: erro ao gravar gincana")
		return nil, NewGincanaError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Erro ao gravar gincana")
	}

	logrus.WithFields(logrus.Fields{
		"store_id":   storeID,
		"gincana_id": gincana.ID,
		"week":       ref.String(),
		"format":     ref.Format,
	}).Info("gincana: gincana criada")

	return gincana, nil
}

// ListGincanas retorna as gincanas da loja da semana mais recente para a mais antiga.
// Registros com referência ilegível são ignorados.
func (s *Service) ListGincanas(ctx context.Context, storeID string) ([]*domain.Gincana, error) {
	gincanas, err := s.gincanaRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, NewGincanaError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Erro ao listar gincanas")
	}

	type entry struct {
		ref     weekref.Reference
		gincana *domain.Gincana
	}

	entries := make([]entry, 0, len(gincanas))
	for _, gincana := range gincanas {
		ref, err := weekref.Decode(gincana.WeekReference)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"gincana_id":     gincana.ID,
				"week_reference": gincana.WeekReference,
			}).Warn("gincana: referência de semana ilegível, registro ignorado")
			continue
		}

		withWeek(gincana, ref)
		entries = append(entries, entry{ref: ref, gincana: gincana})
	}

	weekref.SortDescendingBy(entries, func(e entry) weekref.Reference { return e.ref })

	result := make([]*domain.Gincana, len(entries))
	for i, e := range entries {
		result[i] = e.gincana
	}
	return result, nil
}

// GetGincanaProgress soma as vendas de segunda a domingo da semana da gincana e ordena as
// participantes pelo percentual atingido da própria meta.
func (s *Service) GetGincanaProgress(ctx context.Context, storeID, gincanaID string) (*domain.GincanaProgress, error) {
	gincana, err := s.gincanaRepo.GetByID(ctx, gincanaID)
	if err != nil {
		return nil, NewGincanaError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, gincanaID, "Erro ao buscar gincana")
	}
	if gincana == nil || gincana.StoreID != storeID {
		return nil, NewGincanaError(ErrGincanaNotFound, apiErrors.ErrGincanaNotFound, gincanaID, "")
	}

	ref, err := weekref.Decode(gincana.WeekReference)
	if err != nil {
		return nil, NewGincanaError(ErrInvalidWeekToken, apiErrors.ErrInvalidWeekToken, gincanaID, err.Error())
	}
	withWeek(gincana, ref)

	filter := domain.SalesFilter{
		StoreID: storeID,
		From:    gincana.StartDate,
		To:      gincana.EndDate.AddDate(0, 0, 1),
	}

	storeSold, err := s.saleRepo.SumByStore(ctx, filter)
	if err != nil {
		return nil, NewGincanaError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, gincanaID, "Erro ao somar vendas da semana")
	}

	totals, err := s.saleRepo.SumByEmployee(ctx, filter)
	if err != nil {
		return nil, NewGincanaError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, gincanaID, "Erro ao somar vendas por colaboradora")
	}

	sold := make(map[string]float64, len(totals))
	for _, total := range totals {
		sold[total.EmployeeID] = total.Amount.InexactFloat64()
	}

	ranking := make([]domain.ParticipantProgress, 0, len(gincana.Participants))
	for _, p := range gincana.Participants {
		progress := domain.ParticipantProgress{
			EmployeeID:   p.EmployeeID,
			EmployeeName: p.EmployeeName,
			Target:       p.TargetValue.InexactFloat64(),
			Sold:         sold[p.EmployeeID],
		}
		if p.SuperTargetValue.Valid {
			progress.SuperTarget = p.SuperTargetValue.Decimal.InexactFloat64()
		}

		progress.Percent = utils.Percent(progress.Sold, progress.Target)
		progress.HitTarget = progress.Target > 0 && progress.Sold >= progress.Target
		progress.HitSuperTarget = progress.SuperTarget > 0 && progress.Sold >= progress.SuperTarget

		ranking = append(ranking, progress)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Percent != ranking[j].Percent {
			return ranking[i].Percent > ranking[j].Percent
		}
		return ranking[i].Sold > ranking[j].Sold
	})

	for i := range ranking {
		ranking[i].Position = i + 1
	}

	return &domain.GincanaProgress{
		Gincana:     gincana,
		StoreSold:   storeSold.InexactFloat64(),
		StoreTarget: gincana.TargetValue.InexactFloat64(),
		Ranking:     ranking,
	}, nil
}

// withWeek preenche semana, ano e intervalo a partir da referência decodificada
func withWeek(gincana *domain.Gincana, ref weekref.Reference) {
	gincana.WeekReference = ref.Token()
	gincana.Week = ref.Week
	gincana.Year = ref.Year
	gincana.StartDate, gincana.EndDate = ref.Range()
}
