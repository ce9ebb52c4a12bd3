package goaling

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goals-api/infrastructure/repository"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/pkg/apiErrors"
	"github.com/vfg2006/sales-goals-api/pkg/goalcalc"
	"github.com/vfg2006/sales-goals-api/pkg/utils"
	"github.com/vfg2006/sales-goals-api/pkg/weekref"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Goaler calcula as metas do dia, da semana e do calendário a partir das metas mensais,
// do razão de vendas e das folgas. Nada é persistido: tudo é recalculado a cada chamada.
type Goaler interface {
	GetStoreDailyGoal(ctx context.Context, storeID string, today time.Time) (*domain.StoreDailyGoal, error)
	GetEmployeePerformance(ctx context.Context, storeID string, today time.Time, includeAll bool) (*domain.EmployeePerformanceReport, error)
	SuggestWeeklyGoal(ctx context.Context, storeID, weekToken string) (*domain.WeeklyGoalSuggestion, error)
	GetGoalCalendar(ctx context.Context, storeID, employeeID string, year int, month time.Month, today time.Time) (*domain.GoalCalendar, error)
	GetAvailablePeriods(ctx context.Context, storeID string) (*domain.AvailablePeriods, error)
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
) Goaler {
	return &Service{
		storeRepo:    storeRepo,
		employeeRepo: employeeRepo,
		goalRepo:     goalRepo,
		saleRepo:     saleRepo,
		offDayRepo:   offDayRepo,
	}
}

// period concentra as datas derivadas de "hoje"
type period struct {
	today      time.Time
	tomorrow   time.Time
	monthStart time.Time
	monthRef   string
}

func newPeriod(today time.Time) period {
	today = utils.DateOnly(today)
	monthStart, _ := utils.MonthBounds(today.Year(), today.Month())

	return period{
		today:      today,
		tomorrow:   today.AddDate(0, 0, 1),
		monthStart: monthStart,
		monthRef:   domain.MonthReferenceOf(today),
	}
}

// teamMember é a colaboradora com os insumos do cálculo individual já resolvidos
type teamMember struct {
	employee  *domain.Employee
	goal      *domain.MonthlyGoal
	daily     goalcalc.DailyTarget
	achieved  float64
	soldToday float64
}

// hasTarget indica meta individual cadastrada com valor positivo; meta zerada equivale a não ter meta
func (m teamMember) hasTarget() bool {
	return m.goal != nil && m.goal.Target() > 0
}

// GetStoreDailyGoal monta o painel do dia: meta dinâmica da loja (meta e super meta)
// e a distribuição entre as colaboradoras que trabalham hoje.
func (s *Service) GetStoreDailyGoal(ctx context.Context, storeID string, today time.Time) (*domain.StoreDailyGoal, error) {
	store, err := s.loadStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	p := newPeriod(today)

	storeGoal, err := s.loadStoreGoal(ctx, storeID, p.monthRef)
	if err != nil {
		return nil, err
	}

	table, err := s.resolveWeights(storeID, p.today.Year(), p.today.Month(), storeGoal.DailyWeights)
	if err != nil {
		return nil, err
	}

	achieved, err := s.sumStoreSales(ctx, storeID, p.monthStart, p.today)
	if err != nil {
		return nil, err
	}

	soldToday, err := s.sumStoreSales(ctx, storeID, p.today, p.tomorrow)
	if err != nil {
		return nil, err
	}

	target, err := goalcalc.DynamicDailyTarget(storeGoal.Target(), achieved, p.today, table)
	if err != nil {
		return nil, NewGoalError(ErrInvalidCalendar, apiErrors.ErrInvalidCalendar, storeID, err.Error())
	}

	result := &domain.StoreDailyGoal{
		StoreID:        store.ID,
		StoreName:      store.Name,
		Date:           p.today,
		MonthReference: p.monthRef,
		Target:         toPace(target),
		SoldToday:      soldToday,
	}

	if storeGoal.SuperTargetValue.Valid {
		superTarget, err := goalcalc.DynamicDailyTarget(storeGoal.SuperTarget(), achieved, p.today, table)
		if err != nil {
			return nil, NewGoalError(ErrInvalidCalendar, apiErrors.ErrInvalidCalendar, storeID, err.Error())
		}
		pace := toPace(superTarget)
		result.SuperTarget = &pace
	}

	team, leave, err := s.loadTeam(ctx, storeID, p, storeGoal)
	if err != nil {
		return nil, err
	}

	result.Distribution = goalcalc.Redistribute(members(team), target.Target, leave)
	result.Employees = redistributedViews(team, result.Distribution)

	logrus.WithFields(logrus.Fields{
		"store_id":     storeID,
		"date":         p.today.Format(time.DateOnly),
		"store_target": utils.RoundWithTwoDecimalPlace(target.Target),
		"situation":    target.Situation,
		"employees":    len(team),
		"on_leave":     len(leave),
	}).Debug("goaling: meta do dia calculada")

	return result, nil
}

// GetEmployeePerformance calcula o desempenho das colaboradoras no mês. Com includeAll a visão
// cobre toda a equipe, inclusive quem não tem meta individual, e cada colaboradora fica com a
// própria meta dinâmica sem redistribuição entre colegas.
func (s *Service) GetEmployeePerformance(ctx context.Context, storeID string, today time.Time, includeAll bool) (*domain.EmployeePerformanceReport, error) {
	if _, err := s.loadStore(ctx, storeID); err != nil {
		return nil, err
	}

	p := newPeriod(today)

	storeGoal, err := s.goalRepo.GetStoreGoal(ctx, storeID, p.monthRef)
	if err != nil {
		return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar meta da loja")
	}

	if storeGoal == nil && !includeAll {
		return nil, NewGoalError(ErrGoalNotFound, apiErrors.ErrGoalNotFound, storeID, p.monthRef)
	}

	team, leave, err := s.loadTeam(ctx, storeID, p, storeGoal)
	if err != nil {
		return nil, err
	}

	report := &domain.EmployeePerformanceReport{
		StoreID:        storeID,
		Date:           p.today,
		MonthReference: p.monthRef,
		IncludeAll:     includeAll,
	}

	if includeAll {
		report.Employees = individualViews(team, goalcalc.IndividualTargets(members(team), leave), leave)
		return report, nil
	}

	table, err := s.resolveWeights(storeID, p.today.Year(), p.today.Month(), storeGoal.DailyWeights)
	if err != nil {
		return nil, err
	}

	achieved, err := s.sumStoreSales(ctx, storeID, p.monthStart, p.today)
	if err != nil {
		return nil, err
	}

	target, err := goalcalc.DynamicDailyTarget(storeGoal.Target(), achieved, p.today, table)
	if err != nil {
		return nil, NewGoalError(ErrInvalidCalendar, apiErrors.ErrInvalidCalendar, storeID, err.Error())
	}

	report.Employees = redistributedViews(team, goalcalc.Redistribute(members(team), target.Target, leave))
	return report, nil
}

// SuggestWeeklyGoal soma as metas base dos dias da semana. Semanas que cruzam a virada do
// mês usam a meta de cada mês para os seus dias.
func (s *Service) SuggestWeeklyGoal(ctx context.Context, storeID, weekToken string) (*domain.WeeklyGoalSuggestion, error) {
	ref, err := weekref.Decode(weekToken)
	if err != nil {
		return nil, NewGoalError(ErrInvalidWeekToken, apiErrors.ErrInvalidWeekToken, storeID, err.Error())
	}

	if _, err := s.loadStore(ctx, storeID); err != nil {
		return nil, err
	}

	start, end := ref.Range()

	refs := []string{domain.MonthReferenceOf(start)}
	if endRef := domain.MonthReferenceOf(end); endRef != refs[0] {
		refs = append(refs, endRef)
	}

	goals, err := s.goalRepo.ListStoreGoals(ctx, storeID, refs)
	if err != nil {
		return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar metas da loja")
	}

	if len(goals) == 0 {
		return nil, NewGoalError(ErrGoalNotFound, apiErrors.ErrGoalNotFound, storeID, ref.String())
	}

	plans := make([]goalcalc.MonthPlan, 0, len(goals))
	for _, goal := range goals {
		year, month, err := domain.ParseMonthReference(goal.MonthReference)
		if err != nil {
			return nil, NewGoalError(ErrInvalidCalendar, apiErrors.ErrInvalidCalendar, storeID, err.Error())
		}

		table, err := s.resolveWeights(storeID, year, month, goal.DailyWeights)
		if err != nil {
			return nil, err
		}

		plans = append(plans, goalcalc.MonthPlan{
			Target:      goal.Target(),
			SuperTarget: goal.SuperTarget(),
			Weights:     table,
		})
	}

	suggestion := goalcalc.SuggestRange(start, end, plans)

	return &domain.WeeklyGoalSuggestion{
		StoreID:       storeID,
		WeekReference: ref.Token(),
		Week:          ref.Week,
		Year:          ref.Year,
		StartDate:     start,
		EndDate:       end,
		Target:        utils.RoundWithTwoDecimalPlace(suggestion.Target),
		SuperTarget:   utils.RoundWithTwoDecimalPlace(suggestion.SuperTarget),
		Days:          suggestion.Days,
	}, nil
}

// GetGoalCalendar monta o calendário do mês da loja ou, com employeeID, da colaboradora
func (s *Service) GetGoalCalendar(ctx context.Context, storeID, employeeID string, year int, month time.Month, today time.Time) (*domain.GoalCalendar, error) {
	if _, err := goalcalc.ResolveWeights(year, month, nil); err != nil {
		return nil, NewGoalError(ErrInvalidCalendar, apiErrors.ErrInvalidCalendar, storeID, err.Error())
	}

	if _, err := s.loadStore(ctx, storeID); err != nil {
		return nil, err
	}

	monthRef := domain.MonthReference(year, month)

	storeGoal, err := s.goalRepo.GetStoreGoal(ctx, storeID, monthRef)
	if err != nil {
		return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar meta da loja")
	}

	goal := storeGoal
	if employeeID != "" {
		employee, err := s.employeeRepo.GetByID(ctx, employeeID)
		if err != nil {
			return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar colaboradora")
		}
		if employee == nil || employee.StoreID != storeID {
			return nil, NewGoalError(ErrEmployeeNotFound, apiErrors.ErrEmployeeNotFound, storeID, employeeID)
		}

		goal, err = s.goalRepo.GetEmployeeGoal(ctx, storeID, employeeID, monthRef)
		if err != nil {
			return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar meta da colaboradora")
		}
	}

	if goal == nil {
		return nil, NewGoalError(ErrGoalNotFound, apiErrors.ErrGoalNotFound, storeID, monthRef)
	}

	table, err := s.resolveWeights(storeID, year, month, weightsOf(goal, storeGoal))
	if err != nil {
		return nil, err
	}

	start, end := utils.MonthBounds(year, month)

	totals, err := s.saleRepo.DailyTotals(ctx, domain.SalesFilter{
		StoreID:    storeID,
		EmployeeID: employeeID,
		From:       start,
		To:         end,
	})
	if err != nil {
		return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar vendas do mês")
	}

	dailySales := make(map[int]float64, len(totals))
	for _, total := range totals {
		dailySales[total.Date.Day()] += total.Amount.InexactFloat64()
	}

	offDays := make(map[int]bool)
	if employeeID != "" {
		scheduled, err := s.offDayRepo.ListByStore(ctx, storeID, start, end)
		if err != nil {
			return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar folgas")
		}
		for _, offDay := range scheduled {
			if offDay.EmployeeID == employeeID {
				offDays[offDay.Date.Day()] = true
			}
		}
	}

	calendar := &domain.GoalCalendar{
		StoreID:        storeID,
		MonthReference: monthRef,
		MonthlyTarget:  goal.Target(),
		UniformWeights: table.IsUniform(),
		WeightTotal:    table.Total(),
	}
	if employeeID != "" {
		calendar.EmployeeID = &employeeID
	}

	for _, day := range goalcalc.BuildCalendar(goal.Target(), table, dailySales, utils.DateOnly(today)) {
		calendar.TotalSold += day.Sold
		calendar.Days = append(calendar.Days, domain.CalendarEntry{
			CalendarDay: day,
			OffDay:      offDays[day.Day],
		})
	}

	return calendar, nil
}

// GetAvailablePeriods lista os meses com meta cadastrada
func (s *Service) GetAvailablePeriods(ctx context.Context, storeID string) (*domain.AvailablePeriods, error) {
	periods, err := s.goalRepo.ListMonthReferences(ctx, storeID)
	if err != nil {
		return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, storeID, "Erro ao listar períodos")
	}

	result := &domain.AvailablePeriods{
		Periods: periods,
		Years:   make([]string, 0),
	}

	seen := make(map[string]struct{})
	for _, period := range periods {
		if len(period) < 4 {
			continue
		}
		year := period[:4]
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}
		result.Years = append(result.Years, year)
	}

	return result, nil
}

func (s *Service) loadStore(ctx context.Context, storeID string) (*domain.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar loja")
	}
	if store == nil {
		return nil, NewGoalError(ErrStoreNotFound, apiErrors.ErrStoreNotFound, storeID, storeID)
	}
	return store, nil
}

func (s *Service) loadStoreGoal(ctx context.Context, storeID, monthRef string) (*domain.MonthlyGoal, error) {
	goal, err := s.goalRepo.GetStoreGoal(ctx, storeID, monthRef)
	if err != nil {
		return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar meta da loja")
	}
	if goal == nil {
		return nil, NewGoalError(ErrGoalNotFound, apiErrors.ErrGoalNotFound, storeID, monthRef)
	}
	return goal, nil
}

func (s *Service) resolveWeights(storeID string, year int, month time.Month, weights map[string]float64) (goalcalc.WeightTable, error) {
	table, err := goalcalc.ResolveWeights(year, month, weights)
	if err != nil {
		return goalcalc.WeightTable{}, NewGoalError(ErrInvalidCalendar, apiErrors.ErrInvalidCalendar, storeID, err.Error())
	}
	return table, nil
}

// sumStoreSales soma o razão da loja no período [from, to)
func (s *Service) sumStoreSales(ctx context.Context, storeID string, from, to time.Time) (float64, error) {
	total, err := s.saleRepo.SumByStore(ctx, domain.SalesFilter{StoreID: storeID, From: from, To: to})
	if err != nil {
		return 0, NewGoalError(err, apiErrors.ErrDatabaseOperation, storeID, "Erro ao somar vendas da loja")
	}
	return total.InexactFloat64(), nil
}

// loadTeam carrega a equipe que trabalha hoje com a meta dinâmica individual de cada uma.
// O realizado considera as vendas até ontem; as folgas de hoje formam o conjunto de ausentes.
func (s *Service) loadTeam(ctx context.Context, storeID string, p period, storeGoal *domain.MonthlyGoal) ([]teamMember, goalcalc.LeaveSet, error) {
	employees, err := s.employeeRepo.ListByStore(ctx, storeID, p.monthStart)
	if err != nil {
		return nil, nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, storeID, "Erro ao listar colaboradoras")
	}

	goals, err := s.goalRepo.ListEmployeeGoals(ctx, storeID, p.monthRef)
	if err != nil {
		return nil, nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar metas individuais")
	}

	goalsByEmployee := make(map[string]*domain.MonthlyGoal, len(goals))
	for _, goal := range goals {
		if goal.EmployeeID != nil {
			goalsByEmployee[*goal.EmployeeID] = goal
		}
	}

	monthSales, err := s.sumByEmployee(ctx, storeID, p.monthStart, p.today)
	if err != nil {
		return nil, nil, err
	}

	todaySales, err := s.sumByEmployee(ctx, storeID, p.today, p.tomorrow)
	if err != nil {
		return nil, nil, err
	}

	offDays, err := s.offDayRepo.ListByStore(ctx, storeID, p.today, p.tomorrow)
	if err != nil {
		return nil, nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar folgas do dia")
	}

	leave := goalcalc.NewLeaveSet()
	for _, offDay := range offDays {
		leave[offDay.EmployeeID] = struct{}{}
	}

	team := make([]teamMember, 0, len(employees))
	for _, employee := range employees {
		if !employee.WorkedOn(p.today) {
			continue
		}

		member := teamMember{
			employee:  employee,
			goal:      goalsByEmployee[employee.ID],
			achieved:  monthSales[employee.ID],
			soldToday: todaySales[employee.ID],
		}

		if member.goal != nil {
			table, err := s.resolveWeights(storeID, p.today.Year(), p.today.Month(), weightsOf(member.goal, storeGoal))
			if err != nil {
				return nil, nil, err
			}

			member.daily, err = goalcalc.DynamicDailyTarget(member.goal.Target(), member.achieved, p.today, table)
			if err != nil {
				return nil, nil, NewGoalError(ErrInvalidCalendar, apiErrors.ErrInvalidCalendar, storeID, err.Error())
			}
		}

		team = append(team, member)
	}

	return team, leave, nil
}

func (s *Service) sumByEmployee(ctx context.Context, storeID string, from, to time.Time) (map[string]float64, error) {
	totals, err := s.saleRepo.SumByEmployee(ctx, domain.SalesFilter{StoreID: storeID, From: from, To: to})
	if err != nil {
		return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, storeID, "Erro ao somar vendas por colaboradora")
	}

	byEmployee := make(map[string]float64, len(totals))
	for _, total := range totals {
		byEmployee[total.EmployeeID] = total.Amount.InexactFloat64()
	}
	return byEmployee, nil
}

// weightsOf usa a curva da própria meta e, na falta dela, a curva da meta da loja
func weightsOf(goal, storeGoal *domain.MonthlyGoal) map[string]float64 {
	if len(goal.DailyWeights) > 0 || storeGoal == nil {
		return goal.DailyWeights
	}
	return storeGoal.DailyWeights
}

// members retorna apenas as colaboradoras com meta individual positiva, na ordem da equipe
func members(team []teamMember) []goalcalc.Member {
	result := make([]goalcalc.Member, 0, len(team))
	for _, m := range team {
		if !m.hasTarget() {
			continue
		}
		result = append(result, goalcalc.Member{EmployeeID: m.employee.ID, Daily: m.daily})
	}
	return result
}

func redistributedViews(team []teamMember, distribution goalcalc.Redistribution) []domain.EmployeeGoalView {
	allocations := make(map[string]goalcalc.Allocation, len(distribution.Allocations))
	for _, a := range distribution.Allocations {
		allocations[a.EmployeeID] = a
	}

	views := make([]domain.EmployeeGoalView, 0, len(team))
	for _, m := range team {
		allocation, ok := allocations[m.employee.ID]
		if !ok {
			continue
		}
		views = append(views, newView(m, allocation))
	}
	return views
}

func individualViews(team []teamMember, allocations []goalcalc.Allocation, leave goalcalc.LeaveSet) []domain.EmployeeGoalView {
	byEmployee := make(map[string]goalcalc.Allocation, len(allocations))
	for _, a := range allocations {
		byEmployee[a.EmployeeID] = a
	}

	views := make([]domain.EmployeeGoalView, 0, len(team))
	for _, m := range team {
		allocation, ok := byEmployee[m.employee.ID]
		if !ok {
			allocation = goalcalc.Allocation{
				EmployeeID: m.employee.ID,
				Situation:  goalcalc.SituationNeutral,
				OnLeave:    leave.Contains(m.employee.ID),
			}
		}
		views = append(views, newView(m, allocation))
	}
	return views
}

func newView(m teamMember, allocation goalcalc.Allocation) domain.EmployeeGoalView {
	view := domain.EmployeeGoalView{
		EmployeeID:     m.employee.ID,
		EmployeeName:   m.employee.Name,
		HasGoal:        m.hasTarget(),
		OnLeave:        allocation.OnLeave,
		AchievedToDate: m.achieved,
		Base:           allocation.Base,
		Dynamic:        allocation.Dynamic,
		Final:          allocation.Final,
		SoldToday:      m.soldToday,
		Situation:      allocation.Situation,
	}

	if m.goal != nil {
		view.MonthlyTarget = m.goal.Target()
		view.PercentReached = utils.Percent(m.achieved, view.MonthlyTarget)
	}

	return view
}

func toPace(target goalcalc.DailyTarget) domain.GoalPace {
	return domain.GoalPace{
		MonthlyTarget:  target.MonthlyTarget,
		AchievedToDate: target.AchievedToDate,
		Expected:       target.Expected.Value,
		Base:           target.Base,
		Dynamic:        target.Target,
		Situation:      target.Situation,
		PercentReached: utils.Percent(target.AchievedToDate, target.MonthlyTarget),
		RemainingDays:  target.RemainingDays,
	}
}
