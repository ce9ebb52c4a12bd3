package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goals-api/infrastructure/repository"
	"github.com/vfg2006/sales-goals-api/internal/config"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/goaling"
)

// DailyGoalDigestConfig representa a configuração do resumo diário de metas
type DailyGoalDigestConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	Enabled           bool
}

// digestRun acumula o resultado de uma execução
type digestRun struct {
	mu      sync.Mutex
	sent    int
	skipped int
	failed  int
}

func (r *digestRun) add(sent, skipped, failed int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent += sent
	r.skipped += skipped
	r.failed += failed
}

// DailyGoalDigestService calcula todas as manhãs a meta do dia de cada loja ativa e entrega
// o resumo ao Notifier
type DailyGoalDigestService struct {
	scheduler       *gocron.Scheduler
	config          DailyGoalDigestConfig
	storeRepo       repository.StoreRepository
	goalService     goaling.Goaler
	notifier        Notifier
	today           func() time.Time
	now             func() time.Time
	syncRunning     bool
	syncMutex       sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastRun         map[string]int
}

func NewDailyGoalDigestService(
	storeRepo repository.StoreRepository,
	goalService goaling.Goaler,
	notifier Notifier,
	appConfig *config.Config,
) *DailyGoalDigestService {
	digestConfig := DailyGoalDigestConfig{
		CronSchedule:      appConfig.DailyGoalDigest.CronSchedule,
		MaxConcurrentJobs: appConfig.DailyGoalDigest.MaxConcurrentJobs,
		Enabled:           appConfig.DailyGoalDigest.Enabled,
	}

	location := appConfig.App.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       digestConfig.CronSchedule,
		"max_concurrent_jobs": digestConfig.MaxConcurrentJobs,
		"enabled":             digestConfig.Enabled,
		"timezone":            location.String(),
	}).Info("Configuração do resumo diário de metas carregada")

	return &DailyGoalDigestService{
		scheduler:   gocron.NewScheduler(location),
		config:      digestConfig,
		storeRepo:   storeRepo,
		goalService: goalService,
		notifier:    notifier,
		today:       appConfig.Today,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *DailyGoalDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Resumo diário de metas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do resumo diário de metas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sendDailyDigests(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo diário de metas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do resumo diário de metas")
		s.scheduler.Stop()
	}()

	return nil
}

// sendDailyDigests processa todas as lojas ativas. Execuções sobrepostas são ignoradas.
func (s *DailyGoalDigestService) sendDailyDigests(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("DailyGoalDigestService: resumo já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	today := s.today()
	startTime := s.now()

	stores, err := s.storeRepo.ListActive(ctx)
	if err != nil {
		logrus.WithError(err).Error("DailyGoalDigestService: erro ao listar lojas ativas")
		return
	}

	if len(stores) == 0 {
		logrus.Info("DailyGoalDigestService: nenhuma loja ativa encontrada")
		return
	}

	run := &digestRun{}
	semaphore := make(chan struct{}, max(1, s.config.MaxConcurrentJobs))
	var wg sync.WaitGroup

	for _, store := range stores {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(store *domain.Store) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			run.add(s.processStore(ctx, store, today))
		}(store)
	}

	wg.Wait()

	s.syncMutex.Lock()
	s.lastCompletedAt = s.now()
	s.lastRun = map[string]int{"sent": run.sent, "skipped": run.skipped, "failed": run.failed}
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"date":     today.Format(time.DateOnly),
		"duration": s.now().Sub(startTime).String(),
		"stores":   len(stores),
		"sent":     run.sent,
		"skipped":  run.skipped,
		"failed":   run.failed,
	}).Info("DailyGoalDigestService: resumo diário concluído")
}

// processStore retorna (enviados, ignorados, falhas) da loja
func (s *DailyGoalDigestService) processStore(ctx context.Context, store *domain.Store, today time.Time) (int, int, int) {
	fields := logrus.Fields{
		"store_id":   store.ID,
		"store_name": store.Name,
		"date":       today.Format(time.DateOnly),
	}

	goal, err := s.goalService.GetStoreDailyGoal(ctx, store.ID, today)
	if err != nil {
		if errors.Is(err, goaling.ErrGoalNotFound) {
			logrus.WithFields(fields).Info("DailyGoalDigestService: loja sem meta no mês, ignorando")
			return 0, 1, 0
		}
		logrus.WithFields(fields).WithError(err).Error("DailyGoalDigestService: erro ao calcular meta do dia")
		return 0, 0, 1
	}

	digest := &domain.DailyGoalDigest{
		Store:       store,
		Date:        today,
		Goal:        goal,
		GeneratedAt: s.now(),
	}

	if err := s.notifier.NotifyDailyGoals(ctx, digest); err != nil {
		logrus.WithFields(fields).WithError(err).Error("DailyGoalDigestService: erro ao entregar resumo")
		return 0, 0, 1
	}

	return 1, 0, 0
}

// TriggerManualSync dispara o resumo fora do horário agendado
func (s *DailyGoalDigestService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("DailyGoalDigestService: resumo já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("DailyGoalDigestService: iniciando resumo manual")
	go s.sendDailyDigests(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *DailyGoalDigestService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"max_concurrent":    s.config.MaxConcurrentJobs,
		"running":           s.syncRunning,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_run":          s.lastRun,
	}
}
