package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goals-api/infrastructure/repository"
	"github.com/vfg2006/sales-goals-api/internal/api"
	"github.com/vfg2006/sales-goals-api/internal/config"
	"github.com/vfg2006/sales-goals-api/internal/scheduler"
	"github.com/vfg2006/sales-goals-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-goals-api/internal/usecases/contesting"
	"github.com/vfg2006/sales-goals-api/internal/usecases/goaling"
	"github.com/vfg2006/sales-goals-api/internal/usecases/recording"
	"github.com/vfg2006/sales-goals-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, cfg.App.Env)

	logrus.WithFields(logrus.Fields{
		"timezone": cfg.App.Location.String(),
		"today":    cfg.Today().Format("2006-01-02"),
	}).Info("Data de referência da operação")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	storeRepo := repository.NewStoreRepository(pgConn)
	employeeRepo := repository.NewEmployeeRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	offDayRepo := repository.NewOffDayRepository(pgConn)
	gincanaRepo := repository.NewGincanaRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	goalService := goaling.NewService(storeRepo, employeeRepo, goalRepo, saleRepo, offDayRepo)
	recordService := recording.NewService(storeRepo, employeeRepo, goalRepo, saleRepo, offDayRepo)
	gincanaService := contesting.NewService(storeRepo, employeeRepo, gincanaRepo, saleRepo)

	dailyGoalDigestService := scheduler.NewDailyGoalDigestService(
		storeRepo,
		goalService,
		scheduler.NewLogNotifier(),
		cfg,
	)

	if err := dailyGoalDigestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo diário de metas")
	} else {
		logrus.Info("Agendador do resumo diário de metas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		goalService,
		recordService,
		gincanaService,
		authenticator,
		dailyGoalDigestService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite encontrar o .env ao rodar com go run de qualquer diretório
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
