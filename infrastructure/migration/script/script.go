package main

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goals-api/infrastructure/repository"
	"github.com/vfg2006/sales-goals-api/internal/config"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-goals-api/pkg/log"
	"github.com/vfg2006/sales-goals-api/pkg/utils"
)

// Cada instrução é idempotente: o script pode rodar a cada deploy
var schema = []string{
	`CREATE TABLE IF NOT EXISTS stores (
		id             VARCHAR(32) PRIMARY KEY,
		name           VARCHAR(255) NOT NULL,
		whatsapp_phone VARCHAR(32),
		active         BOOLEAN NOT NULL DEFAULT TRUE,
		created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id             VARCHAR(32) PRIMARY KEY,
		store_id       VARCHAR(32) NOT NULL REFERENCES stores(id),
		name           VARCHAR(255) NOT NULL,
		phone          VARCHAR(32),
		active         BOOLEAN NOT NULL DEFAULT TRUE,
		deactivated_at DATE,
		created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            VARCHAR(32) PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role_id       INTEGER NOT NULL,
		store_id      VARCHAR(32) REFERENCES stores(id),
		active        BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS monthly_goals (
		id                 VARCHAR(32) PRIMARY KEY,
		store_id           VARCHAR(32) NOT NULL REFERENCES stores(id),
		employee_id        VARCHAR(32) REFERENCES employees(id),
		month_reference    CHAR(6) NOT NULL,
		target_value       NUMERIC(14, 2) NOT NULL,
		super_target_value NUMERIC(14, 2),
		daily_weights      JSONB,
		created_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE NULLS NOT DISTINCT (store_id, employee_id, month_reference)
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id          VARCHAR(32) PRIMARY KEY,
		store_id    VARCHAR(32) NOT NULL REFERENCES stores(id),
		employee_id VARCHAR(32) NOT NULL REFERENCES employees(id),
		amount      NUMERIC(14, 2) NOT NULL CHECK (amount > 0),
		sold_at     DATE NOT NULL,
		created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_store_sold_at ON sales (store_id, sold_at)`,
	`CREATE TABLE IF NOT EXISTS off_days (
		id          VARCHAR(32) PRIMARY KEY,
		store_id    VARCHAR(32) NOT NULL REFERENCES stores(id),
		employee_id VARCHAR(32) NOT NULL REFERENCES employees(id),
		date        DATE NOT NULL,
		created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (employee_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS gincanas (
		id                 VARCHAR(32) PRIMARY KEY,
		store_id           VARCHAR(32) NOT NULL REFERENCES stores(id),
		week_reference     CHAR(6) NOT NULL,
		title              VARCHAR(255) NOT NULL,
		prize              VARCHAR(255),
		target_value       NUMERIC(14, 2) NOT NULL,
		super_target_value NUMERIC(14, 2),
		created_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS gincana_participants (
		gincana_id         VARCHAR(32) NOT NULL REFERENCES gincanas(id) ON DELETE CASCADE,
		employee_id        VARCHAR(32) NOT NULL REFERENCES employees(id),
		target_value       NUMERIC(14, 2) NOT NULL,
		super_target_value NUMERIC(14, 2),
		PRIMARY KEY (gincana_id, employee_id)
	)`,
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, cfg.App.Env)
	logrus.Info("Iniciando script de migração...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range schema {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				logrus.WithField("statement", i+1).WithError(err).Error("Erro ao aplicar instrução do schema")
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração revertida")
	}
	logrus.WithField("duration", time.Since(startTime).String()).Infof("Schema aplicado (%d instruções)", len(schema))

	seedAdmin(ctx, conn)
}

// seedAdmin cria o primeiro administrador a partir de SEED_ADMIN_EMAIL e SEED_ADMIN_PASSWORD
func seedAdmin(ctx context.Context, conn *postgres.Connection) {
	email := strings.ToLower(strings.TrimSpace(viper.GetString("SEED_ADMIN_EMAIL")))
	password := viper.GetString("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		logrus.Info("SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD não informados, nenhum administrador criado")
		return
	}

	userRepo := repository.NewUserRepository(conn)

	existing, err := userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao consultar administrador")
	}
	if existing != nil {
		logrus.WithField("user_id", existing.ID).Info("Administrador já cadastrado")
		return
	}

	hash, err := authenticating.HashPassword(password)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar hash da senha")
	}

	admin, err := userRepo.CreateUser(ctx, &domain.User{
		Name:         "Administrador",
		Email:        email,
		PasswordHash: hash,
		RoleID:       domain.RoleAdmin,
		Active:       true,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar administrador")
	}

	logrus.WithField("user_id", admin.ID).Info("Administrador criado")

	if storeName := viper.GetString("SEED_STORE_NAME"); storeName != "" {
		seedStore(ctx, conn, storeName)
	}
}

func seedStore(ctx context.Context, conn *postgres.Connection, name string) {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar id da loja")
	}

	if _, err := conn.ExecContext(ctx, `INSERT INTO stores (id, name) VALUES ($1, $2)`, id, name); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar loja")
	}

	logrus.WithFields(logrus.Fields{"store_id": id, "name": name}).Info("Loja criada")
}
