package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/smartmart/smartmart-api/infrastructure/database/postgres"
	"github.com/smartmart/smartmart-api/infrastructure/repository"
	"github.com/smartmart/smartmart-api/internal/api"
	"github.com/smartmart/smartmart-api/internal/config"
	"github.com/smartmart/smartmart-api/internal/scheduler"
	"github.com/smartmart/smartmart-api/internal/usecases/cataloging"
	"github.com/smartmart/smartmart-api/internal/usecases/dashboarding"
	"github.com/smartmart/smartmart-api/internal/usecases/selling"
	"github.com/smartmart/smartmart-api/internal/usecases/summarizing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	categoryRepo := repository.NewCategoryRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	monthlySummaryRepo := repository.NewMonthlySummaryRepository(pgConn)

	catalogService := cataloging.NewService(productRepo, categoryRepo)
	salesService := selling.NewService(saleRepo, productRepo, categoryRepo)
	dashboardService := dashboarding.NewService(cfg, productRepo, categoryRepo, saleRepo)
	summaryService := summarizing.NewService(monthlySummaryRepo)

	// Inicializa o agendador de materialização de resumos mensais
	monthlySummarySyncService := scheduler.NewMonthlySummarySyncService(
		saleRepo,
		monthlySummaryRepo,
		cfg,
	)

	if err := monthlySummarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de resumos mensais")
	} else {
		logrus.Info("Agendador de resumos mensais iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		catalogService,
		salesService,
		summaryService,
		monthlySummarySyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
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
