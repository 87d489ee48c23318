// Package scheduler contém os serviços de agendamento para materialização de agregados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/smartmart/smartmart-api/infrastructure/repository"
	"github.com/smartmart/smartmart-api/internal/config"
	"github.com/smartmart/smartmart-api/internal/domain"
)

const monthKeyLength = 7 // YYYY-MM

type MonthlySummarySyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
}

type MonthlySummarySyncService struct {
	scheduler           *gocron.Scheduler
	saleRepo            repository.SaleRepository
	summaryRepo         repository.MonthlySummaryRepository
	config              MonthlySummarySyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewMonthlySummarySyncService(
	saleRepo repository.SaleRepository,
	summaryRepo repository.MonthlySummaryRepository,
	cfg *config.Config,
) *MonthlySummarySyncService {
	syncConfig := MonthlySummarySyncConfig{
		CronSchedule:  cfg.MonthlySummarySync.CronSchedule,  // Default: 5h da manhã todos os dias
		SyncEnabled:   cfg.MonthlySummarySync.Enabled,       // Default: desabilitado
		MonthLookBack: cfg.MonthlySummarySync.MonthLookBack, // Default: 3 meses
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"month_lookback": syncConfig.MonthLookBack,
	}).Info("Configuração do agendador de resumos mensais carregada")

	return &MonthlySummarySyncService{
		scheduler:   scheduler,
		saleRepo:    saleRepo,
		summaryRepo: summaryRepo,
		config:      syncConfig,
	}
}

func (s *MonthlySummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de materialização de resumos mensais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de materialização de resumos mensais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncMonthlySummaries(); err != nil {
			logrus.WithError(err).Error("Erro na materialização de resumos mensais")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar materialização de resumos mensais: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de resumos mensais")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncMonthlySummaries recalcula os agregados dos últimos N meses a partir
// das vendas e persiste via upsert. Vendas de meses fora da janela são
// ignoradas, os resumos antigos permanecem como estão
func (s *MonthlySummarySyncService) SyncMonthlySummaries() error {
	s.syncMutex.Lock()

	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Materialização de resumos mensais já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando materialização de resumos mensais")

	sales, err := s.saleRepo.List()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar vendas para materialização de resumos mensais")
		return err
	}

	summaries := s.buildSummaries(sales, time.Now())
	if len(summaries) == 0 {
		logrus.Info("Nenhuma venda na janela de materialização de resumos mensais")
		return nil
	}

	for _, summary := range summaries {
		if err := s.summaryRepo.SaveOrUpdate(summary); err != nil {
			logrus.WithError(err).WithField("month", summary.Month).Error("Erro ao persistir resumo mensal")
			return err
		}
	}

	logrus.WithField("months", len(summaries)).Info("Materialização de resumos mensais concluída")

	return nil
}

// buildSummaries agrupa as vendas por mês dentro da janela de lookback
func (s *MonthlySummarySyncService) buildSummaries(sales []*domain.Sale, now time.Time) []*domain.MonthlySummary {
	lookback := s.config.MonthLookBack
	if lookback <= 0 {
		lookback = 1
	}

	window := make(map[string]bool, lookback)
	for i := 0; i < lookback; i++ {
		month := now.AddDate(0, -i, 0).Format("2006-01")
		window[month] = true
	}

	buckets := make(map[string]*domain.MonthlySummary)
	for _, sale := range sales {
		if len(sale.Date) < monthKeyLength {
			continue
		}

		month := sale.Date[:monthKeyLength]
		if !window[month] {
			continue
		}

		bucket, ok := buckets[month]
		if !ok {
			bucket = &domain.MonthlySummary{Month: month}
			buckets[month] = bucket
		}

		bucket.Revenue += sale.TotalPrice
		bucket.Quantity += sale.Quantity
		bucket.SalesCount++
	}

	summaries := make([]*domain.MonthlySummary, 0, len(buckets))
	for _, summary := range buckets {
		summaries = append(summaries, summary)
	}

	return summaries
}

// TriggerManualSync dispara a materialização fora do horário agendado
func (s *MonthlySummarySyncService) TriggerManualSync() error {
	logrus.Info("Materialização manual de resumos mensais solicitada")
	return s.SyncMonthlySummaries()
}

type SyncStatus struct {
	Running             bool       `json:"running"`
	LastSyncStartedAt   *time.Time `json:"last_sync_started_at,omitempty"`
	LastSyncCompletedAt *time.Time `json:"last_sync_completed_at,omitempty"`
}

func (s *MonthlySummarySyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{Running: s.syncRunning}
	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastSyncStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastSyncCompletedAt = &completedAt
	}

	return status
}
