package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flboutique/boutique-api/infrastructure/repository"
	"github.com/flboutique/boutique-api/internal/config"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/pkg/utils"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// ReminderConfig representa a configuração do lembrete diário
type ReminderConfig struct {
	CronSchedule string
	Enabled      bool
	OverdueDays  int // carência em dias antes de considerar vencida
}

// ReminderService agenda o aviso diário de parcelas vencidas e malas
// atrasadas. O job só escreve no log: o aviso no WhatsApp continua manual.
type ReminderService struct {
	scheduler   *gocron.Scheduler
	config      ReminderConfig
	financeRepo repository.FinanceRepository
	bagRepo     repository.BagRepository
	runMutex    sync.Mutex
	runRunning  bool
	lastRunAt   time.Time
	now         func() time.Time
}

// NewReminderService cria o serviço de lembretes a partir da config global
func NewReminderService(
	financeRepo repository.FinanceRepository,
	bagRepo repository.BagRepository,
	appConfig *config.Config,
) *ReminderService {
	reminderConfig := ReminderConfig{
		CronSchedule: appConfig.Reminder.CronSchedule,
		Enabled:      appConfig.Reminder.Enabled,
		OverdueDays:  appConfig.Reminder.OverdueDays,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reminderConfig.CronSchedule,
		"enabled":       reminderConfig.Enabled,
		"overdue_days":  reminderConfig.OverdueDays,
	}).Info("Configuração do lembrete diário carregada")

	return &ReminderService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      reminderConfig,
		financeRepo: financeRepo,
		bagRepo:     bagRepo,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *ReminderService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Lembrete diário desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de lembretes")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunNow(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar lembrete diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de lembretes")
		s.scheduler.Stop()
	}()

	return nil
}

// Stop para o agendador
func (s *ReminderService) Stop() {
	s.scheduler.Stop()
}

// RunNow executa a checagem de pendências imediatamente. Também atende o
// endpoint de disparo manual.
func (s *ReminderService) RunNow(ctx context.Context) {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Checagem de pendências já em andamento, ignorando")
		return
	}
	s.runRunning = true
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.runMutex.Unlock()
	}()

	s.lastRunAt = s.now()
	// Dia calendário local, igual à regra do Pix no gerador de parcelas
	today := time.Date(s.lastRunAt.Year(), s.lastRunAt.Month(), s.lastRunAt.Day(), 0, 0, 0, 0, s.lastRunAt.Location())
	cutoff := today.AddDate(0, 0, -s.config.OverdueDays)

	s.reportOverdueReceivables(ctx, cutoff)
	s.reportLateBags(ctx, today)
}

func (s *ReminderService) reportOverdueReceivables(ctx context.Context, cutoff time.Time) {
	entries, err := s.financeRepo.ListEntries(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar lançamentos para o lembrete")
		return
	}

	count := 0
	for _, entry := range entries {
		if entry.Kind != domain.EntrySale || entry.PaymentStatus != domain.PaymentPending {
			continue
		}
		if !entry.DueDate.Before(cutoff) {
			continue
		}

		count++
		logrus.WithFields(logrus.Fields{
			"lancamento": entry.ID,
			"descricao":  entry.Description,
			"valor":      entry.Amount,
			"vencimento": utils.FormatDateBR(entry.DueDate),
		}).Warn("Parcela vencida sem recebimento")
	}

	if count == 0 {
		logrus.Info("Nenhuma parcela vencida")
	} else {
		logrus.Infof("%d parcela(s) vencida(s) aguardando recebimento", count)
	}
}

func (s *ReminderService) reportLateBags(ctx context.Context, today time.Time) {
	bags, err := s.bagRepo.ListBags(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar malas para o lembrete")
		return
	}

	count := 0
	for _, bag := range bags {
		if bag.Status != domain.BagOpen || bag.ExpectedReturn.IsZero() {
			continue
		}
		if !bag.ExpectedReturn.Before(today) {
			continue
		}

		count++
		logrus.WithFields(logrus.Fields{
			"mala":             bag.ID,
			"cliente":          bag.CustomerName,
			"retorno_previsto": utils.FormatDateBR(bag.ExpectedReturn),
			"pecas":            len(bag.ProductIDs),
		}).Warn("Mala aberta com retorno atrasado")
	}

	if count == 0 {
		logrus.Info("Nenhuma mala atrasada")
	} else {
		logrus.Infof("%d mala(s) com retorno atrasado", count)
	}
}
