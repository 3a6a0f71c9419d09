package reminder

import (
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/DennisWallner/HostDesk/app/models"
	"github.com/DennisWallner/HostDesk/internal/pkg/cache"
	"github.com/DennisWallner/HostDesk/internal/pkg/mail"
)

// Scheduler periodically mails reminders for overdue invoices. A Redis key per
// invoice and day keeps restarts and multiple instances from double-sending.
type Scheduler struct {
	db       *gorm.DB
	sendMail func(to, subject, body string) error
	dedupe   func(key string, ttl time.Duration) (bool, error)
	now      func() time.Time

	ticker  *time.Ticker
	stopCh  chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewScheduler creates a reminder scheduler on the shared database handle.
func NewScheduler(db *gorm.DB) *Scheduler {
	return &Scheduler{
		db:       db,
		sendMail: mail.SendMail,
		dedupe: func(key string, ttl time.Duration) (bool, error) {
			return cache.SetNX(key, "1", ttl)
		},
		now: time.Now,
	}
}

// Start begins the background sweep loop.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	interval := 24 * time.Hour
	if settings := models.GetAppSettings(); settings != nil {
		interval = settings.GetReminderInterval()
	}

	s.stopCh = make(chan struct{})
	s.ticker = time.NewTicker(interval)
	s.running = true

	s.wg.Add(1)
	go s.loop()

	log.Infof("[Reminder] Started, sweeping every %v", interval)
}

// Stop halts the sweep loop and waits for an in-flight sweep to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.ticker.Stop()
	close(s.stopCh)
	s.wg.Wait()
	s.running = false

	log.Info("[Reminder] Stopped")
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	for {
		select {
		case <-s.ticker.C:
			if err := s.Sweep(); err != nil {
				log.Errorf("[Reminder] Sweep failed: %v", err)
			}
		case <-s.stopCh:
			return
		}
	}
}

// Sweep mails one reminder for every overdue open invoice that has not been
// reminded today. It is safe to call concurrently with the loop.
func (s *Scheduler) Sweep() error {
	if settings := models.GetAppSettings(); settings != nil && !settings.IsReminderEnabled() {
		return nil
	}

	now := s.now()

	var invoices []models.Invoice
	err := s.db.Preload("Customer").
		Where("status = ? AND due_at < ?", models.InvoiceStatusOpen, now).
		Find(&invoices).Error
	if err != nil {
		return fmt.Errorf("load overdue invoices failed: %w", err)
	}

	var sent int
	for i := range invoices {
		if s.remind(&invoices[i], now) {
			sent++
		}
	}

	if sent > 0 {
		log.Infof("[Reminder] Sent %d reminder(s) for %d overdue invoice(s)", sent, len(invoices))
	}
	return nil
}

func (s *Scheduler) remind(inv *models.Invoice, now time.Time) bool {
	if inv.Customer == nil || inv.Customer.Email == "" {
		log.Warnf("[Reminder] Invoice %s has no customer email, skipping", inv.Number)
		return false
	}

	key := fmt.Sprintf("reminder:invoice:%d:%s", inv.ID, now.UTC().Format("2006-01-02"))
	fresh, err := s.dedupe(key, 48*time.Hour)
	if err != nil {
		log.Warnf("[Reminder] Dedupe check failed for invoice %s: %v", inv.Number, err)
		// Without the cache we still send; a duplicate mail beats a missed one.
		fresh = true
	}
	if !fresh {
		return false
	}

	subject := fmt.Sprintf("Payment reminder for invoice %s", inv.Number)
	body := reminderBody(inv, now)
	if err := s.sendMail(inv.Customer.Email, subject, body); err != nil {
		log.Errorf("[Reminder] Mail for invoice %s failed: %v", inv.Number, err)
		return false
	}

	update := map[string]interface{}{
		"reminder_sent_at": now,
		"reminder_count":   gorm.Expr("reminder_count + 1"),
	}
	if err := s.db.Model(&models.Invoice{}).Where("id = ?", inv.ID).Updates(update).Error; err != nil {
		log.Errorf("[Reminder] Could not record reminder for invoice %s: %v", inv.Number, err)
	}
	return true
}

func reminderBody(inv *models.Invoice, now time.Time) string {
	overdueDays := int(now.Sub(inv.DueAt).Hours() / 24)
	return fmt.Sprintf(
		"<p>Dear %s,</p>"+
			"<p>invoice <strong>%s</strong> over %.2f %s was due on %s and is %d day(s) overdue.</p>"+
			"<p>Please settle the open amount at your earliest convenience.</p>",
		inv.Customer.Name,
		inv.Number,
		float64(inv.AmountCent)/100,
		inv.Currency,
		inv.DueAt.Format("2006-01-02"),
		overdueDays,
	)
}
