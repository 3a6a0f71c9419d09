package reminder

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DennisWallner/HostDesk/app/models"
)

func testInvoice() *models.Invoice {
	return &models.Invoice{
		ID:         7,
		Number:     "INV-2026-0007",
		AmountCent: 1999,
		Currency:   "EUR",
		Status:     models.InvoiceStatusOpen,
		DueAt:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Customer:   &models.Customer{Name: "Alice Example", Email: "alice@example.com"},
	}
}

func TestRemindSkipsWithoutCustomerEmail(t *testing.T) {
	inv := testInvoice()
	inv.Customer.Email = ""

	s := &Scheduler{
		sendMail: func(to, subject, body string) error {
			t.Fatal("mail must not be sent without a recipient")
			return nil
		},
	}

	assert.False(t, s.remind(inv, time.Now()))
}

func TestRemindSkipsWhenAlreadySentToday(t *testing.T) {
	var gotKey string
	s := &Scheduler{
		dedupe: func(key string, ttl time.Duration) (bool, error) {
			gotKey = key
			return false, nil
		},
		sendMail: func(to, subject, body string) error {
			t.Fatal("deduped invoice must not be mailed again")
			return nil
		},
	}

	now := time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC)
	assert.False(t, s.remind(testInvoice(), now))
	assert.Equal(t, "reminder:invoice:7:2026-03-05", gotKey)
}

func TestRemindReportsFailedMail(t *testing.T) {
	s := &Scheduler{
		dedupe: func(key string, ttl time.Duration) (bool, error) {
			return true, nil
		},
		sendMail: func(to, subject, body string) error {
			return errors.New("smtp down")
		},
	}

	assert.False(t, s.remind(testInvoice(), time.Now()))
}

func TestReminderBody(t *testing.T) {
	inv := testInvoice()
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	body := reminderBody(inv, now)

	assert.True(t, strings.Contains(body, "Alice Example"))
	assert.True(t, strings.Contains(body, "INV-2026-0007"))
	assert.True(t, strings.Contains(body, "19.99 EUR"))
	assert.True(t, strings.Contains(body, "2026-03-01"))
	assert.True(t, strings.Contains(body, "4 day(s) overdue"))
}
