package services

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-gomail/gomail"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
	"github.com/harentsoaR/carewave-api/internal/store/memstore"
	"github.com/harentsoaR/carewave-api/internal/utils"
)

func TestMain(m *testing.M) {
	utils.BcryptCost = 4
	os.Exit(m.Run())
}

// fixedNow is 2025-06-01 09:00 UTC.
func fixedNow() time.Time {
	return time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
}

// fakeMailer records every message instead of dialing SMTP.
type fakeMailer struct {
	mu   sync.Mutex
	sent []*gomail.Message
	err  error
	done chan struct{}
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{done: make(chan struct{}, 8)}
}

func (f *fakeMailer) DialAndSend(m ...*gomail.Message) error {
	f.mu.Lock()
	f.sent = append(f.sent, m...)
	f.mu.Unlock()
	f.done <- struct{}{}
	return f.err
}

func (f *fakeMailer) messages() []*gomail.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*gomail.Message(nil), f.sent...)
}

func addPatient(t *testing.T, s *store.Store, name, contact string) *models.Patient {
	t.Helper()
	p := &models.Patient{Name: name, ContactInfo: contact, Address: "123 Moi Avenue, Nairobi"}
	require.NoError(t, NewPatientService(s).Create(context.Background(), p))
	return p
}

func newStore() *store.Store {
	return memstore.New()
}
