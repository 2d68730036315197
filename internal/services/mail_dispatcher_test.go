package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "github.com/Aryan1591/TravelBuddy-Notification-Service/internal/models/db_models"
	"github.com/Aryan1591/TravelBuddy-Notification-Service/pkg/utils"
)

type recordingMailService struct {
	mu      sync.Mutex
	sent    []string
	sendErr error
}

func (m *recordingMailService) SendTripReminder(to, user string, _ *dbm.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return m.sendErr
}

func (m *recordingMailService) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}

func TestDispatcherDeliversAllQueuedJobs(t *testing.T) {
	mail := &recordingMailService{}
	d := NewMailDispatcher(mail, 3, 16)
	d.Start()

	post := &dbm.Post{ID: "t1"}
	for _, to := range []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"} {
		require.NoError(t, d.Enqueue(MailJob{To: to, User: to, Post: post}))
	}

	// Stop drains the queue before returning.
	d.Stop()

	assert.ElementsMatch(t, []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"}, mail.recipients())
}

func TestDispatcherSurvivesDeliveryFailure(t *testing.T) {
	mail := &recordingMailService{sendErr: errors.New("smtp refused")}
	d := NewMailDispatcher(mail, 1, 4)
	d.Start()

	post := &dbm.Post{ID: "t1"}
	require.NoError(t, d.Enqueue(MailJob{To: "a@x.com", User: "a", Post: post}))
	require.NoError(t, d.Enqueue(MailJob{To: "b@x.com", User: "b", Post: post}))
	d.Stop()

	// every job was attempted despite failures
	assert.Len(t, mail.recipients(), 2)
}

func TestDispatcherRejectsEnqueueAfterStop(t *testing.T) {
	d := NewMailDispatcher(&recordingMailService{}, 1, 4)
	d.Start()
	d.Stop()

	err := d.Enqueue(MailJob{To: "a@x.com", User: "a", Post: &dbm.Post{ID: "t1"}})
	assert.ErrorIs(t, err, utils.ErrDispatcherClosed)

	// repeated Stop is a no-op
	d.Stop()
}

func TestDispatcherDefaultsSizing(t *testing.T) {
	d := NewMailDispatcher(&recordingMailService{}, 0, 0).(*mailDispatcher)
	assert.Equal(t, 4, d.workers)
	assert.Equal(t, 64, cap(d.jobs))
}
