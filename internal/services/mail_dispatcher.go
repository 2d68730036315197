package services

import (
	"log"
	"sync"

	dbm "github.com/Aryan1591/TravelBuddy-Notification-Service/internal/models/db_models"
	"github.com/Aryan1591/TravelBuddy-Notification-Service/pkg/utils"
)

// MailJob is one reminder delivery: a (trip, participant) pair with the
// address already resolved.
type MailJob struct {
	To   string
	User string
	Post *dbm.Post
}

// MailDispatcher decouples delivery from evaluation. Enqueue hands the
// job to a bounded worker pool and returns; nobody waits on the actual
// SMTP round trip and no delivery result feeds back into lifecycle
// state. A delivery failure is a log line, isolated to its recipient.
type MailDispatcher interface {
	Enqueue(job MailJob) error
	Start()
	Stop()
}

type mailDispatcher struct {
	mail    IMailService
	jobs    chan MailJob
	workers int

	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewMailDispatcher(mail IMailService, workers, queueSize int) MailDispatcher {
	if workers < 1 {
		workers = 4
	}
	if queueSize < 1 {
		queueSize = 64
	}
	return &mailDispatcher{
		mail:    mail,
		jobs:    make(chan MailJob, queueSize),
		workers: workers,
	}
}

func (d *mailDispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	log.Printf("Mail dispatcher started with %d workers", d.workers)
}

// Stop closes the queue and waits for in-flight deliveries to drain.
func (d *mailDispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	close(d.jobs)
	d.wg.Wait()
	log.Println("Mail dispatcher stopped")
}

// Enqueue blocks only when the queue is full; it never waits for the
// delivery itself.
func (d *mailDispatcher) Enqueue(job MailJob) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return utils.ErrDispatcherClosed
	}
	d.jobs <- job
	return nil
}

func (d *mailDispatcher) worker() {
	defer d.wg.Done()
	for job := range d.jobs {
		log.Printf("SendMail triggered for user: %s to address: %s", job.User, job.To)
		if err := d.mail.SendTripReminder(job.To, job.User, job.Post); err != nil {
			log.Printf("Failed to send reminder to %s for post %s: %v", job.To, job.Post.ID, err)
			continue
		}
		log.Printf("Email sent successfully to %s", job.To)
	}
}
