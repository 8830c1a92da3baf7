package background

import (
	"errors"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"

	"github.com/civictrack/civictrack-api/store"
)

const (
	logPrefix = "background"

	TaskCreateNotification = "create_notification"
	TaskEventReminderSweep = "event_reminder_sweep"
)

// BackgroundManager runs the async side of the service: notification
// creation enqueued by the API and the periodic event reminder sweep.
type BackgroundManager struct {
	store store.CivicCore

	taskServer *machinery.Server

	worker *machinery.Worker

	sweep *ReminderSweep

	done chan struct{}
}

func New(ormDB *gorm.DB, taskServer *machinery.Server) *BackgroundManager {
	civicStore := store.NewCivicStore(ormDB)

	return &BackgroundManager{
		store:      civicStore,
		taskServer: taskServer,
		sweep:      NewReminderSweep(civicStore),
	}
}

// RegisterTasks registers every task this worker executes.
func (m *BackgroundManager) RegisterTasks() error {
	if err := m.taskServer.RegisterTask(TaskCreateNotification, m.CreateNotification); err != nil {
		return err
	}
	return m.taskServer.RegisterTask(TaskEventReminderSweep, m.sweep.Run)
}

// Run spawns workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("civictrack-worker", 5)
	return m.worker.Launch()
}

// CreateNotification persists a notification row. The API enqueues this
// fire-and-forget; nobody consumes the result.
func (m *BackgroundManager) CreateNotification(accountNumber, message, reportID, eventID string) error {
	return m.store.CreateNotification(accountNumber, message, reportID, eventID)
}

// StartReminderSchedule enqueues a reminder sweep on every tick until
// StopReminderSchedule is called.
func (m *BackgroundManager) StartReminderSchedule(interval time.Duration) {
	m.done = make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sig := &tasks.Signature{Name: TaskEventReminderSweep}
				if _, err := m.taskServer.SendTask(sig); err != nil {
					log.WithFields(log.Fields{
						"prefix": logPrefix,
						"error":  err,
					}).Error("enqueue reminder sweep")
				}
			case <-m.done:
				return
			}
		}
	}()
}

func (m *BackgroundManager) StopReminderSchedule() {
	if m.done != nil {
		close(m.done)
	}
}
