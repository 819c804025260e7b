package scheduler

import (
	"log"
	"time"

	"letteron-backend/internal/reminder/domain"
	"letteron-backend/internal/reminder/repository"
)

// Notifier receives reminders that came due. The default implementation
// only logs; notification transports plug in here.
type Notifier interface {
	Notify(reminder *domain.Reminder)
}

// LogNotifier writes due reminders to the application log.
type LogNotifier struct{}

func (LogNotifier) Notify(r *domain.Reminder) {
	log.Printf("[ReminderDispatcher] Reminder due for user %s, letter %s: %s", r.UserID, r.LetterID, r.Message)
}

// ReminderDispatcher periodically delivers due reminders
type ReminderDispatcher struct {
	reminderRepo repository.ReminderRepository
	notifier     Notifier
	interval     time.Duration
	stopChan     chan struct{}
}

// NewReminderDispatcher creates a new dispatcher
func NewReminderDispatcher(reminderRepo repository.ReminderRepository, notifier Notifier, interval time.Duration) *ReminderDispatcher {
	if interval <= 0 {
		interval = time.Minute
	}
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &ReminderDispatcher{
		reminderRepo: reminderRepo,
		notifier:     notifier,
		interval:     interval,
		stopChan:     make(chan struct{}),
	}
}

// Start begins the dispatcher loop
func (d *ReminderDispatcher) Start() {
	log.Printf("[ReminderDispatcher] Starting reminder dispatcher (interval: %s)", d.interval)

	go func() {
		// Run immediately on start
		d.dispatchDue()

		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				d.dispatchDue()
			case <-d.stopChan:
				log.Println("[ReminderDispatcher] Dispatcher stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the dispatcher
func (d *ReminderDispatcher) Stop() {
	close(d.stopChan)
}

// dispatchDue claims each due reminder before notifying so a second
// dispatcher instance never delivers the same reminder twice.
func (d *ReminderDispatcher) dispatchDue() {
	reminders, err := d.reminderRepo.FindPending(time.Now().Unix())
	if err != nil {
		log.Printf("[ReminderDispatcher] Error finding pending reminders: %v", err)
		return
	}

	if len(reminders) == 0 {
		return
	}

	log.Printf("[ReminderDispatcher] Found %d due reminder(s)", len(reminders))

	for _, reminder := range reminders {
		claimed, err := d.reminderRepo.ClaimSent(reminder.ReminderID)
		if err != nil {
			log.Printf("[ReminderDispatcher] Error claiming reminder %s: %v", reminder.ReminderID, err)
			continue
		}
		if !claimed {
			continue
		}
		d.notifier.Notify(reminder)
	}
}
