package jobs

import (
	"log"
	"time"

	"github.com/cfcpush/chatbot-backend/internal/storage"
)

// CleanupJob periodically removes expired sessions. Reads already filter
// expiry, so this only keeps the table from accumulating dead rows.
type CleanupJob struct {
	store    storage.Store
	interval time.Duration
	stopChan chan struct{}
}

// NewCleanupJob creates a new session cleanup job.
func NewCleanupJob(store storage.Store, interval time.Duration) *CleanupJob {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return &CleanupJob{
		store:    store,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins the cleanup loop in a goroutine.
func (j *CleanupJob) Start() {
	log.Printf("🧹 Session cleanup job started (every %s)", j.interval)

	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				j.run()
			case <-j.stopChan:
				log.Println("🛑 Session cleanup job stopped")
				return
			}
		}
	}()
}

// Stop terminates the cleanup loop.
func (j *CleanupJob) Stop() {
	close(j.stopChan)
}

func (j *CleanupJob) run() {
	removed, err := j.store.DeleteExpiredSessions()
	if err != nil {
		log.Printf("❌ Session cleanup failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("🧹 Removed %d expired sessions", removed)
	}
}
