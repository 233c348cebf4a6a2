package service

import (
	"sync"
	"sync/atomic"

	"astro-admin-api/internal/domain/entity"
	"astro-admin-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const auditBufferSize = 256

// AuditService is a best-effort, non-blocking audit sink. Events are
// queued onto a buffered channel and written by a background worker
// outside the caller's transaction. A full buffer drops the event and
// bumps a counter; write failures are logged and swallowed. Audit
// failures never affect the primary operation's outcome.
type AuditService interface {
	// Record queues an audit event. Never blocks, never returns an error.
	Record(adminID *uuid.UUID, action string, metadata entity.JSON)
	// Dropped reports how many events were discarded because the buffer
	// was full or the service was stopped.
	Dropped() uint64
	// Stop drains queued events and stops the worker. Safe to call
	// multiple times.
	Stop()
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository

	events   chan entity.AuditLog
	stopChan chan struct{}
	wg       sync.WaitGroup
	mu       sync.RWMutex
	stopped  bool
	dropped  atomic.Uint64
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	svc := &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
		events:    make(chan entity.AuditLog, auditBufferSize),
		stopChan:  make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.worker()

	return svc
}

func (s *auditService) Record(adminID *uuid.UUID, action string, metadata entity.JSON) {
	// The read lock is held across the send so Stop cannot finish the
	// worker's final drain between the stopped check and the enqueue.
	// Every accepted event is therefore written; every refused one is
	// counted as dropped.
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.stopped {
		s.dropped.Add(1)
		return
	}

	event := entity.AuditLog{
		AdminID:  adminID,
		Action:   action,
		Metadata: metadata,
	}

	select {
	case s.events <- event:
	default:
		s.dropped.Add(1)
		s.log.Warnf("Audit buffer full, dropping event: %s", action)
	}
}

func (s *auditService) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *auditService) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	close(s.stopChan)
	s.wg.Wait()
	s.log.Info("AuditService stopped")
}

func (s *auditService) worker() {
	defer s.wg.Done()

	for {
		select {
		case event := <-s.events:
			s.write(event)
		case <-s.stopChan:
			// Drain whatever is already queued, then exit.
			for {
				select {
				case event := <-s.events:
					s.write(event)
				default:
					return
				}
			}
		}
	}
}

func (s *auditService) write(event entity.AuditLog) {
	if err := s.auditRepo.Create(s.db, &event); err != nil {
		s.log.Warnf("Failed to write audit log: %+v", err)
	}
}
