package service

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"astro-admin-api/internal/domain/entity"
	"astro-admin-api/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter atomic.Int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:audit_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&entity.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func countLogs(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&entity.AuditLog{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count audit logs: %v", err)
	}
	return count
}

func TestRecordWritesEvent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuditService(db, testLogger(), repository.NewAuditLogRepository())

	adminID := uuid.New()
	svc.Record(&adminID, entity.AuditActionAdminLogin, entity.JSON{"email": "ops@example.com"})

	// Stop drains the queue, so the write is durable afterwards.
	svc.Stop()

	if got := countLogs(t, db); got != 1 {
		t.Fatalf("expected 1 audit row, got %d", got)
	}
	var saved entity.AuditLog
	db.First(&saved)
	if saved.Action != entity.AuditActionAdminLogin {
		t.Errorf("expected action %q, got %q", entity.AuditActionAdminLogin, saved.Action)
	}
	if saved.AdminID == nil || *saved.AdminID != adminID {
		t.Error("expected admin identity preserved")
	}
	if saved.Metadata["email"] != "ops@example.com" {
		t.Errorf("expected metadata preserved, got %+v", saved.Metadata)
	}
}

func TestRecordWithoutActor(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuditService(db, testLogger(), repository.NewAuditLogRepository())

	svc.Record(nil, "system.startup", nil)
	svc.Stop()

	if got := countLogs(t, db); got != 1 {
		t.Fatalf("expected 1 audit row, got %d", got)
	}
}

func TestStopDrainsQueuedEvents(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuditService(db, testLogger(), repository.NewAuditLogRepository())

	for i := 0; i < 20; i++ {
		svc.Record(nil, "astrologer.update", entity.JSON{"seq": i})
	}
	svc.Stop()

	if got := countLogs(t, db); got != 20 {
		t.Fatalf("expected all 20 queued events written on Stop, got %d", got)
	}
}

func TestRecordAfterStopIsDropped(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuditService(db, testLogger(), repository.NewAuditLogRepository())
	svc.Stop()

	svc.Record(nil, "admin.login", nil)
	svc.Record(nil, "admin.logout", nil)

	if got := svc.Dropped(); got != 2 {
		t.Errorf("expected 2 dropped events, got %d", got)
	}
	if got := countLogs(t, db); got != 0 {
		t.Errorf("expected no rows after stop, got %d", got)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	svc := NewAuditService(setupTestDB(t), testLogger(), repository.NewAuditLogRepository())
	svc.Stop()
	svc.Stop()
}

// Events raced against Stop must never vanish unaccounted: each Record
// either lands in the store or shows up in Dropped().
func TestStopAccountsForConcurrentRecords(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuditService(db, testLogger(), repository.NewAuditLogRepository())

	const writers = 4
	const perWriter = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				svc.Record(nil, "user.update", nil)
			}
		}()
	}

	svc.Stop()
	wg.Wait()

	written := countLogs(t, db)
	dropped := int64(svc.Dropped())
	if written+dropped != writers*perWriter {
		t.Fatalf("expected %d events accounted for, got %d written + %d dropped",
			writers*perWriter, written, dropped)
	}
}

func TestRecordNeverBlocks(t *testing.T) {
	svc := NewAuditService(setupTestDB(t), testLogger(), repository.NewAuditLogRepository())
	defer svc.Stop()

	done := make(chan struct{})
	go func() {
		// Far more events than the buffer holds; excess is dropped,
		// the caller keeps moving.
		for i := 0; i < 5000; i++ {
			svc.Record(nil, "user.update", nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Record blocked the caller")
	}
}
