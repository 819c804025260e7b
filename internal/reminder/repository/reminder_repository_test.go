package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	return gdb, mock
}

func TestClaimSentWinsOnce(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewReminderRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "reminders"`).
		WithArgs(true, "r-1", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	claimed, err := repo.ClaimSent("r-1")
	if err != nil {
		t.Fatalf("ClaimSent() error = %v", err)
	}
	if !claimed {
		t.Fatalf("expected claim to succeed")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestClaimSentLosesWhenAlreadySent(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewReminderRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "reminders"`).
		WithArgs(true, "r-1", false).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	claimed, err := repo.ClaimSent("r-1")
	if err != nil {
		t.Fatalf("ClaimSent() error = %v", err)
	}
	if claimed {
		t.Fatalf("claim must fail once sent is already true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestFindPendingSelectsDueUnsent(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewReminderRepository(gdb)

	rows := sqlmock.NewRows([]string{"reminder_id", "user_id", "letter_id", "reminder_time", "message", "sent", "created_at"}).
		AddRow("r-1", "u-1", "l-1", int64(1000), "pay the bill", false, int64(900))

	mock.ExpectQuery(`FROM "reminders"`).
		WithArgs(int64(1500), false).
		WillReturnRows(rows)

	reminders, err := repo.FindPending(1500)
	if err != nil {
		t.Fatalf("FindPending() error = %v", err)
	}
	if len(reminders) != 1 || reminders[0].ReminderID != "r-1" {
		t.Fatalf("reminders = %+v", reminders)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestFindByIDMissingReturnsNil(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewReminderRepository(gdb)

	mock.ExpectQuery(`FROM "reminders"`).
		WillReturnRows(sqlmock.NewRows([]string{"reminder_id"}))

	reminder, err := repo.FindByID("missing")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if reminder != nil {
		t.Fatalf("expected nil for a missing reminder, got %+v", reminder)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
