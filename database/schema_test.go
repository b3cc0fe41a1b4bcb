package database

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eduportal/model"
	"eduportal/store"
)

// newSQLiteStore migrates the full schema into an in-memory SQLite
// database with foreign-key enforcement on, so constraint behavior
// declared in the models is actually exercised.
func newSQLiteStore(t *testing.T) *GORMStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// A single connection keeps every statement on the same :memory:
	// database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	s := &GORMStore{db: db}
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// Activity log rows are audit history, not user-owned children: a
// user who has logged in (and so has entries) must still be
// deletable, and the entries must survive the deletion.
func TestUserDeleteKeepsActivityRows(t *testing.T) {
	s := newSQLiteStore(t)
	repos := s.Repositories()
	ctx := context.Background()

	user := &model.User{Username: "alice", Email: "alice@x.com", PasswordHash: "x", Role: model.RoleStudent}
	if err := repos.Users.Create(ctx, user); err != nil {
		t.Fatalf("Create user: %v", err)
	}
	for _, action := range []string{model.ActionRegister, model.ActionLogin} {
		entry := &model.ActivityLog{UserID: user.ID, Username: user.Username, Action: action}
		if err := repos.Activity.Append(ctx, entry); err != nil {
			t.Fatalf("Append %q: %v", action, err)
		}
	}

	if err := repos.Users.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete user with activity rows: %v", err)
	}
	if _, err := repos.Users.GetByID(ctx, user.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetByID after delete error = %v, want ErrNotFound", err)
	}

	logs, err := repos.Activity.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser after delete: %v", err)
	}
	if len(logs) != 2 {
		t.Errorf("len(logs) = %d, want 2 entries surviving the user", len(logs))
	}

	// The post-delete audit entry for the deletion itself must also
	// be acceptable even though its user no longer exists.
	entry := &model.ActivityLog{UserID: user.ID, Username: user.Username, Action: model.ActionDeleteAccount}
	if err := repos.Activity.Append(ctx, entry); err != nil {
		t.Errorf("Append after delete: %v", err)
	}
}

// Enrollment rows, by contrast, are owned children: deleting either
// side removes them.
func TestDeleteCascadesEnrollments(t *testing.T) {
	s := newSQLiteStore(t)
	repos := s.Repositories()
	ctx := context.Background()

	user := &model.User{Username: "bob", Email: "bob@x.com", PasswordHash: "x", Role: model.RoleStudent}
	if err := repos.Users.Create(ctx, user); err != nil {
		t.Fatalf("Create user: %v", err)
	}
	course := &model.Course{Title: "Networks", Instructor: "Dr. X"}
	if err := repos.Courses.Create(ctx, course); err != nil {
		t.Fatalf("Create course: %v", err)
	}
	enrollment := &model.Enrollment{UserID: user.ID, CourseID: course.ID, Status: model.EnrollmentNotStarted}
	if err := repos.Enrollments.Create(ctx, enrollment); err != nil {
		t.Fatalf("Create enrollment: %v", err)
	}

	if err := repos.Users.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete enrolled user: %v", err)
	}
	if _, err := repos.Enrollments.Get(ctx, user.ID, course.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get enrollment after user delete error = %v, want ErrNotFound", err)
	}
}

func TestUserUniqueConstraintsTranslate(t *testing.T) {
	s := newSQLiteStore(t)
	repos := s.Repositories()
	ctx := context.Background()

	first := &model.User{Username: "carol", Email: "carol@x.com", PasswordHash: "x", Role: model.RoleStudent}
	if err := repos.Users.Create(ctx, first); err != nil {
		t.Fatalf("Create user: %v", err)
	}

	dup := &model.User{Username: "carol", Email: "other@x.com", PasswordHash: "x", Role: model.RoleStudent}
	if err := repos.Users.Create(ctx, dup); !errors.Is(err, store.ErrConflict) {
		t.Errorf("Create duplicate username error = %v, want ErrConflict", err)
	}
}
