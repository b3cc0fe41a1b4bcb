package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"eduportal/model"
	"eduportal/store"
)

// Repositories returns the GORM-backed repository bundle for a
// connected store.
func (s *GORMStore) Repositories() store.Repositories {
	return store.Repositories{
		Users:       &userRepo{db: s.db},
		Courses:     &courseRepo{db: s.db},
		Enrollments: &enrollmentRepo{db: s.db},
		Notices:     &noticeRepo{db: s.db},
		Inquiries:   &inquiryRepo{db: s.db},
		Activity:    &activityRepo{db: s.db},
	}
}

// translate maps gorm's not-found condition onto the store sentinel.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return store.ErrConflict
	}
	return err
}

type userRepo struct {
	db *gorm.DB
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (r *userRepo) Save(ctx context.Context, u *model.User) error {
	return translate(r.db.WithContext(ctx).Save(u).Error)
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

type courseRepo struct {
	db *gorm.DB
}

func (r *courseRepo) Create(ctx context.Context, c *model.Course) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	var c model.Course
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.WithContext(ctx).Order("created_at").Find(&courses).Error; err != nil {
		return nil, translate(err)
	}
	return courses, nil
}

func (r *courseRepo) Save(ctx context.Context, c *model.Course) error {
	return translate(r.db.WithContext(ctx).Save(c).Error)
}

func (r *courseRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Course{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

type enrollmentRepo struct {
	db *gorm.DB
}

func (r *enrollmentRepo) Create(ctx context.Context, e *model.Enrollment) error {
	return translate(r.db.WithContext(ctx).Create(e).Error)
}

func (r *enrollmentRepo) Get(ctx context.Context, userID, courseID string) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.db.WithContext(ctx).
		First(&e, "user_id = ? AND course_id = ?", userID, courseID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *enrollmentRepo) ListByUser(ctx context.Context, userID string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Order("enrolled_at").
		Find(&enrollments, "user_id = ?", userID).Error
	if err != nil {
		return nil, translate(err)
	}
	return enrollments, nil
}

func (r *enrollmentRepo) Save(ctx context.Context, e *model.Enrollment) error {
	return translate(r.db.WithContext(ctx).Save(e).Error)
}

type noticeRepo struct {
	db *gorm.DB
}

func (r *noticeRepo) Create(ctx context.Context, n *model.Notice) error {
	return translate(r.db.WithContext(ctx).Create(n).Error)
}

func (r *noticeRepo) GetByID(ctx context.Context, id string) (*model.Notice, error) {
	var n model.Notice
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

func (r *noticeRepo) List(ctx context.Context) ([]model.Notice, error) {
	var notices []model.Notice
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&notices).Error; err != nil {
		return nil, translate(err)
	}
	return notices, nil
}

func (r *noticeRepo) Save(ctx context.Context, n *model.Notice) error {
	return translate(r.db.WithContext(ctx).Save(n).Error)
}

func (r *noticeRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Notice{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

type inquiryRepo struct {
	db *gorm.DB
}

func (r *inquiryRepo) Create(ctx context.Context, i *model.Inquiry) error {
	return translate(r.db.WithContext(ctx).Create(i).Error)
}

func (r *inquiryRepo) GetByID(ctx context.Context, id string) (*model.Inquiry, error) {
	var i model.Inquiry
	if err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &i, nil
}

func (r *inquiryRepo) List(ctx context.Context) ([]model.Inquiry, error) {
	var inquiries []model.Inquiry
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, translate(err)
	}
	return inquiries, nil
}

func (r *inquiryRepo) ListByEmail(ctx context.Context, email string) ([]model.Inquiry, error) {
	var inquiries []model.Inquiry
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&inquiries, "email = ?", email).Error
	if err != nil {
		return nil, translate(err)
	}
	return inquiries, nil
}

func (r *inquiryRepo) Save(ctx context.Context, i *model.Inquiry) error {
	return translate(r.db.WithContext(ctx).Save(i).Error)
}

type activityRepo struct {
	db *gorm.DB
}

func (r *activityRepo) Append(ctx context.Context, l *model.ActivityLog) error {
	return translate(r.db.WithContext(ctx).Create(l).Error)
}

func (r *activityRepo) List(ctx context.Context) ([]model.ActivityLog, error) {
	var logs []model.ActivityLog
	if err := r.db.WithContext(ctx).Find(&logs).Error; err != nil {
		return nil, translate(err)
	}
	return logs, nil
}

func (r *activityRepo) ListByUser(ctx context.Context, userID string) ([]model.ActivityLog, error) {
	var logs []model.ActivityLog
	if err := r.db.WithContext(ctx).Find(&logs, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return logs, nil
}

func (r *activityRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.ActivityLog{})
	return res.RowsAffected, translate(res.Error)
}
