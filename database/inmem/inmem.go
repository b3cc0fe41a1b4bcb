// Package inmem provides map-backed implementations of the store
// repositories and session store. They are used by tests and as a
// session fallback when Redis is not configured.
package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"eduportal/model"
	"eduportal/store"
)

// NewRepositories returns a fresh, empty repository bundle.
func NewRepositories() store.Repositories {
	return store.Repositories{
		Users:       NewUserRepository(),
		Courses:     NewCourseRepository(),
		Enrollments: NewEnrollmentRepository(),
		Notices:     NewNoticeRepository(),
		Inquiries:   NewInquiryRepository(),
		Activity:    NewActivityRepository(),
	}
}

// UserRepository is a map-backed store.UserRepository.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
	order []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]model.User)}
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return store.ErrConflict
		}
	}

	assignUserDefaults(u)
	r.users[u.ID] = *u
	r.order = append(r.order, u.ID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.order))
	for _, id := range r.order {
		if u, ok := r.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *UserRepository) Save(ctx context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; !ok {
		return store.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	r.users[u.ID] = *u
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func assignUserDefaults(u *model.User) {
	if u.ID == "" {
		u.ID = newID()
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = model.RoleStudent
	}
}

// CourseRepository is a map-backed store.CourseRepository.
type CourseRepository struct {
	mu      sync.RWMutex
	courses map[string]model.Course
	order   []string
}

func NewCourseRepository() *CourseRepository {
	return &CourseRepository{courses: make(map[string]model.Course)}
}

func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = newID()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	r.courses[c.ID] = *c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id string) (*model.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.courses[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := make([]model.Course, 0, len(r.order))
	for _, id := range r.order {
		if c, ok := r.courses[id]; ok {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func (r *CourseRepository) Save(ctx context.Context, c *model.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[c.ID]; !ok {
		return store.ErrNotFound
	}
	c.UpdatedAt = time.Now()
	r.courses[c.ID] = *c
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.courses, id)
	return nil
}

// EnrollmentRepository is a map-backed store.EnrollmentRepository.
type EnrollmentRepository struct {
	mu          sync.RWMutex
	enrollments map[string]model.Enrollment
	order       []string
}

func NewEnrollmentRepository() *EnrollmentRepository {
	return &EnrollmentRepository{enrollments: make(map[string]model.Enrollment)}
}

func enrollmentKey(userID, courseID string) string {
	return userID + "/" + courseID
}

func (r *EnrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := enrollmentKey(e.UserID, e.CourseID)
	if _, ok := r.enrollments[key]; ok {
		return store.ErrConflict
	}
	if e.EnrolledAt.IsZero() {
		e.EnrolledAt = time.Now()
	}
	r.enrollments[key] = *e
	r.order = append(r.order, key)
	return nil
}

func (r *EnrollmentRepository) Get(ctx context.Context, userID, courseID string) (*model.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.enrollments[enrollmentKey(userID, courseID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &e, nil
}

func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID string) ([]model.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var enrollments []model.Enrollment
	for _, key := range r.order {
		if e, ok := r.enrollments[key]; ok && e.UserID == userID {
			enrollments = append(enrollments, e)
		}
	}
	return enrollments, nil
}

func (r *EnrollmentRepository) Save(ctx context.Context, e *model.Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := enrollmentKey(e.UserID, e.CourseID)
	if _, ok := r.enrollments[key]; !ok {
		return store.ErrNotFound
	}
	r.enrollments[key] = *e
	return nil
}

// NoticeRepository is a map-backed store.NoticeRepository.
type NoticeRepository struct {
	mu      sync.RWMutex
	notices map[string]model.Notice
	order   []string
}

func NewNoticeRepository() *NoticeRepository {
	return &NoticeRepository{notices: make(map[string]model.Notice)}
}

func (r *NoticeRepository) Create(ctx context.Context, n *model.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		n.ID = newID()
	}
	now := time.Now()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	n.UpdatedAt = now

	r.notices[n.ID] = *n
	r.order = append(r.order, n.ID)
	return nil
}

func (r *NoticeRepository) GetByID(ctx context.Context, id string) (*model.Notice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notices[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &n, nil
}

func (r *NoticeRepository) List(ctx context.Context) ([]model.Notice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notices := make([]model.Notice, 0, len(r.order))
	for _, id := range r.order {
		if n, ok := r.notices[id]; ok {
			notices = append(notices, n)
		}
	}
	sort.SliceStable(notices, func(i, j int) bool {
		return notices[i].CreatedAt.After(notices[j].CreatedAt)
	})
	return notices, nil
}

func (r *NoticeRepository) Save(ctx context.Context, n *model.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notices[n.ID]; !ok {
		return store.ErrNotFound
	}
	n.UpdatedAt = time.Now()
	r.notices[n.ID] = *n
	return nil
}

func (r *NoticeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notices[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.notices, id)
	return nil
}

// InquiryRepository is a map-backed store.InquiryRepository.
type InquiryRepository struct {
	mu        sync.RWMutex
	inquiries map[string]model.Inquiry
	order     []string
}

func NewInquiryRepository() *InquiryRepository {
	return &InquiryRepository{inquiries: make(map[string]model.Inquiry)}
}

func (r *InquiryRepository) Create(ctx context.Context, i *model.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i.ID == "" {
		i.ID = newID()
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}
	if i.Status == "" {
		i.Status = model.InquiryPending
	}

	r.inquiries[i.ID] = *i
	r.order = append(r.order, i.ID)
	return nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*model.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.inquiries[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &i, nil
}

func (r *InquiryRepository) List(ctx context.Context) ([]model.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inquiries := make([]model.Inquiry, 0, len(r.order))
	for _, id := range r.order {
		if i, ok := r.inquiries[id]; ok {
			inquiries = append(inquiries, i)
		}
	}
	return inquiries, nil
}

func (r *InquiryRepository) ListByEmail(ctx context.Context, email string) ([]model.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var inquiries []model.Inquiry
	for _, id := range r.order {
		if i, ok := r.inquiries[id]; ok && i.Email == email {
			inquiries = append(inquiries, i)
		}
	}
	return inquiries, nil
}

func (r *InquiryRepository) Save(ctx context.Context, i *model.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.inquiries[i.ID]; !ok {
		return store.ErrNotFound
	}
	r.inquiries[i.ID] = *i
	return nil
}

// ActivityRepository is a map-backed store.ActivityRepository.
type ActivityRepository struct {
	mu   sync.RWMutex
	logs []model.ActivityLog
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) Append(ctx context.Context, l *model.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.ID == "" {
		l.ID = newID()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	r.logs = append(r.logs, *l)
	return nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]model.ActivityLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logs := make([]model.ActivityLog, len(r.logs))
	copy(logs, r.logs)
	return logs, nil
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID string) ([]model.ActivityLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var logs []model.ActivityLog
	for _, l := range r.logs {
		if l.UserID == userID {
			logs = append(logs, l)
		}
	}
	return logs, nil
}

func (r *ActivityRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.logs[:0]
	var removed int64
	for _, l := range r.logs {
		if l.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	r.logs = kept
	return removed, nil
}
