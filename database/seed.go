package database

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"eduportal/model"
	"eduportal/utils/auth"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions. Each step skips itself when its
// rows already exist, so re-running on boot is safe.
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	if err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := s.SeedCourses(); err != nil {
		return fmt.Errorf("failed to seed courses: %w", err)
	}

	if err := s.SeedNotices(); err != nil {
		return fmt.Errorf("failed to seed notices: %w", err)
	}

	if err := s.SeedEnrollments(); err != nil {
		return fmt.Errorf("failed to seed enrollments: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedUsers creates the default admin and student accounts.
func (s *Seeder) SeedUsers() error {
	var count int64
	if err := s.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Users already exist, skipping...")
		return nil
	}

	adminHash, err := auth.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	studentHash, err := auth.HashPassword("student123")
	if err != nil {
		return fmt.Errorf("failed to hash student password: %w", err)
	}

	schools, err := json.Marshal([]model.PreviousSchool{
		{
			ID:        "ps1",
			Name:      "Springfield High School",
			Degree:    "High School Diploma",
			YearStart: "2018",
			YearEnd:   "2022",
		},
	})
	if err != nil {
		return err
	}

	marks, err := json.Marshal([]model.SemesterMarks{
		{
			ID:       "sem1",
			Semester: "Fall",
			Year:     "2022",
			GPA:      "3.8",
			Subjects: []model.SubjectMark{
				{ID: "sub1", Name: "Introduction to Programming", Grade: "A", Credits: 4},
				{ID: "sub2", Name: "Calculus I", Grade: "A-", Credits: 3},
				{ID: "sub3", Name: "English Composition", Grade: "B+", Credits: 3},
			},
		},
	})
	if err != nil {
		return err
	}

	users := []model.User{
		{
			Username:      "admin",
			Email:         "admin@example.com",
			PasswordHash:  adminHash,
			Role:          model.RoleAdmin,
			RollNumber:    "ADMIN001",
			ContactNumber: "+1 (555) 123-4567",
			Address:       "123 Admin Street, Admin City, 12345",
			Bio:           "Administrator with 5+ years of experience in educational management.",
		},
		{
			Username:        "student",
			Email:           "student@example.com",
			PasswordHash:    studentHash,
			Role:            model.RoleStudent,
			RollNumber:      "STU20230001",
			ContactNumber:   "+1 (555) 987-6543",
			Address:         "456 Student Avenue, College Town, 54321",
			Bio:             "Computer Science student passionate about web development and AI.",
			PreviousSchools: datatypes.JSON(schools),
			AcademicMarks:   datatypes.JSON(marks),
		},
	}

	for i := range users {
		if err := s.db.Create(&users[i]).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Created default admin and student accounts")
	return nil
}

// SeedCourses creates the default course catalog.
func (s *Seeder) SeedCourses() error {
	var count int64
	if err := s.db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Courses already exist, skipping...")
		return nil
	}

	courses := []model.Course{
		{
			Title:       "Introduction to Computer Science",
			Description: "Learn the basics of computer science and programming.",
			Instructor:  "Dr. Alan Turing",
			Credits:     4,
			Semester:    "Fall",
			Year:        "2023",
		},
		{
			Title:       "Web Development Fundamentals",
			Description: "Master HTML, CSS, and JavaScript to build modern websites.",
			Instructor:  "Prof. Tim Berners-Lee",
			Credits:     3,
			Semester:    "Fall",
			Year:        "2023",
		},
		{
			Title:       "Data Structures and Algorithms",
			Description: "Learn essential data structures and algorithms for efficient programming.",
			Instructor:  "Dr. Ada Lovelace",
			Credits:     4,
			Semester:    "Spring",
			Year:        "2023",
		},
		{
			Title:       "Mobile App Development",
			Description: "Build native mobile applications for iOS and Android platforms.",
			Instructor:  "Prof. Steve Jobs",
			Credits:     3,
			Semester:    "Spring",
			Year:        "2023",
		},
		{
			Title:       "Artificial Intelligence Basics",
			Description: "Introduction to AI concepts, machine learning, and neural networks.",
			Instructor:  "Dr. Geoffrey Hinton",
			Credits:     4,
			Semester:    "Fall",
			Year:        "2023",
		},
	}

	for i := range courses {
		if err := s.db.Create(&courses[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Created %d courses\n", len(courses))
	return nil
}

// SeedNotices creates the default notice board entries.
func (s *Seeder) SeedNotices() error {
	var count int64
	if err := s.db.Model(&model.Notice{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Notices already exist, skipping...")
		return nil
	}

	now := time.Now()
	careerFairDate := now.AddDate(0, 0, 30)

	examAttachments, err := json.Marshal([]model.Attachment{
		{ID: "att1", Name: "Final_Exam_Schedule.pdf", URL: "#", Type: "application/pdf"},
	})
	if err != nil {
		return err
	}

	careerFairAttachments, err := json.Marshal([]model.Attachment{
		{ID: "att2", Name: "Career_Fair_Companies.pdf", URL: "#", Type: "application/pdf"},
		{ID: "att3", Name: "Campus_Map.jpg", URL: "#", Type: "image/jpeg"},
	})
	if err != nil {
		return err
	}

	scholarshipAttachments, err := json.Marshal([]model.Attachment{
		{
			ID:   "att4",
			Name: "Scholarship_Application_Form.docx",
			URL:  "#",
			Type: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
	})
	if err != nil {
		return err
	}

	notices := []model.Notice{
		{
			Title:    "Welcome to the New Semester",
			Content:  "We are excited to welcome all students to the new academic semester. Please check your course schedules and make sure you have all the required materials for your classes. If you have any questions, feel free to contact the administration office.",
			Category: model.NoticeCategoryGeneral,
		},
		{
			Title:       "Important: Final Exam Schedule",
			Content:     "The final examination schedule for the current semester has been published. Please review the schedule carefully and note the dates, times, and locations of your exams. If you have any conflicts, please contact the examination office immediately to make alternative arrangements.",
			Category:    model.NoticeCategoryImportant,
			Attachments: datatypes.JSON(examAttachments),
		},
		{
			Title:       "Campus Career Fair",
			Content:     "The annual Campus Career Fair will be held next month. This is a great opportunity to meet potential employers, explore internship opportunities, and network with industry professionals. All students are encouraged to attend and bring their resumes. Professional attire is recommended.",
			Category:    model.NoticeCategoryEvent,
			EventDate:   &careerFairDate,
			Attachments: datatypes.JSON(careerFairAttachments),
		},
		{
			Title:    "Library Hours Extended During Finals Week",
			Content:  "To support students during the final examination period, the university library will extend its operating hours. The library will be open 24 hours a day from Monday to Friday during finals week. Additional study spaces will also be available throughout the campus.",
			Category: model.NoticeCategoryGeneral,
		},
		{
			Title:       "Scholarship Applications Now Open",
			Content:     "Applications for the next academic year scholarships are now open. Students with strong academic performance are encouraged to apply. The application deadline is in two months. Please visit the financial aid office or the university website for more information and application forms.",
			Category:    model.NoticeCategoryImportant,
			Attachments: datatypes.JSON(scholarshipAttachments),
		},
	}

	for i := range notices {
		if err := s.db.Create(&notices[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Created %d notices\n", len(notices))
	return nil
}

// SeedEnrollments enrolls the default student into the first three
// courses of the catalog.
func (s *Seeder) SeedEnrollments() error {
	var count int64
	if err := s.db.Model(&model.Enrollment{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Enrollments already exist, skipping...")
		return nil
	}

	var student model.User
	if err := s.db.First(&student, "username = ?", "student").Error; err != nil {
		log.Println("⚠️  Default student not found, skipping enrollment seeding")
		return nil
	}

	var courses []model.Course
	if err := s.db.Order("created_at").Limit(3).Find(&courses).Error; err != nil {
		return err
	}

	for _, course := range courses {
		enrollment := model.Enrollment{
			UserID:   student.ID,
			CourseID: course.ID,
			Status:   model.EnrollmentNotStarted,
			Progress: 0,
		}
		if err := s.db.Create(&enrollment).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Enrolled default student in %d courses\n", len(courses))
	return nil
}
