package model

import "time"

// ClassEnrollment records which class a student currently belongs to.
type ClassEnrollment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StudentID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_class_enrollments_student_class" json:"student_id"`
	ClassName string    `gorm:"not null;uniqueIndex:idx_class_enrollments_student_class;index" json:"class_name"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StudentClearance is written by the finance subsystem; the exam engine only reads it.
type StudentClearance struct {
	StudentID       string    `gorm:"primaryKey;type:varchar(64)" json:"student_id"`
	ClearedForExams bool      `gorm:"not null;default:false" json:"cleared_for_exams"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// GuardianLink lets a guardian read a student's results.
type GuardianLink struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	GuardianID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_guardian_links_pair" json:"guardian_id"`
	StudentID  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_guardian_links_pair;index" json:"student_id"`
	CreatedAt  time.Time `json:"created_at"`
}
