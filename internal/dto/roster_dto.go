package dto

type EnrollRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	ClassName string `json:"class_name" binding:"required"`
}

type SetClearanceRequest struct {
	Cleared *bool `json:"cleared" binding:"required"`
}

type LinkGuardianRequest struct {
	GuardianID string `json:"guardian_id" binding:"required"`
	StudentID  string `json:"student_id" binding:"required"`
}
