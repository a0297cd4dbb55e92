package dto

type ScoreEntry struct {
	StudentID string  `json:"student_id" binding:"required"`
	Subject   string  `json:"subject" binding:"required"`
	CAScore   float64 `json:"ca_score" binding:"min=0"`
	ExamScore float64 `json:"exam_score" binding:"min=0"`
	Term      string  `json:"term" binding:"required"`
	Session   string  `json:"session" binding:"required"`
}

// BulkScoreRequest is one class batch of CA/exam scores. The whole batch is
// written or none of it is.
type BulkScoreRequest struct {
	ClassName string       `json:"class_name" binding:"required"`
	Entries   []ScoreEntry `json:"entries" binding:"required,min=1,dive"`
}

type BulkScoreResponse struct {
	Count int `json:"count"`
}

type ScoreRowResponse struct {
	ID              string  `json:"id"`
	StudentID       string  `json:"student_id"`
	Subject         string  `json:"subject"`
	Term            string  `json:"term"`
	Session         string  `json:"session"`
	CAScore         float64 `json:"ca_score"`
	ExamScore       float64 `json:"exam_score"`
	TotalScore      float64 `json:"total_score"`
	Grade           string  `json:"grade"`
	Remark          string  `json:"remark"`
	ClassAtTime     string  `json:"class_at_time"`
	TeacherID       string  `json:"teacher_id"`
	PositionInClass string  `json:"position_in_class,omitempty"`
	StudentAverage  float64 `json:"student_average"`
	ClassAverage    float64 `json:"class_average"`
}

type CompileBroadsheetRequest struct {
	ClassName string `json:"class_name" binding:"required"`
	Term      string `json:"term" binding:"required"`
	Session   string `json:"session" binding:"required"`
}

type RankedStudent struct {
	StudentID    string  `json:"student_id"`
	Subjects     int     `json:"subjects"`
	Total        float64 `json:"total"`
	Average      float64 `json:"average"`
	Position     int     `json:"position"`
	PositionText string  `json:"position_text"`
}

type BroadsheetResponse struct {
	ClassName    string          `json:"class_name"`
	Term         string          `json:"term"`
	Session      string          `json:"session"`
	ClassAverage float64         `json:"class_average"`
	Students     []RankedStudent `json:"students"`
}
