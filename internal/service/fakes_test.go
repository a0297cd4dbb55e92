package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/lshigami/cbtengine/internal/model"
	"github.com/lshigami/cbtengine/internal/repository"
)

type fakeExamRepo struct {
	mu    sync.Mutex
	exams map[string]*model.ExamDefinition
	err   error
}

func newFakeExamRepo(exams ...*model.ExamDefinition) *fakeExamRepo {
	r := &fakeExamRepo{exams: make(map[string]*model.ExamDefinition)}
	for _, e := range exams {
		r.exams[e.ID] = e
	}
	return r
}

func (r *fakeExamRepo) Create(ctx context.Context, exam *model.ExamDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if exam.ID == "" {
		exam.ID = "exam-" + string(rune('a'+len(r.exams)))
	}
	copied := *exam
	r.exams[exam.ID] = &copied
	return nil
}

func (r *fakeExamRepo) FindByIDWithQuestions(ctx context.Context, id string) (*model.ExamDefinition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	e, ok := r.exams[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *e
	copied.Questions = append([]model.ExamQuestion(nil), e.Questions...)
	return &copied, nil
}

func (r *fakeExamRepo) FindByClass(ctx context.Context, className string, status model.ExamStatus) ([]model.ExamDefinition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.ExamDefinition
	for _, e := range r.exams {
		if e.TargetClass == className && (status == "" || e.Status == status) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *fakeExamRepo) UpdateStatus(ctx context.Context, id string, status model.ExamStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.exams[id]
	if !ok {
		return repository.ErrNotFound
	}
	e.Status = status
	return nil
}

type fakeQuestionRepo struct {
	questions map[string]model.QuestionBankItem
}

func newFakeQuestionRepo(items ...model.QuestionBankItem) *fakeQuestionRepo {
	r := &fakeQuestionRepo{questions: make(map[string]model.QuestionBankItem)}
	for _, q := range items {
		r.questions[q.ID] = q
	}
	return r
}

func (r *fakeQuestionRepo) Create(ctx context.Context, q *model.QuestionBankItem) error {
	if q.ID == "" {
		q.ID = "q-new"
	}
	r.questions[q.ID] = *q
	return nil
}

func (r *fakeQuestionRepo) FindByID(ctx context.Context, id string) (*model.QuestionBankItem, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &q, nil
}

func (r *fakeQuestionRepo) FindByIDs(ctx context.Context, ids []string) ([]model.QuestionBankItem, error) {
	var out []model.QuestionBankItem
	for _, id := range ids {
		if q, ok := r.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) FindAll(ctx context.Context, subject string, difficulty model.Difficulty) ([]model.QuestionBankItem, error) {
	var out []model.QuestionBankItem
	for _, q := range r.questions {
		if (subject == "" || q.Subject == subject) && (difficulty == "" || q.Difficulty == difficulty) {
			out = append(out, q)
		}
	}
	return out, nil
}

// fakeResultRepo enforces (student, exam) uniqueness under a lock, the way the
// unique index does in the database.
type fakeResultRepo struct {
	mu      sync.Mutex
	results map[[2]string]model.ExamAttemptResult
	creates int
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{results: make(map[[2]string]model.ExamAttemptResult)}
}

func (r *fakeResultRepo) Create(ctx context.Context, result *model.ExamAttemptResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]string{result.StudentID, result.ExamID}
	if _, ok := r.results[key]; ok {
		return repository.ErrDuplicate
	}
	r.creates++
	result.ID = "result-" + result.StudentID
	r.results[key] = *result
	return nil
}

func (r *fakeResultRepo) Exists(ctx context.Context, studentID, examID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.results[[2]string{studentID, examID}]
	return ok, nil
}

func (r *fakeResultRepo) FindByStudentAndExam(ctx context.Context, studentID, examID string) (*model.ExamAttemptResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.results[[2]string{studentID, examID}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &res, nil
}

func (r *fakeResultRepo) FindAllByExam(ctx context.Context, examID string) ([]model.ExamAttemptResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.ExamAttemptResult
	for key, res := range r.results {
		if key[1] == examID {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out, nil
}

type fakeClearance map[string]bool

func (f fakeClearance) IsCleared(ctx context.Context, studentID string) (bool, error) {
	return f[studentID], nil
}

type fakeEnrollmentRepo struct {
	classes map[string]string
}

func (r *fakeEnrollmentRepo) Enroll(ctx context.Context, studentID, className string) error {
	r.classes[studentID] = className
	return nil
}

func (r *fakeEnrollmentRepo) FilterMembers(ctx context.Context, className string, studentIDs []string) ([]string, error) {
	var out []string
	for _, id := range studentIDs {
		if r.classes[id] == className {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) ClassOf(ctx context.Context, studentID string) (string, error) {
	c, ok := r.classes[studentID]
	if !ok {
		return "", repository.ErrNotFound
	}
	return c, nil
}

type fakeGuardianRepo struct {
	links map[[2]string]bool
}

func newFakeGuardianRepo() *fakeGuardianRepo {
	return &fakeGuardianRepo{links: map[[2]string]bool{}}
}

func (r *fakeGuardianRepo) Link(ctx context.Context, guardianID, studentID string) error {
	r.links[[2]string{guardianID, studentID}] = true
	return nil
}

func (r *fakeGuardianRepo) IsLinked(ctx context.Context, guardianID, studentID string) (bool, error) {
	return r.links[[2]string{guardianID, studentID}], nil
}

type fakeScoreRepo struct {
	mu        sync.Mutex
	rows      map[[4]string]model.ScoreRow
	upserts   int
	failAfter int // fail the batch once this many rows were staged; 0 disables
}

func newFakeScoreRepo() *fakeScoreRepo {
	return &fakeScoreRepo{rows: make(map[[4]string]model.ScoreRow)}
}

func scoreKey(r model.ScoreRow) [4]string {
	return [4]string{r.StudentID, r.Subject, r.Term, r.Session}
}

func (r *fakeScoreRepo) UpsertBatch(ctx context.Context, rows []model.ScoreRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	staged := make(map[[4]string]model.ScoreRow, len(rows))
	for i, row := range rows {
		if r.failAfter > 0 && i >= r.failAfter {
			return errors.New("connection reset")
		}
		if existing, ok := r.rows[scoreKey(row)]; ok {
			row.ID = existing.ID
		}
		staged[scoreKey(row)] = row
	}
	for k, v := range staged {
		r.rows[k] = v
	}
	r.upserts += len(rows)
	return nil
}

func (r *fakeScoreRepo) FindByClassTermSession(ctx context.Context, className, term, session string) ([]model.ScoreRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.ScoreRow
	for _, row := range r.rows {
		if row.ClassAtTime == className && row.Term == term && row.Session == session {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StudentID != out[j].StudentID {
			return out[i].StudentID < out[j].StudentID
		}
		return out[i].Subject < out[j].Subject
	})
	return out, nil
}

func (r *fakeScoreRepo) UpdateRanking(ctx context.Context, u repository.RankingUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, row := range r.rows {
		if row.StudentID == u.StudentID && row.Term == u.Term && row.Session == u.Session {
			row.PositionInClass = u.PositionInClass
			row.StudentAverage = u.StudentAverage
			row.ClassAverage = u.ClassAverage
			r.rows[k] = row
		}
	}
	return nil
}
