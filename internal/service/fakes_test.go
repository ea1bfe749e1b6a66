package service

import (
	"sort"

	"gorm.io/gorm"

	"quiz-service/internal/model"
)

// In-memory repository fakes. Writes store copies and reads return copies so
// tests cannot mutate repository state through returned pointers, mirroring
// how rows round-trip through a real store.

type fakeStudentRepo struct {
	students map[uint]model.Student
	byQuiz   map[uint][]model.Student
	nextID   uint

	findAllCalls int
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{
		students: make(map[uint]model.Student),
		byQuiz:   make(map[uint][]model.Student),
	}
}

func (f *fakeStudentRepo) Create(student *model.Student) error {
	for _, existing := range f.students {
		if existing.Number == student.Number {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	student.ID = f.nextID
	f.students[student.ID] = *student
	return nil
}

func (f *fakeStudentRepo) FindByID(id uint) (*model.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &student, nil
}

func (f *fakeStudentRepo) FindAll() ([]model.Student, error) {
	f.findAllCalls++
	out := make([]model.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStudentRepo) FindByAssignedQuizID(quizID uint) ([]model.Student, error) {
	return f.byQuiz[quizID], nil
}

func (f *fakeStudentRepo) ExistsByID(id uint) (bool, error) {
	_, ok := f.students[id]
	return ok, nil
}

func (f *fakeStudentRepo) Update(student *model.Student) error {
	f.students[student.ID] = *student
	return nil
}

func (f *fakeStudentRepo) Delete(id uint) error {
	delete(f.students, id)
	return nil
}

type fakeQuizRepo struct {
	quizzes   map[uint]model.Quiz
	byStudent map[uint][]model.Quiz
	nextID    uint

	findAllCalls int
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{
		quizzes:   make(map[uint]model.Quiz),
		byStudent: make(map[uint][]model.Quiz),
	}
}

func (f *fakeQuizRepo) Create(quiz *model.Quiz) error {
	for _, existing := range f.quizzes {
		if existing.Name == quiz.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	quiz.ID = f.nextID
	f.quizzes[quiz.ID] = *quiz
	return nil
}

func (f *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	quiz, ok := f.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &quiz, nil
}

func (f *fakeQuizRepo) FindAll() ([]model.Quiz, error) {
	f.findAllCalls++
	out := make([]model.Quiz, 0, len(f.quizzes))
	for _, q := range f.quizzes {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeQuizRepo) FindByAssignedStudentID(studentID uint) ([]model.Quiz, error) {
	return f.byStudent[studentID], nil
}

func (f *fakeQuizRepo) ExistsByID(id uint) (bool, error) {
	_, ok := f.quizzes[id]
	return ok, nil
}

func (f *fakeQuizRepo) Update(quiz *model.Quiz) error {
	f.quizzes[quiz.ID] = *quiz
	return nil
}

func (f *fakeQuizRepo) Delete(id uint) error {
	delete(f.quizzes, id)
	return nil
}

type fakeQuestionRepo struct {
	questions map[uint]model.Question
	nextID    uint
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[uint]model.Question)}
}

func (f *fakeQuestionRepo) Create(question *model.Question) error {
	f.nextID++
	question.ID = f.nextID
	f.questions[question.ID] = *question
	return nil
}

func (f *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	question, ok := f.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &question, nil
}

func (f *fakeQuestionRepo) FindByIDWithOptions(id uint) (*model.Question, error) {
	return f.FindByID(id)
}

func (f *fakeQuestionRepo) FindByQuizID(quizID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.QuizID == quizID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeQuestionRepo) CountByQuizID(quizID uint) (int64, error) {
	var count int64
	for _, q := range f.questions {
		if q.QuizID == quizID {
			count++
		}
	}
	return count, nil
}

func (f *fakeQuestionRepo) ExistsByID(id uint) (bool, error) {
	_, ok := f.questions[id]
	return ok, nil
}

func (f *fakeQuestionRepo) Update(question *model.Question) error {
	f.questions[question.ID] = *question
	return nil
}

func (f *fakeQuestionRepo) Delete(id uint) error {
	delete(f.questions, id)
	return nil
}

type fakeOptionRepo struct {
	options map[uint]model.Option
	nextID  uint
}

func newFakeOptionRepo() *fakeOptionRepo {
	return &fakeOptionRepo{options: make(map[uint]model.Option)}
}

func (f *fakeOptionRepo) Create(option *model.Option) error {
	for _, existing := range f.options {
		if existing.QuestionID == option.QuestionID &&
			(existing.Letter == option.Letter || existing.Text == option.Text) {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	option.ID = f.nextID
	f.options[option.ID] = *option
	return nil
}

func (f *fakeOptionRepo) FindByID(id uint) (*model.Option, error) {
	option, ok := f.options[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &option, nil
}

func (f *fakeOptionRepo) FindByQuestionID(questionID uint) ([]model.Option, error) {
	var out []model.Option
	for _, o := range f.options {
		if o.QuestionID == questionID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Letter < out[j].Letter })
	return out, nil
}

func (f *fakeOptionRepo) Update(option *model.Option) error {
	f.options[option.ID] = *option
	return nil
}

func (f *fakeOptionRepo) Delete(id uint) error {
	delete(f.options, id)
	return nil
}

type fakeAssignmentRepo struct {
	assignments map[uint]model.QuizAssignment
	nextID      uint

	findAllCalls int
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: make(map[uint]model.QuizAssignment)}
}

func (f *fakeAssignmentRepo) Create(assignment *model.QuizAssignment) error {
	for _, existing := range f.assignments {
		if existing.StudentID == assignment.StudentID && existing.QuizID == assignment.QuizID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	assignment.ID = f.nextID
	f.assignments[assignment.ID] = *assignment
	return nil
}

func (f *fakeAssignmentRepo) FindByID(id uint) (*model.QuizAssignment, error) {
	assignment, ok := f.assignments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &assignment, nil
}

func (f *fakeAssignmentRepo) FindAll() ([]model.QuizAssignment, error) {
	f.findAllCalls++
	out := make([]model.QuizAssignment, 0, len(f.assignments))
	for _, a := range f.assignments {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAssignmentRepo) FindByStudentID(studentID uint) ([]model.QuizAssignment, error) {
	var out []model.QuizAssignment
	for _, a := range f.assignments {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAssignmentRepo) FindByQuizID(quizID uint) ([]model.QuizAssignment, error) {
	var out []model.QuizAssignment
	for _, a := range f.assignments {
		if a.QuizID == quizID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAssignmentRepo) ExistsByID(id uint) (bool, error) {
	_, ok := f.assignments[id]
	return ok, nil
}

func (f *fakeAssignmentRepo) Update(assignment *model.QuizAssignment) error {
	f.assignments[assignment.ID] = *assignment
	return nil
}

type fakeAnswerRepo struct {
	answers map[uint]model.Answer
	nextID  uint
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: make(map[uint]model.Answer)}
}

func (f *fakeAnswerRepo) Save(answer *model.Answer) error {
	if answer.ID == 0 {
		f.nextID++
		answer.ID = f.nextID
	}
	f.answers[answer.ID] = *answer
	return nil
}

func (f *fakeAnswerRepo) FindByAssignmentID(assignmentID uint) ([]model.Answer, error) {
	var out []model.Answer
	for _, a := range f.answers {
		if a.QuizAssignmentID == assignmentID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAnswerRepo) FindByAssignmentAndQuestion(assignmentID, questionID uint) (*model.Answer, error) {
	for _, a := range f.answers {
		if a.QuizAssignmentID == assignmentID && a.QuestionID == questionID {
			answer := a
			return &answer, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAnswerRepo) CountCorrectByAssignmentID(assignmentID uint) (int64, error) {
	var count int64
	for _, a := range f.answers {
		if a.QuizAssignmentID == assignmentID && a.Correct {
			count++
		}
	}
	return count, nil
}
