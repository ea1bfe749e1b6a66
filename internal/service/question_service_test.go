package service

import (
	"testing"

	"quiz-service/internal/dto"
	"quiz-service/internal/model"
)

type questionFixture struct {
	svc       QuestionService
	questions *fakeQuestionRepo
	options   *fakeOptionRepo
	quizzes   *fakeQuizRepo
}

func newQuestionFixture() *questionFixture {
	f := &questionFixture{
		questions: newFakeQuestionRepo(),
		options:   newFakeOptionRepo(),
		quizzes:   newFakeQuizRepo(),
	}
	f.svc = NewQuestionService(f.questions, f.options, f.quizzes)
	return f
}

func (f *questionFixture) seedQuiz(t *testing.T) *model.Quiz {
	t.Helper()
	quiz := &model.Quiz{Name: "Go Basics"}
	if err := f.quizzes.Create(quiz); err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
	return quiz
}

func TestQuestionCreate(t *testing.T) {
	f := newQuestionFixture()
	quiz := f.seedQuiz(t)

	created, err := f.svc.Create(dto.QuestionDTO{Text: "What is a goroutine?", CorrectAnswer: "C", QuizID: quiz.ID})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.CorrectAnswer != "C" || created.QuizID != quiz.ID {
		t.Errorf("unexpected question %+v", created)
	}
}

func TestQuestionCreateUnknownQuiz(t *testing.T) {
	f := newQuestionFixture()
	_, err := f.svc.Create(dto.QuestionDTO{Text: "Q", CorrectAnswer: "A", QuizID: 99})
	assertAppError(t, err, 1002)
}

func TestQuestionFindByIDNotFound(t *testing.T) {
	f := newQuestionFixture()
	_, err := f.svc.FindByID(42)
	assertAppError(t, err, 1003)
}

func TestQuestionFindWithoutAnswer(t *testing.T) {
	f := newQuestionFixture()
	quiz := f.seedQuiz(t)
	question := &model.Question{
		QuizID:        quiz.ID,
		Text:          "Pick one",
		CorrectAnswer: "B",
		Options: []model.Option{
			{Letter: "A", Text: "first"},
			{Letter: "B", Text: "second"},
		},
	}
	if err := f.questions.Create(question); err != nil {
		t.Fatalf("seed question: %v", err)
	}

	projected, err := f.svc.FindWithoutAnswerByID(question.ID)
	if err != nil {
		t.Fatalf("FindWithoutAnswerByID returned error: %v", err)
	}
	if projected.Text != "Pick one" || len(projected.Options) != 2 {
		t.Errorf("unexpected projection %+v", projected)
	}

	_, err = f.svc.FindWithoutAnswerByID(999)
	assertAppError(t, err, 1003)
}

func TestQuestionFindOptions(t *testing.T) {
	f := newQuestionFixture()
	quiz := f.seedQuiz(t)
	question := &model.Question{QuizID: quiz.ID, Text: "Q", CorrectAnswer: "A"}
	if err := f.questions.Create(question); err != nil {
		t.Fatalf("seed question: %v", err)
	}
	for _, o := range []*model.Option{
		{QuestionID: question.ID, Letter: "B", Text: "second"},
		{QuestionID: question.ID, Letter: "A", Text: "first"},
	} {
		if err := f.options.Create(o); err != nil {
			t.Fatalf("seed option: %v", err)
		}
	}

	options, err := f.svc.FindOptionsByQuestionID(question.ID)
	if err != nil {
		t.Fatalf("FindOptionsByQuestionID returned error: %v", err)
	}
	if len(options) != 2 || options[0].Letter != "A" {
		t.Errorf("expected options ordered by letter, got %+v", options)
	}

	_, err = f.svc.FindOptionsByQuestionID(999)
	assertAppError(t, err, 1003)
}

func TestQuestionUpdate(t *testing.T) {
	f := newQuestionFixture()
	quiz := f.seedQuiz(t)
	question := &model.Question{QuizID: quiz.ID, Text: "Q", CorrectAnswer: "A"}
	if err := f.questions.Create(question); err != nil {
		t.Fatalf("seed question: %v", err)
	}

	updated, err := f.svc.Update(question.ID, dto.QuestionDTO{Text: "Q2", CorrectAnswer: "D", QuizID: quiz.ID})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Text != "Q2" || updated.CorrectAnswer != "D" {
		t.Errorf("unexpected question after update %+v", updated)
	}

	_, err = f.svc.Update(question.ID, dto.QuestionDTO{Text: "Q", CorrectAnswer: "A", QuizID: 999})
	assertAppError(t, err, 1002)

	_, err = f.svc.Update(999, dto.QuestionDTO{Text: "Q", CorrectAnswer: "A", QuizID: quiz.ID})
	assertAppError(t, err, 1003)
}

func TestQuestionDelete(t *testing.T) {
	f := newQuestionFixture()
	quiz := f.seedQuiz(t)
	question := &model.Question{QuizID: quiz.ID, Text: "Q", CorrectAnswer: "A"}
	if err := f.questions.Create(question); err != nil {
		t.Fatalf("seed question: %v", err)
	}

	if err := f.svc.Delete(question.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	err := f.svc.Delete(question.ID)
	assertAppError(t, err, 1003)
}
