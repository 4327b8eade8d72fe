package content

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jcmontoya/omnilearn/internal/course"
	"github.com/jcmontoya/omnilearn/internal/llm"
	"github.com/jcmontoya/omnilearn/internal/quiz"
)

func quizJSON(correct string) json.RawMessage {
	questions := make([]map[string]any, quiz.NumQuestions)
	for i := range questions {
		questions[i] = map[string]any{
			"id":   i + 1,
			"text": "Q",
			"options": []map[string]any{
				{"id": "a", "text": "A"},
				{"id": "b", "text": "B"},
				{"id": "c", "text": "C"},
				{"id": "d", "text": "D"},
			},
			"correctOptionId": correct,
		}
	}
	b, _ := json.Marshal(map[string]any{"questions": questions})
	return b
}

func TestGenerateSubtopics(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"titles":["The Cell","Organelles","Cell Division"]}`),
	})
	svc := NewService(mock, DefaultConfig())

	titles, err := svc.GenerateSubtopics(context.Background(), "Cell Biology", course.DifficultyBasic, 3)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(titles) != 3 || titles[0] != "The Cell" {
		t.Errorf("titles = %v", titles)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	call := mock.Calls[0]
	if call.Schema != TitleListSchema {
		t.Error("expected title list schema")
	}
	if !strings.Contains(call.Messages[0].Content, "Cell Biology") {
		t.Error("topic missing from prompt")
	}
	if !strings.Contains(call.Messages[0].Content, "exactly 3") {
		t.Error("count missing from prompt")
	}
}

func TestGenerateLessonsPromptCarriesSubtopic(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"titles":["L1","L2"]}`),
	})
	svc := NewService(mock, DefaultConfig())

	titles, err := svc.GenerateLessons(context.Background(), "Cell Biology", "Organelles", course.DifficultyHigh, 2)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(titles) != 2 {
		t.Errorf("titles = %v", titles)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Organelles") {
		t.Error("subtopic missing from prompt")
	}
}

func TestGenerateLessonContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"content":"# The Cell\nBody text. [1]\n\n## References\n[1] Source"}`),
	})
	svc := NewService(mock, DefaultConfig())

	body, err := svc.GenerateLessonContent(context.Background(), "Cell Biology", "The Cell", "What is a Cell", course.DifficultyBasic)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(body, "# The Cell") {
		t.Errorf("body = %q", body)
	}
}

func TestFindLessonImage(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{
			Content: json.RawMessage(`{"found":true,"image":{"url":"https://example.com/cell.jpg","title":"Cell","author":"A","sourceUrl":"https://example.com","license":"CC BY-SA"}}`),
		})
		svc := NewService(mock, DefaultConfig())

		img, err := svc.FindLessonImage(context.Background(), "Cell Biology", "What is a Cell")
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if img == nil || img.URL != "https://example.com/cell.jpg" {
			t.Errorf("image = %+v", img)
		}
	})

	t.Run("not found is not an error", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{
			Content: json.RawMessage(`{"found":false}`),
		})
		svc := NewService(mock, DefaultConfig())

		img, err := svc.FindLessonImage(context.Background(), "Cell Biology", "What is a Cell")
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if img != nil {
			t.Errorf("image = %+v, want nil", img)
		}
	})

	t.Run("incomplete record treated as not found", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{
			Content: json.RawMessage(`{"found":true,"image":{"url":"","title":"","author":"","sourceUrl":"","license":""}}`),
		})
		svc := NewService(mock, DefaultConfig())

		img, err := svc.FindLessonImage(context.Background(), "T", "L")
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if img != nil {
			t.Errorf("image = %+v, want nil", img)
		}
	})
}

func TestGenerateQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON("b")})
	svc := NewService(mock, DefaultConfig())

	q, err := svc.GenerateQuiz(context.Background(), "lesson body")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(q.Questions) != quiz.NumQuestions {
		t.Fatalf("questions = %d, want %d", len(q.Questions), quiz.NumQuestions)
	}
	for _, question := range q.Questions {
		if len(question.Options) != quiz.NumOptions {
			t.Errorf("question %d options = %d", question.ID, len(question.Options))
		}
		if question.CorrectOptionID != "b" {
			t.Errorf("question %d correct = %q", question.ID, question.CorrectOptionID)
		}
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "lesson body") {
		t.Error("lesson text missing from prompt")
	}
}

func TestGenerateQuizRejectsWrongShape(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"too few questions", `{"questions":[{"id":1,"text":"Q","options":[{"id":"a","text":"A"},{"id":"b","text":"B"},{"id":"c","text":"C"},{"id":"d","text":"D"}],"correctOptionId":"a"}]}`},
		{"correct option missing", `{"questions":[
			{"id":1,"text":"Q","options":[{"id":"a","text":"A"},{"id":"b","text":"B"},{"id":"c","text":"C"},{"id":"d","text":"D"}],"correctOptionId":"a"},
			{"id":2,"text":"Q","options":[{"id":"a","text":"A"},{"id":"b","text":"B"},{"id":"c","text":"C"},{"id":"d","text":"D"}],"correctOptionId":"a"},
			{"id":3,"text":"Q","options":[{"id":"a","text":"A"},{"id":"b","text":"B"},{"id":"c","text":"C"},{"id":"d","text":"D"}],"correctOptionId":"a"},
			{"id":4,"text":"Q","options":[{"id":"a","text":"A"},{"id":"b","text":"B"},{"id":"c","text":"C"},{"id":"d","text":"D"}],"correctOptionId":"a"},
			{"id":5,"text":"Q","options":[{"id":"b","text":"B"},{"id":"c","text":"C"},{"id":"d","text":"D"},{"id":"d","text":"D2"}],"correctOptionId":"a"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.payload)})
			svc := NewService(mock, DefaultConfig())

			if _, err := svc.GenerateQuiz(context.Background(), "body"); err == nil {
				t.Error("expected error for malformed quiz")
			}
		})
	}
}

func TestProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.GenerateSubtopics(context.Background(), "T", course.DifficultyBasic, 3); err == nil {
		t.Error("expected provider error to propagate")
	}
}
