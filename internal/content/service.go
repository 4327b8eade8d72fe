// Package content is the client side of the content provider: five
// schema-constrained generation operations over the LLM abstraction. Each
// operation is called at most once per missing cache entry; the caller owns
// caching and retries (a retry is always an explicit user action).
package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jcmontoya/omnilearn/internal/course"
	"github.com/jcmontoya/omnilearn/internal/llm"
	"github.com/jcmontoya/omnilearn/internal/quiz"
)

// Purpose labels attached to requests for event logging.
const (
	PurposeSubtopics = "subtopics"
	PurposeLessons   = "lessons"
	PurposeContent   = "content"
	PurposeImage     = "image"
	PurposeQuiz      = "quiz"
)

// Service generates course content through an llm.Provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a content generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type titleListOutput struct {
	Titles []string `json:"titles"`
}

// GenerateSubtopics plans the subtopic list for a new course.
func (s *Service) GenerateSubtopics(ctx context.Context, topic string, difficulty course.Difficulty, count int) ([]string, error) {
	ctx = llm.WithPurpose(ctx, PurposeSubtopics)

	out, err := s.generateTitles(ctx, plannerSystemPrompt, buildSubtopicsUserMessage(topic, difficulty, count))
	if err != nil {
		return nil, fmt.Errorf("subtopic generation: %w", err)
	}
	return out, nil
}

// GenerateLessons plans the lesson list for one subtopic.
func (s *Service) GenerateLessons(ctx context.Context, topic, subtopic string, difficulty course.Difficulty, count int) ([]string, error) {
	ctx = llm.WithPurpose(ctx, PurposeLessons)

	out, err := s.generateTitles(ctx, plannerSystemPrompt, buildLessonsUserMessage(topic, subtopic, difficulty, count))
	if err != nil {
		return nil, fmt.Errorf("lesson generation: %w", err)
	}
	return out, nil
}

func (s *Service) generateTitles(ctx context.Context, system, userMsg string) ([]string, error) {
	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      TitleListSchema,
		MaxTokens:   s.cfg.ListMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var out titleListOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse title list: %w", err)
	}
	return out.Titles, nil
}

type lessonBodyOutput struct {
	Content string `json:"content"`
}

// GenerateLessonContent writes the full body text for one lesson.
func (s *Service) GenerateLessonContent(ctx context.Context, topic, subtopic, lesson string, difficulty course.Difficulty) (string, error) {
	ctx = llm.WithPurpose(ctx, PurposeContent)

	req := llm.Request{
		System: writerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildContentUserMessage(topic, subtopic, lesson, difficulty)},
		},
		Schema:      LessonBodySchema,
		MaxTokens:   s.cfg.BodyMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("content generation: %w", err)
	}

	var out lessonBodyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse lesson body: %w", err)
	}
	return out.Content, nil
}

type imageOutput struct {
	Found bool                `json:"found"`
	Image *course.LessonImage `json:"image"`
}

// FindLessonImage looks for one illustrative image for a lesson. Returning
// (nil, nil) means no image was found, which is a valid, cacheable-as-absent
// outcome rather than an error.
func (s *Service) FindLessonImage(ctx context.Context, topic, lesson string) (*course.LessonImage, error) {
	ctx = llm.WithPurpose(ctx, PurposeImage)

	req := llm.Request{
		System: imageSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildImageUserMessage(topic, lesson)},
		},
		Schema:      LessonImageSchema,
		MaxTokens:   s.cfg.ImageMaxTokens,
		Temperature: 0,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("image lookup: %w", err)
	}

	var out imageOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse image response: %w", err)
	}
	if !out.Found || out.Image == nil || out.Image.URL == "" || out.Image.SourceURL == "" {
		return nil, nil
	}
	return out.Image, nil
}

// GenerateQuiz writes a 5-question quiz from a lesson's cached body text.
func (s *Service) GenerateQuiz(ctx context.Context, lessonContent string) (quiz.Quiz, error) {
	ctx = llm.WithPurpose(ctx, PurposeQuiz)

	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizUserMessage(lessonContent)},
		},
		Schema:      QuizSchema,
		MaxTokens:   s.cfg.QuizMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("quiz generation: %w", err)
	}

	var out quiz.Quiz
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return quiz.Quiz{}, fmt.Errorf("parse quiz: %w", err)
	}
	if err := checkQuiz(out); err != nil {
		return quiz.Quiz{}, fmt.Errorf("quiz generation: %w", err)
	}
	return out, nil
}

// checkQuiz enforces the structural invariants the schema cannot fully
// express: unique question IDs, unique option labels, and a correct option
// that actually exists.
func checkQuiz(q quiz.Quiz) error {
	if len(q.Questions) != quiz.NumQuestions {
		return fmt.Errorf("expected %d questions, got %d", quiz.NumQuestions, len(q.Questions))
	}
	seenIDs := make(map[int]bool, len(q.Questions))
	for _, question := range q.Questions {
		if seenIDs[question.ID] {
			return fmt.Errorf("duplicate question id %d", question.ID)
		}
		seenIDs[question.ID] = true

		if len(question.Options) != quiz.NumOptions {
			return fmt.Errorf("question %d: expected %d options, got %d", question.ID, quiz.NumOptions, len(question.Options))
		}
		correctFound := false
		seenOpts := make(map[string]bool, len(question.Options))
		for _, opt := range question.Options {
			if seenOpts[opt.ID] {
				return fmt.Errorf("question %d: duplicate option %q", question.ID, opt.ID)
			}
			seenOpts[opt.ID] = true
			if opt.ID == question.CorrectOptionID {
				correctFound = true
			}
		}
		if !correctFound {
			return fmt.Errorf("question %d: correct option %q not among options", question.ID, question.CorrectOptionID)
		}
	}
	return nil
}
