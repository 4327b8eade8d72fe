package content

import (
	"github.com/jcmontoya/omnilearn/internal/llm"
	"github.com/jcmontoya/omnilearn/internal/quiz"
)

// TitleListSchema defines the JSON schema for subtopic and lesson title
// lists. Both operations return the same shape.
var TitleListSchema = &llm.Schema{
	Name:        "title-list",
	Description: "An ordered list of short study-unit titles",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"titles": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Ordered titles, most fundamental first",
			},
		},
		"required":             []any{"titles"},
		"additionalProperties": false,
	},
}

// LessonBodySchema defines the JSON schema for lesson body generation.
var LessonBodySchema = &llm.Schema{
	Name:        "lesson-body",
	Description: "A complete lesson body in markdown with a references section",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content": map[string]any{
				"type":        "string",
				"description": "Markdown lesson text: headings, paragraphs, inline citation markers, trailing References section",
			},
		},
		"required":             []any{"content"},
		"additionalProperties": false,
	},
}

// LessonImageSchema defines the JSON schema for the image lookup. Finding
// no image is a valid outcome, signaled by found=false.
var LessonImageSchema = &llm.Schema{
	Name:        "lesson-image",
	Description: "Zero or one illustrative image reference with attribution",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"found": map[string]any{
				"type":        "boolean",
				"description": "Whether a suitable freely licensed image is known",
			},
			"image": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"url":       map[string]any{"type": "string"},
					"title":     map[string]any{"type": "string"},
					"author":    map[string]any{"type": "string"},
					"sourceUrl": map[string]any{"type": "string"},
					"license":   map[string]any{"type": "string"},
				},
				"required":             []any{"url", "title", "author", "sourceUrl", "license"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"found"},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for quiz generation.
var QuizSchema = &llm.Schema{
	Name:        "lesson-quiz",
	Description: "A multiple-choice quiz checking comprehension of one lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": quiz.NumQuestions,
				"maxItems": quiz.NumQuestions,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"description": "Question number, 1-based, unique within the quiz",
						},
						"text": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":     "array",
							"minItems": quiz.NumOptions,
							"maxItems": quiz.NumOptions,
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id": map[string]any{
										"type": "string",
										"enum": []any{"a", "b", "c", "d"},
									},
									"text": map[string]any{"type": "string"},
								},
								"required":             []any{"id", "text"},
								"additionalProperties": false,
							},
						},
						"correctOptionId": map[string]any{
							"type": "string",
							"enum": []any{"a", "b", "c", "d"},
						},
					},
					"required":             []any{"id", "text", "options", "correctOptionId"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
