package content

import (
	"fmt"
	"strings"

	"github.com/jcmontoya/omnilearn/internal/course"
)

const plannerSystemPrompt = `You are an expert curriculum designer. You break a subject into a well-ordered sequence of study units, starting from fundamentals and building up. Titles are short (2-6 words), concrete, and non-overlapping.`

func buildSubtopicsUserMessage(topic string, difficulty course.Difficulty, count int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Difficulty: %s\n", difficulty))
	b.WriteString(difficultyGuidance(difficulty))

	b.WriteString(fmt.Sprintf(`
Instructions:
Produce exactly %d subtopic titles that together cover the topic at this difficulty. Order them so each builds on the previous ones. Return titles only, no numbering or descriptions.`, count))

	return b.String()
}

func buildLessonsUserMessage(topic, subtopic string, difficulty course.Difficulty, count int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Subtopic: %s\n", subtopic))
	b.WriteString(fmt.Sprintf("Difficulty: %s\n", difficulty))
	b.WriteString(difficultyGuidance(difficulty))

	b.WriteString(fmt.Sprintf(`
Instructions:
Produce exactly %d lesson titles for this subtopic, ordered from introductory to advanced within the subtopic. Each lesson should be teachable in one sitting. Return titles only, no numbering or descriptions.`, count))

	return b.String()
}

const writerSystemPrompt = `You are a knowledgeable teacher writing self-contained lessons. You write in clear markdown with headings, keep claims factual, mark notable claims with inline citation markers like [1], and end every lesson with a References section listing those citations.`

func buildContentUserMessage(topic, subtopic, lesson string, difficulty course.Difficulty) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Subtopic: %s\n", subtopic))
	b.WriteString(fmt.Sprintf("Lesson: %s\n", lesson))
	b.WriteString(fmt.Sprintf("Difficulty: %s\n", difficulty))
	b.WriteString(difficultyGuidance(difficulty))

	b.WriteString(`
Instructions:
Write the full lesson body:
1. Open with a one-paragraph overview of what the lesson covers and why it matters.
2. Develop the material in 3-6 sections with markdown headings. Define every new term on first use.
3. Include at least one concrete example or analogy per section.
4. Mark notable factual claims with inline citation markers like [1], [2].
5. End with a "References" section resolving every citation marker.`)

	return b.String()
}

const imageSystemPrompt = `You help find freely licensed illustrative images for educational material. You only return images you are confident exist with correct attribution; when unsure, you report that no image was found. Never invent URLs.`

func buildImageUserMessage(topic, lesson string) string {
	return fmt.Sprintf(`Topic: %s
Lesson: %s

Instructions:
Suggest one freely licensed image (e.g. Wikimedia Commons) that illustrates this lesson. Provide the direct image URL, title, author, source page URL, and license name. If you do not know a suitable real image, set found to false.`, topic, lesson)
}

const quizSystemPrompt = `You are writing a short comprehension quiz over one lesson. Every question must be answerable from the lesson text alone, have exactly one correct option, and plausible distractors.`

func buildQuizUserMessage(lessonContent string) string {
	var b strings.Builder

	b.WriteString("Lesson text:\n")
	b.WriteString(lessonContent)

	b.WriteString(`

Instructions:
Write exactly 5 multiple-choice questions covering the main points of the lesson above:
1. Number questions 1 through 5 in the id field.
2. Give each question exactly 4 options labeled a, b, c, d.
3. Mark the single correct option in correctOptionId.
4. Vary which letter is correct; do not favor one position.
5. Do not reference "the text" or "the passage" in question wording.`)

	return b.String()
}

func difficultyGuidance(d course.Difficulty) string {
	switch d {
	case course.DifficultyBasic:
		return "Audience: a curious beginner with no prior exposure. Use plain language and everyday examples.\n"
	case course.DifficultyMedium:
		return "Audience: a learner with basic familiarity. Introduce standard terminology and moderate depth.\n"
	case course.DifficultyHigh:
		return "Audience: an advanced learner. Use precise terminology and cover nuances and edge cases.\n"
	default:
		return ""
	}
}
