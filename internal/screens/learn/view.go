package learn

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jcmontoya/omnilearn/internal/course"
	"github.com/jcmontoya/omnilearn/internal/nav"
	"github.com/jcmontoya/omnilearn/internal/quiz"
	"github.com/jcmontoya/omnilearn/internal/ui/components"
	"github.com/jcmontoya/omnilearn/internal/ui/theme"
)

func (s *LearnScreen) View(width, height int) string {
	if s.st.Loading {
		return renderLoading(width, s.st.LoadingMessage)
	}

	switch s.st.Step {
	case nav.StepInput:
		return s.renderForm(width)
	case nav.StepSubtopics:
		return s.renderSubtopics(width)
	case nav.StepLessons:
		return s.renderLessons(width)
	case nav.StepContent:
		return s.renderContent(width, height)
	case nav.StepQuiz:
		return s.renderQuiz(width)
	default:
		return s.renderDashboard(width)
	}
}

func renderLoading(width int, message string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  " + message)
}

func renderErrorLine(width int, errMsg string) string {
	if errMsg == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(errMsg) + "\n\n"
}

func (s *LearnScreen) renderDashboard(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.confirmDelete != "" {
		return s.renderDeleteConfirm(width)
	}

	heading := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Your courses")
	b.WriteString(heading)
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	courses := s.lib.Courses()
	if len(courses) == 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("    No courses yet. Start one and pick any topic you like."))
		b.WriteString("\n")
	}

	// Detail card for the highlighted course.
	if idx := s.menu.Selected - 1; idx >= 0 && idx < len(courses) {
		c := courses[idx]
		b.WriteString("\n")
		bar := components.NewProgressBar("  Progress", c.Progress(), true, width-8)
		b.WriteString(bar.View())
		b.WriteString("\n")
		detail := fmt.Sprintf("  %d subtopics · %d lessons each · created %s ago",
			c.SubtopicCount, c.LessonCount, formatAge(c))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *LearnScreen) renderDeleteConfirm(width int) string {
	c, ok := s.lib.Get(s.confirmDelete)
	topic := "this course"
	if ok {
		topic = fmt.Sprintf("%q", c.Topic)
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Delete %s?", topic)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("All generated lessons and quiz scores will be lost."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, delete it"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep it"))
	return b.String()
}

func (s *LearnScreen) renderForm(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderErrorLine(width, s.st.Error))
	b.WriteString(renderErrorLine(width, s.formErr))

	label := func(text string, field int) string {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if s.focusIndex == field {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		return style.Render(fmt.Sprintf("  %-22s", text))
	}

	b.WriteString(label("Topic", fieldTopic) + s.topicInput.View() + "\n\n")
	b.WriteString(label("Subtopics (1-20)", fieldSubtopicCount) + s.subInput.View() + "\n\n")
	b.WriteString(label("Lessons each (1-20)", fieldLessonCount) + s.lessonInput.View() + "\n\n")

	var levels []string
	for i, d := range course.Difficulties {
		text := string(d)
		if i == s.diffIndex {
			text = "[" + text + "]"
			levels = append(levels, theme.Selected.Render(text))
		} else {
			levels = append(levels, theme.Unselected.Render(" "+text+" "))
		}
	}
	b.WriteString(label("Difficulty", fieldDifficulty) + strings.Join(levels, " ") + "\n\n")

	create := components.NewButton("Create course", s.focusIndex == fieldCreate, nil)
	b.WriteString("  " + create.View() + "\n")

	return b.String()
}

func (s *LearnScreen) renderSubtopics(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderErrorLine(width, s.st.Error))

	c, ok := s.lib.Get(s.st.ActiveCourseID)
	if !ok {
		return b.String()
	}

	heading := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + c.Topic)
	b.WriteString(heading)
	b.WriteString("\n\n")
	b.WriteString(s.subMenu.View())

	b.WriteString("\n")
	bar := components.NewProgressBar("  Course progress", c.Progress(), true, width-8)
	b.WriteString(bar.View())
	b.WriteString("\n")

	return b.String()
}

func (s *LearnScreen) renderLessons(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderErrorLine(width, s.st.Error))

	heading := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + s.st.SelectedSubtopic)
	b.WriteString(heading)
	b.WriteString("\n\n")
	b.WriteString(s.lessonMenu.View())

	return b.String()
}

func (s *LearnScreen) renderContent(width, height int) string {
	c, ok := s.lib.Get(s.st.ActiveCourseID)
	if !ok {
		return ""
	}
	body, ok := c.Content(s.st.SelectedLesson)
	if !ok {
		return renderErrorLine(width, nav.ErrorMessage(nav.OpContent))
	}

	var header strings.Builder
	header.WriteString(renderErrorLine(width, s.st.Error))
	if img, ok := c.Image(s.st.SelectedLesson); ok {
		header.WriteString(renderImageCard(width, img))
	}

	textWidth := width - 6
	if textWidth < 20 {
		textWidth = 20
	}
	wrapped := lipgloss.NewStyle().
		Width(textWidth).
		Foreground(theme.Text).
		Render(body)
	lines := strings.Split(wrapped, "\n")

	headerLines := 0
	if h := header.String(); h != "" {
		headerLines = lipgloss.Height(h)
	}
	visible := height - headerLines - 1
	if visible < 1 {
		visible = 1
	}

	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}

	end := s.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	window := lines[s.scroll:end]

	var b strings.Builder
	b.WriteString(header.String())
	pad := lipgloss.NewStyle().PaddingLeft(3)
	b.WriteString(pad.Render(strings.Join(window, "\n")))

	if maxScroll > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("   ── %d%% ──", (s.scroll*100)/maxScroll)))
	}

	return b.String()
}

func renderImageCard(width int, img course.LessonImage) string {
	inner := fmt.Sprintf("%s\n%s\nby %s · %s\nsource: %s",
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("🖼  "+img.Title),
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(img.URL),
		img.Author, img.License, img.SourceURL)

	card := theme.Card.Width(width - 8).Render(inner)
	return lipgloss.NewStyle().PaddingLeft(2).Render(card) + "\n\n"
}

func (s *LearnScreen) renderQuiz(width int) string {
	if s.session == nil {
		return renderErrorLine(width, nav.ErrorMessage(nav.OpQuiz))
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.session.Submitted() {
		score := s.session.Score()
		badge := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		verdict := "Keep practicing"
		if quiz.Passed(score) {
			badge = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
			verdict = "Passed!"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(badge.Render(fmt.Sprintf("Score: %d/%d — %s", score, quiz.NumQuestions, verdict))))
		b.WriteString("\n\n")
	} else {
		answered := 0
		for _, mc := range s.choices {
			if mc.Answered() {
				answered++
			}
		}
		status := fmt.Sprintf("Question %d of %d · %d answered", s.qCursor+1, len(s.choices), answered)
		if s.session.CanSubmit() {
			status += " · press S to submit"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(status))
		b.WriteString("\n\n")
	}

	if s.qCursor < len(s.choices) {
		question := lipgloss.NewStyle().PaddingLeft(3).Render(s.choices[s.qCursor].View())
		b.WriteString(question)
	}

	// Question position dots.
	var dots []string
	for i, mc := range s.choices {
		dot := "○"
		if mc.Answered() {
			dot = "●"
		}
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.qCursor {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		if mc.Revealed {
			if mc.IsCorrect() {
				style = style.Foreground(theme.Success)
			} else {
				style = style.Foreground(theme.Error)
			}
		}
		dots = append(dots, style.Render(dot))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(dots, " ")))
	b.WriteString("\n")

	return b.String()
}

func formatAge(c course.Course) string {
	age := c.Age()
	switch {
	case age.Hours() >= 48:
		return fmt.Sprintf("%dd", int(age.Hours()/24))
	case age.Hours() >= 1:
		return fmt.Sprintf("%dh", int(age.Hours()))
	default:
		return fmt.Sprintf("%dm", int(age.Minutes()))
	}
}
