package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jcmontoya/omnilearn/internal/course"
	"github.com/jcmontoya/omnilearn/internal/store"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List saved courses and their progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		lib := course.NewLibrary(s.LibraryRepo())
		if err := lib.Load(ctx); err != nil {
			return fmt.Errorf("load courses: %w", err)
		}

		courses := lib.Courses()
		if len(courses) == 0 {
			fmt.Println("No courses yet. Run omnilearn to create one.")
			return nil
		}

		fmt.Printf("%-36s  %-8s  %-10s  %-8s  %s\n",
			"Topic", "Level", "Progress", "Quizzes", "Created")
		fmt.Println(strings.Repeat("─", 84))

		for _, c := range courses {
			topic := c.Topic
			if len(topic) > 36 {
				topic = topic[:36]
			}
			fmt.Printf("%-36s  %-8s  %9d%%  %8d  %s\n",
				topic,
				c.Difficulty,
				int(c.Progress()*100),
				len(c.CompletedQuizzes),
				time.UnixMilli(c.CreatedAt).Local().Format("2006-01-02"),
			)
		}

		showQuizzes, _ := cmd.Flags().GetBool("quizzes")
		if !showQuizzes {
			return nil
		}

		for _, c := range courses {
			history, err := s.EventRepo().QuizHistory(ctx, c.ID)
			if err != nil {
				return fmt.Errorf("quiz history: %w", err)
			}
			if len(history) == 0 {
				continue
			}
			fmt.Printf("\n%s\n", c.Topic)
			fmt.Println(strings.Repeat("─", 84))
			for _, q := range history {
				fmt.Printf("  %s  %-40s  %d/%d\n",
					q.Timestamp.Local().Format("2006-01-02 15:04"),
					q.Lesson, q.Score, q.Total)
			}
		}
		return nil
	},
}

func init() {
	coursesCmd.Flags().BoolP("quizzes", "q", false, "Also print per-course quiz history")
}
