package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"uniplan/internal/bootstrap"
	plannerdto "uniplan/internal/modules/planner/dto"
	sessiondto "uniplan/internal/modules/session/dto"
	"uniplan/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var apiURL, stateDir string

	root := &cobra.Command{
		Use:           "uniplan",
		Short:         "University course catalog and degree planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend API base URL (default from config)")
	root.PersistentFlags().StringVar(&stateDir, "state-dir", "", "state directory (default ~/.uniplan)")

	root.AddCommand(newTUICmd(&apiURL, &stateDir))
	root.AddCommand(newLoginCmd(&apiURL, &stateDir))
	root.AddCommand(newLogoutCmd(&apiURL, &stateDir))
	root.AddCommand(newRegisterCmd(&apiURL, &stateDir))
	root.AddCommand(newWhoamiCmd(&apiURL, &stateDir))
	root.AddCommand(newProfileCmd(&apiURL, &stateDir))
	root.AddCommand(newRouteCmd(&apiURL, &stateDir))
	root.AddCommand(newCatalogCmd(&apiURL, &stateDir))
	root.AddCommand(newPlannerCmd(&apiURL, &stateDir))
	root.AddCommand(newSemesterCmd(&apiURL, &stateDir))
	root.AddCommand(newReviewCmd(&apiURL, &stateDir))
	root.AddCommand(newProgramCmd(&apiURL, &stateDir))
	return root
}

func loadApp(apiURL, stateDir string) (*bootstrap.App, error) {
	cfg, err := config.New(apiURL, stateDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(apiURL, stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the uniplan terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newLoginCmd(apiURL, stateDir *string) *cobra.Command {
	var username, password string
	login := &cobra.Command{
		Use:   "login --username <name> --password <password>",
		Short: "Sign in and persist the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(username) == "" || password == "" {
				return fmt.Errorf("--username and --password are required")
			}
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.SessionCLI.Login(context.Background(), username, password); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", username)
			return nil
		},
	}
	login.Flags().StringVar(&username, "username", "", "account username")
	login.Flags().StringVar(&password, "password", "", "account password")
	return login
}

func newLogoutCmd(apiURL, stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the persisted session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.SessionCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newRegisterCmd(apiURL, stateDir *string) *cobra.Command {
	var input sessiondto.RegisterInput
	register := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.SessionCLI.Register(context.Background(), input); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "registered and signed in as %s\n", input.Username)
			return nil
		},
	}
	register.Flags().StringVar(&input.Username, "username", "", "account username")
	register.Flags().StringVar(&input.Email, "email", "", "account email")
	register.Flags().StringVar(&input.Password, "password", "", "account password")
	register.Flags().StringVar(&input.ProgramLevel, "level", "UNDERGRAD", "program level: UNDERGRAD|POSTGRAD")
	register.Flags().StringVar(&input.Program, "program", "", "program name (see `uniplan program search`)")
	register.Flags().StringVar(&input.YearIntake, "intake", "SEM1", "year intake: SEM1|SEM2")
	return register
}

func newWhoamiCmd(apiURL, stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			p, err := app.SessionCLI.Me(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "user: %s\nemail: %s\nprogram: %s\nlevel: %s\nintake: %s\n",
				p.Username, p.Email, p.Program, p.ProgramLevel, p.YearIntake)
			return nil
		},
	}
}

func newProfileCmd(apiURL, stateDir *string) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Profile operations"}

	var program, level, intake string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields (omitted flags stay unchanged)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var input sessiondto.UpdateProfileInput
			if cmd.Flags().Changed("program") {
				input.Program = &program
			}
			if cmd.Flags().Changed("level") {
				input.ProgramLevel = &level
			}
			if cmd.Flags().Changed("intake") {
				input.YearIntake = &intake
			}
			if input.Program == nil && input.ProgramLevel == nil && input.YearIntake == nil {
				return fmt.Errorf("nothing to update: pass --program, --level, or --intake")
			}
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			p, err := app.SessionCLI.UpdateProfile(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "profile updated: program=%s level=%s intake=%s\n",
				p.Program, p.ProgramLevel, p.YearIntake)
			return nil
		},
	}
	update.Flags().StringVar(&program, "program", "", "program name")
	update.Flags().StringVar(&level, "level", "", "program level: UNDERGRAD|POSTGRAD")
	update.Flags().StringVar(&intake, "intake", "", "year intake: SEM1|SEM2")

	profile.AddCommand(update)
	return profile
}

func newRouteCmd(apiURL, stateDir *string) *cobra.Command {
	route := &cobra.Command{Use: "route", Short: "Route guard queries"}
	route.AddCommand(&cobra.Command{
		Use:   "check <path>",
		Short: "Report whether a path is reachable for the current session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out := app.SessionCLI.CheckRoute(context.Background(), args[0])
			if out.Allowed {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "allowed")
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "redirect: %s\n", out.RedirectTo)
			}
			return nil
		},
	})
	return route
}

func newCatalogCmd(apiURL, stateDir *string) *cobra.Command {
	catalog := &cobra.Command{Use: "catalog", Short: "Course catalog queries"}

	var query, assessment, level, area, semester string
	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog courses with client-side filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			courses, err := app.CatalogCLI.List(context.Background(), query, assessment, level, area, semester)
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no courses match")
				return nil
			}
			for _, c := range courses {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d cr\tL%d\t%s\t%s\n",
					c.ID, c.Code, c.Name, c.Credits, c.Level, c.StudyArea, c.AssessmentType)
			}
			return nil
		},
	}
	list.Flags().StringVar(&query, "query", "", "match against course code and name")
	list.Flags().StringVar(&assessment, "assessment", "all", "assessment type filter")
	list.Flags().StringVar(&level, "level", "all", "course level filter")
	list.Flags().StringVar(&area, "area", "all", "study area filter")
	list.Flags().StringVar(&semester, "semester", "all", "offered-semester filter")

	var courseID int64
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show course details, assessment, and review aggregate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if courseID == 0 {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			c, err := app.CatalogCLI.Show(context.Background(), courseID)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s  %s\ncredits: %d\nlevel: %d\narea: %s\noffered: %s\n",
				c.Code, c.Name, c.Credits, c.Level, c.StudyArea, strings.Join(c.Semesters, ", "))
			if len(c.Prerequisites) > 0 {
				_, _ = fmt.Fprintf(w, "prereqs: %s\n", strings.Join(c.Prerequisites, ", "))
			}
			for _, a := range c.Assessments {
				weight := "—"
				if a.Weight != nil {
					weight = fmt.Sprintf("%d%%", *a.Weight)
				}
				_, _ = fmt.Fprintf(w, "assessment: %s (%s) %s hurdle=%t\n", a.Task, a.Category, weight, a.Hurdle)
			}
			_, _ = fmt.Fprintf(w, "rating: %.1f (%d reviews)\n", c.AverageRating, c.TotalReviews)
			return nil
		},
	}
	show.Flags().Int64Var(&courseID, "id", 0, "course id")

	options := &cobra.Command{
		Use:   "options",
		Short: "List the filter option sets served by the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			w := cmd.OutOrStdout()
			ctx := context.Background()
			assessments, err := app.CatalogCLI.AssessmentTypes(ctx)
			if err != nil {
				return err
			}
			areas, err := app.CatalogCLI.StudyAreas(ctx)
			if err != nil {
				return err
			}
			levels, err := app.CatalogCLI.ProgramLevels(ctx)
			if err != nil {
				return err
			}
			for _, o := range assessments {
				_, _ = fmt.Fprintf(w, "assessment\t%s\t%s\n", o.Value, o.Label)
			}
			for _, o := range areas {
				_, _ = fmt.Fprintf(w, "area\t%s\t%s\n", o.Value, o.Label)
			}
			for _, o := range levels {
				_, _ = fmt.Fprintf(w, "level\t%s\t%s\n", o.Value, o.Label)
			}
			return nil
		},
	}

	catalog.AddCommand(list, show, options)
	return catalog
}

func writePlan(cmd *cobra.Command, plan plannerdto.PlanOutput) {
	w := cmd.OutOrStdout()
	for _, g := range plan.Groups {
		_, _ = fmt.Fprintf(w, "%s (%d cr)\n", g.Label, g.Credits)
		for _, c := range g.Courses {
			_, _ = fmt.Fprintf(w, "  %d\t%s\t%s\t%d cr\t%s\n", c.CourseID, c.Code, c.Name, c.Credits, c.StudyArea)
		}
	}
	_, _ = fmt.Fprintf(w, "total: %d cr\n", plan.TotalCredits)
}

func newPlannerCmd(apiURL, stateDir *string) *cobra.Command {
	planner := &cobra.Command{Use: "planner", Short: "Degree plan operations"}

	planner.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show the degree plan grouped by semester",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			plan, err := app.PlannerCLI.List(context.Background())
			if err != nil {
				return err
			}
			writePlan(cmd, plan)
			return nil
		},
	})

	var courseID int64
	var semester string
	add := &cobra.Command{
		Use:   "add --id <course-id> --semester <label>",
		Short: "Plan a course into a semester",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if courseID == 0 || strings.TrimSpace(semester) == "" {
				return fmt.Errorf("--id and --semester are required")
			}
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			plan, err := app.PlannerCLI.Add(context.Background(), courseID, semester)
			if err != nil {
				return err
			}
			writePlan(cmd, plan)
			return nil
		},
	}
	add.Flags().Int64Var(&courseID, "id", 0, "course id")
	add.Flags().StringVar(&semester, "semester", "", `semester label, e.g. "Semester 2"`)

	var moveID int64
	var moveSemester string
	move := &cobra.Command{
		Use:   "move --id <course-id> --semester <label>",
		Short: "Move a planned course to another semester",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if moveID == 0 || strings.TrimSpace(moveSemester) == "" {
				return fmt.Errorf("--id and --semester are required")
			}
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			plan, err := app.PlannerCLI.Move(context.Background(), moveID, moveSemester)
			if err != nil {
				return err
			}
			writePlan(cmd, plan)
			return nil
		},
	}
	move.Flags().Int64Var(&moveID, "id", 0, "course id")
	move.Flags().StringVar(&moveSemester, "semester", "", "target semester label")

	var removeID int64
	remove := &cobra.Command{
		Use:   "remove --id <course-id>",
		Short: "Remove a planned course",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if removeID == 0 {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			plan, err := app.PlannerCLI.Remove(context.Background(), removeID)
			if err != nil {
				return err
			}
			writePlan(cmd, plan)
			return nil
		},
	}
	remove.Flags().Int64Var(&removeID, "id", 0, "course id")

	planner.AddCommand(add, move, remove)
	return planner
}

func newSemesterCmd(apiURL, stateDir *string) *cobra.Command {
	semester := &cobra.Command{Use: "semester", Short: "Semester registry operations"}

	semester.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the semesters of the plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			plan, err := app.PlannerCLI.List(context.Background())
			if err != nil {
				return err
			}
			for _, label := range plan.Semesters {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), label)
			}
			return nil
		},
	})

	semester.AddCommand(&cobra.Command{
		Use:   "add",
		Short: "Append the next semester to the plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			plan, err := app.PlannerCLI.AddSemester(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "semesters: %s\n", strings.Join(plan.Semesters, ", "))
			return nil
		},
	})

	semester.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Drop the last semester (must be empty)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			plan, err := app.PlannerCLI.DeleteSemester(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "semesters: %s\n", strings.Join(plan.Semesters, ", "))
			return nil
		},
	})

	return semester
}

func newReviewCmd(apiURL, stateDir *string) *cobra.Command {
	review := &cobra.Command{Use: "review", Short: "Course review operations"}

	var listID int64
	list := &cobra.Command{
		Use:   "list --course-id <id>",
		Short: "List reviews for a course",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listID == 0 {
				return fmt.Errorf("--course-id is required")
			}
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			reviews, err := app.ReviewCLI.List(context.Background(), listID)
			if err != nil {
				return err
			}
			if len(reviews) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no reviews")
				return nil
			}
			for _, r := range reviews {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d★\t%s\t%s\t%s\n",
					r.Rating, r.User, r.CreatedAt.Format("2006-01-02"), r.Description)
			}
			return nil
		},
	}
	list.Flags().Int64Var(&listID, "course-id", 0, "course id")

	var submitID int64
	var rating int
	var description string
	submit := &cobra.Command{
		Use:   "submit --course-id <id> --rating <1-5>",
		Short: "Submit a review and show the refreshed aggregate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if submitID == 0 {
				return fmt.Errorf("--course-id is required")
			}
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ReviewCLI.Submit(context.Background(), submitID, rating, description)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "submitted; %s now %.1f★ over %d reviews\n",
				out.Course.Code, out.Course.AverageRating, out.Course.TotalReviews)
			return nil
		},
	}
	submit.Flags().Int64Var(&submitID, "course-id", 0, "course id")
	submit.Flags().IntVar(&rating, "rating", 0, "rating 1-5")
	submit.Flags().StringVar(&description, "description", "", "review text (optional)")

	review.AddCommand(list, submit)
	return review
}

func newProgramCmd(apiURL, stateDir *string) *cobra.Command {
	program := &cobra.Command{Use: "program", Short: "Program lookup"}

	var level, query string
	search := &cobra.Command{
		Use:   "search --query <text>",
		Short: "Search programs by name within a level",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*apiURL, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			programs, err := app.ProgramCLI.Search(context.Background(), level, query)
			if err != nil {
				return err
			}
			if len(programs) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no programs match")
				return nil
			}
			for _, p := range programs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", p.ID, p.Label)
			}
			return nil
		},
	}
	search.Flags().StringVar(&level, "level", "UNDERGRAD", "program level: UNDERGRAD|POSTGRAD")
	search.Flags().StringVar(&query, "query", "", "name fragment")

	program.AddCommand(search)
	return program
}
