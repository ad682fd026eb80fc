package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"trak/internal/bootstrap"
	dashdto "trak/internal/modules/dashboard/dto"
	"trak/internal/modules/dashboard/domain"
	"trak/internal/platform/config"
	"trak/internal/platform/datefmt"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var stateDir string

	root := &cobra.Command{
		Use:           "trak",
		Short:         "Study habit tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&stateDir, "state-dir", "", "state directory (default: user config dir)")

	root.AddCommand(newTUICmd(&stateDir))
	root.AddCommand(newLoginCmd(&stateDir))
	root.AddCommand(newSignupCmd(&stateDir))
	root.AddCommand(newLogoutCmd(&stateDir))
	root.AddCommand(newWhoamiCmd(&stateDir))
	root.AddCommand(newDashboardCmd(&stateDir))
	root.AddCommand(newCoursesCmd(&stateDir))
	root.AddCommand(newLogCmd(&stateDir))
	root.AddCommand(newAnalyticsCmd(&stateDir))
	return root
}

func loadApp(stateDir string) (*bootstrap.App, error) {
	cfg, err := config.New(stateDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run trak terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}

func newLoginCmd(stateDir *string) *cobra.Command {
	var email, password string

	login := &cobra.Command{
		Use:   "login --email <email> --password <password>",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			session, err := app.AuthCLI.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s <%s>\n", session.Username, session.Email)
			return nil
		},
	}
	login.Flags().StringVar(&email, "email", "", "account email")
	login.Flags().StringVar(&password, "password", "", "account password")

	google := &cobra.Command{
		Use:   "google",
		Short: "Sign in via Google in a browser",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "open in a browser:\n  %s\n\npaste the issued token: ", app.AuthCLI.GoogleAuthURL())
			scanner := bufio.NewScanner(cmd.InOrStdin())
			if !scanner.Scan() {
				return fmt.Errorf("no token provided")
			}
			session, err := app.AuthCLI.StoreToken(context.Background(), strings.TrimSpace(scanner.Text()))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s <%s>\n", session.Username, session.Email)
			return nil
		},
	}
	login.AddCommand(google)
	return login
}

func newSignupCmd(stateDir *string) *cobra.Command {
	var username, email, password string

	signup := &cobra.Command{
		Use:   "signup --username <name> --email <email> --password <password>",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			session, err := app.AuthCLI.Signup(context.Background(), username, email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "account created, signed in as %s <%s>\n", session.Username, session.Email)
			return nil
		},
	}
	signup.Flags().StringVar(&username, "username", "", "display name")
	signup.Flags().StringVar(&email, "email", "", "account email")
	signup.Flags().StringVar(&password, "password", "", "account password (min 8 chars)")
	return signup
}

func newLogoutCmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.AuthCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newWhoamiCmd(stateDir *string) *cobra.Command {
	var local bool

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()

			if local {
				info, err := app.AuthCLI.CredentialInfo(context.Background())
				if err != nil {
					return err
				}
				if !info.Present {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no credential stored")
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "subject: %s\n", info.Subject)
				if !info.ExpiresAt.IsZero() {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "expires: %s\n", info.ExpiresAt.Format(time.RFC3339))
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved:   %s\n", info.SavedAt.Format(time.RFC3339))
				return nil
			}

			session, err := app.AuthCLI.Resolve(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", session.Username, session.Email)
			info, err := app.AuthCLI.CredentialInfo(context.Background())
			if err == nil && info.Present && !info.ExpiresAt.IsZero() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "token expires %s\n", info.ExpiresAt.Format(time.RFC3339))
			}
			return nil
		},
	}
	whoami.Flags().BoolVar(&local, "local", false, "show stored credential claims without contacting the server")
	return whoami
}

func newDashboardCmd(stateDir *string) *cobra.Command {
	var rng string

	dashboard := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the dashboard snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if _, err := app.AuthCLI.Resolve(context.Background()); err != nil {
				return err
			}

			snapshot := app.DashboardCLI.Load(context.Background(), dashdto.LoadInput{Range: rng})
			out := cmd.OutOrStdout()
			now := time.Now().UTC()

			if snapshot.Summary.Err != nil {
				_, _ = fmt.Fprintf(out, "summary: unavailable (%v)\n", snapshot.Summary.Err)
			} else {
				s := snapshot.Summary.Data
				_, _ = fmt.Fprintf(out, "total study days: %d\ncurrent streak:   %d\n", s.TotalStudyDays, s.CurrentStreak)
				if s.MostStudied != nil {
					_, _ = fmt.Fprintf(out, "most studied:     %s (%dd)\n", s.MostStudied.Name, s.MostStudied.Days)
				}
			}

			_, _ = fmt.Fprintln(out, "\nchecklist:")
			if snapshot.Checklist.Err != nil {
				_, _ = fmt.Fprintf(out, "  unavailable (%v)\n", snapshot.Checklist.Err)
			} else {
				for _, item := range snapshot.Checklist.Items {
					_, _ = fmt.Fprintf(out, "  %s\t%s\n", item.CourseName, datefmt.Checklist(item.LastStudiedAt, now))
				}
			}

			_, _ = fmt.Fprintln(out, "\nrecent activity:")
			if snapshot.Activity.Err != nil {
				_, _ = fmt.Fprintf(out, "  unavailable (%v)\n", snapshot.Activity.Err)
			} else {
				items := snapshot.Activity.Items
				if len(items) > 10 {
					items = items[:10]
				}
				for _, item := range items {
					_, _ = fmt.Fprintf(out, "  %s\t%s\n", item.CourseName, datefmt.Activity(item.Date, now))
				}
			}

			_, _ = fmt.Fprintf(out, "\nstudy days (%s):\n", snapshot.Range)
			if snapshot.Series.Err != nil {
				_, _ = fmt.Fprintf(out, "  unavailable (%v)\n", snapshot.Series.Err)
			} else {
				for _, p := range snapshot.Series.Points {
					_, _ = fmt.Fprintf(out, "  %s\t%d\n", p.CourseName, p.StudyDays)
				}
			}
			return nil
		},
	}
	dashboard.Flags().StringVar(&rng, "range", string(domain.DefaultRange), "analytics window: 7d|30d|90d")
	return dashboard
}

func newCoursesCmd(stateDir *string) *cobra.Command {
	courses := &cobra.Command{Use: "courses", Short: "Course enrollment"}

	courses.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List enrolled courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			list, err := app.CoursesCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no courses enrolled")
				return nil
			}
			for _, c := range list {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.Name)
			}
			return nil
		},
	})

	courses.AddCommand(&cobra.Command{
		Use:   "add <name[,name…]>",
		Short: "Enroll in one or more courses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.CoursesCLI.Add(context.Background(), strings.Join(args, ","))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %d course(s)\n", len(out.Created))
			return nil
		},
	})
	return courses
}

func newLogCmd(stateDir *string) *cobra.Command {
	logCmd := &cobra.Command{
		Use:   "log <course> [course…]",
		Short: "Log study for one or more courses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.StudyLogCLI.Log(context.Background(), args)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %s\n", strings.Join(out.CourseNames, ", "))
			return nil
		},
	}

	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "Show recent local log commits",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			entries, err := app.StudyLogCLI.History(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no local history")
				return nil
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
					e.CommittedAt.Format("2006-01-02 15:04"), strings.Join(e.CourseNames, ", "))
			}
			return nil
		},
	}
	history.Flags().IntVar(&limit, "limit", 20, "entries to show")
	logCmd.AddCommand(history)
	return logCmd
}

func newAnalyticsCmd(stateDir *string) *cobra.Command {
	var rng string

	analytics := &cobra.Command{
		Use:   "analytics",
		Short: "Show study days per course for a window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			points, err := app.DashboardCLI.Series(context.Background(), rng)
			if err != nil {
				return err
			}
			if len(points) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no courses enrolled")
				return nil
			}
			for _, p := range points {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", p.CourseName, p.StudyDays)
			}
			return nil
		},
	}
	analytics.Flags().StringVar(&rng, "range", string(domain.DefaultRange), "analytics window: 7d|30d|90d")
	return analytics
}
