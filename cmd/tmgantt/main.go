package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hiono/taskmaster-gitlab-gantt/internal/calendar"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/config"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/facts"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/gitlab"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/render"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/schedule"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/taskmaster"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/ui"
)

var (
	flagTasks string
	flagTag   string
	flagEnv   string
	flagJSON  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tmgantt",
		Short: "Generate a Gantt chart from Taskmaster tasks and GitLab issues",
		Long: `tmgantt reads a Taskmaster tasks.json hierarchy, fetches the matching
GitLab issues for real dates, reconciles both into a working-day-aware
schedule, and renders the result as a Gantt chart.`,
	}

	rootCmd.PersistentFlags().StringVar(&flagTasks, "tasks", ".taskmaster/tasks/tasks.json", "Path to Taskmaster tasks.json")
	rootCmd.PersistentFlags().StringVar(&flagTag, "tag", "master", "Taskmaster tag to load")
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "", "Path to .env file (default .env)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(graphCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadTasks is shared between generate and graph.
func loadTasks() (*taskmaster.Set, error) {
	set, err := taskmaster.Load(flagTasks, flagTag)
	if err != nil {
		return nil, err
	}
	if set.Len() == 0 {
		return nil, fmt.Errorf("no tasks loaded from %s (tag %q)", flagTasks, flagTag)
	}
	return set, nil
}

func generateCmd() *cobra.Command {
	var (
		flagOutput  string
		flagFormat  string
		flagDryRun  bool
		flagOffline bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compute the schedule and write the gantt chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagEnv)
			if err != nil {
				return err
			}

			set, err := loadTasks()
			if err != nil {
				return err
			}

			var extra []time.Time
			if cfg.HolidayFile != "" {
				extra, err = calendar.LoadOverlay(cfg.HolidayFile)
				if err != nil {
					return err
				}
			}
			cal := calendar.New(cfg.HolidayCountry, extra)

			src := facts.Source{}
			title := "Project Gantt Chart"
			if flagOffline {
				log.Printf("offline mode: scheduling without GitLab facts")
			} else {
				if err := cfg.ValidateGitLab(); err != nil {
					return err
				}
				client, err := gitlab.New(gitlab.Options{
					BaseURL:    cfg.BaseURL,
					Token:      cfg.Token,
					ProjectID:  cfg.ProjectID,
					SkipVerify: !cfg.SSLVerify,
					CABundle:   cfg.CABundle,
				})
				if err != nil {
					return err
				}

				ctx := cmd.Context()
				if name, err := client.ProjectName(ctx); err != nil {
					log.Printf("warning: could not resolve project name: %v", err)
				} else {
					title = name + " Gantt Chart"
				}

				issues, err := client.Issues(ctx)
				if err != nil {
					return err
				}
				if len(issues) == 0 {
					log.Printf("warning: no GitLab issues fetched, chart may be incomplete")
				}
				src = facts.Match(issues)
			}

			sched, err := schedule.Compute(schedule.Input{
				Tasks:         set,
				Facts:         src,
				Calendar:      cal,
				OverrideStart: cfg.StartDate,
			})
			if err != nil {
				return err
			}

			if flagJSON {
				return render.JSON(os.Stdout, sched)
			}
			if flagDryRun {
				render.Summary(os.Stdout, sched, set, title)
				fmt.Printf("\n🎯 %s\n", ui.Yellow(fmt.Sprintf("Dry run — chart not written to %s.", flagOutput)))
				return nil
			}

			f, err := os.Create(flagOutput)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()

			switch flagFormat {
			case "mermaid":
				err = render.Mermaid(f, sched, title)
			case "html":
				err = render.HTML(f, sched, title)
			case "dot":
				err = render.DOT(f, sched, set)
			case "json":
				err = render.JSON(f, sched)
			default:
				return fmt.Errorf("unsupported format %q (use mermaid, html, dot, or json)", flagFormat)
			}
			if err != nil {
				return err
			}

			fmt.Printf("✅ %s %s entries written to %s\n",
				ui.BoldGreen("Done:"), ui.Bold(sched.Len()), ui.BoldMagenta(flagOutput))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "gantt_chart.html", "Output file path")
	cmd.Flags().StringVar(&flagFormat, "format", "html", "Output format (mermaid, html, dot, json)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Compute and summarize without writing the chart")
	cmd.Flags().BoolVar(&flagOffline, "offline", false, "Skip GitLab entirely and schedule from tasks.json alone")

	return cmd
}

func graphCmd() *cobra.Command {
	var flagFormat string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the task dependency graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadTasks()
			if err != nil {
				return err
			}

			// Dates come from fallbacks only; the graph view does not need
			// tracker facts.
			sched, err := schedule.Compute(schedule.Input{
				Tasks:    set,
				Facts:    facts.Source{},
				Calendar: calendar.New("", nil),
			})
			if err != nil {
				return err
			}

			if flagFormat == "dot" {
				return render.DOT(os.Stdout, sched, set)
			}

			printASCIIGraph(set, sched)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagFormat, "format", "ascii", "Output format (ascii, dot)")

	return cmd
}

func printASCIIGraph(set *taskmaster.Set, sched *schedule.Schedule) {
	fmt.Printf("🔗 %s\n", ui.BoldCyan("Task Dependency Graph"))
	fmt.Println(ui.Cyan("═══════════════════════"))
	fmt.Println()

	for _, id := range set.IDs() {
		task := set.Tasks[id]
		dates := ""
		if e, ok := sched.ByID(id); ok {
			dates = ui.Dim(fmt.Sprintf("  %s → %s", e.Start.Format("2006-01-02"), e.Finish.Format("2006-01-02")))
		}
		fmt.Printf("  %s [%s] %s%s\n", ui.StatusIcon(task.Status), ui.BoldMagenta(string(id)), task.Title, dates)

		for _, dep := range set.Deps(id) {
			fmt.Printf("      %s %s\n", ui.Dim("└──← after"), ui.Magenta(string(dep)))
		}
	}
}
