package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"familiaconnect/internal/calendar"
	"familiaconnect/internal/config"
	"familiaconnect/internal/database"
	"familiaconnect/internal/domain"
	"familiaconnect/internal/repository/postgres"
	"familiaconnect/internal/service"

	"github.com/spf13/cobra"
)

var (
	selectedFlag string
	eventsFlag   bool
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [YYYY-MM]",
	Short: "Print a month grid",
	Long: `Print the six-week month grid the bot renders, Sunday first.
Days outside the month are dimmed with a dot, today is marked with a bullet and
the selected day is bracketed, and days with events carry a star. With --events
the grid is annotated with events from the database.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalendar,
}

func init() {
	calendarCmd.Flags().StringVar(&selectedFlag, "selected", "", "selected day (YYYY-MM-DD)")
	calendarCmd.Flags().BoolVar(&eventsFlag, "events", false, "mark days with events from the database")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	now := time.Now()
	ref := calendar.FromTime(now)

	if len(args) == 1 {
		month, err := calendar.ParseMonth(args[0])
		if err != nil {
			return err
		}
		ref = month
	}

	var selected calendar.Date
	if selectedFlag != "" {
		d, err := calendar.Parse(selectedFlag)
		if err != nil {
			return err
		}
		selected = d
	}

	view := domain.NewMonthView(ref, selected, now, nil)

	if eventsFlag {
		cfg, err := config.LoadForTools()
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := database.Connect(cfg.DSN(), database.RetryPolicy{Attempts: 1}, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		cal := service.NewCalendarService(postgres.NewEventRepo(db), cfg.Location(), logger)
		view, err = cal.MonthView(ref, selected, now, domain.MemberFilter{})
		if err != nil {
			return err
		}
	}

	renderGrid(cmd.OutOrStdout(), view)
	return nil
}

// renderGrid writes the month title, weekday initials and six weeks of days
// labelled the way the bot labels its day buttons
func renderGrid(w io.Writer, view *domain.MonthView) {
	fmt.Fprintln(w, view.Title())

	header := make([]string, len(calendar.WeekdayInitials))
	for i, initial := range calendar.WeekdayInitials {
		header[i] = fmt.Sprintf("%6s", initial)
	}
	fmt.Fprintln(w, strings.Join(header, ""))

	for week := 0; week < calendar.GridSize/7; week++ {
		var line strings.Builder
		for _, cell := range view.Cells[week*7 : week*7+7] {
			line.WriteString(fmt.Sprintf("%6s", cell.Label()))
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}
