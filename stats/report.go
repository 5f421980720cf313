package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/The-Faulkners/putttracker/internal/models"
	"github.com/The-Faulkners/putttracker/internal/timeutil"
	"github.com/The-Faulkners/putttracker/internal/ui"
)

const barChartChar = "▇"

// Report bundles every computed statistic for rendering or export.
type Report struct {
	Summary           Summary        `json:"summary"`
	Best              *BestSession   `json:"best_session,omitempty"`
	Trend             *float64       `json:"trend,omitempty"`
	PersonalBests     []DistanceBest `json:"personal_bests,omitempty"`
	LongestMadeStreak int            `json:"longest_made_streak"`
}

// NewReport computes a full report over the given completed sessions,
// which must be ordered most recent first.
func NewReport(sessions []models.PracticeSession) *Report {
	r := &Report{
		Summary:           Overall(sessions),
		PersonalBests:     PersonalBests(sessions),
		LongestMadeStreak: LongestMadeStreak(sessions),
	}

	if best, ok := Best(sessions); ok {
		r.Best = &best
	}

	if delta, ok := Trend(sessions); ok {
		r.Trend = &delta
	}

	return r
}

// ToJSON returns the report as indented JSON.
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Render writes the human-readable report.
func (r *Report) Render(w io.Writer) {
	output := fmt.Sprint(
		r.summary(),
		r.trend(),
		r.bestSession(),
		r.distanceChart(),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))

	if len(r.PersonalBests) > 0 {
		r.bestsTable(w)
	}
}

func (r *Report) summary() string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	sessions := fmt.Sprintln(
		"Sessions completed:",
		ui.Green(r.Summary.TotalSessions),
	)

	sets := fmt.Sprintln(
		"Sets recorded:",
		ui.Green(r.Summary.TotalSets),
	)

	putts := fmt.Sprintf(
		"Putts made: %s of %s\n",
		ui.Green(r.Summary.TotalPuttsMade),
		ui.Green(r.Summary.TotalPuttsThrown),
	)

	accuracy := fmt.Sprintf(
		"Average accuracy: %s%%\n",
		ui.Green(timeutil.Round(r.Summary.AverageAccuracy)),
	)

	streak := fmt.Sprintln(
		"Hot streak:",
		ui.Green(r.Summary.CurrentStreak),
		"sessions",
	)

	run := fmt.Sprintln(
		"Longest made run:",
		ui.Green(r.LongestMadeStreak),
		"putts",
	)

	return header + sessions + sets + putts + accuracy + streak + run
}

func (r *Report) trend() string {
	if r.Trend == nil {
		return ""
	}

	header := fmt.Sprintf("\n%s\n", ui.Blue("Trend"))

	delta := *r.Trend

	var direction string

	switch {
	case delta > 0:
		direction = ui.Green(
			fmt.Sprintf("up %d points", timeutil.Round(delta)),
		)
	case delta < 0:
		direction = ui.Red(
			fmt.Sprintf("down %d points", timeutil.Round(-delta)),
		)
	default:
		direction = ui.Highlight("holding steady")
	}

	return header + fmt.Sprintf(
		"Recent sessions are %s against the previous stretch\n",
		direction,
	)
}

func (r *Report) bestSession() string {
	if r.Best == nil {
		return ""
	}

	header := fmt.Sprintf("\n%s\n", ui.Blue("Best session"))

	thrown, scored := r.Best.Session.Totals()

	return header + fmt.Sprintf(
		"%s: %s of %s putts (%s%%)\n",
		r.Best.Session.StartTime.Format("January 02, 2006"),
		ui.Green(scored),
		ui.Green(thrown),
		ui.Green(timeutil.Round(r.Best.Accuracy)),
	)
}

func (r *Report) distanceChart() string {
	if len(r.PersonalBests) == 0 {
		return ""
	}

	header := ui.Blue("\nAccuracy by distance (%)\n")

	var bars pterm.Bars

	for _, b := range r.PersonalBests {
		var accuracy float64

		if b.TotalThrown > 0 {
			accuracy = float64(b.TotalMade) / float64(b.TotalThrown) * 100
		}

		bars = append(bars, pterm.Bar{
			Value: timeutil.Round(accuracy),
			Label: fmt.Sprintf("%d ft", b.Distance),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func (r *Report) bestsTable(w io.Writer) {
	data := [][]string{
		{"#", "DISTANCE", "BEST SET", "BEST RUN", "MADE", "THROWN"},
	}

	for i, b := range r.PersonalBests {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d ft", b.Distance),
			fmt.Sprintf("%d%%", timeutil.Round(b.BestAccuracy)),
			fmt.Sprintf("%d", b.BestStreak),
			fmt.Sprintf("%d", b.TotalMade),
			fmt.Sprintf("%d", b.TotalThrown),
		})
	}

	ui.PrintTable(data, w)
}
