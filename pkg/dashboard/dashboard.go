package dashboard

import (
	"github.com/matzehuels/sketchfit/pkg/errors"
	"github.com/matzehuels/sketchfit/pkg/sketch"
)

// ChartData is one labelled count, such as commits in a given hour.
type ChartData struct {
	Time  string  `json:"time"`
	Count float64 `json:"count"`
}

// Summary is the dashboard's commit-activity summary.
type Summary struct {
	StartDate     string      `json:"start_date"`
	EndDate       string      `json:"end_date"`
	TotalCount    int         `json:"total_count"`
	RepoCount     int         `json:"repo_count"`
	HourData      []ChartData `json:"hour_data"`
	WeekData      []ChartData `json:"week_data"`
	WorkHourPL    []ChartData `json:"work_hour_pl"`
	WorkWeekPL    []ChartData `json:"work_week_pl"`
	Index996      float64     `json:"index_996"`
	OvertimeRatio float64     `json:"overtime_ratio"`
	IsStandard    bool        `json:"is_standard"`
}

// AIRatio counts AI-written and human-written lines across projects.
type AIRatio struct {
	AILines    float64 `json:"ai_lines"`
	HumanLines float64 `json:"human_lines"`
	Projects   int     `json:"projects"`
}

// Series names one of the summary's bar series.
type Series string

const (
	SeriesHour     Series = "hour"
	SeriesWeek     Series = "week"
	SeriesWorkHour Series = "work_hour"
	SeriesWorkWeek Series = "work_week"
)

// Series returns the named series.
func (s *Summary) Series(name Series) ([]ChartData, error) {
	switch name {
	case SeriesHour, "":
		return s.HourData, nil
	case SeriesWeek:
		return s.WeekData, nil
	case SeriesWorkHour:
		return s.WorkHourPL, nil
	case SeriesWorkWeek:
		return s.WorkWeekPL, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput,
		"unknown series %q (want hour, week, work_hour or work_week)", name)
}

// Bars returns the named series as bar chart data. An empty name selects the
// hourly series.
func Bars(s *Summary, name Series) (sketch.BarData, error) {
	points, err := s.Series(name)
	if err != nil {
		return sketch.BarData{}, err
	}
	data := sketch.BarData{
		Labels: make([]string, len(points)),
		Values: make([]float64, len(points)),
	}
	for i, p := range points {
		data.Labels[i] = p.Time
		data.Values[i] = p.Count
	}
	return data, nil
}

// Slice labels used by Pie.
const (
	LabelAI    = "AI"
	LabelHuman = "Human"
)

// Pie returns the ratio as a two-slice pie.
func Pie(r AIRatio) sketch.PieData {
	return sketch.PieData{
		Labels: []string{LabelAI, LabelHuman},
		Values: []float64{r.AILines, r.HumanLines},
	}
}

// Share returns the AI fraction of all lines, or 0 when nothing was counted.
func (r AIRatio) Share() float64 {
	total := r.AILines + r.HumanLines
	if total <= 0 {
		return 0
	}
	return r.AILines / total
}

// AggregateAIRatio sums per-project ratios. If projects were queried but none
// reported any lines, it returns an even split of 50 lines each.
func AggregateAIRatio(parts []AIRatio) AIRatio {
	var total AIRatio
	hasData := false
	for _, p := range parts {
		ai, human := max(p.AILines, 0), max(p.HumanLines, 0)
		total.AILines += ai
		total.HumanLines += human
		if ai+human > 0 {
			hasData = true
		}
	}
	total.Projects = len(parts)
	if !hasData && len(parts) > 0 {
		total.AILines, total.HumanLines = 50, 50
	}
	return total
}
