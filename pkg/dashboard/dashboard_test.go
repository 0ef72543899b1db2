package dashboard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/sketchfit/pkg/errors"
)

const summaryJSON = `{
  "start_date": "2024-01-01",
  "end_date": "2024-03-31",
  "total_count": 30,
  "repo_count": 2,
  "hour_data": [{"time": "09", "count": 10}, {"time": "10", "count": 20}],
  "week_data": [{"time": "1", "count": 30}],
  "work_hour_pl": [],
  "work_week_pl": [{"time": "1", "count": 5}],
  "index_996": 12.5,
  "overtime_ratio": 0.2,
  "is_standard": true
}`

func TestReadSummary(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain", summaryJSON},
		{"envelope", `{"code": 200, "message": "ok", "data": ` + summaryJSON + `}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ReadSummary(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadSummary: %v", err)
			}
			if s.TotalCount != 30 || s.RepoCount != 2 || !s.IsStandard {
				t.Errorf("summary = %+v", s)
			}
			if len(s.HourData) != 2 || s.HourData[1].Count != 20 {
				t.Errorf("HourData = %+v", s.HourData)
			}
			if s.Index996 != 12.5 {
				t.Errorf("Index996 = %v", s.Index996)
			}
		})
	}
}

func TestReadSummaryErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"empty", "  ", errors.ErrCodeInvalidFormat},
		{"malformed", `{"hour_data": [`, errors.ErrCodeInvalidFormat},
		{"api failure", `{"code": 500, "message": "boom", "data": null}`, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSummary(strings.NewReader(tt.input))
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadSummary() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestBars(t *testing.T) {
	s, err := ReadSummary(strings.NewReader(summaryJSON))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		series Series
		labels []string
	}{
		{"", []string{"09", "10"}},
		{SeriesHour, []string{"09", "10"}},
		{SeriesWeek, []string{"1"}},
		{SeriesWorkHour, []string{}},
		{SeriesWorkWeek, []string{"1"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.series), func(t *testing.T) {
			data, err := Bars(s, tt.series)
			if err != nil {
				t.Fatalf("Bars: %v", err)
			}
			if len(data.Labels) != len(tt.labels) || len(data.Values) != len(tt.labels) {
				t.Fatalf("Bars() = %+v, want labels %v", data, tt.labels)
			}
			for i, l := range tt.labels {
				if data.Labels[i] != l {
					t.Errorf("label %d = %q, want %q", i, data.Labels[i], l)
				}
			}
		})
	}

	if _, err := Bars(s, "month"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unknown series error = %v", err)
	}
}

func TestAggregateAIRatio(t *testing.T) {
	tests := []struct {
		name  string
		parts []AIRatio
		want  AIRatio
	}{
		{"none", nil, AIRatio{}},
		{"sums", []AIRatio{{AILines: 10, HumanLines: 30}, {AILines: 5}}, AIRatio{AILines: 15, HumanLines: 30, Projects: 2}},
		{"no lines anywhere", []AIRatio{{}, {}}, AIRatio{AILines: 50, HumanLines: 50, Projects: 2}},
		{"one project with data", []AIRatio{{}, {HumanLines: 7}}, AIRatio{HumanLines: 7, Projects: 2}},
		{"negative counts ignored", []AIRatio{{AILines: -3, HumanLines: 4}}, AIRatio{HumanLines: 4, Projects: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AggregateAIRatio(tt.parts); got != tt.want {
				t.Errorf("AggregateAIRatio() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReadAIRatio(t *testing.T) {
	r, err := ReadAIRatio(strings.NewReader(`{"ai_lines": 25, "human_lines": 75, "projects": 1}`))
	if err != nil {
		t.Fatalf("ReadAIRatio: %v", err)
	}
	if r.Share() != 0.25 {
		t.Errorf("Share() = %v, want 0.25", r.Share())
	}

	r, err = ReadAIRatio(strings.NewReader(`{"code": 200, "data": [{"ai_lines": 0}, {"human_lines": 0}]}`))
	if err != nil {
		t.Fatalf("ReadAIRatio(array): %v", err)
	}
	if r.AILines != 50 || r.HumanLines != 50 || r.Projects != 2 {
		t.Errorf("aggregated = %+v, want the even split", r)
	}
}

func TestPie(t *testing.T) {
	data := Pie(AIRatio{AILines: 1, HumanLines: 3})
	if len(data.Labels) != 2 || data.Labels[0] != LabelAI || data.Labels[1] != LabelHuman {
		t.Errorf("labels = %v", data.Labels)
	}
	if data.Values[0] != 1 || data.Values[1] != 3 {
		t.Errorf("values = %v", data.Values)
	}
	if (AIRatio{}).Share() != 0 {
		t.Error("empty ratio share should be 0")
	}
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summary.json")
	if err := os.WriteFile(path, []byte(summaryJSON), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportSummary(path); err != nil {
		t.Errorf("ImportSummary: %v", err)
	}
	if _, err := ImportAIRatio(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}
