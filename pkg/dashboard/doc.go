// Package dashboard reads commit-activity dashboard documents and turns them
// into chart data.
//
// # Documents
//
// A summary document describes commit activity over a date range:
//
//	{
//	  "start_date": "2024-01-01",
//	  "end_date": "2024-03-31",
//	  "total_count": 812,
//	  "repo_count": 3,
//	  "hour_data": [{"time": "09", "count": 41}, ...],
//	  "week_data": [{"time": "1", "count": 120}, ...],
//	  "work_hour_pl": [...],
//	  "work_week_pl": [...],
//	  "index_996": 18.4,
//	  "overtime_ratio": 0.21,
//	  "is_standard": true
//	}
//
// An AI ratio document counts machine-written and human-written lines:
//
//	{"ai_lines": 1200, "human_lines": 4800, "projects": 2}
//
// Both may arrive wrapped in the API envelope {"code": 200, "message": "",
// "data": {...}}; [ReadSummary] and [ReadAIRatio] unwrap it. A non-200 code
// is reported as an error carrying the envelope message.
//
// # Charts
//
// [Bars] selects one series of a summary ([SeriesHour], [SeriesWeek],
// [SeriesWorkHour], [SeriesWorkWeek]) as bar chart data. [Pie] turns an AI
// ratio into a two-slice pie.
//
// # Aggregation
//
// [AggregateAIRatio] sums per-project ratios. When at least one project was
// asked about but none reported any lines, the result is an even 50/50 split
// so the pie still has something to draw. This is a display policy of the
// dashboard and is not part of the chart layout code.
package dashboard
