package metrics

// Metric names
const (
	MetricNameRunsCompleted      = "dungeonrunner_runs_completed_total"
	MetricNameRewardPoints       = "dungeonrunner_reward_points"
	MetricNameItemsForged        = "dungeonrunner_items_forged_total"
	MetricNameWeatherStatus      = "dungeonrunner_weather_status_total"
	MetricNameEventHandlerErrors = "dungeonrunner_event_handler_errors_total"
)

// Metric help text
const (
	HelpTextRunsCompleted      = "Completed runs by level and outcome"
	HelpTextRewardPoints       = "Reward points awarded per completed run"
	HelpTextItemsForged        = "Reward items forged by slot"
	HelpTextWeatherStatus      = "Weather status applied to completed runs"
	HelpTextEventHandlerErrors = "Events the metrics collector could not record"
)

// Label names
const (
	LabelLevel   = "level"
	LabelOutcome = "outcome"
	LabelSlot    = "slot"
	LabelStatus  = "status"
	LabelType    = "type"
)

// RewardPointBuckets spans a short jog up to a marathon in hot weather
var RewardPointBuckets = []float64{0, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 25000}
