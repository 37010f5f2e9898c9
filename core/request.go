package core

import "strconv"

const (
	// StepsDataSourceID is the derived estimated step count delta stream.
	StepsDataSourceID = "derived:com.google.step_count.delta:com.google.android.gms:estimated_steps"
	StepsDataTypeName = "com.google.step_count.delta"
)

// NewStepsRequest builds an aggregate request for the step count stream
// over w, bucketed as a single bucket spanning the whole window.
func NewStepsRequest(w TimeWindow) *AggregateRequest {
	return &AggregateRequest{
		AggregateBy: []AggregateBy{{
			DataSourceId: StepsDataSourceID,
			DataTypeName: StepsDataTypeName,
		}},
		BucketByTime: &BucketByTime{
			DurationMillis: strconv.FormatInt(w.DurationMillis, 10),
		},
		StartTimeMillis: strconv.FormatInt(w.StartMillis, 10),
		EndTimeMillis:   strconv.FormatInt(w.EndMillis, 10),
	}
}
