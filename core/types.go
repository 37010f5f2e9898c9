package core

// Wire types for the provider's users/me/dataset:aggregate endpoint.
// Millisecond timestamps travel as decimal strings on the wire. Response
// lists and leaf values stay addressable so that a level the provider
// omitted is distinguishable from one it sent empty.

type AggregateBy struct {
	DataSourceId string `json:"dataSourceId,omitempty"`
	DataTypeName string `json:"dataTypeName,omitempty"`
}

type BucketByTime struct {
	DurationMillis string `json:"durationMillis,omitempty"`
}

type AggregateRequest struct {
	AggregateBy     []AggregateBy `json:"aggregateBy"`
	BucketByTime    *BucketByTime `json:"bucketByTime,omitempty"`
	StartTimeMillis string        `json:"startTimeMillis"`
	EndTimeMillis   string        `json:"endTimeMillis"`
}

type AggregateResponse struct {
	Bucket []*Bucket `json:"bucket"`
}

type Bucket struct {
	StartTimeMillis string     `json:"startTimeMillis,omitempty"`
	EndTimeMillis   string     `json:"endTimeMillis,omitempty"`
	Dataset         []*Dataset `json:"dataset"`
}

type Dataset struct {
	DataSourceId string   `json:"dataSourceId,omitempty"`
	Point        []*Point `json:"point"`
}

type Point struct {
	StartTimeNanos string   `json:"startTimeNanos,omitempty"`
	EndTimeNanos   string   `json:"endTimeNanos,omitempty"`
	DataTypeName   string   `json:"dataTypeName,omitempty"`
	Value          []*Value `json:"value"`
}

type Value struct {
	IntVal *int64   `json:"intVal,omitempty"`
	FpVal  *float64 `json:"fpVal,omitempty"`
}
