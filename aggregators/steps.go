package aggregators

import (
	"fmt"

	"dailysteps/core"
)

// Steps sums every integer leaf value in resp, visiting each
// bucket, dataset, point and value exactly once. A level that is present
// but empty contributes nothing. A level that is absent entirely means the
// provider returned a shape this program does not understand, and the
// whole extraction fails instead of reporting a partial count.
func Steps(resp *core.AggregateResponse) (int64, error) {
	if resp == nil || resp.Bucket == nil {
		return 0, fmt.Errorf("%w: no bucket list", core.ErrMalformedResponse)
	}

	var sum int64

	for i, bucket := range resp.Bucket {
		if bucket == nil || bucket.Dataset == nil {
			return 0, fmt.Errorf("%w: bucket %d has no dataset list", core.ErrMalformedResponse, i)
		}
		for j, dataset := range bucket.Dataset {
			if dataset == nil || dataset.Point == nil {
				return 0, fmt.Errorf("%w: dataset %d in bucket %d has no point list", core.ErrMalformedResponse, j, i)
			}
			for k, point := range dataset.Point {
				if point == nil || point.Value == nil {
					return 0, fmt.Errorf("%w: point %d in dataset %d of bucket %d has no value list", core.ErrMalformedResponse, k, j, i)
				}
				for l, value := range point.Value {
					if value == nil || value.IntVal == nil {
						return 0, fmt.Errorf("%w: value %d of point %d in dataset %d of bucket %d has no integer value", core.ErrMalformedResponse, l, k, j, i)
					}
					sum += *value.IntVal
				}
			}
		}
	}

	return sum, nil
}
