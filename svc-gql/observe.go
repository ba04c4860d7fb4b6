package svcgql

import (
	"context"
	"time"

	svccli "github.com/SundaeSwap-finance/gql-swagger/svc-cli"
	"github.com/graph-gophers/graphql-go"
)

func PrometheusObserver(collector *svccli.Collector) Observer {
	return ObserverFunc(func(_ context.Context, params Params, _ time.Time, response *graphql.Response) {
		collector.ObserveOperation(params.OperationName, len(response.Errors) > 0)
	})
}

// CloudWatchObserver publishes the response time of each operation, and an
// error event for operations that returned errors.
func CloudWatchObserver(metrics svccli.Metrics) Observer {
	return ObserverFunc(func(ctx context.Context, params Params, start time.Time, response *graphql.Response) {
		dimensions := map[svccli.DimensionName]string{
			svccli.OperationNameDimension: params.OperationName,
		}
		metrics.Timing(ctx, svccli.ResponseTimeMetric, start, dimensions)
		if len(response.Errors) > 0 {
			metrics.Event(ctx, svccli.ErrorMetric, dimensions)
		}
	})
}
