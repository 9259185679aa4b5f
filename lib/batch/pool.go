package batch

import (
	"context"
	"sync/atomic"

	"scrapingbee-cli/lib/telemetry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var tracer = telemetry.Tracer("scrapingbee.lib.batch")
var meter = otel.Meter("scrapingbee.lib.batch")
var itemCounter = telemetry.Int64Counter(
	meter,
	"batch.items",
	metric.WithDescription("batch items processed, by outcome"),
)

// WorkerFunc performs the remote call for a single input. It is expected to
// turn its own failures into a non-nil error instead of panicking, a
// transport failure is reported as (nil, 0, err).
type WorkerFunc func(ctx context.Context, input string) (body []byte, statusCode int, err error)

// Result is the outcome of a single batch item.
type Result struct {
	// Index is the position of Input in the original input list.
	Index int
	Input string
	// Body is the response body, on failure it may hold a diagnostic
	// payload from the server.
	Body []byte
	// StatusCode is 0 if the call never got a response.
	StatusCode int
	Err        error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

// PoolSize is the amount of workers used for numInputs items: never more
// than there are items and never less than one (unless there is nothing to
// do).
func PoolSize(concurrency, numInputs int) int {
	return min(max(concurrency, 1), numInputs)
}

// Pool runs a single batch. It is created by the caller for one run and its
// size does not change afterwards.
type Pool struct {
	size int
	tel  telemetry.API
}

// NewPool creates a pool sized for numInputs items. tel can be nil.
func NewPool(concurrency, numInputs int, tel telemetry.API) *Pool {
	if tel == nil {
		tel = telemetry.NoopAPI{}
	}
	return &Pool{
		size: PoolSize(concurrency, numInputs),
		tel:  telemetry.NewScopedAPI("batch", tel),
	}
}

func (p *Pool) Size() int {
	return p.size
}

// Run calls fn once for every input and returns one Result per input with
// results[i].Index == i, whatever order the calls finish in. Run waits for
// every call to return, it does not retry, time out or stop early.
func (p *Pool) Run(ctx context.Context, inputs []string, fn WorkerFunc) []Result {
	results := make([]Result, len(inputs))
	if len(inputs) == 0 {
		return results
	}

	ctx, span := tracer.Start(ctx, "Pool:Run")
	defer span.End()

	limit := PoolSize(p.size, len(inputs))
	span.SetAttributes(
		attribute.Int("batch.inputs", len(inputs)),
		attribute.Int("batch.pool_size", limit),
	)

	var failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(limit)
	for i, input := range inputs {
		g.Go(func() error {
			// each goroutine owns results[i], nothing else writes to it
			results[i] = p.runOne(ctx, i, input, fn)
			if results[i].Failed() {
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	p.tel.ReportCount("run.items", int64(len(inputs)))
	p.tel.ReportCount("run.failed", failed.Load())
	return results
}

func (p *Pool) runOne(ctx context.Context, index int, input string, fn WorkerFunc) Result {
	ctx, span := tracer.Start(
		ctx, "batch.item",
		trace.WithAttributes(attribute.Int("batch.index", index)),
	)
	defer span.End()

	body, status, err := fn(ctx, input)

	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, "item failed")
		p.tel.ReportDebug("item failed", index, status, err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	itemCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))

	return Result{
		Index:      index,
		Input:      input,
		Body:       body,
		StatusCode: status,
		Err:        err,
	}
}

// Run is a shorthand for running inputs through a fresh Pool.
func Run(ctx context.Context, inputs []string, concurrency int, fn WorkerFunc) []Result {
	return NewPool(concurrency, len(inputs), nil).Run(ctx, inputs, fn)
}
