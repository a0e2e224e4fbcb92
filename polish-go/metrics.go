package polish_go

import (
	"fmt"
	"io"
	"time"
)

// / A simple stopwatch which returns the time
// / in seconds since Restart() was called.
type Stopwatch struct {
	started_ time.Time
}

func NewStopwatch() *Stopwatch {
	ret := Stopwatch{}
	ret.Restart()
	return &ret
}

func (this *Stopwatch) Restart() { this.started_ = time.Now() }

func (this *Stopwatch) Elapsed() time.Duration { return time.Since(this.started_) }

type Metric struct {
	name string
	/// Number of times we've hit the code path.
	count int
	/// Total time we've spent on the code path.
	sum time.Duration
}

func (this *Metric) Name() string { return this.name }

func (this *Metric) Count() int { return this.count }

func (this *Metric) Sum() time.Duration { return this.sum }

// Metrics collects per-operation timing. A nil *Metrics records nothing.
type Metrics struct {
	metrics_ []*Metric
	by_name_ map[string]*Metric
}

func NewMetrics() *Metrics {
	return &Metrics{by_name_: map[string]*Metric{}}
}

func (this *Metrics) NewMetric(name string) *Metric {
	if metric, ok := this.by_name_[name]; ok {
		return metric
	}
	metric := &Metric{name: name}
	this.metrics_ = append(this.metrics_, metric)
	this.by_name_[name] = metric
	return metric
}

// / Record starts timing name; call the returned func when the operation
// / ends.
func (this *Metrics) Record(name string) func() {
	if this == nil {
		return func() {}
	}
	metric := this.NewMetric(name)
	watch := NewStopwatch()
	return func() {
		metric.count++
		metric.sum += watch.Elapsed()
	}
}

func (this *Metrics) Metrics() []*Metric {
	if this == nil {
		return nil
	}
	return this.metrics_
}

// / Print a summary report.
func (this *Metrics) Report(out io.Writer) {
	width := 0
	for _, i := range this.Metrics() {
		width = max(len(i.name), width)
	}

	fmt.Fprintf(out, "%-*s\t%-6s\t%-9s\t%s\n", width,
		"metric", "count", "avg (us)", "total (ms)")
	for _, metric := range this.Metrics() {
		micros := metric.sum.Microseconds()
		total := float64(micros) / float64(1000)
		avg := float64(micros) / float64(metric.count)
		fmt.Fprintf(out, "%-*s\t%-6d\t%-8.1f\t%.1f\n", width, metric.name, metric.count, avg, total)
	}
}
