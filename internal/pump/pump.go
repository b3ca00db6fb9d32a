// Package pump moves framed payloads through a byte ring between a simulated
// interrupt-side producer and a polling consumer.
//
// The ring does no synchronization of its own; the pump shares it through
// adapters.Locked. Frames refused with api.ErrNoPlace are dropped or parked
// in a bounded backlog, per control.Policy.
package pump

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/eapache/queue"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/momentics/hioload-ring/adapters"
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/core/protocol"
	"github.com/momentics/hioload-ring/core/ring"
)

// Metric keys published to the control adapter.
const (
	MetricProduced  = "pump.frames.produced"
	MetricDelivered = "pump.frames.delivered"
	MetricDropped   = "pump.frames.dropped"
	MetricCorrupt   = "pump.frames.corrupt"
	MetricRefused   = "pump.writes.refused"
)

// Report summarizes a run.
type Report struct {
	Produced   int64
	Delivered  int64
	Dropped    int64
	Corrupt    int64
	Refused    int64 // writes answered with ErrNoPlace
	Bytes      int64 // payload bytes delivered
	MaxBacklog int
	Elapsed    time.Duration
}

func (r Report) String() string {
	rate := 0.0
	if r.Elapsed > 0 {
		rate = float64(r.Bytes) / r.Elapsed.Seconds()
	}
	return fmt.Sprintf("produced=%s delivered=%s dropped=%s corrupt=%d refused=%s max_backlog=%d payload=%s (%s/s) in %s",
		humanize.Comma(r.Produced), humanize.Comma(r.Delivered), humanize.Comma(r.Dropped), r.Corrupt,
		humanize.Comma(r.Refused), r.MaxBacklog, humanize.IBytes(uint64(r.Bytes)),
		humanize.IBytes(uint64(rate)), r.Elapsed.Round(time.Millisecond))
}

// Pump owns the shared view of one byte ring.
type Pump struct {
	cfg  control.Config
	ring *adapters.Locked[byte]
	log  *zap.Logger
	ctrl *adapters.ControlAdapter

	produced  atomic.Int64
	delivered atomic.Int64
	dropped   atomic.Int64
	corrupt   atomic.Int64
	refused   atomic.Int64
	bytes     atomic.Int64
}

// New wraps r for concurrent producer/consumer use. log and ctrl may be nil.
func New(cfg control.Config, r *ring.Bytes, log *zap.Logger, ctrl *adapters.ControlAdapter) *Pump {
	if log == nil {
		log = zap.NewNop()
	}
	if ctrl == nil {
		ctrl = adapters.NewControlAdapter()
	}
	p := &Pump{
		cfg:  cfg,
		ring: adapters.NewLocked(r),
		log:  log,
		ctrl: ctrl,
	}
	ctrl.WatchRing("pump.ring", p.ring)
	return p
}

// Ring returns the synchronized ring view.
func (p *Pump) Ring() *adapters.Locked[byte] { return p.ring }

// Run drives src into the ring and the ring into sink until src is exhausted
// and every accepted frame is delivered, or ctx ends.
func (p *Pump) Run(ctx context.Context, src Source, sink Sink) (Report, error) {
	start := time.Now()
	st := p.ring.Stats()
	p.log.Info("pump starting",
		zap.Int("capacity", st.Cap),
		zap.Int("frame_size", p.cfg.FrameSize),
		zap.String("policy", string(p.cfg.Policy)))

	done := make(chan struct{})
	var maxBacklog int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(done)
		var err error
		maxBacklog, err = p.produce(gctx, src)
		return err
	})
	g.Go(func() error {
		return p.consume(gctx, sink, done)
	})
	err := g.Wait()

	rep := Report{
		Produced:   p.produced.Load(),
		Delivered:  p.delivered.Load(),
		Dropped:    p.dropped.Load(),
		Corrupt:    p.corrupt.Load(),
		Refused:    p.refused.Load(),
		Bytes:      p.bytes.Load(),
		MaxBacklog: maxBacklog,
		Elapsed:    time.Since(start),
	}
	if err != nil {
		p.log.Warn("pump stopped", zap.Error(err), zap.Stringer("report", rep))
		return rep, err
	}
	p.log.Info("pump finished", zap.Stringer("report", rep))
	return rep, nil
}

func (p *Pump) produce(ctx context.Context, src Source) (int, error) {
	backlog := queue.New()
	maxBacklog := 0
	exhausted := false

	for {
		if err := ctx.Err(); err != nil {
			return maxBacklog, err
		}
		progressed := p.flushBacklog(backlog)

		if !exhausted {
			payload, ok := src.Next()
			if !ok {
				exhausted = true
				p.log.Debug("source exhausted", zap.Int("backlog", backlog.Length()))
			} else {
				progressed = true
				frame, err := protocol.EncodeFrame(payload)
				if err != nil {
					return maxBacklog, errors.Wrap(err, "encode frame")
				}
				p.produced.Inc()
				p.ctrl.AddMetric(MetricProduced, 1)
				p.offer(backlog, frame)
				maxBacklog = max(maxBacklog, backlog.Length())
			}
		}

		if exhausted && backlog.Length() == 0 {
			return maxBacklog, nil
		}
		if !progressed {
			if err := wait(ctx, p.cfg.PollInterval); err != nil {
				return maxBacklog, err
			}
		}
	}
}

// offer writes frame or applies the overflow policy. Frames already waiting
// in the backlog go first so ordering is preserved.
func (p *Pump) offer(backlog *queue.Queue, frame []byte) {
	if backlog.Length() == 0 {
		err := p.ring.WriteMany(frame)
		if err == nil {
			return
		}
		if !errors.Is(err, api.ErrNoPlace) {
			p.log.Error("ring write failed", zap.Error(err))
			p.drop()
			return
		}
		p.refused.Inc()
		p.ctrl.AddMetric(MetricRefused, 1)
	}
	if p.cfg.Policy == control.PolicyBacklog && backlog.Length() < p.cfg.BacklogLimit {
		backlog.Add(frame)
		return
	}
	p.drop()
}

func (p *Pump) flushBacklog(backlog *queue.Queue) bool {
	flushed := false
	for backlog.Length() > 0 {
		frame := backlog.Peek().([]byte)
		if err := p.ring.WriteMany(frame); err != nil {
			p.refused.Inc()
			p.ctrl.AddMetric(MetricRefused, 1)
			break
		}
		backlog.Remove()
		flushed = true
	}
	return flushed
}

func (p *Pump) drop() {
	p.dropped.Inc()
	p.ctrl.AddMetric(MetricDropped, 1)
}

func (p *Pump) consume(ctx context.Context, sink Sink, done <-chan struct{}) error {
	var dec protocol.Decoder
	chunk := make([]byte, p.cfg.ReadChunk)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := p.ring.ReadAvailable(chunk)
		if err == nil {
			dec.Feed(chunk[:n])
			if err := p.deliver(&dec, sink); err != nil {
				return err
			}
			continue
		}
		if !errors.Is(err, api.ErrNoData) {
			return errors.Wrap(err, "ring read")
		}

		select {
		case <-done:
			if p.ring.Len() > 0 {
				continue
			}
			if dec.Buffered() > 0 {
				p.log.Warn("trailing partial frame", zap.Int("bytes", dec.Buffered()))
				p.corrupt.Inc()
				p.ctrl.AddMetric(MetricCorrupt, 1)
			}
			return nil
		default:
		}
		if err := wait(ctx, p.cfg.PollInterval); err != nil {
			return err
		}
	}
}

func (p *Pump) deliver(dec *protocol.Decoder, sink Sink) error {
	for {
		payload, ok, err := dec.Next()
		if !ok {
			return nil
		}
		if err != nil {
			p.log.Warn("discarding frame", zap.Error(err))
			p.corrupt.Inc()
			p.ctrl.AddMetric(MetricCorrupt, 1)
			continue
		}
		if err := sink.Consume(payload); err != nil {
			return errors.Wrap(err, "sink")
		}
		p.delivered.Inc()
		p.bytes.Add(int64(len(payload)))
		p.ctrl.AddMetric(MetricDelivered, 1)
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		runtime.Gosched()
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Close releases the ring's storage.
func (p *Pump) Close() error {
	return p.ring.Close()
}
