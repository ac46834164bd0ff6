package ravel

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/kmicklas/ravel/backend"
	"github.com/kmicklas/ravel/internal/config"
	"github.com/kmicklas/ravel/internal/logging"
	"github.com/kmicklas/ravel/internal/metrics"
)

// Driver owns the single retained-state tree for one mounted view and runs
// the update cycle: an event comes in, the handler it names mutates Model,
// the view is rebuilt against the retained state, and the backend ends up
// matching. Grounded on the teacher's Engine/turncrank (engine.go); see
// DESIGN.md.
type Driver[M any, S any, V View[S]] struct {
	Model  *M
	Render func(*M) V

	be   backend.Backend
	root backend.Handle
	cfg  config.Config

	sink *EventSink
	logger *slog.Logger
	ring   *logging.RingHandler
	m      *metrics.Driver

	events chan dispatchReq
	built  bool
	state  S
}

type dispatchReq struct {
	tok backend.Token
	evt Event
}

// EntryPoint mounts render against model on the backend rooted at root,
// runs the first build cycle synchronously, and starts the driver's event
// loop in a new goroutine. The returned Driver's Dispatch method is how a
// backend event bridge (e.g. domdriver) feeds events back in.
func EntryPoint[M any, S any, V View[S]](
	model *M,
	render func(*M) V,
	be backend.Backend,
	root backend.Handle,
	cfg config.Config,
	m *metrics.Driver,
) *Driver[M, S, V] {
	ring := logging.New(slog.NewTextHandler(os.Stderr, nil))
	d := &Driver[M, S, V]{
		Model:  model,
		Render: render,
		be:     be,
		root:   root,
		cfg:    cfg,
		sink:   newEventSink(),
		logger: slog.New(ring),
		ring:   ring,
		m:      m,
		events: make(chan dispatchReq),
	}

	if cfg.SentryDSN != "" {
		sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN})
	}

	d.cycle()
	go d.loop()
	return d
}

// Dispatch enqueues an event for the driver's goroutine to run a handler
// and a rebuild cycle for. It does not block on the cycle completing.
func (d *Driver[M, S, V]) Dispatch(tok backend.Token, evt Event) {
	d.events <- dispatchReq{tok: tok, evt: evt}
}

func (d *Driver[M, S, V]) loop() {
	for req := range d.events {
		d.sink.dispatch(d.Model, req.tok, req.evt)
		d.cycle()
		d.maybeProbeStaleRebuild()
	}
}

// cycle runs one build-or-rebuild pass. Panics during Build/Rebuild are
// caught, dumped through the ring-buffered logger, optionally reported to
// Sentry, and then re-raised — the same shape as the teacher's turncrank
// defer/recover/Dump/panic.
func (d *Driver[M, S, V]) cycle() {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			d.ring.Dump()
			if d.m != nil {
				d.m.Panics.Inc()
			}
			if d.cfg.SentryDSN != "" {
				sentry.CurrentHub().Recover(r)
				sentry.Flush(2 * time.Second)
			}
			panic(r)
		}
		d.ring.Discard()
	}()

	cx := Cx{Sink: d.sink, Debug: d.cfg.Debug}
	cx.Cursor = backend.NewCursor(d.be, d.root)

	view := d.Render(d.Model)
	if !d.built {
		d.state = view.Build(cx)
		d.built = true
	} else {
		view.Rebuild(d.state, cx)
	}

	// Batching backends (e.g. domdriver) hold mutations until Flush.
	if f, ok := d.be.(interface{ Flush() }); ok {
		f.Flush()
	}

	if d.m != nil {
		d.m.Cycles.Inc()
		d.m.CycleDur.Observe(time.Since(start).Seconds())
	}
}

// maybeProbeStaleRebuild occasionally runs an extra rebuild pass against
// the unchanged model, generalized from the teacher's noActionRandEnabled
// chaos probe (engine.go's randPick), to catch Rebuild implementations
// that assume they only ever run after a real model change.
func (d *Driver[M, S, V]) maybeProbeStaleRebuild() {
	if !d.cfg.ProbeStaleRebuild {
		return
	}
	if rand.Uint32()&0xF != 0 {
		return
	}
	d.logger.Debug("ravel: probing stale rebuild")
	d.cycle()
}
