// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor

import (
	"context"
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// ErrRegistryBusy is returned by [Register] when the registry's lock is
// already held at the moment of registration. [Dispatch] holds that lock
// only while it looks up a chain, not while the chain runs, so a
// registration made from inside a running dispatch is not rejected.
var ErrRegistryBusy = errors.New("interceptor: registry is not available for registration")

// Registry maps an event type's runtime identity to its reusable,
// shared-ownership interceptor chain. A chain is installed once by
// [Register] and serves every subsequent dispatch of that event type;
// [Dispatch] only ever reads it, appending a fresh [EventBridge] for the
// specific event value.
type Registry struct {
	mu     sync.Mutex
	chains map[reflect.Type][]Interceptor
	log    *logrus.Entry
	tracer trace.Tracer
}

// RegistryOption configures a Registry at construction time.
type RegistryOption func(*Registry)

// WithLogger overrides the structured logger a Registry uses for
// dispatch and registration diagnostics. Defaults to logrus.StandardLogger().
func WithLogger(log *logrus.Entry) RegistryOption {
	return func(r *Registry) { r.log = log }
}

// WithTracer overrides the OpenTelemetry tracer a Registry uses to span
// each dispatch. Defaults to the global noop tracer provider, so tracing
// is opt-in.
func WithTracer(tracer trace.Tracer) RegistryOption {
	return func(r *Registry) { r.tracer = tracer }
}

// NewRegistry returns an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		chains: make(map[reflect.Type][]Interceptor),
		log:    logrus.NewEntry(logrus.StandardLogger()),
		tracer: otel.Tracer("github.com/RadicalZephyr/tokio-interceptor"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func eventTypeOf[E Event]() reflect.Type {
	return reflect.TypeOf((*E)(nil)).Elem()
}

// Register installs interceptors as the chain for event type E, replacing
// any prior chain for that type. Returns [ErrRegistryBusy] wrapped with
// context if the registry cannot obtain exclusive access.
func Register[E Event](r *Registry, interceptors []Interceptor) error {
	if !r.mu.TryLock() {
		return errors.Wrapf(ErrRegistryBusy, "register %s", eventTypeOf[E]())
	}
	defer r.mu.Unlock()

	chain := make([]Interceptor, len(interceptors))
	copy(chain, interceptors)
	r.chains[eventTypeOf[E]()] = chain
	r.log.WithField("event", eventTypeOf[E]().String()).Debug("registered event chain")
	return nil
}

// Dispatch resolves the interceptor chain registered for E (if any),
// appends a fresh [EventBridge] wrapping event, and drives the resulting
// [Context] through the forward phase (ctx.Queue, front to back, Before)
// then the reverse phase (the drained stack, Before order reversed,
// After). done is invoked exactly once, with the terminal context and,
// if any hook failed, the error that aborted the dispatch.
//
// If no chain is registered for E, done is invoked immediately with an
// empty context and a nil error — deliberately not an error, so optional
// handlers are cheap to support.
func Dispatch[E Event](r *Registry, event E, done func(*Context, error)) {
	r.mu.Lock()
	stored, ok := r.chains[eventTypeOf[E]()]
	r.mu.Unlock()

	if !ok {
		done(NewContext(nil), nil)
		return
	}

	queue := make([]Interceptor, len(stored), len(stored)+1)
	copy(queue, stored)
	queue = append(queue, NewEventBridge(event))

	span := r.startSpan(eventTypeOf[E]())
	ctx := NewContext(queue)
	runPipeline(ctx, func(final *Context, err error) {
		r.endSpan(span, err)
		if err != nil {
			r.log.WithError(err).WithField("event", eventTypeOf[E]().String()).Warn("dispatch failed")
		}
		done(final, err)
	})
}

// startSpan opens a tracing span for one dispatch. A plain
// context.Background() is used only to carry the span through the otel
// API — the core's own concurrency model has no use for
// cancellation-by-context, only for the [Future] suspension model.
func (r *Registry) startSpan(eventType reflect.Type) trace.Span {
	_, span := r.tracer.Start(context.Background(), "dispatch:"+eventType.String())
	return span
}

func (r *Registry) endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}
