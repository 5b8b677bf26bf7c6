package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
)

// stackTraceLines caps how many stack trace lines a LogRecord carries.
const stackTraceLines = 5

// Response is a pre-built handler response. An API handler that returns
// *Response bypasses the success envelope: its status, headers, and body are
// honored verbatim.
type Response struct {
	Status  int
	Headers http.Header
	Body    any
}

// Dispatcher is the per-request engine: it resolves the route mapping, binds
// parameters, constructs and invokes the handler, serializes the outcome, and
// emits exactly one LogRecord. It holds no per-request state of its own.
type Dispatcher struct {
	binder     *Binder
	sink       RecordSink
	local      *time.Location
	prettyHTML bool
}

// NewDispatcher creates a Dispatcher. local defaults to UTC, sink to a no-op.
func NewDispatcher(binder *Binder, sink RecordSink, local *time.Location, prettyHTML bool) *Dispatcher {
	if binder == nil {
		binder = NewBinder()
	}
	if local == nil {
		local = time.UTC
	}
	if sink == nil {
		sink = SinkFunc(func(LogRecord) {})
	}
	return &Dispatcher{binder: binder, sink: sink, local: local, prettyHTML: prettyHTML}
}

// HandlerFor builds the HandlerFunc serving one route mapping. The same
// handler serves the canonical path and the placeholder variant.
func (d *Dispatcher) HandlerFor(m *RouteMapping) HandlerFunc {
	return func(c Context) error {
		start := time.Now()
		rec := LogRecord{
			Kind:       m.Kind,
			Method:     c.Request().Method,
			Path:       c.Request().URL.Path,
			StartUTC:   start.UTC(),
			StartLocal: start.In(d.local),
		}
		defer func() {
			rec.DurationMS = time.Since(start).Milliseconds()
			d.emit(rec)
		}()

		args, err := d.binder.Bind(m.Params, rawParams(c, m.Params))
		if err != nil {
			return d.bindingFailed(c, &rec, err)
		}
		rec.Args = args.StringMap()

		instance := m.New(args)
		result, err := d.invoke(c.Context(), m, instance)
		if err != nil {
			return d.failed(c, m, &rec, err)
		}

		return d.serialize(c, m, &rec, instance, args, result)
	}
}

// invoke runs the handler's response-producing operation for the mapping's
// kind. Panics inside the handler are captured as failures carrying a stack;
// block renders are raced against the declared timeout budget.
func (d *Dispatcher) invoke(ctx context.Context, m *RouteMapping, instance any) (any, error) {
	switch m.Kind {
	case KindPage:
		page, ok := instance.(Page)
		if !ok {
			return nil, fmt.Errorf("%s: factory result does not implement Page", m.TypeName)
		}
		return protect(func() (any, error) { return asAny(page.Render(ctx)) })
	case KindBlock:
		block, ok := instance.(Block)
		if !ok {
			return nil, fmt.Errorf("%s: factory result does not implement Block", m.TypeName)
		}
		return d.invokeBlock(ctx, m, block)
	case KindAPI, KindBlockAPI:
		api, ok := instance.(API)
		if !ok {
			return nil, fmt.Errorf("%s: factory result does not implement API", m.TypeName)
		}
		return protect(func() (any, error) { return api.Handle(ctx) })
	}
	return nil, fmt.Errorf("%s: unknown route kind %d", m.TypeName, m.Kind)
}

// invokeBlock races the fragment render against the block's timeout budget.
// On expiry the render goroutine keeps running but its result is discarded;
// the route fails exactly like an uncaught handler error.
func (d *Dispatcher) invokeBlock(ctx context.Context, m *RouteMapping, block Block) (any, error) {
	timeout := m.Timeout()
	if timeout <= 0 {
		timeout = DefaultBlockTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type rendered struct {
		html string
		err  error
	}
	done := make(chan rendered, 1)
	go func() {
		v, err := protect(func() (any, error) { return asAny(block.Render(ctx)) })
		html, _ := v.(string)
		done <- rendered{html: html, err: err}
	}()

	select {
	case r := <-done:
		return r.html, r.err
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("block render timed out after %s", timeout)
		}
		return nil, ctx.Err()
	}
}

// serialize writes the success response per the mapping's declared format.
func (d *Dispatcher) serialize(c Context, m *RouteMapping, rec *LogRecord, instance any, args Args, result any) error {
	switch m.Format {
	case FormatHTML:
		html, _ := result.(string)
		if m.Kind == KindBlock {
			html = wrapBlock(m, instance, args, html)
		}
		if d.prettyHTML {
			html = prettyHTML(html)
		}
		rec.Status = http.StatusOK
		rec.Body = fmt.Sprintf("html %dB", len(html))
		return c.HTML(http.StatusOK, html)
	default:
		if resp, ok := result.(*Response); ok {
			status := resp.Status
			if status == 0 {
				status = http.StatusOK
			}
			for name, values := range resp.Headers {
				for _, v := range values {
					c.Response().Header().Add(name, v)
				}
			}
			rec.Status = status
			rec.Body = "json custom"
			return c.JSON(status, resp.Body)
		}
		rec.Status = http.StatusOK
		rec.Body = "json envelope"
		return c.JSON(http.StatusOK, envelope{Success: true, Message: result})
	}
}

// bindingFailed emits the 400-class response for user-input binding errors.
// The handler is never instantiated and no stack trace is logged.
func (d *Dispatcher) bindingFailed(c Context, rec *LogRecord, err error) error {
	name, _ := bindErrorParameter(err)
	rec.Status = http.StatusBadRequest
	rec.Body = "json binding-error"
	rec.Error = &ErrorDetail{Message: err.Error()}
	return c.JSON(http.StatusBadRequest, bindErrorBody{
		Success:   false,
		Error:     err.Error(),
		Parameter: name,
	})
}

// failed converts an uncaught handler failure into a generic 500-class
// response. Full detail goes only to the log sink; the client sees nothing
// but the correlation id.
func (d *Dispatcher) failed(c Context, m *RouteMapping, rec *LogRecord, err error) error {
	correlationID := uuid.NewString()
	detail := &ErrorDetail{
		Message:       err.Error(),
		CorrelationID: correlationID,
	}
	var pe *panicError
	if errors.As(err, &pe) {
		detail.Stack = truncateStack(pe.stack, stackTraceLines)
	}
	rec.Status = http.StatusInternalServerError
	rec.Error = detail

	if m.Format == FormatHTML {
		rec.Body = "html error"
		return c.HTML(http.StatusInternalServerError,
			fmt.Sprintf("<h1>Internal Server Error</h1><p>reference: %s</p>", correlationID))
	}
	rec.Body = "json error"
	return c.JSON(http.StatusInternalServerError, map[string]any{
		"success":        false,
		"correlation_id": correlationID,
	})
}

// emit delivers the record to the sink, guarding against sink panics so a
// misbehaving collaborator cannot take down the serving goroutine.
func (d *Dispatcher) emit(rec LogRecord) {
	defer func() {
		_ = recover()
	}()
	d.sink.Log(rec)
}

// envelope is the standard JSON success wrapper.
type envelope struct {
	Success bool `json:"success"`
	Message any  `json:"message"`
}

// bindErrorBody is the structured 400 response naming the failed parameter.
type bindErrorBody struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Parameter string `json:"parameter,omitempty"`
}

// rawParams collects the raw string value for each declared parameter from
// path placeholders, query string, and form body. Path placeholders win on
// name collision; query wins over form.
func rawParams(c Context, params []Param) map[string]string {
	raw := make(map[string]string, len(params))
	r := c.Request()
	_ = r.ParseForm()
	query := r.URL.Query()

	for _, p := range params {
		if v := c.Param(p.Name); v != "" {
			raw[p.Name] = v
			continue
		}
		if vs, ok := query[p.Name]; ok && len(vs) > 0 {
			raw[p.Name] = vs[0]
			continue
		}
		if vs, ok := r.PostForm[p.Name]; ok && len(vs) > 0 {
			raw[p.Name] = vs[0]
		}
	}
	return raw
}

// protect invokes fn, converting a panic into a panicError that carries the
// captured stack.
func protect(fn func() (any, error)) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r, stack: debug.Stack()}
		}
	}()
	return fn()
}

// panicError wraps a recovered handler panic.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// truncateStack keeps the first n lines of a stack trace.
func truncateStack(stack []byte, n int) string {
	lines := strings.Split(strings.TrimSpace(string(stack)), "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

// asAny adapts a (string, error) return to (any, error).
func asAny(s string, err error) (any, error) {
	return s, err
}
