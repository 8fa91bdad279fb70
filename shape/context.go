package shape

import "github.com/matt-g-everett/partx/geom"

// Context carries the read-only invariants of one evaluation step plus
// a bag of named fields interceptors may use to talk to each other.
// Contexts are values; WithField copies, so an interceptor can never
// alias a previous stack frame's state.
type Context struct {
	Step       int
	TotalSteps int
	Position   geom.Vec3

	fields map[string]any
}

// NewContext creates the context for one step evaluation.
func NewContext(step, totalSteps int, pos geom.Vec3) Context {
	return Context{Step: step, TotalSteps: totalSteps, Position: pos}
}

// Field looks up a named value set by an earlier interceptor.
func (c Context) Field(name string) (any, bool) {
	v, ok := c.fields[name]
	return v, ok
}

// WithField returns a copy of the context with one field set.
func (c Context) WithField(name string, value any) Context {
	fields := make(map[string]any, len(c.fields)+1)
	for k, v := range c.fields {
		fields[k] = v
	}
	fields[name] = value
	c.fields = fields
	return c
}

// An Interceptor may rewrite the context and substitute the entity
// about to be drawn. Returning the inputs unchanged is fine; returning
// a nil shape keeps the current one.
type Interceptor func(ctx Context, s Shape) (Context, Shape)

func applyStack(stack []Interceptor, ctx Context, s Shape) (Context, Shape) {
	for _, ic := range stack {
		next, sub := ic(ctx, s)
		ctx = next
		if sub != nil {
			s = sub
		}
	}
	return ctx, s
}
