package router

// Bound composes a router with the two application-supplied functions
// of the navigation contract: a projection from the application model
// to its current endpoint value, and a constructor from a parsed
// endpoint value to the message the UI layer should dispatch.
type Bound[Model any, Msg any] struct {
	router  *Router
	project func(Model) any
	message func(any) Msg
}

// Bind attaches the model→endpoint projection and endpoint→message
// constructor to a router.
//
// Example:
//
//	nav := router.Bind(r,
//	    func(m AppModel) any { return m.Page },
//	    func(v any) AppMsg { return SetPage{To: v} },
//	)
func Bind[Model any, Msg any](r *Router, project func(Model) any, message func(any) Msg) *Bound[Model, Msg] {
	return &Bound[Model, Msg]{
		router:  r,
		project: project,
		message: message,
	}
}

// PathFor renders the path representing the current model.
func (b *Bound[Model, Msg]) PathFor(model Model) string {
	return b.router.ToPath(b.project(model))
}

// Dispatch parses a navigated-to path into the message to dispatch.
// The second return is false when no parse consumes the entire path.
func (b *Bound[Model, Msg]) Dispatch(path string) (Msg, bool) {
	v, ok := b.router.FromPath(path)
	if !ok {
		var zero Msg
		return zero, false
	}
	return b.message(v), true
}

// Router returns the underlying router.
func (b *Bound[Model, Msg]) Router() *Router {
	return b.router
}
