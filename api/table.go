package api

import "strings"

// Handler is one resource operation. It either resolves a Response or
// an error carrying the status to report; never both.
type Handler func(r *Request) (*Response, error)

// Table is the route mapping consulted by the dispatcher. It is built
// once at construction and read-only afterwards.
type Table struct {
	routes       map[string]Handler
	staticPrefix string
	static       Handler
	notFound     Handler
}

func NewTable(staticPrefix string, static, notFound Handler) *Table {
	return &Table{
		routes:       make(map[string]Handler),
		staticPrefix: staticPrefix,
		static:       static,
		notFound:     notFound,
	}
}

func (t *Table) Handle(path string, h Handler) {
	t.routes[path] = h
}

// Resolve maps a normalized path to its handler. The static prefix
// overrides exact matches; everything else falls through to notFound.
func (t *Table) Resolve(path string) Handler {
	if t.staticPrefix != "" && strings.HasPrefix(path, t.staticPrefix) {
		return t.static
	}

	if h, ok := t.routes[path]; ok {
		return h
	}

	return t.notFound
}

// resource dispatches a path to one of its per-method operations and
// rejects every other verb.
func resource(ops map[string]Handler) Handler {
	return func(r *Request) (*Response, error) {
		h, ok := ops[r.Method]
		if !ok {
			return nil, errMethodNotAllowed()
		}

		return h(r)
	}
}
