package builder

import "fmt"

// Producers collects element producers for a deferred collection.
// It is append-only; order of Add calls is the element order.
type Producers[E any] struct {
	fns []func(E) E
}

// Add registers a producer. It is called once with the zero value of E.
func (p *Producers[E]) Add(fn func(E) E) {
	p.fns = append(p.fns, fn)
}

// Len returns the number of registered producers.
func (p *Producers[E]) Len() int {
	return len(p.fns)
}

// values runs every producer in order. Nothing runs if any producer is nil.
func (p *Producers[E]) values() ([]E, error) {
	if err := p.check(); err != nil {
		return nil, err
	}

	return p.run(), nil
}

// check reports the first nil producer.
func (p *Producers[E]) check() error {
	for i, fn := range p.fns {
		if fn == nil {
			return fmt.Errorf("producer %d is nil", i)
		}
	}

	return nil
}

// run calls every producer once, in order, with the zero value of E.
func (p *Producers[E]) run() []E {
	var zero E

	out := make([]E, 0, len(p.fns))
	for _, fn := range p.fns {
		out = append(out, fn(zero))
	}

	return out
}

// Groups collects the callbacks of a deferred collection of collections.
// Each callback populates the producers of one inner collection.
type Groups[E any] struct {
	fills []func(*Producers[E])
}

// Add registers the callback for the next inner collection.
func (g *Groups[E]) Add(fill func(*Producers[E])) {
	g.fills = append(g.fills, fill)
}

// Len returns the number of registered groups.
func (g *Groups[E]) Len() int {
	return len(g.fills)
}

// values builds every group in order. Every callback runs and every
// producer is checked before the first producer is called, so nothing is
// produced if any callback or producer is nil.
func (g *Groups[E]) values() ([][]E, error) {
	for i, fill := range g.fills {
		if fill == nil {
			return nil, fmt.Errorf("group %d is nil", i)
		}
	}

	groups := make([]Producers[E], len(g.fills))
	for i, fill := range g.fills {
		fill(&groups[i])
	}

	for i := range groups {
		if err := groups[i].check(); err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
	}

	out := make([][]E, 0, len(groups))
	for i := range groups {
		out = append(out, groups[i].run())
	}

	return out, nil
}
