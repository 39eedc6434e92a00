package param

import (
	"fmt"
	"sync"
)

// Collection holds the parameters of an instance in declaration order.
// Names and non-empty receive/send bindings are unique across the collection.
type Collection struct {
	mu     sync.RWMutex
	params []*Parameter
	names  map[string]int
	binds  map[string]int
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{
		names: make(map[string]int),
		binds: make(map[string]int),
	}
}

// Add registers p and returns its index. A parameter that reuses an existing
// name or binding is rejected with ErrDuplicate and nothing is registered.
func (c *Collection) Add(p *Parameter) (int, error) {
	if err := p.Validate(); err != nil {
		return -1, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.names[p.Name]; exists {
		return -1, fmt.Errorf("%w: name %q", ErrDuplicate, p.Name)
	}
	if p.Receive != "" && p.Receive == p.Send {
		return -1, fmt.Errorf("%w: %s: receive and send share %q", ErrDuplicate, p.Name, p.Receive)
	}
	for _, b := range []string{p.Receive, p.Send} {
		if b == "" {
			continue
		}
		if _, exists := c.binds[b]; exists {
			return -1, fmt.Errorf("%w: binding %q", ErrDuplicate, b)
		}
	}

	index := len(c.params)
	c.params = append(c.params, p)
	c.names[p.Name] = index
	for _, b := range []string{p.Receive, p.Send} {
		if b != "" {
			c.binds[b] = index
		}
	}
	return index, nil
}

// Get returns the parameter at index, or nil.
func (c *Collection) Get(index int) *Parameter {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index < 0 || index >= len(c.params) {
		return nil
	}
	return c.params[index]
}

// Lookup returns the index of the parameter with the given name.
func (c *Collection) Lookup(name string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.names[name]
	return i, ok
}

// Bound returns the index of the parameter using the given receive or send name.
func (c *Collection) Bound(binding string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.binds[binding]
	return i, ok
}

// Len returns the number of parameters.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.params)
}

// All returns the parameters in declaration order.
func (c *Collection) All() []*Parameter {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*Parameter, len(c.params))
	copy(result, c.params)
	return result
}
