package operation

import (
	"net/url"
	"strings"
)

// Params is an insertion-ordered parameter set plus the remote action name.
// The service reads indexed member keys positionally, so Params remembers
// the order keys were first set in; re-setting a key replaces its value
// without moving it.
type Params struct {
	Action string

	keys   []string
	values map[string]string
}

// NewParams returns a parameter set for one remote action.
func NewParams(action string) *Params {
	return &Params{Action: action, values: make(map[string]string)}
}

// Set stores value under key, appending the key on first use.
func (p *Params) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key, or "" when absent.
func (p *Params) Get(key string) string {
	return p.values[key]
}

// Len returns the number of parameters, not counting Action.
func (p *Params) Len() int {
	return len(p.keys)
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Encode renders the set as an application/x-www-form-urlencoded body:
// Action first, then every parameter in insertion order.
func (p *Params) Encode() string {
	var b strings.Builder
	b.WriteString("Action=")
	b.WriteString(url.QueryEscape(p.Action))
	for _, key := range p.keys {
		b.WriteByte('&')
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.values[key]))
	}
	return b.String()
}
