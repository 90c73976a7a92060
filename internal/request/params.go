package request

import (
	"net/url"
	"strings"
)

// Param is one query-string name/value pair.
type Param struct {
	Name  string
	Value string
}

// Params is an insertion-ordered list of query parameters.
// Unlike url.Values it preserves declaration order and allows repeated names.
type Params struct {
	list []Param
}

func (p *Params) Add(name, value string) {
	p.list = append(p.list, Param{Name: name, Value: value})
}

func (p *Params) Len() int { return len(p.list) }

// All returns a copy of the pairs in insertion order.
func (p *Params) All() []Param {
	out := make([]Param, len(p.list))
	copy(out, p.list)
	return out
}

// Get returns the first value for name.
func (p *Params) Get(name string) (string, bool) {
	for _, kv := range p.list {
		if kv.Name == name {
			return kv.Value, true
		}
	}
	return "", false
}

// Values returns every value for name in insertion order.
func (p *Params) Values(name string) []string {
	var out []string
	for _, kv := range p.list {
		if kv.Name == name {
			out = append(out, kv.Value)
		}
	}
	return out
}

// Encode renders "name=value&..." in insertion order with every name and
// value escaped per RFC 3986 (only unreserved characters stay literal).
func (p *Params) Encode() string {
	var b strings.Builder
	for i, kv := range p.list {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(EscapeDataString(kv.Name))
		b.WriteByte('=')
		b.WriteString(EscapeDataString(kv.Value))
	}
	return b.String()
}

// EscapeDataString percent-encodes everything but A-Z a-z 0-9 - . _ ~.
// url.QueryEscape differs only in writing spaces as '+'; a literal '+' is
// already escaped to %2B, so the replacement is unambiguous.
func EscapeDataString(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
