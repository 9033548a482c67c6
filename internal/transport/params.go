package transport

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/walletsync-backend/pkg/safe"
)

type badRequestError struct {
	err error
}

func (e *badRequestError) Error() string {
	return e.err.Error()
}

func (e *badRequestError) Unwrap() error {
	return e.err
}

// params reads typed query parameters and keeps the first parse error.
type params struct {
	values url.Values
	err    error
}

func newParams(values url.Values) *params {
	return &params{values: values}
}

func (p *params) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *params) invalid(name string, err error) {
	p.fail(&badRequestError{err: fmt.Errorf("parameter %s: %w", name, err)})
}

func (p *params) any(names ...string) bool {
	for _, name := range names {
		if p.values.Has(name) {
			return true
		}
	}
	return false
}

func (p *params) string(name string) *string {
	if !p.values.Has(name) {
		return nil
	}
	v := p.values.Get(name)
	return &v
}

// strings accepts repeated and comma separated values.
func (p *params) strings(name string) []string {
	var out []string
	for _, raw := range p.values[name] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (p *params) bool(name string) *bool {
	raw := p.string(name)
	if raw == nil {
		return nil
	}
	v, err := strconv.ParseBool(*raw)
	if err != nil {
		p.invalid(name, err)
		return nil
	}
	return &v
}

// flag is a bool parameter that defaults to false.
func (p *params) flag(name string) bool {
	v := p.bool(name)
	return v != nil && *v
}

func (p *params) uint64(name string) *uint64 {
	raw := p.string(name)
	if raw == nil {
		return nil
	}
	v, err := strconv.ParseUint(strings.TrimSpace(*raw), 10, 64)
	if err != nil {
		p.invalid(name, err)
		return nil
	}
	return &v
}

func (p *params) uint32(name string) *uint32 {
	raw := p.string(name)
	if raw == nil {
		return nil
	}
	v, err := safe.ParseUint32(*raw)
	if err != nil {
		p.invalid(name, err)
		return nil
	}
	return &v
}

func (p *params) uint32s(name string) []uint32 {
	var out []uint32
	for _, raw := range p.values[name] {
		v, err := safe.ParseUint32List(raw)
		if err != nil {
			p.invalid(name, err)
			return nil
		}
		out = append(out, v...)
	}
	return out
}
