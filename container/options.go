package container

import keyby "github.com/acutmore/proposal-keyby"

// Option configures a Map or Set at construction time.
type Option[K any] func(*func(K) any)

// KeyBy configures a Map/Set to derive its real lookup key by applying
// projection to each key before Get/Set/Has/Delete. projection must not
// be nil.
func KeyBy[K any](projection func(K) any) Option[K] {
	if projection == nil {
		panic(&keyby.MisuseError{Op: "container.KeyBy", Reason: "projection must not be nil"})
	}
	return func(p *func(K) any) {
		*p = projection
	}
}
