package keyby

import "github.com/acutmore/proposal-keyby/internal/trie"

// MisuseError reports an operation invoked on a value that cannot act
// as a key component: something neither comparable nor pointer-shaped,
// or a container configured with a nil projection. New returns it as an
// ordinary error; Must, container.KeyBy and the record builders, which
// have no error result, panic with it.
type MisuseError = trie.MisuseError

// InternalInvariantError reports a failed assertion about the
// interning engine's own state — a bug in this module, not caller
// misuse. Only ever raised via panic.
type InternalInvariantError = trie.InternalInvariantError
