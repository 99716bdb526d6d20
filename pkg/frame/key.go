package frame

import (
	"fmt"
	"strconv"
)

// Key is a single column lookup: either a name or a 1-based position.
type Key struct {
	name  string
	pos   int
	byPos bool
}

// Name builds a key that looks a column up by name.
func Name(name string) Key {
	return Key{name: name}
}

// Pos builds a key that looks a column up by its 1-based position.
func Pos(pos int) Key {
	return Key{pos: pos, byPos: true}
}

// ByPos reports whether the key is positional.
func (k Key) ByPos() bool { return k.byPos }

func (k Key) String() string {
	if k.byPos {
		return strconv.Itoa(k.pos)
	}
	return fmt.Sprintf("%q", k.name)
}
