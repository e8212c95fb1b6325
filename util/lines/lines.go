package lines

import (
	"fmt"
	"strings"
)

// Lines collects text lines with common prefix. Dummy Lines ignores all input,
// so callers may build output unconditionally
type Lines struct {
	prefix string
	l      []string
	dummy  bool
}

func New(prefix ...string) *Lines {
	pref := ""
	if len(prefix) > 0 {
		pref = prefix[0]
	}
	return &Lines{
		prefix: pref,
		l:      make([]string, 0),
	}
}

func NewDummy() *Lines {
	return &Lines{dummy: true}
}

func (l *Lines) Add(format string, args ...any) *Lines {
	if l.dummy {
		return l
	}
	l.l = append(l.l, fmt.Sprintf(l.prefix+format, args...))
	return l
}

// AddRaw adds strings as is, without formatting and without prefix
func (l *Lines) AddRaw(s ...string) *Lines {
	if l.dummy {
		return l
	}
	l.l = append(l.l, s...)
	return l
}

func (l *Lines) Append(ln *Lines) *Lines {
	if l.dummy {
		return l
	}
	l.l = append(l.l, ln.l...)
	return l
}

func (l *Lines) Len() int {
	return len(l.l)
}

func (l *Lines) Slice() []string {
	return l.l
}

func (l *Lines) Join(sep string) string {
	if l.dummy {
		return ""
	}
	return strings.Join(l.l, sep)
}

func (l *Lines) String() string {
	return l.Join("\n")
}

func SliceToLines[T fmt.Stringer](slice []T, prefix ...string) *Lines {
	ret := New(prefix...)
	for i := range slice {
		ret.Add("%s", slice[i].String())
	}
	return ret
}
