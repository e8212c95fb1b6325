// Package mvdag parses edge-list descriptions of multi-parent block DAGs
package mvdag

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gammazero/deque"
	"github.com/rhonix/rboot/util"
	"github.com/rhonix/rboot/util/lines"
	"github.com/rhonix/rboot/util/set"
)

// DAG maps parent block hash to the set of its children
type DAG map[string]set.Set[string]

// Parse reads lines 'parent child'. Blank lines are skipped, repeated edges collapse.
// Tokens are not validated as hashes
func Parse(s string) (DAG, error) {
	return ParseReader(strings.NewReader(s))
}

func ParseReader(r io.Reader) (DAG, error) {
	ret := make(DAG)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) != 2 {
			return nil, fmt.Errorf("line %d: expected 'parent child', got %d tokens", lineNo, len(tokens))
		}
		ret.AddEdge(tokens[0], tokens[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (d DAG) AddEdge(parent, child string) {
	children, found := d[parent]
	if !found {
		children = set.New[string]()
		d[parent] = children
	}
	children.Insert(child)
}

func (d DAG) Children(h string) set.Set[string] {
	return d[h]
}

// Parents returns the inverse DAG: child -> set of parents
func (d DAG) Parents() DAG {
	ret := make(DAG)
	for parent, children := range d {
		for child := range children {
			ret.AddEdge(child, parent)
		}
	}
	return ret
}

func (d DAG) Vertices() set.Set[string] {
	ret := util.KeySet(d)
	for _, children := range d {
		ret.AddAll(children)
	}
	return ret
}

func (d DAG) NumEdges() (ret int) {
	for _, children := range d {
		ret += len(children)
	}
	return
}

// Roots are vertices without parents, sorted
func (d DAG) Roots() []string {
	parents := d.Parents()
	return util.FilterSlice(set.Sorted(d.Vertices()), func(h string) bool {
		return len(parents[h]) == 0
	})
}

// Tips are vertices without children, sorted
func (d DAG) Tips() []string {
	return util.FilterSlice(set.Sorted(d.Vertices()), func(h string) bool {
		return len(d[h]) == 0
	})
}

// Descendants returns all vertices reachable from h following parent -> child edges, h excluded
func (d DAG) Descendants(h string) set.Set[string] {
	return reachable(d, h)
}

// Ancestors returns all vertices from which h is reachable, h excluded
func (d DAG) Ancestors(h string) set.Set[string] {
	return reachable(d.Parents(), h)
}

func reachable(d DAG, start string) set.Set[string] {
	visited := set.New[string]()
	q := deque.New[string]()
	q.PushBack(start)
	for q.Len() > 0 {
		h := q.PopFront()
		for next := range d[h] {
			if visited.Contains(next) {
				continue
			}
			visited.Insert(next)
			q.PushBack(next)
		}
	}
	visited.Remove(start)
	return visited
}

func (d DAG) Equal(another DAG) bool {
	if len(d) != len(another) {
		return false
	}
	for parent, children := range d {
		if !children.Equal(another[parent]) {
			return false
		}
	}
	return true
}

func (d DAG) Lines(prefix ...string) *lines.Lines {
	ret := lines.New(prefix...)
	for _, parent := range util.SortedKeys(d) {
		for _, child := range set.Sorted(d[parent]) {
			ret.Add("%s %s", parent, child)
		}
	}
	return ret
}

func (d DAG) String() string {
	return d.Lines().String()
}
