package ordmap

import (
	"fmt"
	"io"

	"github.com/npillmayer/ordmap/rbtree"
)

type nodeids[K, V any] struct {
	idTable map[*rbtree.Shape[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*rbtree.Shape[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(node *rbtree.Shape[K, V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K, V]) alloc(node *rbtree.Shape[K, V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Map2Dot outputs the internal tree structure of a map in Graphviz DOT format
// (for debugging purposes). Nil children are drawn as small black circles,
// the sentinel as a box.
func Map2Dot[K, V any](m *Map[K, V], w io.Writer) error {
	if m == nil || w == nil {
		return ErrIllegalArguments
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	nilid := 10000
	nodelist, edgelist := "", ""
	var visit func(s *rbtree.Shape[K, V])
	visit = func(s *rbtree.Shape[K, V]) {
		ID := ids.alloc(s)
		if s.Sentinel {
			nodelist += fmt.Sprintf("\"%d\" [label=\"end\" %s];\n", ID, nodeDotStyles(s))
		} else {
			label := fmt.Sprintf("%v\\n#%d", s.Key, s.Size)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(s))
		}
		for _, child := range [2]*rbtree.Shape[K, V]{s.Left, s.Right} {
			if child == nil {
				nilid++
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			visit(child)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(child))
		}
	}
	if root := m.Shape(); root != nil {
		visit(root)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	_, err := io.WriteString(w, "}\n")
	if err != nil {
		T().Errorf("map DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,fillcolor=black,shape=circle,fixedsize=true,width=.15]"
}

func nodeDotStyles[K, V any](node *rbtree.Shape[K, V]) string {
	s := ",style=filled"
	if node.Sentinel {
		s += ",shape=box"
	} else {
		s += ",shape=circle"
	}
	if node.Color == rbtree.Red {
		s += ",color=red,fillcolor=\"#ff6666\""
	} else {
		s += ",color=black,fillcolor=\"#555555\",fontcolor=white"
	}
	return s
}
