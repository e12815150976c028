// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package btreeset

import (
	"bufio"
	"fmt"
	"io"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// WriteDot outputs the internal structure of the set in Graphviz DOT format
// (for debugging purposes).  Leaves are drawn as boxes labelled with their
// item, internal nodes as circles labelled with their subtree maximum.
// Parent back-links are not drawn.
func (s *Set[T]) WriteDot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	var edges []string
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		id := ids.alloc(n)
		if n.leaf {
			fmt.Fprintf(bw, "\t\"%d\" [label=\"%v\",shape=box];\n", id, n.item)
			return
		}
		if len(n.children) == 0 {
			fmt.Fprintf(bw, "\t\"%d\" [label=\"\",shape=circle];\n", id)
			return
		}
		fmt.Fprintf(bw, "\t\"%d\" [label=\"%v\",shape=circle];\n", id, n.max)
		for _, c := range n.children {
			edges = append(edges, fmt.Sprintf("\t\"%d\" -> \"%d\";\n", id, ids.alloc(c)))
			walk(c)
		}
	}
	walk(s.root)
	for _, e := range edges {
		bw.WriteString(e)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}
