package dict

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var dirTags = [...]string{"T:", "L:", "R:"}

// Dump writes the tree structure to w, one node per line, children indented
// under their parent.
func (d *Dict) Dump(w io.Writer) {
	if d.pool == nil || d.root == nilRef {
		fmt.Fprintln(w, "T: EMPTY")
		return
	}
	d.walk(func(idx, depth, dir int) bool {
		n := &d.pool.Nodes[idx]
		fmt.Fprintf(w, "%s%s NODE #%d hash=%0*x key=%q val=%q\n",
			strings.Repeat("  ", depth), dirTags[dir+1], idx, HashBits/4, n.hash, n.key, n.val)
		return true
	})
}

func (d *Dict) DebugDump() {
	d.Dump(os.Stdout)
}

// TraceDump sends the tree structure to the tracer, if there is one.
func (d *Dict) TraceDump() {
	if d.trace == nil {
		return
	}
	var buf strings.Builder
	d.Dump(&buf)
	d.trace.Debugf("dict: %d nodes, height %d, %d live slots, %d free\n%s",
		d.Len(), d.height(), d.pool.Live(), len(d.pool.FreeIdx), buf.String())
}
