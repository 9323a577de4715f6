package crashdump

import "github.com/zboralski/lattice"

// refGraph accumulates the buffer reference edges seen while walking the
// reconstructed command stream: ring buffer to IB1 targets, IB1 to IB2.
type refGraph struct {
	g     lattice.Graph
	nodes map[string]bool
}

func (rg *refGraph) add(from, to string) {
	if rg.nodes == nil {
		rg.nodes = make(map[string]bool)
	}
	for _, n := range []string{from, to} {
		if !rg.nodes[n] {
			rg.nodes[n] = true
			rg.g.Nodes = append(rg.g.Nodes, n)
		}
	}
	rg.g.Edges = append(rg.g.Edges, lattice.Edge{Caller: from, Callee: to})
}

// graphHook returns the IB observation hook for the pm4 decoder, or nil
// when graph capture is off.
func (d *Decoder) graphHook() func(from, to string) {
	if !d.opts.CaptureGraph {
		return nil
	}
	return d.graph.add
}

// ReferenceGraph returns the captured indirect-buffer reference graph.
// Empty unless Options.CaptureGraph was set before decoding.
func (d *Decoder) ReferenceGraph() *lattice.Graph {
	d.graph.g.Dedup()
	return &d.graph.g
}
