package model

// Window is the interior index range [Sub, Sup) of one structured block.
type Window struct {
	ISub, ISup int
	JSub, JSup int
	KSub, KSup int
}

// NodeCounts returns the node count along i, j and k.
func (w Window) NodeCounts() [3]int {
	return [3]int{w.ISup - w.ISub, w.JSup - w.JSub, w.KSup - w.KSub}
}

// Nodes is the number of nodes inside the window.
func (w Window) Nodes() int {
	n := w.NodeCounts()
	if n[0] <= 0 || n[1] <= 0 || n[2] <= 0 {
		return 0
	}
	return n[0] * n[1] * n[2]
}

// Traverse visits every node of the window k-outer, j-middle, i-inner.
// The geometry and variable files both depend on this order.
func (w Window) Traverse(f func(k, j, i int)) {
	for k := w.KSub; k < w.KSup; k++ {
		for j := w.JSub; j < w.JSup; j++ {
			for i := w.ISub; i < w.ISup; i++ {
				f(k, j, i)
			}
		}
	}
}

// Partition lists the structured blocks ("parts") of the domain.
type Partition struct {
	Parts []Window
}

// InteriorPartition returns the single-part partition covering every
// non-ghost node of space.
func InteriorPartition(space *Space) *Partition {
	return &Partition{Parts: []Window{{
		ISub: space.Ng, ISup: space.IMax - space.Ng,
		JSub: space.Ng, JSup: space.JMax - space.Ng,
		KSub: space.Ng, KSup: space.KMax - space.Ng,
	}}}
}

// Single returns the only part. Multi-block export is not supported.
func (p *Partition) Single() (Window, error) {
	if p == nil || len(p.Parts) != 1 {
		n := 0
		if p != nil {
			n = len(p.Parts)
		}
		return Window{}, &Error{
			Kind: KindStructure,
			Op:   "partition",
			Err:  errPartCount(n),
		}
	}
	return p.Parts[0], nil
}

// ExportEvent summarises one completed export.
type ExportEvent struct {
	Order    int     `json:"order"`
	Step     int     `json:"step"`
	Time     float64 `json:"time"`
	CaseFile string  `json:"case_file"`
	Spheres  int     `json:"spheres"`
}

// Msg is the envelope pushed to monitor clients.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
