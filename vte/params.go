package vte

const (
	maxParams    = 16
	maxSubparams = 32
	maxIntermediates = 2
)

// Param is one CSI/DCS parameter: a bounded list of subparameters separated
// by ':' (e.g. "38:2:255:0:0" is one Param with five subparameters).
type Param struct {
	values [maxSubparams]uint16
	len    int
}

// Len returns the number of subparameters collected.
func (p *Param) Len() int { return p.len }

// Get returns the subparameter at i, or 0 if out of range.
func (p *Param) Get(i int) uint16 {
	if i < 0 || i >= p.len {
		return 0
	}
	return p.values[i]
}

// First returns the first subparameter, or def if the param is empty.
func (p *Param) First(def uint16) uint16 {
	if p.len == 0 {
		return def
	}
	return p.values[0]
}

func (p *Param) push(v uint16) bool {
	if p.len >= maxSubparams {
		return false
	}
	p.values[p.len] = v
	p.len++
	return true
}

func (p *Param) reset() { p.len = 0 }

// Params is the bounded parameter list collected by the Param action: at
// most 16 parameters, each with at most 32 subparameters.
type Params struct {
	items [maxParams]Param
	len   int
}

// Len returns the number of parameters collected.
func (p *Params) Len() int { return p.len }

// At returns the parameter at i. Returns a zero Param if out of range.
func (p *Params) At(i int) *Param {
	if i < 0 || i >= p.len {
		return &Param{}
	}
	return &p.items[i]
}

// IsEmpty reports whether no parameters were collected at all.
func (p *Params) IsEmpty() bool { return p.len == 0 }

func (p *Params) reset() {
	p.len = 0
	for i := range p.items {
		p.items[i].reset()
	}
}

// isFull reports whether a new parameter could not be started.
func (p *Params) isFull() bool { return p.len >= maxParams }
