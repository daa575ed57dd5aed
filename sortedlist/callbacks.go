package sortedlist

// Callbacks are lifecycle notifications. Any field may be nil. Clear runs
// BeforeClear and AfterClear around element destruction; Destroy runs
// BeforeFree and AfterFree around releasing the buffer.
//
// A List references its Callbacks; the caller keeps ownership.
type Callbacks struct {
	BeforeClear func()
	AfterClear  func()
	BeforeFree  func()
	AfterFree   func()
}

func (c *Callbacks) beforeClear() {
	if c != nil && c.BeforeClear != nil {
		c.BeforeClear()
	}
}

func (c *Callbacks) afterClear() {
	if c != nil && c.AfterClear != nil {
		c.AfterClear()
	}
}

func (c *Callbacks) beforeFree() {
	if c != nil && c.BeforeFree != nil {
		c.BeforeFree()
	}
}

func (c *Callbacks) afterFree() {
	if c != nil && c.AfterFree != nil {
		c.AfterFree()
	}
}

// Chain combines several callback sets into one. Hooks run in argument
// order; nil sets and nil hooks are skipped.
func Chain(sets ...*Callbacks) *Callbacks {
	var live []*Callbacks

	for _, s := range sets {
		if s != nil {
			live = append(live, s)
		}
	}

	return &Callbacks{
		BeforeClear: func() {
			for _, s := range live {
				s.beforeClear()
			}
		},
		AfterClear: func() {
			for _, s := range live {
				s.afterClear()
			}
		},
		BeforeFree: func() {
			for _, s := range live {
				s.beforeFree()
			}
		},
		AfterFree: func() {
			for _, s := range live {
				s.afterFree()
			}
		},
	}
}
