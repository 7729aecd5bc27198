package input

// StaticContext is a plain value implementation of types.Context
type StaticContext struct {
	Index  int
	Total  int
	Viewer bool
}

func (c StaticContext) CurrentIndex() int { return c.Index }
func (c StaticContext) TotalItems() int   { return c.Total }
func (c StaticContext) ViewerOpen() bool  { return c.Viewer }
