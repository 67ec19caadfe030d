package connectivity

// Phase is an opaque tag identifying which operating phase's revenue
// table a center's value should be read from. The map defines what
// phases exist; this package only threads the tag through.
type Phase string

// View is the boundary between the route optimizer and a committed board
// state. It never changes the map and never leaks mutable state back
// to the caller; every method is a pure read. Implementations live
// outside this module (in the game's map package); this module only
// consumes the port.
type View interface {
	// Neighbors returns the elements directly reachable from e in one
	// traversal step. A path walks this graph one element at a time.
	Neighbors(e Element) []Element

	// IsTerminal reports whether e is an off-board location: a path may
	// end at a terminal element but never pass through it.
	IsTerminal(e Element) bool

	// TokensOf returns every token space the named company currently
	// occupies, the set of anchors path enumeration starts from.
	TokensOf(company string) []TokenSpace

	// OwnTokenAt reports whether the city element e hosts a token space
	// belonging to company, and which one. Used for anchor-minimality
	// pruning: a path from anchor a never revisits a smaller token of
	// the same company.
	OwnTokenAt(company string, e Element) (TokenSpace, bool)

	// Revenue returns the base revenue e yields in the given phase. Only
	// meaningful for center elements (city/dit); callers must not call
	// it for faces or bare track.
	Revenue(e Element, phase Phase) int
}
