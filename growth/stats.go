package growth

import (
	"github.com/cockroachdb/redact"
)

// Stats counts what a Builder did during Construct.
type Stats struct {
	// Steps is the number of nodes handed to a state.
	Steps int
	// Splits is the number of nodes that were given two children.
	Splits int
	// Prunes is the number of splits undone by Pruning.
	Prunes int
	// Stale is the number of nodes skipped because they were no longer
	// attached to the tree when they were reached.
	Stale int
	// Leaves is the number of leaves added by Stopping.
	Leaves int
	// Final is the state the tree was in when growth ended.
	Final string
}

// SafeFormat implements redact.SafeFormatter.
func (s Stats) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("steps=%d splits=%d prunes=%d stale=%d leaves=%d final=%s",
		redact.SafeInt(s.Steps), redact.SafeInt(s.Splits), redact.SafeInt(s.Prunes),
		redact.SafeInt(s.Stale), redact.SafeInt(s.Leaves), redact.SafeString(s.Final))
}

func (s Stats) String() string {
	return redact.StringWithoutMarkers(s)
}
