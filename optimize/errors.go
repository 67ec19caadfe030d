package optimize

import (
	"errors"

	"hexroute/pathfind"
)

// Error taxonomy for Optimize. InvalidCriteria is re-exported from
// pathfind so callers only need to import this package's errors.
var ErrInvalidCriteria = pathfind.ErrInvalidCriteria

var (
	ErrUnknownCompany = errors.New("unknown company")
	ErrEmptyTrainSet  = errors.New("empty train set")
	ErrCancelled      = errors.New("cancelled")
	ErrOverBudget     = errors.New("over budget")
)
