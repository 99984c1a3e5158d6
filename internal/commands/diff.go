package commands

import (
	"time"

	apperrors "devtoolsx/internal/infrastructure/errors"
	"devtoolsx/internal/tools/diff"
)

const unifiedContext = 3

// ComputeDiff returns the side-by-side rows for the diff viewer
func (c *Commands) ComputeDiff(left, right string) diff.Result {
	defer c.traced("compute_diff", time.Now(), len(left)+len(right))

	res := diff.Compute(left, right)
	c.logger.Debug("Diff computed",
		"identical", res.Identical(),
		"added", res.Stats.Added,
		"removed", res.Stats.Removed,
	)
	return res
}

// UnifiedDiff renders the comparison as a unified diff for copying
func (c *Commands) UnifiedDiff(left, right string) Result {
	defer c.traced("unified_diff", time.Now(), len(left)+len(right))

	out, err := diff.Unified(left, right, unifiedContext)
	if err != nil {
		return c.fail("unified_diff", apperrors.WrapError("unified_diff", err), "Error: Could not render diff")
	}
	return Result{Output: out}
}

// DiffLanguages lists the highlight modes of the diff viewer
func (c *Commands) DiffLanguages() []string {
	return diff.Languages()
}
