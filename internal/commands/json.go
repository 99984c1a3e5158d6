package commands

import (
	"time"

	apperrors "devtoolsx/internal/infrastructure/errors"
	"devtoolsx/internal/tools/jsonfmt"
)

// PrettyJSON re-indents a JSON document with two spaces
func (c *Commands) PrettyJSON(text string) Result {
	defer c.traced("pretty_json", time.Now(), len(text))

	out, err := jsonfmt.Pretty(text)
	if err != nil {
		return c.fail("pretty_json", apperrors.HandleDecodeError("pretty_json", "json", err), err.Error())
	}
	return Result{Output: out}
}

// MinifyJSON strips insignificant whitespace from a JSON document
func (c *Commands) MinifyJSON(text string) Result {
	defer c.traced("minify_json", time.Now(), len(text))

	out, err := jsonfmt.Minify(text)
	if err != nil {
		return c.fail("minify_json", apperrors.HandleDecodeError("minify_json", "json", err), err.Error())
	}
	return Result{Output: out}
}
