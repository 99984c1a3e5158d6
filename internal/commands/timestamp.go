package commands

import (
	"errors"

	apperrors "devtoolsx/internal/infrastructure/errors"
	"devtoolsx/internal/tools/timestamp"
)

// TimeResult carries a converted moment or the display error
type TimeResult struct {
	Time  *timestamp.Formatted `json:"time"`
	Error string               `json:"error"`
}

// TimestampToDate converts a Unix timestamp in seconds or milliseconds
func (c *Commands) TimestampToDate(input string) TimeResult {
	f, err := c.converter.FromTimestamp(input, c.now())
	if err != nil {
		c.reject("timestamp_to_date", apperrors.HandleValidationError("timestamp_to_date", "timestamp", input, err.Error()))
		return TimeResult{Error: "Error: Invalid timestamp"}
	}
	return TimeResult{Time: &f}
}

// DateToTimestamp converts the date form fields in the local zone
func (c *Commands) DateToTimestamp(fields timestamp.DateFields) TimeResult {
	f, err := c.converter.FromDate(fields, c.now())
	if err != nil {
		field := "date"
		var ve *timestamp.ValidationError
		if errors.As(err, &ve) {
			field = ve.Field
		}
		c.reject("date_to_timestamp", apperrors.HandleValidationError("date_to_timestamp", field, "", err.Error()))
		return TimeResult{Error: "Error: " + err.Error()}
	}
	return TimeResult{Time: &f}
}

// CurrentTime renders the live clock card
func (c *Commands) CurrentTime() timestamp.Formatted {
	return c.converter.Current(c.now())
}

// DefaultDateFields pre-fills the date form with the current local time
func (c *Commands) DefaultDateFields() timestamp.DateFields {
	return c.converter.FieldsFor(c.now())
}
