package network

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedRecord is matched by every parse or validation failure of a
// network description.
var ErrMalformedRecord = errors.New("network: malformed record")

// validate is the shared validator instance; validator caches struct metadata
// and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Record is one undirected connection: From and To are adjacent stops on Line
// and travelling between them takes Weight minutes in either direction.
type Record struct {
	Line   string `validate:"required,max=64"`
	From   string `validate:"required,max=128"`
	To     string `validate:"required,max=128"`
	Weight int64  `validate:"gte=0"`

	// Row is the 1-based source line the record came from; 0 for records
	// built in code.
	Row int `validate:"-"`
}

// RecordError locates a malformed record in its source.
type RecordError struct {
	Source string // file name, or the format name for readers
	Row    int    // 1-based line number
	Err    error
}

func (e *RecordError) Error() string {
	where := e.Source
	switch {
	case e.Row > 0 && where == "":
		where = fmt.Sprintf("row %d", e.Row)
	case e.Row > 0:
		where = fmt.Sprintf("%s:%d", where, e.Row)
	}
	if where == "" {
		return e.Err.Error()
	}

	return where + ": " + e.Err.Error()
}

func (e *RecordError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrMalformedRecord) match any RecordError.
func (e *RecordError) Is(target error) bool { return target == ErrMalformedRecord }

// Validate checks field constraints and reports the first violation in
// readable form.
func (r Record) Validate() error {
	if err := validate.Struct(r); err != nil {
		return formatValidationError(err)
	}

	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be >= %s, got %v", field, e.Param(), e.Value()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s longer than %s characters", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s fails %q", field, e.Tag()))
		}
	}

	return errors.New(strings.Join(msgs, "; "))
}
