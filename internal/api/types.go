package api

import (
	"sort"
	"strings"
)

// FitRequest is the body of POST /fit_trendline/.
type FitRequest struct {
	Timestamps []int     `json:"timestamps"`
	Data       []float64 `json:"data"`
}

// FitResponse is returned by POST /fit_trendline/.
type FitResponse struct {
	Slope    float64 `json:"slope"`
	RSquared float64 `json:"r_squared"`
}

// ErrorResponse is the generic error payload of the country endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationErrors is returned by Validate and rendered as a 422 "detail" list.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = strings.Join(e.Loc, ".") + ": " + e.Msg
	}
	return strings.Join(msgs, "; ")
}

// ValidationResponse is the 422 body.
type ValidationResponse struct {
	Detail ValidationErrors `json:"detail"`
}

func fieldError(field, msg string) FieldError {
	loc := []string{"body"}
	if field != "" {
		loc = append(loc, field)
	}
	return FieldError{Loc: loc, Msg: msg, Type: "value_error"}
}

// Validate checks the request before any computation runs. A field's later
// checks are skipped once an earlier one fails, and the length check only
// runs when timestamps are valid.
func (r FitRequest) Validate() error {
	var errs ValidationErrors

	timestampsOK := true
	switch {
	case len(r.Timestamps) == 0:
		errs = append(errs, fieldError("timestamps", "timestamps must not be empty"))
		timestampsOK = false
	case !sort.IntsAreSorted(r.Timestamps):
		errs = append(errs, fieldError("timestamps", "timestamps must be sorted in ascending order"))
		timestampsOK = false
	}

	switch {
	case len(r.Data) == 0:
		errs = append(errs, fieldError("data", "data must not be empty"))
	case hasNegative(r.Data):
		errs = append(errs, fieldError("data", "data values must be non-negative"))
	case timestampsOK && len(r.Data) != len(r.Timestamps):
		errs = append(errs, fieldError("data", "timestamps and data must have the same length"))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func hasNegative(v []float64) bool {
	for _, x := range v {
		if x < 0 {
			return true
		}
	}
	return false
}
