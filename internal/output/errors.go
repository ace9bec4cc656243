package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	secretserr "github.com/mrz1836/secrets/pkg/errors"
)

// errorView is the renderable form of a failure, shared by both modes.
type errorView struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Details  map[string]string `json:"details,omitempty"`
	Hint     string            `json:"hint,omitempty"`
	ExitCode int               `json:"exit_code"`
}

func viewOf(err error) errorView {
	var se *secretserr.Error
	if !errors.As(err, &se) {
		return errorView{
			Code:     secretserr.ErrGeneral.Code,
			Message:  err.Error(),
			ExitCode: secretserr.ExitGeneral,
		}
	}

	v := errorView{
		Code:     se.Code,
		Message:  se.Message,
		Details:  se.Details,
		Hint:     se.Suggestion,
		ExitCode: se.ExitCode,
	}
	if se.Cause != nil {
		v.Message = fmt.Sprintf("%s: %v", se.Message, se.Cause)
	}
	return v
}

// WriteError renders a failure to w. Text mode produces a compact block:
//
//	secrets: error [INVALID_SHARE] share string cannot be decoded
//	    share = 801
//	  hint: check for truncation
//
// JSON mode emits {"error": {...}} with the same fields.
func WriteError(w io.Writer, err error, mode Mode) error {
	if err == nil {
		return nil
	}
	v := viewOf(err)

	if mode == ModeJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]errorView{"error": v})
	}

	if _, werr := fmt.Fprintf(w, "secrets: error [%s] %s\n", v.Code, v.Message); werr != nil {
		return werr
	}
	keys := make([]string, 0, len(v.Details))
	for k := range v.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, werr := fmt.Fprintf(w, "    %s = %s\n", k, v.Details[k]); werr != nil {
			return werr
		}
	}
	if v.Hint != "" {
		if _, werr := fmt.Fprintf(w, "  hint: %s\n", v.Hint); werr != nil {
			return werr
		}
	}
	return nil
}
