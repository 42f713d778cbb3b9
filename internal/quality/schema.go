package quality

import (
	"fmt"
	"net/http"
	"strings"
)

// Validator checks the shape of a raw answer record. It never fails:
// every problem is reported as an entry in the returned error list so
// that downstream scoring can degrade instead of aborting.
type Validator struct{}

// Validate performs complete response validation and returns whether the
// response is fully valid along with the ordered list of problems found.
// Each check appends at most one error.
func (v Validator) Validate(resp *Response) (bool, []string) {
	if resp == nil {
		resp = &Response{}
	}

	var errs []string
	errs = append(errs, v.structureErrors(resp)...)
	errs = append(errs, v.metadataErrors(resp)...)

	return len(errs) == 0, errs
}

// structureErrors checks the answer container and the answer field.
// A missing container short-circuits the field checks.
func (v Validator) structureErrors(resp *Response) []string {
	if resp.Data == nil {
		return []string{"missing 'data' key in response"}
	}

	var errs []string

	raw, ok := resp.Data["answer"]
	if !ok {
		errs = append(errs, "missing 'answer' field in response data")
		return errs
	}

	s, isString := raw.(string)
	if !isString {
		errs = append(errs, fmt.Sprintf("'answer' field must be string, got %T", raw))
		return errs
	}

	if strings.TrimSpace(s) == "" {
		errs = append(errs, "'answer' field is empty")
	}

	return errs
}

// metadataErrors checks status_code and response_time.
func (v Validator) metadataErrors(resp *Response) []string {
	var errs []string

	if resp.StatusCode == nil {
		errs = append(errs, "missing 'status_code' in response")
	} else if *resp.StatusCode != http.StatusOK {
		errs = append(errs, fmt.Sprintf("expected status_code 200, got %d", *resp.StatusCode))
	}

	if resp.ResponseTime == nil {
		errs = append(errs, "missing 'response_time' in response")
	}

	return errs
}

// AnswerText safely extracts the answer text from a response.
// Returns "" when any part of the path is missing or mistyped.
func (v Validator) AnswerText(resp *Response) string {
	if resp == nil || resp.Data == nil {
		return ""
	}
	if s, ok := resp.Data["answer"].(string); ok {
		return s
	}
	return ""
}
