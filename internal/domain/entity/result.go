package entity

import "net/http"

const (
	MessageSent      = "Email sent successfully!"
	MessageErrPrefix = "An error occurred: "
)

// InvocationResult is the value returned to the scheduler for each run.
type InvocationResult struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// SuccessResult returns the result of a run that delivered the report.
func SuccessResult() InvocationResult {
	return InvocationResult{StatusCode: http.StatusOK, Body: MessageSent}
}

// FailureResult converts err into a 500 result.
func FailureResult(err error) InvocationResult {
	return InvocationResult{StatusCode: http.StatusInternalServerError, Body: MessageErrPrefix + err.Error()}
}

// Failed reports whether the run ended in the failed state.
func (r InvocationResult) Failed() bool {
	return r.StatusCode != http.StatusOK
}
