package github

import "errors"

// ErrNoCheckRun is returned when an update was requested but no
// in-progress check-run matches the job name for the head commit. This
// is an application-level condition, distinct from transport errors, and
// must surface as a failure of the run rather than being swallowed.
var ErrNoCheckRun = errors.New("no matching in-progress check run")
