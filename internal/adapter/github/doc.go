// Package github adapts the reporting engine to the GitHub REST API.
//
// The adapter owns three concerns:
//
//   - Client: a go-github-backed implementation of the check-run and
//     PR-comment surfaces, holding the owner/repo context so call sites
//     never merge it into payloads ad hoc.
//   - Request builders: pure functions composing per-operation request
//     structs from domain values.
//   - Comment rendering: markdown tables plus the hidden identifier that
//     makes summary comments content-addressed across runs.
package github
