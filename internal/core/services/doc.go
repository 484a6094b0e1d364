// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The fetch services collapse every provider failure into a
// *domain.FetchError so that callers only ever need the error's
// source to pick a user-facing message.
//
// Services are pure Go with no external dependencies beyond the
// request ID helper.
package services
