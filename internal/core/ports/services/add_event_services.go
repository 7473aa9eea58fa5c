package services

import (
	"context"
	"errors"

	"github.com/SscSPs/earnings_calendar_app/internal/calendar"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
)

// FlowState is a step of the add-event flow. A finished run reports the state it stopped in.
type FlowState string

const (
	StateInput        FlowState = "INPUT"
	StateValidate     FlowState = "VALIDATE"
	StateLookup       FlowState = "LOOKUP"
	StateFound        FlowState = "FOUND"
	StateNotFound     FlowState = "NOT_FOUND"
	StatePromptManual FlowState = "PROMPT_MANUAL"
	StateEntered      FlowState = "ENTERED"
	StateCancelled    FlowState = "CANCELLED"
	StatePersist      FlowState = "PERSIST"
	StateRender       FlowState = "RENDER"
	StateAbort        FlowState = "ABORT"
	StateExisting     FlowState = "EXISTING"
)

// ErrManualEntryDeferred is returned by a prompter that cannot ask synchronously (a web form).
// The flow stops in StatePromptManual without writing anything.
var ErrManualEntryDeferred = errors.New("manual entry deferred")

// ManualEntryPrompter asks the user for a date after lookup failed.
type ManualEntryPrompter interface {
	// PromptManualDate returns the entered date and true, or false when the user cancelled.
	PromptManualDate(ctx context.Context, ticker string) (string, bool, error)
}

// AddEventResult describes how a flow run ended.
type AddEventResult struct {
	State   FlowState
	Ticker  string
	Event   *domain.EarningsEvent
	Durable bool   // false when the event is only held in the session
	Warning string // non-fatal, user-visible
}

// AddEventFlowSvc orchestrates validate, lookup, persist and session update for one ticker.
type AddEventFlowSvc interface {
	// Run returns an apperrors.ErrValidation error for bad input; every other failure ends in a
	// result (possibly with a warning), never an error that would break rendering.
	Run(ctx context.Context, session *calendar.Session, rawTicker string, prompter ManualEntryPrompter) (*AddEventResult, error)

	// RunManual skips the lookup and goes straight to the prompter, for a date (or cancel)
	// the user already submitted. Errors follow Run.
	RunManual(ctx context.Context, session *calendar.Session, rawTicker string, prompter ManualEntryPrompter) (*AddEventResult, error)
}
