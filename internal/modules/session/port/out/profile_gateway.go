package out

import "context"

// LedgerResult is the profile balance after a ledger operation.
type LedgerResult struct {
	Currency            int
	TotalMinutesStudied int
}

// ProfileGateway is the session module's view of the reward ledger. Credit
// must be callable inside a transaction boundary shared with RecordStore so
// a session's profile update and history record land atomically.
type ProfileGateway interface {
	Credit(ctx context.Context, minutes int) (LedgerResult, error)
	ResetProfile(ctx context.Context) error
}
