package out

import (
	"context"

	profilein "shiddaha/internal/modules/profile/port/in"
	sessionout "shiddaha/internal/modules/session/port/out"
)

// ProfileGatewayAdapter bridges the session module to the profile ledger
// through its inbound port.
type ProfileGatewayAdapter struct {
	profile profilein.Usecase
}

func NewProfileGatewayAdapter(profile profilein.Usecase) sessionout.ProfileGateway {
	return &ProfileGatewayAdapter{profile: profile}
}

func (a *ProfileGatewayAdapter) Credit(ctx context.Context, minutes int) (sessionout.LedgerResult, error) {
	out, err := a.profile.Credit(ctx, minutes)
	if err != nil {
		return sessionout.LedgerResult{}, err
	}
	return sessionout.LedgerResult{Currency: out.Currency, TotalMinutesStudied: out.TotalMinutesStudied}, nil
}

func (a *ProfileGatewayAdapter) ResetProfile(ctx context.Context) error {
	return a.profile.Reset(ctx)
}
