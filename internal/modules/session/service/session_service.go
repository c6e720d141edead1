package service

import (
	"context"
	"time"

	"shiddaha/internal/modules/session/domain"
	sessionout "shiddaha/internal/modules/session/port/out"
	"shiddaha/internal/platform/clock"
	"shiddaha/internal/platform/id"
	"shiddaha/internal/platform/tx"
)

// SessionService owns the persistence side of session completion: crediting
// the profile and appending the history record are one transactional unit.
type SessionService struct {
	clock   clock.Clock
	idGen   id.Generator
	records sessionout.RecordStore
	profile sessionout.ProfileGateway
	txm     tx.Manager
}

func NewSessionService(clock clock.Clock, idGen id.Generator, records sessionout.RecordStore, profile sessionout.ProfileGateway, txm tx.Manager) *SessionService {
	return &SessionService{clock: clock, idGen: idGen, records: records, profile: profile, txm: txm}
}

// Complete credits a finished session. If either write fails the transaction
// rolls back: the profile is never advanced without its record, or vice
// versa.
func (s *SessionService) Complete(ctx context.Context, minutes int) (domain.Record, sessionout.LedgerResult, error) {
	record := domain.NewRecord(s.idGen.New(), minutes, s.clock.Now())
	if err := record.Validate(); err != nil {
		return domain.Record{}, sessionout.LedgerResult{}, err
	}
	var result sessionout.LedgerResult
	err := s.txm.Within(ctx, func(ctx context.Context) error {
		var err error
		if result, err = s.profile.Credit(ctx, minutes); err != nil {
			return err
		}
		return s.records.Append(ctx, record)
	})
	if err != nil {
		return domain.Record{}, sessionout.LedgerResult{}, err
	}
	return record, result, nil
}

// Weekly aggregates this week's records into per-day minute totals.
func (s *SessionService) Weekly(ctx context.Context) (time.Time, [7]int, error) {
	now := s.clock.Now()
	weekStart := domain.WeekStart(now)
	records, err := s.records.Since(ctx, weekStart)
	if err != nil {
		return time.Time{}, [7]int{}, err
	}
	return weekStart, domain.WeeklyMinutes(records, weekStart), nil
}

// ResetAll wipes the profile and the whole session history in one
// transaction.
func (s *SessionService) ResetAll(ctx context.Context) error {
	return s.txm.Within(ctx, func(ctx context.Context) error {
		if err := s.profile.ResetProfile(ctx); err != nil {
			return err
		}
		return s.records.DeleteAll(ctx)
	})
}

func (s *SessionService) Now() time.Time {
	return s.clock.Now()
}
