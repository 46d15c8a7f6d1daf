// Package ledger implements the non-fungible-token ownership ledger: one
// current owner per token, an optional single-token transfer delegate, and
// per-owner operator grants. Every mutation validates fully before touching
// any table and journals its notification in the same transaction.
package ledger

import (
	"context"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/nft-ledger/internal/adapter"
	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/logger"
	"github.com/feral-file/nft-ledger/internal/messaging"
	"github.com/feral-file/nft-ledger/internal/store"
)

// Ledger orchestrates the ownership record, balance counters and approval
// tables into atomic state transitions. Caller identity is an explicit
// argument on every mutation; resolving it is the host's concern.
type Ledger struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
}

// New creates a ledger on top of the given store. The publisher may be a
// no-op; state transitions never depend on event delivery.
func New(st store.Store, pub messaging.Publisher, clock adapter.Clock) *Ledger {
	return &Ledger{
		store:     st,
		publisher: pub,
		clock:     clock,
	}
}

// BalanceOf returns the number of tokens currently owned by the account,
// zero if the account has never held one
func (l *Ledger) BalanceOf(ctx context.Context, account domain.AccountID) (uint64, error) {
	count, _, err := l.store.BalanceOf(ctx, account)
	return count, err
}

// OwnerOf returns the current owner of the token, or nil if it does not exist
func (l *Ledger) OwnerOf(ctx context.Context, id domain.TokenID) (*domain.AccountID, error) {
	return l.store.OwnerOf(ctx, id)
}

// Exists reports whether the token currently has an owner
func (l *Ledger) Exists(ctx context.Context, id domain.TokenID) (bool, error) {
	return l.store.TokenExists(ctx, id)
}

// TokenDelegate returns the recorded single-token transfer delegate, or nil
func (l *Ledger) TokenDelegate(ctx context.Context, id domain.TokenID) (*domain.AccountID, error) {
	return l.store.DelegateOf(ctx, id)
}

// IsOperator reports whether operator holds a blanket grant from owner
func (l *Ledger) IsOperator(ctx context.Context, owner, operator domain.AccountID) (bool, error) {
	return l.store.IsOperator(ctx, owner, operator)
}

// Mint creates token id owned by the caller.
// Fails with ErrTokenExists if the id already has an owner and ErrNotAllowed
// if the caller is the null sentinel.
func (l *Ledger) Mint(ctx context.Context, caller domain.AccountID, id domain.TokenID) error {
	event := domain.NewTransferEvent(l.newEventID(), nil, &caller, id, l.clock.Now())

	err := l.store.Transaction(ctx, func(tx store.Store) error {
		if err := register(ctx, tx, caller, id); err != nil {
			return err
		}
		return tx.RecordEvent(ctx, event)
	})
	if err != nil {
		return err
	}

	l.publish(ctx, event)
	return nil
}

// Burn deletes token id. Only the current owner may burn; delegates and
// operators cannot. Any recorded delegate is cleared with the token.
func (l *Ledger) Burn(ctx context.Context, caller domain.AccountID, id domain.TokenID) error {
	event := domain.NewTransferEvent(l.newEventID(), &caller, nil, id, l.clock.Now())

	err := l.store.Transaction(ctx, func(tx store.Store) error {
		owner, err := tx.OwnerOf(ctx, id)
		if err != nil {
			return err
		}
		if owner == nil {
			return domain.ErrTokenNotFound
		}
		if *owner != caller {
			return domain.ErrNotOwner
		}

		if err := tx.RemoveDelegate(ctx, id); err != nil {
			return err
		}
		if err := deregister(ctx, tx, caller, id); err != nil {
			return err
		}
		return tx.RecordEvent(ctx, event)
	})
	if err != nil {
		return err
	}

	l.publish(ctx, event)
	return nil
}

// Transfer moves token id from the caller to destination
func (l *Ledger) Transfer(ctx context.Context, caller, destination domain.AccountID, id domain.TokenID) error {
	return l.transferToken(ctx, caller, destination, id)
}

// TransferFrom moves token id to the given destination on behalf of from.
// Authorization is checked against the caller, never against from, and the
// token's actual recorded owner is the account mutated.
func (l *Ledger) TransferFrom(ctx context.Context, caller, from, to domain.AccountID, id domain.TokenID) error {
	_ = from // the asserted owner is informational; the recorded owner is authoritative
	return l.transferToken(ctx, caller, to, id)
}

// transferToken is the shared transition behind Transfer and TransferFrom:
// clear the token's delegate, deregister it from its recorded owner and
// register it to the destination, all or nothing.
func (l *Ledger) transferToken(ctx context.Context, caller, to domain.AccountID, id domain.TokenID) error {
	var event *domain.LedgerEvent

	err := l.store.Transaction(ctx, func(tx store.Store) error {
		owner, err := tx.OwnerOf(ctx, id)
		if err != nil {
			return err
		}
		if owner == nil {
			return domain.ErrTokenNotFound
		}

		authorized, err := mayAct(ctx, tx, caller, id)
		if err != nil {
			return err
		}
		if !authorized {
			return domain.ErrNotApproved
		}

		// Destination must be valid before any table changes; there is no
		// rollback once mutation starts.
		if to.IsZero() {
			return domain.ErrNotAllowed
		}

		if err := tx.RemoveDelegate(ctx, id); err != nil {
			return err
		}
		if err := deregister(ctx, tx, *owner, id); err != nil {
			return err
		}
		if err := register(ctx, tx, to, id); err != nil {
			return err
		}

		event = domain.NewTransferEvent(l.newEventID(), owner, &to, id, l.clock.Now())
		return tx.RecordEvent(ctx, event)
	})
	if err != nil {
		return err
	}

	l.publish(ctx, event)
	return nil
}

// Approve records to as the single transfer delegate for token id. The caller
// must be the current owner or one of the owner's operators; the slot must be
// empty (a second approve fails with ErrCannotInsert until the token changes
// hands).
func (l *Ledger) Approve(ctx context.Context, caller, to domain.AccountID, id domain.TokenID) error {
	event := domain.NewApprovalEvent(l.newEventID(), caller, to, id, l.clock.Now())

	err := l.store.Transaction(ctx, func(tx store.Store) error {
		owner, err := tx.OwnerOf(ctx, id)
		if err != nil {
			return err
		}

		// No authorization is possible on a nonexistent token
		if owner == nil {
			return domain.ErrNotAllowed
		}
		if *owner != caller {
			operator, err := tx.IsOperator(ctx, *owner, caller)
			if err != nil {
				return err
			}
			if !operator {
				return domain.ErrNotAllowed
			}
		}

		if to.IsZero() {
			return domain.ErrNotAllowed
		}

		delegate, err := tx.DelegateOf(ctx, id)
		if err != nil {
			return err
		}
		if delegate != nil {
			return domain.ErrCannotInsert
		}

		if err := tx.SetDelegate(ctx, id, to); err != nil {
			return err
		}
		return tx.RecordEvent(ctx, event)
	})
	if err != nil {
		return err
	}

	l.publish(ctx, event)
	return nil
}

// SetApprovalForAll grants or revokes operator's authority over all of the
// caller's tokens. Self-approval is rejected.
func (l *Ledger) SetApprovalForAll(ctx context.Context, caller, operator domain.AccountID, approved bool) error {
	event := domain.NewApprovalForAllEvent(l.newEventID(), caller, operator, approved, l.clock.Now())

	err := l.store.Transaction(ctx, func(tx store.Store) error {
		if operator == caller {
			return domain.ErrNotAllowed
		}

		if approved {
			if err := tx.SetOperator(ctx, caller, operator); err != nil {
				return err
			}
		} else {
			if err := tx.RemoveOperator(ctx, caller, operator); err != nil {
				return err
			}
		}
		return tx.RecordEvent(ctx, event)
	})
	if err != nil {
		return err
	}

	l.publish(ctx, event)
	return nil
}

// mayAct is the authorization predicate: true iff caller is the token's
// current owner, its recorded delegate, or an operator for the current owner.
// A nonexistent token authorizes nobody; the null sentinel is never
// authorized.
func mayAct(ctx context.Context, s store.Store, caller domain.AccountID, id domain.TokenID) (bool, error) {
	if caller.IsZero() {
		return false, nil
	}

	owner, err := s.OwnerOf(ctx, id)
	if err != nil {
		return false, err
	}
	if owner == nil {
		return false, nil
	}
	if *owner == caller {
		return true, nil
	}

	delegate, err := s.DelegateOf(ctx, id)
	if err != nil {
		return false, err
	}
	if delegate != nil && *delegate == caller {
		return true, nil
	}

	return s.IsOperator(ctx, *owner, caller)
}

// register inserts id→to into the ownership record and increments the
// destination's balance counter, initializing it to 1 if absent
func register(ctx context.Context, s store.Store, to domain.AccountID, id domain.TokenID) error {
	exists, err := s.TokenExists(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrTokenExists
	}
	if to.IsZero() {
		return domain.ErrNotAllowed
	}

	count, _, err := s.BalanceOf(ctx, to)
	if err != nil {
		return err
	}
	if err := s.SetBalance(ctx, to, count+1); err != nil {
		return err
	}
	return s.SetOwner(ctx, id, to)
}

// deregister removes id from the ownership record and decrements the owner's
// balance counter. A missing or zero counter means the count invariant was
// already broken; it surfaces as ErrCannotFetchValue instead of underflowing.
func deregister(ctx context.Context, s store.Store, from domain.AccountID, id domain.TokenID) error {
	exists, err := s.TokenExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrTokenNotFound
	}

	count, ok, err := s.BalanceOf(ctx, from)
	if err != nil {
		return err
	}
	if !ok || count == 0 {
		return domain.ErrCannotFetchValue
	}

	if err := s.SetBalance(ctx, from, count-1); err != nil {
		return err
	}
	return s.RemoveOwner(ctx, id)
}

func (l *Ledger) newEventID() string {
	return ulid.MustNewDefault(l.clock.Now()).String()
}

// publish hands the event to the messaging layer. State is already committed
// and journaled at this point; a transport failure is logged, not returned.
func (l *Ledger) publish(ctx context.Context, event *domain.LedgerEvent) {
	if l.publisher == nil || event == nil {
		return
	}
	if err := l.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish ledger event",
			zap.String("event_id", event.EventID),
			zap.String("event_type", string(event.EventType)),
			zap.Error(err),
		)
	}
}
