// Package admin ties the catalog client, the query cache and the filter
// state together into one menu-management session.
package admin

import (
	"context"
	"errors"
	"fmt"

	"sushimenu/internal/browse"
	"sushimenu/internal/cache"
	"sushimenu/internal/client"
	"sushimenu/internal/logger"
	"sushimenu/internal/sushi"

	"go.uber.org/zap"
)

// ErrBusy is returned when a mutation is requested while another one is
// still pending.
var ErrBusy = errors.New("a mutation is already in progress")

// Session models one interactive menu-management session: it owns the
// filter state, reads the catalog through the cache and funnels mutations
// through the client, invalidating the cache on confirmed success only.
//
// A session serves a single user and is driven from a single goroutine; it
// is not safe for concurrent use.
type Session struct {
	catalog  client.Catalog
	store    *cache.Store
	state    *browse.State
	notifier Notifier

	busy        bool
	form        sushi.CreateInput
	formOpen    bool
	fieldErrors map[string]string
}

func NewSession(catalog client.Catalog, notifier Notifier) *Session {
	if notifier == nil {
		notifier = logNotifier{}
	}
	return &Session{
		catalog:  catalog,
		store:    cache.New(catalog),
		state:    browse.NewState(),
		notifier: notifier,
	}
}

// State exposes the filter state for the filter and pagination controls.
func (s *Session) State() *browse.State {
	return s.state
}

// Cache exposes the underlying query cache snapshot, for loading and error
// indicators.
func (s *Session) Cache() *cache.Store {
	return s.store
}

// Busy reports whether a mutation is pending; controls triggering
// mutations are disabled while it is true.
func (s *Session) Busy() bool {
	return s.busy
}

// Browse returns the currently visible page: cached list run through the
// filter, sort and paginate stages under the current state.
func (s *Session) Browse(ctx context.Context) (browse.Page, error) {
	items, err := s.store.Get(ctx)
	if err != nil {
		return browse.Page{}, err
	}
	return browse.Derive(items, *s.state), nil
}

// --- create form ---

// OpenForm opens the creation dialog with a blank form.
func (s *Session) OpenForm() {
	s.formOpen = true
	s.form = sushi.CreateInput{}
	s.fieldErrors = nil
}

// CancelForm closes the dialog and discards entered values.
func (s *Session) CancelForm() {
	s.formOpen = false
	s.form = sushi.CreateInput{}
	s.fieldErrors = nil
}

func (s *Session) FormOpen() bool {
	return s.formOpen
}

// Form returns the values currently entered in the creation dialog.
func (s *Session) Form() sushi.CreateInput {
	return s.form
}

// SetForm records the entered values without validating them.
func (s *Session) SetForm(in sushi.CreateInput) {
	s.form = in
}

// FieldErrors returns the per-field messages of the last rejected submit.
func (s *Session) FieldErrors() map[string]string {
	return s.fieldErrors
}

// SubmitCreate validates the entered form and, when valid, creates the
// item. Validation failures never reach the network: they are recorded as
// field errors and the dialog stays open. A request failure keeps the
// entered values so the user can retry. Success notifies, closes and
// clears the form, and invalidates the cached list.
func (s *Session) SubmitCreate(ctx context.Context) error {
	if s.busy {
		return ErrBusy
	}

	if err := s.form.Validate(); err != nil {
		var verr *sushi.ValidationError
		if errors.As(err, &verr) {
			s.fieldErrors = verr.Fields
		}
		return err
	}
	s.fieldErrors = nil

	s.busy = true
	defer func() { s.busy = false }()

	created, err := s.catalog.Create(ctx, s.form)
	if err != nil {
		logger.FromCtx(ctx).Error("create sushi failed", zap.Error(err))
		s.notifier.Failure("Failed to add item")
		return err
	}

	s.notifier.Success("Item added successfully")
	s.formOpen = false
	s.form = sushi.CreateInput{}
	s.store.Invalidate()

	logger.FromCtx(ctx).Info("sushi created", zap.String("id", created.ID))
	return nil
}

// Archive archives one item. Success notifies and invalidates the cached
// list; failure, the already-archived case included, notifies and leaves
// the cache untouched.
func (s *Session) Archive(ctx context.Context, item sushi.Sushi) error {
	if s.busy {
		return ErrBusy
	}

	s.busy = true
	defer func() { s.busy = false }()

	if _, err := s.catalog.Archive(ctx, item.ID); err != nil {
		logger.FromCtx(ctx).Error("archive sushi failed",
			zap.String("id", item.ID),
			zap.Error(err),
		)
		s.notifier.Failure("Failed to archive item or this item has already been archived")
		return err
	}

	s.notifier.Success(fmt.Sprintf("%s archived successfully", item.Name))
	s.store.Invalidate()
	return nil
}
