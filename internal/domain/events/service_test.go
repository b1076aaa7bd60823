package events

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"pet-events/internal/errdef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	seq   int
	order []string
	byID  map[string]Event
	saves int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Event{}}
}

func (r *testRepo) matches(e Event, q Query) bool {
	if q.ID != "" && e.ID != q.ID {
		return false
	}
	if q.OwnerID != "" && e.OwnerID != q.OwnerID {
		return false
	}
	if q.OnlyEnabled && !e.Enabled {
		return false
	}
	return true
}

func (r *testRepo) Find(ctx context.Context, q Query) ([]Event, error) {
	var out []Event
	for _, id := range r.order {
		if e := r.byID[id]; r.matches(e, q) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testRepo) FindOne(ctx context.Context, q Query) (Event, error) {
	e, ok := r.byID[q.ID]
	if !ok || !r.matches(e, q) {
		return Event{}, errdef.NewNotFound("repo: not found")
	}
	return e, nil
}

func (r *testRepo) Save(ctx context.Context, e Event) (Event, error) {
	r.saves++
	if e.ID == "" {
		r.seq++
		e.ID = "ev-" + strconv.Itoa(r.seq)
		r.order = append(r.order, e.ID)
	}
	r.byID[e.ID] = e
	return e, nil
}

type failingRepo struct{ testRepo }

var errStore = errors.New("store down")

func (r *failingRepo) Save(ctx context.Context, e Event) (Event, error) {
	return Event{}, errStore
}

// -------------------------
// Helpers
// -------------------------

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, opts Options) (*Service, *testRepo) {
	t.Helper()
	repo := newTestRepo()
	svc := NewService(repo, opts)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func validPatch() Patch {
	return Patch{
		Title:       "OK",
		Description: "OK",
		EventDate:   "2026-12-01",
		Venue:       "Hall",
	}
}

func createEvent(t *testing.T, svc *Service, ownerID string) Event {
	t.Helper()
	e, err := svc.Reconcile(context.Background(), "", ownerID, validPatch())
	require.NoError(t, err)
	require.NotEmpty(t, e.ID)
	return e
}

func requireValidation(t *testing.T, err error, paths ...string) *errdef.ValidationError {
	t.Helper()
	v, ok := errdef.AsValidation(err)
	require.Truef(t, ok, "expected validation error, got %v", err)
	for _, p := range paths {
		assert.Truef(t, v.Has(p), "expected violation on %q, got %#v", p, v.Messages)
	}
	return v
}

// -------------------------
// Tests
// -------------------------

func TestService_Reconcile_CreatesWithOwner(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	e, err := svc.Reconcile(context.Background(), "", "owner-1", validPatch())
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "owner-1", e.OwnerID)
	assert.True(t, e.Enabled)
	assert.Equal(t, fixedNow, e.SavedAt)
	assert.Equal(t, "Hall", e.Venue)
	assert.Empty(t, e.Picture)
}

func TestService_Reconcile_TrimsFields(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	e, err := svc.Reconcile(context.Background(), "", "owner-1", Patch{
		Title:       "  Paseo  ",
		Description: " por el parque ",
		EventDate:   " 01/12/2026 ",
		Venue:       " Parque ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Paseo", e.Title)
	assert.Equal(t, "por el parque", e.Description)
	assert.Equal(t, "01/12/2026", e.EventDate)
	assert.Equal(t, "Parque", e.Venue)
}

func TestService_Reconcile_RejectsLongTitle(t *testing.T) {
	svc, repo := newTestService(t, Options{})

	p := validPatch()
	p.Title = strings.Repeat("T", MaxTitleLen+1)

	_, err := svc.Reconcile(context.Background(), "", "owner-1", p)
	v := requireValidation(t, err, "titulo")
	assert.Len(t, v.Messages, 1)
	assert.Equal(t, 0, repo.saves)
}

func TestService_Reconcile_TitleAtLimitIsValid(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	p := validPatch()
	p.Title = strings.Repeat("ñ", MaxTitleLen)

	_, err := svc.Reconcile(context.Background(), "", "owner-1", p)
	require.NoError(t, err)
}

func TestService_Reconcile_ReportsAllViolations(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	p := validPatch()
	p.Title = strings.Repeat("T", MaxTitleLen+1)
	p.Description = strings.Repeat("D", MaxDescriptionLen+1)

	_, err := svc.Reconcile(context.Background(), "", "owner-1", p)
	v := requireValidation(t, err, "titulo", "descripcion")
	assert.Len(t, v.Messages, 2)
}

func TestService_Reconcile_CreateRequiresAllFields(t *testing.T) {
	svc, repo := newTestService(t, Options{})

	_, err := svc.Reconcile(context.Background(), "", "owner-1", Patch{Title: "Solo titulo"})
	v := requireValidation(t, err, "descripcion", "fechaEvento", "lugarEvento")
	assert.False(t, v.Has("titulo"))
	assert.Equal(t, 0, repo.saves)
}

func TestService_Reconcile_UpdatesOnlyPresentFields(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()

	created := createEvent(t, svc, "owner-1")

	later := fixedNow.Add(time.Hour)
	svc.now = func() time.Time { return later }

	updated, err := svc.Reconcile(ctx, created.ID, "owner-1", Patch{Title: "New"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.EventDate, updated.EventDate)
	// lugarEvento se aplica igual que el resto: si no viene, se conserva.
	assert.Equal(t, "Hall", updated.Venue)
	assert.Equal(t, "owner-1", updated.OwnerID)
	// fechaCreacion se re-estampa en cada guardado.
	assert.Equal(t, later, updated.SavedAt)
}

func TestService_Reconcile_UpdateIsOwnershipScoped(t *testing.T) {
	svc, repo := newTestService(t, Options{})
	ctx := context.Background()

	created := createEvent(t, svc, "owner-1")

	_, err := svc.Reconcile(ctx, created.ID, "owner-2", Patch{Title: "Hijack"})
	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))
	assert.Equal(t, "OK", repo.byID[created.ID].Title)
	assert.Equal(t, "owner-1", repo.byID[created.ID].OwnerID)
}

func TestService_Reconcile_UnknownIDIsNotFound(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	_, err := svc.Reconcile(context.Background(), "missing", "owner-1", validPatch())
	assert.True(t, errdef.IsNotFound(err))
}

func TestService_Reconcile_PropagatesStoreErrors(t *testing.T) {
	repo := &failingRepo{testRepo: *newTestRepo()}
	svc := NewService(repo, Options{})

	_, err := svc.Reconcile(context.Background(), "", "owner-1", validPatch())
	assert.ErrorIs(t, err, errStore)
}

func TestService_Reconcile_FutureDateRule(t *testing.T) {
	svc, _ := newTestService(t, Options{RequireFutureDate: true})
	ctx := context.Background()

	p := validPatch()
	p.EventDate = "2020-01-01"
	_, err := svc.Reconcile(ctx, "", "owner-1", p)
	requireValidation(t, err, "fechaEvento")

	p.EventDate = "mañana"
	_, err = svc.Reconcile(ctx, "", "owner-1", p)
	requireValidation(t, err, "fechaEvento")

	// hoy cuenta como válida
	p.EventDate = "10/03/2026"
	_, err = svc.Reconcile(ctx, "", "owner-1", p)
	require.NoError(t, err)

	p.EventDate = "2027-01-01T10:00:00Z"
	_, err = svc.Reconcile(ctx, "", "owner-1", p)
	require.NoError(t, err)
}

func TestService_Reconcile_PastDateAllowedByDefault(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	p := validPatch()
	p.EventDate = "2020-01-01"
	_, err := svc.Reconcile(context.Background(), "", "owner-1", p)
	require.NoError(t, err)
}

func TestService_FindByOwner_ScopedAndNeverNil(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()

	a1 := createEvent(t, svc, "owner-a")
	a2 := createEvent(t, svc, "owner-a")
	createEvent(t, svc, "owner-b")

	got, err := svc.FindByOwner(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a1.ID, got[0].ID)
	assert.Equal(t, a2.ID, got[1].ID)

	none, err := svc.FindByOwner(ctx, "owner-c")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestService_FindByID_NotFoundCases(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()

	e := createEvent(t, svc, "owner-a")

	got, err := svc.FindByID(ctx, "owner-a", e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)

	_, err = svc.FindByID(ctx, "owner-b", e.ID)
	assert.True(t, errdef.IsNotFound(err), "wrong owner")

	_, err = svc.FindByID(ctx, "owner-a", "nope")
	assert.True(t, errdef.IsNotFound(err), "nonexistent id")

	_, err = svc.FindByID(ctx, "owner-a", "")
	assert.True(t, errdef.IsNotFound(err), "empty id")
}

func TestService_Remove_SoftDeletes(t *testing.T) {
	svc, repo := newTestService(t, Options{})
	ctx := context.Background()

	e := createEvent(t, svc, "owner-a")

	require.NoError(t, svc.Remove(ctx, "owner-a", e.ID))

	_, err := svc.FindByID(ctx, "owner-a", e.ID)
	assert.True(t, errdef.IsNotFound(err))

	list, err := svc.FindByOwner(ctx, "owner-a")
	require.NoError(t, err)
	assert.Empty(t, list)

	// sigue persistido, solo deshabilitado
	stored, ok := repo.byID[e.ID]
	require.True(t, ok)
	assert.False(t, stored.Enabled)

	err = svc.Remove(ctx, "owner-a", e.ID)
	assert.True(t, errdef.IsNotFound(err), "second remove")
}

func TestService_Remove_WrongOwner(t *testing.T) {
	svc, repo := newTestService(t, Options{})

	e := createEvent(t, svc, "owner-a")

	err := svc.Remove(context.Background(), "owner-b", e.ID)
	assert.True(t, errdef.IsNotFound(err))
	assert.True(t, repo.byID[e.ID].Enabled)
}

func TestService_UpdatePicture(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()

	e := createEvent(t, svc, "owner-a")

	updated, err := svc.UpdatePicture(ctx, "owner-a", e.ID, "img-1")
	require.NoError(t, err)
	assert.Equal(t, "img-1", updated.Picture)
	assert.Equal(t, e.Title, updated.Title)
	assert.Equal(t, e.Venue, updated.Venue)

	_, err = svc.UpdatePicture(ctx, "owner-a", e.ID, "")
	requireValidation(t, err, "image")
}

func TestService_UpdatePicture_MissingEventHasNoFallback(t *testing.T) {
	svc, repo := newTestService(t, Options{})

	_, err := svc.UpdatePicture(context.Background(), "owner-a", "missing", "img-1")
	assert.True(t, errdef.IsNotFound(err))
	assert.Empty(t, repo.byID)
}
