package view

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/dmitrijs2005/userdirectory/internal/client/client"
	"github.com/dmitrijs2005/userdirectory/internal/client/models"
)

// localIDSpace bounds ids handed to locally-only records.
const localIDSpace = 10000

var (
	ErrFormInvalid  = errors.New(msgNamesRequired)
	ErrUnknownField = errors.New(msgUnknownField)
	ErrNoCandidate  = errors.New(msgNoSuchImported)
	ErrNotDeletable = errors.New("imported candidates cannot be deleted")
)

// DemoFetcher supplies import candidates.
type DemoFetcher interface {
	Fetch(ctx context.Context) ([]models.User, error)
}

// Directory is safe for concurrent use. Overlapping calls are allowed; each
// collection carries a generation counter so only the response of the most
// recently started call is applied.
type Directory struct {
	api  client.Client
	demo DemoFetcher

	mu        sync.Mutex
	state     State
	serverGen uint64
	importGen uint64
	// loadTok identifies the call that last set StatusLoading; serverTok
	// is the token of the most recent Load.
	loadTok   uint64
	serverTok uint64
	notices   []Notice

	// randID is a seam for tests.
	randID func() int64
}

func NewDirectory(api client.Client, demo DemoFetcher) *Directory {
	return &Directory{
		api:    api,
		demo:   demo,
		state:  State{Status: StatusReady},
		randID: func() int64 { return rand.Int64N(localIDSpace) },
	}
}

// State returns a copy of the current state.
func (d *Directory) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.state
	s.Server = slices.Clone(s.Server)
	s.Local = slices.Clone(s.Local)
	s.Imported = slices.Clone(s.Imported)
	return s
}

// Load fetches the server-backed list and replaces it wholesale.
// A failure puts the view in the error state with a blocking message.
func (d *Directory) Load(ctx context.Context) error {
	d.mu.Lock()
	d.serverGen++
	gen := d.serverGen
	d.serverTok = d.beginLoading()
	d.state.Error = ""
	d.mu.Unlock()

	users, err := d.api.List(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.serverGen {
		return err
	}
	if err != nil {
		d.state.Status = StatusError
		d.state.Error = msgFetchFailed
		return err
	}
	d.state.Server = users
	d.state.Status = StatusReady
	return nil
}

// Refresh re-fetches the server-backed list.
func (d *Directory) Refresh(ctx context.Context) error {
	return d.Load(ctx)
}

// Import fetches demo candidates and replaces the imported list.
func (d *Directory) Import(ctx context.Context) error {
	d.mu.Lock()
	d.importGen++
	gen := d.importGen
	d.beginLoading()
	d.state.Error = ""
	d.mu.Unlock()

	users, err := d.demo.Fetch(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.importGen {
		return err
	}
	if err != nil {
		d.state.Status = StatusError
		d.state.Error = msgImportFailed
		return err
	}
	d.state.Imported = users
	d.state.Status = StatusReady
	return nil
}

func (d *Directory) OpenForm() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.FormOpen = true
}

// SetField updates one draft field by its JSON name.
func (d *Directory) SetField(name, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	f := &d.state.Form
	switch name {
	case "firstName":
		f.FirstName = value
	case "lastName":
		f.LastName = value
	case "companyName":
		f.CompanyName = value
	case "role":
		f.Role = value
	case "country":
		f.Country = value
	default:
		return ErrUnknownField
	}
	return nil
}

// CancelForm closes the form and discards the draft.
func (d *Directory) CancelForm() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resetForm()
}

// Submit creates the drafted user in the store. A draft without first or
// last name is rejected locally with a notice and no call. On success the
// server list is re-fetched in full and the form is reset.
func (d *Directory) Submit(ctx context.Context) error {
	d.mu.Lock()
	draft := d.state.Form
	if draft.FirstName == "" || draft.LastName == "" {
		d.notify(NoticeError, msgNamesRequired)
		d.mu.Unlock()
		return ErrFormInvalid
	}
	prev := d.state.Status
	tok := d.beginLoading()
	d.mu.Unlock()

	if _, err := d.api.Create(ctx, draft); err != nil {
		d.mu.Lock()
		d.notify(NoticeError, msgAddFailed)
		d.endLoading(tok, prev)
		d.mu.Unlock()
		return err
	}

	d.mu.Lock()
	d.notify(NoticeSuccess, msgAdded)
	d.mu.Unlock()

	err := d.Load(ctx)

	d.mu.Lock()
	d.resetForm()
	d.mu.Unlock()
	return err
}

// AddLocal prepends u to the locally-only list under a random id and
// returns the stored copy. Nothing is sent to the server.
func (d *Directory) AddLocal(u models.User) models.User {
	d.mu.Lock()
	defer d.mu.Unlock()

	u.ID = d.randID()
	d.state.Local = append([]models.User{u}, d.state.Local...)
	d.notify(NoticeInfo, msgAddedLocally)
	return u
}

// Delete removes a record. Server records are deleted through the API and,
// on success, dropped from the client-side copy without a re-fetch. Local
// records are dropped from memory only. Imported candidates cannot be
// deleted.
func (d *Directory) Delete(ctx context.Context, origin models.Origin, id int64) error {
	switch origin {
	case models.OriginLocal:
		d.mu.Lock()
		d.state.Local = slices.DeleteFunc(d.state.Local, func(u models.User) bool { return u.ID == id })
		d.mu.Unlock()
		return nil
	case models.OriginServer:
	default:
		return ErrNotDeletable
	}

	if err := d.api.Delete(ctx, id); err != nil {
		d.mu.Lock()
		d.notify(NoticeError, msgDeleteFailed)
		d.mu.Unlock()
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	// an older in-flight load must not resurrect the deleted row
	d.serverGen++
	d.state.Server = slices.DeleteFunc(slices.Clone(d.state.Server), func(u models.User) bool { return u.ID == id })
	// only the superseded Load's spinner is ours to clear
	d.endLoading(d.serverTok, StatusReady)
	return nil
}

// Promote submits the imported candidate at index as a new user. The
// candidate stays in the imported list.
func (d *Directory) Promote(ctx context.Context, index int) error {
	d.mu.Lock()
	if index < 0 || index >= len(d.state.Imported) {
		d.mu.Unlock()
		return ErrNoCandidate
	}
	candidate := d.state.Imported[index]
	prev := d.state.Status
	tok := d.beginLoading()
	d.mu.Unlock()

	if _, err := d.api.Create(ctx, candidate); err != nil {
		d.mu.Lock()
		d.notify(NoticeError, msgPromoteFailed)
		d.endLoading(tok, prev)
		d.mu.Unlock()
		return err
	}

	d.mu.Lock()
	d.notify(NoticeSuccess, msgPromoted)
	d.mu.Unlock()

	err := d.Load(ctx)

	d.mu.Lock()
	d.resetForm()
	d.mu.Unlock()
	return err
}

func (d *Directory) SetSearch(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Search = term
}

// Visible returns the rows to render. Only the server list is filtered by
// the search term.
func (d *Directory) Visible() Rows {
	d.mu.Lock()
	defer d.mu.Unlock()

	return Rows{
		Local:    tag(d.state.Local, models.OriginLocal),
		Server:   tag(Filter(d.state.Server, d.state.Search), models.OriginServer),
		Imported: tag(d.state.Imported, models.OriginImported),
	}
}

// Notices drains pending notifications.
func (d *Directory) Notices() []Notice {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := d.notices
	d.notices = nil
	return n
}

// beginLoading marks the view as loading on behalf of a new call and
// returns that call's token. Callers hold d.mu.
func (d *Directory) beginLoading() uint64 {
	d.loadTok++
	d.state.Status = StatusLoading
	return d.loadTok
}

// endLoading sets status to next if the loading state still belongs to
// tok. Callers hold d.mu.
func (d *Directory) endLoading(tok uint64, next Status) {
	if d.state.Status == StatusLoading && d.loadTok == tok {
		d.state.Status = next
	}
}

func (d *Directory) notify(kind NoticeKind, text string) {
	d.notices = append(d.notices, Notice{Kind: kind, Text: text})
}

func (d *Directory) resetForm() {
	d.state.Form = models.User{}
	d.state.FormOpen = false
}
