//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"volunteer-hub/internal/domain/booking"
	"volunteer-hub/internal/domain/shift"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/infra/mailer"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the persistence layer. All
// repositories returned from the fake transaction share its maps, so
// command flows observe their own writes the way they would inside a
// real transaction.
type fakeStore struct {
	shifts     map[uuid.UUID]*shift.Shift
	shiftOrder []uuid.UUID
	bookings   map[uuid.UUID]*booking.Booking
	waitlist   []*shared.WaitlistEntry
	users      map[uuid.UUID]*shared.UserSnapshot
	events     map[uuid.UUID]*shared.EventSnapshot
	roles      map[uuid.UUID]*shared.RoleSnapshot
	jobs       []fakeJob
}

type fakeJob struct {
	Topic   string
	Payload mailer.JobPayload
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		shifts:   map[uuid.UUID]*shift.Shift{},
		bookings: map[uuid.UUID]*booking.Booking{},
		users:    map[uuid.UUID]*shared.UserSnapshot{},
		events:   map[uuid.UUID]*shared.EventSnapshot{},
		roles:    map[uuid.UUID]*shared.RoleSnapshot{},
	}
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func (f *fakeStore) addShift(s *shift.Shift) {
	f.shifts[s.ID()] = s
	f.shiftOrder = append(f.shiftOrder, s.ID())
}

func (f *fakeStore) jobTopics() []string {
	topics := make([]string, 0, len(f.jobs))
	for _, j := range f.jobs {
		topics = append(topics, j.Topic)
	}
	return topics
}

// fakeUoW satisfies shared.UnitOfWork by running the callback against the
// shared store with no transactional semantics.
type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Bookings() shared.BookingRepository           { return &fakeBookings{t.store} }
func (t *fakeTx) Shifts() shared.ShiftRepository               { return &fakeShifts{t.store} }
func (t *fakeTx) Waitlist() shared.WaitlistRepository          { return &fakeWaitlist{t.store} }
func (t *fakeTx) Users() shared.UserRepository                 { return &fakeUsers{t.store} }
func (t *fakeTx) Events() shared.EventRepository               { return &fakeEvents{t.store} }
func (t *fakeTx) Roles() shared.RoleRepository                 { return &fakeRoles{t.store} }
func (t *fakeTx) Notifications() shared.NotificationRepository { return &fakeNotifications{t.store} }
func (t *fakeTx) Reads() shared.CommandReads                   { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                                  { return nil }

type fakeBookings struct{ s *fakeStore }

func (r *fakeBookings) Create(_ context.Context, b *booking.Booking) error {
	r.s.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookings) UpdateState(_ context.Context, b *booking.Booking) error {
	r.s.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookings) FindActiveByUserAndShift(_ context.Context, userID, shiftID uuid.UUID) (*booking.Booking, error) {
	for _, b := range r.s.bookings {
		if b.UserID() == userID && b.ShiftID() != nil && *b.ShiftID() == shiftID && b.Status().IsActive() {
			return b, nil
		}
	}
	return nil, notFound()
}

func (r *fakeBookings) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, notFound()
	}
	return b, nil
}

func (r *fakeBookings) FindWaitlistedByUserAndShift(_ context.Context, userID, shiftID uuid.UUID) (*booking.Booking, error) {
	for _, b := range r.s.bookings {
		if b.UserID() == userID && b.ShiftID() != nil && *b.ShiftID() == shiftID && b.Status() == booking.StatusWaitlist {
			return b, nil
		}
	}
	return nil, notFound()
}

func (r *fakeBookings) CountByShiftAndStatuses(_ context.Context, shiftID uuid.UUID, statuses ...booking.Status) (int, error) {
	n := 0
	for _, b := range r.s.bookings {
		if b.ShiftID() == nil || *b.ShiftID() != shiftID {
			continue
		}
		for _, st := range statuses {
			if b.Status() == st {
				n++
				break
			}
		}
	}
	return n, nil
}

func (r *fakeBookings) FindByShiftAndStatuses(_ context.Context, shiftID uuid.UUID, statuses ...booking.Status) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.s.bookings {
		if b.ShiftID() == nil || *b.ShiftID() != shiftID {
			continue
		}
		for _, st := range statuses {
			if b.Status() == st {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeBookings) CountConfirmedForUsers(_ context.Context, shiftID uuid.UUID, userIDs []uuid.UUID) (int, error) {
	n := 0
	for _, b := range r.s.bookings {
		if b.ShiftID() == nil || *b.ShiftID() != shiftID || !b.OccupiesSlot() {
			continue
		}
		for _, id := range userIDs {
			if b.UserID() == id {
				n++
				break
			}
		}
	}
	return n, nil
}

func (r *fakeBookings) CountActiveByUserAndEvent(_ context.Context, userID, eventID uuid.UUID) (int, error) {
	n := 0
	for _, b := range r.s.bookings {
		if b.UserID() == userID && b.EventID() == eventID && b.Status().IsActive() {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookings) CountActiveByShift(_ context.Context, shiftID uuid.UUID) (int, error) {
	n := 0
	for _, b := range r.s.bookings {
		if b.ShiftID() != nil && *b.ShiftID() == shiftID && b.Status().IsActive() {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookings) CountByEvent(_ context.Context, eventID uuid.UUID) (int, error) {
	n := 0
	for _, b := range r.s.bookings {
		if b.EventID() == eventID {
			n++
		}
	}
	return n, nil
}

type fakeShifts struct{ s *fakeStore }

func (r *fakeShifts) Create(_ context.Context, s *shift.Shift) error {
	r.s.addShift(s)
	return nil
}

func (r *fakeShifts) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*shift.Shift, error) {
	s, ok := r.s.shifts[id]
	if !ok {
		return nil, notFound()
	}
	return s, nil
}

func (r *fakeShifts) FindBySlotGroup(_ context.Context, slotGroupID uuid.UUID) ([]*shift.Shift, error) {
	var out []*shift.Shift
	for _, id := range r.s.shiftOrder {
		s, ok := r.s.shifts[id]
		if ok && s.SlotGroupID() == slotGroupID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShifts) Update(_ context.Context, s *shift.Shift) error {
	r.s.shifts[s.ID()] = s
	return nil
}

func (r *fakeShifts) UpdateCoordinators(_ context.Context, _ uuid.UUID, _ []uuid.UUID) error {
	return nil
}

func (r *fakeShifts) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.shifts, id)
	return nil
}

func (r *fakeShifts) CountCoordinatorAssignments(_ context.Context, userID uuid.UUID) (int, error) {
	n := 0
	for _, s := range r.s.shifts {
		if s.HasCoordinator(userID) {
			n++
		}
	}
	return n, nil
}

func (r *fakeShifts) CountCoordinatorAssignmentsForEvent(_ context.Context, userID, eventID uuid.UUID) (int, error) {
	n := 0
	for _, s := range r.s.shifts {
		if s.EventID() == eventID && s.HasCoordinator(userID) {
			n++
		}
	}
	return n, nil
}

func (r *fakeShifts) CountByRole(_ context.Context, roleID uuid.UUID) (int, error) {
	n := 0
	for _, s := range r.s.shifts {
		if s.RoleID() == roleID {
			n++
		}
	}
	return n, nil
}

type fakeWaitlist struct{ s *fakeStore }

func (r *fakeWaitlist) Create(_ context.Context, e *shared.WaitlistEntry) error {
	r.s.waitlist = append(r.s.waitlist, e)
	return nil
}

func (r *fakeWaitlist) CountByShift(_ context.Context, shiftID uuid.UUID) (int, error) {
	n := 0
	for _, e := range r.s.waitlist {
		if e.ShiftID == shiftID {
			n++
		}
	}
	return n, nil
}

func (r *fakeWaitlist) FindNextByShift(_ context.Context, shiftID uuid.UUID) (*shared.WaitlistEntry, error) {
	var candidates []*shared.WaitlistEntry
	for _, e := range r.s.waitlist {
		if e.ShiftID == shiftID {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return nil, notFound()
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Position < candidates[j].Position })
	return candidates[0], nil
}

func (r *fakeWaitlist) Delete(_ context.Context, id uuid.UUID) error {
	for i, e := range r.s.waitlist {
		if e.ID == id {
			r.s.waitlist = append(r.s.waitlist[:i], r.s.waitlist[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeWaitlist) DeleteByUserAndShift(_ context.Context, userID, shiftID uuid.UUID) error {
	for i, e := range r.s.waitlist {
		if e.UserID == userID && e.ShiftID == shiftID {
			r.s.waitlist = append(r.s.waitlist[:i], r.s.waitlist[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeUsers struct{ s *fakeStore }

func (r *fakeUsers) UpdateRole(_ context.Context, userID uuid.UUID, role string) error {
	u, ok := r.s.users[userID]
	if !ok {
		return notFound()
	}
	u.Role = role
	return nil
}

func (r *fakeUsers) UpdateLastLogin(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (r *fakeUsers) Create(_ context.Context, params shared.CreateUserParams) (uuid.UUID, error) {
	id := uuid.New()
	r.s.users[id] = &shared.UserSnapshot{
		ID:       id,
		DNI:      params.DNI,
		FullName: params.FullName,
		Email:    params.Email,
		Phone:    params.Phone,
		Role:     params.Role,
		Status:   "active",
	}
	return id, nil
}

type fakeEvents struct{ s *fakeStore }

func (r *fakeEvents) Create(_ context.Context, params shared.CreateEventParams) (uuid.UUID, error) {
	for _, e := range r.s.events {
		if e.Slug == params.Slug {
			return uuid.Nil, infra.WrapRepoErr("duplicate slug", nil, infra.KindDuplicateKey)
		}
	}
	id := uuid.New()
	r.s.events[id] = &shared.EventSnapshot{
		ID:        id,
		Slug:      params.Slug,
		Name:      params.Name,
		Location:  params.Location,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		State:     params.State,
	}
	return id, nil
}

func (r *fakeEvents) Update(_ context.Context, id uuid.UUID, params shared.UpdateEventParams) error {
	e, ok := r.s.events[id]
	if !ok {
		return notFound()
	}
	if params.Name != nil {
		e.Name = *params.Name
	}
	if params.State != nil {
		e.State = *params.State
	}
	return nil
}

func (r *fakeEvents) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.events[id]; !ok {
		return notFound()
	}
	delete(r.s.events, id)
	return nil
}

type fakeRoles struct{ s *fakeStore }

func (r *fakeRoles) Create(_ context.Context, params shared.CreateRoleParams) (uuid.UUID, error) {
	id := uuid.New()
	r.s.roles[id] = &shared.RoleSnapshot{
		ID:               id,
		EventID:          params.EventID,
		Name:             params.Name,
		RequiresApproval: params.RequiresApproval,
		IsVisible:        params.IsVisible,
	}
	return id, nil
}

func (r *fakeRoles) Update(_ context.Context, id uuid.UUID, params shared.UpdateRoleParams) error {
	role, ok := r.s.roles[id]
	if !ok {
		return notFound()
	}
	if params.Name != nil {
		role.Name = *params.Name
	}
	if params.RequiresApproval != nil {
		role.RequiresApproval = *params.RequiresApproval
	}
	return nil
}

func (r *fakeRoles) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.roles[id]; !ok {
		return notFound()
	}
	delete(r.s.roles, id)
	return nil
}

type fakeNotifications struct{ s *fakeStore }

func (r *fakeNotifications) CreateJob(_ context.Context, _, topic string, payload []byte, _ time.Time) error {
	var p mailer.JobPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return err
	}
	r.s.jobs = append(r.s.jobs, fakeJob{Topic: topic, Payload: p})
	return nil
}

type fakeReads struct{ store *fakeStore }

func (r *fakeReads) ShiftByID(_ context.Context, id uuid.UUID) (*shared.ShiftSnapshot, error) {
	s, ok := r.store.shifts[id]
	if !ok {
		return nil, notFound()
	}
	return &shared.ShiftSnapshot{
		ID:             s.ID(),
		EventID:        s.EventID(),
		RoleID:         s.RoleID(),
		SlotGroupID:    s.SlotGroupID(),
		Date:           s.Date(),
		TimeWindow:     s.Window().String(),
		TotalVacancies: s.TotalVacancies(),
		CoordinatorIDs: s.CoordinatorIDs(),
	}, nil
}

func (r *fakeReads) RoleByID(_ context.Context, id uuid.UUID) (*shared.RoleSnapshot, error) {
	role, ok := r.store.roles[id]
	if !ok {
		return nil, notFound()
	}
	return role, nil
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, notFound()
	}
	return &shared.BookingSnapshot{
		ID:          b.ID(),
		UserID:      b.UserID(),
		ShiftID:     b.ShiftID(),
		EventID:     b.EventID(),
		Status:      b.Status().String(),
		Attendance:  string(b.Attendance()),
		RequestedAt: b.RequestedAt(),
		CancelledAt: b.CancelledAt(),
	}, nil
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, notFound()
	}
	return u, nil
}

func (r *fakeReads) EventByID(_ context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	e, ok := r.store.events[id]
	if !ok {
		return nil, notFound()
	}
	return e, nil
}
