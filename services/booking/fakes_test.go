package booking

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Present111/Hotel-Booking/database/repository"
	bookingRepo "github.com/Present111/Hotel-Booking/database/repository/booking"
	"github.com/Present111/Hotel-Booking/models"
	"github.com/Present111/Hotel-Booking/services/payment"

	"github.com/google/uuid"
)

type fakeBookings struct {
	mu        sync.Mutex
	items     map[string]models.Booking
	createErr error
	deleteErr error
	// onCommit runs after a create or delete has been stored.
	onCommit func()
}

func newFakeBookings() *fakeBookings {
	return &fakeBookings{items: map[string]models.Booking{}}
}

func (f *fakeBookings) Create(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if b.PaymentIntentID != "" {
		for _, existing := range f.items {
			if existing.PaymentIntentID == b.PaymentIntentID {
				return repository.ErrDuplicate
			}
		}
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	f.items[b.ID] = *b
	if f.onCommit != nil {
		f.onCommit()
	}
	return nil
}

func (f *fakeBookings) GetByID(_ context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (f *fakeBookings) GetByPaymentIntentID(_ context.Context, intentID string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.items {
		if b.PaymentIntentID == intentID {
			b := b
			return &b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBookings) filter(keep func(models.Booking) bool) []models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Booking{}
	for _, b := range f.items {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeBookings) GetAll(context.Context) ([]models.Booking, error) {
	return f.filter(func(models.Booking) bool { return true }), nil
}

func (f *fakeBookings) GetByHotel(_ context.Context, hotelID string) ([]models.Booking, error) {
	return f.filter(func(b models.Booking) bool { return b.HotelID == hotelID }), nil
}

func (f *fakeBookings) GetByUser(_ context.Context, userID string) ([]models.Booking, error) {
	return f.filter(func(b models.Booking) bool { return b.UserID == userID }), nil
}

func (f *fakeBookings) Update(_ context.Context, id string, m bookingRepo.Mutation) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for k, v := range m.Set {
		switch k {
		case "status":
			b.Status = v.(models.BookingStatus)
		case "paymentStatus":
			b.PaymentStatus = v.(models.PaymentStatus)
		case "paymentMethod":
			b.PaymentMethod = v.(string)
		case "cancellationReason":
			b.CancellationReason = v.(string)
		case "refundAmount":
			amount := v.(float64)
			b.RefundAmount = &amount
		case "updatedAt":
			b.UpdatedAt = v.(time.Time)
		default:
			return nil, errors.New("unexpected field " + k)
		}
	}
	for _, k := range m.Unset {
		switch k {
		case "cancellationReason":
			b.CancellationReason = ""
		case "refundAmount":
			b.RefundAmount = nil
		default:
			return nil, errors.New("unexpected unset " + k)
		}
	}
	if m.Event != nil {
		b.History = append(b.History, *m.Event)
	}
	f.items[id] = b
	return &b, nil
}

func (f *fakeBookings) Delete(_ context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	b, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(f.items, id)
	if f.onCommit != nil {
		f.onCommit()
	}
	return &b, nil
}

func (f *fakeBookings) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

type fakeHotels struct {
	mu      sync.Mutex
	items   map[string]*models.Hotel
	incErrs []error
}

func newFakeHotels(hotels ...models.Hotel) *fakeHotels {
	f := &fakeHotels{items: map[string]*models.Hotel{}}
	for i := range hotels {
		h := hotels[i]
		f.items[h.ID] = &h
	}
	return f
}

func (f *fakeHotels) GetByID(_ context.Context, id string) (*models.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (f *fakeHotels) GetByIDs(_ context.Context, ids []string) (map[string]models.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]models.Hotel{}
	for _, id := range ids {
		if h, ok := f.items[id]; ok {
			out[id] = *h
		}
	}
	return out, nil
}

func (f *fakeHotels) GetSummaries(_ context.Context, ids []string) (map[string]models.HotelSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]models.HotelSummary{}
	for _, id := range ids {
		if h, ok := f.items[id]; ok {
			out[id] = models.HotelSummary{ID: h.ID, Name: h.Name, City: h.City, Country: h.Country, ImageURLs: h.ImageURLs}
		}
	}
	return out, nil
}

func (f *fakeHotels) IncrementTotals(ctx context.Context, id string, bookings int, revenue float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.incErrs) > 0 {
		err := f.incErrs[0]
		f.incErrs = f.incErrs[1:]
		if err != nil {
			return err
		}
	}
	h, ok := f.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	h.TotalBookings += bookings
	h.TotalRevenue += revenue
	return nil
}

func (f *fakeHotels) totals(id string) (int, float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h := f.items[id]
	return h.TotalBookings, h.TotalRevenue
}

type fakeUsers struct {
	mu      sync.Mutex
	items   map[string]*models.User
	incErrs []error
}

func newFakeUsers(users ...models.User) *fakeUsers {
	f := &fakeUsers{items: map[string]*models.User{}}
	for i := range users {
		u := users[i]
		f.items[u.ID] = &u
	}
	return f
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) GetSummaries(_ context.Context, ids []string) (map[string]models.UserSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]models.UserSummary{}
	for _, id := range ids {
		if u, ok := f.items[id]; ok {
			out[id] = models.UserSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
		}
	}
	return out, nil
}

func (f *fakeUsers) IncrementTotals(ctx context.Context, id string, bookings int, spent float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.incErrs) > 0 {
		err := f.incErrs[0]
		f.incErrs = f.incErrs[1:]
		if err != nil {
			return err
		}
	}
	u, ok := f.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.TotalBookings += bookings
	u.TotalSpent += spent
	return nil
}

func (f *fakeUsers) totals(id string) (int, float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.items[id]
	return u.TotalBookings, u.TotalSpent
}

type fakeGateway struct {
	mu        sync.Mutex
	intents   map[string]*payment.Intent
	created   []payment.CreateIntentParams
	createErr error
	getErr    error
	noSecret  bool
	gets      int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{intents: map[string]*payment.Intent{}}
}

func (g *fakeGateway) CreateIntent(_ context.Context, p payment.CreateIntentParams) (*payment.Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.created = append(g.created, p)
	id := "pi_" + uuid.New().String()
	intent := &payment.Intent{
		ID:           id,
		Amount:       p.Amount,
		Currency:     p.Currency,
		Status:       payment.IntentStatusRequiresPaymentMethod,
		ClientSecret: id + "_secret",
		Metadata:     p.Metadata,
	}
	if g.noSecret {
		intent.ClientSecret = ""
	}
	g.intents[id] = intent
	cp := *intent
	return &cp, nil
}

func (g *fakeGateway) GetIntent(_ context.Context, id string) (*payment.Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gets++
	if g.getErr != nil {
		return nil, g.getErr
	}
	intent, ok := g.intents[id]
	if !ok {
		return nil, payment.ErrIntentNotFound
	}
	cp := *intent
	return &cp, nil
}

// put stores an intent as if a client had created and confirmed it.
func (g *fakeGateway) put(intent payment.Intent) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.intents[intent.ID] = &intent
}

func (g *fakeGateway) setStatus(id string, status payment.IntentStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.intents[id].Status = status
}

type fakeLocker struct {
	mu   sync.Mutex
	held map[string]bool
	err  error
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: map[string]bool{}}
}

func (l *fakeLocker) Acquire(_ context.Context, intentID string) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, false, l.err
	}
	if l.held[intentID] {
		return func() {}, false, nil
	}
	l.held[intentID] = true
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, intentID)
	}, true, nil
}

type fakeRetryQueue struct {
	mu       sync.Mutex
	payloads []models.LedgerPayload
	err      error
}

func (q *fakeRetryQueue) EnqueueLedgerRetry(ctx context.Context, p models.LedgerPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.payloads = append(q.payloads, p)
	return nil
}
