package usecases

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"rental-server/entities"
	"rental-server/query"
	"rental-server/repositories"
)

var errStorage = errors.New("connection reset")

type mockUserRepository struct {
	users map[uint]*entities.User
	calls atomic.Int64
}

func newMockUserRepository(ids ...uint) *mockUserRepository {
	m := &mockUserRepository{users: make(map[uint]*entities.User)}
	for _, id := range ids {
		m.users[id] = &entities.User{UserID: id, FirstName: "User", Surname: "Number"}
	}
	return m
}

func (m *mockUserRepository) GetByID(_ context.Context, id uint) (*entities.User, error) {
	m.calls.Add(1)
	user, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepository) Exists(_ context.Context, id uint) (bool, error) {
	m.calls.Add(1)
	_, ok := m.users[id]
	return ok, nil
}

func (m *mockUserRepository) Update(_ context.Context, id uint, fields map[string]interface{}) (*entities.User, error) {
	m.calls.Add(1)
	user, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	for k, v := range fields {
		s := v.(string)
		switch k {
		case "first_name":
			user.FirstName = s
		case "surname":
			user.Surname = s
		case "email":
			user.Email = s
		case "phone_number":
			user.PhoneNumber = s
		case "avatar":
			user.Avatar = s
		}
	}
	return user, nil
}

type mockPropertyRepository struct {
	ids       map[uint]bool
	summaries []entities.PropertySummary
	listed    *query.Listing
	calls     atomic.Int64
}

func newMockPropertyRepository(ids ...uint) *mockPropertyRepository {
	m := &mockPropertyRepository{ids: make(map[uint]bool)}
	for _, id := range ids {
		m.ids[id] = true
	}
	return m
}

func (m *mockPropertyRepository) List(_ context.Context, listing query.Listing) ([]entities.PropertySummary, error) {
	m.calls.Add(1)
	m.listed = &listing
	return m.summaries, nil
}

func (m *mockPropertyRepository) GetDetail(_ context.Context, id uint) (*entities.PropertyDetail, error) {
	m.calls.Add(1)
	if !m.ids[id] {
		return nil, repositories.ErrNotFound
	}
	return &entities.PropertyDetail{PropertyID: id, PropertyName: "Cosy Family House"}, nil
}

func (m *mockPropertyRepository) Exists(_ context.Context, id uint) (bool, error) {
	m.calls.Add(1)
	return m.ids[id], nil
}

func (m *mockPropertyRepository) ListImages(_ context.Context, _ uint) ([]entities.ImageSummary, error) {
	return nil, nil
}

type mockPropertyTypeRepository struct {
	names []string
	err   error
}

func (m *mockPropertyTypeRepository) ListNames(context.Context) ([]string, error) {
	return m.names, m.err
}

type favouriteKey struct{ guest, property uint }

type mockFavouriteRepository struct {
	mu        sync.Mutex
	pairs     map[favouriteKey]bool
	createErr error
	nextID    uint
}

func newMockFavouriteRepository() *mockFavouriteRepository {
	return &mockFavouriteRepository{pairs: make(map[favouriteKey]bool)}
}

func (m *mockFavouriteRepository) Exists(_ context.Context, guestID, propertyID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pairs[favouriteKey{guestID, propertyID}], nil
}

func (m *mockFavouriteRepository) Create(_ context.Context, f *entities.Favourite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	key := favouriteKey{f.GuestID, f.PropertyID}
	if m.pairs[key] {
		return repositories.ErrDuplicate
	}
	m.nextID++
	f.FavouriteID = m.nextID
	m.pairs[key] = true
	return nil
}

func (m *mockFavouriteRepository) Delete(_ context.Context, guestID, propertyID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := favouriteKey{guestID, propertyID}
	existed := m.pairs[key]
	delete(m.pairs, key)
	return existed, nil
}

func (m *mockFavouriteRepository) count(propertyID uint) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for k := range m.pairs {
		if k.property == propertyID {
			n++
		}
	}
	return n
}

type mockReviewRepository struct {
	reviews   map[uint]*entities.Review
	createErr error
	nextID    uint
}

func newMockReviewRepository() *mockReviewRepository {
	return &mockReviewRepository{reviews: make(map[uint]*entities.Review)}
}

func (m *mockReviewRepository) ListByProperty(_ context.Context, propertyID uint) ([]entities.ReviewSummary, error) {
	var out []entities.ReviewSummary
	for _, r := range m.reviews {
		if r.PropertyID == propertyID {
			out = append(out, entities.ReviewSummary{ReviewID: r.ReviewID, Rating: r.Rating, Comment: r.Comment})
		}
	}
	return out, nil
}

func (m *mockReviewRepository) GetByID(_ context.Context, id uint) (*entities.Review, error) {
	r, ok := m.reviews[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return r, nil
}

func (m *mockReviewRepository) Create(_ context.Context, r *entities.Review) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	r.ReviewID = m.nextID
	m.reviews[r.ReviewID] = r
	return nil
}

func (m *mockReviewRepository) Delete(_ context.Context, id uint) error {
	if _, ok := m.reviews[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.reviews, id)
	return nil
}

type mockAggregateRepository struct {
	favourites *mockFavouriteRepository
	reviews    *mockReviewRepository
}

func (m *mockAggregateRepository) FavouriteCount(_ context.Context, propertyID uint) (int64, error) {
	if m.favourites == nil {
		return 0, nil
	}
	return m.favourites.count(propertyID), nil
}

func (m *mockAggregateRepository) RatingSummary(_ context.Context, propertyID uint) (entities.RatingSummary, error) {
	summary := entities.RatingSummary{PropertyID: propertyID}
	if m.reviews == nil {
		return summary, nil
	}
	total := 0
	for _, r := range m.reviews.reviews {
		if r.PropertyID == propertyID {
			summary.Count++
			total += r.Rating
		}
	}
	if summary.Count > 0 {
		summary.Average = entities.AverageRating{Value: float64(total) / float64(summary.Count), Valid: true}
	}
	return summary, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entities.Event
}

func (p *recordingPublisher) Publish(event entities.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}
