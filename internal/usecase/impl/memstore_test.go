package impl

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"allergo/internal/domain/entity"
	domainerrors "allergo/internal/domain/errors"
	"allergo/internal/domain/repository"

	"github.com/google/uuid"
)

// testClock is a settable clock shared by the store and the services under test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Now().Truncate(time.Second)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// memState is everything the store keeps. It is copied wholesale to roll back a transaction.
type memState struct {
	users           []entity.User
	profiles        map[uuid.UUID]entity.Profile
	allergens       map[uuid.UUID][]int
	sessions        []entity.Session
	codes           []entity.OneTimeCode
	resetTokens     []entity.ResetToken
	ingredients     []entity.Ingredient
	foods           []entity.Food
	foodIngredients map[int][]int
}

func (s memState) clone() memState {
	return memState{
		users:           slices.Clone(s.users),
		profiles:        maps.Clone(s.profiles),
		allergens:       maps.Clone(s.allergens),
		sessions:        slices.Clone(s.sessions),
		codes:           slices.Clone(s.codes),
		resetTokens:     slices.Clone(s.resetTokens),
		ingredients:     slices.Clone(s.ingredients),
		foods:           slices.Clone(s.foods),
		foodIngredients: maps.Clone(s.foodIngredients),
	}
}

// memStore is an in-memory stand-in for postgres. A transaction holds the store
// lock from start to commit, which makes every transaction serializable.
type memStore struct {
	mu    sync.Mutex
	state memState
	clock *testClock
}

var _ repository.TransactionManager = (*memStore)(nil)

func newMemStore(clock *testClock) *memStore {
	return &memStore{
		clock: clock,
		state: memState{
			profiles:        map[uuid.UUID]entity.Profile{},
			allergens:       map[uuid.UUID][]int{},
			foodIngredients: map[int][]int{},
		},
	}
}

func (s *memStore) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(memFactory{repo: &memRepo{store: s, inTx: true}}); err != nil {
		s.state = snapshot

		return err
	}

	return nil
}

// repo returns repositories that lock the store per call, as used outside transactions.
func (s *memStore) repo() *memRepo {
	return &memRepo{store: s}
}

type memFactory struct {
	repo *memRepo
}

func (f memFactory) UserRepo() repository.UserRepository             { return memUserRepo{f.repo} }
func (f memFactory) SessionRepo() repository.SessionRepository       { return memSessionRepo{f.repo} }
func (f memFactory) CodeRepo() repository.OneTimeCodeRepository      { return memCodeRepo{f.repo} }
func (f memFactory) ResetTokenRepo() repository.ResetTokenRepository { return memResetTokenRepo{f.repo} }
func (f memFactory) FoodRepo() repository.FoodRepository             { return memFoodRepo{f.repo} }
func (f memFactory) IngredientRepo() repository.IngredientRepository {
	return memIngredientRepo{f.repo}
}

type memRepo struct {
	store *memStore
	inTx  bool
}

// guard locks the store unless the caller already runs inside a transaction.
func (r *memRepo) guard() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.Lock()

	return r.store.mu.Unlock
}

func (r *memRepo) st() *memState {
	return &r.store.state
}

// --- users ---

type memUserRepo struct{ *memRepo }

func (r memUserRepo) Create(_ context.Context, user *entity.User) error {
	defer r.guard()()

	for _, u := range r.st().users {
		if u.Email == user.Email {
			return domainerrors.ErrDuplicateEmail
		}
	}

	now := r.store.clock.Now()
	user.ID = uuid.New()
	user.CreatedAt, user.UpdatedAt = now, now
	stored := *user
	stored.Profile, stored.Allergens = nil, nil
	r.st().users = append(r.st().users, stored)
	r.st().profiles[user.ID] = entity.Profile{UserID: user.ID, Name: user.DisplayName(), Avatar: user.AvatarURL()}

	return nil
}

func (r memUserRepo) find(match func(u *entity.User) bool) (*entity.User, int) {
	for i := range r.st().users {
		if match(&r.st().users[i]) {
			u := r.st().users[i]

			return &u, i
		}
	}

	return nil, -1
}

func (r memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	defer r.guard()()

	u, _ := r.find(func(u *entity.User) bool { return u.ID == id })
	if u == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	return u, nil
}

func (r memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	defer r.guard()()

	u, _ := r.find(func(u *entity.User) bool { return u.Email == email })
	if u == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	profile := r.st().profiles[u.ID]
	u.Profile = &profile

	return u, nil
}

func (r memUserRepo) FindDetailByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	defer r.guard()()

	u, _ := r.find(func(u *entity.User) bool { return u.ID == id })
	if u == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	profile := r.st().profiles[id]
	u.Profile = &profile
	u.Allergens = []*entity.Ingredient{}
	for _, ingredientID := range r.st().allergens[id] {
		for _, ing := range r.st().ingredients {
			if ing.ID == ingredientID {
				u.Allergens = append(u.Allergens, &ing)
			}
		}
	}

	return u, nil
}

func (r memUserRepo) update(id uuid.UUID, apply func(u *entity.User)) error {
	_, i := r.find(func(u *entity.User) bool { return u.ID == id })
	if i < 0 {
		return domainerrors.ErrUserNotFound
	}
	apply(&r.st().users[i])
	r.st().users[i].UpdatedAt = r.store.clock.Now()

	return nil
}

func (r memUserRepo) Activate(_ context.Context, id uuid.UUID) error {
	defer r.guard()()

	return r.update(id, func(u *entity.User) { u.IsActive = true })
}

func (r memUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	defer r.guard()()

	return r.update(id, func(u *entity.User) { u.PasswordHash = passwordHash })
}

func (r memUserRepo) UpdateEmail(_ context.Context, id uuid.UUID, email string) error {
	defer r.guard()()

	if other, _ := r.find(func(u *entity.User) bool { return u.Email == email && u.ID != id }); other != nil {
		return domainerrors.ErrDuplicateEmail
	}

	return r.update(id, func(u *entity.User) { u.Email = email })
}

func (r memUserRepo) UpdateProfile(_ context.Context, profile *entity.Profile) error {
	defer r.guard()()

	if _, ok := r.st().profiles[profile.UserID]; !ok {
		return domainerrors.ErrUserNotFound
	}
	r.st().profiles[profile.UserID] = *profile

	return nil
}

func (r memUserRepo) ReplaceAllergens(_ context.Context, id uuid.UUID, ingredientIDs []int) error {
	defer r.guard()()

	r.st().allergens[id] = slices.Clone(ingredientIDs)

	return nil
}

// --- sessions ---

type memSessionRepo struct{ *memRepo }

func (r memSessionRepo) Create(_ context.Context, session *entity.Session) error {
	defer r.guard()()

	for _, s := range r.st().sessions {
		if s.Key == session.Key {
			return domainerrors.ErrSessionConflict
		}
		if session.DeviceID != "" && s.IsActive && s.UserID == session.UserID && s.DeviceID == session.DeviceID {
			return domainerrors.ErrSessionConflict
		}
	}

	session.ID = uuid.New()
	session.CreatedAt = r.store.clock.Now()
	r.st().sessions = append(r.st().sessions, *session)

	return nil
}

func (r memSessionRepo) FindActiveByKey(_ context.Context, key string) (*entity.Session, error) {
	defer r.guard()()

	for _, s := range r.st().sessions {
		if s.Key == key && s.IsActive {
			for _, u := range r.st().users {
				if u.ID == s.UserID {
					s.UserRole = u.Role
				}
			}

			return &s, nil
		}
	}

	return nil, domainerrors.ErrSessionInvalid
}

func (r memSessionRepo) Rotate(_ context.Context, oldKey string, session *entity.Session, now time.Time) (bool, error) {
	defer r.guard()()

	for i := range r.st().sessions {
		s := &r.st().sessions[i]
		if s.Key != oldKey || !s.IsActive || !s.ExpiresAt.After(now) {
			continue
		}
		if session.DeviceID != "" {
			userID := s.UserID
			r.deactivate(func(o *entity.Session) bool {
				return o.UserID == userID && o.DeviceID == session.DeviceID && o.Key != oldKey
			})
		}
		for _, o := range r.st().sessions {
			if o.IsActive && o.Key != oldKey && (o.Key == session.Key ||
				(session.DeviceID != "" && o.UserID == s.UserID && o.DeviceID == session.DeviceID)) {
				return false, domainerrors.ErrSessionConflict
			}
		}
		s.Key = session.Key
		s.DeviceID = session.DeviceID
		s.DeviceName = session.DeviceName
		s.IP = session.IP
		s.ExpiresAt = session.ExpiresAt
		s.LastUsed = now

		return true, nil
	}

	return false, nil
}

func (r memSessionRepo) deactivate(match func(s *entity.Session) bool) int64 {
	var n int64
	for i := range r.st().sessions {
		s := &r.st().sessions[i]
		if s.IsActive && match(s) {
			s.IsActive = false
			n++
		}
	}

	return n
}

func (r memSessionRepo) DeactivateDevice(_ context.Context, userID uuid.UUID, deviceID string) (int64, error) {
	defer r.guard()()

	return r.deactivate(func(s *entity.Session) bool { return s.UserID == userID && s.DeviceID == deviceID }), nil
}

func (r memSessionRepo) DeactivateAllForUser(_ context.Context, userID uuid.UUID, exceptKey string) (int64, error) {
	defer r.guard()()

	return r.deactivate(func(s *entity.Session) bool {
		return s.UserID == userID && (exceptKey == "" || s.Key != exceptKey)
	}), nil
}

func (r memSessionRepo) Deactivate(_ context.Context, key string) error {
	defer r.guard()()

	r.deactivate(func(s *entity.Session) bool { return s.Key == key })

	return nil
}

// activeSessions is a test helper listing the user's active sessions.
func (s *memStore) activeSessions(userID uuid.UUID) []entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.Session
	for _, session := range s.state.sessions {
		if session.UserID == userID && session.IsActive {
			out = append(out, session)
		}
	}

	return out
}

// --- one-time codes ---

type memCodeRepo struct{ *memRepo }

func (r memCodeRepo) Create(_ context.Context, code *entity.OneTimeCode) error {
	defer r.guard()()

	code.ID = uuid.New()
	code.CreatedAt = r.store.clock.Now()
	r.st().codes = append(r.st().codes, *code)

	return nil
}

func (r memCodeRepo) DeleteUnused(_ context.Context, userID uuid.UUID, purpose entity.OTPPurpose) error {
	defer r.guard()()

	r.st().codes = slices.DeleteFunc(r.st().codes, func(c entity.OneTimeCode) bool {
		return c.UserID == userID && c.Purpose == purpose && c.UsedAt == nil
	})

	return nil
}

func (r memCodeRepo) FindLatest(_ context.Context, userID uuid.UUID, code int, purpose entity.OTPPurpose) (*entity.OneTimeCode, error) {
	defer r.guard()()

	for i := len(r.st().codes) - 1; i >= 0; i-- {
		c := r.st().codes[i]
		if c.UserID == userID && c.Code == code && c.Purpose == purpose {
			return &c, nil
		}
	}

	return nil, domainerrors.ErrInvalidOTP
}

func (r memCodeRepo) MarkUsed(_ context.Context, id uuid.UUID) (bool, error) {
	defer r.guard()()

	for i := range r.st().codes {
		c := &r.st().codes[i]
		if c.ID == id && c.UsedAt == nil {
			now := r.store.clock.Now()
			c.UsedAt = &now

			return true, nil
		}
	}

	return false, nil
}

// lastCode is a test helper returning the newest code issued to the user, standing in for the mailbox.
func (s *memStore) lastCode(userID uuid.UUID, purpose entity.OTPPurpose) (entity.OneTimeCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.state.codes) - 1; i >= 0; i-- {
		if c := s.state.codes[i]; c.UserID == userID && c.Purpose == purpose {
			return c, true
		}
	}

	return entity.OneTimeCode{}, false
}

// --- reset tokens ---

type memResetTokenRepo struct{ *memRepo }

func (r memResetTokenRepo) Create(_ context.Context, token *entity.ResetToken) error {
	defer r.guard()()

	token.ID = uuid.New()
	token.CreatedAt = r.store.clock.Now()
	r.st().resetTokens = append(r.st().resetTokens, *token)

	return nil
}

func (r memResetTokenRepo) FindByHash(_ context.Context, tokenHash string) (*entity.ResetToken, error) {
	defer r.guard()()

	for _, t := range r.st().resetTokens {
		if t.TokenHash == tokenHash {
			return &t, nil
		}
	}

	return nil, domainerrors.ErrInvalidToken
}

func (r memResetTokenRepo) MarkUsed(_ context.Context, id uuid.UUID) (bool, error) {
	defer r.guard()()

	for i := range r.st().resetTokens {
		t := &r.st().resetTokens[i]
		if t.ID == id && t.UsedAt == nil {
			now := r.store.clock.Now()
			t.UsedAt = &now

			return true, nil
		}
	}

	return false, nil
}

// --- catalog ---

type memIngredientRepo struct{ *memRepo }

func (r memIngredientRepo) Create(_ context.Context, ingredient *entity.Ingredient) error {
	defer r.guard()()

	for _, ing := range r.st().ingredients {
		if strings.EqualFold(ing.Name, ingredient.Name) {
			return domainerrors.ErrIngredientAlreadyExists
		}
	}
	ingredient.ID = len(r.st().ingredients) + 1
	r.st().ingredients = append(r.st().ingredients, *ingredient)

	return nil
}

func (r memIngredientRepo) allergicCount(id int) int {
	n := 0
	for _, ids := range r.st().allergens {
		if slices.Contains(ids, id) {
			n++
		}
	}

	return n
}

func (r memIngredientRepo) ListWithAllergicCounts(_ context.Context) ([]*entity.Ingredient, error) {
	defer r.guard()()

	out := make([]*entity.Ingredient, 0, len(r.st().ingredients))
	for _, ing := range r.st().ingredients {
		ing.AllergicUsers = r.allergicCount(ing.ID)
		out = append(out, &ing)
	}

	return out, nil
}

func (r memIngredientRepo) FindUserAllergens(_ context.Context, userID uuid.UUID, ingredientIDs []int) ([]*entity.Ingredient, error) {
	defer r.guard()()

	var out []*entity.Ingredient
	for _, ing := range r.st().ingredients {
		if slices.Contains(ingredientIDs, ing.ID) && slices.Contains(r.st().allergens[userID], ing.ID) {
			ing.AllergicUsers = r.allergicCount(ing.ID)
			out = append(out, &ing)
		}
	}

	return out, nil
}

func (r memIngredientRepo) CountExisting(_ context.Context, ids []int) (int64, error) {
	defer r.guard()()

	var n int64
	for _, ing := range r.st().ingredients {
		if slices.Contains(ids, ing.ID) {
			n++
		}
	}

	return n, nil
}

type memFoodRepo struct{ *memRepo }

func (r memFoodRepo) Create(_ context.Context, food *entity.Food, ingredientIDs []int) error {
	defer r.guard()()

	food.ID = len(r.st().foods) + 1
	r.st().foods = append(r.st().foods, *food)
	r.st().foodIngredients[food.ID] = slices.Clone(ingredientIDs)

	return nil
}

func (r memFoodRepo) FindByID(_ context.Context, id int) (*entity.Food, error) {
	defer r.guard()()

	for _, f := range r.st().foods {
		if f.ID != id {
			continue
		}
		for _, ing := range r.st().ingredients {
			if slices.Contains(r.st().foodIngredients[id], ing.ID) {
				f.Ingredients = append(f.Ingredients, &ing)
			}
		}

		return &f, nil
	}

	return nil, domainerrors.ErrFoodNotFound
}

func (r memFoodRepo) List(_ context.Context, filter entity.FoodFilter) ([]*entity.Food, int64, error) {
	defer r.guard()()

	var matched []*entity.Food
	for _, f := range r.st().foods {
		if filter.Name != "" && !strings.Contains(strings.ToLower(f.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.ExternalID != "" && f.ExternalID != filter.ExternalID {
			continue
		}
		matched = append(matched, &f)
	}

	total := int64(len(matched))
	start := min(filter.Offset(), len(matched))
	end := min(start+filter.Limit, len(matched))

	return matched[start:end], total, nil
}
