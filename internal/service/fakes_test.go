package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/LucaDevAr/futcuervo-backend/internal/api/dto"
	"github.com/LucaDevAr/futcuervo-backend/internal/model"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/util"
	"github.com/LucaDevAr/futcuervo-backend/internal/repository"
)

// testClock pins "now" to a movable instant in the canonical timezone.
type testClock struct {
	mu sync.Mutex
	at time.Time
}

func newTestClock(t *testing.T, value string) (*util.DayClock, *testClock) {
	t.Helper()
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)
	at, err := time.ParseInLocation("2006-01-02 15:04:05", value, loc)
	require.NoError(t, err)
	tc := &testClock{at: at}
	return util.NewDayClockAt(loc, tc.now), tc
}

func (s *testClock) now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.at
}

func (s *testClock) advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.at = s.at.Add(d)
}

// memStore is an in-memory cache.Store. TTLs are recorded, not
// enforced; day-stamp staleness is what the cache tests exercise.
type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (s *memStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key], nil
}

func (s *memStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *memStore) DeleteByPrefix(_ context.Context, prefix string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			delete(s.data, k)
			n++
		}
	}
	return n, nil
}

func (s *memStore) contains(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}

type tripleKey struct {
	user     primitive.ObjectID
	gameType model.GameType
	club     string
}

func tripleOf(userID primitive.ObjectID, gameType model.GameType, clubID *primitive.ObjectID) tripleKey {
	return tripleKey{user: userID, gameType: gameType, club: model.ClubKeyOf(clubID)}
}

// fakeAttemptRepo keeps one row per triple, like the real unique index.
type fakeAttemptRepo struct {
	attempts  map[tripleKey]*model.Attempt
	upsertErr error
	upserts   int
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{attempts: make(map[tripleKey]*model.Attempt)}
}

func (s *fakeAttemptRepo) seed(a *model.Attempt) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	s.attempts[tripleOf(a.UserID, a.GameType, a.ClubID)] = a
}

func (s *fakeAttemptRepo) Upsert(_ context.Context, userID primitive.ObjectID, gameType model.GameType, clubID *primitive.ObjectID, update *model.AttemptUpdate) (*model.Attempt, error) {
	s.upserts++
	if s.upsertErr != nil {
		err := s.upsertErr
		s.upsertErr = nil
		return nil, err
	}

	key := tripleOf(userID, gameType, clubID)
	attempt, ok := s.attempts[key]
	if !ok {
		attempt = &model.Attempt{
			ID:        primitive.NewObjectID(),
			UserID:    userID,
			GameType:  gameType,
			ClubID:    clubID,
			CreatedAt: update.Date,
		}
		s.attempts[key] = attempt
	}
	attempt.Date = update.Date
	attempt.Won = update.Won
	attempt.Score = update.Score
	attempt.Streak = update.Streak
	attempt.RecordScore = update.RecordScore
	attempt.GameData = update.GameData
	attempt.TimeUsed = update.TimeUsed
	attempt.LivesRemaining = update.LivesRemaining
	attempt.GameMode = update.GameMode
	attempt.UpdatedAt = update.Date
	return attempt, nil
}

func (s *fakeAttemptRepo) FindByTriple(_ context.Context, userID primitive.ObjectID, gameType model.GameType, clubID *primitive.ObjectID) (*model.Attempt, error) {
	return s.attempts[tripleOf(userID, gameType, clubID)], nil
}

func (s *fakeAttemptRepo) FindLatestByTriple(_ context.Context, userID primitive.ObjectID, gameType model.GameType, clubID *primitive.ObjectID, _ int) ([]*model.Attempt, error) {
	if a, ok := s.attempts[tripleOf(userID, gameType, clubID)]; ok {
		return []*model.Attempt{a}, nil
	}
	return nil, nil
}

func (s *fakeAttemptRepo) FindByUserAndClub(_ context.Context, userID primitive.ObjectID, clubID *primitive.ObjectID) ([]*model.Attempt, error) {
	club := model.ClubKeyOf(clubID)
	var out []*model.Attempt
	for key, a := range s.attempts {
		if key.user == userID && key.club == club {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *fakeAttemptRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]*model.Attempt, error) {
	var out []*model.Attempt
	for key, a := range s.attempts {
		if key.user == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *fakeAttemptRepo) FindBestScore(_ context.Context, userID primitive.ObjectID, gameType model.GameType) (*model.Attempt, error) {
	var best *model.Attempt
	for key, a := range s.attempts {
		if key.user == userID && key.gameType == gameType {
			if best == nil || a.RecordScore > best.RecordScore {
				best = a
			}
		}
	}
	return best, nil
}

var _ repository.AttemptRepo = (*fakeAttemptRepo)(nil)

type fakeClubRepo struct {
	clubs map[primitive.ObjectID]*model.Club
	incs  map[primitive.ObjectID]int
}

func newFakeClubRepo(clubs ...*model.Club) *fakeClubRepo {
	s := &fakeClubRepo{
		clubs: make(map[primitive.ObjectID]*model.Club),
		incs:  make(map[primitive.ObjectID]int),
	}
	for _, c := range clubs {
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		s.clubs[c.ID] = c
	}
	return s
}

func (s *fakeClubRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Club, error) {
	return s.clubs[id], nil
}

func (s *fakeClubRepo) FindAll(_ context.Context) ([]*model.Club, error) {
	var out []*model.Club
	for _, c := range s.clubs {
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeClubRepo) IncrementPoints(_ context.Context, id primitive.ObjectID, delta int) error {
	s.incs[id] += delta
	return nil
}

var _ repository.ClubRepo = (*fakeClubRepo)(nil)

type fakePointsService struct {
	calls  int
	result *dto.PointsAdded
}

func (s *fakePointsService) ApplyWinPoints(_ context.Context, _ primitive.ObjectID, _ *primitive.ObjectID, won bool) (*dto.PointsAdded, error) {
	s.calls++
	if !won {
		return &dto.PointsAdded{}, nil
	}
	if s.result != nil {
		return s.result, nil
	}
	return &dto.PointsAdded{User: 1}, nil
}

var _ PointsService = (*fakePointsService)(nil)

type memberKey struct {
	user primitive.ObjectID
	club primitive.ObjectID
	role model.ClubRole
}

type fakeClubMemberRepo struct {
	members map[memberKey]*model.ClubMember
	incs    map[primitive.ObjectID]int
}

func newFakeClubMemberRepo() *fakeClubMemberRepo {
	return &fakeClubMemberRepo{
		members: make(map[memberKey]*model.ClubMember),
		incs:    make(map[primitive.ObjectID]int),
	}
}

func (s *fakeClubMemberRepo) Create(_ context.Context, member *model.ClubMember) (*model.ClubMember, error) {
	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
	}
	s.members[memberKey{user: member.UserID, club: member.ClubID, role: member.Role}] = member
	return member, nil
}

func (s *fakeClubMemberRepo) FindByUserAndRole(_ context.Context, userID primitive.ObjectID, role model.ClubRole) (*model.ClubMember, error) {
	for key, m := range s.members {
		if key.user == userID && key.role == role {
			return m, nil
		}
	}
	return nil, nil
}

func (s *fakeClubMemberRepo) FindByUserClubRole(_ context.Context, userID, clubID primitive.ObjectID, role model.ClubRole) (*model.ClubMember, error) {
	return s.members[memberKey{user: userID, club: clubID, role: role}], nil
}

func (s *fakeClubMemberRepo) FindByUserAndClub(_ context.Context, userID, clubID primitive.ObjectID) (*model.ClubMember, error) {
	for key, m := range s.members {
		if key.user == userID && key.club == clubID {
			return m, nil
		}
	}
	return nil, nil
}

func (s *fakeClubMemberRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]*model.ClubMember, error) {
	var out []*model.ClubMember
	for key, m := range s.members {
		if key.user == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *fakeClubMemberRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for key, m := range s.members {
		if m.ID == id {
			delete(s.members, key)
			return nil
		}
	}
	return nil
}

func (s *fakeClubMemberRepo) IncrementPoints(_ context.Context, id primitive.ObjectID, delta int) error {
	s.incs[id] += delta
	return nil
}

var _ repository.ClubMemberRepo = (*fakeClubMemberRepo)(nil)

type fakeUserRepo struct {
	users map[primitive.ObjectID]*model.User
	incs  map[primitive.ObjectID]int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[primitive.ObjectID]*model.User),
		incs:  make(map[primitive.ObjectID]int),
	}
}

func (s *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	return s.users[id], nil
}

func (s *fakeUserRepo) IncrementPoints(_ context.Context, id primitive.ObjectID, delta int) error {
	s.incs[id] += delta
	return nil
}

var _ repository.UserRepo = (*fakeUserRepo)(nil)

type fakeDailyGameRepo struct {
	mu    sync.Mutex
	games map[model.GameType][]*model.DailyGame
	calls int
}

func newFakeDailyGameRepo() *fakeDailyGameRepo {
	return &fakeDailyGameRepo{games: make(map[model.GameType][]*model.DailyGame)}
}

func (s *fakeDailyGameRepo) FindByDateRange(_ context.Context, gameType model.GameType, _, _ time.Time, _ []repository.ExpandSpec) ([]*model.DailyGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	games := s.games[gameType]
	for _, g := range games {
		g.GameType = gameType
	}
	return games, nil
}

var _ repository.DailyGameRepo = (*fakeDailyGameRepo)(nil)
