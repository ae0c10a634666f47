package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"pollboard/internal/config"
	"pollboard/internal/domain/poll"
	"pollboard/internal/domain/user"
	"pollboard/internal/domain/vote"
	jwtpkg "pollboard/internal/platform/jwt"
	"pollboard/internal/worker"
)

type testUserRepo struct {
	mu     sync.Mutex
	users  map[string]*user.User
	byMail map[string]string
}

func newTestUserRepo() *testUserRepo {
	return &testUserRepo{users: make(map[string]*user.User), byMail: make(map[string]string)}
}

func (r *testUserRepo) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	copyUser := *u
	r.users[u.ID] = &copyUser
	r.byMail[u.Email] = u.ID
	return nil
}

func (r *testUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byMail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copyUser := *r.users[id]
	return &copyUser, nil
}

func (r *testUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copyUser := *u
	return &copyUser, nil
}

func (r *testUserRepo) List(ctx context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		res = append(res, *u)
	}
	return res, nil
}

func (r *testUserRepo) UpdateRole(ctx context.Context, id, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	u.Role = role
	return nil
}

type testPollRepo struct {
	mu    sync.Mutex
	polls map[string]*poll.Poll
}

func newTestPollRepo() *testPollRepo {
	return &testPollRepo{polls: make(map[string]*poll.Poll)}
}

func (r *testPollRepo) Create(ctx context.Context, p *poll.Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copyPoll := *p
	r.polls[p.ID] = &copyPoll
	return nil
}

func (r *testPollRepo) GetByID(ctx context.Context, id string) (*poll.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.polls[id]
	if !ok {
		return nil, poll.ErrPollNotFound
	}
	copyPoll := *p
	return &copyPoll, nil
}

func (r *testPollRepo) List(ctx context.Context) ([]poll.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := []poll.Poll{}
	for _, p := range r.polls {
		res = append(res, *p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (r *testPollRepo) ListByOwner(ctx context.Context, ownerID string) ([]poll.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := []poll.Poll{}
	for _, p := range r.polls {
		if p.OwnerID == ownerID {
			res = append(res, *p)
		}
	}
	return res, nil
}

func (r *testPollRepo) Update(ctx context.Context, p *poll.Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.polls[p.ID]; !ok {
		return poll.ErrPollNotFound
	}
	copyPoll := *p
	r.polls[p.ID] = &copyPoll
	return nil
}

func (r *testPollRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.polls[id]; !ok {
		return poll.ErrPollNotFound
	}
	delete(r.polls, id)
	return nil
}

type testVoteRepo struct {
	mu    sync.Mutex
	votes []vote.Vote
}

func (r *testVoteRepo) Create(ctx context.Context, v *vote.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v.VoterID != nil {
		for _, existing := range r.votes {
			if existing.PollID == v.PollID && existing.VoterID != nil && *existing.VoterID == *v.VoterID {
				return vote.ErrAlreadyVoted
			}
		}
	}
	r.votes = append(r.votes, *v)
	return nil
}

func (r *testVoteRepo) HasVoted(ctx context.Context, pollID, voterID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.votes {
		if v.PollID == pollID && v.VoterID != nil && *v.VoterID == voterID {
			return true, nil
		}
	}
	return false, nil
}

func (r *testVoteRepo) HasAnyVotes(ctx context.Context, pollID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.votes {
		if v.PollID == pollID {
			return true, nil
		}
	}
	return false, nil
}

func (r *testVoteRepo) CountByOption(ctx context.Context, pollID string) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make(map[string]int64)
	for _, v := range r.votes {
		if v.PollID == pollID {
			res[v.Option]++
		}
	}
	return res, nil
}

type testEnv struct {
	handler  http.Handler
	userRepo *testUserRepo
	pollRepo *testPollRepo
	voteRepo *testVoteRepo
}

func newTestEnv(t *testing.T, cfg config.Config) *testEnv {
	t.Helper()

	userRepo := newTestUserRepo()
	pollRepo := newTestPollRepo()
	voteRepo := &testVoteRepo{}

	userSvc := user.NewService(userRepo)
	pollSvc := poll.NewService(pollRepo, voteRepo)
	voteSvc := vote.NewService(voteRepo, pollRepo, cfg.AllowAnonymousVotes)

	jwtMgr := jwtpkg.NewManager("test-secret", "pollboard", time.Hour)
	voteCh := make(chan worker.VoteEvent, 100)

	return &testEnv{
		handler:  NewRouter(cfg, userSvc, pollSvc, voteSvc, jwtMgr, voteCh, nil),
		userRepo: userRepo,
		pollRepo: pollRepo,
		voteRepo: voteRepo,
	}
}

func defaultConfig() config.Config {
	// Zero VoteRateEvery means an unlimited limiter, so tests can vote
	// repeatedly from the same address.
	return config.Config{AllowAnonymousVotes: true, VoteRateBurst: 1}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func (e *testEnv) registerUser(t *testing.T, email string) string {
	t.Helper()
	rec, body := e.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    email,
		"password": "s3cret",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", email, rec.Code, rec.Body.String())
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("register %s: empty token", email)
	}
	return token
}

func (e *testEnv) createPoll(t *testing.T, token, question string, options []string) string {
	t.Helper()
	rec, body := e.do(t, http.MethodPost, "/api/v1/polls", token, map[string]any{
		"question": question,
		"options":  options,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create poll: status %d body %s", rec.Code, rec.Body.String())
	}
	p := body["poll"].(map[string]any)
	return p["id"].(string)
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t, defaultConfig())

	env.registerUser(t, "alice@example.com")

	rec, _ := env.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email": "alice@example.com", "password": "other",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate email: want 400, got %d", rec.Code)
	}

	rec, body := env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "s3cret",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: want 200, got %d", rec.Code)
	}
	if body["token"] == "" {
		t.Fatal("login: empty token")
	}

	rec, _ = env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: want 401, got %d", rec.Code)
	}
}

func TestCreatePollRequiresAuth(t *testing.T) {
	env := newTestEnv(t, defaultConfig())

	rec, _ := env.do(t, http.MethodPost, "/api/v1/polls", "", map[string]any{
		"question": "Pick a color", "options": []string{"Red", "Blue"},
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}

func TestCreatePollValidation(t *testing.T) {
	env := newTestEnv(t, defaultConfig())
	token := env.registerUser(t, "alice@example.com")

	cases := []struct {
		name     string
		question string
		options  []string
	}{
		{"short question", "Hi", []string{"Red", "Blue"}},
		{"one option", "Pick a color", []string{"Red"}},
		{"blank option", "Pick a color", []string{"Red", "   "}},
		{"repeated option", "Pick a color", []string{"Red", "Red"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := env.do(t, http.MethodPost, "/api/v1/polls", token, map[string]any{
				"question": tc.question, "options": tc.options,
			})
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d body %s", rec.Code, rec.Body.String())
			}
			if body["error"] != "validation_failed" {
				t.Fatalf("want validation_failed, got %v", body["error"])
			}
		})
	}

	if len(env.pollRepo.polls) != 0 {
		t.Fatalf("refused creates must not write, found %d polls", len(env.pollRepo.polls))
	}
}

func TestVoteScenario(t *testing.T) {
	env := newTestEnv(t, defaultConfig())
	token := env.registerUser(t, "u1@example.com")

	pollID := env.createPoll(t, token, "Pick a color", []string{"Red", "Blue"})

	rec, body := env.do(t, http.MethodGet, "/api/v1/polls/"+pollID+"/results", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("results: want 200, got %d", rec.Code)
	}
	if total := body["total_votes"].(float64); total != 0 {
		t.Fatalf("fresh poll: want total 0, got %v", total)
	}

	rec, _ = env.do(t, http.MethodPost, "/api/v1/polls/"+pollID+"/vote", token, map[string]any{"option_index": 0})
	if rec.Code != http.StatusCreated {
		t.Fatalf("first vote: want 201, got %d body %s", rec.Code, rec.Body.String())
	}

	rec, body = env.do(t, http.MethodPost, "/api/v1/polls/"+pollID+"/vote", token, map[string]any{"option_index": 1})
	if rec.Code != http.StatusConflict {
		t.Fatalf("second vote: want 409, got %d", rec.Code)
	}
	if body["error"] != "already_voted" {
		t.Fatalf("want already_voted, got %v", body["error"])
	}

	rec, body = env.do(t, http.MethodGet, "/api/v1/polls/"+pollID+"/results", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("results: want 200, got %d", rec.Code)
	}
	if total := body["total_votes"].(float64); total != 1 {
		t.Fatalf("want total 1, got %v", total)
	}
	opts := body["options"].([]any)
	red := opts[0].(map[string]any)
	blue := opts[1].(map[string]any)
	if red["option"] != "Red" || red["votes"].(float64) != 1 {
		t.Fatalf("unexpected first option row: %v", red)
	}
	if blue["option"] != "Blue" || blue["votes"].(float64) != 0 {
		t.Fatalf("unexpected second option row: %v", blue)
	}
}

func TestVoteInvalidIndex(t *testing.T) {
	env := newTestEnv(t, defaultConfig())
	token := env.registerUser(t, "u1@example.com")
	pollID := env.createPoll(t, token, "Pick a color", []string{"Red", "Blue"})

	for _, idx := range []int{-1, 2} {
		rec, body := env.do(t, http.MethodPost, "/api/v1/polls/"+pollID+"/vote", token, map[string]any{"option_index": idx})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("index %d: want 400, got %d", idx, rec.Code)
		}
		if body["error"] != "invalid_option" {
			t.Fatalf("index %d: want invalid_option, got %v", idx, body["error"])
		}
	}

	rec, _ := env.do(t, http.MethodPost, "/api/v1/polls/"+pollID+"/vote", token, map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing option_index: want 400, got %d", rec.Code)
	}

	if len(env.voteRepo.votes) != 0 {
		t.Fatalf("refused votes must not write, found %d", len(env.voteRepo.votes))
	}
}

func TestVoteUnknownPoll(t *testing.T) {
	env := newTestEnv(t, defaultConfig())

	rec, _ := env.do(t, http.MethodPost, "/api/v1/polls/does-not-exist/vote", "", map[string]any{"option_index": 0})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
}

func TestAnonymousVoting(t *testing.T) {
	env := newTestEnv(t, defaultConfig())
	token := env.registerUser(t, "u1@example.com")
	pollID := env.createPoll(t, token, "Pick a color", []string{"Red", "Blue"})

	// Anonymous casts are accepted and never deduplicated.
	for i := 0; i < 3; i++ {
		rec, _ := env.do(t, http.MethodPost, "/api/v1/polls/"+pollID+"/vote", "", map[string]any{"option_index": 1})
		if rec.Code != http.StatusCreated {
			t.Fatalf("anonymous vote %d: want 201, got %d", i, rec.Code)
		}
	}

	_, body := env.do(t, http.MethodGet, "/api/v1/polls/"+pollID+"/results", "", nil)
	if total := body["total_votes"].(float64); total != 3 {
		t.Fatalf("want total 3, got %v", total)
	}
}

func TestAnonymousVotingDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.AllowAnonymousVotes = false
	env := newTestEnv(t, cfg)

	token := env.registerUser(t, "u1@example.com")
	pollID := env.createPoll(t, token, "Pick a color", []string{"Red", "Blue"})

	rec, _ := env.do(t, http.MethodPost, "/api/v1/polls/"+pollID+"/vote", "", map[string]any{"option_index": 0})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}

func TestUpdateAndDeleteAuthorization(t *testing.T) {
	env := newTestEnv(t, defaultConfig())
	ownerToken := env.registerUser(t, "owner@example.com")
	otherToken := env.registerUser(t, "other@example.com")

	pollID := env.createPoll(t, ownerToken, "Pick a color", []string{"Red", "Blue"})

	rec, _ := env.do(t, http.MethodPut, "/api/v1/polls/"+pollID, otherToken, map[string]any{
		"question": "Hijacked question", "options": []string{"Red", "Blue"},
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-owner update: want 403, got %d", rec.Code)
	}

	rec, _ = env.do(t, http.MethodDelete, "/api/v1/polls/"+pollID, otherToken, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-owner delete: want 403, got %d", rec.Code)
	}

	// Poll still retrievable and unchanged after the refusals.
	rec, body := env.do(t, http.MethodGet, "/api/v1/polls/"+pollID, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get after refusals: want 200, got %d", rec.Code)
	}
	if q := body["poll"].(map[string]any)["question"]; q != "Pick a color" {
		t.Fatalf("question changed by refused update: %v", q)
	}

	rec, _ = env.do(t, http.MethodPut, "/api/v1/polls/"+pollID, ownerToken, map[string]any{
		"question": "Pick your favourite color", "options": []string{"Red", "Blue"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("owner update: want 200, got %d body %s", rec.Code, rec.Body.String())
	}

	rec, _ = env.do(t, http.MethodDelete, "/api/v1/polls/"+pollID, ownerToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("owner delete: want 200, got %d", rec.Code)
	}

	rec, _ = env.do(t, http.MethodGet, "/api/v1/polls/"+pollID, "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: want 404, got %d", rec.Code)
	}
}

func TestAdminOverride(t *testing.T) {
	env := newTestEnv(t, defaultConfig())
	ownerToken := env.registerUser(t, "owner@example.com")
	env.registerUser(t, "admin@example.com")

	// Promote via the repo, then log in again so the claim carries the
	// admin role.
	adminID := env.userRepo.byMail["admin@example.com"]
	if err := env.userRepo.UpdateRole(context.Background(), adminID, "admin"); err != nil {
		t.Fatalf("promote admin: %v", err)
	}
	rec, body := env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "admin@example.com", "password": "s3cret",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("admin login: want 200, got %d", rec.Code)
	}
	adminToken := body["token"].(string)

	pollID := env.createPoll(t, ownerToken, "Pick a color", []string{"Red", "Blue"})

	rec, _ = env.do(t, http.MethodDelete, "/api/v1/polls/"+pollID, adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin delete: want 200, got %d", rec.Code)
	}
}

func TestOptionsLockedAfterVotes(t *testing.T) {
	env := newTestEnv(t, defaultConfig())
	token := env.registerUser(t, "owner@example.com")
	pollID := env.createPoll(t, token, "Pick a color", []string{"Red", "Blue"})

	rec, _ := env.do(t, http.MethodPost, "/api/v1/polls/"+pollID+"/vote", token, map[string]any{"option_index": 0})
	if rec.Code != http.StatusCreated {
		t.Fatalf("vote: want 201, got %d", rec.Code)
	}

	rec, body := env.do(t, http.MethodPut, "/api/v1/polls/"+pollID, token, map[string]any{
		"question": "Pick a color", "options": []string{"Red", "Green"},
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("option edit with votes: want 409, got %d", rec.Code)
	}
	if body["error"] != "options_locked" {
		t.Fatalf("want options_locked, got %v", body["error"])
	}
}

func TestListPolls(t *testing.T) {
	env := newTestEnv(t, defaultConfig())
	aliceToken := env.registerUser(t, "alice@example.com")
	bobToken := env.registerUser(t, "bob@example.com")

	env.createPoll(t, aliceToken, "Pick a color", []string{"Red", "Blue"})
	env.createPoll(t, bobToken, "Pick a number", []string{"One", "Two"})

	rec, body := env.do(t, http.MethodGet, "/api/v1/polls", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: want 200, got %d", rec.Code)
	}
	if n := len(body["polls"].([]any)); n != 2 {
		t.Fatalf("want 2 polls, got %d", n)
	}

	rec, body = env.do(t, http.MethodGet, "/api/v1/polls/mine", aliceToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("mine: want 200, got %d", rec.Code)
	}
	mine := body["polls"].([]any)
	if len(mine) != 1 {
		t.Fatalf("want 1 own poll, got %d", len(mine))
	}
	if q := mine[0].(map[string]any)["question"]; q != "Pick a color" {
		t.Fatalf("unexpected own poll: %v", q)
	}

	rec, _ = env.do(t, http.MethodGet, "/api/v1/polls/mine", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("mine without token: want 401, got %d", rec.Code)
	}
}

func TestRoleManagement(t *testing.T) {
	env := newTestEnv(t, defaultConfig())
	userToken := env.registerUser(t, "user@example.com")
	env.registerUser(t, "admin@example.com")

	adminID := env.userRepo.byMail["admin@example.com"]
	if err := env.userRepo.UpdateRole(context.Background(), adminID, "admin"); err != nil {
		t.Fatalf("promote admin: %v", err)
	}
	_, body := env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "admin@example.com", "password": "s3cret",
	})
	adminToken := body["token"].(string)

	userID := env.userRepo.byMail["user@example.com"]

	rec, _ := env.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/users/%s/role", userID), userToken, map[string]string{"role": "admin"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin role change: want 403, got %d", rec.Code)
	}

	rec, _ = env.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/users/%s/role", userID), adminToken, map[string]string{"role": "supreme"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid role: want 400, got %d", rec.Code)
	}

	rec, _ = env.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/users/%s/role", userID), adminToken, map[string]string{"role": "admin"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("role change: want 204, got %d", rec.Code)
	}
}

func TestVoteRateLimit(t *testing.T) {
	cfg := defaultConfig()
	cfg.VoteRateEvery = time.Hour
	cfg.VoteRateBurst = 1
	env := newTestEnv(t, cfg)

	token := env.registerUser(t, "owner@example.com")
	pollID := env.createPoll(t, token, "Pick a color", []string{"Red", "Blue"})

	rec, _ := env.do(t, http.MethodPost, "/api/v1/polls/"+pollID+"/vote", "", map[string]any{"option_index": 0})
	if rec.Code != http.StatusCreated {
		t.Fatalf("first vote: want 201, got %d", rec.Code)
	}

	rec, _ = env.do(t, http.MethodPost, "/api/v1/polls/"+pollID+"/vote", "", map[string]any{"option_index": 0})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second vote: want 429, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, defaultConfig())

	rec, body := env.do(t, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health: want 200, got %d", rec.Code)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected health body: %v", body)
	}

	// No database handle wired in tests, so readiness must degrade.
	rec, _ = env.do(t, http.MethodGet, "/ready", "", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("ready: want 503, got %d", rec.Code)
	}
}
