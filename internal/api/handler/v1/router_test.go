package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	v1 "github.com/linkslog/scorecard-api/internal/api/handler/v1"
	"github.com/linkslog/scorecard-api/internal/domain"
	"github.com/linkslog/scorecard-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter mounts the v1 handlers over real services backed by an
// in-memory repository, so requests exercise the full handler, service
// and validation path without a database.
func newTestRouter() *gin.Engine {
	store := newMemStore()

	courseSvc := service.NewCourseService(store)
	userSvc := service.NewUserService(&memUsers{store: store}, domain.UnsettledHandicapCalculator{})
	roundSvc := service.NewRoundService(&memRounds{store: store}, store, &memUsers{store: store})

	courseHandler := v1.NewCourseHandler(courseSvc)
	userHandler := v1.NewUserHandler(userSvc, roundSvc)

	router := gin.New()
	api := router.Group("/api/v1")
	{
		api.GET("/courses", courseHandler.HandleListCourses)
		api.POST("/courses", courseHandler.HandleCreateCourse)
		api.GET("/courses/:courseID", courseHandler.HandleGetCourse)
		api.PATCH("/courses/:courseID", courseHandler.HandleUpdateCourse)
		api.GET("/courses/:courseID/holes", courseHandler.HandleListHoles)
		api.POST("/courses/:courseID/holes", courseHandler.HandleCreateHoles)
		api.GET("/courses/:courseID/holes/:holeID", courseHandler.HandleGetHole)
		api.PATCH("/courses/:courseID/holes/:holeID", courseHandler.HandleUpdateHole)
		api.GET("/courses/:courseID/tees", courseHandler.HandleListTees)
		api.POST("/courses/:courseID/tees", courseHandler.HandleCreateTee)
		api.GET("/courses/:courseID/tees/:teeID", courseHandler.HandleGetTee)
		api.PATCH("/courses/:courseID/tees/:teeID", courseHandler.HandleUpdateTee)
		api.GET("/courses/:courseID/scorecard", courseHandler.HandleGetScorecard)
		api.POST("/courses/:courseID/scorecard", courseHandler.HandleCreateScorecard)
		api.POST("/users", userHandler.HandleCreateUser)
		api.GET("/users/:userID", userHandler.HandleGetUser)
		api.GET("/users/:userID/rounds", userHandler.HandleListRounds)
		api.POST("/users/:userID/rounds", userHandler.HandleCreateRound)
		api.GET("/users/:userID/rounds/:roundID", userHandler.HandleGetRound)
		api.PATCH("/users/:userID/rounds/:roundID", userHandler.HandleUpdateRound)
	}
	router.GET("/", v1.HandleHealthcheck)

	return router
}

func perform(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func performRaw(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}

// The in-memory repository mirrors the persistence contract: domain
// error types for not-found and conflict conditions, associations
// populated and ordered on reads.

type memStore struct {
	courses map[uint]domain.Course
	holes   map[uint]domain.Hole
	tees    map[uint]domain.Tee
	users   map[uint]domain.User
	rounds  map[uint]domain.Round

	yardages []domain.Yardage

	nextID uint
}

func newMemStore() *memStore {
	return &memStore{
		courses: make(map[uint]domain.Course),
		holes:   make(map[uint]domain.Hole),
		tees:    make(map[uint]domain.Tee),
		users:   make(map[uint]domain.User),
		rounds:  make(map[uint]domain.Round),
	}
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) Create(ctx context.Context, course domain.Course) (domain.Course, error) {
	course.ID = m.id()
	m.courses[course.ID] = course
	return course, nil
}

func (m *memStore) FindByID(ctx context.Context, id uint) (domain.Course, error) {
	course, ok := m.courses[id]
	if !ok {
		return domain.Course{}, domain.NewNotFoundError("course", id)
	}

	course.Holes, _ = m.FindHoles(ctx, id)
	course.Tees, _ = m.FindTees(ctx, id)

	return course, nil
}

func (m *memStore) List(ctx context.Context, offset, limit int) ([]domain.Course, error) {
	all := make([]domain.Course, 0, len(m.courses))
	for _, course := range m.courses {
		all = append(all, course)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	if offset >= len(all) {
		return []domain.Course{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	return all[offset:end], nil
}

func (m *memStore) Update(ctx context.Context, id uint, name, location string) error {
	course, ok := m.courses[id]
	if !ok {
		return domain.NewNotFoundError("course", id)
	}
	course.Name = name
	course.Location = location
	m.courses[id] = course

	return nil
}

func (m *memStore) CountHoles(ctx context.Context, courseID uint) (int64, error) {
	var n int64
	for _, hole := range m.holes {
		if hole.CourseID == courseID {
			n++
		}
	}
	return n, nil
}

func (m *memStore) CountTees(ctx context.Context, courseID uint) (int64, error) {
	var n int64
	for _, tee := range m.tees {
		if tee.CourseID == courseID {
			n++
		}
	}
	return n, nil
}

func (m *memStore) CreateTee(ctx context.Context, tee domain.Tee) (domain.Tee, error) {
	for _, existing := range m.tees {
		if existing.CourseID == tee.CourseID && existing.Colour == tee.Colour {
			return domain.Tee{}, domain.NewConflictError("course %v already has a %q tee", tee.CourseID, tee.Colour)
		}
	}

	tee.ID = m.id()
	m.tees[tee.ID] = tee

	return tee, nil
}

func (m *memStore) FindTees(ctx context.Context, courseID uint) ([]domain.Tee, error) {
	tees := make([]domain.Tee, 0)
	for _, tee := range m.tees {
		if tee.CourseID == courseID {
			tee.Yardages = m.teeYardages(tee.ID)
			tees = append(tees, tee)
		}
	}
	sort.Slice(tees, func(i, j int) bool { return tees[i].ID < tees[j].ID })

	return tees, nil
}

func (m *memStore) FindTeeByID(ctx context.Context, id uint) (domain.Tee, error) {
	tee, ok := m.tees[id]
	if !ok {
		return domain.Tee{}, domain.NewNotFoundError("tee", id)
	}
	tee.Yardages = m.teeYardages(id)

	return tee, nil
}

func (m *memStore) UpdateTeeRatings(ctx context.Context, id uint, courseRating, slopeRating *float64) error {
	tee, ok := m.tees[id]
	if !ok {
		return domain.NewNotFoundError("tee", id)
	}
	tee.CourseRating = courseRating
	tee.SlopeRating = slopeRating
	m.tees[id] = tee

	return nil
}

func (m *memStore) CreateHole(ctx context.Context, hole domain.Hole, yardages []domain.Yardage) (domain.Hole, error) {
	hole.ID = m.id()
	m.holes[hole.ID] = hole
	for _, y := range yardages {
		y.HoleID = hole.ID
		m.yardages = append(m.yardages, y)
	}

	return m.FindHoleByID(ctx, hole.ID)
}

func (m *memStore) FindHoles(ctx context.Context, courseID uint) ([]domain.Hole, error) {
	holes := make([]domain.Hole, 0)
	for _, hole := range m.holes {
		if hole.CourseID == courseID {
			hole.Yardages = m.holeYardages(hole.ID)
			holes = append(holes, hole)
		}
	}
	sort.Slice(holes, func(i, j int) bool { return holes[i].Number < holes[j].Number })

	return holes, nil
}

func (m *memStore) FindHoleByID(ctx context.Context, id uint) (domain.Hole, error) {
	hole, ok := m.holes[id]
	if !ok {
		return domain.Hole{}, domain.NewNotFoundError("hole", id)
	}
	hole.Yardages = m.holeYardages(id)

	return hole, nil
}

func (m *memStore) UpsertYardages(ctx context.Context, holeID uint, yardages []domain.Yardage) error {
	for _, y := range yardages {
		y.HoleID = holeID
		replaced := false
		for i, existing := range m.yardages {
			if existing.TeeID == y.TeeID && existing.HoleID == holeID {
				m.yardages[i].Yards = y.Yards
				replaced = true
				break
			}
		}
		if !replaced {
			m.yardages = append(m.yardages, y)
		}
	}

	return nil
}

func (m *memStore) CreateScorecard(ctx context.Context, courseID uint, spec domain.ScorecardSpec) ([]domain.Tee, []domain.Hole, error) {
	for _, ts := range spec.Tees {
		_, err := m.CreateTee(ctx, domain.Tee{
			CourseID:     courseID,
			Colour:       ts.Colour,
			CourseRating: ts.CourseRating,
			SlopeRating:  ts.SlopeRating,
		})
		if err != nil {
			return nil, nil, err
		}
	}

	tees, _ := m.FindTees(ctx, courseID)
	teeByColour := make(map[string]domain.Tee, len(tees))
	for _, tee := range tees {
		teeByColour[tee.Colour] = tee
	}

	for _, hs := range spec.Holes {
		yardages := make([]domain.Yardage, 0, len(hs.Tees))
		for _, ty := range hs.Tees {
			yardages = append(yardages, domain.Yardage{TeeID: teeByColour[ty.Colour].ID, Yards: ty.Yards})
		}
		_, err := m.CreateHole(ctx, domain.Hole{
			CourseID: courseID,
			Number:   hs.Number,
			Par:      hs.Par,
		}, yardages)
		if err != nil {
			return nil, nil, err
		}
	}

	tees, _ = m.FindTees(ctx, courseID)
	holes, _ := m.FindHoles(ctx, courseID)

	return tees, holes, nil
}

func (m *memStore) holeYardages(holeID uint) []domain.Yardage {
	var out []domain.Yardage
	for _, y := range m.yardages {
		if y.HoleID == holeID {
			y.Colour = m.tees[y.TeeID].Colour
			out = append(out, y)
		}
	}
	return out
}

func (m *memStore) teeYardages(teeID uint) []domain.Yardage {
	var out []domain.Yardage
	for _, y := range m.yardages {
		if y.TeeID == teeID {
			out = append(out, y)
		}
	}
	return out
}

type memRounds struct {
	store *memStore
}

func (m *memRounds) Create(ctx context.Context, round domain.Round) (domain.Round, error) {
	round.ID = m.store.id()
	round.Tee = nil
	m.store.rounds[round.ID] = round

	return m.FindByID(ctx, round.ID)
}

func (m *memRounds) FindByID(ctx context.Context, id uint) (domain.Round, error) {
	round, ok := m.store.rounds[id]
	if !ok {
		return domain.Round{}, domain.NewNotFoundError("round", id)
	}
	if tee, ok := m.store.tees[round.TeeID]; ok {
		round.Tee = &tee
	}

	return round, nil
}

func (m *memRounds) FindByUserID(ctx context.Context, userID uint) ([]domain.Round, error) {
	rounds := make([]domain.Round, 0)
	for id, round := range m.store.rounds {
		if round.UserID != userID {
			continue
		}
		found, _ := m.FindByID(ctx, id)
		rounds = append(rounds, found)
	}
	sort.Slice(rounds, func(i, j int) bool {
		if !rounds[i].Date.Equal(rounds[j].Date) {
			return rounds[i].Date.After(rounds[j].Date)
		}
		return rounds[i].ID > rounds[j].ID
	})

	return rounds, nil
}

func (m *memRounds) UpdateScores(ctx context.Context, id uint, round domain.Round) error {
	stored, ok := m.store.rounds[id]
	if !ok {
		return domain.NewNotFoundError("round", id)
	}
	stored.ScoreByHole = round.ScoreByHole
	stored.Putts = round.Putts
	stored.Fairways = round.Fairways
	stored.GIR = round.GIR
	m.store.rounds[id] = stored

	return nil
}

type memUsers struct {
	store *memStore
}

func (m *memUsers) Create(ctx context.Context, user domain.User) (domain.User, error) {
	user.ID = m.store.id()
	m.store.users[user.ID] = user

	return user, nil
}

func (m *memUsers) FindByID(ctx context.Context, id uint) (domain.User, error) {
	user, ok := m.store.users[id]
	if !ok {
		return domain.User{}, domain.NewNotFoundError("user", id)
	}
	rounds := &memRounds{store: m.store}
	user.Rounds, _ = rounds.FindByUserID(ctx, id)

	return user, nil
}
