package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"goalkeeper/api/biz/config"
	"goalkeeper/api/biz/dal/repo"
	"goalkeeper/api/biz/gateway/goal"
	"goalkeeper/api/biz/handler"
	"goalkeeper/api/biz/model/dto"
	"goalkeeper/api/biz/model/storage"
	"goalkeeper/api/biz/router"
	usersvc "goalkeeper/api/biz/service/user"
	"goalkeeper/api/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/test/assert"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// fakeGoalService imitates the remote saving-goal API: form-encoded writes,
// JSON records, 404 for unknown ids. failing switches every response to 500.
type fakeGoalService struct {
	mu      sync.Mutex
	nextID  int64
	goals   map[int64]map[string]any
	failing bool
	omitID  bool
}

func newFakeGoalService() *fakeGoalService {
	return &fakeGoalService{nextID: 1, goals: map[int64]map[string]any{}}
}

func (f *fakeGoalService) setFailing(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = v
}

func (f *fakeGoalService) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/goals", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failing {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = r.ParseForm()
		if f.omitID {
			rec := f.recordFromForm(0, r)
			delete(rec, "id")
			_ = json.NewEncoder(w).Encode(rec)
			return
		}
		id := f.nextID
		f.nextID++
		rec := f.recordFromForm(id, r)
		f.goals[id] = rec
		_ = json.NewEncoder(w).Encode(rec)
	})
	mux.HandleFunc("/goals/goal_id", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failing {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		id, _ := strconv.ParseInt(r.URL.Query().Get("goal_id"), 10, 64)
		rec, ok := f.goals[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(rec)
		case http.MethodPut:
			_ = r.ParseForm()
			rec = f.recordFromForm(id, r)
			f.goals[id] = rec
			_ = json.NewEncoder(w).Encode(rec)
		case http.MethodDelete:
			delete(f.goals, id)
			w.WriteHeader(http.StatusOK)
		}
	})
	return mux
}

func (f *fakeGoalService) recordFromForm(id int64, r *http.Request) map[string]any {
	value, _ := strconv.ParseFloat(r.FormValue("goal_value"), 64)
	savings, _ := strconv.ParseFloat(r.FormValue("monthly_savings"), 64)
	return map[string]any{
		"id":              id,
		"goal_name":       r.FormValue("goal_name"),
		"goal_currency":   r.FormValue("goal_currency"),
		"goal_value":      value,
		"monthly_savings": savings,
		"converted_value": value,
		"created_at":      "2024-05-02 08:00:00",
	}
}

var (
	testEngine  *server.Hertz
	goalService *fakeGoalService
)

func TestMain(m *testing.M) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(err)
	}
	if err := db.AutoMigrate(&storage.UserRecord{}); err != nil {
		panic(err)
	}

	goalService = newFakeGoalService()
	srv := httptest.NewServer(goalService.handler())
	defer srv.Close()

	gw, err := goal.NewClient(config.GoalAPIConf{BaseURL: srv.URL, TimeoutSeconds: 5})
	if err != nil {
		panic(err)
	}

	testEngine = server.New(server.WithCustomValidator(validate.New()))
	router.Register(testEngine, handler.New(usersvc.New(repo.NewUserRepository(db), gw)))
	m.Run()
}

func perform(method, url, body string) *ut.ResponseRecorder {
	var b *ut.Body
	if body != "" {
		b = &ut.Body{Body: bytes.NewBufferString(body), Len: len(body)}
	}
	return ut.PerformRequest(testEngine.Engine, method, url, b,
		ut.Header{Key: "Content-Type", Value: "application/json"})
}

func createUser(t *testing.T, username, password string) dto.UserResp {
	t.Helper()
	w := perform(http.MethodPost, "/users", `{"username":"`+username+`","password":"`+password+`"}`)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusOK, resp.StatusCode())

	var u dto.UserResp
	err := json.Unmarshal(resp.Body(), &u)
	assert.Nil(t, err)
	return u
}

func TestUserAndGoalLifecycle(t *testing.T) {
	u := createUser(t, "alice", "pw1")
	assert.DeepEqual(t, "alice", u.Username)
	assert.DeepEqual(t, 0.0, u.Salary)
	assert.DeepEqual(t, 0, len(u.GoalIDs))
	assert.NotEqual(t, "", u.ID)
	assert.NotEqual(t, "", u.CreatedAt)

	// create a goal through the remote service
	body := `{"goal_name":"car","goal_currency":"USD","goal_value":5000,"monthly_savings":200}`
	w := perform(http.MethodPost, "/users/alice/goal", body)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusOK, resp.StatusCode())

	var withGoal dto.UserResp
	assert.Nil(t, json.Unmarshal(resp.Body(), &withGoal))
	assert.DeepEqual(t, 1, len(withGoal.GoalIDs))
	goalID := withGoal.GoalIDs[0]
	goalPath := "/users/alice/goal/" + strconv.FormatInt(goalID, 10)

	// user view resolves the goal and sums monthly savings
	w = perform(http.MethodGet, "/users/alice", "")
	resp = w.Result()
	assert.DeepEqual(t, http.StatusOK, resp.StatusCode())

	var view dto.UserGoalsResp
	assert.Nil(t, json.Unmarshal(resp.Body(), &view))
	assert.DeepEqual(t, "pw1", view.Password)
	assert.DeepEqual(t, 200.0, view.TotalSavings)
	assert.DeepEqual(t, 1, len(view.Goals))
	assert.DeepEqual(t, "car", view.Goals[0].GoalName)

	// update the goal remotely
	body = `{"goal_name":"house","goal_currency":"EUR","goal_value":9000,"monthly_savings":300}`
	w = perform(http.MethodPut, goalPath, body)
	resp = w.Result()
	assert.DeepEqual(t, http.StatusOK, resp.StatusCode())

	var updated dto.SavingGoalResp
	assert.Nil(t, json.Unmarshal(resp.Body(), &updated))
	assert.DeepEqual(t, "house", updated.GoalName)
	assert.DeepEqual(t, "EUR", updated.GoalCurrency)

	// single-goal read
	w = perform(http.MethodGet, goalPath, "")
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())

	// delete the goal, reference disappears
	w = perform(http.MethodDelete, goalPath, "")
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())

	w = perform(http.MethodGet, "/users/alice", "")
	assert.Nil(t, json.Unmarshal(w.Result().Body(), &view))
	assert.DeepEqual(t, 0, len(view.Goals))
	assert.DeepEqual(t, 0.0, view.TotalSavings)

	// deleted goal is now a 404 for this user
	w = perform(http.MethodGet, goalPath, "")
	assert.DeepEqual(t, http.StatusNotFound, w.Result().StatusCode())

	// delete the user
	w = perform(http.MethodDelete, "/users/alice", "")
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())

	w = perform(http.MethodGet, "/users/alice", "")
	assert.DeepEqual(t, http.StatusNotFound, w.Result().StatusCode())
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	createUser(t, "bob", "pw1")

	w := perform(http.MethodPost, "/users", `{"username":"bob","password":"pw2"}`)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusConflict, resp.StatusCode())
}

func TestRenameUser_Conflict(t *testing.T) {
	createUser(t, "carol", "pw1")
	createUser(t, "dave", "pw1")

	w := perform(http.MethodPut, "/users/carol/username", `{"new_username":"dave"}`)
	assert.DeepEqual(t, http.StatusConflict, w.Result().StatusCode())

	// carol is still reachable under her old name
	w = perform(http.MethodGet, "/users/carol", "")
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())

	w = perform(http.MethodPut, "/users/carol/username", `{"new_username":"carla"}`)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusOK, resp.StatusCode())

	var u dto.UserResp
	assert.Nil(t, json.Unmarshal(resp.Body(), &u))
	assert.DeepEqual(t, "carla", u.Username)
}

func TestUpdateSalary_Rounding(t *testing.T) {
	createUser(t, "erin", "pw1")

	w := perform(http.MethodPut, "/users/erin/salary", `{"new_salary":123.456}`)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusOK, resp.StatusCode())

	var u dto.UserResp
	assert.Nil(t, json.Unmarshal(resp.Body(), &u))
	assert.DeepEqual(t, 123.46, u.Salary)
}

func TestCreateGoal_GatewayDown_NoPartialAppend(t *testing.T) {
	createUser(t, "frank", "pw1")

	goalService.setFailing(true)
	defer goalService.setFailing(false)

	body := `{"goal_name":"boat","goal_currency":"USD","goal_value":100,"monthly_savings":10}`
	w := perform(http.MethodPost, "/users/frank/goal", body)
	assert.DeepEqual(t, http.StatusBadRequest, w.Result().StatusCode())

	goalService.setFailing(false)
	w = perform(http.MethodGet, "/users/frank", "")
	var view dto.UserGoalsResp
	assert.Nil(t, json.Unmarshal(w.Result().Body(), &view))
	assert.DeepEqual(t, 0, len(view.Goals))
}

func TestCreateGoal_ResponseWithoutID_NotLinked(t *testing.T) {
	createUser(t, "ida", "pw1")

	goalService.mu.Lock()
	goalService.omitID = true
	goalService.mu.Unlock()
	defer func() {
		goalService.mu.Lock()
		goalService.omitID = false
		goalService.mu.Unlock()
	}()

	body := `{"goal_name":"car","goal_currency":"USD","goal_value":100,"monthly_savings":10}`
	w := perform(http.MethodPost, "/users/ida/goal", body)
	assert.DeepEqual(t, http.StatusBadRequest, w.Result().StatusCode())

	// no reference was stored for the unidentified goal
	w = perform(http.MethodPut, "/users/ida/salary", `{"new_salary":1}`)
	var u dto.UserResp
	assert.Nil(t, json.Unmarshal(w.Result().Body(), &u))
	assert.DeepEqual(t, 0, len(u.GoalIDs))
}

func TestDeleteGoal_GatewayDown_KeepsReference(t *testing.T) {
	createUser(t, "grace", "pw1")

	body := `{"goal_name":"trip","goal_currency":"JPY","goal_value":300,"monthly_savings":50}`
	w := perform(http.MethodPost, "/users/grace/goal", body)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusOK, resp.StatusCode())

	var u dto.UserResp
	assert.Nil(t, json.Unmarshal(resp.Body(), &u))
	assert.DeepEqual(t, 1, len(u.GoalIDs))
	goalPath := "/users/grace/goal/" + strconv.FormatInt(u.GoalIDs[0], 10)

	goalService.setFailing(true)
	w = perform(http.MethodDelete, goalPath, "")
	assert.DeepEqual(t, http.StatusBadRequest, w.Result().StatusCode())
	goalService.setFailing(false)

	// the failed remote delete left the local reference in place
	w = perform(http.MethodGet, goalPath, "")
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
}

func TestGetUser_UnresolvableGoalSkipped(t *testing.T) {
	createUser(t, "heidi", "pw1")

	for _, g := range []string{
		`{"goal_name":"a","goal_currency":"USD","goal_value":100,"monthly_savings":10}`,
		`{"goal_name":"b","goal_currency":"USD","goal_value":200,"monthly_savings":20}`,
	} {
		w := perform(http.MethodPost, "/users/heidi/goal", g)
		assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	}

	w := perform(http.MethodGet, "/users/heidi", "")
	var view dto.UserGoalsResp
	assert.Nil(t, json.Unmarshal(w.Result().Body(), &view))
	assert.DeepEqual(t, 2, len(view.Goals))
	assert.DeepEqual(t, 30.0, view.TotalSavings)

	// drop one goal behind the coordinator's back
	goalService.mu.Lock()
	var dropped int64
	for id := range goalService.goals {
		if goalService.goals[id]["goal_name"] == "a" {
			dropped = id
			delete(goalService.goals, id)
		}
	}
	goalService.mu.Unlock()
	assert.NotEqual(t, int64(0), dropped)

	w = perform(http.MethodGet, "/users/heidi", "")
	assert.Nil(t, json.Unmarshal(w.Result().Body(), &view))
	assert.DeepEqual(t, 1, len(view.Goals))
	assert.DeepEqual(t, 20.0, view.TotalSavings)
}
