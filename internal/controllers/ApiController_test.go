package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifetracker/internal/models"
	"lifetracker/internal/services"
	"lifetracker/internal/structures"
	"lifetracker/internal/testutil"
	"lifetracker/internal/tracker"
)

type apiFixture struct {
	controller *ApiController
	service    services.TrackerServiceInterface
	notifier   *testutil.MockNotifier
	cache      *testutil.MockCache
}

func newApiFixture() *apiFixture {
	conf := &structures.Config{}
	conf.Notifications.SpendFloor = 50
	conf.Notifications.SpendRatio = 1.5
	conf.Notifications.SpendWindowDays = 30

	svc := services.NewTrackerService()
	notifier := testutil.NewMockNotifier()
	cache := testutil.NewMockCache()
	logger := &testutil.MockLogger{}
	spending := tracker.NewSpendingMonitor(conf, svc, notifier, logger, testutil.NewMockMetrics())

	return &apiFixture{
		controller: NewApiController(logger, svc, cache, spending),
		service:    svc,
		notifier:   notifier,
		cache:      cache,
	}
}

func (f *apiFixture) post(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func (f *apiFixture) get(t *testing.T, handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestSync_CreatesUserAndStoresSnapshot(t *testing.T) {
	f := newApiFixture()

	rec := f.post(t, f.controller.Sync, `{
		"userId": "u1",
		"timezoneOffset": 120,
		"data": {"habits": [{"id": "h1", "name": "Read"}], "transactions": []}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	_, err := time.Parse(time.RFC3339, body["synced_at"].(string))
	assert.NoError(t, err)

	user, ok := f.service.GetUser("u1")
	require.True(t, ok)
	assert.NotNil(t, user.LastSyncAt)
	assert.Equal(t, 120, user.TimezoneOffset)

	snapshot, ok := f.service.GetSnapshot("u1")
	require.True(t, ok)
	require.Len(t, snapshot.Habits, 1)
	assert.Equal(t, "Read", snapshot.Habits[0].Name)
}

func TestSync_ReplacesSnapshotWholesale(t *testing.T) {
	f := newApiFixture()

	f.post(t, f.controller.Sync, `{"userId": "u1", "data": {"habits": [{"id": "h1", "name": "Read"}, {"id": "h2", "name": "Run"}]}}`)
	f.post(t, f.controller.Sync, `{"userId": "u1", "data": {"habits": [{"id": "h3", "name": "Swim"}]}}`)

	snapshot, ok := f.service.GetSnapshot("u1")
	require.True(t, ok)
	require.Len(t, snapshot.Habits, 1)
	assert.Equal(t, "h3", snapshot.Habits[0].ID)
}

func TestSync_RejectsMalformedPayload(t *testing.T) {
	f := newApiFixture()

	assert.Equal(t, http.StatusBadRequest, f.post(t, f.controller.Sync, `{not json`).Code)
	assert.Equal(t, http.StatusBadRequest, f.post(t, f.controller.Sync, `{"data": {}}`).Code)
	assert.Zero(t, f.service.UserCount())
}

func TestSync_TriggersSpendingAlert(t *testing.T) {
	f := newApiFixture()
	today := models.DayKey(time.Now())

	rec := f.post(t, f.controller.Sync, `{
		"userId": "u1",
		"data": {"habits": [], "transactions": [
			{"id": "t1", "type": "expense", "amount": 200, "date": "`+today+`"},
			{"id": "t2", "type": "expense", "amount": 30, "date": "2026-08-01"}
		]}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	sent := f.notifier.SentTo("u1")
	require.Len(t, sent, 1)
	assert.Equal(t, "spending_alert", sent[0].TemplateKey)
	assert.Equal(t, "$200.00", sent[0].Params["amount"])
}

func TestSync_NormalSpendingSendsNothing(t *testing.T) {
	f := newApiFixture()
	today := models.DayKey(time.Now())

	f.post(t, f.controller.Sync, `{
		"userId": "u1",
		"data": {"transactions": [{"id": "t1", "type": "expense", "amount": 20, "date": "`+today+`"}]}
	}`)

	assert.Zero(t, f.notifier.SentCount())
}

func TestSync_InvalidatesCaches(t *testing.T) {
	f := newApiFixture()
	f.cache.Set("user:u1", []byte(`{}`))
	f.cache.Set("data:u1", []byte(`{}`))
	f.cache.Set("moods:u1", []byte(`{}`))

	f.post(t, f.controller.Sync, `{"userId": "u1", "data": {}}`)

	_, ok := f.cache.Get("user:u1")
	assert.False(t, ok)
	_, ok = f.cache.Get("data:u1")
	assert.False(t, ok)
	_, ok = f.cache.Get("moods:u1")
	assert.False(t, ok)
}

func TestGetUser_NotFound(t *testing.T) {
	f := newApiFixture()
	rec := f.get(t, f.controller.GetUser, "/api/user?id=ghost")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUser_ReturnsProfile(t *testing.T) {
	f := newApiFixture()
	f.service.EnsureUser("u1")

	rec := f.get(t, f.controller.GetUser, "/api/user?id=u1")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "u1", body["id"])
	assert.Equal(t, models.LangRU, body["language"])
	assert.Equal(t, true, body["notifications_enabled"])
}

func TestGetData_NullWithoutSnapshot(t *testing.T) {
	f := newApiFixture()
	rec := f.get(t, f.controller.GetData, "/api/data?id=u1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Nil(t, body["data"])
}

func TestGetData_ReturnsSnapshot(t *testing.T) {
	f := newApiFixture()
	f.post(t, f.controller.Sync, `{"userId": "u1", "data": {"habits": [{"id": "h1", "name": "Read"}]}}`)

	rec := f.get(t, f.controller.GetData, "/api/data?id=u1")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.NotNil(t, body["data"])
	assert.NotEmpty(t, body["updated_at"])
}

func TestSaveMood_StoresEntryAndConfirms(t *testing.T) {
	f := newApiFixture()
	f.service.EnsureUser("u1")

	rec := f.post(t, f.controller.SaveMood, `{"userId": "u1", "score": 4, "note": "solid"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(4), body["score"])
	assert.Contains(t, body["message"], "🙂")

	moods := f.service.MoodsSince("u1", models.Midnight(time.Now()))
	require.Len(t, moods, 1)
	assert.Equal(t, "solid", moods[0].Note)
}

func TestSaveMood_LatestScoreWins(t *testing.T) {
	f := newApiFixture()
	f.service.EnsureUser("u1")

	f.post(t, f.controller.SaveMood, `{"userId": "u1", "score": 2}`)
	f.post(t, f.controller.SaveMood, `{"userId": "u1", "score": 5}`)

	moods := f.service.MoodsSince("u1", models.Midnight(time.Now()))
	require.Len(t, moods, 1)
	assert.Equal(t, 5, moods[0].Score)
}

func TestSaveMood_RejectsInvalidScore(t *testing.T) {
	f := newApiFixture()
	f.service.EnsureUser("u1")

	assert.Equal(t, http.StatusBadRequest, f.post(t, f.controller.SaveMood, `{"userId": "u1", "score": 0}`).Code)
	assert.Equal(t, http.StatusBadRequest, f.post(t, f.controller.SaveMood, `{"userId": "u1", "score": 6}`).Code)
}

func TestSaveMood_UnknownUser(t *testing.T) {
	f := newApiFixture()
	rec := f.post(t, f.controller.SaveMood, `{"userId": "ghost", "score": 3}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSaveSettings_TogglesNotifications(t *testing.T) {
	f := newApiFixture()
	f.service.EnsureUser("u1")

	rec := f.post(t, f.controller.SaveSettings, `{"userId": "u1", "notificationsEnabled": false}`)

	require.Equal(t, http.StatusOK, rec.Code)
	user, _ := f.service.GetUser("u1")
	assert.False(t, user.NotificationsEnabled)
}

func TestSaveSettings_ChangesLanguage(t *testing.T) {
	f := newApiFixture()
	f.service.EnsureUser("u1")

	rec := f.post(t, f.controller.SaveSettings, `{"userId": "u1", "language": "es"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	user, _ := f.service.GetUser("u1")
	assert.Equal(t, models.LangES, user.Language)
}

func TestSaveSettings_RejectsUnknownLanguage(t *testing.T) {
	f := newApiFixture()
	f.service.EnsureUser("u1")

	rec := f.post(t, f.controller.SaveSettings, `{"userId": "u1", "language": "de"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	user, _ := f.service.GetUser("u1")
	assert.Equal(t, models.LangRU, user.Language)
}

func TestSaveSettings_UnknownUser(t *testing.T) {
	f := newApiFixture()
	rec := f.post(t, f.controller.SaveSettings, `{"userId": "ghost", "language": "en"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMoodCalendar_ReturnsRecentEntries(t *testing.T) {
	f := newApiFixture()
	f.service.EnsureUser("u1")
	f.service.UpsertMood("u1", time.Now(), 5, "")
	f.service.UpsertMood("u1", time.Now().AddDate(0, 0, -1), 2, "")
	f.service.UpsertMood("u1", time.Now().AddDate(0, 0, -45), 3, "")

	rec := f.get(t, f.controller.GetMoodCalendar, "/api/mood/calendar?id=u1")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	moods := body["moods"].([]any)
	require.Len(t, moods, 2)

	latest := moods[len(moods)-1].(map[string]any)
	assert.Equal(t, models.DayKey(time.Now()), latest["date"])
	assert.Equal(t, float64(5), latest["score"])
	assert.Equal(t, "🤩", latest["emoji"])
}

func TestServeFromCacheOrCompute_ServesCachedBody(t *testing.T) {
	f := newApiFixture()
	f.service.EnsureUser("u1")
	f.cache.Set("user:u1", []byte(`{"cached":true}`))

	rec := f.get(t, f.controller.GetUser, "/api/user?id=u1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cached":true}`, rec.Body.String())
}
