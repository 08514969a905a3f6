package controllers

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"lifetracker/internal/messaging"
	"lifetracker/internal/models"
	"lifetracker/internal/providers"
	"lifetracker/internal/services"
	"lifetracker/internal/tracker"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger   providers.Logger
	service  services.TrackerServiceInterface
	cache    providers.CacheProviderInterface
	spending *tracker.SpendingMonitor
}

func NewApiController(logger providers.Logger, service services.TrackerServiceInterface, cache providers.CacheProviderInterface, spending *tracker.SpendingMonitor) *ApiController {
	return &ApiController{
		logger:   logger,
		service:  service,
		cache:    cache,
		spending: spending,
	}
}

type syncRequest struct {
	UserID         string          `json:"userId"`
	Data           models.UserData `json:"data"`
	TimezoneOffset int             `json:"timezoneOffset"`
}

type syncResponse struct {
	Status   string `json:"status"`
	SyncedAt string `json:"synced_at"`
}

type moodRequest struct {
	UserID string `json:"userId"`
	Score  int    `json:"score"`
	Note   string `json:"note,omitempty"`
}

type settingsRequest struct {
	UserID               string  `json:"userId"`
	NotificationsEnabled *bool   `json:"notificationsEnabled,omitempty"`
	Language             *string `json:"language,omitempty"`
}

func getUserID(r *http.Request) string {
	return r.URL.Query().Get("id")
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		writeJSONRaw(w, data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)
	writeJSONRaw(w, gson)
}

func writeJSONRaw(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// Sync is the ingress for client pushes: replaces the user's snapshot
// wholesale, touches last-sync state, then runs the spending check
// inline. The check can never fail the sync.
func (ac *ApiController) Sync(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload syncRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.UserID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	now := time.Now()
	ac.service.EnsureUser(payload.UserID)
	ac.service.PutSnapshot(payload.UserID, payload.Data)
	ac.service.TouchSync(payload.UserID, payload.TimezoneOffset, now)

	ac.cache.Del("user:" + payload.UserID)
	ac.cache.Del("data:" + payload.UserID)
	ac.cache.Del("moods:" + payload.UserID)

	ac.spending.Check(r.Context(), payload.UserID, payload.Data.Transactions)

	writeJSON(w, http.StatusOK, syncResponse{
		Status:   "ok",
		SyncedAt: now.UTC().Format(time.RFC3339),
	})
}

func (ac *ApiController) GetUser(w http.ResponseWriter, r *http.Request) {
	id := getUserID(r)
	user, ok := ac.service.GetUser(id)
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	ac.serveFromCacheOrCompute(w, "user:"+id, func() (any, error) {
		return user, nil
	})
}

func (ac *ApiController) GetData(w http.ResponseWriter, r *http.Request) {
	id := getUserID(r)
	ac.serveFromCacheOrCompute(w, "data:"+id, func() (any, error) {
		data, ok := ac.service.GetSnapshot(id)
		if !ok {
			return map[string]any{"data": nil}, nil
		}
		return map[string]any{
			"data":       data,
			"updated_at": data.UpdatedAt.UTC().Format(time.RFC3339),
		}, nil
	})
}

// SaveMood is the response ingress for the mood prompt: one entry per
// (user, day), latest score wins.
func (ac *ApiController) SaveMood(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload moodRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.UserID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if !models.ValidMoodScore(payload.Score) {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	user, ok := ac.service.GetUser(payload.UserID)
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	entry := ac.service.UpsertMood(payload.UserID, time.Now(), payload.Score, payload.Note)
	ac.cache.Del("moods:" + payload.UserID)

	writeJSON(w, http.StatusOK, map[string]any{
		"score": entry.Score,
		"message": messaging.Render(user.Language, messaging.KeyMoodSaved, map[string]string{
			"mood": models.MoodEmoji(entry.Score),
		}),
	})
}

// SaveSettings routes preference toggles from the chat callback.
func (ac *ApiController) SaveSettings(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.UserID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if _, ok := ac.service.GetUser(payload.UserID); !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	if payload.Language != nil {
		if !ac.service.SetLanguage(payload.UserID, *payload.Language) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
	}
	if payload.NotificationsEnabled != nil {
		ac.service.SetNotifications(payload.UserID, *payload.NotificationsEnabled)
	}

	ac.cache.Del("user:" + payload.UserID)

	user, _ := ac.service.GetUser(payload.UserID)
	writeJSON(w, http.StatusOK, user)
}

// GetMoodCalendar returns the user's last 30 days of mood entries.
func (ac *ApiController) GetMoodCalendar(w http.ResponseWriter, r *http.Request) {
	id := getUserID(r)
	ac.serveFromCacheOrCompute(w, "moods:"+id, func() (any, error) {
		from := time.Now().AddDate(0, 0, -30)
		entries := ac.service.MoodsSince(id, from)

		type calendarEntry struct {
			Date  string `json:"date"`
			Score int    `json:"score"`
			Emoji string `json:"emoji"`
		}
		out := make([]calendarEntry, 0, len(entries))
		for _, e := range entries {
			out = append(out, calendarEntry{
				Date:  models.DayKey(e.Date),
				Score: e.Score,
				Emoji: models.MoodEmoji(e.Score),
			})
		}
		return map[string]any{"moods": out}, nil
	})
}
