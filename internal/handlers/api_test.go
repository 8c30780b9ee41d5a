package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nucleobets/backend/internal/dto"
	"github.com/nucleobets/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterApproveLoginFlow(t *testing.T) {
	app, _ := newTestApp(t)

	// Self-registration.
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "miguel",
		"email":    "miguel@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var registered struct {
		Account dto.AccountResponse `json:"account"`
	}
	decode(t, resp, &registered)
	assert.False(t, registered.Account.ApprovedByAdmin)
	require.NotNil(t, registered.Account.DaysRemaining)
	assert.Equal(t, 31, *registered.Account.DaysRemaining)

	// Repeating the registration is a conflict.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "miguel",
		"email":    "miguel@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Login is refused until an admin approves.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "miguel",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	admin := login(t, app, "admin", adminPassword)

	resp = doJSON(t, app, http.MethodPost, "/api/admin/approve-user/"+registered.Account.ID.String(), admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user := login(t, app, "miguel", "secret123")

	// Approved member sees an empty feed.
	resp = doJSON(t, app, http.MethodGet, "/api/analysis", user.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var feed []dto.AnalysisResponse
	decode(t, resp, &feed)
	assert.Empty(t, feed)
}

func TestAnalysisLifecycleAndStats(t *testing.T) {
	app, _ := newTestApp(t)
	admin := login(t, app, "admin", adminPassword)

	// Create: result starts pending even if the client claims otherwise.
	resp := doJSON(t, app, http.MethodPost, "/api/admin/analysis", admin.AccessToken, fiber.Map{
		"title":      "Porto vs Benfica",
		"match_info": "Primeira Liga",
		"bet_type":   "home",
		"confidence": 80,
		"odds":       "1.90",
		"match_date": time.Now().Format(time.RFC3339),
		"result":     "green",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var analysis dto.AnalysisResponse
	decode(t, resp, &analysis)
	assert.Equal(t, models.ResultPending, analysis.Result)
	assert.Equal(t, "1", analysis.BetTypeLabel)

	resp = doJSON(t, app, http.MethodGet, "/api/stats", admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats dto.StatsResponse
	decode(t, resp, &stats)
	assert.Equal(t, int64(1), stats.TotalAnalyses)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, float64(0), stats.Accuracy)

	// Quick result flip to green.
	resp = doJSON(t, app, http.MethodPut, "/api/admin/analysis/"+analysis.ID.String(), admin.AccessToken, fiber.Map{
		"result": "green",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/stats", admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &stats)
	assert.Equal(t, int64(1), stats.Green)
	assert.Equal(t, int64(0), stats.Pending)
	assert.Equal(t, float64(100), stats.Accuracy)

	// Delete is 204, then the id is gone.
	resp = doJSON(t, app, http.MethodDelete, "/api/admin/analysis/"+analysis.ID.String(), admin.AccessToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPut, "/api/admin/analysis/"+analysis.ID.String(), admin.AccessToken, fiber.Map{
		"result": "red",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDayFilterOnFeed(t *testing.T) {
	app, _ := newTestApp(t)
	admin := login(t, app, "admin", adminPassword)

	for _, entry := range []struct {
		title string
		date  time.Time
	}{
		{"today-match", time.Now()},
		{"future-match", time.Now().Add(72 * time.Hour)},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/admin/analysis", admin.AccessToken, fiber.Map{
			"title":      entry.title,
			"match_info": "m",
			"bet_type":   "draw",
			"match_date": entry.date.Format(time.RFC3339),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/analysis?day=today", admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var feed []dto.AnalysisResponse
	decode(t, resp, &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, "today-match", feed[0].Title)

	resp = doJSON(t, app, http.MethodGet, "/api/analysis?day=next-week", admin.AccessToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestValuableTipVisibilityAndGating(t *testing.T) {
	app, db := newTestApp(t)
	admin := login(t, app, "admin", adminPassword)

	resp := doJSON(t, app, http.MethodPost, "/api/admin/valuable-tips", admin.AccessToken, fiber.Map{
		"title":            "Weekend parlay",
		"description":      "Three picks",
		"games":            "Porto vs Benfica\nSporting vs Braga\nArouca vs Gil Vicente",
		"total_odds":       "6.40",
		"stake_suggestion": "1 unit",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var tip models.ValuableTip
	decode(t, resp, &tip)

	// An approved member sees the tip but cannot touch it.
	seedApprovedMember(t, db, "viewer", "secret123")
	member := login(t, app, "viewer", "secret123")

	resp = doJSON(t, app, http.MethodGet, "/api/valuable-tips", member.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tips []models.ValuableTip
	decode(t, resp, &tips)
	require.Len(t, tips, 1)
	assert.Equal(t, "Weekend parlay", tips[0].Title)

	resp = doJSON(t, app, http.MethodPut, "/api/admin/valuable-tips/"+tip.ID.String(), member.AccessToken, fiber.Map{
		"title": "hacked",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/admin/valuable-tips/"+tip.ID.String(), member.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUserManagementEndpoints(t *testing.T) {
	app, db := newTestApp(t)
	admin := login(t, app, "admin", adminPassword)

	// Admin direct-creation bypasses the approval queue.
	resp := doJSON(t, app, http.MethodPost, "/api/admin/create-user", admin.AccessToken, fiber.Map{
		"username": "vip",
		"email":    "vip@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.AccountResponse
	decode(t, resp, &created)
	assert.True(t, created.ApprovedByAdmin)

	resp = doJSON(t, app, http.MethodGet, "/api/admin/users", admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var users []dto.AccountResponse
	decode(t, resp, &users)
	assert.Len(t, users, 2) // seeded admin + vip

	// Deactivate kills the account's access.
	resp = doJSON(t, app, http.MethodPost, "/api/admin/deactivate-user/"+created.ID.String(), admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "vip", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Deleting an admin account is forbidden; deleting the user works.
	var adminAccount models.Account
	require.NoError(t, db.First(&adminAccount, "role = ?", models.RoleAdmin).Error)
	resp = doJSON(t, app, http.MethodDelete, "/api/admin/delete-user/"+adminAccount.ID.String(), admin.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/admin/delete-user/"+created.ID.String(), admin.AccessToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/admin/users", admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &users)
	assert.Len(t, users, 1)
}

func TestAuthRequiredAndTokenDiesWithAccount(t *testing.T) {
	app, db := newTestApp(t)

	// No token at all.
	resp := doJSON(t, app, http.MethodGet, "/api/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp = doJSON(t, app, http.MethodGet, "/api/analysis", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// A valid token stops working once the account is deleted.
	seedApprovedMember(t, db, "doomed", "secret123")
	member := login(t, app, "doomed", "secret123")

	resp = doJSON(t, app, http.MethodGet, "/api/stats", member.AccessToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.Where("username = ?", "doomed").Delete(&models.Account{}).Error)

	resp = doJSON(t, app, http.MethodGet, "/api/stats", member.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChangePasswordEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	seedApprovedMember(t, db, "paula", "oldpass1")
	member := login(t, app, "paula", "oldpass1")

	resp := doJSON(t, app, http.MethodPut, "/api/auth/change-password", member.AccessToken, fiber.Map{
		"currentPassword": "wrong",
		"newPassword":     "newpass1",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/auth/change-password", member.AccessToken, fiber.Map{
		"currentPassword": "oldpass1",
		"newPassword":     "newpass1",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	login(t, app, "paula", "newpass1")
}
