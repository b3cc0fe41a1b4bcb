package activity

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"eduportal/model"
	"eduportal/store"
	"eduportal/utils/middleware"
	"eduportal/utils/response"
)

// ActivityHandler groups the audit-log endpoints.
type ActivityHandler struct {
	records *store.RecordStore
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(records *store.RecordStore) *ActivityHandler {
	return &ActivityHandler{records: records}
}

// List returns the full activity log, newest first, with optional
// action and username query filters. Route is admin-gated. The store
// hands back entries unsorted; presentation ordering lives here.
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	sess, _ := middleware.GetSession(c)

	logs, err := h.records.ListActivity(c.Context(), sess)
	if err != nil {
		return response.FromStoreError(c, err)
	}

	action := c.Query("action")
	username := c.Query("username")
	if action != "" || username != "" {
		filtered := make([]model.ActivityLog, 0, len(logs))
		for _, l := range logs {
			if action != "" && !strings.EqualFold(l.Action, action) {
				continue
			}
			if username != "" && !strings.EqualFold(l.Username, username) {
				continue
			}
			filtered = append(filtered, l)
		}
		logs = filtered
	}

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	return response.Success(c, logs)
}

// Mine returns the logged-in user's own entries, newest first.
func (h *ActivityHandler) Mine(c *fiber.Ctx) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Not logged in")
	}

	logs, err := h.records.ActivityForUser(c.Context(), sess, sess.User.ID)
	if err != nil {
		return response.FromStoreError(c, err)
	}

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	return response.Success(c, logs)
}

// ForUser returns one user's entries. Route is admin-gated.
func (h *ActivityHandler) ForUser(c *fiber.Ctx) error {
	sess, _ := middleware.GetSession(c)

	logs, err := h.records.ActivityForUser(c.Context(), sess, c.Params("id"))
	if err != nil {
		return response.FromStoreError(c, err)
	}

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	return response.Success(c, logs)
}
