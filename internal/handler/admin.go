package handler

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const adminHelpText = `🛠 Admin commands:

/courses — list all courses
/addcourse <name>; <price>; <status> — add a course
/editcourse <key>; <name>; <price>; <status> — edit a course
/delcourse <key> — delete a course
/stats — show usage statistics
/broadcast <message> — send a message to every known user

Status is one of: available, coming_soon`

// courseArgs holds parsed fields of an add/edit command
type courseArgs struct {
	name   string
	price  int
	status string
}

// splitFields splits a semicolon-separated command payload
func splitFields(payload string, want int) ([]string, error) {
	parts := strings.Split(payload, ";")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d fields separated by ';', got %d", want, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// parseAddArgs parses "<name>; <price>; <status>"
func parseAddArgs(payload string) (courseArgs, error) {
	parts, err := splitFields(payload, 3)
	if err != nil {
		return courseArgs{}, err
	}

	price, err := strconv.Atoi(parts[1])
	if err != nil {
		return courseArgs{}, fmt.Errorf("price must be an integer, got %q", parts[1])
	}

	return courseArgs{name: parts[0], price: price, status: parts[2]}, nil
}

// parseEditArgs parses "<key>; <name>; <price>; <status>"
func parseEditArgs(payload string) (string, courseArgs, error) {
	parts, err := splitFields(payload, 4)
	if err != nil {
		return "", courseArgs{}, err
	}

	price, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", courseArgs{}, fmt.Errorf("price must be an integer, got %q", parts[2])
	}

	return parts[0], courseArgs{name: parts[1], price: price, status: parts[3]}, nil
}

// handleAdminHelp shows the admin command reference
func (h *Handler) handleAdminHelp(c tele.Context) error {
	return c.Send(adminHelpText)
}

// handleListCourses lists the catalog, re-reading storage first
func (h *Handler) handleListCourses(c tele.Context) error {
	if err := h.catalog.Load(); err != nil {
		h.logger.Error("Failed to reload catalog", zap.Error(err))
	}

	courses := h.catalog.List()
	if len(courses) == 0 {
		return c.Send("No courses yet. Add one with /addcourse <name>; <price>; <status>")
	}

	var b strings.Builder
	b.WriteString("📚 Courses:\n\n")
	for _, course := range courses {
		fmt.Fprintf(&b, "%s — %s — ₹%d (%s)\n", course.Key, course.Name, course.Price, course.Status)
	}
	return c.Send(b.String())
}

// handleAddCourse handles /addcourse <name>; <price>; <status>
func (h *Handler) handleAddCourse(c tele.Context) error {
	args, err := parseAddArgs(c.Message().Payload)
	if err != nil {
		return c.Send("❌ " + err.Error() + "\n\nUsage: /addcourse <name>; <price>; <status>")
	}

	key, err := h.catalog.Add(args.name, args.price, args.status)
	if err != nil {
		return c.Send("❌ " + err.Error())
	}

	h.logger.Info("Course added", zap.String("key", key), zap.String("name", args.name))
	return c.Send(fmt.Sprintf("✅ Course added with key: %s", key))
}

// handleEditCourse handles /editcourse <key>; <name>; <price>; <status>
func (h *Handler) handleEditCourse(c tele.Context) error {
	key, args, err := parseEditArgs(c.Message().Payload)
	if err != nil {
		return c.Send("❌ " + err.Error() + "\n\nUsage: /editcourse <key>; <name>; <price>; <status>")
	}

	if err := h.catalog.Edit(key, args.name, args.price, args.status); err != nil {
		return c.Send("❌ " + err.Error())
	}

	h.logger.Info("Course edited", zap.String("key", key))
	return c.Send(fmt.Sprintf("✅ Course %s updated.", key))
}

// handleDeleteCourse handles /delcourse <key>
func (h *Handler) handleDeleteCourse(c tele.Context) error {
	key := strings.TrimSpace(c.Message().Payload)
	if key == "" {
		return c.Send("❌ Usage: /delcourse <key>")
	}

	if err := h.catalog.Delete(key); err != nil {
		return c.Send("❌ " + err.Error())
	}

	h.logger.Info("Course deleted", zap.String("key", key))
	return c.Send(fmt.Sprintf("✅ Course %s deleted.", key))
}

// handleStats reports usage counters, ordered by the catalog
func (h *Handler) handleStats(c tele.Context) error {
	snapshot := h.stats.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Stats\n\nTotal users: %d\n\nCourse views:\n", snapshot.TotalUsers)

	listed := make(map[string]struct{})
	for _, course := range h.catalog.List() {
		fmt.Fprintf(&b, "%s — %d\n", course.Name, snapshot.CourseViews[course.Key])
		listed[course.Key] = struct{}{}
	}
	// Views recorded for courses deleted since
	for key, views := range snapshot.CourseViews {
		if _, ok := listed[key]; !ok {
			fmt.Fprintf(&b, "%s (removed) — %d\n", key, views)
		}
	}

	return c.Send(b.String())
}

// handleBroadcast sends free text to every roster entry, one attempt
// per recipient, and reports aggregate counts
func (h *Handler) handleBroadcast(c tele.Context) error {
	message := strings.TrimSpace(c.Message().Payload)
	if message == "" {
		return c.Send("Usage: /broadcast <your message>")
	}

	ids := h.roster.All()
	if len(ids) == 0 {
		return c.Send("No users to broadcast to.")
	}

	sent, failed := 0, 0
	for _, id := range ids {
		if _, err := h.bot.Send(tele.ChatID(id), message); err != nil {
			failed++
			h.logger.Error("Failed to send broadcast",
				zap.Int64("user_id", id),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	h.logger.Info("Broadcast finished", zap.Int("sent", sent), zap.Int("failed", failed))
	return c.Send(fmt.Sprintf("📢 Broadcast finished.\nSent: %d\nFailed: %d", sent, failed))
}
