package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-tracker/internal/model"
	"study-tracker/internal/planner"
	repo "study-tracker/internal/planner/repository"
	"study-tracker/pkg/gcalendar"
	pkgLog "study-tracker/pkg/log"
	"study-tracker/pkg/studyday"
)

type mockRepo struct {
	tasks     []model.Task
	reminders []model.Reminder
	links     map[string]string
	listOpt   repo.ListRemindersOptions
	err       error
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	t := model.Task{ID: "t1", UserID: opt.UserID, Title: opt.Title, Status: opt.Status}
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	return m.tasks, m.err
}

func (m *mockRepo) CreateReminder(ctx context.Context, opt repo.CreateReminderOptions) (model.Reminder, error) {
	if m.err != nil {
		return model.Reminder{}, m.err
	}
	r := model.Reminder{ID: "r1", UserID: opt.UserID, Title: opt.Title, Description: opt.Description, RemindAt: opt.RemindAt}
	m.reminders = append(m.reminders, r)
	return r, nil
}

func (m *mockRepo) ListReminders(ctx context.Context, opt repo.ListRemindersOptions) ([]model.Reminder, error) {
	m.listOpt = opt
	return m.reminders, m.err
}

func (m *mockRepo) SetReminderCalendarLink(ctx context.Context, id, link string) error {
	if m.links == nil {
		m.links = map[string]string{}
	}
	m.links[id] = link
	return nil
}

type mockCalendar struct {
	req gcalendar.CreateEventRequest
	err error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "ev1", HtmlLink: "https://calendar.google.com/ev1"}, nil
}

type fixedOffset int

func (f fixedOffset) DayOffset(ctx context.Context, sc model.Scope) (int, error) {
	return int(f), nil
}

func newTestUseCase(r *mockRepo, cal CalendarClient, offset int) *implUseCase {
	uc := New(Config{
		Logger:   pkgLog.NewNop(),
		Repo:     r,
		Calendar: cal,
		Offsets:  fixedOffset(offset),
	})
	uc.now = func() time.Time { return time.Date(2025, 1, 15, 4, 59, 0, 0, time.UTC) }
	return uc
}

func TestCreateTask(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(r, nil, 0)

	_, err := uc.CreateTask(context.Background(), model.Scope{}, planner.CreateTaskInput{Title: "  "})
	assert.ErrorIs(t, err, planner.ErrEmptyTitle)

	task, err := uc.CreateTask(context.Background(), model.Scope{}, planner.CreateTaskInput{Title: " Revise algebra "})
	require.NoError(t, err)
	assert.Equal(t, "Revise algebra", task.Title)
	assert.Equal(t, model.TaskStatusTodo, task.Status)
	assert.Equal(t, model.DefaultUserID, task.UserID)
}

func TestListTasks_InvalidStatus(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, nil, 0)
	_, err := uc.ListTasks(context.Background(), model.Scope{UserID: "u1"}, planner.ListTasksInput{Status: "archived"})
	assert.ErrorIs(t, err, planner.ErrInvalidStatus)
}

func TestCreateReminder(t *testing.T) {
	when := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	t.Run("validates input", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, nil, 0)
		_, err := uc.CreateReminder(context.Background(), model.Scope{}, planner.CreateReminderInput{Title: "Exam"})
		assert.ErrorIs(t, err, planner.ErrMissingTime)
		_, err = uc.CreateReminder(context.Background(), model.Scope{}, planner.CreateReminderInput{When: when})
		assert.ErrorIs(t, err, planner.ErrEmptyTitle)
	})

	t.Run("mirrors to calendar", func(t *testing.T) {
		r := &mockRepo{}
		cal := &mockCalendar{}
		uc := newTestUseCase(r, cal, 0)

		rem, err := uc.CreateReminder(context.Background(), model.Scope{UserID: "u1"}, planner.CreateReminderInput{Title: "Exam", When: when})
		require.NoError(t, err)
		assert.Equal(t, "https://calendar.google.com/ev1", rem.CalendarLink)
		assert.Equal(t, "https://calendar.google.com/ev1", r.links["r1"])
		assert.Equal(t, "primary", cal.req.CalendarID)
		assert.Equal(t, 30*time.Minute, cal.req.EndTime.Sub(cal.req.StartTime))
	})

	t.Run("calendar failure is non-fatal", func(t *testing.T) {
		r := &mockRepo{}
		uc := newTestUseCase(r, &mockCalendar{err: errors.New("quota exceeded")}, 0)

		rem, err := uc.CreateReminder(context.Background(), model.Scope{}, planner.CreateReminderInput{Title: "Exam", When: when})
		require.NoError(t, err)
		assert.Empty(t, rem.CalendarLink)
		assert.Len(t, r.reminders, 1)
	})

	t.Run("repository failure", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{err: repo.ErrFailedToInsert}, nil, 0)
		_, err := uc.CreateReminder(context.Background(), model.Scope{}, planner.CreateReminderInput{Title: "Exam", When: when})
		assert.ErrorIs(t, err, repo.ErrFailedToInsert)
	})
}

func TestListReminders_UsesStudyWindow(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(r, nil, 5*60)

	out, err := uc.ListReminders(context.Background(), model.Scope{UserID: "u1"}, planner.ListRemindersInput{})
	require.NoError(t, err)

	// 04:59 with a 05:00 offset still belongs to the 14th.
	wantStart := time.Date(2025, 1, 14, 5, 0, 0, 0, time.UTC)
	assert.True(t, out.Window.Start.Equal(wantStart), "start %v", out.Window.Start)
	assert.True(t, r.listOpt.From.Equal(wantStart))
	assert.True(t, r.listOpt.To.Equal(wantStart.Add(24*time.Hour)))
	assert.Equal(t, "u1", r.listOpt.UserID)

	_, err = uc.ListReminders(context.Background(), model.Scope{}, planner.ListRemindersInput{Period: "yearly"})
	assert.ErrorIs(t, err, studyday.ErrInvalidPeriod)
}
