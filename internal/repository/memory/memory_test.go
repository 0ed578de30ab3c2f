package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventhub/eventhub-backend/internal/apperr"
	"github.com/eventhub/eventhub-backend/internal/models"
)

func seedUser(t *testing.T, users *UserRepository, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "User " + email, Email: email, Password: "hash"}
	require.NoError(t, users.Create(user))
	return user
}

func seedEvent(t *testing.T, events *EventRepository, creatorID uint, maxAttendees int) *models.Event {
	t.Helper()
	event := &models.Event{
		Title:        "Meetup",
		Description:  "Monthly meetup",
		Date:         time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC),
		Location:     "Berlin",
		MaxAttendees: maxAttendees,
		CreatedByID:  creatorID,
	}
	require.NoError(t, events.Create(event))
	return event
}

func TestRSVPCheckOrder(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	events := NewEventRepository(store)

	creator := seedUser(t, users, "creator@example.com")
	attendee := seedUser(t, users, "attendee@example.com")
	event := seedEvent(t, events, creator.ID, 1)

	err := events.RSVP(999, attendee.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.NoError(t, events.RSVP(event.ID, attendee.ID))

	// Duplicate membership is reported before capacity even though the
	// event is now full.
	err = events.RSVP(event.ID, attendee.ID)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	other := seedUser(t, users, "other@example.com")
	err = events.RSVP(event.ID, other.ID)
	assert.Equal(t, apperr.KindCapacity, apperr.KindOf(err))

	got, err := events.GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{attendee.ID}, got.Attendees)
}

func TestRSVPPreservesOrder(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	events := NewEventRepository(store)

	creator := seedUser(t, users, "creator@example.com")
	event := seedEvent(t, events, creator.ID, 10)

	var want []uint
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		u := seedUser(t, users, email)
		require.NoError(t, events.RSVP(event.ID, u.ID))
		want = append(want, u.ID)
	}

	got, err := events.GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got.Attendees)
}

func TestConcurrentRSVPRespectsCapacity(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	events := NewEventRepository(store)

	creator := seedUser(t, users, "creator@example.com")
	event := seedEvent(t, events, creator.ID, 5)

	var ids []uint
	for i := 0; i < 10; i++ {
		u := seedUser(t, users, string(rune('a'+i))+"@example.com")
		ids = append(ids, u.ID)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			events.RSVP(event.ID, userID)
		}(id)
	}
	wg.Wait()

	got, err := events.GetByID(event.ID)
	require.NoError(t, err)
	assert.Len(t, got.Attendees, 5)
}

func TestDeleteRemovesAttendeesAndDerivedIDs(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	events := NewEventRepository(store)

	creator := seedUser(t, users, "creator@example.com")
	attendee := seedUser(t, users, "attendee@example.com")
	event := seedEvent(t, events, creator.ID, 3)
	require.NoError(t, events.RSVP(event.ID, attendee.ID))

	ids, err := users.CreatedEventIDs(creator.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{event.ID}, ids)

	require.NoError(t, events.Delete(event.ID))

	ids, err = users.CreatedEventIDs(creator.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = events.GetByID(event.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	rsvps, err := events.ListByAttendee(attendee.ID)
	require.NoError(t, err)
	assert.Empty(t, rsvps)
}

func TestListFilters(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	events := NewEventRepository(store)

	creator := seedUser(t, users, "creator@example.com")

	june1 := &models.Event{
		Title: "Early", Description: "d", Location: "Berlin Mitte",
		Date:         time.Date(2026, 6, 1, 23, 30, 0, 0, time.UTC),
		MaxAttendees: 5, CreatedByID: creator.ID,
	}
	june2 := &models.Event{
		Title: "Late", Description: "d", Location: "Hamburg",
		Date:         time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
		MaxAttendees: 5, CreatedByID: creator.ID,
	}
	require.NoError(t, events.Create(june1))
	require.NoError(t, events.Create(june2))

	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	got, err := events.List(models.EventFilter{Date: &day})
	require.NoError(t, err)
	// Midnight of the next day falls outside the half-open window.
	require.Len(t, got, 1)
	assert.Equal(t, "Early", got[0].Title)

	got, err = events.List(models.EventFilter{Location: "berlin"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Early", got[0].Title)

	got, err = events.List(models.EventFilter{EventType: "concert"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)

	seedUser(t, users, "dup@example.com")
	err := users.Create(&models.User{Name: "Other", Email: "dup@example.com", Password: "hash"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}
