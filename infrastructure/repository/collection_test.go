package repository

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yupiter/analytics-api/infrastructure/kvstore"
	"github.com/yupiter/analytics-api/infrastructure/kvstore/mocks"
	"github.com/yupiter/analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestStore(t *testing.T) kvstore.Store {
	t.Helper()

	store, err := kvstore.NewFile(afero.NewMemMapFs(), "/data", "yup_")
	require.NoError(t, err)

	return store
}

func TestCollection_AddAssignsIdentity(t *testing.T) {
	store := newTestStore(t)
	coll := NewCollection[*domain.Meeting](store, kvstore.KeyMeetings)

	meeting, err := coll.Add(&domain.Meeting{Topic: "Q3 P&L review"})
	require.NoError(t, err)

	assert.NotEmpty(t, meeting.ID)
	assert.False(t, meeting.CreatedAt.IsZero())

	found, ok := coll.Find(meeting.ID)
	assert.True(t, ok)
	assert.Equal(t, "Q3 P&L review", found.Topic)
}

func TestCollection_SurvivesReload(t *testing.T) {
	store := newTestStore(t)

	coll := NewCollection[*domain.Meeting](store, kvstore.KeyMeetings)
	first, err := coll.Add(&domain.Meeting{Topic: "first"})
	require.NoError(t, err)
	_, err = coll.Add(&domain.Meeting{Topic: "second"})
	require.NoError(t, err)

	// A fresh collection over the same store sees the persisted records in
	// insertion order.
	reloaded := NewCollection[*domain.Meeting](store, kvstore.KeyMeetings)
	items := reloaded.List()

	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, "first", items[0].Topic)
	assert.Equal(t, "second", items[1].Topic)
}

func TestCollection_ReplaceKeepsIdentity(t *testing.T) {
	store := newTestStore(t)
	coll := NewCollection[*domain.Meeting](store, kvstore.KeyMeetings)

	original, err := coll.Add(&domain.Meeting{Topic: "before"})
	require.NoError(t, err)

	updated, ok, err := coll.Replace(original.ID, &domain.Meeting{Topic: "after"})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "after", updated.Topic)
}

func TestCollection_ReplaceMissingIDIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().Get(kvstore.KeyMeetings, gomock.Any()).Return(false)
	// No Set expected: a missing id must not trigger a write.

	coll := NewCollection[*domain.Meeting](mockStore, kvstore.KeyMeetings)

	_, ok, err := coll.Replace("ID-missing", &domain.Meeting{Topic: "x"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCollection_Remove(t *testing.T) {
	store := newTestStore(t)
	coll := NewCollection[*domain.Meeting](store, kvstore.KeyMeetings)

	meeting, err := coll.Add(&domain.Meeting{Topic: "to remove"})
	require.NoError(t, err)

	removed, err := coll.Remove(meeting.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, coll.List())

	removed, err = coll.Remove(meeting.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCollection_AddPropagatesWriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().Get(kvstore.KeyMeetings, gomock.Any()).Return(false)
	mockStore.EXPECT().Set(kvstore.KeyMeetings, gomock.Any()).Return(errors.New("disk full"))

	coll := NewCollection[*domain.Meeting](mockStore, kvstore.KeyMeetings)

	_, err := coll.Add(&domain.Meeting{Topic: "doomed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestUserRepository_GetByEmailIsExact(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)

	_, err := repo.Create(&domain.User{
		Name:         "Aysel",
		Email:        "Aysel@yupiter.az",
		PasswordHash: "hash",
		Role:         domain.RoleAnalyst,
	})
	require.NoError(t, err)

	assert.NotNil(t, repo.GetByEmail("Aysel@yupiter.az"))
	// Lookup is case-sensitive and whole-string
	assert.Nil(t, repo.GetByEmail("aysel@yupiter.az"))
	assert.Nil(t, repo.GetByEmail("Aysel"))
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	store := newTestStore(t)
	repo := NewSessionRepository(store)

	_, ok := repo.Get()
	assert.False(t, ok)

	require.NoError(t, repo.Save(&domain.Session{ID: "ID1", Name: "Aysel", Role: domain.RoleAnalyst}))

	session, ok := repo.Get()
	require.True(t, ok)
	assert.Equal(t, "Aysel", session.Name)

	require.NoError(t, repo.Delete())
	_, ok = repo.Get()
	assert.False(t, ok)
}
