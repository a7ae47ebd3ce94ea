package kvstore

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) (*File, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	store, err := NewFile(fs, "/data", "yup_")
	require.NoError(t, err)

	return store, fs
}

func TestFileStore_SetAndGet(t *testing.T) {
	store, _ := newTestFileStore(t)

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Set("stores", doc{Name: "Yupiter 28 May", Count: 3}))

	var out doc
	found := store.Get("stores", &out)

	assert.True(t, found)
	assert.Equal(t, "Yupiter 28 May", out.Name)
	assert.Equal(t, 3, out.Count)
}

func TestFileStore_GetMissingKey(t *testing.T) {
	store, _ := newTestFileStore(t)

	var out map[string]any
	assert.False(t, store.Get("stores", &out))
}

func TestFileStore_CorruptDocumentIsMaskedAsAbsent(t *testing.T) {
	store, fs := newTestFileStore(t)

	err := afero.WriteFile(fs, "/data/yup_stores.json", []byte("{not json"), 0o644)
	require.NoError(t, err)

	var out map[string]any
	assert.False(t, store.Get("stores", &out))
}

func TestFileStore_KeyNamespacing(t *testing.T) {
	store, fs := newTestFileStore(t)

	require.NoError(t, store.Set("meetings", []string{"a"}))

	exists, err := afero.Exists(fs, "/data/yup_meetings.json")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFileStore_Delete(t *testing.T) {
	store, _ := newTestFileStore(t)

	require.NoError(t, store.Set("session", map[string]string{"id": "ID1"}))
	require.NoError(t, store.Delete("session"))

	var out map[string]string
	assert.False(t, store.Get("session", &out))

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete("session"))
}

func TestFileStore_KeysListsOnlyPrefixedDocuments(t *testing.T) {
	store, fs := newTestFileStore(t)

	require.NoError(t, store.Set("stores", []string{}))
	require.NoError(t, store.Set("costs", []string{}))

	// Foreign files in the directory are ignored
	require.NoError(t, afero.WriteFile(fs, "/data/other_app.json", []byte("{}"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/data/yup_readme.txt", []byte("x"), 0o644))

	keys, err := store.Keys()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"stores", "costs"}, keys)
}
