package records

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/ids"
	"github.com/jonathan/resume-studio/internal/storage"
	"github.com/jonathan/resume-studio/internal/types"
)

type failingBackend struct {
	err error
}

func (f failingBackend) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, f.err
}

func (f failingBackend) Set(context.Context, string, []byte) error {
	return f.err
}

// readOnlyBackend reads through to a memory backend and refuses every write
type readOnlyBackend struct {
	*storage.Memory
}

func (readOnlyBackend) Set(context.Context, string, []byte) error {
	return errors.New("read-only")
}

func newTestStore(backend storage.Backend) *Store {
	return NewStore(backend, Options{IDs: ids.Sequence("gen")})
}

func sampleDoc(id string) types.ResumeDocument {
	return types.ResumeDocument{
		ID:          id,
		TemplateID:  types.TemplateGreen,
		ThemeMode:   types.ThemeLight,
		FullName:    "Ana " + id,
		Experiences: []types.Experience{{ID: "e1", Role: "Dev"}},
		Education:   []types.Education{{ID: "ed1", Degree: "CS", Type: types.EducationBachelor}},
		Skills:      []types.Skill{{ID: "s1", Name: "Go", Level: 90}},
		Languages:   []types.Language{{ID: "l1", Name: "English", Level: "C1"}},
		Hobbies:     []string{"Chess"},
		LastUpdated: "2024-05-01T12:00:00Z",
		IsPinned:    true,
	}
}

func TestLoadCollection_Empty(t *testing.T) {
	store := newTestStore(storage.NewMemory(0))

	result, err := store.LoadCollection(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Documents)
	assert.NotNil(t, result.Documents)
	assert.False(t, result.Corrupt)
	assert.False(t, result.Migrated)
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(storage.NewMemory(0))
	docs := []types.ResumeDocument{sampleDoc("a"), sampleDoc("b")}

	require.NoError(t, store.SaveCollection(ctx, docs))
	result, err := store.LoadCollection(ctx)
	require.NoError(t, err)
	assert.Equal(t, docs, result.Documents)
}

func TestSaveCollection_NilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory(0)
	store := newTestStore(backend)

	require.NoError(t, store.SaveCollection(ctx, nil))
	data, ok, err := backend.Get(ctx, DefaultCollectionKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(data))
}

func TestLoadCollection_CorruptData(t *testing.T) {
	tests := map[string]string{
		"invalid json":      `{not json`,
		"object not array":  `{"id": "a"}`,
		"wrong field types": `[{"id": 5, "skills": "many"}]`,
		"null entry":        `[null]`,
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			backend := storage.NewMemory(0)
			require.NoError(t, backend.Set(ctx, DefaultCollectionKey, []byte(payload)))
			store := newTestStore(backend)

			result, err := store.LoadCollection(ctx)
			require.NoError(t, err)
			assert.True(t, result.Corrupt)
			assert.Error(t, result.Problem)
			assert.Empty(t, result.Documents)

			data, _, _ := backend.Get(ctx, DefaultCollectionKey)
			assert.Equal(t, payload, string(data), "corrupt slot must not be overwritten on load")
		})
	}
}

func TestLoadCollection_NormalizesStoredDocuments(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory(0)
	payload := `[{"id": "old", "fullName": "Ana", "skills": [{"name": "Go", "level": 140}]}]`
	require.NoError(t, backend.Set(ctx, DefaultCollectionKey, []byte(payload)))

	result, err := newTestStore(backend).LoadCollection(ctx)
	require.NoError(t, err)
	require.Len(t, result.Documents, 1)

	doc := result.Documents[0]
	assert.Equal(t, "old", doc.ID)
	assert.Equal(t, types.ThemeDark, doc.ThemeMode)
	assert.Equal(t, types.CanonicalTemplate, doc.TemplateID)
	assert.Equal(t, 100, doc.Skills[0].Level)
	assert.Equal(t, "gen-1", doc.Skills[0].ID)
	assert.True(t, result.Repaired)

	again, err := newTestStore(backend).LoadCollection(ctx)
	require.NoError(t, err)
	assert.Equal(t, result.Documents, again.Documents)
}

func TestLoadCollection_DuplicateDocumentIDs(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory(0)
	payload := `[{"id": "a", "fullName": "First"}, {"id": "a", "fullName": "Second"}]`
	require.NoError(t, backend.Set(ctx, DefaultCollectionKey, []byte(payload)))

	result, err := newTestStore(backend).LoadCollection(ctx)
	require.NoError(t, err)
	require.Len(t, result.Documents, 2)
	assert.Equal(t, "a", result.Documents[0].ID)
	assert.Equal(t, "First", result.Documents[0].FullName)
	assert.NotEqual(t, "a", result.Documents[1].ID)
	assert.Equal(t, "Second", result.Documents[1].FullName)
	assert.True(t, result.Repaired)
}

func TestLoadCollection_AssignedIDsAreStable(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory(0)
	payload := `[{"fullName": "NoID"}, {"id": "a", "fullName": "A1"}, {"id": "a", "fullName": "A2", "skills": [{"name": "Go"}]}]`
	require.NoError(t, backend.Set(ctx, DefaultCollectionKey, []byte(payload)))
	store := NewStore(backend, Options{})

	first, err := store.LoadCollection(ctx)
	require.NoError(t, err)
	require.Len(t, first.Documents, 3)
	assert.True(t, first.Repaired)

	second, err := store.LoadCollection(ctx)
	require.NoError(t, err)
	assert.False(t, second.Repaired, "nothing left to assign")
	assert.Equal(t, first.Documents, second.Documents)
}

func TestLoadCollection_CleanCollectionIsNotRewritten(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory(0)
	payload := `[{"id": "a", "fullName": "Ana", "lastUpdated": "2024-01-01", "skills": [{"id": "s1", "name": "Go", "level": 140}]}]`
	require.NoError(t, backend.Set(ctx, DefaultCollectionKey, []byte(payload)))

	result, err := newTestStore(backend).LoadCollection(ctx)
	require.NoError(t, err)
	assert.False(t, result.Repaired)
	require.Len(t, result.Documents, 1)
	assert.Equal(t, "2024-01-01", result.Documents[0].LastUpdated)

	data, _, _ := backend.Get(ctx, DefaultCollectionKey)
	assert.Equal(t, payload, string(data))
}

func TestLoadCollection_RepairWriteFailureStillLoads(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory(0)
	payload := `[{"fullName": "NoID"}]`
	require.NoError(t, backend.Set(ctx, DefaultCollectionKey, []byte(payload)))

	result, err := newTestStore(readOnlyBackend{backend}).LoadCollection(ctx)
	require.NoError(t, err)
	require.Len(t, result.Documents, 1)
	assert.False(t, result.Repaired)

	data, _, _ := backend.Get(ctx, DefaultCollectionKey)
	assert.Equal(t, payload, string(data))
}

func TestLoadCollection_MigratesLegacyDocument(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory(0)
	legacy := `{"fullName": "Ana", "templateId": "red", "experiences": [{"id": "e1", "role": "Dev"}]}`
	require.NoError(t, backend.Set(ctx, DefaultLegacyKey, []byte(legacy)))
	store := newTestStore(backend)

	first, err := store.LoadCollection(ctx)
	require.NoError(t, err)
	assert.True(t, first.Migrated)
	require.Len(t, first.Documents, 1)
	assert.Equal(t, "gen-1", first.Documents[0].ID)
	assert.Equal(t, "Ana", first.Documents[0].FullName)
	assert.Equal(t, types.ThemeDark, first.Documents[0].ThemeMode)

	stored, ok, err := backend.Get(ctx, DefaultCollectionKey)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []types.ResumeDocument
	require.NoError(t, json.Unmarshal(stored, &persisted))
	assert.Equal(t, first.Documents, persisted)

	second, err := store.LoadCollection(ctx)
	require.NoError(t, err)
	assert.False(t, second.Migrated)
	assert.Equal(t, first.Documents, second.Documents)

	legacyAfter, _, _ := backend.Get(ctx, DefaultLegacyKey)
	assert.Equal(t, legacy, string(legacyAfter), "legacy slot is never written")
}

func TestLoadCollection_CorruptLegacyIsIgnored(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory(0)
	require.NoError(t, backend.Set(ctx, DefaultLegacyKey, []byte(`[1, 2, 3]`)))

	result, err := newTestStore(backend).LoadCollection(ctx)
	require.NoError(t, err)
	assert.Empty(t, result.Documents)
	assert.False(t, result.Migrated)

	_, ok, _ := backend.Get(ctx, DefaultCollectionKey)
	assert.False(t, ok)
}

func TestLoadCollection_PrimaryWinsOverLegacy(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory(0)
	require.NoError(t, backend.Set(ctx, DefaultCollectionKey, []byte(`[]`)))
	require.NoError(t, backend.Set(ctx, DefaultLegacyKey, []byte(`{"id": "legacy"}`)))

	result, err := newTestStore(backend).LoadCollection(ctx)
	require.NoError(t, err)
	assert.Empty(t, result.Documents)
	assert.False(t, result.Migrated)
}

func TestSaveCollection_QuotaExceeded(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory(512)
	store := newTestStore(backend)

	small := []types.ResumeDocument{{ID: "a", TemplateID: "original", ThemeMode: types.ThemeDark}}
	require.NoError(t, store.SaveCollection(ctx, small))
	before, _, _ := backend.Get(ctx, DefaultCollectionKey)

	big := sampleDoc("b")
	big.Summary = strings.Repeat("x", 1024)
	err := store.SaveCollection(ctx, []types.ResumeDocument{big})
	require.Error(t, err)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, KindQuotaExceeded, storageErr.Kind)
	assert.True(t, errors.Is(err, storage.ErrQuotaExceeded))
	assert.True(t, IsQuotaExceeded(err))

	after, _, _ := backend.Get(ctx, DefaultCollectionKey)
	assert.Equal(t, before, after)
}

func TestStore_BackendFailure(t *testing.T) {
	cause := errors.New("disk on fire")
	store := newTestStore(failingBackend{err: cause})

	_, err := store.LoadCollection(context.Background())
	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, KindUnknown, storageErr.Kind)
	assert.ErrorIs(t, err, cause)

	err = store.SaveCollection(context.Background(), nil)
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, KindUnknown, storageErr.Kind)
	assert.False(t, IsQuotaExceeded(err))
}

func TestNewStore_CustomKeys(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory(0)
	store := NewStore(backend, Options{CollectionKey: "c", LegacyKey: "l"})
	assert.Equal(t, "c", store.CollectionKey())
	assert.Equal(t, "l", store.LegacyKey())

	require.NoError(t, store.SaveCollection(ctx, nil))
	_, ok, _ := backend.Get(ctx, "c")
	assert.True(t, ok)
}
