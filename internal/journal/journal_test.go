package journal

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapi-suta/runbookforge-sub002/internal/testutil"
)

func openTest(t *testing.T, opts ...Option) (*Journal, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j, path
}

func TestOpenCreatesDatabase(t *testing.T) {
	_, path := openTest(t)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	for i := 0; i < 3; i++ {
		j, err := Open(path)
		require.NoError(t, err, "iteration %d", i)

		var version int
		require.NoError(t, j.db.QueryRow("PRAGMA user_version").Scan(&version))
		assert.Equal(t, currentSchemaVersion, version)
		require.NoError(t, j.Close())
	}
}

func TestRecordFillsIDAndTime(t *testing.T) {
	at := time.Date(2026, 5, 1, 9, 30, 0, 123456789, time.UTC)
	j, _ := openTest(t, WithClock(func() time.Time { return at }))

	e, err := j.Record(context.Background(), Entry{Fingerprint: "abc", Title: "Drill", Slides: 7, Bytes: 4096})
	require.NoError(t, err)

	id, err := uuid.Parse(e.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Equal(t, at.Truncate(time.Millisecond), e.CreatedAt)
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	j, _ := openTest(t)

	for i, title := range []string{"first", "second", "third"} {
		_, err := j.Record(ctx, Entry{
			Fingerprint: "fp-" + title,
			Title:       title,
			Source:      title + ".json",
			Slides:      i + 1,
			Bytes:       int64(1000 * (i + 1)),
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	all, err := j.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Title)
	assert.Equal(t, "first", all[2].Title)
	assert.Equal(t, 3, all[0].Slides)
	assert.Equal(t, int64(3000), all[0].Bytes)
	assert.Equal(t, "third.json", all[0].Source)
	assert.Equal(t, base.Add(2*time.Hour), all[0].CreatedAt)

	limited, err := j.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestListOrdersByClock(t *testing.T) {
	ctx := context.Background()
	clock := testutil.NewStepClock(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), time.Second)
	j, _ := openTest(t, WithClock(clock.Now))

	for _, title := range []string{"a", "b", "c"} {
		_, err := j.Record(ctx, Entry{Fingerprint: "fp", Title: title})
		require.NoError(t, err)
	}

	got, err := j.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{got[0].Title, got[1].Title, got[2].Title})
	assert.Equal(t, int64(3), clock.Ticks())
}

func TestByFingerprint(t *testing.T) {
	ctx := context.Background()
	j, _ := openTest(t)

	for _, fp := range []string{"a", "b", "a"} {
		_, err := j.Record(ctx, Entry{Fingerprint: fp, Title: "t", Slides: 1, Bytes: 1})
		require.NoError(t, err)
	}

	got, err := j.ByFingerprint(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	none, err := j.ByFingerprint(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRecordRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	j, _ := openTest(t)

	_, err := j.Record(ctx, Entry{ID: "fixed", Fingerprint: "a", Title: "t"})
	require.NoError(t, err)
	_, err = j.Record(ctx, Entry{ID: "fixed", Fingerprint: "a", Title: "t"})
	assert.Error(t, err)
}
