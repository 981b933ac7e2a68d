package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/docfind/core"
	"github.com/poiesic/docfind/storage"
)

func TestIDRoundTrip(t *testing.T) {
	ids := []core.ID{0, 1, 255, 70000, core.ID(1<<63 - 1), core.IDFromContent("some text")}
	for _, id := range ids {
		data := storage.MarshalID(id)
		got, err := storage.UnmarshalID(data)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestUnmarshalID_Truncated(t *testing.T) {
	_, err := storage.UnmarshalID(nil)
	assert.Error(t, err)
}

func TestDocumentRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	doc := &core.Document{
		Id:         core.IDFromContent("the full body of the document"),
		Name:       "physics-notes.txt",
		Text:       "the full body of the document",
		InsertedAt: now,
		UpdatedAt:  now.Add(5 * time.Minute),
	}

	data := storage.MarshalDocument(doc)
	got, err := storage.UnmarshalDocument(data)
	require.NoError(t, err)

	assert.Equal(t, doc.Id, got.Id)
	assert.Equal(t, doc.Name, got.Name)
	assert.Equal(t, doc.Text, got.Text)
	assert.True(t, doc.InsertedAt.Equal(got.InsertedAt))
	assert.True(t, doc.UpdatedAt.Equal(got.UpdatedAt))
}

func TestDocumentRoundTrip_EmptyText(t *testing.T) {
	doc := &core.Document{
		Name:       "empty.txt",
		InsertedAt: time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	data := storage.MarshalDocument(doc)
	got, err := storage.UnmarshalDocument(data)
	require.NoError(t, err)
	assert.Equal(t, "empty.txt", got.Name)
	assert.Empty(t, got.Text)
}

func TestUnmarshalDocument_Truncated(t *testing.T) {
	doc := &core.Document{
		Name:       "a.txt",
		Text:       "body",
		InsertedAt: time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	data := storage.MarshalDocument(doc)

	_, err := storage.UnmarshalDocument(data[:len(data)/2])
	assert.Error(t, err)
}
