package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDirectory struct {
	rooms map[string]bool
}

func (f *fakeDirectory) GameExists(ctx context.Context, id string) (bool, error) {
	return f.rooms[id], nil
}

func (f *fakeDirectory) CreateGame(ctx context.Context, id string) error {
	f.rooms[id] = true
	return nil
}

func TestCreateRoomPersistsFreshCode(t *testing.T) {
	dir := &fakeDirectory{rooms: map[string]bool{}}
	handler := CreateRoom(dir, zap.NewNop())

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/rooms", nil))

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Code, 6)
	assert.True(t, dir.rooms[body.Code], "room record not persisted")
}

func TestGenerateCodeShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1, "codes should not collide constantly")
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
