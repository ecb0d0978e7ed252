package httpapi

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"

	"go.uber.org/zap"

	"github.com/sheepshead/backend/internal/directory"
)

func GenerateCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, 6)
	for i := 0; i < 6; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

// CreateRoom persists a new room record under a fresh code. The game itself
// is created lazily when the first websocket attaches.
func CreateRoom(dir directory.Directory, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var code string
		for {
			c, err := GenerateCode()
			if err != nil {
				http.Error(w, "failed to generate code", http.StatusInternalServerError)
				return
			}
			exists, err := dir.GameExists(r.Context(), c)
			if err != nil {
				log.Error("room lookup failed", zap.Error(err))
				http.Error(w, "failed to create room", http.StatusInternalServerError)
				return
			}
			if !exists {
				code = c
				break
			}
			log.Info("collision on code, regenerating", zap.String("code", c))
		}

		if err := dir.CreateGame(r.Context(), code); err != nil {
			log.Error("room create failed", zap.Error(err))
			http.Error(w, "failed to create room", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(struct {
			Code string `json:"code"`
		}{Code: code})
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
