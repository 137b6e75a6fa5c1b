package sessions

import (
	"context"
	"os"
	"path/filepath"

	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type fileSessionStore struct {
	Path string
	Log  *zap.Logger
}

// NewFileSessionStore persists the session as a single JSON document at path.
// Writes go through a temp file and rename so a crash never leaves a torn
// session behind.
func NewFileSessionStore(path string, logger *zap.Logger) contracts.SessionStore {
	return &fileSessionStore{Path: path, Log: logger}
}

func (s *fileSessionStore) Save(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return exceptions.ErrSessionStoreWrite(err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return exceptions.ErrSessionStoreWrite(err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return exceptions.ErrSessionStoreWrite(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return exceptions.ErrSessionStoreWrite(err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return exceptions.ErrSessionStoreWrite(err)
	}

	s.Log.Debug("fileSessionStore.Save succeeded", zap.String("path", s.Path))
	return nil
}

func (s *fileSessionStore) Load(ctx context.Context) (*models.Session, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return &models.Session{}, nil
	}
	if err != nil {
		return nil, exceptions.ErrSessionStoreRead(err)
	}

	session := new(models.Session)
	if err := json.Unmarshal(data, session); err != nil {
		// A corrupt session file is treated as logged out rather than
		// wedging the client.
		s.Log.Warn("fileSessionStore.Load discarding corrupt session file",
			zap.String("path", s.Path),
			zap.Error(err),
		)
		return &models.Session{}, nil
	}
	return session, nil
}

func (s *fileSessionStore) Clear(ctx context.Context) error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return exceptions.ErrSessionStoreClear(err)
	}
	return nil
}
