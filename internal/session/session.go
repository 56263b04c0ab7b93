// Package session manages the service session token through an opaque secret
// store. The file-backed store is the reference implementation; embedders
// with a platform keychain provide their own SecretStore.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aoc_companion/internal/models"
)

const tokenSecretName = "aoc.sessionToken"

// EnvSession overrides the stored token when set, for CI and one-off use.
const EnvSession = "AOC_SESSION"

// SecretStore is an opaque secret key-value store. A missing secret is
// (_, false, nil).
type SecretStore interface {
	GetSecret(name string) (string, bool, error)
	SetSecret(name, value string) error
	DeleteSecret(name string) error
}

// FileSecretStore keeps one 0600 file per secret under a private directory.
type FileSecretStore struct {
	dir string
}

func NewFileSecretStore(dir string) *FileSecretStore {
	return &FileSecretStore{dir: dir}
}

func (s *FileSecretStore) secretPath(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *FileSecretStore) GetSecret(name string) (string, bool, error) {
	data, err := os.ReadFile(s.secretPath(name))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read secret %s: %w", name, err)
	}
	return strings.TrimSpace(string(data)), true, nil
}

func (s *FileSecretStore) SetSecret(name, value string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create secrets dir: %w", err)
	}
	if err := os.WriteFile(s.secretPath(name), []byte(value), 0o600); err != nil {
		return fmt.Errorf("write secret %s: %w", name, err)
	}
	return nil
}

func (s *FileSecretStore) DeleteSecret(name string) error {
	if err := os.Remove(s.secretPath(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete secret %s: %w", name, err)
	}
	return nil
}

// Service wraps the secret store with the session-token specifics.
type Service struct {
	secrets SecretStore
}

func NewService(secrets SecretStore) *Service {
	return &Service{secrets: secrets}
}

// Token returns the session token, preferring the AOC_SESSION environment
// variable over the stored secret. models.ErrMissingSession when neither is
// set.
func (s *Service) Token() (string, error) {
	if env := strings.TrimSpace(os.Getenv(EnvSession)); env != "" {
		return env, nil
	}
	token, ok, err := s.secrets.GetSecret(tokenSecretName)
	if err != nil {
		return "", err
	}
	if !ok || token == "" {
		return "", models.ErrMissingSession
	}
	return token, nil
}

func (s *Service) SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("session token is empty")
	}
	return s.secrets.SetSecret(tokenSecretName, token)
}

func (s *Service) ClearToken() error {
	return s.secrets.DeleteSecret(tokenSecretName)
}

func (s *Service) HasToken() bool {
	_, err := s.Token()
	return err == nil
}
