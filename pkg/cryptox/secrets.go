package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	pepperMu   sync.Mutex
	pepper     string
	pepperFile string
)

// SetPepperPath points the package at the pepper file. Must be called before
// the first hash or verify.
func SetPepperPath(file string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()
	pepperFile = file
	pepper = ""
}

// GetPepper returns the application pepper, loading or generating it on first
// use. Failure to obtain a pepper is unrecoverable.
func GetPepper() string {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	if pepper != "" {
		return pepper
	}

	var err error
	pepper, err = LoadOrGenerateKey(pepperFile)
	if err != nil {
		slog.Error("failed to load or generate pepper", slog.Any("err", err))
		os.Exit(1)
	}
	return pepper
}

// LoadOrGenerateKey reads a base64url key from path, generating and persisting
// a fresh 32-byte key when the file does not exist yet. It is used for both
// the password pepper and the session signing secret.
func LoadOrGenerateKey(path string) (string, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		raw := make([]byte, keyLength)
		if _, err := rand.Read(raw); err != nil {
			return "", err
		}
		key := base64.RawURLEncoding.EncodeToString(raw)
		if err := os.WriteFile(path, []byte(key+"\n"), 0600); err != nil {
			return "", err
		}
		return key, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - path comes from config
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
