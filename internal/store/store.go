package store

import (
	"bufio"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	HighScoreFile = "highscore_secure.dat"
	separator     = "|"
)

var (
	ErrChecksum  = errors.New("checksum mismatch")
	ErrMalformed = errors.New("malformed record")
)

// Store keeps the high score and per-difficulty leaderboards as
// checksummed text files in one directory.
type Store struct {
	dir string
	key []byte
}

// New creates dir if needed. An empty key selects plain SHA-256, any
// other key switches checksums to HMAC-SHA256.
func New(dir string, key []byte) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir, key: key}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) checksum(payload string) string {
	if len(s.key) == 0 {
		sum := sha256.Sum256([]byte(payload))
		return hex.EncodeToString(sum[:])
	}
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Store) verify(payload, sum string) error {
	if !hmac.Equal([]byte(s.checksum(payload)), []byte(strings.ToLower(sum))) {
		return ErrChecksum
	}
	return nil
}

func (s *Store) SaveScore(score int) error {
	payload := strconv.Itoa(score)
	line := payload + separator + s.checksum(payload) + "\n"
	if err := s.write(HighScoreFile, []byte(line)); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

// LoadScore never fails: unreadable or tampered files count as 0.
func (s *Store) LoadScore() int {
	lines, err := s.readLines(HighScoreFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("store: read high score: %v", err)
		}
		return 0
	}
	if len(lines) == 0 {
		return 0
	}
	score, err := s.parseScore(lines[0])
	if err != nil {
		log.Printf("store: discarding high score: %v", err)
		return 0
	}
	return score
}

func (s *Store) parseScore(line string) (int, error) {
	parts := strings.Split(line, separator)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %d fields", ErrMalformed, len(parts))
	}
	if err := s.verify(parts[0], parts[1]); err != nil {
		return 0, err
	}
	score, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return score, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) write(name string, data []byte) error {
	f, err := os.OpenFile(s.path(name), os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	unlock, err := lockFile(f, true)
	if err != nil {
		return fmt.Errorf("lock %s: %w", name, err)
	}
	defer unlock()

	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}

func (s *Store) readLines(name string) ([]string, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	unlock, err := lockFile(f, false)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", name, err)
	}
	defer unlock()

	return scanLines(f)
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
