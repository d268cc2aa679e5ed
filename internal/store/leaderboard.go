package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"catchthatlemon/internal/domain"
)

const (
	MaxEntries    = 5
	DefaultName   = "Player"
	MaxNameLength = 16
)

type Entry struct {
	Name  string
	Score int
}

func LeaderboardFile(d domain.Difficulty) string {
	return "leaderboard_" + strings.ToLower(d.String()) + ".dat"
}

// LoadLeaderboard skips broken lines instead of rejecting the whole file.
func (s *Store) LoadLeaderboard(d domain.Difficulty) []Entry {
	name := LeaderboardFile(d)
	lines, err := s.readLines(name)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("store: read %s: %v", name, err)
		}
		return nil
	}

	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		entry, err := s.parseEntry(line)
		if err != nil {
			log.Printf("store: %s line %d skipped: %v", name, i+1, err)
			continue
		}
		entries = append(entries, entry)
	}
	sortEntries(entries)
	return entries
}

func (s *Store) SaveLeaderboard(d domain.Difficulty, entries []Entry) error {
	entries = append([]Entry(nil), entries...)
	sortEntries(entries)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	var b strings.Builder
	for _, e := range entries {
		payload := SanitizeName(e.Name) + separator + strconv.Itoa(e.Score)
		b.WriteString(payload)
		b.WriteString(separator)
		b.WriteString(s.checksum(payload))
		b.WriteByte('\n')
	}
	if err := s.write(LeaderboardFile(d), []byte(b.String())); err != nil {
		return fmt.Errorf("save %s leaderboard: %w", d, err)
	}
	return nil
}

func (s *Store) parseEntry(line string) (Entry, error) {
	parts := strings.Split(line, separator)
	if len(parts) != 3 {
		return Entry{}, fmt.Errorf("%w: %d fields", ErrMalformed, len(parts))
	}
	if err := s.verify(parts[0]+separator+parts[1], parts[2]); err != nil {
		return Entry{}, err
	}
	score, err := strconv.Atoi(parts[1])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return Entry{Name: parts[0], Score: score}, nil
}

// Qualifies reports whether score earns a place on the board.
func Qualifies(entries []Entry, score int) bool {
	if score <= 0 {
		return false
	}
	if len(entries) < MaxEntries {
		return true
	}
	lowest := entries[0].Score
	for _, e := range entries[1:] {
		if e.Score < lowest {
			lowest = e.Score
		}
	}
	return score > lowest
}

// Insert returns a new board with the entry added, sorted and truncated.
func Insert(entries []Entry, name string, score int) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, Entry{Name: SanitizeName(name), Score: score})
	sortEntries(out)
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}

// SanitizeName keeps names from breaking the line format.
func SanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '|', '\n', '\r', '\t':
			return ' '
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLength]))
	}
	return name
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}
