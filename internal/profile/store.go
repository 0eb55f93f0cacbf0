package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
)

// Storage keys.
const (
	KeyPoints      = "points"
	KeyStreak      = "streak"
	KeyProfile     = "profile"
	KeyThemeAccent = "themeAccent"
	KeyUIScale     = "uiScale"
	KeyFavorites   = "favorites"
	keyBestPrefix  = "best:"
)

// Defaults for a fresh profile.
const (
	DefaultName   = "Player"
	DefaultAvatar = "😎"
	DefaultAccent = "#7c3aed"
	DefaultScale  = 1.0
)

// Scale bounds accepted by SetScale.
const (
	MinScale = 0.5
	MaxScale = 2.0
)

var (
	ErrNegativePoints = errors.New("profile: points must be non-negative")
	ErrInvalidAccent  = errors.New("profile: theme accent must be #rrggbb")
	ErrInvalidScale   = errors.New("profile: ui scale out of range")
	ErrEmptyName      = errors.New("profile: name must not be empty")
)

var errNegativeValue = errors.New("negative value")

var accentPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Identity is the display identity of the player.
type Identity struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Profile is a point-in-time copy of the profile state.
type Profile struct {
	Points      int      `json:"points"`
	Streak      int      `json:"streak"`
	Favorites   []string `json:"favorites"`
	Identity    Identity `json:"identity"`
	ThemeAccent string   `json:"themeAccent"`
	Scale       float64  `json:"uiScale"`
}

// Store is the process-wide profile. Mutations are atomic and persisted
// before they become visible.
type Store struct {
	kv     KV
	ns     string
	logger *log.Logger

	mu    sync.Mutex
	p     Profile
	best  map[string]int
	subs  map[int]func(Profile)
	subID int
}

// Option configures a Store.
type Option func(*Store)

// WithNamespace prefixes every key, giving each user of a shared backend
// their own profile.
func WithNamespace(ns string) Option {
	return func(s *Store) {
		if ns != "" {
			s.ns = "user:" + ns + ":"
		}
	}
}

// WithLogger sets the logger used for load warnings.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Open loads the profile from kv. Missing or malformed entries fall back
// to defaults; only backend read failures are returned.
func Open(kv KV, opts ...Option) (*Store, error) {
	s := &Store{
		kv:     kv,
		logger: log.Default().WithPrefix("profile"),
		best:   make(map[string]int),
		subs:   make(map[int]func(Profile)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) key(k string) string { return s.ns + k }

func (s *Store) get(k string) (string, bool, error) {
	v, ok, err := s.kv.Get(s.key(k))
	if err != nil {
		return "", false, fmt.Errorf("profile: read %s: %w", k, err)
	}
	return v, ok, nil
}

func (s *Store) set(k, v string) error {
	if err := s.kv.Set(s.key(k), v); err != nil {
		return fmt.Errorf("profile: write %s: %w", k, err)
	}
	return nil
}

func (s *Store) add(k string, delta int) (int, error) {
	n, err := s.kv.Add(s.key(k), delta)
	if err != nil {
		return 0, fmt.Errorf("profile: add %s: %w", k, err)
	}
	return n, nil
}

func (s *Store) malformed(k, v string, err error) {
	s.logger.Warn("malformed profile entry, using default", "key", k, "value", v, "err", err)
}

func (s *Store) load() error {
	s.p = Profile{
		Favorites:   []string{},
		Identity:    Identity{Name: DefaultName, Avatar: DefaultAvatar},
		ThemeAccent: DefaultAccent,
		Scale:       DefaultScale,
	}

	for _, k := range []string{KeyPoints, KeyStreak} {
		v, ok, err := s.get(k)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err == nil && n < 0 {
			err = errNegativeValue
		}
		if err != nil {
			s.malformed(k, v, err)
			continue
		}
		if k == KeyPoints {
			s.p.Points = n
		} else {
			s.p.Streak = n
		}
	}

	if v, ok, err := s.get(KeyProfile); err != nil {
		return err
	} else if ok {
		var id Identity
		if err := json.Unmarshal([]byte(v), &id); err != nil || id.Name == "" {
			s.malformed(KeyProfile, v, err)
		} else {
			if id.Avatar == "" {
				id.Avatar = DefaultAvatar
			}
			s.p.Identity = id
		}
	}

	if v, ok, err := s.get(KeyThemeAccent); err != nil {
		return err
	} else if ok {
		if accentPattern.MatchString(v) {
			s.p.ThemeAccent = v
		} else {
			s.malformed(KeyThemeAccent, v, ErrInvalidAccent)
		}
	}

	if v, ok, err := s.get(KeyUIScale); err != nil {
		return err
	} else if ok {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil && (f < MinScale || f > MaxScale) {
			err = ErrInvalidScale
		}
		if err != nil {
			s.malformed(KeyUIScale, v, err)
		} else {
			s.p.Scale = f
		}
	}

	if v, ok, err := s.get(KeyFavorites); err != nil {
		return err
	} else if ok {
		var favs []string
		if err := json.Unmarshal([]byte(v), &favs); err != nil {
			s.malformed(KeyFavorites, v, err)
		} else {
			for _, id := range favs {
				if id != "" && !slices.Contains(s.p.Favorites, id) {
					s.p.Favorites = append(s.p.Favorites, id)
				}
			}
		}
	}
	return nil
}

// Reload re-reads the profile from the backend, picking up writes made
// through other stores sharing it. Subscribers are not notified.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.p
	if err := s.load(); err != nil {
		s.p = prev
		return err
	}
	clear(s.best)
	return nil
}

// Snapshot returns a copy of the current profile.
func (s *Store) Snapshot() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Profile {
	p := s.p
	p.Favorites = slices.Clone(s.p.Favorites)
	return p
}

// Subscribe registers fn to receive the profile after every mutation.
// The returned func unregisters it.
func (s *Store) Subscribe(fn func(Profile)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.subID
	s.subID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// commit runs under s.mu and returns the notifications to deliver once
// the lock is released.
func (s *Store) commit() func() {
	p := s.snapshotLocked()
	subs := make([]func(Profile), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return func() {
		for _, fn := range subs {
			fn(p)
		}
	}
}

func (s *Store) mutate(fn func() error) error {
	s.mu.Lock()
	if err := fn(); err != nil {
		s.mu.Unlock()
		return err
	}
	notify := s.commit()
	s.mu.Unlock()
	notify()
	return nil
}

// AddPoints adds a non-negative amount to the total.
func (s *Store) AddPoints(amount int) error {
	if amount < 0 {
		return ErrNegativePoints
	}
	return s.mutate(func() error {
		next, err := s.add(KeyPoints, amount)
		if err != nil {
			return err
		}
		s.p.Points = next
		return nil
	})
}

// IncrementStreak adds one to the streak.
func (s *Store) IncrementStreak() error {
	return s.mutate(func() error {
		next, err := s.add(KeyStreak, 1)
		if err != nil {
			return err
		}
		s.p.Streak = next
		return nil
	})
}

// ResetStreak sets the streak to zero.
func (s *Store) ResetStreak() error {
	return s.mutate(func() error {
		if err := s.set(KeyStreak, "0"); err != nil {
			return err
		}
		s.p.Streak = 0
		return nil
	})
}

// ToggleFavorite adds or removes gameID from the favorites and reports
// whether it is a favorite afterwards.
func (s *Store) ToggleFavorite(gameID string) (bool, error) {
	var fav bool
	err := s.mutate(func() error {
		next := slices.Clone(s.p.Favorites)
		if i := slices.Index(next, gameID); i >= 0 {
			next = slices.Delete(next, i, i+1)
		} else {
			next = append(next, gameID)
		}
		raw, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("profile: encode favorites: %w", err)
		}
		if err := s.set(KeyFavorites, string(raw)); err != nil {
			return err
		}
		s.p.Favorites = next
		fav = slices.Contains(next, gameID)
		return nil
	})
	return fav, err
}

// IsFavorite reports whether gameID is a favorite.
func (s *Store) IsFavorite(gameID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.p.Favorites, gameID)
}

// SetIdentity updates the display name and avatar. An empty avatar keeps
// the default.
func (s *Store) SetIdentity(id Identity) error {
	if id.Name == "" {
		return ErrEmptyName
	}
	if id.Avatar == "" {
		id.Avatar = DefaultAvatar
	}
	return s.mutate(func() error {
		raw, err := json.Marshal(id)
		if err != nil {
			return fmt.Errorf("profile: encode identity: %w", err)
		}
		if err := s.set(KeyProfile, string(raw)); err != nil {
			return err
		}
		s.p.Identity = id
		return nil
	})
}

// ValidAccent reports whether accent is a #rrggbb color.
func ValidAccent(accent string) bool {
	return accentPattern.MatchString(accent)
}

// SetThemeAccent sets the accent color, a #rrggbb hex string.
func (s *Store) SetThemeAccent(accent string) error {
	if !ValidAccent(accent) {
		return ErrInvalidAccent
	}
	return s.mutate(func() error {
		if err := s.set(KeyThemeAccent, accent); err != nil {
			return err
		}
		s.p.ThemeAccent = accent
		return nil
	})
}

// SetScale sets the UI scale factor.
func (s *Store) SetScale(scale float64) error {
	if scale < MinScale || scale > MaxScale {
		return ErrInvalidScale
	}
	return s.mutate(func() error {
		if err := s.set(KeyUIScale, strconv.FormatFloat(scale, 'f', -1, 64)); err != nil {
			return err
		}
		s.p.Scale = scale
		return nil
	})
}

// BestScore returns the stored best score for gameID, 0 if none.
func (s *Store) BestScore(gameID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bestLocked(gameID)
}

func (s *Store) bestLocked(gameID string) int {
	if n, ok := s.best[gameID]; ok {
		return n
	}
	n := 0
	v, ok, err := s.get(keyBestPrefix + gameID)
	switch {
	case err != nil:
		s.logger.Warn("cannot read best score", "game", gameID, "err", err)
	case ok:
		parsed, perr := strconv.Atoi(v)
		if perr == nil && parsed < 0 {
			perr = errNegativeValue
		}
		if perr != nil {
			s.malformed(keyBestPrefix+gameID, v, perr)
		} else {
			n = parsed
		}
	}
	s.best[gameID] = n
	return n
}

// RecordBest stores score as the best for gameID when it beats the
// current best, and reports whether it did.
func (s *Store) RecordBest(gameID string, score int) (bool, error) {
	var improved bool
	err := s.mutate(func() error {
		// Another store on the same backend may have raised it.
		delete(s.best, gameID)
		if score <= s.bestLocked(gameID) {
			return nil
		}
		if err := s.set(keyBestPrefix+gameID, strconv.Itoa(score)); err != nil {
			return err
		}
		s.best[gameID] = score
		improved = true
		return nil
	})
	return improved, err
}
