// Package seed populates the database with realistic development data.
package seed

import (
	"fmt"
	"log"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"chirp/internal/mention"
	"chirp/internal/models"
)

// DefaultPassword is the password assigned to every seeded user.
const DefaultPassword = "password123"

// Seeder populates the database with fake users, tweets, and taggings.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes all seeded data. Taggings go first to satisfy foreign
// keys.
func (s *Seeder) ClearAll() error {
	for _, model := range []interface{}{
		&models.Tagging{},
		&models.Tweet{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	return nil
}

// SeedUsers creates n users with unique usernames and a shared known
// password. Roughly one in twenty accounts is deactivated so inactive-user
// paths have data to hit.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, n)
	users := make([]*models.User, 0, n)
	for len(users) < n {
		username := sanitizeUsername(gofakeit.Username())
		if username == "" || seen[username] {
			continue
		}
		seen[username] = true

		user := &models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@%s", strings.ToLower(username), gofakeit.DomainName()),
			Password: string(hashed),
			Active:   gofakeit.Number(1, 20) > 1,
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("creating user %q: %w", username, err)
		}
		users = append(users, user)
	}

	log.Printf("Seeded %d users (password: %s)", len(users), DefaultPassword)
	return users, nil
}

// SeedTweets creates n tweets authored by random active users. About a third
// of them mention another user inline, and a quarter carry explicit tag rows.
func (s *Seeder) SeedTweets(users []*models.User, n int) error {
	active := make([]*models.User, 0, len(users))
	for _, u := range users {
		if u.Active {
			active = append(active, u)
		}
	}
	if len(active) == 0 {
		return fmt.Errorf("no active users to author tweets")
	}

	tagged := 0
	for i := 0; i < n; i++ {
		author := active[gofakeit.Number(0, len(active)-1)]
		content := trimTweet(gofakeit.Sentence(gofakeit.Number(3, 18)))

		if gofakeit.Number(1, 3) == 1 {
			target := active[gofakeit.Number(0, len(active)-1)]
			content = trimTweet(fmt.Sprintf("@%s %s", target.Username, content))
		}

		tweet := &models.Tweet{UserID: author.ID, Content: content}
		if err := s.db.Create(tweet).Error; err != nil {
			return fmt.Errorf("creating tweet: %w", err)
		}

		// Materialize taggings the same way the API would: inline mentions
		// resolve by username, plus the occasional explicit extra tag.
		targets := make(map[uint]bool)
		for _, name := range mention.Extract(content) {
			for _, u := range active {
				if u.Username == name {
					targets[u.ID] = true
				}
			}
		}
		if gofakeit.Number(1, 4) == 1 {
			targets[active[gofakeit.Number(0, len(active)-1)].ID] = true
		}

		for userID := range targets {
			tagging := &models.Tagging{TweetID: tweet.ID, UserID: userID}
			if err := s.db.Create(tagging).Error; err != nil {
				return fmt.Errorf("creating tagging: %w", err)
			}
			tagged++
		}
	}

	log.Printf("Seeded %d tweets with %d taggings", n, tagged)
	return nil
}

// sanitizeUsername strips characters outside the allowed username alphabet
// and enforces the length cap.
func sanitizeUsername(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}
	name := b.String()
	if len(name) > 30 {
		name = name[:30]
	}
	return name
}

// trimTweet keeps content within the tweet length cap.
func trimTweet(content string) string {
	runes := []rune(content)
	if len(runes) > models.MaxTweetLength {
		runes = runes[:models.MaxTweetLength]
	}
	return string(runes)
}
