// User collection access. Accounts are provisioned at seed time and never
// mutated through this layer; the portal has no self-registration.
package repo

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/parkview/go-grievance-backend/internal/domain"
)

// HashPassword returns the hex SHA-256 of plain. The stored password_hash
// column is an unsalted single-pass digest; this is a compatibility
// constraint of the existing user files and is not an endorsement of the
// scheme.
func HashPassword(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// seedUsers provisions one administrator and three citizens. The "outsider"
// account belongs to a different region on purpose, so the region-mismatch
// rejection path is exercisable against a fresh store.
func seedUsers(region string) [][]string {
	return [][]string{
		{uuid.NewString(), "admin", HashPassword("password"), "1", region, "9000"},
		{uuid.NewString(), "resident", HashPassword("password"), "0", region, "1234"},
		{uuid.NewString(), "neighbor", HashPassword("pass123"), "0", region, "5678"},
		{uuid.NewString(), "outsider", HashPassword("test"), "0", "Riverwood Heights", "9999"},
	}
}

func decodeUser(row []string) (domain.User, bool) {
	if len(row) < 6 {
		return domain.User{}, false
	}
	return domain.User{
		ID:           row[0],
		Username:     row[1],
		PasswordHash: row[2],
		IsAdmin:      row[3] == "1",
		Region:       row[4],
		AreaCode:     row[5],
	}, true
}

// ListUsers returns all provisioned accounts in file order.
func (s *Store) ListUsers() ([]domain.User, error) {
	rows, err := s.users.readAll()
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		if u, ok := decodeUser(row); ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// FindUserByUsername returns the account with the given username, or
// ErrNotFound.
func (s *Store) FindUserByUsername(username string) (*domain.User, error) {
	users, err := s.ListUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}
