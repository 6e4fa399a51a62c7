package domain

import "github.com/google/uuid"

// UserID is a server-assigned user identifier.
type UserID struct {
	uuid.UUID
}

// ParseUserID parses the canonical string form of a user id.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID{id}, nil
}

// User is the owner of all session-scoped data. Users are managed by the
// remote service exclusively; there is no local create.
type User struct {
	ID   UserID `json:"id"`
	Name Name   `json:"name"`
	Sex  Sex    `json:"sex"`
}

// Sex is used to select the applicable body-fat estimation formula.
type Sex uint8

const (
	SexFemale Sex = 0
	SexMale   Sex = 1
)

func (s Sex) String() string {
	if s == SexFemale {
		return "female"
	}
	return "male"
}
