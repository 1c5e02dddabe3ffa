package game

import (
	"strconv"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/aaronzipp/classroom-arcade/internal/store"
)

// GenerateSessionName creates a random human-readable session name
func GenerateSessionName() string {
	return petname.Generate(SessionNameWords, SessionNameSeparator)
}

// GetUniqueSessionName generates a session name not used by any stored session
func GetUniqueSessionName(sessionStore *store.SessionStore) string {
	name := GenerateSessionName()
	for i := 0; i < MaxNameAttempts; i++ {
		if !sessionStore.NameTaken(name) {
			return name
		}
		name = GenerateSessionName()
	}
	// fall back to a numbered suffix once random names keep colliding
	for n := 2; ; n++ {
		candidate := name + SessionNameSeparator + strconv.Itoa(n)
		if !sessionStore.NameTaken(candidate) {
			return candidate
		}
	}
}
