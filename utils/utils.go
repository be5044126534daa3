package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"praxis/config"
)

// GenerateInviteToken returns an opaque mixed-alphanumeric token for
// self-service enrollment links. 32 characters, well past the 10-character
// minimum a join URL needs to be unguessable.
func GenerateInviteToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// JoinURL builds the public self-enrollment link for an invite token.
func JoinURL(token string) string {
	return fmt.Sprintf("%s/course/join/%s", strings.TrimRight(config.AppConfig.BaseURL, "/"), token)
}
