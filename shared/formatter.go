package shared

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

func MakeFullMoniker(hostName, handle string) string {
	return "@" + handle + "@" + hostName
}

// ParseMoniker splits a fully qualified username into handle and host.
// A missing host means the user is local and host comes back empty.
//
// For example:
//   "admin@http://ink.dev" returns ("admin", "ink.dev", nil)
//   "admin@ink.dev" returns ("admin", "ink.dev", nil)
//   "@admin" returns ("admin", "", nil)
//   "admin@foo@bar" returns ("", "", error)
func ParseMoniker(fqu string) (handle, host string, err error) {

	fqu = strings.TrimLeft(fqu, "@")
	split := strings.Split(fqu, "@")

	if len(split) == 1 {
		if split[0] == "" {
			return "", "", fmt.Errorf("couldn't parse username %s", fqu)
		}
		// Local user
		return split[0], "", nil
	}

	if len(split) != 2 {
		return "", "", fmt.Errorf("couldn't parse username %s", fqu)
	}

	host = split[1]
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "https://")

	if split[0] == "" || host == "" {
		return "", "", fmt.Errorf("couldn't parse username %s", fqu)
	}

	return split[0], host, nil
}

// ParseActorUrl extracts handle and host from an actor identity URL of the
// form https://{host}/ap/@{handle}.
func ParseActorUrl(actorUrl string) (handle, host string, err error) {
	parsed, parseErr := url.Parse(actorUrl)
	if parseErr != nil {
		return "", "", fmt.Errorf("failed to parse actor URL '%s': %v", actorUrl, parseErr)
	}
	path := strings.TrimPrefix(parsed.Path, "/ap/@")
	if path == parsed.Path || path == "" || strings.Contains(path, "/") {
		return "", "", errors.New("actor URL does not match the /ap/@{handle} convention: " + actorUrl)
	}
	return path, parsed.Hostname(), nil
}

// TimestampRfc formats a time the way it appears in activity documents.
func TimestampRfc(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
