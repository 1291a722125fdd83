package postgres

import (
	"net/url"
	"strings"
)

// Target is the parsed view of a DB_URL used for connecting and for span
// and log attributes. Both postgres:// URLs and key=value DSNs are accepted.
type Target struct {
	DSN  string
	Name string
	Host string
}

// ParseTarget extracts the database name and host. With
// disablePreparedBinary set, URL-style DSNs get
// disable_prepared_binary_result=yes unless they already choose a value.
func ParseTarget(raw string, disablePreparedBinary bool) Target {
	raw = strings.TrimSpace(raw)
	target := Target{DSN: raw}

	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		target.Name = strings.TrimPrefix(u.Path, "/")
		target.Host = u.Host
		if disablePreparedBinary {
			q := u.Query()
			if q.Get("disable_prepared_binary_result") == "" {
				q.Set("disable_prepared_binary_result", "yes")
				u.RawQuery = q.Encode()
			}
			target.DSN = u.String()
		}
		return target
	}

	for _, field := range strings.Fields(raw) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)
		switch key {
		case "dbname":
			target.Name = value
		case "host":
			target.Host = value
		}
	}
	return target
}
