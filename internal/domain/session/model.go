package session

import (
	"fmt"
	"strings"
	"time"
)

// Session is a named recording window for pass-rating events. Sessions are
// created once per scoring run and never updated or expired afterwards.
type Session struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

func (s Session) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("session name is required")
	}
	return nil
}
