package player

import (
	"fmt"
	"strings"
	"time"
)

// Player is a registered team member. Players outlive sessions: they are
// stored once and reusable across every recording session.
type Player struct {
	ID           string
	Name         string
	JerseyNumber int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.JerseyNumber <= 0 {
		return fmt.Errorf("player jersey number must be a positive integer")
	}
	return nil
}
