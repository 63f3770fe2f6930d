package httpapi

import (
	"time"

	"github.com/passtrack-app/passtrack/internal/domain/passing"
	"github.com/passtrack-app/passtrack/internal/domain/player"
	"github.com/passtrack-app/passtrack/internal/domain/session"
)

type playerDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	JerseyNumber int       `json:"jersey_number"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type sessionDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type passEventDTO struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	PlayerID   string    `json:"player_id"`
	Rating     int       `json:"rating"`
	RecordedAt time.Time `json:"recorded_at"`
}

type playerStatsDTO struct {
	PlayerID      string  `json:"player_id"`
	Name          string  `json:"name"`
	JerseyNumber  int     `json:"jersey_number"`
	TotalPasses   int     `json:"total_passes"`
	AverageRating float64 `json:"average_rating"`
}

type createPlayerRequest struct {
	Name         string `json:"name" validate:"required"`
	JerseyNumber int    `json:"jersey_number" validate:"required,gt=0"`
}

type updatePlayerRequest struct {
	Name         string `json:"name" validate:"required"`
	JerseyNumber int    `json:"jersey_number" validate:"required,gt=0"`
}

type createSessionRequest struct {
	Name string `json:"name" validate:"required"`
}

type recordPassRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	PlayerID  string `json:"player_id" validate:"required"`
	Rating    *int   `json:"rating" validate:"required,min=0,max=3"`
}

type exportReportRequest struct {
	SessionIDs []string `json:"session_ids" validate:"required,min=1,dive,required"`
	Format     string   `json:"format" validate:"required,oneof=xlsx pdf"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:           p.ID,
		Name:         p.Name,
		JerseyNumber: p.JerseyNumber,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func sessionToDTO(s session.Session) sessionDTO {
	return sessionDTO{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}

func eventToDTO(e passing.Event) passEventDTO {
	return passEventDTO{
		ID:         e.ID,
		SessionID:  e.SessionID,
		PlayerID:   e.PlayerID,
		Rating:     int(e.Rating),
		RecordedAt: e.RecordedAt,
	}
}

func aggregateToDTO(a passing.PlayerAggregate) playerStatsDTO {
	return playerStatsDTO{
		PlayerID:      a.PlayerID,
		Name:          a.Name,
		JerseyNumber:  a.JerseyNumber,
		TotalPasses:   a.TotalPasses,
		AverageRating: a.AverageRating,
	}
}
