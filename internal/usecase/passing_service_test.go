package usecase

import (
	"errors"
	"math"
	"testing"

	"github.com/passtrack-app/passtrack/internal/domain/passing"
	"github.com/passtrack-app/passtrack/internal/infrastructure/repository/memory"
	"github.com/passtrack-app/passtrack/internal/platform/id"
)

type passingFixture struct {
	players *PlayerService
	session *SessionService
	passing *PassingService
}

func newPassingFixture() passingFixture {
	playerRepo := memory.NewPlayerRepository()
	sessionRepo := memory.NewSessionRepository()
	passRepo := memory.NewPassEventRepository(playerRepo)

	return passingFixture{
		players: NewPlayerService(playerRepo, id.NewSequenceGenerator("player")),
		session: NewSessionService(sessionRepo, id.NewSequenceGenerator("session")),
		passing: NewPassingService(sessionRepo, playerRepo, passRepo, id.NewSequenceGenerator("pass")),
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPassingService_RecordPass_AggregatesAcrossEvents(t *testing.T) {
	fx := newPassingFixture()

	ana, err := fx.players.Add(t.Context(), "Ana", 7)
	if err != nil {
		t.Fatalf("add player failed: %v", err)
	}
	practice, err := fx.session.Create(t.Context(), "Tuesday Practice")
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}

	var last passing.PlayerAggregate
	for _, rating := range []int{2, 3, 1} {
		_, agg, err := fx.passing.RecordPass(t.Context(), practice.ID, ana.ID, rating)
		if err != nil {
			t.Fatalf("record pass rating=%d failed: %v", rating, err)
		}
		last = agg
	}

	if last.TotalPasses != 3 {
		t.Fatalf("expected 3 passes, got %d", last.TotalPasses)
	}
	if !almostEqual(last.AverageRating, 2.0) {
		t.Fatalf("expected average 2.0, got %v", last.AverageRating)
	}
}

func TestPassingService_RecordPass_RejectsOutOfRangeRating(t *testing.T) {
	fx := newPassingFixture()

	ana, _ := fx.players.Add(t.Context(), "Ana", 7)
	practice, _ := fx.session.Create(t.Context(), "Tuesday Practice")

	for _, rating := range []int{-1, 4, 10} {
		if _, _, err := fx.passing.RecordPass(t.Context(), practice.ID, ana.ID, rating); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for rating=%d, got %v", rating, err)
		}
	}

	// The rejected events must not have been stored.
	agg, err := fx.passing.PlayerStats(t.Context(), practice.ID, ana.ID)
	if err != nil {
		t.Fatalf("player stats failed: %v", err)
	}
	if agg.TotalPasses != 0 {
		t.Fatalf("expected 0 stored passes, got %d", agg.TotalPasses)
	}
}

func TestPassingService_RecordPass_UnknownSessionOrPlayer(t *testing.T) {
	fx := newPassingFixture()

	ana, _ := fx.players.Add(t.Context(), "Ana", 7)
	practice, _ := fx.session.Create(t.Context(), "Tuesday Practice")

	if _, _, err := fx.passing.RecordPass(t.Context(), "session-404", ana.ID, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown session, got %v", err)
	}
	if _, _, err := fx.passing.RecordPass(t.Context(), practice.ID, "player-404", 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}
}

func TestPassingService_UndoLastPass_RemovesNewestEvent(t *testing.T) {
	fx := newPassingFixture()

	ana, _ := fx.players.Add(t.Context(), "Ana", 7)
	practice, _ := fx.session.Create(t.Context(), "Tuesday Practice")

	for _, rating := range []int{2, 3, 1} {
		if _, _, err := fx.passing.RecordPass(t.Context(), practice.ID, ana.ID, rating); err != nil {
			t.Fatalf("record pass failed: %v", err)
		}
	}

	removed, agg, err := fx.passing.UndoLastPass(t.Context(), practice.ID, ana.ID)
	if err != nil {
		t.Fatalf("undo last pass failed: %v", err)
	}
	if removed.Rating != 1 {
		t.Fatalf("expected newest event (rating 1) removed, got rating %d", removed.Rating)
	}
	if agg.TotalPasses != 2 {
		t.Fatalf("expected 2 passes after undo, got %d", agg.TotalPasses)
	}
	if !almostEqual(agg.AverageRating, 2.5) {
		t.Fatalf("expected average 2.5 after undo, got %v", agg.AverageRating)
	}
}

func TestPassingService_UndoLastPass_NothingToUndo(t *testing.T) {
	fx := newPassingFixture()

	ana, _ := fx.players.Add(t.Context(), "Ana", 7)
	practice, _ := fx.session.Create(t.Context(), "Tuesday Practice")

	if _, _, err := fx.passing.UndoLastPass(t.Context(), practice.ID, ana.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPassingService_SessionStats_IncludesZeroPassPlayers(t *testing.T) {
	fx := newPassingFixture()

	ana, _ := fx.players.Add(t.Context(), "Ana", 7)
	iris, _ := fx.players.Add(t.Context(), "Iris", 11)
	practice, _ := fx.session.Create(t.Context(), "Tuesday Practice")

	if _, _, err := fx.passing.RecordPass(t.Context(), practice.ID, ana.ID, 3); err != nil {
		t.Fatalf("record pass failed: %v", err)
	}

	stats, err := fx.passing.SessionStats(t.Context(), practice.ID)
	if err != nil {
		t.Fatalf("session stats failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(stats))
	}
	if stats[0].PlayerID != ana.ID || stats[0].TotalPasses != 1 {
		t.Fatalf("unexpected first row: %+v", stats[0])
	}
	if stats[1].PlayerID != iris.ID {
		t.Fatalf("unexpected second row: %+v", stats[1])
	}
	if stats[1].TotalPasses != 0 || !almostEqual(stats[1].AverageRating, 0) {
		t.Fatalf("expected zero-valued row for player without events, got %+v", stats[1])
	}
}

func TestPassingService_PlayerStats_UnknownPlayer(t *testing.T) {
	fx := newPassingFixture()

	practice, _ := fx.session.Create(t.Context(), "Tuesday Practice")

	if _, err := fx.passing.PlayerStats(t.Context(), practice.ID, "player-404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
