package usecase

import (
	"errors"
	"testing"

	"github.com/passtrack-app/passtrack/internal/infrastructure/repository/memory"
	"github.com/passtrack-app/passtrack/internal/platform/id"
)

func newPlayerServiceForTest() (*PlayerService, *memory.PlayerRepository) {
	repo := memory.NewPlayerRepository()
	return NewPlayerService(repo, id.NewSequenceGenerator("player")), repo
}

func TestPlayerService_Add(t *testing.T) {
	svc, _ := newPlayerServiceForTest()

	created, err := svc.Add(t.Context(), "  Ana  ", 7)
	if err != nil {
		t.Fatalf("add player failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated player id")
	}
	if created.Name != "Ana" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.JerseyNumber != 7 {
		t.Fatalf("unexpected jersey number: %d", created.JerseyNumber)
	}
}

func TestPlayerService_Add_RejectsInvalid(t *testing.T) {
	svc, _ := newPlayerServiceForTest()

	if _, err := svc.Add(t.Context(), "   ", 7); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := svc.Add(t.Context(), "Ana", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for jersey 0, got %v", err)
	}
}

func TestPlayerService_Update(t *testing.T) {
	svc, _ := newPlayerServiceForTest()

	created, err := svc.Add(t.Context(), "Ana", 7)
	if err != nil {
		t.Fatalf("add player failed: %v", err)
	}

	updated, err := svc.Update(t.Context(), created.ID, "Ana Costa", 9)
	if err != nil {
		t.Fatalf("update player failed: %v", err)
	}
	if updated.Name != "Ana Costa" || updated.JerseyNumber != 9 {
		t.Fatalf("unexpected updated player: %+v", updated)
	}
}

func TestPlayerService_Update_MissingPlayer(t *testing.T) {
	svc, _ := newPlayerServiceForTest()

	if _, err := svc.Update(t.Context(), "player-404", "Ana", 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Delete_Idempotent(t *testing.T) {
	svc, _ := newPlayerServiceForTest()

	created, err := svc.Add(t.Context(), "Maya", 4)
	if err != nil {
		t.Fatalf("add player failed: %v", err)
	}

	deleted, err := svc.Delete(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("delete player failed: %v", err)
	}
	if !deleted {
		t.Fatalf("expected deleted=true on first delete")
	}

	deleted, err = svc.Delete(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if deleted {
		t.Fatalf("expected deleted=false on repeat delete")
	}
}

func TestPlayerService_List_InsertionOrder(t *testing.T) {
	svc, _ := newPlayerServiceForTest()

	for _, name := range []string{"Ana", "Iris", "Maya"} {
		if _, err := svc.Add(t.Context(), name, 1); err != nil {
			t.Fatalf("add %s failed: %v", name, err)
		}
	}

	players, err := svc.List(t.Context())
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}
	for i, want := range []string{"Ana", "Iris", "Maya"} {
		if players[i].Name != want {
			t.Fatalf("unexpected order at %d: got %q want %q", i, players[i].Name, want)
		}
	}
}
