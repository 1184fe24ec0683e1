package repository

import (
	"context"
	"testing"

	"feedbackManagement/internal/db"
	"feedbackManagement/models"
)

func TestFeedbackRepository_CreateAndList(t *testing.T) {
	d, err := db.Open("file:feedbackrepo?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	users := NewUserRepository(d)
	repo := NewFeedbackRepository(d)
	ctx := context.Background()

	alice, err := users.Create(ctx, "alice", "h", models.RoleEmployee)
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	bob, err := users.Create(ctx, "bob", "h", models.RoleManager)
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}

	// Empty store lists empty
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}

	// Create
	f, err := repo.Create(ctx, &models.Feedback{Message: "hello", FromUser: alice.ID, ToUser: bob.ID})
	if err != nil {
		t.Fatalf("create feedback: %v", err)
	}
	if f.ID == 0 || f.Message != "hello" || f.FromUser != alice.ID || f.ToUser != bob.ID {
		t.Fatalf("unexpected created feedback: %+v", f)
	}

	// GetByID
	g, err := repo.GetByID(ctx, f.ID)
	if err != nil || g == nil || g.Message != "hello" {
		t.Fatalf("get by id: %v %+v", err, g)
	}

	// Second record; List keeps insertion order
	f2, err := repo.Create(ctx, &models.Feedback{Message: "thanks", FromUser: bob.ID, ToUser: alice.ID})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	list, err = repo.List(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	if list[0].ID != f.ID || list[1].ID != f2.ID {
		t.Fatalf("list not in insertion order: %+v", list)
	}

	// ListByRecipient
	forAlice, err := repo.ListByRecipient(ctx, alice.ID)
	if err != nil || len(forAlice) != 1 || forAlice[0].Message != "thanks" {
		t.Fatalf("list by recipient: %v %+v", err, forAlice)
	}

	// CountAll
	n, err := repo.CountAll(ctx)
	if err != nil || n != 2 {
		t.Fatalf("count: %v n=%d", err, n)
	}
}

func TestFeedbackRepository_NilAndMissing(t *testing.T) {
	d, err := db.Open("file:feedbackreponil?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	repo := NewFeedbackRepository(d)
	ctx := context.Background()

	if _, err := repo.Create(ctx, nil); err == nil {
		t.Fatalf("expected error for nil feedback")
	}
	g, err := repo.GetByID(ctx, 12345)
	if err != nil || g != nil {
		t.Fatalf("expected nil for missing feedback, got %+v err=%v", g, err)
	}
}
