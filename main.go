package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/serroba/cde-access/internal/audit"
	"github.com/serroba/cde-access/internal/policy"
	"github.com/serroba/cde-access/internal/rbac"
	"github.com/serroba/cde-access/internal/store"
)

func main() {
	// Initialize the role matrix and capability engine
	engine := rbac.NewEngine(rbac.Default())

	// Initialize audit fan-out with an in-memory recorder
	hub := audit.NewHub()
	recorder := audit.NewMemoryRecorder()
	hub.Attach("compliance", recorder)

	// Initialize the access policy
	accessPolicy := policy.NewPolicy(policy.PolicyConfig{
		Engine: engine,
		Audit:  hub,
	})

	// Seed the document collaborator
	docs := store.NewMemoryStore()

	wipDoc := policy.Document{
		ID:      uuid.New().String(),
		OwnerID: "alice",
		Status:  policy.StatusWIP,
	}
	publishedDoc := policy.Document{
		ID:      uuid.New().String(),
		OwnerID: "alice",
		Status:  policy.StatusPublished,
	}

	for _, doc := range []policy.Document{wipDoc, publishedDoc} {
		if err := docs.Put(doc); err != nil {
			log.Fatalf("Seed document: %v", err)
		}
	}

	users := []policy.User{
		{ID: "alice", Role: rbac.RoleViewer},
		{ID: "bob", Role: rbac.RoleProjectManager},
		{ID: "carol", Role: rbac.RoleAdmin},
	}

	all, err := docs.List()
	if err != nil {
		log.Fatalf("List documents: %v", err)
	}

	for _, user := range users {
		log.Printf("%s (%s) capabilities: %v", user.ID, user.Role, engine.Permissions(user.Role))

		visible, err := accessPolicy.VisibleDocuments(user, all)
		if err != nil {
			log.Fatalf("Filter documents for %s: %v", user.ID, err)
		}

		log.Printf("%s sees %d of %d documents", user.ID, len(visible), len(all))

		for _, perm := range []rbac.Permission{rbac.PermissionView, rbac.PermissionDelete} {
			decision, err := accessPolicy.Evaluate(user, wipDoc, perm)
			if err != nil {
				log.Fatalf("Evaluate %s %s: %v", user.ID, perm, err)
			}

			if decision.Allowed {
				log.Printf("%s may %s document %s", user.ID, perm, wipDoc.ID)
			} else {
				log.Printf("%s may not %s document %s: %s", user.ID, perm, wipDoc.ID, decision.Reason)
			}
		}
	}

	// Workflow collaborator releases the WIP document; visibility widens.
	if err := docs.SetStatus(wipDoc.ID, policy.StatusTender); err != nil {
		log.Fatalf("Transition document: %v", err)
	}

	released, err := docs.Get(wipDoc.ID)
	if err != nil {
		log.Fatalf("Get document: %v", err)
	}

	decision, err := accessPolicy.Evaluate(users[1], released, rbac.PermissionView)
	if err != nil {
		log.Fatalf("Evaluate after release: %v", err)
	}

	log.Printf("After release to %s, %s allowed=%v", released.Status, users[1].ID, decision.Allowed)

	log.Printf("Audit trail: %d entries recorded", len(recorder.Entries()))
}
