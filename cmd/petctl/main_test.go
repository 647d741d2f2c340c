package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func runPetctl(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--db", db}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestActThenStatus(t *testing.T) {
	db := filepath.Join(t.TempDir(), "pet.db")

	out, err := runPetctl(t, db, "act", "talk", "--json")
	if err != nil {
		t.Fatalf("act: %v\n%s", err, out)
	}
	var resp struct {
		Result struct {
			Action string `json:"action"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode act output %q: %v", out, err)
	}
	if resp.Result.Action != "praise" {
		t.Fatalf("expected talk to apply praise, got %q", resp.Result.Action)
	}

	out, err = runPetctl(t, db, "status")
	if err != nil {
		t.Fatalf("status: %v\n%s", err, out)
	}
	if !strings.Contains(out, "pet-1 the Newborn") {
		t.Fatalf("unexpected status output:\n%s", out)
	}
}

func TestCookFillsInventory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "pet.db")

	out, err := runPetctl(t, db, "cook", "milk", "banana", "--actions", "mix,mix,cook")
	if err != nil {
		t.Fatalf("cook: %v\n%s", err, out)
	}
	if !strings.Contains(out, "(new!)") {
		t.Fatalf("expected a new recipe:\n%s", out)
	}

	out, err = runPetctl(t, db, "inventory")
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	if !strings.Contains(out, " 1x ") || !strings.Contains(out, "banana,milk|MIX,MIX,COOK") {
		t.Fatalf("unexpected inventory:\n%s", out)
	}

	if out, err := runPetctl(t, db, "feed", "banana,milk|MIX,MIX,COOK"); err != nil {
		t.Fatalf("feed: %v\n%s", err, out)
	}
	if _, err := runPetctl(t, db, "feed", "banana,milk|MIX,MIX,COOK"); err == nil {
		t.Fatalf("expected the second serving to be unavailable")
	}
}

func TestPetsListsEveryStoredPet(t *testing.T) {
	db := filepath.Join(t.TempDir(), "pet.db")

	out, err := runPetctl(t, db, "pets")
	if err != nil {
		t.Fatalf("pets: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No pets yet.") {
		t.Fatalf("expected an empty listing:\n%s", out)
	}

	for _, pet := range []string{"pet-b", "pet-a"} {
		if out, err := runPetctl(t, db, "--pet", pet, "act", "talk"); err != nil {
			t.Fatalf("act %s: %v\n%s", pet, err, out)
		}
	}

	out, err = runPetctl(t, db, "pets", "--json")
	if err != nil {
		t.Fatalf("pets: %v\n%s", err, out)
	}
	var resp struct {
		Pets []string `json:"pets"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode pets output %q: %v", out, err)
	}
	if len(resp.Pets) != 2 || resp.Pets[0] != "pet-a" || resp.Pets[1] != "pet-b" {
		t.Fatalf("unexpected pets: %v", resp.Pets)
	}
}

func TestIngredientsAllListsCatalog(t *testing.T) {
	db := filepath.Join(t.TempDir(), "pet.db")

	out, err := runPetctl(t, db, "ingredients", "--all")
	if err != nil {
		t.Fatalf("ingredients: %v\n%s", err, out)
	}
	if !strings.Contains(out, "milk") || !strings.Contains(out, "from phase 1") {
		t.Fatalf("unexpected catalog listing:\n%s", out)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown action", []string{"act", "juggle"}},
		{"unknown ingredient", []string{"cook", "pizza"}},
		{"wake while awake", []string{"wake"}},
		{"act needs an argument", []string{"act"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := filepath.Join(t.TempDir(), "pet.db")
			if _, err := runPetctl(t, db, tt.args...); err == nil {
				t.Fatalf("expected %v to fail", tt.args)
			}
		})
	}
}

func TestJournalFiltersByType(t *testing.T) {
	db := filepath.Join(t.TempDir(), "pet.db")
	for _, action := range []string{"play", "clean", "comfort"} {
		if out, err := runPetctl(t, db, "act", action); err != nil {
			t.Fatalf("%s: %v\n%s", action, err, out)
		}
	}

	out, err := runPetctl(t, db, "journal", "--type", "action_applied", "--limit", "2", "--json")
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	var resp struct {
		Events []struct {
			Type string `json:"type"`
		} `json:"events"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode journal %q: %v", out, err)
	}
	if len(resp.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(resp.Events))
	}
}

func TestSummarize(t *testing.T) {
	got := summarize(map[string]any{"pet_id": "p", "action": "feed", "reason": "burned"})
	if got != "action=feed reason=burned" {
		t.Fatalf("summarize() = %q", got)
	}
}
