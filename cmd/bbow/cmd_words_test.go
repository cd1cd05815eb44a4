package main

import (
	"encoding/json"
	"testing"

	"github.com/nvandessel/bbow/internal/bbow"
)

func TestWordsCmd(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCmd(t, "pear Apple apple", "words")
	if err != nil {
		t.Fatalf("words failed: %v", err)
	}

	want := "apple  2\npear   1\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestWordsCmd_Ownership(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCmd(t, "pear Apple apple", "words", "--ownership")
	if err != nil {
		t.Fatalf("words failed: %v", err)
	}

	want := "apple  2  owned\npear   1  borrowed\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestWordsCmd_OwnershipJSON(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCmd(t, "cat Cat Dog", "words", "--ownership", "--json")
	if err != nil {
		t.Fatalf("words failed: %v", err)
	}

	var entries []bbow.Entry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	want := []bbow.Entry{
		{Word: "cat", Count: 2, Owned: false},
		{Word: "dog", Count: 1, Owned: true},
	}
	if len(entries) != len(want) {
		t.Fatalf("entries = %v, want %v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestWordsCmd_JSONWithoutOwnership(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCmd(t, "b a", "words", "--json")
	if err != nil {
		t.Fatalf("words failed: %v", err)
	}

	var counts []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &counts); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(counts) != 2 || counts[0]["word"] != "a" {
		t.Errorf("counts = %v, want a then b", counts)
	}
	if _, ok := counts[0]["owned"]; ok {
		t.Error("owned field should only appear with --ownership")
	}
}

func TestWordsCmd_NoWords(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCmd(t, "123 !!!", "words")
	if err != nil {
		t.Fatalf("words failed: %v", err)
	}
	if out != "No words found.\n" {
		t.Errorf("output = %q", out)
	}
}
