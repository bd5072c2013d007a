package main

import (
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"simple",
			"Hello, World!\n3\n",
			"Enter the message you want to encrypt: Enter the key value: Encrypted message: Khoor, Zruog!\n",
		},
		{
			"negative key",
			"Shift\n-1\n",
			"Enter the message you want to encrypt: Enter the key value: Encrypted message: Rghes\n",
		},
		{
			"empty message",
			"\n5\n",
			"Enter the message you want to encrypt: Enter the key value: Encrypted message: \n",
		},
		{
			"message with spaces",
			"attack at dawn\n13\n",
			"Enter the message you want to encrypt: Enter the key value: Encrypted message: nggnpx ng qnja\n",
		},
		{
			"missing final newline",
			"abcXYZ\n1",
			"Enter the message you want to encrypt: Enter the key value: Encrypted message: bcdYZA\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &strings.Builder{}
			err := run(strings.NewReader(tt.input), out)
			if err != nil {
				t.Fatal(err)
			}
			if have, want := out.String(), tt.want; have != want {
				t.Fatalf("Output %q != %q", have, want)
			}
		})
	}
}

func TestRunInvalidKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"word", "Hello\nthree\n"},
		{"fraction", "Hello\n1.5\n"},
		{"empty", "Hello\n\n"},
		{"no key at all", "Hello\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &strings.Builder{}
			err := run(strings.NewReader(tt.input), out)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if strings.Contains(out.String(), "Encrypted message:") {
				t.Fatalf("Transform attempted on invalid key: %q", out.String())
			}
		})
	}
}
