package shebang

import "testing"

func TestLine(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    string
	}{
		{"plain command", "node", "#!/usr/bin/env node"},
		{"command with args", "uv run --script", "#!/usr/bin/env -S uv run --script"},
		{"redundant -S stripped", "-S node", "#!/usr/bin/env node"},
		{"redundant -S with args", "-S uv run --script", "#!/usr/bin/env -S uv run --script"},
		{"surrounding whitespace trimmed", "  python3  ", "#!/usr/bin/env python3"},
		{"-S with extra spacing", "-S   node", "#!/usr/bin/env node"},
		{"bare -S", "-S", "#!/usr/bin/env "},
		{"-S prefix of a name is kept", "-Special", "#!/usr/bin/env -Special"},
		{"two-token interpreter", "deno run", "#!/usr/bin/env -S deno run"},
		{"empty command", "", "#!/usr/bin/env "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Line(tt.command)
			if got != tt.want {
				t.Errorf("Line(%q) = %q, want %q", tt.command, got, tt.want)
			}
		})
	}
}

func TestHasShebang(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"bash shebang", "#!/bin/bash\necho hi\n", true},
		{"env shebang", "#!/usr/bin/env node\n", true},
		{"bare marker", "#!", true},
		{"malformed but marked", "#!not a real interpreter\n", true},
		{"plain script", "echo hi\n", false},
		{"comment only", "# not a shebang\n", false},
		{"empty", "", false},
		{"marker not at start", "\n#!/bin/sh\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasShebang(tt.content); got != tt.want {
				t.Errorf("HasShebang(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}
