// Package shebang builds interpreter directive lines for executable
// text files. Commands are routed through /usr/bin/env so the resulting
// line works regardless of where the interpreter is installed; commands
// carrying their own arguments use the env -S form, since a plain
// shebang line passes at most one token to the interpreter.
package shebang

import "strings"

// Prefix is the two-character marker that identifies a shebang line.
const Prefix = "#!"

// Line builds the shebang line for a command. A redundant leading -S
// supplied by the user is stripped before deciding which form to emit.
// The result has no trailing newline.
func Line(command string) string {
	cmd := strings.TrimSpace(command)
	if cmd == "-S" {
		cmd = ""
	} else if rest, ok := strings.CutPrefix(cmd, "-S"); ok && (strings.HasPrefix(rest, " ") || strings.HasPrefix(rest, "\t")) {
		cmd = strings.TrimLeft(rest, " \t")
	}

	if strings.Contains(cmd, " ") {
		return "#!/usr/bin/env -S " + cmd
	}
	return "#!/usr/bin/env " + cmd
}

// HasShebang reports whether content starts with the shebang marker.
// This is a textual check on the first two characters, not a parse of
// the interpreter line.
func HasShebang(content string) bool {
	return strings.HasPrefix(content, Prefix)
}
