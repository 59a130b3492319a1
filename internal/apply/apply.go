// Package apply rewrites target files with a synthesized shebang line
// and marks them executable.
package apply

import (
	"fmt"
	"os"
	"strings"

	"github.com/zoro11031/bang/internal/manifest"
	"github.com/zoro11031/bang/internal/shebang"
	"github.com/zoro11031/bang/internal/system"
	"github.com/zoro11031/bang/internal/ui"
)

// ExecutableMode is the mode set on every mutated file: rwx for the
// owner, rx for group and others. It replaces the previous mode bits
// outright rather than merging with them.
const ExecutableMode os.FileMode = 0755

// Options controls how the applier treats files that already carry a
// shebang and whether any mutation happens at all.
type Options struct {
	Force  bool
	DryRun bool
}

// Applier applies shebang lines to files
type Applier struct {
	fs   *system.FileSystem
	ui   *ui.UI
	opts Options
}

// New creates a new Applier instance
func New(fs *system.FileSystem, ui *ui.UI, opts Options) *Applier {
	return &Applier{
		fs:   fs,
		ui:   ui,
		opts: opts,
	}
}

// Run processes targets in order. The first failure aborts the whole
// batch; later targets are not touched.
func (a *Applier) Run(targets []manifest.Target) error {
	for _, t := range targets {
		if err := a.Apply(t.Path, t.Command); err != nil {
			return err
		}
	}
	return nil
}

// Apply applies the shebang for command to the file at path, honoring
// the force and dry-run options.
func (a *Applier) Apply(path, command string) error {
	exists, err := a.fs.FileExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("file not found: %s", path)
	}

	line := shebang.Line(command)

	content, err := a.fs.ReadFile(path)
	if err != nil {
		return err
	}

	if shebang.HasShebang(content) {
		if !a.opts.Force {
			if a.opts.DryRun {
				a.ui.Infof("would skip %s: already has a shebang", path)
			} else {
				a.ui.Infof("skipping %s: already has a shebang", path)
			}
			return nil
		}
		if a.opts.DryRun {
			a.ui.Infof("would replace shebang in %s with %s", path, line)
			return nil
		}
		// The first line is assumed to be the old shebang and dropped
		// without parsing it. A file whose first line merely starts
		// with #! loses that line too.
		a.ui.Warningf("replacing existing shebang in %s", path)
		content = dropFirstLine(content)
	} else if a.opts.DryRun {
		a.ui.Infof("would add %s to %s", line, path)
		return nil
	}

	if err := a.fs.WriteFile(path, line+"\n"+content); err != nil {
		return err
	}
	if err := a.fs.Chmod(path, ExecutableMode); err != nil {
		return err
	}

	a.ui.Successf("added %s to %s", line, path)
	return nil
}

func dropFirstLine(content string) string {
	idx := strings.IndexByte(content, '\n')
	if idx < 0 {
		return ""
	}
	return content[idx+1:]
}
