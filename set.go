package wildpat

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	slogctx "github.com/veqryn/slog-context"
)

// SetResult describes the outcome of probing a value against a Set.
type SetResult struct {
	// Name of the matching template (empty if Matched == false).
	Name string

	// Template is the source text of the matching template.
	Template string

	Result
}

// WarningHandler is called for each parse warning if set.
type WarningHandler func(warning ParseWarning)

// SetOptions configures Set behavior.
type SetOptions struct {
	// Pattern options applied to every template added to the set.
	Pattern Options

	// Prefilter compiles each template into a glob (marker as '*') and uses
	// it to reject values before running the exact alignment.
	// Default: false.
	Prefilter bool
}

// setEntry is one named template of a Set.
type setEntry struct {
	name      string
	pattern   *Pattern
	prefilter glob.Glob // nil when prefiltering is off
}

// Set holds an ordered collection of named templates that values can be
// probed against. The first template added wins when several match.
//
// Thread Safety: Set is safe for concurrent use. Add and AddTemplates take a
// write lock; Probe, ProbeAll and Format take a read lock.
type Set struct {
	mu       sync.RWMutex
	entries  []*setEntry
	byName   map[string]*setEntry
	warnings []ParseWarning
	handler  WarningHandler
	opts     SetOptions
}

// NewSet creates an empty Set with default options.
func NewSet() *Set {
	return NewSetWithOptions(SetOptions{})
}

// NewSetWithOptions creates an empty Set with custom options.
func NewSetWithOptions(opts SetOptions) *Set {
	opts.Pattern = opts.Pattern.withDefaults()
	return &Set{
		byName: make(map[string]*setEntry),
		opts:   opts,
	}
}

// SetWarningHandler sets a callback for parse warnings.
// If set, warnings are reported via callback instead of being collected.
// Must be called before AddTemplates for the handler to receive warnings.
// The handler is called without the set's lock held.
func (s *Set) SetWarningHandler(fn WarningHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = fn
}

// Add compiles template and appends it under name.
// Returns an error wrapping ErrDuplicateName if name is already taken.
func (s *Set) Add(name, template string) error {
	if name == "" {
		return fmt.Errorf("adding template %q: name is empty", template)
	}

	e := s.newEntry(name, template)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[name]; ok {
		return fmt.Errorf("adding template %q: %w: %s", template, ErrDuplicateName, name)
	}
	s.insert(e)
	return nil
}

// AddTemplates parses a template list and appends its templates.
//
// Input normalization (applied automatically):
//   - UTF-8 BOM is stripped if present
//   - CRLF and CR line endings are normalized to LF
//   - Leading and trailing spaces and tabs on each line are trimmed
//
// Lines with an empty name, an empty template, or a name already in the set
// are skipped with a warning. Templates without a marker are kept, but warned
// about since they only ever match themselves.
//
// Returns warnings only if no WarningHandler was set.
func (s *Set) AddTemplates(content []byte) []ParseWarning {
	if content == nil {
		return nil
	}

	// Parse and compile outside the lock
	parsed, warnings := parseTemplates(content)
	entries := make([]*setEntry, 0, len(parsed))
	for _, p := range parsed {
		e := s.newEntry(p.name, p.template)
		if e.pattern.MarkerCount() == 0 {
			warnings = append(warnings, ParseWarning{
				Name:    p.name,
				Line:    p.line,
				Text:    p.template,
				Message: "template has no marker and only matches itself",
			})
		}
		entries = append(entries, e)
	}

	s.mu.Lock()
	for i, e := range entries {
		if _, ok := s.byName[e.name]; ok {
			warnings = append(warnings, ParseWarning{
				Name:    e.name,
				Line:    parsed[i].line,
				Text:    parsed[i].template,
				Message: "duplicate template name",
			})
			continue
		}
		s.insert(e)
	}

	slices.SortStableFunc(warnings, func(a, b ParseWarning) int {
		return cmp.Compare(a.Line, b.Line)
	})

	handler := s.handler
	if handler == nil {
		s.warnings = append(s.warnings, warnings...)
	}
	s.mu.Unlock()

	// The handler runs unlocked and may call back into the set
	if handler != nil {
		for _, w := range warnings {
			handler(w)
		}
		return nil
	}
	return warnings
}

// newEntry compiles a template, and its prefilter when enabled.
func (s *Set) newEntry(name, template string) *setEntry {
	e := &setEntry{
		name:    name,
		pattern: CompileWithOptions(template, s.opts.Pattern),
	}
	// glob stops lexing at NUL, so such templates skip the prefilter
	if s.opts.Prefilter && strings.IndexByte(template, 0) < 0 {
		// nil disables prefiltering for this entry only
		if g, err := glob.Compile(globOf(e.pattern)); err == nil {
			e.prefilter = g
		}
	}
	return e
}

// insert appends e. Caller must hold the write lock.
func (s *Set) insert(e *setEntry) {
	s.entries = append(s.entries, e)
	s.byName[e.name] = e
}

// globOf translates a pattern into glob syntax: literal runs are quoted and
// each marker becomes '*'. The glob accepts a superset of what the pattern
// matches, since it neither fixes slot lengths nor compares captures.
func globOf(p *Pattern) string {
	parts := strings.Split(p.template, string([]byte{p.opts.Marker}))
	for i, part := range parts {
		parts[i] = glob.QuoteMeta(part)
	}
	return strings.Join(parts, "*")
}

// Probe returns the first template, in insertion order, that value matches.
// SetResult.Matched is false when none does.
func (s *Set) Probe(ctx context.Context, value string) SetResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if r, ok := s.probeEntry(ctx, e, value); ok {
			return r
		}
	}
	slogctx.FromCtx(ctx).Log(ctx, slog.LevelDebug, "no template matched", slog.String("value", value), slog.Int("templates", len(s.entries)))
	return SetResult{}
}

// ProbeAll returns every template that value matches, in insertion order.
func (s *Set) ProbeAll(ctx context.Context, value string) []SetResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []SetResult
	for _, e := range s.entries {
		if r, ok := s.probeEntry(ctx, e, value); ok {
			results = append(results, r)
		}
	}
	return results
}

func (s *Set) probeEntry(ctx context.Context, e *setEntry, value string) (SetResult, bool) {
	if e.prefilter != nil && !e.prefilter.Match(value) {
		slogctx.FromCtx(ctx).Log(ctx, slog.LevelDebug, "prefilter rejected value", slog.String("template", e.name), slog.String("value", value))
		return SetResult{}, false
	}
	r := e.pattern.MatchWithResult(value)
	if !r.Matched {
		return SetResult{}, false
	}
	return SetResult{Name: e.name, Template: e.pattern.Template(), Result: r}, true
}

// Format expands the template registered under name with value.
func (s *Set) Format(name, value string) (string, error) {
	p, ok := s.Pattern(name)
	if !ok {
		return "", fmt.Errorf("formatting %q: %w: %s", value, ErrUnknownTemplate, name)
	}
	return p.Format(value)
}

// Pattern returns the compiled template registered under name.
func (s *Set) Pattern(name string) (*Pattern, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return e.pattern, true
}

// Names returns the template names in insertion order.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.name
	}
	return names
}

// Len returns the number of templates in the set.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Warnings returns all collected parse warnings.
// Only populated if no WarningHandler was set.
func (s *Set) Warnings() []ParseWarning {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.warnings) == 0 {
		return nil
	}
	result := make([]ParseWarning, len(s.warnings))
	copy(result, s.warnings)
	return result
}
