package wildpat

import (
	"context"
	"strings"
	"testing"
)

// FuzzFormatMatch checks that matching a formatted string recovers the value
func FuzzFormatMatch(f *testing.F) {
	seeds := []struct{ template, value string }{
		{"/tmp/*.log", "service"},
		{"a*-*b", "xx"},
		{"x*y", ""},
		{"*", "*"},
		{"***", "ab"},
		{"no markers", "ignored"},
		{"", ""},
		{"日本*語", "テスト"},
	}
	for _, s := range seeds {
		f.Add(s.template, s.value)
	}

	f.Fuzz(func(t *testing.T, template, value string) {
		p := Compile(template)
		out, err := p.Format(value)
		size := int64(len(template)) + int64(p.MarkerCount())*int64(len(value)-1)
		if err != nil {
			// Only the size limit can fail
			if size <= DefaultMaxOutputLen {
				t.Fatalf("Format(%q, %q) error = %v", template, value, err)
			}
			return
		}

		if p.MarkerCount() == 0 {
			if out != template {
				t.Fatalf("Format(%q, %q) = %q, want template unchanged", template, value, out)
			}
			return
		}

		if int64(len(out)) != size {
			t.Fatalf("len(Format(%q, %q)) = %d, want %d", template, value, len(out), size)
		}

		r := p.MatchWithResult(out)
		if !r.Matched || !r.Captured {
			t.Fatalf("Match(%q, %q) = %+v, want matched", template, out, r)
		}
		if r.Capture.String() != value {
			t.Fatalf("Match(%q, %q) capture = %q, want %q", template, out, r.Capture, value)
		}
	})
}

// FuzzMatch checks that matching never panics and that a capture is consistent
func FuzzMatch(f *testing.F) {
	seeds := []struct{ template, value string }{
		{"/tmp/*.log", "/tmp/service.log"},
		{"a*-*b", "axx-XXb"},
		{"a*-*b", "axx-yyb"},
		{"ABC*", "abcXYZ"},
		{"**", "abc"},
		{"*", ""},
		{"", "x"},
	}
	for _, s := range seeds {
		f.Add(s.template, s.value)
	}

	f.Fuzz(func(t *testing.T, template, value string) {
		p := Compile(template)
		r := p.MatchWithResult(value)
		if !r.Matched {
			return
		}
		if !r.Captured {
			if value != template {
				t.Fatalf("Match(%q, %q) matched without capture", template, value)
			}
			return
		}

		// Formatting the capture back must give the value up to folding
		out, err := p.Format(r.Capture.String())
		if err != nil {
			t.Fatalf("Format(%q, %q) error = %v", template, r.Capture, err)
		}
		if !EqualFold(out, value) {
			t.Fatalf("Format(%q, Match(%q)) = %q, want fold-equal to %q", template, value, out, value)
		}
	})
}

// FuzzAddTemplates fuzzes template list parsing
func FuzzAddTemplates(f *testing.F) {
	seeds := [][]byte{
		[]byte("logs = /tmp/*.log\n"),
		[]byte("# comment\n\n"),
		[]byte("= x\nname =\n"),
		[]byte("a=b=c*\r\nplain\r"),
		{0xEF, 0xBB, 0xBF, '*'},
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, content []byte) {
		s := NewSetWithOptions(SetOptions{Prefilter: true})
		s.AddTemplates(content)
		_ = s.Warnings()

		for _, name := range s.Names() {
			p, ok := s.Pattern(name)
			if !ok {
				t.Fatalf("Names() listed %q but Pattern() does not find it", name)
			}
			if strings.ContainsAny(p.Template(), "\r\n") {
				t.Fatalf("template %q contains a line break", p.Template())
			}
			_ = s.Probe(context.Background(), p.Template())
		}
	})
}

// FuzzSetPrefilter checks that the glob prefilter never rejects a value the
// exact alignment accepts
func FuzzSetPrefilter(f *testing.F) {
	seeds := []struct{ template, value string }{
		{"*00\x000", "0100\x000"},
		{"/tmp/*.log", "/tmp/api.log"},
		{"a?[*]{x,y}", "a?[1]{x,y}"},
		{"*\\*", "a\\a"},
		{"*-!*", "x-!X"},
	}
	for _, s := range seeds {
		f.Add(s.template, s.value)
	}

	f.Fuzz(func(t *testing.T, template, value string) {
		ctx := context.Background()
		plain := NewSet()
		filtered := NewSetWithOptions(SetOptions{Prefilter: true})
		if err := plain.Add("t", template); err != nil {
			t.Fatal(err)
		}
		if err := filtered.Add("t", template); err != nil {
			t.Fatal(err)
		}

		want := plain.Probe(ctx, value)
		got := filtered.Probe(ctx, value)
		if got.Matched != want.Matched || got.Capture != want.Capture {
			t.Fatalf("Probe(%q) on %q: prefiltered = %+v, plain = %+v", value, template, got, want)
		}
	})
}
