package htmltext

import (
	"strings"
	"testing"
)

func TestExtractBasic(t *testing.T) {
	in := `<html><body><h1>Title</h1><p>Hello <b>world</b>.</p></body></html>`

	got, err := Extract(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := "Title Hello world ."
	if got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
}

func TestExtractSkipsScriptAndStyle(t *testing.T) {
	in := `<html><head><style>p { color: red }</style></head>` +
		`<body><p>visible</p><script>var hidden = 1;</script></body></html>`

	got, err := Extract(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if strings.Contains(got, "hidden") || strings.Contains(got, "color") {
		t.Errorf("script/style content leaked into %q", got)
	}
	if got != "visible" {
		t.Errorf("Extract = %q, want %q", got, "visible")
	}
}

func TestExtractJoinsNodes(t *testing.T) {
	in := "<div><p>first</p><p>second</p></div>"

	got, err := Extract(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := "first second"
	if got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
}

func TestExtractStringFragment(t *testing.T) {
	// html.Parse accepts fragments; the helper should never lose the
	// visible words.
	got := ExtractString(`plain <i>text</i> fragment`)
	want := "plain text fragment"
	if got != want {
		t.Errorf("ExtractString = %q, want %q", got, want)
	}
}

func TestExtractEmpty(t *testing.T) {
	got, err := Extract(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != "" {
		t.Errorf("Extract on empty input = %q, want empty", got)
	}
}
