package outbox

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string    { return t.path }
func (t testConfig) CatalogPath() string { return "" }
func (t testConfig) LogFile() string     { return "" }
func (t testConfig) LogLevel() string    { return "" }

func seeded(t *testing.T) store.Persistence {
	t.Helper()
	color.NoColor = true
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	for _, in := range []intent.Intent{
		intent.New(intent.Donate, map[string]string{"project": "p1", "amount": "25"}),
		intent.New(intent.Logout, nil),
	} {
		if err := p.Record(in); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	return p
}

func TestOutboxFiltersByAction(t *testing.T) {
	buf := &bytes.Buffer{}
	o := &Outbox{Action: string(intent.Donate), JSON: true, Persistence: seeded(t), Out: buf}
	if err := o.Do(context.Background()); err != nil {
		t.Fatalf("outbox: %v", err)
	}
	var got []intent.Intent
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if len(got) != 1 || got[0].Payload["amount"] != "25" {
		t.Fatalf("unexpected intents %+v", got)
	}
}

func TestOutboxPretty(t *testing.T) {
	buf := &bytes.Buffer{}
	o := &Outbox{Persistence: seeded(t), Out: buf}
	if err := o.Do(context.Background()); err != nil {
		t.Fatalf("outbox: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Outbox", "donate", "logout"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
