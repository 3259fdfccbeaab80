// Package store persists the little state fundflow keeps between runs: the
// submitted project rating and the outbox of intents handed to the local
// backend.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/rating"
)

const (
	outboxPrefix = "outbox"
	layoutISO    = "2006-01-02"
)

// Persistence is the durable key/value contract.
type Persistence interface {
	rating.Store
	ClearRating() error
	Record(in intent.Intent) error
	Outbox(ctx context.Context) []intent.Intent
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load opens the diskv store described by cfg, reading the config when cfg
// is nil.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Rating implements rating.Store. The value is kept as a decimal string.
func (p *persistence) Rating() (float64, bool, error) {
	if !p.d.Has(rating.Key) {
		return 0, false, nil
	}
	raw, err := p.d.Read(rating.Key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("store: read rating: %w", err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
	if err != nil {
		return 0, false, fmt.Errorf("store: rating %q is not a number", string(raw))
	}
	return v, true, nil
}

// SetRating implements rating.Store.
func (p *persistence) SetRating(v float64) error {
	if err := p.d.Write(rating.Key, []byte(rating.Format(v))); err != nil {
		return fmt.Errorf("store: write rating: %w", err)
	}
	return nil
}

// ClearRating forgets the saved rating.
func (p *persistence) ClearRating() error {
	if !p.d.Has(rating.Key) {
		return nil
	}
	return p.d.Erase(rating.Key)
}

// Record appends an intent to the outbox with secrets masked.
func (p *persistence) Record(in intent.Intent) error {
	data, err := json.Marshal(in.Redacted())
	if err != nil {
		return err
	}
	return p.d.Write(toOutboxKey(in), data)
}

// Outbox lists recorded intents, oldest first.
func (p *persistence) Outbox(ctx context.Context) []intent.Intent {
	all := make([]intent.Intent, 0)
	for key := range p.d.KeysPrefix(outboxPrefix+"/", ctx.Done()) {
		val, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		var in intent.Intent
		if err := json.Unmarshal(val, &in); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, in)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Created.Equal(all[j].Created) {
			return all[i].ID < all[j].ID
		}
		return all[i].Created.Before(all[j].Created)
	})
	return all
}

// keys look like `projectRating` or `outbox/2006-01-02/<id>`
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(pathKey.Path, "/") + "/" + pathKey.FileName
}

func toOutboxKey(in intent.Intent) string {
	return fmt.Sprintf("%s/%s/%s", outboxPrefix, in.Created.Format(layoutISO), in.ID)
}
