package primarium

import (
	"encoding/json"
	"sync"

	"github.com/primarium/primarium/builder"
)

// KV is the storage capability drafts are persisted through. Store satisfies
// it over the drafts table; MemoryKV satisfies it in tests.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// MemoryKV is an in-memory KV, safe for concurrent use.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKV returns an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func draftKey(settlementID string) string {
	return "draft:" + settlementID
}

// draft is the persisted editor state for one settlement.
type draft struct {
	Components *builder.List `json:"components"`
	CustomCSS  string        `json:"customCss,omitempty"`
}

// DraftStore persists per-settlement editor state. A draft survives restarts
// and is independent of the published site until the next publish.
type DraftStore struct {
	kv KV
}

// NewDraftStore wraps a KV as draft storage.
func NewDraftStore(kv KV) *DraftStore {
	return &DraftStore{kv: kv}
}

// Load returns the stored draft for a settlement. A missing or corrupt entry
// reports ok=false so callers reseed instead of failing the edit session.
func (d *DraftStore) Load(settlementID string) (*builder.List, string, bool, error) {
	raw, ok, err := d.kv.Get(draftKey(settlementID))
	if err != nil {
		return nil, "", false, err
	}
	if !ok {
		return nil, "", false, nil
	}
	var dr draft
	if err := json.Unmarshal(raw, &dr); err != nil || dr.Components == nil {
		return nil, "", false, nil
	}
	return dr.Components, dr.CustomCSS, true, nil
}

// Save stores a settlement's draft.
func (d *DraftStore) Save(settlementID string, list *builder.List, customCSS string) error {
	raw, err := json.Marshal(draft{Components: list, CustomCSS: customCSS})
	if err != nil {
		return err
	}
	return d.kv.Set(draftKey(settlementID), raw)
}

// Clear deletes a settlement's draft. Clearing a missing draft is a no-op.
func (d *DraftStore) Clear(settlementID string) error {
	return d.kv.Delete(draftKey(settlementID))
}
