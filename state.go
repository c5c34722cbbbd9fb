package arrident

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ComponentType identifies which kind of server-side component a preferred id
// refers to.
type ComponentType string

// The component types a plugin can bind to on the server.
const (
	ComponentIndexer        ComponentType = "indexer"
	ComponentDownloadClient ComponentType = "downloadclient"
	ComponentImportList     ComponentType = "importlist"
)

// State is the in-memory form of the persisted preference document. It maps
// instance keys to the components remembered for each plugin in that target
// environment. State is plain data: callers obtain it from Store.Read, mutate
// it through PreferredID/SetPreferredID, and persist it with Store.Write.
// It must not be cached across runs — the on-disk document is the single
// source of truth shared with other processes.
type State struct {
	SchemaVersion int                        `json:"schemaVersion"`
	Instances     map[string]*InstanceRecord `json:"instances"`
}

// InstanceRecord holds the per-plugin records of one target environment.
type InstanceRecord struct {
	Plugins map[string]*PluginRecord `json:"plugins"`
}

// PluginRecord remembers the component ids resolved for one plugin. A zero
// value means no preferred id for that slot; only positive ids are ever
// stored or honored.
type PluginRecord struct {
	IndexerID        int `json:"indexerId,omitempty"`
	DownloadClientID int `json:"downloadClientId,omitempty"`
	ImportListID     int `json:"importListId,omitempty"`
}

// NewState returns an empty State at the current schema version.
func NewState() *State {
	return &State{
		SchemaVersion: CurrentSchemaVersion,
		Instances:     make(map[string]*InstanceRecord),
	}
}

// id returns the remembered id for one component slot, zero when absent.
func (r *PluginRecord) id(componentType ComponentType) int {
	switch componentType {
	case ComponentIndexer:
		return r.IndexerID
	case ComponentDownloadClient:
		return r.DownloadClientID
	case ComponentImportList:
		return r.ImportListID
	default:
		panic(fmt.Sprintf("arrident: unknown component type %q", componentType))
	}
}

// setID stores id into one component slot.
func (r *PluginRecord) setID(componentType ComponentType, id int) {
	switch componentType {
	case ComponentIndexer:
		r.IndexerID = id
	case ComponentDownloadClient:
		r.DownloadClientID = id
	case ComponentImportList:
		r.ImportListID = id
	default:
		panic(fmt.Sprintf("arrident: unknown component type %q", componentType))
	}
}

// PreferredID returns the remembered component id for (instanceKey,
// pluginName, componentType) and whether one is present. Only positive ids
// are ever reported.
//
// Panics if instanceKey or pluginName is empty, or componentType is not one
// of the declared constants.
func (s *State) PreferredID(instanceKey, pluginName string, componentType ComponentType) (int, bool) {
	requireNonEmpty("instance key", instanceKey)
	requireNonEmpty("plugin name", pluginName)

	inst, ok := s.Instances[instanceKey]
	if !ok {
		return 0, false
	}
	rec, ok := inst.Plugins[pluginName]
	if !ok {
		return 0, false
	}
	if id := rec.id(componentType); id > 0 {
		return id, true
	}
	return 0, false
}

// SetPreferredID remembers id for (instanceKey, pluginName, componentType),
// creating the intermediate instance and plugin records on demand. The change
// is in-memory only; persist it with Store.Write.
//
// Panics if id is not positive or any key is empty.
func (s *State) SetPreferredID(instanceKey, pluginName string, componentType ComponentType, id int) {
	requireNonEmpty("instance key", instanceKey)
	requireNonEmpty("plugin name", pluginName)
	requirePositive("component id", id)

	if s.Instances == nil {
		s.Instances = make(map[string]*InstanceRecord)
	}
	inst, ok := s.Instances[instanceKey]
	if !ok {
		inst = &InstanceRecord{Plugins: make(map[string]*PluginRecord)}
		s.Instances[instanceKey] = inst
	}
	if inst.Plugins == nil {
		inst.Plugins = make(map[string]*PluginRecord)
	}
	rec, ok := inst.Plugins[pluginName]
	if !ok {
		rec = &PluginRecord{}
		inst.Plugins[pluginName] = rec
	}
	rec.setID(componentType, id)
}

// InstanceKeys returns the instance keys present in the state, sorted for
// stable output.
func (s *State) InstanceKeys() []string {
	keys := make([]string, 0, len(s.Instances))
	for k := range s.Instances {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PluginNames returns the plugin names recorded under instanceKey, sorted.
// Returns nil when the instance key is unknown.
func (s *State) PluginNames(instanceKey string) []string {
	requireNonEmpty("instance key", instanceKey)

	inst, ok := s.Instances[instanceKey]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(inst.Plugins))
	for n := range inst.Plugins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// encodeState serializes the state deterministically: encoding/json emits
// struct fields in declaration order and map keys sorted, so semantically
// identical documents produce byte-identical output. This is what makes the
// store's no_changes comparison a plain byte equality check.
func encodeState(s *State) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return append(data, '\n'), nil
}

// decodeState parses a persisted document, recovering from every malformed
// input by returning the empty state. A document at an unrecognized schema
// version is treated as absent data. Nil records left behind by JSON nulls
// are replaced with empty ones so accessors never dereference nil.
func decodeState(data []byte) *State {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return NewState()
	}
	if s.SchemaVersion != CurrentSchemaVersion {
		return NewState()
	}
	if s.Instances == nil {
		s.Instances = make(map[string]*InstanceRecord)
	}
	for key, inst := range s.Instances {
		if inst == nil {
			inst = &InstanceRecord{}
			s.Instances[key] = inst
		}
		if inst.Plugins == nil {
			inst.Plugins = make(map[string]*PluginRecord)
		}
		for name, rec := range inst.Plugins {
			if rec == nil {
				inst.Plugins[name] = &PluginRecord{}
			}
		}
	}
	return &s
}

// UnmarshalJSON tolerates junk per id slot: an id that is missing, null, not
// an integer, or not positive decodes as "no preferred id" for that slot
// instead of failing the whole document.
func (r *PluginRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.IndexerID = positiveIntOrZero(raw["indexerId"])
	r.DownloadClientID = positiveIntOrZero(raw["downloadClientId"])
	r.ImportListID = positiveIntOrZero(raw["importListId"])
	return nil
}

// positiveIntOrZero decodes raw as a positive integer, returning 0 for
// anything else (absent, null, wrong type, zero, negative).
func positiveIntOrZero(raw json.RawMessage) int {
	if raw == nil {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	if n <= 0 {
		return 0
	}
	return n
}
