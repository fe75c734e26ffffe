package store

import (
	"context"
	"encoding/json"
	"fmt"
)

const settingsKey = "settings:v1"

// Size options for an exercise; anything else is clamped to the default.
var exerciseSizes = []int{10, 15, 20}

const (
	maxVerbLists    = 3
	maxDrillLemmas  = 10
	defaultTense    = "preterite"
	defaultSize     = 10
	defaultListID   = "list1"
	defaultListName = "Verb List 1"
)

// ExercisePrefs is the sticky configuration of the cloze drill.
type ExercisePrefs struct {
	Tense  string   `json:"tense"`
	Size   int      `json:"size"`
	Lemmas []string `json:"lemmas"`
}

// VerbList is a named collection of vocabulary item ids.
type VerbList struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	VerbIDs []string `json:"verb_ids"`
}

// Settings is the whole persisted settings aggregate.
type Settings struct {
	Exercise       ExercisePrefs `json:"exercise"`
	VerbLists      []VerbList    `json:"verb_lists"`
	ActiveVerbList string        `json:"active_verb_list"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		Exercise: ExercisePrefs{
			Tense:  defaultTense,
			Size:   defaultSize,
			Lemmas: []string{},
		},
		VerbLists:      []VerbList{{ID: defaultListID, Name: defaultListName, VerbIDs: []string{}}},
		ActiveVerbList: defaultListID,
	}
}

// clamp normalizes a settings value loaded from storage or merged from an
// import: unknown tense and size fall back to defaults, the drill lemma
// selection is capped, at most three verb lists survive, and the active
// list id must exist.
func clamp(s Settings) Settings {
	d := DefaultSettings()

	if s.Exercise.Tense != "preterite" && s.Exercise.Tense != "present" {
		s.Exercise.Tense = d.Exercise.Tense
	}
	valid := false
	for _, n := range exerciseSizes {
		if s.Exercise.Size == n {
			valid = true
			break
		}
	}
	if !valid {
		s.Exercise.Size = d.Exercise.Size
	}
	if s.Exercise.Lemmas == nil {
		s.Exercise.Lemmas = []string{}
	}
	if len(s.Exercise.Lemmas) > maxDrillLemmas {
		s.Exercise.Lemmas = s.Exercise.Lemmas[:maxDrillLemmas]
	}

	if len(s.VerbLists) == 0 {
		s.VerbLists = d.VerbLists
	}
	if len(s.VerbLists) > maxVerbLists {
		s.VerbLists = s.VerbLists[:maxVerbLists]
	}
	for i := range s.VerbLists {
		if s.VerbLists[i].ID == "" {
			s.VerbLists[i].ID = fmt.Sprintf("list%d", i+1)
		}
		if s.VerbLists[i].Name == "" {
			s.VerbLists[i].Name = fmt.Sprintf("Verb List %d", i+1)
		}
		if s.VerbLists[i].VerbIDs == nil {
			s.VerbLists[i].VerbIDs = []string{}
		}
	}

	found := false
	for _, l := range s.VerbLists {
		if l.ID == s.ActiveVerbList {
			found = true
			break
		}
	}
	if !found {
		s.ActiveVerbList = s.VerbLists[0].ID
	}

	return s
}

// SettingsRepo loads and saves the settings aggregate through the KV port.
type SettingsRepo struct {
	kv KV
}

// NewSettingsRepo creates a SettingsRepo over an arbitrary KV port.
func NewSettingsRepo(kv KV) *SettingsRepo {
	return &SettingsRepo{kv: kv}
}

// Load returns the stored settings, clamped, or defaults when nothing has
// been saved yet. A corrupt blob falls back to defaults rather than
// failing the caller.
func (r *SettingsRepo) Load(ctx context.Context) (Settings, error) {
	raw, ok, err := r.kv.Get(ctx, settingsKey)
	if err != nil {
		return Settings{}, err
	}
	if !ok {
		return DefaultSettings(), nil
	}

	var s Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return DefaultSettings(), nil
	}
	return clamp(s), nil
}

// Save clamps and persists the settings aggregate.
func (r *SettingsRepo) Save(ctx context.Context, s Settings) error {
	raw, err := json.Marshal(clamp(s))
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return r.kv.Put(ctx, settingsKey, string(raw))
}
