// Package world defines the simulation-side data model: entities,
// relationships, narrative events and regions as emitted by a simulation
// run, plus the snapshot loader that materializes them for the wiki core.
package world

import (
	"sort"
	"time"
)

// EntityKindEra marks entities that represent an era of the simulation
// timeline rather than an actor within it.
const EntityKindEra = "era"

// RelationActiveDuring links an entity to the era entity it was active in.
const RelationActiveDuring = "active_during"

// Coordinates is a point in the simulation's spatial plane.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Entity is a simulated person, place, faction or similar with identity
// that persists across ticks.
type Entity struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Kind        string       `json:"kind"`
	Subtype     string       `json:"subtype,omitempty"`
	Culture     string       `json:"culture,omitempty"`
	Prominence  int          `json:"prominence"`
	Status      string       `json:"status"`
	Tags        []string     `json:"tags,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	RegionID    string       `json:"region_id,omitempty"`
	Description string       `json:"description,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Aliases     []string     `json:"aliases,omitempty"`
	// Content holds pre-authored structured sections (markdown with
	// headings). When present it replaces the plain description overview.
	Content string `json:"content,omitempty"`
	// Narrative is an optional long-form narrative passage.
	Narrative    string    `json:"narrative,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Relationship is a directed edge between two entities.
type Relationship struct {
	SourceID    string `json:"source_id"`
	TargetID    string `json:"target_id"`
	Kind        string `json:"kind"`
	Status      string `json:"status"`
	CreatedTick int    `json:"created_tick"`
}

// EventParticipant identifies an entity's role in a narrative event.
type EventParticipant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ParticipantEffect records how an event changed one participant.
type ParticipantEffect struct {
	EntityID string `json:"entity_id"`
	Effect   string `json:"effect"`
}

// NarrativeEvent is a notable occurrence in the world's history.
type NarrativeEvent struct {
	ID           string              `json:"id"`
	Tick         int                 `json:"tick"`
	EraID        string              `json:"era_id,omitempty"`
	Subject      EventParticipant    `json:"subject"`
	Object       *EventParticipant   `json:"object,omitempty"`
	Effects      []ParticipantEffect `json:"effects,omitempty"`
	Significance float64             `json:"significance"`
	Headline     string              `json:"headline"`
	Description  string              `json:"description,omitempty"`
}

// Region is a named zone of semantic or spatial space entities may belong to.
type Region struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Description string    `json:"description,omitempty"`
	Culture     string    `json:"culture,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Snapshot is the materialized state of one simulation run: everything the
// wiki core reads from the simulation side.
type Snapshot struct {
	CurrentTick   int              `json:"current_tick"`
	Entities      []Entity         `json:"entities"`
	Relationships []Relationship   `json:"relationships"`
	Events        []NarrativeEvent `json:"events"`
	Regions       []Region         `json:"regions,omitempty"`
}

// Entity returns the entity with the given id, or false when absent.
func (s *Snapshot) Entity(id string) (Entity, bool) {
	for _, e := range s.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}

// CurrentEra returns the era entity covering the snapshot's current tick.
// Eras are ordered by creation; the most recently created era wins.
func (s *Snapshot) CurrentEra() (Entity, bool) {
	var current Entity
	found := false
	for _, e := range s.Entities {
		if e.Kind != EntityKindEra {
			continue
		}
		if !found || e.CreatedAt.After(current.CreatedAt) {
			current = e
			found = true
		}
	}
	return current, found
}

// Cultures returns the distinct non-empty culture values across entities,
// sorted for stable output.
func (s *Snapshot) Cultures() []string {
	seen := make(map[string]bool)
	var cultures []string
	for _, e := range s.Entities {
		if e.Culture != "" && !seen[e.Culture] {
			seen[e.Culture] = true
			cultures = append(cultures, e.Culture)
		}
	}
	sort.Strings(cultures)
	return cultures
}
