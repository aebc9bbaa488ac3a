package gamedata

import (
	"errors"
	"fmt"
	"sort"
)

// ErrSceneNotFound is returned when a scene id is not registered.
var ErrSceneNotFound = errors.New("scene not found")

// ScenesFile represents the structure of scenes.json.
type ScenesFile struct {
	Scenes []SceneDef `json:"scenes"`
}

// LoadScenes loads scene definitions from the embedded scenes.json file.
func LoadScenes() ([]SceneDef, error) {
	file, err := Load[ScenesFile]("scenes.json")
	if err != nil {
		return nil, err
	}
	return file.Scenes, nil
}

// SceneRegistry holds validated scene definitions.
type SceneRegistry struct {
	scenes map[string]*SceneDef
	all    []SceneDef
}

// NewSceneRegistry validates the definitions and indexes them by id.
func NewSceneRegistry(scenes []SceneDef) (*SceneRegistry, error) {
	registry := &SceneRegistry{
		scenes: make(map[string]*SceneDef, len(scenes)),
		all:    scenes,
	}
	for i := range scenes {
		if err := scenes[i].Validate(); err != nil {
			return nil, err
		}
		if _, dup := registry.scenes[scenes[i].ID]; dup {
			return nil, fmt.Errorf("scene %q: %w: duplicate id", scenes[i].ID, ErrInvalidScene)
		}
		registry.scenes[scenes[i].ID] = &scenes[i]
	}
	return registry, nil
}

// LoadSceneRegistry loads and creates a registry from the embedded scenes.json.
func LoadSceneRegistry() (*SceneRegistry, error) {
	scenes, err := LoadScenes()
	if err != nil {
		return nil, err
	}
	if len(scenes) == 0 {
		return nil, errors.New("no scenes loaded from scenes.json")
	}
	return NewSceneRegistry(scenes)
}

// MustLoadSceneRegistry loads a registry, panicking on error.
// The scenes are compiled in, so a failure here is a build defect.
func MustLoadSceneRegistry() *SceneRegistry {
	registry, err := LoadSceneRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the scene with the given id.
func (r *SceneRegistry) Get(id string) (*SceneDef, error) {
	scene, ok := r.scenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSceneNotFound, id)
	}
	return scene, nil
}

// IDs returns the registered scene ids in sorted order.
func (r *SceneRegistry) IDs() []string {
	ids := make([]string, 0, len(r.scenes))
	for id := range r.scenes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns all scene definitions.
func (r *SceneRegistry) All() []SceneDef {
	return r.all
}

// Count returns the number of scenes in the registry.
func (r *SceneRegistry) Count() int {
	return len(r.all)
}
