package sprite

import (
	"fmt"
	"sort"
	"time"
)

// Sheet is a named collection of animations. Each call to Animation hands
// out an independent instance so actors never share frame counters.
type Sheet struct {
	templates map[string]*Animation
}

// NewSheet creates an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{templates: make(map[string]*Animation)}
}

// Add registers an animation under name.
func (s *Sheet) Add(name string, frames []*Sprite, frameDuration time.Duration) error {
	if _, exists := s.templates[name]; exists {
		return fmt.Errorf("sprite: animation %q already in sheet", name)
	}

	anim, err := NewAnimation(name, frames, frameDuration)
	if err != nil {
		return err
	}
	s.templates[name] = anim
	return nil
}

// Animation returns a fresh instance of the named animation.
func (s *Sheet) Animation(name string) (*Animation, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return nil, fmt.Errorf("sprite: unknown animation %q", name)
	}
	anim := tmpl.Clone()
	anim.Reset()
	return anim, nil
}

// Has reports whether the sheet contains name.
func (s *Sheet) Has(name string) bool {
	_, ok := s.templates[name]
	return ok
}

// Names returns the animation names, sorted.
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
