// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package profileconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NewProfileSet returns an empty ProfileSet with no profiles loaded.
func NewProfileSet() *ProfileSet {
	return &ProfileSet{
		profiles: make(map[string]*Profile),
		resolved: make(map[string]*Profile),
	}
}

// ParseProfileSet parses a single YAML document into a ProfileSet.
// Profile parsing is not bounded by parser.MaxJSON: profiles are
// operator-authored configuration loaded at startup, not
// attacker-controlled runtime input.
func ParseProfileSet(yamlBytes []byte) (*ProfileSet, error) {
	set := NewProfileSet()
	if err := set.Merge(yamlBytes); err != nil {
		return nil, err
	}
	return set, nil
}

// LoadProfileSet reads and parses a profiles YAML file from path.
func LoadProfileSet(path string) (*ProfileSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profileconfig: read %s: %w", path, err)
	}
	return ParseProfileSet(data)
}

// Merge parses an additional YAML document into an existing set.
// Profiles it defines override any existing profile of the same name;
// the resolved-profile cache is invalidated since a later merge can
// change what an earlier resolution should have produced.
func (s *ProfileSet) Merge(yamlBytes []byte) error {
	var doc profileDocument
	if err := yaml.Unmarshal(yamlBytes, &doc); err != nil {
		return fmt.Errorf("profileconfig: parse: %w", err)
	}

	for name, profile := range doc.Profiles {
		profile.Name = name
		s.profiles[name] = profile
	}
	s.resolved = make(map[string]*Profile)
	return nil
}

// MergeFile reads and merges an additional YAML file into an existing
// set. See Merge.
func (s *ProfileSet) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("profileconfig: read %s: %w", path, err)
	}
	return s.Merge(data)
}

// Names returns the names of every profile defined in the set.
func (s *ProfileSet) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	return names
}
