/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package diff

import (
	"crypto/sha256"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// compareTemplates compares two CloudFormation templates section by section
// and resource by resource. JSON templates parse as YAML.
func compareTemplates(current, proposed string) (*TemplateChange, error) {
	change := &TemplateChange{
		CurrentHash:  templateHash(current),
		ProposedHash: templateHash(proposed),
	}
	change.HasChanges = change.CurrentHash != change.ProposedHash
	if !change.HasChanges {
		return change, nil
	}

	currentDoc, err := parseTemplate(current)
	if err != nil {
		return nil, fmt.Errorf("failed to parse current template: %w", err)
	}
	proposedDoc, err := parseTemplate(proposed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse proposed template: %w", err)
	}

	for _, name := range unionKeys(currentDoc, proposedDoc) {
		if ct, changed := classify(currentDoc, proposedDoc, name); changed {
			change.Sections = append(change.Sections, SectionDiff{Name: name, ChangeType: ct})
		}
	}

	currentResources := section(currentDoc, "Resources")
	proposedResources := section(proposedDoc, "Resources")
	for _, id := range unionKeys(currentResources, proposedResources) {
		ct, changed := classify(currentResources, proposedResources, id)
		if !changed {
			continue
		}
		resource := proposedResources[id]
		if ct == ChangeTypeRemove {
			resource = currentResources[id]
		}
		change.Resources = append(change.Resources, ResourceDiff{LogicalID: id, Type: resourceType(resource), ChangeType: ct})
	}

	// whitespace or comment edits change the hash but not the template
	change.HasChanges = len(change.Sections) > 0
	return change, nil
}

// templateHash hashes a template with line endings and surrounding
// whitespace normalised
func templateHash(template string) string {
	normalised := strings.TrimSpace(strings.ReplaceAll(template, "\r\n", "\n"))
	sum := sha256.Sum256([]byte(normalised))
	return fmt.Sprintf("%x", sum)[:12]
}

func parseTemplate(template string) (map[string]any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(template), &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return map[string]any{}, nil
	}
	doc, ok := normalise(root.Content[0]).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("template is not a mapping")
	}
	return doc, nil
}

// normalise converts a YAML node to comparable values. Short-form intrinsic
// functions such as !Ref keep their tag so !Ref X and X differ.
func normalise(node *yaml.Node) any {
	var value any
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil
		}
		return normalise(node.Content[0])
	case yaml.AliasNode:
		return normalise(node.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			m[node.Content[i].Value] = normalise(node.Content[i+1])
		}
		value = m
	case yaml.SequenceNode:
		s := make([]any, len(node.Content))
		for i, child := range node.Content {
			s[i] = normalise(child)
		}
		value = s
	default:
		value = node.Value
	}

	if strings.HasPrefix(node.Tag, "!") && !strings.HasPrefix(node.Tag, "!!") {
		return map[string]any{node.Tag: value}
	}
	return value
}

func section(doc map[string]any, name string) map[string]any {
	if m, ok := doc[name].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func resourceType(resource any) string {
	if m, ok := resource.(map[string]any); ok {
		if t, ok := m["Type"].(string); ok {
			return t
		}
	}
	return "Unknown"
}

func unionKeys(a, b map[string]any) []string {
	keys := slices.Collect(maps.Keys(a))
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

func classify(current, proposed map[string]any, key string) (ChangeType, bool) {
	c, inCurrent := current[key]
	p, inProposed := proposed[key]
	switch {
	case !inCurrent:
		return ChangeTypeAdd, true
	case !inProposed:
		return ChangeTypeRemove, true
	case !reflect.DeepEqual(c, p):
		return ChangeTypeModify, true
	}
	return "", false
}
