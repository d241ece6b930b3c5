package main

import (
	"container/list"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/viant/seqology"
	"github.com/viant/seqology/collection"
	"gopkg.in/yaml.v3"
)

// defaultFixture lists containers dumped when no fixture file is supplied
const defaultFixture = `
containers:
  - name: Vector
    kind: slice
    type: int
    values: [4, 7, 4, 1]
  - name: Strings
    kind: slice
    type: string
    values: [fee, fih, foh, fum]
  - name: List
    kind: list
    type: int
    values: [42, 57, 47, 15]
  - name: Deque
    kind: deque
    type: bool
    values: [true, false, true]
  - name: Forward list
    kind: forward
    type: float
    values: [9.8, 3.14]
`

type (
	// Fixture represents containers to dump
	Fixture struct {
		Containers []*Container `yaml:"containers"`
	}

	// Container represents container definition, values are listed in iteration order
	Container struct {
		Name   string   `yaml:"name"`
		Kind   string   `yaml:"kind"`
		Type   string   `yaml:"type"`
		Values []string `yaml:"values"`
	}
)

// Value builds the container and wraps it with registry
func (c *Container) Value(registry *seqology.Registry) (seqology.Value, error) {
	var container interface{}
	var err error
	switch c.Type {
	case "int":
		container, err = build(c.Kind, c.Values, strconv.Atoi)
	case "string":
		container, err = build(c.Kind, c.Values, func(s string) (string, error) { return s, nil })
	case "float":
		container, err = build(c.Kind, c.Values, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	case "bool":
		container, err = build(c.Kind, c.Values, strconv.ParseBool)
	case "time":
		container, err = build(c.Kind, c.Values, func(s string) (time.Time, error) { return time.Parse(time.RFC3339, s) })
	default:
		return seqology.Value{}, fmt.Errorf("container %v: unsupported element type %q", c.Name, c.Type)
	}
	if err != nil {
		return seqology.Value{}, fmt.Errorf("container %v: %w", c.Name, err)
	}
	return registry.ValueOf(container), nil
}

func build[E any](kind string, values []string, parse func(string) (E, error)) (interface{}, error) {
	elements := make([]E, 0, len(values))
	for _, value := range values {
		element, err := parse(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", value, err)
		}
		elements = append(elements, element)
	}
	switch kind {
	case "slice", "":
		return elements, nil
	case "list":
		return collection.NewList(elements...), nil
	case "stdlist":
		ret := list.New()
		for _, element := range elements {
			ret.PushBack(element)
		}
		return ret, nil
	case "forward":
		ret := collection.NewForwardList[E]()
		for i := len(elements) - 1; i >= 0; i-- {
			ret.PushFront(elements[i])
		}
		return ret, nil
	case "deque":
		return collection.NewDeque(elements...), nil
	}
	return nil, fmt.Errorf("unsupported kind %q", kind)
}

// parseFixture decodes YAML fixture
func parseFixture(data []byte) (*Fixture, error) {
	ret := &Fixture{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	return ret, nil
}

// loadFixture loads fixture from location, built-in fixture is used for empty location
func loadFixture(location string) (*Fixture, error) {
	if location == "" {
		return parseFixture([]byte(defaultFixture))
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %v: %w", location, err)
	}
	return parseFixture(data)
}
