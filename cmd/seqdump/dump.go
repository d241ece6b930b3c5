package main

import (
	"fmt"
	"io"

	"github.com/viant/seqology"
	"github.com/viant/seqology/render"
	"github.com/viant/seqology/visitor"
)

const (
	bold  = "\033[1m"
	reset = "\033[0m"
)

// dumper prints container size, capability and elements
type dumper struct {
	registry *seqology.Registry
	renderer *render.Renderer
	reverse  bool
	color    bool
}

func (d *dumper) dump(w io.Writer, fixture *Fixture) error {
	for _, container := range fixture.Containers {
		value, err := container.Value(d.registry)
		if err != nil {
			return err
		}
		view, err := value.Iterable()
		if err != nil {
			return fmt.Errorf("container %v: %w", container.Name, err)
		}
		if err = d.dumpView(w, container.Name, view); err != nil {
			return err
		}
	}
	return nil
}

func (d *dumper) dumpView(w io.Writer, name string, view seqology.View) error {
	can := "Can"
	if !view.CanReverseIterate() {
		can = "Can not"
	}
	header := fmt.Sprintf("%v size: %v (%v reverse iterate)", name, view.Size(), can)
	if d.color {
		header = bold + header + reset
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	printItem := func(_ int, element seqology.Value) (bool, error) {
		_, err := fmt.Fprintf(w, "Item: %v\n", d.renderer.Render(element))
		return err == nil, err
	}
	if err := visitor.Forward(view)(printItem); err != nil {
		return err
	}
	if !d.reverse || !view.CanReverseIterate() {
		return nil
	}
	backward, err := visitor.Backward(view)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(w, "Reverse:"); err != nil {
		return err
	}
	return backward(printItem)
}
