package project

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dosanma1/packforge/pkg/webpack"
)

// Input is the input key: a single path or an ordered mapping of entry name
// to path.
type Input struct {
	Path    string
	Entries []webpack.NamedPath
}

// IsZero lets omitempty drop an unset input.
func (in Input) IsZero() bool {
	return in.Path == "" && len(in.Entries) == 0
}

// UnmarshalYAML decodes a scalar path or a mapping, keeping mapping order.
func (in *Input) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&in.Path)
	case yaml.MappingNode:
		in.Entries = nil
		for i := 0; i+1 < len(node.Content); i += 2 {
			var e webpack.NamedPath
			if err := node.Content[i].Decode(&e.Name); err != nil {
				return err
			}
			if err := node.Content[i+1].Decode(&e.Path); err != nil {
				return fmt.Errorf("input.%s: %w", e.Name, err)
			}
			in.Entries = append(in.Entries, e)
		}
		return nil
	default:
		return fmt.Errorf("line %d: input must be a path or a mapping of entry names to paths", node.Line)
	}
}

// MarshalYAML encodes the input in the form it was read.
func (in Input) MarshalYAML() (any, error) {
	if in.Path != "" || len(in.Entries) == 0 {
		return in.Path, nil
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range in.Entries {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Path},
		)
	}
	return node, nil
}

func (in Input) webpackInput() webpack.Input {
	if in.Path != "" {
		return webpack.SinglePath(in.Path)
	}
	return webpack.NamedPaths(in.Entries...)
}
