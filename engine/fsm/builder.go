package fsm

import "github.com/pkg/errors"

// AddState registers a node, replacing any node with the same id
func (m *Machine[T]) AddState(id StateID, name string, parentID StateID) *Node[T] {
	node := &Node[T]{ID: id, Name: name, ParentID: parentID}
	m.nodes[id] = node
	return node
}

// AddTransition appends t to the source node's transitions; unknown sources are ignored
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// CompilePaths fills every node's Root-to-node Path
// Must run after the graph is complete and before Init
// Rejects missing parents and parent cycles
func (m *Machine[T]) CompilePaths() error {
	done := make(map[StateID]bool, len(m.nodes))
	visiting := make(map[StateID]bool)

	var build func(id StateID) error
	build = func(id StateID) error {
		if done[id] {
			return nil
		}
		if visiting[id] {
			return errors.Errorf("state %d is its own ancestor", id)
		}
		node := m.nodes[id]

		if node.ParentID == StateNone {
			node.Path = []StateID{id}
			done[id] = true
			return nil
		}

		parent, ok := m.nodes[node.ParentID]
		if !ok {
			return errors.Errorf("node %d references missing parent %d", id, node.ParentID)
		}

		visiting[id] = true
		if err := build(parent.ID); err != nil {
			return err
		}
		delete(visiting, id)

		node.Path = make([]StateID, len(parent.Path), len(parent.Path)+1)
		copy(node.Path, parent.Path)
		node.Path = append(node.Path, id)
		done[id] = true
		return nil
	}

	for id := range m.nodes {
		if err := build(id); err != nil {
			return err
		}
	}
	return nil
}
