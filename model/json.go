package model

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// NodeFromJSON reads a document in the editor's JSON format, e.g.
//
//     {"type": "doc", "content": [{"type": "paragraph", "content": [
//         {"type": "text", "text": "hi", "marks": [{"type": "bold"}]}]}]}
//
// Attributes are parsed into typed records once, here.
func NodeFromJSON(data []byte) (*Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("Invalid input for Node.fromJSON: malformed JSON")
	}
	return nodeFromResult(gjson.ParseBytes(data))
}

func nodeFromResult(obj gjson.Result) (*Node, error) {
	if !obj.IsObject() {
		return nil, errors.New("Invalid input for Node.fromJSON: node is not an object")
	}
	name := obj.Get("type").String()
	typ, ok := KindByName(name)
	if !ok {
		return nil, fmt.Errorf("Unknown node type: %q", name)
	}
	marks, err := marksFromResult(obj.Get("marks"))
	if err != nil {
		return nil, err
	}
	if typ == Text {
		text := obj.Get("text")
		if text.Type != gjson.String {
			return nil, errors.New("Invalid text node in JSON")
		}
		return NewTextNode(text.String(), marks), nil
	}
	var children []*Node
	for _, c := range obj.Get("content").Array() {
		child, err := nodeFromResult(c)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return NewNode(typ, NodeAttrsFromMap(typ, attrsFromResult(obj.Get("attrs"))), NewFragment(children), marks), nil
}

func marksFromResult(arr gjson.Result) ([]*Mark, error) {
	if !arr.Exists() {
		return nil, nil
	}
	if !arr.IsArray() {
		return nil, errors.New("Invalid mark data for Node.fromJSON")
	}
	var marks []*Mark
	for _, m := range arr.Array() {
		name := m.Get("type").String()
		typ, ok := MarkKindByName(name)
		if !ok {
			return nil, fmt.Errorf("There is no mark type %q in this schema", name)
		}
		marks = append(marks, NewMark(typ, AttrsFromMap(attrsFromResult(m.Get("attrs")))))
	}
	return marks, nil
}

func attrsFromResult(obj gjson.Result) map[string]interface{} {
	if !obj.IsObject() {
		return nil
	}
	m, _ := obj.Value().(map[string]interface{})
	return m
}

// ToJSON returns a JSON-serializeable representation of this node.
func (n *Node) ToJSON() map[string]interface{} {
	obj := map[string]interface{}{"type": n.Type.String()}
	if !n.IsText() {
		if attrs := n.Attrs.ToMap(); len(attrs) > 0 {
			obj["attrs"] = attrs
		}
	}
	if n.Content.Size > 0 {
		content := make([]interface{}, len(n.Content.Content))
		for i, c := range n.Content.Content {
			content[i] = c.ToJSON()
		}
		obj["content"] = content
	}
	if n.IsText() {
		obj["text"] = n.Text
	}
	if len(n.Marks) > 0 {
		marks := make([]interface{}, len(n.Marks))
		for i, m := range n.Marks {
			marks[i] = m.ToJSON()
		}
		obj["marks"] = marks
	}
	return obj
}

// ToJSON converts this mark to a JSON-serializeable representation.
func (m *Mark) ToJSON() map[string]interface{} {
	obj := map[string]interface{}{"type": m.Type.String()}
	if attrs := m.Attrs.ToMap(); len(attrs) > 0 {
		obj["attrs"] = attrs
	}
	return obj
}

// MarkFromJSON reads a single mark in the editor's JSON format, e.g.
// {"type": "textStyle", "attrs": {"style": "font-size: 18px"}}.
func MarkFromJSON(data []byte) (*Mark, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("Invalid input for Mark.fromJSON: malformed JSON")
	}
	obj := gjson.ParseBytes(data)
	if !obj.IsObject() {
		return nil, errors.New("Invalid input for Mark.fromJSON")
	}
	name := obj.Get("type").String()
	typ, ok := MarkKindByName(name)
	if !ok {
		return nil, fmt.Errorf("There is no mark type %q in this schema", name)
	}
	return NewMark(typ, AttrsFromMap(attrsFromResult(obj.Get("attrs")))), nil
}
