package transform

import (
	"errors"
	"fmt"

	"github.com/shodgson/prosemirror-fontsize/model"
	"github.com/tidwall/gjson"
)

// StepFromJSON decodes a step from the JSON produced by its ToJSON method.
func StepFromJSON(data []byte) (Step, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("Invalid input for Step.fromJSON: malformed JSON")
	}
	obj := gjson.ParseBytes(data)
	switch typ := obj.Get("stepType").String(); typ {
	case "setAttrs":
		return setAttrsStepFromJSON(obj)
	case "addMark":
		from, to, err := rangeFromJSON(obj)
		if err != nil {
			return nil, err
		}
		mark, err := model.MarkFromJSON([]byte(obj.Get("mark").Raw))
		if err != nil {
			return nil, fmt.Errorf("Invalid mark for AddMarkStep.fromJSON: %w", err)
		}
		return NewAddMarkStep(from, to, mark), nil
	case "removeMark":
		from, to, err := rangeFromJSON(obj)
		if err != nil {
			return nil, err
		}
		name := obj.Get("mark.type").String()
		kind, ok := model.MarkKindByName(name)
		if !ok {
			return nil, fmt.Errorf("There is no mark type %q in this schema", name)
		}
		return NewRemoveMarkStep(from, to, kind), nil
	default:
		return nil, fmt.Errorf("No step type %q defined", typ)
	}
}

func setAttrsStepFromJSON(obj gjson.Result) (Step, error) {
	pos := obj.Get("pos")
	attrs := obj.Get("attrs")
	if pos.Type != gjson.Number || !attrs.IsObject() {
		return nil, errors.New("Invalid input for SetAttrsStep.fromJSON")
	}
	m, _ := attrs.Value().(map[string]interface{})
	return NewSetAttrsStep(int(pos.Int()), m), nil
}

func rangeFromJSON(obj gjson.Result) (int, int, error) {
	from, to := obj.Get("from"), obj.Get("to")
	if from.Type != gjson.Number || to.Type != gjson.Number {
		return 0, 0, errors.New("Invalid input for MarkStep.fromJSON")
	}
	return int(from.Int()), int(to.Int()), nil
}
