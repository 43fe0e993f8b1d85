package example

type Entity string

const (
	EntityKeyword Entity = "keyword"
)

type Action string

const (
	ActionToggled Action = "toggled"
)

type ChangeEvent struct {
	Entity Entity
	Action Action
	Note   string
}

func bad() {
	e := &ChangeEvent{}
	e.Action = "flipped" // want "enum field Action assigned string literal"

	_ = ChangeEvent{
		Entity: "keywords", // want "enum field Entity set to string literal"
		Action: ActionToggled,
	}
}

func good() {
	e := &ChangeEvent{Entity: EntityKeyword}
	e.Action = ActionToggled // OK: using constant
	e.Note = "free text"
}

func alsoGood() {
	// OK: variable, not literal
	action := ActionToggled
	_ = ChangeEvent{Action: action, Note: "manual"}
}
