package custom

type Status string

const StatusLive Status = "live"

type Action string

type Row struct {
	Status Status
	Action Action
}

func set(r *Row) {
	r.Status = "paused" // want "enum field Status assigned string literal"
	r.Status = StatusLive
	r.Action = "any" // not configured, so allowed
}
