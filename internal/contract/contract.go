// Package contract describes the rows the external automation engine reads,
// in their stored wire naming.
package contract

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/invopop/jsonschema"
)

// KeywordRow is a keyword as the engine sees it.
type KeywordRow struct {
	ID            string    `json:"id" jsonschema:"description=Snowflake ID as a decimal string"`
	UserID        string    `json:"user_id" jsonschema:"description=Owning profile ID"`
	Word          string    `json:"word" jsonschema:"minLength=1,description=Matched against incoming comments"`
	Enabled       bool      `json:"enabled"`
	Link          string    `json:"link" jsonschema:"minLength=1,description=URL sent behind the DM button"`
	Message       string    `json:"message"`
	ButtonText    string    `json:"button_text"`
	TriggersCount int       `json:"triggers_count" jsonschema:"minimum=0,description=Advanced only by the engine"`
	CreatedAt     time.Time `json:"created_at"`
}

// AutomationConfigRow is the single per-user configuration row.
type AutomationConfigRow struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	AccessToken    string    `json:"access_token" jsonschema:"description=Instagram Graph API token"`
	InstagramID    string    `json:"instagram_id"`
	BaseURL        string    `json:"base_url" jsonschema:"description=Base URL of the workflow engine"`
	APIKey         string    `json:"api_key"`
	DelaySeconds   int       `json:"delay_seconds" jsonschema:"minimum=0,default=5"`
	ReplyToComment bool      `json:"reply_to_comment" jsonschema:"default=true"`
	SendDM         bool      `json:"send_dm" jsonschema:"default=true"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ChangeEventFields lists the fields of each entry on the change stream.
type ChangeEventFields struct {
	UserID   string `json:"user_id"`
	Entity   string `json:"entity" jsonschema:"enum=keyword,enum=automation_config"`
	EntityID string `json:"entity_id"`
	Action   string `json:"action" jsonschema:"enum=created,enum=updated,enum=toggled,enum=deleted"`
	TraceID  string `json:"trace_id,omitempty"`
}

// Document bundles every schema the engine depends on.
type Document struct {
	Keyword          *jsonschema.Schema `json:"keyword"`
	AutomationConfig *jsonschema.Schema `json:"automation_config"`
	ChangeEvent      *jsonschema.Schema `json:"change_event"`
}

func reflectSchema(v any, title string) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(v)
	schema.Title = title
	return schema
}

// Schemas reflects the contract. The result is rebuilt on each call and may
// be mutated by the caller.
func Schemas() Document {
	return Document{
		Keyword:          reflectSchema(&KeywordRow{}, "keyword"),
		AutomationConfig: reflectSchema(&AutomationConfigRow{}, "automation_config"),
		ChangeEvent:      reflectSchema(&ChangeEventFields{}, "change_event"),
	}
}

// MarshalIndent renders the contract for humans.
func MarshalIndent() ([]byte, error) {
	out, err := json.MarshalIndent(Schemas(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal contract: %w", err)
	}
	return out, nil
}
