package rustdoc

import "encoding/json"

// Crate is the top-level structure of rustdoc JSON output. Only the pieces
// quarry mines are decoded; everything else is left in raw form.
type Crate struct {
	Root          int             `json:"root"`
	Index         map[string]Item `json:"index"`
	FormatVersion int             `json:"format_version"`
}

// Item is a single item in the rustdoc index. Visibility and Inner are kept
// raw: both are loosely typed unions that get decoded field-by-field by the
// mining pipeline.
type Item struct {
	ID         int             `json:"id"`
	CrateID    int             `json:"crate_id"`
	Name       *string         `json:"name"`
	Span       *Span           `json:"span"`
	Visibility json.RawMessage `json:"visibility"`
	Inner      json.RawMessage `json:"inner"`
}

// Span records where an item was declared in the source tree.
type Span struct {
	Filename string `json:"filename"`
	Begin    [2]int `json:"begin"`
	End      [2]int `json:"end"`
}

// InnerPayload returns the payload under the given key of the item's inner
// union, or nil if the item's inner is absent, malformed, or of a different
// kind.
func (it *Item) InnerPayload(kind string) json.RawMessage {
	if len(it.Inner) == 0 {
		return nil
	}
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(it.Inner, &outer); err != nil {
		return nil
	}
	return outer[kind]
}

// IsPublic reports whether the item's visibility is the literal string
// "public". Restricted visibility objects and absent visibility both count
// as private.
func (it *Item) IsPublic() bool {
	var vis string
	if err := json.Unmarshal(it.Visibility, &vis); err != nil {
		return false
	}
	return vis == "public"
}
