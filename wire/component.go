package wire

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Component is a typed chat/text component, per
// https://minecraft.wiki/w/Text_component_format. Pre-1.13 protocols carry
// components as a length-prefixed JSON string (see JSONTextComponent in
// string.go); Component adds the typed shape on top so style, click/hover
// events and children survive a decode-then-encode round trip without
// collapsing into an untyped map.
type Component struct {
	Text          string      `json:"text,omitempty"`
	Translate     string      `json:"translate,omitempty"`
	With          []Component `json:"with,omitempty"`
	Color         string      `json:"color,omitempty"`
	Bold          bool        `json:"bold,omitempty"`
	Italic        bool        `json:"italic,omitempty"`
	Underlined    bool        `json:"underlined,omitempty"`
	Strikethrough bool        `json:"strikethrough,omitempty"`
	Obfuscated    bool        `json:"obfuscated,omitempty"`
	Insertion     string      `json:"insertion,omitempty"`
	ClickEvent    *ClickEvent `json:"clickEvent,omitempty"`
	HoverEvent    *HoverEvent `json:"hoverEvent,omitempty"`
	Extra         []Component `json:"extra,omitempty"`
}

// ClickEvent describes a clickable action attached to a Component.
type ClickEvent struct {
	Action string `json:"action"`
	Value  string `json:"value"`
}

// HoverEvent describes a hover tooltip attached to a Component.
type HoverEvent struct {
	Action   string          `json:"action"`
	Value    json.RawMessage `json:"value,omitempty"`
	Contents json.RawMessage `json:"contents,omitempty"`
}

func (c Component) ToBytes() (ByteArray, error) {
	jsonBytes, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal component: %w", err)
	}
	return String(jsonBytes).ToBytes()
}

func (c *Component) FromBytes(data ByteArray) (int, error) {
	var str String
	bytesRead, err := str.FromBytes(data)
	if err != nil {
		return 0, err
	}

	var parsed Component
	if strings.HasPrefix(strings.TrimSpace(string(str)), "{") {
		if err := json.Unmarshal([]byte(str), &parsed); err != nil {
			return 0, fmt.Errorf("unmarshal component: %w", err)
		}
	} else {
		parsed.Text = string(str)
	}

	*c = parsed
	return bytesRead, nil
}

// PlainText flattens the component tree to its visible text, ignoring style.
func (c Component) PlainText() string {
	var result strings.Builder
	if c.Text != "" {
		result.WriteString(c.Text)
	} else if c.Translate != "" {
		result.WriteString(c.Translate)
	}
	for _, extra := range c.Extra {
		result.WriteString(extra.PlainText())
	}
	return result.String()
}

// ChatTextComponent is the loosely-typed fallback used when decoding status
// response JSON or NBT-carried text that doesn't cleanly match Component's
// shape (the teacher's JSONTextComponent equivalent, kept for status JSON
// that is sometimes a raw string or a partially-typed object in the wild).
type ChatTextComponent struct {
	Text  string              `json:"text,omitempty"`
	Color string              `json:"color,omitempty"`
	Bold  bool                `json:"bold,omitempty"`
	Extra []ChatTextComponent `json:"extra,omitempty"`
	Raw   map[string]any      `json:"-"`
}

// UnmarshalJSON accepts a bare JSON string, taken as Text, as well as an
// object with the fields above.
func (c *ChatTextComponent) UnmarshalJSON(data []byte) error {
	var text string
	if json.Unmarshal(data, &text) == nil {
		*c = ChatTextComponent{Text: text}
		return nil
	}
	type plain ChatTextComponent
	return json.Unmarshal(data, (*plain)(c))
}

// ExtractPlainText extracts plain text from a chat component, handling all formatting
func (c ChatTextComponent) ExtractPlainText() string {
	var result strings.Builder

	if c.Text != "" {
		result.WriteString(c.Text)
	}

	for _, extra := range c.Extra {
		result.WriteString(extra.ExtractPlainText())
	}

	return result.String()
}

// String returns a formatted string representation
func (c ChatTextComponent) String() string {
	text := c.ExtractPlainText()
	if text != "" {
		return text
	}

	if c.Raw != nil {
		if translate, ok := c.Raw["translate"].(string); ok {
			if with, ok := c.Raw["with"].([]any); ok {
				var parts []string
				for _, arg := range with {
					switch v := arg.(type) {
					case map[string]any:
						parts = append(parts, extractTextFromMap(v))
					case string:
						parts = append(parts, v)
					default:
						parts = append(parts, fmt.Sprintf("%v", v))
					}
				}
				return fmt.Sprintf("%s [%s]", translate, strings.Join(parts, ", "))
			}
			return translate
		}

		for key, value := range c.Raw {
			if strings.Contains(key, "text") {
				if str, ok := value.(string); ok {
					return str
				}
			}
		}
	}

	return "<empty text component>"
}

// ParseTextComponentFromString attempts to parse a text component from JSON string
func ParseTextComponentFromString(jsonStr string) (ChatTextComponent, error) {
	var component ChatTextComponent

	if !strings.HasPrefix(jsonStr, "{") && !strings.HasPrefix(jsonStr, "[") {
		component.Text = jsonStr
		return component, nil
	}

	if err := json.Unmarshal([]byte(jsonStr), &component); err != nil {
		var raw map[string]any
		if err2 := json.Unmarshal([]byte(jsonStr), &raw); err2 == nil {
			component.Raw = raw
			if text, ok := raw["text"].(string); ok {
				component.Text = text
			}
			if color, ok := raw["color"].(string); ok {
				component.Color = color
			}
			return component, nil
		}
		return component, fmt.Errorf("failed to parse text component: %w", err)
	}

	return component, nil
}
