package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyNames is the lowercase reverse of tcell.KeyNames
var keyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// KeymapConfig is the raw keymap as it appears in TOML
//
//	[runes]
//	w = "up"
//	x = "none"
//
//	[keys]
//	Up = "up"
//	Ctrl-C = "quit"
type KeymapConfig struct {
	Runes map[string]string `toml:"runes"`
	Keys  map[string]string `toml:"keys"`
}

// Empty reports whether no bindings are present
func (c KeymapConfig) Empty() bool {
	return len(c.Runes) == 0 && len(c.Keys) == 0
}

// LoadKeyConfig parses standalone TOML keymap data into a sparse override KeyTable
// Returns error on unknown sections, action names, key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw KeymapConfig
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown keys %v", undecoded)
	}
	return raw.KeyTable()
}

// KeyTable resolves names into a sparse override KeyTable
// Only bindings present are populated; "none" marks an unbind
func (c KeymapConfig) KeyTable() (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action, len(c.Keys)),
		Runes:       make(map[rune]Action, len(c.Runes)),
	}

	for keyStr, actionName := range c.Runes {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
		}
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
		}
		kt.Runes[r] = a
	}

	for keyStr, actionName := range c.Keys {
		k, ok := keyNames[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("[keys] unknown key name: %q", keyStr)
		}
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		kt.SpecialKeys[k] = a
	}

	return kt, nil
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to ActionNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	if result.SpecialKeys == nil {
		result.SpecialKeys = make(map[tcell.Key]Action)
	}
	if result.Runes == nil {
		result.Runes = make(map[rune]Action)
	}

	mergeMap(result.SpecialKeys, override.SpecialKeys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
