package core

import (
	"fmt"
	"strings"
)

type Button uint16

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonMaxButtons
)

// KeyCode values follow the virtual-key numbering so printable keys map to
// their upper case ASCII value.
type KeyCode uint16

const (
	KeyUnknown   KeyCode = 0x00
	KeyBackspace KeyCode = 0x08
	KeyTab       KeyCode = 0x09
	KeyEnter     KeyCode = 0x0D
	KeyShift     KeyCode = 0x10
	KeyPause     KeyCode = 0x13
	KeyCapital   KeyCode = 0x14
	KeyEscape    KeyCode = 0x1B
	KeySpace     KeyCode = 0x20
	KeyPageUp    KeyCode = 0x21
	KeyPageDown  KeyCode = 0x22
	KeyEnd       KeyCode = 0x23
	KeyHome      KeyCode = 0x24
	KeyLeft      KeyCode = 0x25
	KeyUp        KeyCode = 0x26
	KeyRight     KeyCode = 0x27
	KeyDown      KeyCode = 0x28
	KeyPrint     KeyCode = 0x2A
	KeyInsert    KeyCode = 0x2D
	KeyDelete    KeyCode = 0x2E

	Key0 KeyCode = 0x30
	Key1 KeyCode = 0x31
	Key2 KeyCode = 0x32
	Key3 KeyCode = 0x33
	Key4 KeyCode = 0x34
	Key5 KeyCode = 0x35
	Key6 KeyCode = 0x36
	Key7 KeyCode = 0x37
	Key8 KeyCode = 0x38
	Key9 KeyCode = 0x39

	KeyA KeyCode = 0x41
	KeyB KeyCode = 0x42
	KeyC KeyCode = 0x43
	KeyD KeyCode = 0x44
	KeyE KeyCode = 0x45
	KeyF KeyCode = 0x46
	KeyG KeyCode = 0x47
	KeyH KeyCode = 0x48
	KeyI KeyCode = 0x49
	KeyJ KeyCode = 0x4A
	KeyK KeyCode = 0x4B
	KeyL KeyCode = 0x4C
	KeyM KeyCode = 0x4D
	KeyN KeyCode = 0x4E
	KeyO KeyCode = 0x4F
	KeyP KeyCode = 0x50
	KeyQ KeyCode = 0x51
	KeyR KeyCode = 0x52
	KeyS KeyCode = 0x53
	KeyT KeyCode = 0x54
	KeyU KeyCode = 0x55
	KeyV KeyCode = 0x56
	KeyW KeyCode = 0x57
	KeyX KeyCode = 0x58
	KeyY KeyCode = 0x59
	KeyZ KeyCode = 0x5A

	KeyNumpad0  KeyCode = 0x60
	KeyNumpad1  KeyCode = 0x61
	KeyNumpad2  KeyCode = 0x62
	KeyNumpad3  KeyCode = 0x63
	KeyNumpad4  KeyCode = 0x64
	KeyNumpad5  KeyCode = 0x65
	KeyNumpad6  KeyCode = 0x66
	KeyNumpad7  KeyCode = 0x67
	KeyNumpad8  KeyCode = 0x68
	KeyNumpad9  KeyCode = 0x69
	KeyMultiply KeyCode = 0x6A
	KeyAdd      KeyCode = 0x6B
	KeySubtract KeyCode = 0x6D
	KeyDecimal  KeyCode = 0x6E
	KeyDivide   KeyCode = 0x6F

	KeyF1  KeyCode = 0x70
	KeyF2  KeyCode = 0x71
	KeyF3  KeyCode = 0x72
	KeyF4  KeyCode = 0x73
	KeyF5  KeyCode = 0x74
	KeyF6  KeyCode = 0x75
	KeyF7  KeyCode = 0x76
	KeyF8  KeyCode = 0x77
	KeyF9  KeyCode = 0x78
	KeyF10 KeyCode = 0x79
	KeyF11 KeyCode = 0x7A
	KeyF12 KeyCode = 0x7B

	KeyNumLock      KeyCode = 0x90
	KeyScrollLock   KeyCode = 0x91
	KeyLeftShift    KeyCode = 0xA0
	KeyRightShift   KeyCode = 0xA1
	KeyLeftControl  KeyCode = 0xA2
	KeyRightControl KeyCode = 0xA3
	KeyLeftAlt      KeyCode = 0xA4
	KeyRightAlt     KeyCode = 0xA5
	KeySemicolon    KeyCode = 0xBA
	KeyEqual        KeyCode = 0xBB
	KeyComma        KeyCode = 0xBC
	KeyMinus        KeyCode = 0xBD
	KeyPeriod       KeyCode = 0xBE
	KeySlash        KeyCode = 0xBF
	KeyGrave        KeyCode = 0xC0

	KeysMaxKeys KeyCode = 0x100
)

var keyNames = map[KeyCode]string{
	KeyBackspace: "backspace", KeyTab: "tab", KeyEnter: "enter", KeyShift: "shift",
	KeyPause: "pause", KeyCapital: "capslock", KeyEscape: "escape", KeySpace: "space",
	KeyPageUp: "pageup", KeyPageDown: "pagedown", KeyEnd: "end", KeyHome: "home",
	KeyLeft: "left", KeyUp: "up", KeyRight: "right", KeyDown: "down",
	KeyPrint: "print", KeyInsert: "insert", KeyDelete: "delete",
	KeyNumpad0: "numpad0", KeyNumpad1: "numpad1", KeyNumpad2: "numpad2", KeyNumpad3: "numpad3",
	KeyNumpad4: "numpad4", KeyNumpad5: "numpad5", KeyNumpad6: "numpad6", KeyNumpad7: "numpad7",
	KeyNumpad8: "numpad8", KeyNumpad9: "numpad9", KeyMultiply: "multiply", KeyAdd: "add",
	KeySubtract: "subtract", KeyDecimal: "decimal", KeyDivide: "divide",
	KeyNumLock: "numlock", KeyScrollLock: "scrolllock",
	KeyLeftShift: "lshift", KeyRightShift: "rshift", KeyLeftControl: "lcontrol",
	KeyRightControl: "rcontrol", KeyLeftAlt: "lalt", KeyRightAlt: "ralt",
	KeySemicolon: "semicolon", KeyEqual: "equal", KeyComma: "comma", KeyMinus: "minus",
	KeyPeriod: "period", KeySlash: "slash", KeyGrave: "grave",
}

var keysByName map[string]KeyCode

func init() {
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune(k))
	}
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = strings.ToLower(string(rune(k)))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = fmt.Sprintf("f%d", k-KeyF1+1)
	}
	keysByName = make(map[string]KeyCode, len(keyNames))
	for k, name := range keyNames {
		keysByName[name] = k
	}
}

func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(0x%02X)", uint16(k))
}

// IsFunctionKey reports whether k is one of F1..F12.
func (k KeyCode) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// ParseKeyCode resolves a key name as written in configuration files, e.g.
// "w", "enter" or "f1". Matching is case insensitive.
func ParseKeyCode(name string) (KeyCode, error) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return KeyUnknown, fmt.Errorf("key %q: %w", name, ErrNotFound)
	}
	return k, nil
}
