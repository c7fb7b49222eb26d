package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/kestrel/engine/core"
)

var (
	glfwToKey = map[glfw.Key]core.KeyCode{
		glfw.KeyBackspace:    core.KeyBackspace,
		glfw.KeyTab:          core.KeyTab,
		glfw.KeyEnter:        core.KeyEnter,
		glfw.KeyKPEnter:      core.KeyEnter,
		glfw.KeyPause:        core.KeyPause,
		glfw.KeyCapsLock:     core.KeyCapital,
		glfw.KeyEscape:       core.KeyEscape,
		glfw.KeySpace:        core.KeySpace,
		glfw.KeyPageUp:       core.KeyPageUp,
		glfw.KeyPageDown:     core.KeyPageDown,
		glfw.KeyEnd:          core.KeyEnd,
		glfw.KeyHome:         core.KeyHome,
		glfw.KeyLeft:         core.KeyLeft,
		glfw.KeyUp:           core.KeyUp,
		glfw.KeyRight:        core.KeyRight,
		glfw.KeyDown:         core.KeyDown,
		glfw.KeyPrintScreen:  core.KeyPrint,
		glfw.KeyInsert:       core.KeyInsert,
		glfw.KeyDelete:       core.KeyDelete,
		glfw.KeyKP0:          core.KeyNumpad0,
		glfw.KeyKP1:          core.KeyNumpad1,
		glfw.KeyKP2:          core.KeyNumpad2,
		glfw.KeyKP3:          core.KeyNumpad3,
		glfw.KeyKP4:          core.KeyNumpad4,
		glfw.KeyKP5:          core.KeyNumpad5,
		glfw.KeyKP6:          core.KeyNumpad6,
		glfw.KeyKP7:          core.KeyNumpad7,
		glfw.KeyKP8:          core.KeyNumpad8,
		glfw.KeyKP9:          core.KeyNumpad9,
		glfw.KeyKPMultiply:   core.KeyMultiply,
		glfw.KeyKPAdd:        core.KeyAdd,
		glfw.KeyKPSubtract:   core.KeySubtract,
		glfw.KeyKPDecimal:    core.KeyDecimal,
		glfw.KeyKPDivide:     core.KeyDivide,
		glfw.KeyF1:           core.KeyF1,
		glfw.KeyF2:           core.KeyF2,
		glfw.KeyF3:           core.KeyF3,
		glfw.KeyF4:           core.KeyF4,
		glfw.KeyF5:           core.KeyF5,
		glfw.KeyF6:           core.KeyF6,
		glfw.KeyF7:           core.KeyF7,
		glfw.KeyF8:           core.KeyF8,
		glfw.KeyF9:           core.KeyF9,
		glfw.KeyF10:          core.KeyF10,
		glfw.KeyF11:          core.KeyF11,
		glfw.KeyF12:          core.KeyF12,
		glfw.KeyNumLock:      core.KeyNumLock,
		glfw.KeyScrollLock:   core.KeyScrollLock,
		glfw.KeyLeftShift:    core.KeyLeftShift,
		glfw.KeyRightShift:   core.KeyRightShift,
		glfw.KeyLeftControl:  core.KeyLeftControl,
		glfw.KeyRightControl: core.KeyRightControl,
		glfw.KeyLeftAlt:      core.KeyLeftAlt,
		glfw.KeyRightAlt:     core.KeyRightAlt,
		glfw.KeySemicolon:    core.KeySemicolon,
		glfw.KeyEqual:        core.KeyEqual,
		glfw.KeyComma:        core.KeyComma,
		glfw.KeyMinus:        core.KeyMinus,
		glfw.KeyPeriod:       core.KeyPeriod,
		glfw.KeySlash:        core.KeySlash,
		glfw.KeyGraveAccent:  core.KeyGrave,
	}
	keyToGLFW = make(map[core.KeyCode]glfw.Key, len(glfwToKey)+36)
)

func init() {
	// digits and letters share their ASCII values in both tables
	for k := glfw.Key0; k <= glfw.Key9; k++ {
		glfwToKey[k] = core.Key0 + core.KeyCode(k-glfw.Key0)
	}
	for k := glfw.KeyA; k <= glfw.KeyZ; k++ {
		glfwToKey[k] = core.KeyA + core.KeyCode(k-glfw.KeyA)
	}
	for g, k := range glfwToKey {
		if g == glfw.KeyKPEnter {
			continue
		}
		keyToGLFW[k] = g
	}
}

func translateKey(key glfw.Key) core.KeyCode {
	if k, ok := glfwToKey[key]; ok {
		return k
	}
	return core.KeyUnknown
}

func translateButton(button glfw.MouseButton) (core.Button, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return core.ButtonLeft, true
	case glfw.MouseButtonRight:
		return core.ButtonRight, true
	case glfw.MouseButtonMiddle:
		return core.ButtonMiddle, true
	default:
		return 0, false
	}
}
