package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/raycaster/engine"
)

// Clamper is implemented by resources whose fields have a valid range. The
// inspector calls Clamp after every edit.
type Clamper interface {
	Clamp()
}

// ResourceInspector lists every world resource and lets float and boolean
// fields be edited in place. Integers are shown read-only since they are
// mostly sizes and counters.
type ResourceInspector struct {
	World *engine.World
}

func (ri *ResourceInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(380, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 400), imgui.CondOnce)

	if !imgui.BeginV("Resources", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ri.World.CollectStats()
	imgui.Text(fmt.Sprintf("Resources: %d of %d registered", stats.ResourceCount, stats.RegisteredCount))
	imgui.Separator()

	ri.World.Each(func(t reflect.Type, value any) bool {
		if imgui.TreeNodeStr(t.String()) {
			if renderValue(t.Name(), reflect.ValueOf(value).Elem()) {
				afterEdit(value)
			}
			imgui.TreePop()
		}
		return true
	})

	imgui.End()
}

// afterEdit keeps an edited resource within its valid range.
func afterEdit(value any) {
	if c, ok := value.(Clamper); ok {
		c.Clamp()
	}
}

// renderValue draws val and reports whether any field was edited.
func renderValue(name string, val reflect.Value) bool {
	if val.Kind() != reflect.Struct {
		return renderField(name, val)
	}
	edited := false
	for _, field := range resourceFields.get(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		if renderField(field.Name, fieldVal) {
			edited = true
		}
	}
	return edited
}

func renderField(name string, val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		imgui.Text(fmt.Sprintf("%s: %d", name, val.Int()))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		imgui.Text(fmt.Sprintf("%s: %d", name, val.Uint()))

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat("##"+name, &v) && val.CanSet() {
			val.SetFloat(float64(v))
			return true
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
			return true
		}

	case reflect.String:
		imgui.Text(fmt.Sprintf("%s: %q", name, val.String()))

	case reflect.Array:
		if val.Len() <= 4 {
			edited := false
			for i := 0; i < val.Len(); i++ {
				if renderField(fmt.Sprintf("%s[%d]", name, i), val.Index(i)) {
					edited = true
				}
			}
			return edited
		}
		imgui.Text(fmt.Sprintf("%s: [%d]%s", name, val.Len(), val.Type().Elem()))

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			edited := renderValue(name, val)
			imgui.TreePop()
			return edited
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	case reflect.Ptr, reflect.Interface:
		if val.IsNil() {
			imgui.Text(name + ": nil")
			return false
		}
		imgui.Text(fmt.Sprintf("%s: %s", name, val.Elem().Type()))

	default:
		imgui.Text(fmt.Sprintf("%s: %s", name, val.Type()))
	}
	return false
}
