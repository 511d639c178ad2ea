package leveldata

import (
	"fmt"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"gopkg.in/yaml.v3"
)

// ParseScriptYAML reads a declarative level script.
func ParseScriptYAML(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parse level script: %w", err)
	}
	for i := range s.Platforms {
		p := &s.Platforms[i]
		if p.Width == 0 {
			p.Width = DefaultPlatformWidth
		}
		if p.Height == 0 {
			p.Height = DefaultPlatformHeight
		}
	}
	return s, nil
}

// RunScriptTengo runs a tengo level script. The script sets the level up by
// calling platform, kill_platform, camera_hold and gravity.
func RunScriptTengo(src []byte) (Script, error) {
	var s Script

	script := tengo.NewScript(src)
	builtins := map[string]tengo.CallableFunc{
		"platform": func(args ...tengo.Object) (tengo.Object, error) {
			spec, err := platformArg("platform", args)
			if err != nil {
				return nil, err
			}
			s.Platforms = append(s.Platforms, spec)
			return tengo.UndefinedValue, nil
		},
		"kill_platform": func(args ...tengo.Object) (tengo.Object, error) {
			spec, err := platformArg("kill_platform", args)
			if err != nil {
				return nil, err
			}
			if spec.Lethal == nil {
				spec.Lethal = &LethalSpec{Facing: []string{"radial"}}
			}
			s.Platforms = append(s.Platforms, spec)
			return tengo.UndefinedValue, nil
		},
		"camera_hold": func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			x, ok := tengo.ToInt(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "x", Expected: "int", Found: args[0].TypeName()}
			}
			s.CameraHolds = append(s.CameraHolds, x)
			return tengo.UndefinedValue, nil
		},
		"gravity": func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			g, ok := tengo.ToFloat64(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "g", Expected: "float", Found: args[0].TypeName()}
			}
			s.Gravity = g
			return tengo.UndefinedValue, nil
		},
	}
	for name, fn := range builtins {
		if err := script.Add(name, &tengo.UserFunction{Name: name, Value: fn}); err != nil {
			return Script{}, fmt.Errorf("level script: add %s: %w", name, err)
		}
	}

	if _, err := script.Run(); err != nil {
		return Script{}, fmt.Errorf("run level script: %w", err)
	}
	return s, nil
}

func platformArg(fn string, args []tengo.Object) (PlatformSpec, error) {
	if len(args) != 1 {
		return PlatformSpec{}, tengo.ErrWrongNumArguments
	}
	m, ok := objectMap(args[0])
	if !ok {
		return PlatformSpec{}, tengo.ErrInvalidArgumentType{Name: "spec", Expected: "map", Found: args[0].TypeName()}
	}

	spec := PlatformSpec{Width: DefaultPlatformWidth, Height: DefaultPlatformHeight}
	var err error
	if spec.Start, err = floatPair(m, "start"); err != nil {
		return PlatformSpec{}, fmt.Errorf("%s: %w", fn, err)
	}
	if spec.Stop, err = floatPair(m, "stop"); err != nil {
		return PlatformSpec{}, fmt.Errorf("%s: %w", fn, err)
	}
	if v, ok := m["speed"]; ok {
		spec.Speed, _ = tengo.ToFloat64(v)
	}
	if v, ok := m["hold"]; ok {
		if spec.Hold, err = durationValue(v); err != nil {
			return PlatformSpec{}, fmt.Errorf("%s: hold: %w", fn, err)
		}
	}
	if v, ok := m["one_time"]; ok {
		spec.OneTime, _ = tengo.ToBool(v)
	}
	if v, ok := m["width"]; ok {
		spec.Width, _ = tengo.ToFloat64(v)
	}
	if v, ok := m["height"]; ok {
		spec.Height, _ = tengo.ToFloat64(v)
	}

	_, hasSensor := m["sensor"]
	_, hasKill := m["kill"]
	if hasSensor || hasKill {
		lethal := &LethalSpec{
			Facing: stringList(m["facing"]),
			Kill:   stringList(m["kill"]),
		}
		sensor, err := floatPair(m, "sensor")
		if err != nil {
			return PlatformSpec{}, fmt.Errorf("%s: %w", fn, err)
		}
		bias, err := floatPair(m, "bias")
		if err != nil {
			return PlatformSpec{}, fmt.Errorf("%s: %w", fn, err)
		}
		lethal.Sensor = [2]int{int(sensor[0]), int(sensor[1])}
		lethal.Bias = [2]int{int(bias[0]), int(bias[1])}
		spec.Lethal = lethal
	}

	return spec, nil
}

func objectMap(o tengo.Object) (map[string]tengo.Object, bool) {
	switch v := o.(type) {
	case *tengo.Map:
		return v.Value, true
	case *tengo.ImmutableMap:
		return v.Value, true
	}
	return nil, false
}

func objectSlice(o tengo.Object) ([]tengo.Object, bool) {
	switch v := o.(type) {
	case *tengo.Array:
		return v.Value, true
	case *tengo.ImmutableArray:
		return v.Value, true
	}
	return nil, false
}

func floatPair(m map[string]tengo.Object, key string) ([2]float64, error) {
	v, ok := m[key]
	if !ok {
		return [2]float64{}, nil
	}
	items, ok := objectSlice(v)
	if !ok || len(items) != 2 {
		return [2]float64{}, fmt.Errorf("%s: want [x, y]", key)
	}
	var out [2]float64
	for i, item := range items {
		f, ok := tengo.ToFloat64(item)
		if !ok {
			return [2]float64{}, fmt.Errorf("%s: %s is not a number", key, item.TypeName())
		}
		out[i] = f
	}
	return out, nil
}

// durationValue accepts a duration string ("1.5s") or a number of seconds.
func durationValue(o tengo.Object) (time.Duration, error) {
	if s, ok := o.(*tengo.String); ok {
		return time.ParseDuration(s.Value)
	}
	secs, ok := tengo.ToFloat64(o)
	if !ok {
		return 0, fmt.Errorf("%s is not a duration", o.TypeName())
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func stringList(o tengo.Object) []string {
	if o == nil {
		return nil
	}
	if items, ok := objectSlice(o); ok {
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := tengo.ToString(item); ok {
				out = append(out, strings.ToLower(s))
			}
		}
		return out
	}
	if s, ok := tengo.ToString(o); ok {
		return splitList(s)
	}
	return nil
}
