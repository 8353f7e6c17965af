package pulse

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned by Deserialize for an unrecognized "type" key.
var ErrUnknownType = errors.New("pulse: unknown serialized type")

// Serialize emits the collaborator-facing mapping named in spec.md 6, used
// by out-of-scope CLI/config/serialization collaborators to persist a
// pulse. Not used internally by the sampler.
func Serialize(m Model) map[string]any {
	base := map[string]any{
		"peak_int": m.I0(),
		"wave_len": m.Wavelength(),
		"ellip":    m.Ellipticity(),
		"azi":      m.Azimuth(),
		"cep":      m.CEP(),
		"t_shift":  m.TimeShift(),
	}

	switch p := m.(type) {
	case *CosPowerPulse:
		if p.Kind() == Cos2 {
			base["type"] = "cos2"
		} else {
			base["type"] = "cos4"
		}
		base["cyc_num"] = p.Cycles()
	case *TrapezoidalPulse:
		base["type"] = "trapezoidal"
		on, cst, off := p.CycleCounts()
		base["cyc_num_turn_on"] = on
		base["cyc_num_const"] = cst
		base["cyc_num_turn_off"] = off
	}

	return base
}

// Deserialize reconstructs a Model from the mapping produced by Serialize.
func Deserialize(data map[string]any) (Model, error) {
	typ, _ := data["type"].(string)

	i0 := asFloat(data["peak_int"])
	wavelength := asFloat(data["wave_len"])
	ellip := asFloat(data["ellip"])
	azi := asFloat(data["azi"])
	cep := asFloat(data["cep"])
	tShift := asFloat(data["t_shift"])

	switch typ {
	case "cos4":
		return NewCos4(i0, wavelength, ellip, azi, cep, tShift, asFloat(data["cyc_num"]))
	case "cos2":
		return NewCos2(i0, wavelength, ellip, azi, cep, tShift, asFloat(data["cyc_num"]))
	case "trapezoidal":
		return NewTrapezoidal(i0, wavelength, ellip, azi, cep, tShift,
			asFloat(data["cyc_num_turn_on"]), asFloat(data["cyc_num_const"]), asFloat(data["cyc_num_turn_off"]))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}
