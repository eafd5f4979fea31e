package serial

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	sderrors "github.com/averbraeck/djutils-sub014/errors"
)

// catalogFile is the YAML document shape for catalog extensions.
type catalogFile struct {
	Serializers []serializerEntry `yaml:"serializers"`
	Units       []unitTypeEntry   `yaml:"units"`
}

type serializerEntry struct {
	Code int    `yaml:"code"`
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Elem string `yaml:"elem"`
}

type unitTypeEntry struct {
	Type     int            `yaml:"type"`
	Name     string         `yaml:"name"`
	Displays []displayEntry `yaml:"displays"`
}

type displayEntry struct {
	Code   int    `yaml:"code"`
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

var kindNames = map[string]Kind{
	"fixed":         KindFixedPrimitive,
	"array":         KindPlainArray,
	"matrix":        KindPlainMatrix,
	"unit-scalar":   KindUnitScalar,
	"unit-array":    KindUnitArray,
	"unit-matrix":   KindUnitMatrix,
	"string":        KindStringScalar,
	"string-array":  KindStringArray,
	"string-matrix": KindStringMatrix,
	"column-array":  KindColumnVectorArray,
}

var elemNames = map[string]ElemKind{
	"int8":    ElemInt8,
	"int16":   ElemInt16,
	"int32":   ElemInt32,
	"int64":   ElemInt64,
	"float32": ElemFloat32,
	"float64": ElemFloat64,
	"bool":    ElemBool,
	"char8":   ElemChar8,
	"char16":  ElemChar16,
}

// FileCatalog overlays serializers and units declared in a YAML file on
// top of the standard catalog, so deployments can register
// application-specific field types without recompiling.
type FileCatalog struct {
	base        Catalog
	serializers map[byte]*Serializer
	units       map[uint16]*Unit
}

// LoadCatalog parses a YAML catalog extension from r and returns a
// catalog that consults the extension first and the standard catalog
// second.
func LoadCatalog(r io.Reader) (*FileCatalog, error) {
	var doc catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, sderrors.Wrap(sderrors.PhaseParse, sderrors.KindInvalidData, err, "catalog file")
	}

	fc := &FileCatalog{
		base:        Standard(),
		serializers: make(map[byte]*Serializer, len(doc.Serializers)),
		units:       make(map[uint16]*Unit),
	}

	for _, e := range doc.Serializers {
		if e.Code < 0 || e.Code > 0x7F {
			return nil, sderrors.InvalidInput(sderrors.PhaseParse,
				fmt.Sprintf("serializer %q: code %d out of range 0..127", e.Name, e.Code))
		}
		if e.Name == "" {
			return nil, sderrors.InvalidInput(sderrors.PhaseParse,
				fmt.Sprintf("serializer with code %d has no name", e.Code))
		}
		kind, ok := kindNames[e.Kind]
		if !ok {
			return nil, sderrors.NotFound(sderrors.PhaseParse, "serializer kind", e.Kind)
		}
		elem, ok := elemNames[e.Elem]
		if !ok {
			return nil, sderrors.NotFound(sderrors.PhaseParse, "element type", e.Elem)
		}
		fc.serializers[byte(e.Code)] = &Serializer{
			Code: byte(e.Code),
			Name: e.Name,
			Kind: kind,
			Elem: elem,
		}
	}

	for _, ut := range doc.Units {
		if ut.Type < 0 || ut.Type > 0xFF {
			return nil, sderrors.InvalidInput(sderrors.PhaseParse,
				fmt.Sprintf("unit type %q: code %d out of range 0..255", ut.Name, ut.Type))
		}
		for _, disp := range ut.Displays {
			if disp.Code < 0 || disp.Code > 0xFF {
				return nil, sderrors.InvalidInput(sderrors.PhaseParse,
					fmt.Sprintf("unit %q: display code %d out of range 0..255", disp.Name, disp.Code))
			}
			key := unitKey(byte(ut.Type), byte(disp.Code))
			fc.units[key] = &Unit{Name: disp.Name, Symbol: disp.Symbol}
		}
	}

	return fc, nil
}

func unitKey(unitType, displayCode byte) uint16 {
	return uint16(unitType)<<8 | uint16(displayCode)
}

// Serializer returns the extension descriptor for code, falling back to
// the standard catalog.
func (fc *FileCatalog) Serializer(code byte) *Serializer {
	if s, ok := fc.serializers[code]; ok {
		return s
	}
	return fc.base.Serializer(code)
}

// Unit returns the extension unit for the code pair, falling back to
// the standard catalog.
func (fc *FileCatalog) Unit(unitType, displayCode byte) *Unit {
	if u, ok := fc.units[unitKey(unitType, displayCode)]; ok {
		return u
	}
	return fc.base.Unit(unitType, displayCode)
}
